package main

import (
	"fmt"
	"os"

	"github.com/rcoffey/exprparse/format"
	"github.com/rcoffey/exprparse/parser"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("exprparse")

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <grammar> <expression>",
		Short: "Parse an expression and dump the resulting tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, input := args[0], args[1]

			parse, ok := parser.Lookup(name)
			if !ok {
				return fmt.Errorf("unknown grammar %q, expected one of %v", name, parser.Grammars())
			}

			log.Debugf("parsing with grammar %s: %s", name, input)
			node, err := parse(input)
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			var encoder format.Encoder
			switch outputFormat {
			case "json":
				encoder = format.NewASTJSONEncoder(os.Stdout)
			case "sexpr":
				encoder = format.NewSExprEncoder(os.Stdout)
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if err := encoder.Encode(node); err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "sexpr", "output format (sexpr, json)")

	return cmd
}
