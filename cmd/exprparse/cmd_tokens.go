package main

import (
	"fmt"

	"github.com/rcoffey/exprparse/parser"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expression>",
		Short: "Tokenize an expression and dump the token sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toks, err := parser.Tokenize(args[0])
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}
			for _, tok := range toks {
				fmt.Printf("%4d  %-8s  %s\n", tok.Pos, tok.Kind, tok.Literal)
			}
			return nil
		},
	}
}
