package main

import (
	"fmt"

	"github.com/rcoffey/exprparse/parser"
	"github.com/spf13/cobra"
)

func newGrammarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "grammars",
		Short: "List the available grammar selectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range parser.Grammars() {
				fmt.Println(name)
			}
			return nil
		},
	}
}
