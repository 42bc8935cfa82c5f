package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	var verbose int

	rootCmd := &cobra.Command{
		Use:   "exprparse",
		Short: "Parse arithmetic expressions with a family of toy grammars",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newGrammarsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
