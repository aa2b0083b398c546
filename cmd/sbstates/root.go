package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sbstates",
	Short: "Convert a parser automaton state dump into JSON",
	Long: `sbstates provides two features:
- Converts a textual dump of parser automaton states into a JSON table.
- Prints a converted table in a readable format.
  This feature is primarily aimed at inspecting the generated table.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}
