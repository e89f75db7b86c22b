package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Hashversion/koes/internal/classname"
)

var classesCmd = &cobra.Command{
	Use:   "classes [class lists...]",
	Short: "Print the merged class string for the given class lists",
	Example: `  koes classes "px-2 py-1 bg-red-500" "p-3 bg-blue-500"
  # p-3 bg-blue-500`,
	Run: func(cmd *cobra.Command, args []string) {
		tokens := make([]any, len(args))
		for i, a := range args {
			tokens[i] = a
		}
		fmt.Fprintln(cmd.OutOrStdout(), classname.Compose(tokens...))
	},
}

func init() {
	rootCmd.AddCommand(classesCmd)
}
