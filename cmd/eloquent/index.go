package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index [word]",
	Short: "Print the position of the first exact match of a word",
	Long:  `Print the zero-based position of the first word equal to [word] (case-sensitive), or -1 when absent.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), doc.IndexFor(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
