package main

import (
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print who the document is, its title and its word count",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}
		return doc.Describe(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}
