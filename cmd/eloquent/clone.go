package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone the document and describe both copies",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		clone := doc.Clone()
		for _, d := range []fmt.Stringer{doc, clone} {
			fmt.Fprintln(out, d)
		}
		return clone.Describe(out)
	},
}

func init() {
	rootCmd.AddCommand(cloneCmd)
}
