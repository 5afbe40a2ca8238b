package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	obscureCount bool
)

var obscureCmd = &cobra.Command{
	Use:   "obscure",
	Short: "Mask clock times such as 10:30 AM",
	Long:  `Replace every "hh:mm AM" or "hh:mm PM" in the content with "**:** **" and print the result.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}

		n := doc.ObscureTimes()
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSuffix(doc.Content(), "\n"))
		if obscureCount {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d time(s) obscured\n", n)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(obscureCmd)
	obscureCmd.Flags().BoolVar(&obscureCount, "count", false, "Report the number of replacements on stderr")
}
