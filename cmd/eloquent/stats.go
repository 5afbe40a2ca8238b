package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/eloquent/pkg/report"
	"github.com/spf13/cobra"
)

var (
	statsFormat string
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print a summary of the document",
	Long:  `Print the word count, average word length and flags of the document as text, JSON or YAML.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}

		out, err := report.Render(doc, statsFormat)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "text",
		fmt.Sprintf("Output format (%s)", strings.Join(report.Formats(), ", ")))
}
