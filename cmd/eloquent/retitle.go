package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var retitleCmd = &cobra.Command{
	Use:   "retitle [new-title]",
	Short: "Change the title and print the resulting title",
	Long: `Attempt to change the title. The change only applies with --writable;
otherwise the original title is printed unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}

		if !doc.TrySetTitle(args[0]) {
			slog.Debug("title unchanged, document is not writable", "title", doc.Title())
		}
		fmt.Fprintln(cmd.OutOrStdout(), doc.Title())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(retitleCmd)
}
