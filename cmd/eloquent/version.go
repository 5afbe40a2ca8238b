package main

import (
	"fmt"

	"github.com/aretw0/eloquent"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of eloquent",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "eloquent version %s\n", eloquent.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
