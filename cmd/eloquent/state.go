package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print the introspection state of the document as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := loadDocument(cmd)
		if err != nil {
			return err
		}

		intro, ok := any(doc).(introspection.Introspectable)
		if !ok {
			return errors.New("document does not expose state")
		}

		component := "unknown"
		if comp, ok := any(doc).(introspection.Component); ok {
			component = comp.ComponentType()
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(map[string]any{
			"component": component,
			"state":     intro.State(),
		}); err != nil {
			return fmt.Errorf("failed to encode state: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
