package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"slimdev/internal/preflight"
)

func newDoctorCommand(opts *rootOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Run scaffold readiness checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, err := resolveSource(opts)
			if err != nil {
				return err
			}
			root := filepath.Dir(sourcePath)

			results := preflight.RunAll(root)
			out := cmd.OutOrStdout()

			if jsonOutput {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				if err := encoder.Encode(results); err != nil {
					return fmt.Errorf("encode results: %w", err)
				}
			} else {
				fmt.Fprintln(out, renderCheckTable(results))
			}

			if !preflight.AllPassed(results) {
				return fmt.Errorf("scaffold checks failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit results as JSON")
	return cmd
}
