package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExtractCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "extract",
		Short: "Print the resolved KEY=VALUE pairs without writing a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sourcePath, err := resolveSource(opts)
			if err != nil {
				return err
			}

			record, err := project(sourcePath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, entry := range record.Entries() {
				fmt.Fprintf(out, "%s=%s\n", entry.Key, entry.Value)
			}
			return nil
		},
	}
}
