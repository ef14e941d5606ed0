package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"slimdev/internal/config"
	"slimdev/internal/envfile"
)

func newVerifyCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Verify that an existing .env file carries every required key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			envPath := strings.TrimSpace(opts.outputPath)
			if envPath == "" {
				sourcePath, err := resolveSource(opts)
				if err != nil {
					return err
				}
				envPath = filepath.Join(filepath.Dir(sourcePath), ".devcontainer", ".env")
			}

			record, err := envfile.Parse(envPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var unset []string
			for _, key := range config.Keys() {
				value, ok := record.Get(key.Env())
				if !ok || value == "" {
					unset = append(unset, key.Env())
					fmt.Fprintf(out, "[FAIL] %s not set\n", key.Env())
					continue
				}
				fmt.Fprintf(out, "[OK] %s\n", key.Env())
			}

			if len(unset) > 0 {
				return fmt.Errorf("%s: %d keys unset: %s", envPath, len(unset), strings.Join(unset, ", "))
			}
			fmt.Fprintln(out, "All env vars set.")
			return nil
		},
	}
}
