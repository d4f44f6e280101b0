package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediasort/internal/config"
	"mediasort/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	var sourceFlag string
	var destinationFlag string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify that the configured directories are usable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source := firstNonEmpty(sourceFlag, cfg.Paths.SourceDir)
			destination := firstNonEmpty(destinationFlag, cfg.Paths.DestinationDir)
			if source != "" {
				if source, err = config.ExpandPath(source); err != nil {
					return err
				}
			}
			if destination != "" {
				if destination, err = config.ExpandPath(destination); err != nil {
					return err
				}
			}

			results := preflight.RunAll(source, destination, cfg.Paths.LogDir)
			fmt.Fprint(cmd.OutOrStdout(), renderPreflight(results, stdoutIsTTY()))
			if !preflight.AllPassed(results) {
				return fmt.Errorf("one or more checks failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "Root of the tree to scan")
	cmd.Flags().StringVarP(&destinationFlag, "destination", "d", "", "Root of the organized archive")

	return cmd
}
