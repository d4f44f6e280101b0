package main

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mediasort/internal/config"
	"mediasort/internal/logging"
	"mediasort/internal/organize"
	"mediasort/internal/preflight"
	"mediasort/internal/runlock"
)

func newOrganizeCommand(ctx *commandContext) *cobra.Command {
	var sourceFlag string
	var destinationFlag string
	var personFlag string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Relocate photos and videos into <destination>/{pictures|videos}/<person>/<year>/<month>",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source := firstNonEmpty(sourceFlag, cfg.Paths.SourceDir)
			destination := firstNonEmpty(destinationFlag, cfg.Paths.DestinationDir)
			person := firstNonEmpty(personFlag, cfg.Organize.Owner)
			if source == "" {
				return fmt.Errorf("--source is required (or set paths.source_dir in the config)")
			}
			if destination == "" {
				return fmt.Errorf("--destination is required (or set paths.destination_dir in the config)")
			}
			if person == "" {
				return fmt.Errorf("--person is required (or set organize.owner in the config)")
			}

			source, err = config.ExpandPath(source)
			if err != nil {
				return err
			}
			destination, err = config.ExpandPath(destination)
			if err != nil {
				return err
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return err
			}

			checks := []preflight.Result{preflight.CheckSourceDir(source)}
			if !dryRun {
				checks = append(checks, preflight.CheckDestinationDir(destination))
			}
			if !preflight.AllPassed(checks) {
				fmt.Fprint(cmd.OutOrStdout(), renderPreflight(checks, stdoutIsTTY()))
				return fmt.Errorf("preflight checks failed")
			}

			if !dryRun {
				lock := runlock.New(filepath.Join(cfg.Paths.LogDir, "mediasort.lock"))
				if err := lock.Acquire(); err != nil {
					return err
				}
				defer func() {
					if err := lock.Release(); err != nil {
						logger.Warn("failed to release run lock", logging.Error(err))
					}
				}()
			}

			runCtx := logging.WithRunID(cmd.Context(), uuid.NewString())

			out := cmd.OutOrStdout()
			engine, err := organize.New(organize.Config{
				SourceRoot:      source,
				DestinationRoot: destination,
				Owner:           person,
				DryRun:          dryRun,
			}, logger, organize.WithOutcomeFunc(func(o organize.Outcome) {
				printOutcome(out, o)
			}))
			if err != nil {
				return err
			}

			report, err := engine.Run(runCtx)
			if err != nil {
				return err
			}

			fmt.Fprint(out, renderSummary(report, stdoutIsTTY()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourceFlag, "source", "s", "", "Root of the tree to scan")
	cmd.Flags().StringVarP(&destinationFlag, "destination", "d", "", "Root of the organized archive")
	cmd.Flags().StringVarP(&personFlag, "person", "p", "", "Owner name segment inserted between category and year")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "y", false, "Report planned moves without touching the filesystem")

	return cmd
}
