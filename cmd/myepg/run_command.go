package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"myepg/internal/config"
	"myepg/internal/logging"
	"myepg/internal/pipeline"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var sourcesFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch, merge, and publish the aggregate guide",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if sourcesFlag != "" {
				if cfg.Paths.SourcesFile, err = config.ExpandPath(sourcesFlag); err != nil {
					return err
				}
			}
			if outputFlag != "" {
				if cfg.Paths.OutputDir, err = config.ExpandPath(outputFlag); err != nil {
					return err
				}
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			reporter := newProgressReporter()
			runner, err := pipeline.NewRunner(cfg, logger, reporter.events())
			if err != nil {
				return err
			}

			summary, err := runner.Run(cmd.Context())
			reporter.stop()
			out := cmd.OutOrStdout()
			if err != nil {
				// A missing/empty source list and an all-empty merge are
				// operational outcomes, not tool failures.
				if errors.Is(err, pipeline.ErrSourceList) || errors.Is(err, pipeline.ErrEmptyGuide) {
					fmt.Fprintln(out, "Nothing to publish:", err)
					return nil
				}
				return err
			}

			fmt.Fprintln(out, renderTable(
				[]string{"Metric", "Value"},
				[][]string{
					{"Sources", strconv.Itoa(summary.Sources)},
					{"Fetched", strconv.Itoa(summary.Fetched)},
					{"Parsed", strconv.Itoa(summary.Parsed)},
					{"Cache hits", strconv.Itoa(summary.CacheHits)},
					{"Channels", strconv.Itoa(summary.Channels)},
					{"Programmes", strconv.Itoa(summary.Programmes)},
					{"Elapsed", summary.Elapsed.Round(time.Millisecond).String()},
				},
				1,
			))
			fmt.Fprintf(out, "Wrote %s\n", summary.OutputPath)
			if summary.CompressedPath != "" {
				fmt.Fprintf(out, "Wrote %s\n", summary.CompressedPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sourcesFlag, "sources", "", "Override the source list path")
	cmd.Flags().StringVar(&outputFlag, "output", "", "Override the output directory")
	return cmd
}
