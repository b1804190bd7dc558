package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"myepg/internal/sources"
)

func newSourcesCommand(ctx *commandContext) *cobra.Command {
	sourcesCmd := &cobra.Command{
		Use:   "sources",
		Short: "Inspect the configured source list",
	}

	sourcesCmd.AddCommand(newSourcesListCommand(ctx))

	return sourcesCmd
}

func newSourcesListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the sources a run would fetch, in merge order",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			locators, err := sources.Load(cfg.Paths.SourcesFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(locators) == 0 {
				fmt.Fprintf(out, "Source list %s has no usable locators\n", cfg.Paths.SourcesFile)
				return nil
			}

			rows := make([][]string, 0, len(locators))
			for i, locator := range locators {
				rows = append(rows, []string{strconv.Itoa(i + 1), locator})
			}
			fmt.Fprintln(out, renderTable([]string{"#", "Source"}, rows, 0))
			return nil
		},
	}
}
