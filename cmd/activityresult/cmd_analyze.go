package main

import (
	"github.com/spf13/cobra"

	"github.com/rsinukov/activityresult/internal/plan"
	"github.com/rsinukov/activityresult/internal/processor"
)

func (c *cli) analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [packages]",
		Short: "Print the resolved field model of every annotated type as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.processor(processor.ModeDryRun).Process(c.patterns(args)...)
			if err != nil {
				return err
			}

			out, err := plan.ExportYAML(res.Classes)
			if err != nil {
				return err
			}

			if _, err := c.stdout.Write(out); err != nil {
				return err
			}

			return c.report(res.Diagnostics)
		},
	}
}
