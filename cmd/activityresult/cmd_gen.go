package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsinukov/activityresult/internal/processor"
)

func (c *cli) genCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Write <Name>Result companion files",
		Long: `gen processes every annotated type of the given packages (default: the
packages of the config file) and writes <name>_result_gen.go next to it.

A failing type is reported and skipped; the others are still generated.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := processor.ModeWrite
			if dryRun {
				mode = processor.ModeDryRun
			}

			res, err := c.processor(mode).Process(c.patterns(args)...)
			if err != nil {
				return err
			}

			if dryRun {
				for _, f := range res.Files {
					fmt.Fprintf(c.stdout, "=== %s/%s ===\n%s\n", f.Dir, f.Filename, f.Content)
				}
			} else {
				for _, path := range res.Written {
					fmt.Fprintln(c.stdout, path)
				}
			}

			return c.report(res.Diagnostics)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Print generated files instead of writing them")

	return cmd
}
