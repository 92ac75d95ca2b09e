package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rsinukov/activityresult/internal/processor"
)

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages]",
		Short: "Fail when companion files are missing or out of date",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.processor(processor.ModeCheck).Process(c.patterns(args)...)
			if err != nil {
				return err
			}

			for _, path := range res.Stale {
				fmt.Fprintf(c.stderr, "stale: %s\n", path)
			}

			if err := c.report(res.Diagnostics); err != nil {
				return err
			}

			if len(res.Stale) > 0 {
				return fmt.Errorf("%d generated file(s) out of date, run activityresult gen", len(res.Stale))
			}

			return nil
		},
	}
}
