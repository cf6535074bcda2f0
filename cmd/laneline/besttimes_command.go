package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

func newBestTimesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "best-times <best_times_csv> [best_times_pdf]",
		Short: "Generate the best times report from a Swimtopia export",
		Long: strings.TrimSpace(`
Generate the best times report from a Swimtopia export.

To create the input CSV file:
    Go to Reports in Swimtopia
    Select Best Times under Athlete Performance

    Make sure the following criteria are set:
      Season Roster: current year
      Limit results to course: S - Short Course Meters
      Convert times to: S - Short Course Meters
      Only show times from: Selected season

    Click on the "Generate Report" button
    Click on the "Download CSV" button
`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := ctx.ensure()
			if err != nil {
				return err
			}

			src := args[0]
			dst := strings.TrimSuffix(src, filepath.Ext(src)) + ".pdf"
			if len(args) == 2 {
				dst = args[1]
			}

			return runBestTimes(src, dst, cfg.Report.Title, log)
		},
	}
}
