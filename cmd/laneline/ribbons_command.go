package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"laneline/internal/ribbons"
)

func newRibbonsCommand(ctx *commandContext) *cobra.Command {
	var meetFlag int
	var listFlag bool

	cmd := &cobra.Command{
		Use:   "ribbons <athlete_report_card_csv> [black_ribbons_pdf]",
		Short: "Generate black ribbon labels from a Swimtopia report card",
		Long: strings.TrimSpace(`
Generate black ribbon labels from a Swimtopia athlete report card.

To create the input CSV file:
    Go to Reports in Swimtopia
    Select Athlete Report Card under Athlete Performance

    Make sure the following criteria are set:
      Season Roster: current year
      Gender: All
      Min/Max Age: leave blank
      Show times in course: S - Short Course Meters
      All other options: leave unchecked

    Click on the "Generate Report" button
    Click on the "Download Athlete Report Card Data CSV" link
`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, err := ctx.ensure()
			if err != nil {
				return err
			}

			src := args[0]
			dst := "black_ribbons.pdf"
			if len(args) == 2 {
				dst = args[1]
			}

			if cmd.Flags().Changed("meet") && meetFlag < 1 {
				return fmt.Errorf("%d is not a positive meet number", meetFlag)
			}

			if listFlag {
				directory, _, err := loadReportCard(src)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderMeetList(directory))
				return nil
			}

			return runRibbons(src, dst, meetFlag, log)
		},
	}

	cmd.Flags().IntVarP(&meetFlag, "meet", "m", 0, "Meet number for which to generate black ribbons (default: latest meet with data)")
	cmd.Flags().BoolVarP(&listFlag, "list", "l", false, "List meet information rather than create ribbons")

	return cmd
}

// renderMeetList tabulates the meet directory, skipping the reserved time
// trial at index 0.
func renderMeetList(directory ribbons.Directory) string {
	rows := make([][]string, 0, len(directory))
	for _, idx := range directory.Indexes() {
		if idx == 0 {
			continue
		}
		info := directory[idx]
		rows = append(rows, []string{
			fmt.Sprintf("%d", idx),
			info.Date,
			meetDisplayName(info.Name),
		})
	}
	return renderTable(
		[]string{"Meet", "Date", "Name"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft},
	)
}
