package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"laneline/internal/discovery"
)

// reportResult is the outcome of one report generation within a batch run.
// Individual failures do not abort the batch; they surface in the summary
// and the exit code.
type reportResult struct {
	output string
	err    error
}

func newGenerateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "generate [dir]",
		Short: "Generate every report for a directory of Swimtopia exports",
		Long: "Generate every report for a directory of Swimtopia exports.\n\n" +
			"Picks the most recently modified best times export and the athlete\n" +
			"report card covering the most meets, then writes the best times report\n" +
			"plus one black ribbon sheet per meet.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := ctx.ensure()
			if err != nil {
				return err
			}

			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			dir, err = filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}

			lock := flock.New(filepath.Join(dir, ".laneline.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return fmt.Errorf("another laneline run is active in %s", dir)
			}
			defer func() {
				_ = lock.Unlock()
			}()

			log = log.With("run_id", uuid.NewString())

			sel, err := discovery.Scan(dir, log)
			if err != nil {
				return err
			}
			log.Info("selected inputs", "best_times", sel.BestTimes, "report_card", sel.ReportCard)

			var results []reportResult

			dst := filepath.Join(dir, cfg.Report.BestTimesOutput)
			results = append(results, reportResult{
				output: cfg.Report.BestTimesOutput,
				err:    runBestTimes(sel.BestTimes, dst, cfg.Report.Title, log),
			})

			for _, idx := range sel.Meets.Indexes() {
				if idx == 0 {
					// Reserved time trial slot; never gets ribbons of its own.
					continue
				}
				name := discovery.OutputName(sel.Meets[idx].Name)
				results = append(results, reportResult{
					output: name,
					err:    runRibbons(sel.ReportCard, filepath.Join(dir, name), idx, log),
				})
			}

			out := cmd.OutOrStdout()
			colorize := false
			if f, ok := out.(*os.File); ok {
				colorize = isatty.IsTerminal(f.Fd())
			}

			failed := 0
			for _, result := range results {
				kind := statusOK
				message := ""
				if result.err != nil {
					kind = statusError
					message = result.err.Error()
					failed++
				}
				fmt.Fprintln(out, renderStatusLine(result.output, kind, message, colorize))
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d reports failed", failed, len(results))
			}
			return nil
		},
	}
}
