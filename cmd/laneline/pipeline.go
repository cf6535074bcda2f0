package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/oleg578/swiftcsv"

	"laneline/internal/besttimes"
	"laneline/internal/render"
	"laneline/internal/ribbons"
)

// readRecords loads a whole CSV file into memory. The pipeline is a one-shot
// batch transform; there is no streaming.
func readRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not find %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	records, err := swiftcsv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return records, nil
}

// runBestTimes builds the best times report from src into dst.
func runBestTimes(src, dst, title string, log *slog.Logger) error {
	records, err := readRecords(src)
	if err != nil {
		return err
	}

	data, err := besttimes.Parse(records, log)
	if err != nil {
		return fmt.Errorf("%s does not appear to be properly formatted: %w", src, err)
	}

	outline := data.Outline()
	if err := render.BestTimes(outline, title, dst); err != nil {
		return err
	}

	log.Info("wrote best times report", "src", src, "dst", dst, "age_groups", len(outline))
	return nil
}

// runRibbons builds the black ribbon sheet for one meet from src into dst.
// A meet of zero means "latest meet with data".
func runRibbons(src, dst string, meet int, log *slog.Logger) error {
	directory, histories, err := loadReportCard(src)
	if err != nil {
		return err
	}

	if meet == 0 {
		meet, err = directory.Latest()
		if err != nil {
			return fmt.Errorf("cannot find enough meet data in %s: %w", src, err)
		}
	} else if _, err := directory.Lookup(meet); err != nil {
		return fmt.Errorf("there is no meet #%d in %s (rerun with --list to see the meets)", meet, src)
	}

	labels := ribbons.Labels(histories, meet)
	if err := render.Ribbons(labels, directory, dst); err != nil {
		return err
	}

	log.Info("wrote black ribbons", "src", src, "dst", dst, "meet", meet, "labels", len(labels))
	return nil
}

func loadReportCard(src string) (ribbons.Directory, []ribbons.History, error) {
	records, err := readRecords(src)
	if err != nil {
		return nil, nil, err
	}
	directory, histories, err := ribbons.Parse(records)
	if err != nil {
		return nil, nil, fmt.Errorf("%s does not appear to be properly formatted: %w", src, err)
	}
	return directory, histories, nil
}
