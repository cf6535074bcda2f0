package discovery

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/oleg578/swiftcsv"

	"laneline/internal/csvschema"
	"laneline/internal/ribbons"
)

var (
	// ErrNoBestTimesFile indicates the directory holds no valid best-times export.
	ErrNoBestTimesFile = errors.New("no best times file found")
	// ErrNoReportCardFile indicates the directory holds no valid athlete report card.
	ErrNoReportCardFile = errors.New("no athlete report card found")
)

// Selection names the files a generate run should use.
type Selection struct {
	BestTimes  string // newest valid best-times export
	ReportCard string // report card exposing the most meets
	Meets      ribbons.Directory
}

// Scan classifies every *.csv in dir and picks the generation inputs. Files
// that fail to read or match a schema are skipped silently; missing either
// input kind is an error.
func Scan(dir string, log *slog.Logger) (*Selection, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}

	sel := &Selection{}
	var bestMtime time.Time

	for _, path := range paths {
		records, err := readRecords(path)
		if err != nil || len(records) == 0 {
			log.Debug("skipping unreadable csv", "path", path, "error", err)
			continue
		}

		switch csvschema.Classify(records[0]) {
		case csvschema.KindBestTimes:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if sel.BestTimes == "" || info.ModTime().After(bestMtime) {
				sel.BestTimes = path
				bestMtime = info.ModTime()
			}
		case csvschema.KindReportCard:
			meets, _, err := ribbons.Parse(records)
			if err != nil || maxIndex(meets) < 0 {
				log.Debug("skipping report card without meet data", "path", path, "error", err)
				continue
			}
			if sel.ReportCard == "" || maxIndex(meets) > maxIndex(sel.Meets) {
				sel.ReportCard = path
				sel.Meets = meets
			}
		default:
			log.Debug("skipping csv matching neither schema", "path", path)
		}
	}

	if sel.BestTimes == "" {
		return nil, fmt.Errorf("%w in %s", ErrNoBestTimesFile, dir)
	}
	if sel.ReportCard == "" {
		return nil, fmt.Errorf("%w in %s", ErrNoReportCardFile, dir)
	}
	return sel, nil
}

// maxIndex returns the highest meet index with data, -1 for none.
func maxIndex(meets ribbons.Directory) int {
	indexes := meets.Indexes()
	if len(indexes) == 0 {
		return -1
	}
	return indexes[len(indexes)-1]
}

func readRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return swiftcsv.NewReader(f).ReadAll()
}
