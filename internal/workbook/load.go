package workbook

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/vessel-qa/internal/table"
)

// Source is a workbook to load, either a path on disk or an open reader.
type Source struct {
	Name   string
	Path   string
	Reader io.Reader
}

// FileSource returns a Source reading from path.
func FileSource(path string) Source {
	return Source{Name: path, Path: path}
}

// ReaderSource returns a Source reading from r. name is used in errors.
func ReaderSource(name string, r io.Reader) Source {
	return Source{Name: name, Reader: r}
}

// Load reads the source.
func (s Source) Load() ([]table.Sheet, error) {
	if s.Reader != nil {
		sheets, err := Read(s.Reader)
		return sheets, eris.Wrapf(err, "workbook: load %s", s.Name)
	}
	if s.Path == "" {
		return nil, eris.Errorf("workbook: source %q has no path or reader", s.Name)
	}
	return ReadFile(s.Path)
}

// Inputs holds the two parsed workbooks of a QA run.
type Inputs struct {
	Standards []table.Sheet
	Vessel    []table.Sheet
}

// LoadPair reads the standards and vessel report workbooks concurrently.
// The first failure cancels the pair and is returned.
func LoadPair(ctx context.Context, standards, vessel Source) (*Inputs, error) {
	var in Inputs
	g, ctx := errgroup.WithContext(ctx)

	load := func(src Source, dst *[]table.Sheet) func() error {
		return func() error {
			if err := ctx.Err(); err != nil {
				return eris.Wrap(err, "workbook: load cancelled")
			}
			sheets, err := src.Load()
			if err != nil {
				return err
			}
			*dst = sheets
			zap.L().Debug("workbook: loaded",
				zap.String("source", src.Name),
				zap.Int("sheets", len(sheets)),
				zap.String("names", sheetNames(sheets)),
			)
			return nil
		}
	}

	g.Go(load(standards, &in.Standards))
	g.Go(load(vessel, &in.Vessel))
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &in, nil
}

func sheetNames(sheets []table.Sheet) string {
	names := make([]string, len(sheets))
	for i, s := range sheets {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}

// ReportFileName names the output workbook after the reporting period,
// e.g. "September 2025" becomes "Quality_Report_September_2025.xlsx".
func ReportFileName(period string) string {
	return fmt.Sprintf("Quality_Report_%s.xlsx", strings.ReplaceAll(strings.TrimSpace(period), " ", "_"))
}
