package surveyviz

import (
	"fmt"
	"os"

	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/loader"
	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/models"
	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/tally"
)

// Generate runs the reporting pipeline on one input file: read the
// table, filter to completed responses, and tally every instrument
// question. The returned report is ready for rendering.
func Generate(path string, opts Options) (*models.Report, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	inst := opts.ResolvedInstrument()
	if err := inst.Validate(); err != nil {
		return nil, NewReportError("instrument", err)
	}

	rows, err := readTable(path, opts.ResolvedFormat(path))
	if err != nil {
		return nil, NewReportError("load", err)
	}
	completed := loader.Completed(rows)

	report := &models.Report{
		Title:      inst.Report.Title,
		Subtitle:   inst.Report.Subtitle,
		SourceNote: inst.Report.SourceNote,
		SampleSize: len(completed),
		Summaries:  make([]models.Summary, 0, len(inst.Questions)),
	}
	for _, q := range inst.Questions {
		report.Summaries = append(report.Summaries, tally.Summarize(completed, q, inst))
	}
	return report, nil
}

// readTable dispatches to the loader for the resolved format.
func readTable(path string, format Format) ([]models.Row, error) {
	switch format {
	case FormatCSV:
		return loader.ReadCSV(path, ',')
	case FormatTSV:
		return loader.ReadCSV(path, '\t')
	case FormatXLSX:
		return loader.ReadXLSX(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
