// Package surveyviz generates the survey findings report: it loads a
// survey export, filters it to completed responses, and tallies the
// answer distribution of every instrument question.
package surveyviz

import (
	"path/filepath"
	"strings"

	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/instrument"
)

// Format represents the input table format.
type Format string

const (
	// FormatAuto resolves the format from the input file extension.
	FormatAuto Format = "auto"
	// FormatCSV reads comma-delimited text.
	FormatCSV Format = "csv"
	// FormatTSV reads tab-delimited text.
	FormatTSV Format = "tsv"
	// FormatXLSX reads the first sheet of a workbook export.
	FormatXLSX Format = "xlsx"
)

// Options configures report generation.
type Options struct {
	// Format specifies the input format (auto, csv, tsv, xlsx).
	Format Format
	// Instrument describes the survey being reported on.
	// If nil, the built-in default instrument is used.
	Instrument *instrument.Instrument
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{
		Format: FormatAuto,
	}
}

// ResolvedInstrument returns the instrument to report on.
func (o Options) ResolvedInstrument() instrument.Instrument {
	if o.Instrument != nil {
		return *o.Instrument
	}
	return instrument.Default()
}

// ResolvedFormat returns the concrete format for an input path. Auto
// resolves by file extension; unknown extensions read as CSV, the
// common case for survey exports.
func (o Options) ResolvedFormat(path string) Format {
	if o.Format != FormatAuto && o.Format != "" {
		return o.Format
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		return FormatTSV
	case ".xlsx":
		return FormatXLSX
	default:
		return FormatCSV
	}
}
