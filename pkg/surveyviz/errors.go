package surveyviz

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input format is not recognized.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ReportError represents an error during report generation.
type ReportError struct {
	Stage string // "instrument", "load"
	Err   error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("report generation failed during %s: %v", e.Stage, e.Err)
}

func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError.
func NewReportError(stage string, err error) *ReportError {
	return &ReportError{
		Stage: stage,
		Err:   err,
	}
}
