// Package instrument describes the survey being reported on: the report
// header text, the question set, the answer-text rank scale, and the
// rank color palette. An instrument is read-only configuration built
// once at startup, either from the built-in default or from a YAML file.
package instrument

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/models"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// UnrankedSortKey is the sort key for answers missing from the scale.
	// Unmapped answers order after every mapped rank.
	UnrankedSortKey = 999
	// NeutralTone is the tone used to color answers missing from the scale.
	NeutralTone = 2
	// FallbackColor is the fill used when a tone has no palette entry.
	FallbackColor = "#6b778d"
)

// ReportMeta holds the fixed header and footer text of the report.
type ReportMeta struct {
	// Title is the report headline.
	Title string `json:"title" yaml:"title"`
	// Subtitle is the line rendered under the headline.
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	// SourceNote is the attribution line rendered in the footer.
	SourceNote string `json:"source_note" yaml:"source_note"`
}

// Instrument is the complete survey description used by the pipeline.
type Instrument struct {
	// Report holds the report header and footer text.
	Report ReportMeta `json:"report" yaml:"report"`
	// Questions lists the columns summarized, in display order.
	Questions []models.Question `json:"questions" yaml:"questions"`
	// Scale maps known answer literals to an ordered rank (0 = most
	// negative). Answers absent from the scale sort last and render in
	// the neutral tone.
	Scale map[string]int `json:"scale" yaml:"scale"`
	// Palette maps ranks to hex fill colors.
	Palette map[int]string `json:"palette" yaml:"palette"`
}

// Rank reports the scale rank for an answer and whether it is mapped.
func (i Instrument) Rank(answer string) (int, bool) {
	rank, ok := i.Scale[answer]
	return rank, ok
}

// SortKey returns the ordering key for an answer: its rank when mapped,
// UnrankedSortKey otherwise.
func (i Instrument) SortKey(answer string) int {
	if rank, ok := i.Scale[answer]; ok {
		return rank
	}
	return UnrankedSortKey
}

// Tone returns the color tone for an answer: its rank when mapped,
// NeutralTone otherwise.
func (i Instrument) Tone(answer string) int {
	if rank, ok := i.Scale[answer]; ok {
		return rank
	}
	return NeutralTone
}

// Color returns the hex fill for an answer via its tone, falling back
// to FallbackColor when the tone has no palette entry.
func (i Instrument) Color(answer string) string {
	if color, ok := i.Palette[i.Tone(answer)]; ok {
		return color
	}
	return FallbackColor
}

// Normalized returns a copy with trimmed text fields and with empty
// sections filled from the built-in default, so a partial instrument
// file only overrides the sections it names.
func (i Instrument) Normalized() Instrument {
	out := i
	out.Report.Title = strings.TrimSpace(i.Report.Title)
	out.Report.Subtitle = strings.TrimSpace(i.Report.Subtitle)
	out.Report.SourceNote = strings.TrimSpace(i.Report.SourceNote)

	def := Default()
	if out.Report.Title == "" {
		out.Report.Title = def.Report.Title
	}
	if out.Report.Subtitle == "" {
		out.Report.Subtitle = def.Report.Subtitle
	}
	if out.Report.SourceNote == "" {
		out.Report.SourceNote = def.Report.SourceNote
	}

	if len(i.Questions) == 0 {
		out.Questions = def.Questions
	} else {
		out.Questions = make([]models.Question, len(i.Questions))
		for n, q := range i.Questions {
			out.Questions[n] = models.Question{
				Column: strings.TrimSpace(q.Column),
				Label:  strings.TrimSpace(q.Label),
			}
		}
	}

	if len(i.Scale) == 0 {
		out.Scale = def.Scale
	}
	if len(i.Palette) == 0 {
		out.Palette = def.Palette
	}
	return out
}

// Validate checks the instrument for usability. It is called on the
// normalized form, so empty sections have already been defaulted.
func (i Instrument) Validate() error {
	if len(i.Questions) == 0 {
		return NewConfigError("questions", errors.New("at least one question is required"))
	}
	seen := make(map[string]bool, len(i.Questions))
	for n, q := range i.Questions {
		if q.Column == "" {
			return NewConfigError("questions", fmt.Errorf("question %d has no column key", n+1))
		}
		if seen[q.Column] {
			return NewConfigError("questions", fmt.Errorf("duplicate column key %q", q.Column))
		}
		seen[q.Column] = true
	}

	for text, rank := range i.Scale {
		if strings.TrimSpace(text) == "" {
			return NewConfigError("scale", errors.New("answer text must not be empty"))
		}
		if rank < 0 {
			return NewConfigError("scale", fmt.Errorf("rank for %q is negative", text))
		}
	}

	for tone, hex := range i.Palette {
		if _, err := colorful.Hex(hex); err != nil {
			return NewConfigError("palette", fmt.Errorf("tone %d color %q: %w", tone, hex, err))
		}
	}
	return nil
}

// ConfigError represents an invalid instrument definition.
type ConfigError struct {
	Field string // "questions", "scale", "palette"
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("instrument: invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field string, err error) *ConfigError {
	return &ConfigError{
		Field: field,
		Err:   err,
	}
}
