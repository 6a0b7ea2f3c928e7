package models

// Question identifies one survey column selected for summarization.
type Question struct {
	// Column is the column key in the export (e.g. "Q29").
	Column string `json:"column" yaml:"column"`
	// Label is the display label rendered next to the question's bar.
	Label string `json:"label" yaml:"label"`
}
