package models

// Report is the top-level container handed to the renderer.
type Report struct {
	// Title is the report headline.
	Title string `json:"title"`
	// Subtitle is the line under the headline.
	Subtitle string `json:"subtitle,omitempty"`
	// SourceNote is the attribution line in the footer.
	SourceNote string `json:"source_note,omitempty"`
	// SampleSize is the number of completed responses.
	SampleSize int `json:"sample_size"`
	// Summaries holds one summary per question, in question order.
	Summaries []Summary `json:"summaries"`
}
