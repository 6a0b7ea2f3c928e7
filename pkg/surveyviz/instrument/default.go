package instrument

import "github.com/cpapathways/surveyviz-go/pkg/surveyviz/models"

// DefaultReport is the built-in report header and footer text.
var DefaultReport = ReportMeta{
	Title:      "CPA Pathway Survey: Key Findings",
	Subtitle:   "Distribution of responses across five high-impact decision questions",
	SourceNote: "Source: Alternative CPA Pathways Survey (cleaned to completed responses only).",
}

// DefaultQuestions lists the five survey columns summarized by default.
var DefaultQuestions = []models.Question{
	{Column: "Q29", Label: "Likelihood of pursuing CPA license"},
	{Column: "Q51", Label: "Alternative pathway's impact on CPA desire"},
	{Column: "Q52", Label: "Alternative pathway's impact on graduate degree desire"},
	{Column: "Q6", Label: "Overall perception of CPA pathway change"},
	{Column: "Q25", Label: "Attractiveness of shorter graduate certificate"},
}

// DefaultScale maps every answer literal the survey can produce to its
// rank. The four answer families (likelihood, desire change, perception,
// attractiveness) share the 0..4 range.
var DefaultScale = map[string]int{
	"Very unlikely":               0,
	"Somewhat unlikely":           1,
	"Neither likely nor unlikely": 2,
	"Somewhat likely":             3,
	"Very likely":                 4,

	"Significantly decreased desire": 0,
	"Decreased desire":               1,
	"No change in desire":            2,
	"Increased desire":               3,
	"Significantly increased desire": 4,

	"Very Negative":     0,
	"Somewhat Negative": 1,
	"Neutral":           2,
	"Somewhat Positive": 3,
	"Very Positive":     4,

	"Not at all attractive":               0,
	"Somewhat unattractive":               1,
	"Neither attractive nor unattractive": 2,
	"Somewhat attractive":                 3,
	"Very attractive":                     4,
}

// DefaultPalette maps ranks to fills, monotonic from deep negative
// through neutral to deep positive.
var DefaultPalette = map[int]string{
	0: "#8b1e3f",
	1: "#d8576b",
	2: "#b0b7c3",
	3: "#58a4b0",
	4: "#1d7a8c",
}

// Default returns the built-in instrument. Callers must treat the
// returned sections as read-only.
func Default() Instrument {
	return Instrument{
		Report:    DefaultReport,
		Questions: DefaultQuestions,
		Scale:     DefaultScale,
		Palette:   DefaultPalette,
	}
}
