package surveyviz

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/instrument"
	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/models"
	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/render"
)

// writeSurveyCSV writes a ten-row export: eight completed responses,
// one header-repeat artifact, one unfinished response.
func writeSurveyCSV(t *testing.T) string {
	t.Helper()
	lines := []string{
		"ResponseId,StartDate,EndDate,Finished,Q29,Q51,Q52,Q6,Q25",
		"Response ID,Start Date,End Date,True,,,,,",
		"R_1,12/31/2025 9:01,12/31/2025 9:11,True,Very likely,Increased desire,,Very Negative,Very attractive",
		"R_2,12/31/2025 9:02,12/31/2025 9:12,True,Very likely,Increased desire,,Neutral,Very attractive",
		"R_3,12/31/2025 9:03,12/31/2025 9:13,True,Very likely,Increased desire,,Neutral,Very attractive",
		"R_4,12/31/2025 9:04,12/31/2025 9:14,True,Very likely,Decreased desire,,Neutral,Very attractive",
		"R_5,12/31/2025 9:05,12/31/2025 9:15,True,Very likely,Decreased desire,,Neutral,Very attractive",
		"R_6,12/31/2025 9:06,12/31/2025 9:16,True,Very likely,No change in desire,,Very Positive,Very attractive",
		"R_7,12/31/2025 9:07,12/31/2025 9:17,True,Very likely,No change in desire,,Very Positive,Unsure",
		"R_8,12/31/2025 9:08,12/31/2025 9:18,True,Very likely,,,Very Positive,Unsure",
		"R_9,12/31/2025 9:09,,False,Somewhat likely,Increased desire,,Neutral,Very attractive",
	}

	path := filepath.Join(t.TempDir(), "survey.csv")
	content := "\xef\xbb\xbf" + strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}
	return path
}

func TestGenerate(t *testing.T) {
	path := writeSurveyCSV(t)

	report, err := Generate(path, DefaultOptions())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if report.SampleSize != 8 {
		t.Errorf("Expected sample size 8, got %d", report.SampleSize)
	}
	if report.Title != instrument.DefaultReport.Title {
		t.Errorf("Expected default title, got %q", report.Title)
	}
	if len(report.Summaries) != 5 {
		t.Fatalf("Expected 5 summaries, got %d", len(report.Summaries))
	}

	// Q29: unanimous answer.
	q29 := report.Summaries[0]
	if q29.Column != "Q29" {
		t.Errorf("Expected first summary Q29, got %q", q29.Column)
	}
	if q29.Total != 8 || len(q29.Entries) != 1 {
		t.Fatalf("Q29: total = %d, entries = %d, expected 8 and 1", q29.Total, len(q29.Entries))
	}
	if q29.Entries[0] != (models.Entry{Answer: "Very likely", Count: 8}) {
		t.Errorf("Q29 entry = %+v", q29.Entries[0])
	}

	// Q51: one empty cell, entries in rank order.
	q51 := report.Summaries[1]
	if q51.Total != 7 {
		t.Errorf("Q51: expected total 7, got %d", q51.Total)
	}
	want51 := []models.Entry{
		{Answer: "Decreased desire", Count: 2},
		{Answer: "No change in desire", Count: 2},
		{Answer: "Increased desire", Count: 3},
	}
	if len(q51.Entries) != len(want51) {
		t.Fatalf("Q51: expected %d entries, got %d", len(want51), len(q51.Entries))
	}
	for i, want := range want51 {
		if q51.Entries[i] != want {
			t.Errorf("Q51 entry %d = %+v, expected %+v", i, q51.Entries[i], want)
		}
	}

	// Q52: no answers at all.
	q52 := report.Summaries[2]
	if q52.Total != 0 || len(q52.Entries) != 0 {
		t.Errorf("Q52: total = %d, entries = %d, expected 0 and 0", q52.Total, len(q52.Entries))
	}

	// Q25: the unmapped answer sorts after the mapped one.
	q25 := report.Summaries[4]
	if len(q25.Entries) != 2 {
		t.Fatalf("Q25: expected 2 entries, got %d", len(q25.Entries))
	}
	if q25.Entries[0].Answer != "Very attractive" || q25.Entries[1].Answer != "Unsure" {
		t.Errorf("Q25 order = %q, %q", q25.Entries[0].Answer, q25.Entries[1].Answer)
	}
}

func TestGenerateMissingFile(t *testing.T) {
	_, err := Generate(filepath.Join(t.TempDir(), "absent.csv"), DefaultOptions())
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	path := writeSurveyCSV(t)

	_, err := Generate(path, Options{Format: Format("parquet")})
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	var repErr *ReportError
	if !errors.As(err, &repErr) {
		t.Fatalf("Expected ReportError, got %T", err)
	}
	if repErr.Stage != "load" {
		t.Errorf("Expected stage 'load', got %q", repErr.Stage)
	}
}

func TestGenerateInvalidInstrument(t *testing.T) {
	path := writeSurveyCSV(t)

	bad := instrument.Instrument{
		Questions: []models.Question{{Column: "", Label: "nameless"}},
	}
	_, err := Generate(path, Options{Instrument: &bad})

	var repErr *ReportError
	if !errors.As(err, &repErr) {
		t.Fatalf("Expected ReportError, got %T", err)
	}
	if repErr.Stage != "instrument" {
		t.Errorf("Expected stage 'instrument', got %q", repErr.Stage)
	}
	var cfgErr *instrument.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("Expected ConfigError in the chain, got %v", err)
	}
	if cfgErr.Field != "questions" {
		t.Errorf("Expected field 'questions', got %q", cfgErr.Field)
	}
}

func TestPipelineIdempotence(t *testing.T) {
	path := writeSurveyCSV(t)
	inst := instrument.Default()
	layout := render.DefaultLayout()

	run := func() (string, []byte) {
		report, err := Generate(path, DefaultOptions())
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		svg := render.Document(report, inst, layout)
		jsonData, err := ToJSON(report, true)
		if err != nil {
			t.Fatalf("ToJSON failed: %v", err)
		}
		return svg, jsonData
	}

	svg1, json1 := run()
	svg2, json2 := run()

	if svg1 != svg2 {
		t.Error("Repeated runs produced different SVG documents")
	}
	if string(json1) != string(json2) {
		t.Error("Repeated runs produced different JSON documents")
	}
}

func TestToJSON(t *testing.T) {
	report := &models.Report{
		Title:      "T",
		SampleSize: 3,
		Summaries: []models.Summary{
			{Column: "Q1", Label: "L", Entries: []models.Entry{{Answer: "Yes", Count: 3}}, Total: 3},
		},
	}

	data, err := ToJSON(report, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	var decoded models.Report
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to decode JSON: %v", err)
	}
	if decoded.SampleSize != 3 || len(decoded.Summaries) != 1 {
		t.Errorf("Round trip mismatch: %+v", decoded)
	}

	prettyData, err := ToJSON(report, true)
	if err != nil {
		t.Fatalf("ToJSON pretty failed: %v", err)
	}
	if !strings.Contains(string(prettyData), "\n  ") {
		t.Error("Pretty output is not indented")
	}
}
