// Package main provides the CLI entry point for surveyviz-go.
package main

import (
	"fmt"
	"os"

	"github.com/cpapathways/surveyviz-go/pkg/surveyviz"
	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/instrument"
	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/render"
	"github.com/spf13/cobra"
)

// Invoking with no arguments reads the survey export at the repository
// root and writes the SVG under visuals/.
const (
	defaultInput  = "Alternative CPA Pathways Survey_December 31, 2025_09.45.csv"
	defaultOutput = "visuals/cpa_survey_key_findings.svg"
)

var (
	outputPath     string
	format         string
	instrumentPath string
	jsonPath       string
	pretty         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "surveyviz [input-file]",
		Short: "Render survey answer distributions as an SVG report",
		Long: `surveyviz-go tallies completed survey responses for each instrument
question and renders the distributions as stacked-bar rows in a single
SVG document.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", defaultOutput, "Output SVG file path")
	rootCmd.Flags().StringVar(&format, "format", "auto", "Input format: auto, csv, tsv, xlsx")
	rootCmd.Flags().StringVar(&instrumentPath, "instrument", "", "YAML instrument file (default: built-in survey)")
	rootCmd.Flags().StringVar(&jsonPath, "json", "", "Also write the tallied summaries as JSON to this path")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON summaries")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := defaultInput
	if len(args) == 1 {
		inputPath = args[0]
	}

	// Parse format
	var inputFormat surveyviz.Format
	switch format {
	case "auto":
		inputFormat = surveyviz.FormatAuto
	case "csv":
		inputFormat = surveyviz.FormatCSV
	case "tsv":
		inputFormat = surveyviz.FormatTSV
	case "xlsx":
		inputFormat = surveyviz.FormatXLSX
	default:
		return fmt.Errorf("invalid format: %s (must be auto, csv, tsv, or xlsx)", format)
	}

	opts := surveyviz.Options{
		Format: inputFormat,
	}

	// Load instrument
	if instrumentPath != "" {
		inst, err := instrument.LoadFile(instrumentPath)
		if err != nil {
			return fmt.Errorf("instrument load failed: %w", err)
		}
		opts.Instrument = &inst
	}

	// Generate report
	report, err := surveyviz.Generate(inputPath, opts)
	if err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	// Render and write output
	svg := render.Document(report, opts.ResolvedInstrument(), render.DefaultLayout())
	if err := os.WriteFile(outputPath, []byte(svg), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	// Write JSON sidecar
	if jsonPath != "" {
		jsonData, err := surveyviz.ToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(jsonPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write JSON output: %w", err)
		}
	}

	fmt.Printf("Wrote %s\n", outputPath)
	return nil
}
