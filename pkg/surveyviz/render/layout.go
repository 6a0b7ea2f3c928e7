// Package render lays summaries out as stacked-bar rows on a fixed
// canvas and serializes the result as a self-contained SVG document.
package render

// Layout holds the canvas geometry for the report.
type Layout struct {
	// Width is the canvas width.
	Width int
	// Height is the canvas height.
	Height int
	// LeftMargin is the x position of header, question label, and footer text.
	LeftMargin int
	// ChartLeft is the x position where each stacked bar starts.
	ChartLeft int
	// ChartWidth is the full width of a stacked bar.
	ChartWidth int
	// TopMargin is the y position of the first question row.
	TopMargin int
	// RowGap is the vertical pitch between question rows.
	RowGap int
	// BarHeight is the height of each bar segment.
	BarHeight int
}

// DefaultLayout returns the report's canvas geometry.
func DefaultLayout() Layout {
	return Layout{
		Width:      1400,
		Height:     980,
		LeftMargin: 90,
		ChartLeft:  520,
		ChartWidth: 780,
		TopMargin:  170,
		RowGap:     140,
		BarHeight:  46,
	}
}
