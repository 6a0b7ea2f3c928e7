package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/instrument"
	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/models"
)

// fontFamily is the font stack applied to every text element.
const fontFamily = "Segoe UI, Arial, sans-serif"

// labelInsideThreshold is the segment width above which the answer text
// and percentage render centered inside the segment. Narrower segments
// get the percentage just outside to the right instead, so text never
// overflows the segment.
const labelInsideThreshold = 115.0

// Document renders the report as a complete SVG document. The output
// embeds its gradient and shadow definitions and references no external
// resources. Rendering is deterministic: the same report and layout
// always produce byte-identical output.
func Document(rep *models.Report, inst instrument.Instrument, l Layout) string {
	parts := []string{
		fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, l.Width, l.Height, l.Width, l.Height),
		`<defs>`,
		`  <linearGradient id="bg" x1="0" y1="0" x2="1" y2="1">`,
		`    <stop offset="0%" stop-color="#f7f9fc"/>`,
		`    <stop offset="100%" stop-color="#edf1f8"/>`,
		`  </linearGradient>`,
		`  <filter id="cardShadow" x="-10%" y="-10%" width="130%" height="130%">`,
		`    <feDropShadow dx="0" dy="4" stdDeviation="6" flood-color="#8fa2c0" flood-opacity="0.2"/>`,
		`  </filter>`,
		`</defs>`,
		fmt.Sprintf(`<rect x="0" y="0" width="%d" height="%d" fill="url(#bg)"/>`, l.Width, l.Height),
		fmt.Sprintf(`<text x="%d" y="72" font-size="44" font-family="%s" font-weight="700" fill="#1d2d44">%s</text>`, l.LeftMargin, fontFamily, rep.Title),
		fmt.Sprintf(`<text x="%d" y="110" font-size="22" font-family="%s" fill="#334e68">%s</text>`, l.LeftMargin, fontFamily, rep.Subtitle),
		fmt.Sprintf(`<text x="%d" y="140" font-size="18" font-family="%s" fill="#486581">n = %d completed responses</text>`, l.LeftMargin, fontFamily, rep.SampleSize),
	}

	for i, s := range rep.Summaries {
		y := l.TopMargin + i*l.RowGap
		parts = append(parts,
			fmt.Sprintf(`<rect x="70" y="%d" width="1260" height="92" rx="16" fill="#ffffff" filter="url(#cardShadow)"/>`, y-44),
			fmt.Sprintf(`<text x="%d" y="%d" font-size="22" font-family="%s" font-weight="600" fill="#102a43">%s</text>`, l.LeftMargin, y-8, fontFamily, s.Label),
		)
		parts = appendSegments(parts, s, inst, l, y)
	}

	parts = append(parts,
		fmt.Sprintf(`<text x="%d" y="%d" font-size="14" font-family="%s" fill="#627d98">%s</text>`, l.LeftMargin, l.Height-40, fontFamily, rep.SourceNote),
		`</svg>`,
	)
	return strings.Join(parts, "\n")
}

// appendSegments writes one stacked bar in entry order. Segment widths
// are proportional to each answer's share of the total, floored at 1.0
// so near-zero answers stay visible. A zero total produces no width and
// no percentage; the share guards are separate so neither divides by
// zero.
func appendSegments(parts []string, s models.Summary, inst instrument.Instrument, l Layout, y int) []string {
	x := float64(l.ChartLeft)
	for _, e := range s.Entries {
		pct := 0.0
		segW := 0.0
		if s.Total > 0 {
			share := float64(e.Count) / float64(s.Total)
			pct = share * 100
			segW = math.Max(1.0, float64(l.ChartWidth)*share)
		}
		parts = append(parts, fmt.Sprintf(`<rect x="%.1f" y="%d" width="%.1f" height="%d" fill="%s"/>`, x, y, segW, l.BarHeight, inst.Color(e.Answer)))

		if segW > labelInsideThreshold {
			parts = append(parts,
				fmt.Sprintf(`<text x="%.1f" y="%d" text-anchor="middle" font-size="13" font-family="%s" fill="#ffffff" font-weight="600">%s</text>`, x+segW/2, y+21, fontFamily, e.Answer),
				fmt.Sprintf(`<text x="%.1f" y="%d" text-anchor="middle" font-size="15" font-family="%s" fill="#ffffff" font-weight="700">%.1f%%</text>`, x+segW/2, y+39, fontFamily, pct),
			)
		} else {
			parts = append(parts, fmt.Sprintf(`<text x="%.1f" y="%d" font-size="13" font-family="%s" fill="#334e68">%.1f%%</text>`, x+segW+6, y+28, fontFamily, pct))
		}
		x += segW
	}
	return parts
}
