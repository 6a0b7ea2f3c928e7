// Package tally counts answer distributions for survey question columns.
package tally

import (
	"sort"
	"strings"

	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/instrument"
	"github.com/cpapathways/surveyviz-go/pkg/surveyviz/models"
)

// Summarize counts trimmed, non-empty answers in one question column
// and orders the distinct answers by the instrument scale. Answers with
// equal sort keys keep first-appearance order, so repeated runs over
// the same input produce identical summaries.
func Summarize(rows []models.Row, q models.Question, inst instrument.Instrument) models.Summary {
	counts := make(map[string]int)
	var order []string
	for _, r := range rows {
		answer := strings.TrimSpace(r.Get(q.Column))
		if answer == "" {
			continue
		}
		if _, seen := counts[answer]; !seen {
			order = append(order, answer)
		}
		counts[answer]++
	}

	entries := make([]models.Entry, 0, len(order))
	total := 0
	for _, answer := range order {
		entries = append(entries, models.Entry{Answer: answer, Count: counts[answer]})
		total += counts[answer]
	}
	sort.SliceStable(entries, func(a, b int) bool {
		return inst.SortKey(entries[a].Answer) < inst.SortKey(entries[b].Answer)
	})

	return models.Summary{
		Column:  q.Column,
		Label:   q.Label,
		Entries: entries,
		Total:   total,
	}
}
