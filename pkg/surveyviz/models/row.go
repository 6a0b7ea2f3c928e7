// Package models defines data structures for survey summarization.
package models

// Row represents a single survey response as a mapping from column
// name to cell text. Missing columns read as the empty string.
type Row map[string]string

// Get returns the cell text for a column, or "" when the column is absent.
func (r Row) Get(column string) string {
	return r[column]
}
