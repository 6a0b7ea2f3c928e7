package models

// Entry is one distinct answer and its occurrence count within a question.
type Entry struct {
	// Answer is the trimmed answer text.
	Answer string `json:"answer"`
	// Count is the number of responses with this exact answer.
	Count int `json:"count"`
}

// Summary holds the counted answer distribution for one question.
type Summary struct {
	// Column is the question column key the summary was built from.
	Column string `json:"column"`
	// Label is the question's display label.
	Label string `json:"label"`
	// Entries lists distinct answers in rank order.
	Entries []Entry `json:"entries,omitempty"`
	// Total is the number of non-empty responses for the question.
	Total int `json:"total"`
}
