package domain

import "time"

// Entry represents a single feed item tagged with its source metadata.
// Immutable once constructed; Keywords is derived by the analysis pipeline
// per run and never persisted.
type Entry struct {
	Title        string    `json:"title"`
	Link         string    `json:"link"`
	Summary      string    `json:"summary"`
	Published    time.Time `json:"published"`
	Source       string    `json:"source"`
	SourceTopics []string  `json:"source_topics"`
	Keywords     []string  `json:"keywords,omitempty"`
}
