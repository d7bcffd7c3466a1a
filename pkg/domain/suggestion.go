package domain

import "time"

// Suggestion represents a ranked content idea derived from one cluster of
// related entries. Sources and Topics are sorted ascending; Entries keep
// the cluster's discovery order with the seed entry first.
type Suggestion struct {
	Score    float64  `json:"score"`
	Headline string   `json:"headline"`
	Keywords []string `json:"keywords,omitempty"`
	Sources  []string `json:"sources"`
	Topics   []string `json:"topics"`
	Angle    string   `json:"angle"`
	Entries  []Entry  `json:"entries"`
}

// Report represents the result of a single monitoring run
type Report struct {
	Generated   time.Time    `json:"generated"`
	Days        int          `json:"days"`
	Suggestions []Suggestion `json:"suggestions"`
}
