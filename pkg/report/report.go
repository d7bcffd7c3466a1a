// Package report renders monitoring reports as text, JSON, RSS and OPML.
package report

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/umputun/scout/pkg/domain"
)

const ruleWidth = 70

// FormatText renders the report for terminal output
func FormatText(r *domain.Report) string {
	var lines []string
	lines = append(lines, strings.Repeat("=", ruleWidth))
	lines = append(lines, fmt.Sprintf("📊 CONTENT MONITOR REPORT - %s", r.Generated.Format("2006-01-02 15:04")))
	lines = append(lines, fmt.Sprintf("📅 Monitoring last %d days", r.Days))
	lines = append(lines, strings.Repeat("=", ruleWidth))
	lines = append(lines, "")

	if len(r.Suggestions) == 0 {
		lines = append(lines, "No trending topics found in the monitored timeframe.")
		return strings.Join(lines, "\n")
	}

	for i, sug := range r.Suggestions {
		lines = append(lines, fmt.Sprintf("#%d - Score: %s %s", i+1, formatScore(sug.Score), scoreBadge(sug.Score)))
		lines = append(lines, strings.Repeat("-", ruleWidth))
		lines = append(lines, fmt.Sprintf("📰 Headline: %s", sug.Headline))
		lines = append(lines, fmt.Sprintf("🎯 Topics: %s", strings.Join(sug.Topics, ", ")))
		lines = append(lines, fmt.Sprintf("📡 Covered by: %s", strings.Join(sug.Sources, ", ")))
		lines = append(lines, fmt.Sprintf("💡 Angle: %s", sug.Angle))
		lines = append(lines, fmt.Sprintf("📎 %d related article(s)", len(sug.Entries)))

		// show top 2 articles
		top := sug.Entries
		if len(top) > 2 {
			top = top[:2]
		}
		for _, entry := range top {
			lines = append(lines, fmt.Sprintf("   • %s", truncate(entry.Title, 80)))
			lines = append(lines, fmt.Sprintf("     %s", entry.Link))
		}

		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// FormatJSON renders the report as indented JSON
func FormatJSON(r *domain.Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), nil
}

// formatScore renders a score with trailing zeros trimmed, integral
// values keep one decimal so 2 prints as "2.0"
func formatScore(score float64) string {
	s := strconv.FormatFloat(score, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// scoreBadge marks strong suggestions, above 1.5 gets the flame
func scoreBadge(score float64) string {
	switch {
	case score > 1.5:
		return "🔥"
	case score > 1.0:
		return "⭐"
	}
	return ""
}

// truncate shortens s to at most maxLen runes
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
