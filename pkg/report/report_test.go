package report

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/scout/pkg/domain"
)

func TestFormatText(t *testing.T) {
	r := &domain.Report{
		Generated: time.Date(2025, 8, 1, 14, 30, 0, 0, time.UTC),
		Days:      7,
		Suggestions: []domain.Suggestion{
			{
				Score:    1.6,
				Headline: "AI agents transform telecom networks",
				Keywords: []string{"agents", "telecom"},
				Sources:  []string{"AI Weekly", "Voice Watch"},
				Topics:   []string{"ai", "telecom"},
				Angle:    "Connect this to vCon and AI-powered voice intelligence in telecom",
				Entries: []domain.Entry{
					{Title: "AI agents transform telecom networks", Link: "https://ai.example.com/agents"},
					{Title: "Telecom operators deploy voice agents", Link: "https://voice.example.com/deploy"},
					{Title: "Third article stays out of the listing", Link: "https://voice.example.com/third"},
				},
			},
			{
				Score:    1.2,
				Headline: "Developers adopt wideband codecs",
				Sources:  []string{"Voice Watch"},
				Topics:   []string{"telecom"},
				Angle:    "How this impacts the VoIP/UCaaS industry and vCon adoption",
				Entries: []domain.Entry{
					{Title: strings.Repeat("x", 85), Link: "https://voice.example.com/long"},
				},
			},
			{
				Score:    0.3,
				Headline: "Quiet week in storage",
				Sources:  []string{"Infra Digest"},
				Topics:   []string{"storage"},
				Angle:    "Industry implications and practical takeaways for technical leaders",
				Entries: []domain.Entry{
					{Title: "Quiet week in storage", Link: "https://infra.example.com/quiet"},
				},
			},
		},
	}

	expected := strings.Join([]string{
		strings.Repeat("=", 70),
		"📊 CONTENT MONITOR REPORT - 2025-08-01 14:30",
		"📅 Monitoring last 7 days",
		strings.Repeat("=", 70),
		"",
		"#1 - Score: 1.6 🔥",
		strings.Repeat("-", 70),
		"📰 Headline: AI agents transform telecom networks",
		"🎯 Topics: ai, telecom",
		"📡 Covered by: AI Weekly, Voice Watch",
		"💡 Angle: Connect this to vCon and AI-powered voice intelligence in telecom",
		"📎 3 related article(s)",
		"   • AI agents transform telecom networks",
		"     https://ai.example.com/agents",
		"   • Telecom operators deploy voice agents",
		"     https://voice.example.com/deploy",
		"",
		"#2 - Score: 1.2 ⭐",
		strings.Repeat("-", 70),
		"📰 Headline: Developers adopt wideband codecs",
		"🎯 Topics: telecom",
		"📡 Covered by: Voice Watch",
		"💡 Angle: How this impacts the VoIP/UCaaS industry and vCon adoption",
		"📎 1 related article(s)",
		"   • " + strings.Repeat("x", 80),
		"     https://voice.example.com/long",
		"",
		"#3 - Score: 0.3 ",
		strings.Repeat("-", 70),
		"📰 Headline: Quiet week in storage",
		"🎯 Topics: storage",
		"📡 Covered by: Infra Digest",
		"💡 Angle: Industry implications and practical takeaways for technical leaders",
		"📎 1 related article(s)",
		"   • Quiet week in storage",
		"     https://infra.example.com/quiet",
		"",
	}, "\n")

	assert.Equal(t, expected, FormatText(r))
}

func TestFormatText_Empty(t *testing.T) {
	r := &domain.Report{
		Generated:   time.Date(2025, 8, 1, 14, 30, 0, 0, time.UTC),
		Days:        3,
		Suggestions: []domain.Suggestion{},
	}

	expected := strings.Join([]string{
		strings.Repeat("=", 70),
		"📊 CONTENT MONITOR REPORT - 2025-08-01 14:30",
		"📅 Monitoring last 3 days",
		strings.Repeat("=", 70),
		"",
		"No trending topics found in the monitored timeframe.",
	}, "\n")

	assert.Equal(t, expected, FormatText(r))
}

func TestFormatJSON(t *testing.T) {
	r := &domain.Report{
		Generated:   time.Date(2025, 8, 1, 14, 30, 0, 0, time.UTC),
		Days:        7,
		Suggestions: []domain.Suggestion{},
	}

	out, err := FormatJSON(r)
	require.NoError(t, err)

	expected := `{
  "generated": "2025-08-01T14:30:00Z",
  "days": 7,
  "suggestions": []
}`
	assert.Equal(t, expected, out)
}

func TestFormatJSON_Roundtrip(t *testing.T) {
	r := &domain.Report{
		Generated: time.Date(2025, 8, 1, 14, 30, 0, 0, time.UTC),
		Days:      7,
		Suggestions: []domain.Suggestion{
			{
				Score:    0.43,
				Headline: "AI agents transform telecom networks",
				Keywords: []string{"agents", "transform", "telecom"},
				Sources:  []string{"AI Weekly"},
				Topics:   []string{"ai", "telecom"},
				Angle:    "Connect this to vCon and AI-powered voice intelligence in telecom",
				Entries: []domain.Entry{{
					Title:        "AI agents transform telecom networks",
					Link:         "https://ai.example.com/agents",
					Summary:      "Networks everywhere",
					Published:    time.Date(2025, 7, 30, 9, 0, 0, 0, time.UTC),
					Source:       "AI Weekly",
					SourceTopics: []string{"ai"},
					Keywords:     []string{"agents", "transform", "telecom", "networks"},
				}},
			},
		},
	}

	out, err := FormatJSON(r)
	require.NoError(t, err)
	assert.Contains(t, out, `"score": 0.43`)
	assert.Contains(t, out, `"source_topics"`)

	var decoded domain.Report
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, r.Days, decoded.Days)
	require.Len(t, decoded.Suggestions, 1)
	assert.Equal(t, r.Suggestions[0], decoded.Suggestions[0])
}

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.43, "0.43"},
		{0.3, "0.3"},
		{1.5, "1.5"},
		{1, "1.0"},
		{2, "2.0"},
		{0, "0.0"},
		{12.25, "12.25"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatScore(tt.score))
		})
	}
}

func TestScoreBadge(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.6, "🔥"},
		{1.51, "🔥"},
		{1.5, "⭐"},
		{1.2, "⭐"},
		{1.0, ""},
		{0.43, ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, scoreBadge(tt.score), "score %v", tt.score)
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 80))
	assert.Equal(t, strings.Repeat("x", 80), truncate(strings.Repeat("x", 85), 80))
	assert.Equal(t, "hél", truncate("héllo wörld", 3), "truncation counts runes not bytes")
	assert.Equal(t, "", truncate("", 80))
}
