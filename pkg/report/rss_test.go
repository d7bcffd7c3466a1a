package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/scout/pkg/config"
	"github.com/umputun/scout/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com")

	pubTime := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)
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
					{Title: "AI agents transform telecom networks", Link: "https://ai.example.com/agents", Published: pubTime},
					{Title: "Telecom operators deploy voice agents", Link: "https://voice.example.com/deploy", Published: pubTime},
				},
			},
			{
				Score:    0.6,
				Headline: "Voice networks adopt wideband codecs",
				Sources:  []string{"Voice Watch"},
				Topics:   []string{"telecom"},
				Angle:    "How this impacts the VoIP/UCaaS industry and vCon adoption",
				Entries: []domain.Entry{
					{Title: "Voice networks adopt wideband codecs", Link: "https://voice.example.com/codecs", Published: pubTime},
				},
			},
		},
	}

	t.Run("all suggestions", func(t *testing.T) {
		rss, err := generator.GenerateRSS(r, "")
		require.NoError(t, err)

		// check basic structure
		assert.Contains(t, rss, `<?xml version="1.0" encoding="UTF-8"?>`)
		assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
		assert.Contains(t, rss, `<title>Scout - Content Suggestions</title>`)
		assert.Contains(t, rss, `<link>https://example.com/</link>`)
		assert.Contains(t, rss, `<description>Trending content ideas from the last 7 days</description>`)
		assert.Contains(t, rss, `<lastBuildDate>Fri, 01 Aug 2025 14:30:00 +0000</lastBuildDate>`)

		// check atom self link (namespace is on the link element)
		assert.Contains(t, rss, `<link xmlns="http://www.w3.org/2005/Atom" href="https://example.com/rss" rel="self" type="application/rss+xml"></link>`)

		// check items
		assert.Contains(t, rss, `<title>[1.6] AI agents transform telecom networks</title>`)
		assert.Contains(t, rss, `<link>https://ai.example.com/agents</link>`)
		assert.Contains(t, rss, `<guid>https://ai.example.com/agents</guid>`)
		assert.Contains(t, rss, `<pubDate>Fri, 01 Aug 2025 12:00:00 +0000</pubDate>`)
		assert.Contains(t, rss, `Score: 1.6 - Connect this to vCon and AI-powered voice intelligence in telecom`)
		assert.Contains(t, rss, `Covered by: AI Weekly, Voice Watch`)
		assert.Contains(t, rss, `Keywords: agents, telecom`)
		assert.Contains(t, rss, `<category>ai</category>`)
		assert.Contains(t, rss, `<category>telecom</category>`)

		// check second item
		assert.Contains(t, rss, `<title>[0.6] Voice networks adopt wideband codecs</title>`)
		assert.Contains(t, rss, `<guid>https://voice.example.com/codecs</guid>`)
	})

	t.Run("filter by topic", func(t *testing.T) {
		rss, err := generator.GenerateRSS(r, "ai")
		require.NoError(t, err)

		assert.Contains(t, rss, `<title>Scout - ai</title>`)
		assert.Contains(t, rss, `<link xmlns="http://www.w3.org/2005/Atom" href="https://example.com/rss/ai" rel="self" type="application/rss+xml"></link>`)
		assert.Contains(t, rss, `<title>[1.6] AI agents transform telecom networks</title>`)
		assert.NotContains(t, rss, `Voice networks adopt wideband codecs`)
	})

	t.Run("empty report", func(t *testing.T) {
		empty := &domain.Report{Generated: r.Generated, Days: 7, Suggestions: []domain.Suggestion{}}
		rss, err := generator.GenerateRSS(empty, "")
		require.NoError(t, err)

		assert.Contains(t, rss, `<channel>`)
		assert.NotContains(t, rss, `<item>`)
	})

	t.Run("trailing slash in base URL", func(t *testing.T) {
		gen := NewGenerator("https://example.com/")
		rss, err := gen.GenerateRSS(r, "")
		require.NoError(t, err)

		assert.Contains(t, rss, `<link>https://example.com/</link>`)
		assert.Contains(t, rss, `href="https://example.com/rss"`)
		assert.NotContains(t, rss, `https://example.com//`)
	})
}

func TestGenerator_convertToRSSItem(t *testing.T) {
	generator := NewGenerator("https://example.com")

	t.Run("suggestion without entries", func(t *testing.T) {
		item := generator.convertToRSSItem(domain.Suggestion{
			Score:    0.3,
			Headline: "Quiet week in storage",
			Topics:   []string{"storage"},
			Angle:    "Industry implications and practical takeaways for technical leaders",
		})

		assert.Equal(t, "[0.3] Quiet week in storage", item.Title)
		assert.Empty(t, item.Link)
		assert.Empty(t, item.GUID)
		assert.Empty(t, item.PubDate)
	})

	t.Run("description skips empty sections", func(t *testing.T) {
		item := generator.convertToRSSItem(domain.Suggestion{
			Score: 0.3,
			Angle: "Industry implications and practical takeaways for technical leaders",
		})

		assert.Equal(t, "Score: 0.3 - Industry implications and practical takeaways for technical leaders", item.Description)
	})
}

func TestGenerator_GenerateOPML(t *testing.T) {
	generator := NewGenerator("https://example.com")

	sources := []config.Source{
		{Name: "AI Weekly", Feed: "https://ai.example.com/feed", Topics: []string{"ai"}, Category: "ai"},
		{Name: "Voice Watch", Feed: "https://voice.example.com/rss", Topics: []string{"telecom"}, Category: "telecom"},
		{Name: "No Feed Source", Topics: []string{"misc"}, Category: "misc"},
	}

	opml, err := generator.GenerateOPML(sources)
	require.NoError(t, err)

	assert.Contains(t, opml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, opml, `<opml version="2.0">`)
	assert.Contains(t, opml, `<title>Scout Source Subscriptions</title>`)

	assert.Contains(t, opml, `text="AI Weekly"`)
	assert.Contains(t, opml, `title="AI Weekly"`)
	assert.Contains(t, opml, `type="rss"`)
	assert.Contains(t, opml, `xmlUrl="https://ai.example.com/feed"`)

	assert.Contains(t, opml, `text="Voice Watch"`)
	assert.Contains(t, opml, `xmlUrl="https://voice.example.com/rss"`)

	// sources without a feed URL are not subscriptions
	assert.NotContains(t, opml, "No Feed Source")
}
