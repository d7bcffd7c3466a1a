package report

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/scout/pkg/config"
	"github.com/umputun/scout/pkg/domain"
)

// Generator renders reports as RSS feeds and source lists as OPML
type Generator struct {
	baseURL string
}

// NewGenerator creates a feed generator, baseURL is used for channel links
func NewGenerator(baseURL string) *Generator {
	return &Generator{
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GenerateRSS creates an RSS 2.0 feed from report suggestions. An empty
// topic includes every suggestion, otherwise only suggestions tagged with
// that topic make it into the feed.
func (g *Generator) GenerateRSS(r *domain.Report, topic string) (string, error) {
	title := "Scout - Content Suggestions"
	selfLink := g.baseURL + "/rss"
	if topic != "" {
		title = fmt.Sprintf("Scout - %s", topic)
		selfLink = fmt.Sprintf("%s/rss/%s", g.baseURL, topic)
	}

	items := make([]*RSSItem, 0, len(r.Suggestions))
	for _, sug := range r.Suggestions {
		if topic != "" && !hasTopic(sug.Topics, topic) {
			continue
		}
		items = append(items, g.convertToRSSItem(sug))
	}

	feed := &RSS{
		Version: "2.0",
		Atom:    "http://www.w3.org/2005/Atom",
		Channel: &RSSChannel{
			Title:         title,
			Link:          g.baseURL + "/",
			Description:   fmt.Sprintf("Trending content ideas from the last %d days", r.Days),
			AtomLink:      &AtomLink{Href: selfLink, Rel: "self", Type: "application/rss+xml"},
			LastBuildDate: r.Generated.Format(time.RFC1123Z),
			Items:         items,
		},
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal RSS: %w", err)
	}

	return xml.Header + string(output), nil
}

// convertToRSSItem renders one suggestion as an RSS item, the seed entry
// link doubles as the guid
func (g *Generator) convertToRSSItem(sug domain.Suggestion) *RSSItem {
	desc := fmt.Sprintf("Score: %s - %s", formatScore(sug.Score), sug.Angle)
	if len(sug.Sources) > 0 {
		desc += fmt.Sprintf("\nCovered by: %s", strings.Join(sug.Sources, ", "))
	}
	if len(sug.Keywords) > 0 {
		desc += fmt.Sprintf("\nKeywords: %s", strings.Join(sug.Keywords, ", "))
	}

	var link, pubDate string
	if len(sug.Entries) > 0 {
		link = sug.Entries[0].Link
		pubDate = sug.Entries[0].Published.Format(time.RFC1123Z)
	}

	return &RSSItem{
		Title:       fmt.Sprintf("[%s] %s", formatScore(sug.Score), sug.Headline),
		Link:        link,
		GUID:        link,
		Description: desc,
		PubDate:     pubDate,
		Categories:  sug.Topics,
	}
}

// GenerateOPML creates an OPML subscription list from configured sources
func (g *Generator) GenerateOPML(sources []config.Source) (string, error) {
	type outline struct {
		XMLName xml.Name `xml:"outline"`
		Text    string   `xml:"text,attr"`
		Title   string   `xml:"title,attr"`
		Type    string   `xml:"type,attr"`
		XMLUrl  string   `xml:"xmlUrl,attr"`
	}

	type body struct {
		XMLName  xml.Name  `xml:"body"`
		Outlines []outline `xml:"outline"`
	}

	type head struct {
		XMLName     xml.Name `xml:"head"`
		Title       string   `xml:"title"`
		DateCreated string   `xml:"dateCreated"`
	}

	type opml struct {
		XMLName xml.Name `xml:"opml"`
		Version string   `xml:"version,attr"`
		Head    head     `xml:"head"`
		Body    body     `xml:"body"`
	}

	outlines := make([]outline, 0, len(sources))
	for _, src := range sources {
		if src.Feed == "" {
			continue
		}
		outlines = append(outlines, outline{
			Text:   src.Name,
			Title:  src.Name,
			Type:   "rss",
			XMLUrl: src.Feed,
		})
	}

	doc := opml{
		Version: "2.0",
		Head: head{
			Title:       "Scout Source Subscriptions",
			DateCreated: time.Now().Format(time.RFC1123Z),
		},
		Body: body{
			Outlines: outlines,
		},
	}

	output, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal OPML: %w", err)
	}

	return xml.Header + string(output), nil
}

func hasTopic(topics []string, topic string) bool {
	for _, t := range topics {
		if t == topic {
			return true
		}
	}
	return false
}
