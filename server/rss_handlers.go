package server

import (
	"log"
	"net/http"

	"github.com/umputun/scout/pkg/report"
)

// rssHandler serves suggestions as an RSS feed
// Supports both /rss/{topic} and /rss?topic=... patterns
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	// get topic from path or query params
	topic := r.PathValue("topic")
	if topic == "" {
		topic = r.URL.Query().Get("topic")
	}

	rep := s.reports.Latest()
	if rep == nil {
		http.Error(w, "Report not ready", http.StatusServiceUnavailable)
		return
	}

	generator := report.NewGenerator(s.config.GetBaseURL())
	rss, err := generator.GenerateRSS(rep, topic)
	if err != nil {
		log.Printf("[ERROR] failed to generate RSS feed: %v", err)
		http.Error(w, "Failed to generate RSS feed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}

// opmlHandler serves the configured sources as an OPML subscription list
func (s *Server) opmlHandler(w http.ResponseWriter, _ *http.Request) {
	generator := report.NewGenerator(s.config.GetBaseURL())
	opml, err := generator.GenerateOPML(s.config.GetSources())
	if err != nil {
		log.Printf("[ERROR] failed to generate OPML: %v", err)
		http.Error(w, "Failed to generate OPML", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/x-opml; charset=utf-8")
	if _, err := w.Write([]byte(opml)); err != nil {
		log.Printf("[ERROR] failed to write OPML response: %v", err)
	}
}
