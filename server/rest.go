package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// suggestionsHandler returns the latest report as JSON
func (s *Server) suggestionsHandler(w http.ResponseWriter, r *http.Request) {
	report := s.reports.Latest()
	if report == nil {
		renderError(w, r, fmt.Errorf("report not ready"), http.StatusServiceUnavailable)
		return
	}

	renderJSON(w, r, http.StatusOK, report)
}

// statusHandler returns server status with per-source cache state
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}

	if report := s.reports.Latest(); report != nil {
		status["last_update"] = report.Generated
		status["days"] = report.Days
		status["suggestions"] = len(report.Suggestions)
	}

	states, err := s.status.States(r.Context())
	if err != nil {
		log.Printf("[WARN] failed to get source states: %v", err)
	} else {
		status["sources"] = states
	}

	renderJSON(w, r, http.StatusOK, status)
}

// updateHandler triggers an immediate refresh and returns the new report
func (s *Server) updateHandler(w http.ResponseWriter, r *http.Request) {
	report, err := s.reports.RefreshNow(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to refresh report: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, report)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
