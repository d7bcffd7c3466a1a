// Package analysis implements the content suggestion engine: keyword
// extraction, Jaccard similarity, single-pass greedy clustering, relevance
// scoring and suggestion building. Everything here is a pure function of
// its input; the package performs no I/O and keeps no state between runs,
// so it is safe to call concurrently on independent inputs.
package analysis

import (
	"sort"

	"github.com/umputun/scout/pkg/domain"
)

const (
	maxSuggestions = 5
	maxTopKeywords = 5
)

// angle strings attached to suggestions, picked by topic priority
const (
	angleVoiceAI  = "Connect this to vCon and AI-powered voice intelligence in telecom"
	angleVoIP     = "How this impacts the VoIP/UCaaS industry and vCon adoption"
	angleDevTools = "Developer perspective: practical applications and tooling"
	angleAIBridge = "Bridge this AI development with telecom/voice applications"
	angleGeneric  = "Industry implications and practical takeaways for technical leaders"
)

// Suggest runs the full engine over entries: computes each entry's
// keywords from its title and summary, clusters entries by keyword
// similarity, scores every cluster with the supplied topic weights and
// returns at most five suggestions sorted by score descending. Equal
// scores keep cluster discovery order. The input slice is left unmodified.
func Suggest(entries []domain.Entry, weights map[string]float64) []domain.Suggestion {
	prepared := make([]domain.Entry, len(entries))
	copy(prepared, entries)
	for i := range prepared {
		prepared[i].Keywords = Keywords(prepared[i].Title + " " + prepared[i].Summary)
	}

	clusters := BuildClusters(prepared)

	suggestions := make([]domain.Suggestion, 0, len(clusters))
	for _, cluster := range clusters {
		suggestions = append(suggestions, BuildSuggestion(cluster, ScoreCluster(cluster, weights)))
	}

	sort.SliceStable(suggestions, func(i, j int) bool { return suggestions[i].Score > suggestions[j].Score })
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	return suggestions
}

// BuildSuggestion turns a scored cluster into a suggestion: headline is the
// seed entry's title verbatim, keywords are the cluster's top five tokens,
// sources and topics are sorted ascending and the angle is picked from the
// cluster topics.
func BuildSuggestion(c *Cluster, score float64) domain.Suggestion {
	return domain.Suggestion{
		Score:    score,
		Headline: c.seed().Title,
		Keywords: c.TopKeywords(maxTopKeywords),
		Sources:  sortedKeys(c.Sources),
		Topics:   sortedKeys(c.Topics),
		Angle:    angleFor(c.Topics),
		Entries:  c.Entries,
	}
}

// angleFor picks the suggested angle by topic priority: voice and telecom
// topics first (with an AI crossover variant), then AI topics (with a
// dev-tools variant), then the generic fallback. Topic matching is
// case-sensitive.
func angleFor(topics map[string]struct{}) string {
	has := func(t string) bool {
		_, ok := topics[t]
		return ok
	}

	if has("voip") || has("telecom") || has("vcon") || has("voice-intelligence") {
		if has("ai") {
			return angleVoiceAI
		}
		return angleVoIP
	}

	if has("ai") || has("llm") || has("ai-agents") {
		if has("dev-tools") {
			return angleDevTools
		}
		return angleAIBridge
	}

	return angleGeneric
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
