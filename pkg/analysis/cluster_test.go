package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/scout/pkg/analysis"
	"github.com/umputun/scout/pkg/domain"
)

func entryWithKeywords(title, source string, topics []string, kws ...string) domain.Entry {
	return domain.Entry{Title: title, Source: source, SourceTopics: topics, Keywords: kws}
}

func TestBuildClusters_MergesOnSeedOverlap(t *testing.T) {
	entries := []domain.Entry{
		entryWithKeywords("first", "A", []string{"ai"}, "agents", "transform", "telecom", "voice"),
		entryWithKeywords("second", "B", []string{"dev-tools"}, "agents", "transform", "telecom", "tools"),
	}

	clusters := analysis.BuildClusters(entries)
	require.Len(t, clusters, 1)

	c := clusters[0]
	assert.Len(t, c.Entries, 2)
	assert.Equal(t, "first", c.Entries[0].Title, "seed is the first entry")
	assert.Equal(t, map[string]int{"agents": 2, "transform": 2, "telecom": 2, "voice": 1, "tools": 1}, c.KeywordCounts)
	assert.Equal(t, map[string]struct{}{"A": {}, "B": {}}, c.Sources)
	assert.Equal(t, map[string]struct{}{"ai": {}, "dev-tools": {}}, c.Topics)
}

func TestBuildClusters_SeedOnlyComparison(t *testing.T) {
	// b joins a's cluster, c overlaps member b but not seed a, so c stays out
	a := entryWithKeywords("a", "A", nil, "alpha", "beta", "gamma", "delta")
	b := entryWithKeywords("b", "B", nil, "alpha", "beta", "gamma", "epsilon")
	c := entryWithKeywords("c", "C", nil, "epsilon", "zeta", "eta")

	require.Greater(t, analysis.Similarity(b.Keywords, c.Keywords), 0.15)
	require.Zero(t, analysis.Similarity(a.Keywords, c.Keywords))

	clusters := analysis.BuildClusters([]domain.Entry{a, b, c})
	require.Len(t, clusters, 2)
	assert.Len(t, clusters[0].Entries, 2)
	assert.Equal(t, "c", clusters[1].Entries[0].Title)
}

func TestBuildClusters_ThresholdIsExclusive(t *testing.T) {
	// 3 shared keywords, union of 20, similarity lands on 0.15 exactly
	shared := []string{"one", "two", "three"}
	a := append(append([]string{}, shared...), "aaa", "bbb", "ccc", "ddd", "eee", "fff", "ggg", "hhh", "iii")
	b := append(append([]string{}, shared...), "jjj", "kkk", "lll", "mmm", "nnn", "ooo", "ppp", "qqq")
	require.InDelta(t, 0.15, analysis.Similarity(a, b), 1e-9)

	clusters := analysis.BuildClusters([]domain.Entry{
		entryWithKeywords("first", "A", nil, a...),
		entryWithKeywords("second", "B", nil, b...),
	})
	assert.Len(t, clusters, 2, "similarity must exceed the threshold, not just reach it")
}

func TestBuildClusters_PartitionAndOrder(t *testing.T) {
	entries := []domain.Entry{
		entryWithKeywords("e0", "A", nil, "alpha", "beta", "gamma"),
		entryWithKeywords("e1", "B", nil, "delta", "epsilon", "zeta"),
		entryWithKeywords("e2", "C", nil, "alpha", "beta", "theta"),
		entryWithKeywords("e3", "D", nil), // no keywords, always isolated
		entryWithKeywords("e4", "E", nil, "delta", "epsilon", "iota"),
	}

	clusters := analysis.BuildClusters(entries)

	total := 0
	seen := map[string]int{}
	for _, c := range clusters {
		total += len(c.Entries)
		for _, e := range c.Entries {
			seen[e.Title]++
		}
	}
	assert.Equal(t, len(entries), total)
	for title, n := range seen {
		assert.Equal(t, 1, n, "entry %s must belong to exactly one cluster", title)
	}

	// clusters come out in seed input order
	require.Len(t, clusters, 3)
	assert.Equal(t, "e0", clusters[0].Entries[0].Title)
	assert.Equal(t, "e1", clusters[1].Entries[0].Title)
	assert.Equal(t, "e3", clusters[2].Entries[0].Title)

	// deterministic across runs
	again := analysis.BuildClusters(entries)
	require.Len(t, again, len(clusters))
	for i := range clusters {
		assert.Equal(t, clusters[i].Entries, again[i].Entries)
		assert.Equal(t, clusters[i].KeywordCounts, again[i].KeywordCounts)
	}
}

func TestCluster_TopKeywords(t *testing.T) {
	entries := []domain.Entry{
		entryWithKeywords("first", "A", nil, "voice", "agents", "rise", "agents", "transform", "telecom"),
		entryWithKeywords("second", "B", nil, "agent", "tools", "agents", "transform", "telecom"),
	}
	clusters := analysis.BuildClusters(entries)
	require.Len(t, clusters, 1)

	// agents=3 leads, transform=2 and telecom=2 keep first-seen order, then singles
	assert.Equal(t, []string{"agents", "transform", "telecom", "voice", "rise"}, clusters[0].TopKeywords(5))
	assert.Equal(t, []string{"agents"}, clusters[0].TopKeywords(1))
	assert.Len(t, clusters[0].TopKeywords(100), 7)
}
