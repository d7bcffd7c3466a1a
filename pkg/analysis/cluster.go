package analysis

import (
	"sort"

	"github.com/umputun/scout/pkg/domain"
)

// similarityThreshold is the minimum keyword overlap with the cluster seed
// (strictly greater) for an entry to join the cluster.
const similarityThreshold = 0.15

// Cluster groups entries whose keywords overlap with the cluster's seed
// entry. Entries keep discovery order with the seed first; KeywordCounts
// aggregates token frequencies across all members; Sources and Topics are
// the unions of member sources and declared source topics. A cluster is
// mutable only while BuildClusters runs.
type Cluster struct {
	Entries       []domain.Entry
	KeywordCounts map[string]int
	Sources       map[string]struct{}
	Topics        map[string]struct{}

	keywordOrder []string // tokens in first-seen order, breaks frequency ties
}

// newCluster starts a cluster seeded with the given entry
func newCluster(seed domain.Entry) *Cluster {
	c := &Cluster{
		KeywordCounts: map[string]int{},
		Sources:       map[string]struct{}{},
		Topics:        map[string]struct{}{},
	}
	c.add(seed)
	return c
}

// add appends an entry and merges its keywords, source and topics
func (c *Cluster) add(e domain.Entry) {
	c.Entries = append(c.Entries, e)
	for _, kw := range e.Keywords {
		if _, seen := c.KeywordCounts[kw]; !seen {
			c.keywordOrder = append(c.keywordOrder, kw)
		}
		c.KeywordCounts[kw]++
	}
	c.Sources[e.Source] = struct{}{}
	for _, topic := range e.SourceTopics {
		c.Topics[topic] = struct{}{}
	}
}

// seed returns the cluster's first entry
func (c *Cluster) seed() domain.Entry { return c.Entries[0] }

// TopKeywords returns the n most frequent tokens of the cluster, ties
// resolved by the order tokens first appeared across member entries.
func (c *Cluster) TopKeywords(n int) []string {
	tokens := make([]string, len(c.keywordOrder))
	copy(tokens, c.keywordOrder)
	sort.SliceStable(tokens, func(i, j int) bool {
		return c.KeywordCounts[tokens[i]] > c.KeywordCounts[tokens[j]]
	})
	if len(tokens) > n {
		tokens = tokens[:n]
	}
	return tokens
}

// BuildClusters partitions entries into clusters with a single greedy pass
// over the input order: each unused entry seeds a new cluster, then claims
// every subsequent unused entry whose keyword similarity to the seed
// exceeds the threshold. Membership is decided against the seed only,
// never against other members, and the comparison is intentionally
// non-transitive. Clusters come out in seed input order; every input entry
// lands in exactly one cluster. Entries are expected to carry precomputed
// Keywords.
func BuildClusters(entries []domain.Entry) []*Cluster {
	var clusters []*Cluster
	used := make([]bool, len(entries))

	for i, entry := range entries {
		if used[i] {
			continue
		}

		cluster := newCluster(entry)
		used[i] = true

		for j := i + 1; j < len(entries); j++ {
			if used[j] {
				continue
			}
			if Similarity(entry.Keywords, entries[j].Keywords) > similarityThreshold {
				cluster.add(entries[j])
				used[j] = true
			}
		}

		clusters = append(clusters, cluster)
	}

	return clusters
}
