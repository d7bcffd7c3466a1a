package analysis

import "math"

const (
	defaultTopicWeight = 0.3
	sourceBoost        = 0.3 // per source beyond the first
	entryBoost         = 0.1 // per entry beyond the first
)

// ScoreCluster rates a cluster by the mean weight of its topics, using
// defaultTopicWeight for topics missing from weights and for clusters with
// no topics at all, multiplied by boosts for source diversity and entry
// count. Singleton clusters get both multipliers at 1.0. The result is
// non-negative and rounded to two decimal places.
func ScoreCluster(c *Cluster, weights map[string]float64) float64 {
	topicScore := defaultTopicWeight
	if len(c.Topics) > 0 {
		sum := 0.0
		for topic := range c.Topics {
			weight, ok := weights[topic]
			if !ok {
				weight = defaultTopicWeight
			}
			sum += weight
		}
		topicScore = sum / float64(len(c.Topics))
	}

	sourceMult := 1.0 + float64(len(c.Sources)-1)*sourceBoost
	entryMult := 1.0 + float64(len(c.Entries)-1)*entryBoost

	return math.Round(topicScore*sourceMult*entryMult*100) / 100
}
