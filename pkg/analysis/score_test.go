package analysis_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/umputun/scout/pkg/analysis"
	"github.com/umputun/scout/pkg/domain"
)

func clusterOf(topics, sources []string, entryCount int) *analysis.Cluster {
	c := &analysis.Cluster{
		KeywordCounts: map[string]int{},
		Sources:       map[string]struct{}{},
		Topics:        map[string]struct{}{},
	}
	for i := 0; i < entryCount; i++ {
		c.Entries = append(c.Entries, domain.Entry{Title: fmt.Sprintf("entry-%d", i)})
	}
	for _, s := range sources {
		c.Sources[s] = struct{}{}
	}
	for _, tp := range topics {
		c.Topics[tp] = struct{}{}
	}
	return c
}

func TestScoreCluster(t *testing.T) {
	tests := []struct {
		name    string
		cluster *analysis.Cluster
		weights map[string]float64
		want    float64
	}{
		{name: "singleton with unweighted topic", cluster: clusterOf([]string{"ai"}, []string{"A"}, 1), weights: map[string]float64{}, want: 0.3},
		{name: "no topics falls back to default", cluster: clusterOf(nil, []string{"A"}, 1), weights: map[string]float64{"ai": 1.0}, want: 0.3},
		{name: "weighted topics averaged", cluster: clusterOf([]string{"ai", "telecom"}, []string{"A"}, 1), weights: map[string]float64{"ai": 1.0, "telecom": 0.5}, want: 0.75},
		{name: "mixed known and default", cluster: clusterOf([]string{"ai", "webdev"}, []string{"A"}, 1), weights: map[string]float64{"ai": 0.9}, want: 0.6},
		{name: "source diversity boost", cluster: clusterOf([]string{"ai"}, []string{"A", "B", "C"}, 1), weights: map[string]float64{"ai": 1.0}, want: 1.6},
		{name: "entry count boost", cluster: clusterOf([]string{"ai"}, []string{"A"}, 4), weights: map[string]float64{"ai": 1.0}, want: 1.3},
		{name: "combined boosts with nil weights", cluster: clusterOf([]string{"ai", "telecom", "dev-tools"}, []string{"A", "B"}, 2), weights: nil, want: 0.43},
		{name: "rounded to two decimals", cluster: clusterOf([]string{"ai"}, []string{"A"}, 1), weights: map[string]float64{"ai": 0.333}, want: 0.33},
		{name: "zero weight stays zero", cluster: clusterOf([]string{"ai"}, []string{"A", "B"}, 2), weights: map[string]float64{"ai": 0}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := analysis.ScoreCluster(tt.cluster, tt.weights)
			assert.InDelta(t, tt.want, got, 0.0001)
			assert.GreaterOrEqual(t, got, 0.0)
		})
	}
}

func TestScoreCluster_TwoDecimalPlaces(t *testing.T) {
	weights := map[string]float64{"ai": 0.777, "telecom": 0.123}
	c := clusterOf([]string{"ai", "telecom"}, []string{"A", "B", "C"}, 3)
	got := analysis.ScoreCluster(c, weights)
	assert.InDelta(t, got, math.Round(got*100)/100, 1e-12)
}
