package analysis

// Similarity computes the Jaccard index between two keyword sequences: the
// number of distinct tokens shared by both over the number of distinct
// tokens in either. Duplicates within one sequence carry no extra weight.
// Returns 0 when either sequence is empty.
func Similarity(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, tok := range a {
		setA[tok] = struct{}{}
	}

	seenB := make(map[string]struct{}, len(b))
	union := len(setA)
	intersection := 0
	for _, tok := range b {
		if _, dup := seenB[tok]; dup {
			continue
		}
		seenB[tok] = struct{}{}
		if _, shared := setA[tok]; shared {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}
