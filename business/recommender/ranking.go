package recommender

import (
	"fmt"
	"sort"
)

// TopN bounds the result list size.
const TopN = 5

var rankLabels = map[int]string{
	1: "Best match",
	2: "Strong match",
	3: "Good match",
	4: "Decent match",
	5: "Possible match",
}

// rankLabel returns the display label for a 1-based rank. Ranks beyond
// the table (reachable only if the result bound is raised) fall back to a
// generic label.
func rankLabel(rank int) string {
	if label, ok := rankLabels[rank]; ok {
		return label
	}
	return fmt.Sprintf("Match #%d", rank)
}

// rankRows sorts by score descending and truncates to topN. The sort is
// stable on purpose: equal-score rows keep their filtered-pool order, so
// identical requests always produce identical rankings.
func rankRows(rows []scoredLaptop, topN int) []scoredLaptop {
	out := make([]scoredLaptop, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].score > out[j].score
	})
	if len(out) > topN {
		out = out[:topN]
	}
	return out
}
