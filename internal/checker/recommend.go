package checker

import (
	"sort"
	"strings"
)

// maxRecommendations caps the prioritized recommendation list.
const maxRecommendations = 10

// recommendationWeights score a recommendation by the topics it mentions.
// Higher totals surface first; the table reflects how much each topic moves
// recruiter decisions.
var recommendationWeights = map[string]int{
	"action verb":  5,
	"quantifiable": 5,
	"skill":        4,
	"keyword":      4,
	"experience":   4,
	"summary":      3,
	"metric":       3,
	"education":    2,
	"format":       2,
	"contact":      2,
}

// prioritizeRecommendations deduplicates the collected recommendation strings
// and stable-sorts them by descending priority weight, so equal-priority
// items keep their checker-order position. The result is capped at ten.
func prioritizeRecommendations(recs []string) []string {
	seen := make(map[string]bool, len(recs))
	unique := make([]string, 0, len(recs))
	for _, r := range recs {
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		unique = append(unique, r)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return recommendationPriority(unique[i]) > recommendationPriority(unique[j])
	})

	if len(unique) > maxRecommendations {
		unique = unique[:maxRecommendations]
	}
	return unique
}

func recommendationPriority(rec string) int {
	lower := strings.ToLower(rec)
	total := 0
	for keyword, weight := range recommendationWeights {
		if strings.Contains(lower, keyword) {
			total += weight
		}
	}
	return total
}
