package analytics

import "sort"

const (
	weakThreshold   = 70
	strongThreshold = 80
	// minSampleSize keeps topics with too few observed questions out of
	// both lists; two answers should not brand a topic weak or strong.
	minSampleSize = 3
	maxInsights   = 3
)

// ExtractInsights classifies topics as weak (accuracy below 70, worst
// first) or strong (accuracy 80 or above, best first), each capped to
// three entries.
func ExtractInsights(topics []TopicPerformance) (weak, strong []TopicPerformance) {
	for _, t := range topics {
		if t.TotalQuestions < minSampleSize {
			continue
		}
		switch {
		case t.Accuracy < weakThreshold:
			weak = append(weak, t)
		case t.Accuracy >= strongThreshold:
			strong = append(strong, t)
		}
	}

	sort.Slice(weak, func(i, j int) bool { return weak[i].Accuracy < weak[j].Accuracy })
	sort.Slice(strong, func(i, j int) bool { return strong[i].Accuracy > strong[j].Accuracy })

	if len(weak) > maxInsights {
		weak = weak[:maxInsights]
	}
	if len(strong) > maxInsights {
		strong = strong[:maxInsights]
	}
	return weak, strong
}
