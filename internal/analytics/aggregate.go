package analytics

import "sort"

const dayFormat = "2006-01-02"

// Aggregate computes the performance report for a window of completed
// sessions.
//
// The time series and the topic/difficulty breakdowns deliberately use
// different accuracy semantics: a day's accuracy is the unweighted mean
// of its sessions' accuracies, while the breakdowns are true ratios
// over every flattened response. A short session therefore weighs as
// much as a long one in the time series but not in the breakdowns.
func Aggregate(sessions []Session) Report {
	var (
		days       []DayPerformance
		dayIndex   = map[string]int{}
		topicOrder []string
		topics     = map[string]*Stat{}
		diffOrder  []string
		diffs      = map[string]*Stat{}

		accuracySum float64
	)

	for _, session := range sessions {
		accuracy := sessionAccuracy(session)
		accuracySum += accuracy

		day := session.StartedAt.Format(dayFormat)
		if i, ok := dayIndex[day]; ok {
			days[i].TotalSessions++
			days[i].TotalAccuracy += accuracy
			days[i].AverageAccuracy = days[i].TotalAccuracy / float64(days[i].TotalSessions)
		} else {
			dayIndex[day] = len(days)
			days = append(days, DayPerformance{
				Date:            day,
				TotalSessions:   1,
				TotalAccuracy:   accuracy,
				AverageAccuracy: accuracy,
			})
		}

		for _, resp := range session.Responses {
			// Responses with no grouping keys (question gone) count in
			// the session accuracy above but not in the breakdowns.
			if resp.Topic == "" && resp.Difficulty == "" {
				continue
			}
			stat, ok := topics[resp.Topic]
			if !ok {
				stat = &Stat{}
				topics[resp.Topic] = stat
				topicOrder = append(topicOrder, resp.Topic)
			}
			stat.Total++
			if resp.Correct {
				stat.Correct++
			}

			stat, ok = diffs[resp.Difficulty]
			if !ok {
				stat = &Stat{}
				diffs[resp.Difficulty] = stat
				diffOrder = append(diffOrder, resp.Difficulty)
			}
			stat.Total++
			if resp.Correct {
				stat.Correct++
			}
		}
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	topicPerformance := make([]TopicPerformance, 0, len(topicOrder))
	for _, topic := range topicOrder {
		stat := topics[topic]
		topicPerformance = append(topicPerformance, TopicPerformance{
			Topic:          topic,
			Accuracy:       stat.Accuracy(),
			TotalQuestions: stat.Total,
		})
	}

	difficultyPerformance := make([]DifficultyPerformance, 0, len(diffOrder))
	for _, difficulty := range diffOrder {
		stat := diffs[difficulty]
		difficultyPerformance = append(difficultyPerformance, DifficultyPerformance{
			Difficulty:     difficulty,
			Accuracy:       stat.Accuracy(),
			TotalQuestions: stat.Total,
		})
	}

	averageAccuracy := 0.0
	if len(sessions) > 0 {
		averageAccuracy = accuracySum / float64(len(sessions))
	}

	weak, strong := ExtractInsights(topicPerformance)

	return Report{
		PerformanceOverTime:   days,
		TopicPerformance:      topicPerformance,
		DifficultyPerformance: difficultyPerformance,
		Insights: Insights{
			WeakTopics:      weak,
			StrongTopics:    strong,
			TotalSessions:   len(sessions),
			AverageAccuracy: averageAccuracy,
		},
	}
}

func sessionAccuracy(session Session) float64 {
	if len(session.Responses) == 0 {
		return 0
	}
	correct := 0
	for _, resp := range session.Responses {
		if resp.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(session.Responses)) * 100
}
