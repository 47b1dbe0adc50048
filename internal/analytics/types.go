package analytics

import "time"

// Response is the slice of a quiz response the aggregator cares about:
// the outcome plus the question's grouping keys.
type Response struct {
	Correct    bool
	Topic      string
	Difficulty string
}

// Session is one completed quiz session inside the analytics window.
type Session struct {
	StartedAt time.Time
	Responses []Response
}

// Stat accumulates correct/total counts for one grouping key.
type Stat struct {
	Correct int
	Total   int
}

// Accuracy is the question-weighted ratio, as a percentage.
func (s Stat) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

// DayPerformance is one time-series entry. AverageAccuracy is the
// unweighted mean of the per-session accuracies seen for that day,
// not a ratio over the day's questions.
type DayPerformance struct {
	Date            string  `json:"date"`
	TotalSessions   int     `json:"totalSessions"`
	TotalAccuracy   float64 `json:"totalAccuracy"`
	AverageAccuracy float64 `json:"averageAccuracy"`
}

type TopicPerformance struct {
	Topic          string  `json:"topic"`
	Accuracy       float64 `json:"accuracy"`
	TotalQuestions int     `json:"totalQuestions"`
}

type DifficultyPerformance struct {
	Difficulty     string  `json:"difficulty"`
	Accuracy       float64 `json:"accuracy"`
	TotalQuestions int     `json:"totalQuestions"`
}

type Insights struct {
	WeakTopics      []TopicPerformance `json:"weakTopics"`
	StrongTopics    []TopicPerformance `json:"strongTopics"`
	TotalSessions   int                `json:"totalSessions"`
	AverageAccuracy float64            `json:"averageAccuracy"`
}

type Report struct {
	PerformanceOverTime   []DayPerformance        `json:"performanceOverTime"`
	TopicPerformance      []TopicPerformance      `json:"topicPerformance"`
	DifficultyPerformance []DifficultyPerformance `json:"difficultyPerformance"`
	Insights              Insights                `json:"insights"`
}
