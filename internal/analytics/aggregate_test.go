package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionAt(t *testing.T, value string, responses ...Response) Session {
	t.Helper()
	return Session{StartedAt: day(t, value), Responses: responses}
}

func correct(topic, difficulty string) Response {
	return Response{Correct: true, Topic: topic, Difficulty: difficulty}
}

func wrong(topic, difficulty string) Response {
	return Response{Correct: false, Topic: topic, Difficulty: difficulty}
}

func TestAggregateEmpty(t *testing.T) {
	report := Aggregate(nil)

	assert.Empty(t, report.PerformanceOverTime)
	assert.Empty(t, report.TopicPerformance)
	assert.Empty(t, report.DifficultyPerformance)
	assert.Equal(t, 0, report.Insights.TotalSessions)
	assert.Zero(t, report.Insights.AverageAccuracy)
}

// The time series averages session accuracies while the breakdowns are
// ratios over flattened responses. This asymmetry is deliberate and the
// two numbers legitimately disagree over the same data.
func TestAggregateDayMeanVersusWeightedRatio(t *testing.T) {
	sessions := []Session{
		// 2/2 correct: session accuracy 100.
		sessionAt(t, "2025-03-10 09:00",
			correct("history", "easy"),
			correct("history", "easy"),
		),
		// 2/4 correct: session accuracy 50.
		sessionAt(t, "2025-03-10 14:00",
			correct("history", "easy"),
			correct("history", "easy"),
			wrong("history", "easy"),
			wrong("history", "easy"),
		),
	}

	report := Aggregate(sessions)

	require.Len(t, report.PerformanceOverTime, 1)
	dayEntry := report.PerformanceOverTime[0]
	assert.Equal(t, "2025-03-10", dayEntry.Date)
	assert.Equal(t, 2, dayEntry.TotalSessions)
	// Unweighted mean of session accuracies: (100+50)/2.
	assert.InDelta(t, 75.0, dayEntry.AverageAccuracy, 1e-9)

	require.Len(t, report.TopicPerformance, 1)
	// Question-weighted ratio over the same responses: 4/6.
	assert.InDelta(t, 100.0*4/6, report.TopicPerformance[0].Accuracy, 1e-9)
	assert.Equal(t, 6, report.TopicPerformance[0].TotalQuestions)
}

func TestAggregateTimeSeriesSortedAscending(t *testing.T) {
	sessions := []Session{
		sessionAt(t, "2025-03-12 10:00", correct("a", "easy")),
		sessionAt(t, "2025-03-10 10:00", wrong("a", "easy")),
		sessionAt(t, "2025-03-11 10:00", correct("a", "easy")),
	}

	report := Aggregate(sessions)

	require.Len(t, report.PerformanceOverTime, 3)
	assert.Equal(t, "2025-03-10", report.PerformanceOverTime[0].Date)
	assert.Equal(t, "2025-03-11", report.PerformanceOverTime[1].Date)
	assert.Equal(t, "2025-03-12", report.PerformanceOverTime[2].Date)
}

func TestAggregateBreakdownInsertionOrder(t *testing.T) {
	sessions := []Session{
		sessionAt(t, "2025-03-10 09:00",
			correct("biology", "hard"),
			wrong("chemistry", "easy"),
			correct("physics", "medium"),
		),
	}

	report := Aggregate(sessions)

	require.Len(t, report.TopicPerformance, 3)
	assert.Equal(t, "biology", report.TopicPerformance[0].Topic)
	assert.Equal(t, "chemistry", report.TopicPerformance[1].Topic)
	assert.Equal(t, "physics", report.TopicPerformance[2].Topic)

	require.Len(t, report.DifficultyPerformance, 3)
	assert.Equal(t, "hard", report.DifficultyPerformance[0].Difficulty)
	assert.Equal(t, "easy", report.DifficultyPerformance[1].Difficulty)
	assert.Equal(t, "medium", report.DifficultyPerformance[2].Difficulty)
}

func TestAggregateSessionWithoutResponses(t *testing.T) {
	sessions := []Session{
		sessionAt(t, "2025-03-10 09:00"),
		sessionAt(t, "2025-03-10 11:00", correct("a", "easy")),
	}

	report := Aggregate(sessions)

	require.Len(t, report.PerformanceOverTime, 1)
	// Empty session contributes 0 accuracy: (0+100)/2.
	assert.InDelta(t, 50.0, report.PerformanceOverTime[0].AverageAccuracy, 1e-9)
	assert.Equal(t, 2, report.Insights.TotalSessions)
}

func TestAggregateUngroupedResponsesCountInAccuracyOnly(t *testing.T) {
	// A response whose question has been deleted keeps its correctness
	// but has no topic or difficulty.
	sessions := []Session{
		sessionAt(t, "2025-03-10 09:00",
			correct("math", "easy"),
			Response{Correct: false},
		),
	}

	report := Aggregate(sessions)

	require.Len(t, report.PerformanceOverTime, 1)
	assert.InDelta(t, 50.0, report.PerformanceOverTime[0].AverageAccuracy, 1e-9)

	require.Len(t, report.TopicPerformance, 1)
	assert.Equal(t, "math", report.TopicPerformance[0].Topic)
	assert.Equal(t, 1, report.TopicPerformance[0].TotalQuestions)
}

func TestAggregateAverageAccuracyAcrossDays(t *testing.T) {
	sessions := []Session{
		sessionAt(t, "2025-03-09 09:00", correct("a", "easy"), wrong("a", "easy")),   // 50
		sessionAt(t, "2025-03-10 09:00", correct("a", "easy"), correct("a", "easy")), // 100
	}

	report := Aggregate(sessions)

	assert.Equal(t, 2, report.Insights.TotalSessions)
	assert.InDelta(t, 75.0, report.Insights.AverageAccuracy, 1e-9)
}

func TestStatAccuracy(t *testing.T) {
	assert.Zero(t, Stat{}.Accuracy())
	assert.InDelta(t, 50.0, Stat{Correct: 1, Total: 2}.Accuracy(), 1e-9)
	assert.InDelta(t, 100.0*2/3, Stat{Correct: 2, Total: 3}.Accuracy(), 1e-9)
}
