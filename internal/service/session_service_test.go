package service

import (
	"testing"

	"studyquiz-service/internal/models"
)

func resp(questionID string, answered bool, isCorrect bool, answer string) models.QuizResponse {
	r := models.QuizResponse{QuestionID: questionID}
	if answered {
		r.UserAnswer = &answer
		r.IsCorrect = &isCorrect
	}
	return r
}

func TestScoreResponses(t *testing.T) {
	tests := []struct {
		name        string
		responses   []models.QuizResponse
		wantTotal   int
		wantCorrect int
		wantScore   int
	}{
		{
			name:      "no responses scores zero",
			responses: nil,
			wantScore: 0,
		},
		{
			name: "one of two correct",
			responses: []models.QuizResponse{
				resp("q1", true, true, "Paris"),
				resp("q2", true, false, "1805"),
			},
			wantTotal:   2,
			wantCorrect: 1,
			wantScore:   50,
		},
		{
			name: "unanswered rows still count toward the total",
			responses: []models.QuizResponse{
				resp("q1", true, true, "Paris"),
				resp("q2", false, false, ""),
				resp("q3", false, false, ""),
			},
			wantTotal:   3,
			wantCorrect: 1,
			wantScore:   33,
		},
		{
			name: "two thirds rounds up",
			responses: []models.QuizResponse{
				resp("q1", true, true, "a"),
				resp("q2", true, true, "b"),
				resp("q3", true, false, "c"),
			},
			wantTotal:   3,
			wantCorrect: 2,
			wantScore:   67,
		},
		{
			name: "half rounds up",
			responses: []models.QuizResponse{
				resp("q1", true, true, "a"),
				resp("q2", true, false, "b"),
				resp("q3", true, false, "c"),
				resp("q4", true, false, "d"),
				resp("q5", true, false, "e"),
				resp("q6", true, false, "f"),
				resp("q7", true, false, "g"),
				resp("q8", true, false, "h"),
			},
			wantTotal:   8,
			wantCorrect: 1,
			wantScore:   13, // 12.5 rounds half-up
		},
		{
			name: "all correct",
			responses: []models.QuizResponse{
				resp("q1", true, true, "a"),
				resp("q2", true, true, "b"),
			},
			wantTotal:   2,
			wantCorrect: 2,
			wantScore:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, correct, score := scoreResponses(tt.responses)
			if total != tt.wantTotal || correct != tt.wantCorrect || score != tt.wantScore {
				t.Errorf("scoreResponses() = (%d, %d, %d), want (%d, %d, %d)",
					total, correct, score, tt.wantTotal, tt.wantCorrect, tt.wantScore)
			}
			if correct > total {
				t.Errorf("correct %d exceeds total %d", correct, total)
			}
		})
	}
}

func TestBuildReviewJoinsQuestionFields(t *testing.T) {
	responses := []models.QuizResponse{
		resp("q1", true, true, "Paris"),
		resp("q2", false, false, ""),
	}
	questions := map[string]models.Question{
		"q1": {
			ID:            "q1",
			Question:      "Capital of France?",
			CorrectAnswer: "Paris",
			Explanation:   "Seat of government since 987.",
			Topic:         "geography",
			Difficulty:    models.DifficultyEasy,
		},
		"q2": {
			ID:            "q2",
			Question:      "Year of Trafalgar?",
			CorrectAnswer: "1805",
			Explanation:   "Nelson's last battle.",
			Topic:         "history",
			Difficulty:    models.DifficultyHard,
		},
	}

	review := buildReview(responses, questions)

	if len(review) != 2 {
		t.Fatalf("expected 2 review entries, got %d", len(review))
	}

	first := review[0]
	if first.Question != "Capital of France?" || first.UserAnswer != "Paris" ||
		first.CorrectAnswer != "Paris" || !first.IsCorrect ||
		first.Explanation == "" || first.Topic != "geography" || first.Difficulty != models.DifficultyEasy {
		t.Errorf("unexpected first entry: %+v", first)
	}

	second := review[1]
	if second.UserAnswer != "" || second.IsCorrect {
		t.Errorf("unanswered response must review as empty and incorrect: %+v", second)
	}
	if second.CorrectAnswer != "1805" {
		t.Errorf("review must reveal the correct answer at completion: %+v", second)
	}
}
