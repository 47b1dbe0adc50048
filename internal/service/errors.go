package service

import "errors"

var (
	// ErrNoQuestions means the filtered question pool came back empty
	// when starting a session.
	ErrNoQuestions = errors.New("no questions found")
	// ErrQuestionNotFound means the submitted question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrResponseNotFound means the question was never assigned to the
	// session, so there is no response row to fill.
	ErrResponseNotFound = errors.New("question not assigned to session")
	// ErrSessionNotFound means the session does not exist or belongs to
	// another owner.
	ErrSessionNotFound = errors.New("session not found")
)
