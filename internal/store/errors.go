package store

import "fmt"

// PlanNotFoundError indicates the referenced learning plan does not exist.
type PlanNotFoundError struct {
	PlanID string
}

func (e *PlanNotFoundError) Error() string {
	return fmt.Sprintf("learning plan %q not found", e.PlanID)
}

// SessionNotFoundError indicates the referenced study session does not exist.
type SessionNotFoundError struct {
	SessionID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("study session %q not found", e.SessionID)
}

// QuestionNotFoundError indicates the question does not exist in the
// referenced session.
type QuestionNotFoundError struct {
	SessionID  string
	QuestionID string
}

func (e *QuestionNotFoundError) Error() string {
	return fmt.Sprintf("question %q not found in session %q", e.QuestionID, e.SessionID)
}

// NoAnswerSubmittedError indicates assessment was requested for a question
// that has no submitted answer.
type NoAnswerSubmittedError struct {
	QuestionID string
}

func (e *NoAnswerSubmittedError) Error() string {
	return fmt.Sprintf("question %q has no submitted answer", e.QuestionID)
}

// AlreadyAssessedError indicates a write was attempted against a question
// whose verdict is already recorded. Verdicts are immutable.
type AlreadyAssessedError struct {
	QuestionID string
}

func (e *AlreadyAssessedError) Error() string {
	return fmt.Sprintf("question %q is already assessed", e.QuestionID)
}

// DuplicateFeedbackError indicates feedback of the same kind was already
// recorded for this (session, question) pair.
type DuplicateFeedbackError struct {
	SessionID  string
	QuestionID string
	Kind       string
}

func (e *DuplicateFeedbackError) Error() string {
	return fmt.Sprintf("feedback %q already recorded for question %q in session %q",
		e.Kind, e.QuestionID, e.SessionID)
}
