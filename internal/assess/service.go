package assess

import (
	"context"
	"fmt"
	"os"

	"github.com/abhisek/recall/internal/grading"
	"github.com/abhisek/recall/internal/mastery"
	"github.com/abhisek/recall/internal/store"
)

// Result is the outcome of one assessment: the frozen question row plus
// the mastery movement it caused.
type Result struct {
	Question  *store.Question
	FromLevel float64
	ToLevel   float64
}

// Service runs the two-phase answer flow: submit, then assess. The
// verdict and the mastery update always land in one transaction.
type Service struct {
	plans    store.PlanRepo
	sessions store.SessionRepo
	feedback store.FeedbackRepo
	mastery  *mastery.Service
	grader   grading.Grader
	events   store.EventRepo
}

// NewService creates an assessment service.
func NewService(
	plans store.PlanRepo,
	sessions store.SessionRepo,
	feedback store.FeedbackRepo,
	masterySvc *mastery.Service,
	grader grading.Grader,
	events store.EventRepo,
) *Service {
	return &Service{
		plans:    plans,
		sessions: sessions,
		feedback: feedback,
		mastery:  masterySvc,
		grader:   grader,
		events:   events,
	}
}

// SubmitAnswer records the learner's answer. Resubmitting before
// assessment replaces the earlier answer; after assessment it fails
// with AlreadyAssessedError.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID, questionID, answer string) (*store.Question, error) {
	if _, err := s.sessions.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.sessions.SubmitAnswer(ctx, sessionID, questionID, answer)
}

// Assess grades the submitted answer and applies the mastery step:
// +delta when correct, -delta/2 when incorrect, clamped to [0, 1].
// The verdict is immutable; a second call fails with
// AlreadyAssessedError and leaves mastery untouched.
func (s *Service) Assess(ctx context.Context, sessionID, questionID string) (*Result, error) {
	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	q, err := s.sessions.GetQuestion(ctx, sessionID, questionID)
	if err != nil {
		return nil, err
	}
	if q.Assessed() {
		return nil, &store.AlreadyAssessedError{QuestionID: questionID}
	}
	if !q.Answered() {
		return nil, &store.NoAnswerSubmittedError{QuestionID: questionID}
	}

	unit, err := s.unitFor(ctx, sess.PlanID, q.UnitID)
	if err != nil {
		return nil, err
	}

	verdict, err := s.grader.Grade(ctx, grading.Input{
		Unit:            unit,
		QuestionText:    q.Text,
		CanonicalAnswer: q.CanonicalAnswer,
		UserAnswer:      *q.UserAnswer,
	})
	if err != nil {
		return nil, err
	}

	// The store applies the step to the level it reads in the same
	// transaction as the verdict write, so a concurrent assessment of
	// the same unit cannot make this one start from a stale level.
	from, to, err := s.sessions.RecordAssessment(ctx, store.AssessmentRecord{
		PlanID:        sess.PlanID,
		SessionID:     sessionID,
		QuestionID:    questionID,
		UnitID:        q.UnitID,
		IsCorrect:     verdict.IsCorrect,
		Explanation:   verdict.Explanation,
		CorrectAnswer: verdict.CorrectAnswer,
		Advance: func(level float64) float64 {
			return s.mastery.Advance(level, verdict.IsCorrect)
		},
	})
	if err != nil {
		return nil, err
	}

	assessed, err := s.sessions.GetQuestion(ctx, sessionID, questionID)
	if err != nil {
		return nil, err
	}

	s.noteCompletion(ctx, sess)

	return &Result{Question: assessed, FromLevel: from, ToLevel: to}, nil
}

// noteCompletion appends the completed session event once every
// question has a verdict. Best-effort; the assessment itself already
// committed.
func (s *Service) noteCompletion(ctx context.Context, sess *store.Session) {
	questions, err := s.sessions.Questions(ctx, sess.ID)
	if err != nil {
		return
	}

	correct := 0
	for _, q := range questions {
		if !q.Assessed() {
			return
		}
		if *q.IsCorrect {
			correct++
		}
	}

	err = s.events.AppendSession(ctx, store.SessionEventData{
		PlanID:        sess.PlanID,
		SessionID:     sess.ID,
		Action:        "completed",
		QuestionCount: len(questions),
		CorrectCount:  correct,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
	}
}

// QuestionFeedback records whether a question was helpful. One record
// per question per session; duplicates fail with DuplicateFeedbackError.
func (s *Service) QuestionFeedback(ctx context.Context, sessionID, questionID string, helpful bool, comment string) error {
	if _, err := s.sessions.GetQuestion(ctx, sessionID, questionID); err != nil {
		return err
	}
	return s.feedback.Add(ctx, &store.Feedback{
		SessionID:  sessionID,
		QuestionID: questionID,
		Kind:       store.FeedbackQuestionHelpfulness,
		Flag:       helpful,
		Comment:    comment,
	})
}

// AssessmentFeedback records whether the learner agrees with the
// verdict. Requires an assessed question.
func (s *Service) AssessmentFeedback(ctx context.Context, sessionID, questionID string, agree bool, comment string) error {
	q, err := s.sessions.GetQuestion(ctx, sessionID, questionID)
	if err != nil {
		return err
	}
	if !q.Assessed() {
		return &store.NoAnswerSubmittedError{QuestionID: questionID}
	}
	return s.feedback.Add(ctx, &store.Feedback{
		SessionID:  sessionID,
		QuestionID: questionID,
		Kind:       store.FeedbackAssessmentAgreement,
		Flag:       agree,
		Comment:    comment,
	})
}

func (s *Service) unitFor(ctx context.Context, planID, unitID string) (*store.Unit, error) {
	units, err := s.plans.Units(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load units: %w", err)
	}
	for _, u := range units {
		if u.ID == unitID {
			return u, nil
		}
	}
	return nil, fmt.Errorf("unit %q not found in plan %q", unitID, planID)
}
