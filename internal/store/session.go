package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/recall/ent"
	"github.com/abhisek/recall/ent/masteryrecord"
	"github.com/abhisek/recall/ent/question"
	"github.com/abhisek/recall/ent/studysession"
)

// sessionRepo implements SessionRepo backed by ent.
type sessionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *sessionRepo) CreateSession(ctx context.Context, sess *Session, questions []*Question) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := createSessionTx(ctx, tx, sess, questions); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	return nil
}

func createSessionTx(ctx context.Context, tx *ent.Tx, sess *Session, questions []*Question) error {
	_, err := tx.StudySession.Create().
		SetID(sess.ID).
		SetPlanID(sess.PlanID).
		SetMaxQuestions(sess.MaxQuestions).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	for _, q := range questions {
		_, err := tx.Question.Create().
			SetID(q.ID).
			SetSessionID(q.SessionID).
			SetUnitID(q.UnitID).
			SetPosition(q.Position).
			SetText(q.Text).
			SetDifficulty(q.Difficulty).
			SetCanonicalAnswer(q.CanonicalAnswer).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save question %s: %w", q.ID, err)
		}
	}

	return nil
}

func (r *sessionRepo) GetSession(ctx context.Context, id string) (*Session, error) {
	s, err := r.client.StudySession.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &SessionNotFoundError{SessionID: id}
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sessionFromEnt(s), nil
}

func (r *sessionRepo) Questions(ctx context.Context, sessionID string) ([]*Question, error) {
	rows, err := r.client.Question.Query().
		Where(question.SessionID(sessionID)).
		Order(ent.Asc(question.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}

	questions := make([]*Question, len(rows))
	for i, q := range rows {
		questions[i] = questionFromEnt(q)
	}
	return questions, nil
}

func (r *sessionRepo) GetQuestion(ctx context.Context, sessionID, questionID string) (*Question, error) {
	q, err := r.client.Question.Query().
		Where(
			question.ID(questionID),
			question.SessionID(sessionID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &QuestionNotFoundError{SessionID: sessionID, QuestionID: questionID}
		}
		return nil, fmt.Errorf("get question: %w", err)
	}
	return questionFromEnt(q), nil
}

func (r *sessionRepo) SessionsForPlan(ctx context.Context, planID string) ([]*Session, error) {
	rows, err := r.client.StudySession.Query().
		Where(studysession.PlanID(planID)).
		Order(ent.Desc(studysession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}

	sessions := make([]*Session, len(rows))
	for i, s := range rows {
		sessions[i] = sessionFromEnt(s)
	}
	return sessions, nil
}

func (r *sessionRepo) QuestionsForUnit(ctx context.Context, unitID string) ([]*Question, error) {
	rows, err := r.client.Question.Query().
		Where(question.UnitID(unitID)).
		Order(ent.Asc(question.FieldSessionID), ent.Asc(question.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query unit questions: %w", err)
	}

	questions := make([]*Question, len(rows))
	for i, q := range rows {
		questions[i] = questionFromEnt(q)
	}
	return questions, nil
}

func (r *sessionRepo) SubmitAnswer(ctx context.Context, sessionID, questionID, answer string) (*Question, error) {
	q, err := r.GetQuestion(ctx, sessionID, questionID)
	if err != nil {
		return nil, err
	}
	if q.Assessed() {
		return nil, &AlreadyAssessedError{QuestionID: questionID}
	}

	// The predicate guards against a verdict recorded between the read
	// above and this write.
	updated, err := r.client.Question.UpdateOneID(questionID).
		Where(question.IsCorrectIsNil()).
		SetUserAnswer(answer).
		SetAnsweredAt(time.Now()).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &AlreadyAssessedError{QuestionID: questionID}
		}
		return nil, fmt.Errorf("submit answer: %w", err)
	}
	return questionFromEnt(updated), nil
}

func (r *sessionRepo) RecordAssessment(ctx context.Context, rec AssessmentRecord) (float64, float64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("begin tx: %w", err)
	}

	from, to, err := recordAssessmentTx(ctx, tx, rec, seqNum)
	if err != nil {
		tx.Rollback()
		return 0, 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit assessment: %w", err)
	}
	return from, to, nil
}

func recordAssessmentTx(ctx context.Context, tx *ent.Tx, rec AssessmentRecord, seqNum int64) (float64, float64, error) {
	// Verdict write is conditional on no verdict existing yet. A lost
	// race surfaces as not-found, never as a second verdict.
	err := tx.Question.UpdateOneID(rec.QuestionID).
		Where(question.IsCorrectIsNil()).
		SetIsCorrect(rec.IsCorrect).
		SetExplanation(rec.Explanation).
		SetCorrectAnswer(rec.CorrectAnswer).
		SetAssessedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, 0, &AlreadyAssessedError{QuestionID: rec.QuestionID}
		}
		return 0, 0, fmt.Errorf("record verdict: %w", err)
	}

	// The step starts from the level as read in this transaction, not
	// from whatever the caller saw before grading.
	var from float64
	existing, err := tx.MasteryRecord.Query().
		Where(
			masteryrecord.PlanID(rec.PlanID),
			masteryrecord.UnitID(rec.UnitID),
		).
		Only(ctx)
	switch {
	case err == nil:
		from = existing.Level
	case ent.IsNotFound(err):
		existing = nil
	default:
		return 0, 0, fmt.Errorf("query mastery: %w", err)
	}

	to := rec.Advance(from)

	if existing != nil {
		if err := existing.Update().SetLevel(to).Exec(ctx); err != nil {
			return 0, 0, fmt.Errorf("update mastery: %w", err)
		}
	} else {
		_, err := tx.MasteryRecord.Create().
			SetPlanID(rec.PlanID).
			SetUnitID(rec.UnitID).
			SetLevel(to).
			Save(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("create mastery: %w", err)
		}
	}

	_, err = tx.MasteryEvent.Create().
		SetSequence(seqNum).
		SetPlanID(rec.PlanID).
		SetUnitID(rec.UnitID).
		SetFromLevel(from).
		SetToLevel(to).
		SetTrigger("assessment").
		SetSessionID(rec.SessionID).
		SetQuestionID(rec.QuestionID).
		Save(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("save mastery event: %w", err)
	}

	return from, to, nil
}

func sessionFromEnt(s *ent.StudySession) *Session {
	return &Session{
		ID:           s.ID,
		PlanID:       s.PlanID,
		MaxQuestions: s.MaxQuestions,
		CreatedAt:    s.CreatedAt,
	}
}

func questionFromEnt(q *ent.Question) *Question {
	return &Question{
		ID:              q.ID,
		SessionID:       q.SessionID,
		UnitID:          q.UnitID,
		Position:        q.Position,
		Text:            q.Text,
		Difficulty:      q.Difficulty,
		CanonicalAnswer: q.CanonicalAnswer,
		UserAnswer:      q.UserAnswer,
		AnsweredAt:      q.AnsweredAt,
		IsCorrect:       q.IsCorrect,
		Explanation:     q.Explanation,
		CorrectAnswer:   q.CorrectAnswer,
		AssessedAt:      q.AssessedAt,
	}
}
