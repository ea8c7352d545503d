package store

import (
	"context"
	"fmt"

	"github.com/abhisek/recall/ent"
	"github.com/abhisek/recall/ent/feedbackrecord"
)

// feedbackRepo implements FeedbackRepo backed by ent.
type feedbackRepo struct {
	client *ent.Client
}

func (r *feedbackRepo) Add(ctx context.Context, fb *Feedback) error {
	// Uniqueness of (session, question, kind) is enforced by the schema
	// index, so a concurrent duplicate surfaces as a constraint error.
	_, err := r.client.FeedbackRecord.Create().
		SetSessionID(fb.SessionID).
		SetQuestionID(fb.QuestionID).
		SetKind(feedbackrecord.Kind(fb.Kind)).
		SetFlag(fb.Flag).
		SetComment(fb.Comment).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return &DuplicateFeedbackError{
				SessionID:  fb.SessionID,
				QuestionID: fb.QuestionID,
				Kind:       string(fb.Kind),
			}
		}
		return fmt.Errorf("save feedback: %w", err)
	}
	return nil
}

func (r *feedbackRepo) BySession(ctx context.Context, sessionID string) ([]*Feedback, error) {
	rows, err := r.client.FeedbackRecord.Query().
		Where(feedbackrecord.SessionID(sessionID)).
		Order(ent.Asc(feedbackrecord.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}

	feedbacks := make([]*Feedback, len(rows))
	for i, f := range rows {
		feedbacks[i] = &Feedback{
			SessionID:  f.SessionID,
			QuestionID: f.QuestionID,
			Kind:       FeedbackKind(f.Kind),
			Flag:       f.Flag,
			Comment:    f.Comment,
			CreatedAt:  f.CreatedAt,
		}
	}
	return feedbacks, nil
}
