package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSession(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetPlanID(data.PlanID).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetQuestionCount(data.QuestionCount).
		SetCorrectCount(data.CorrectCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}

	return nil
}
