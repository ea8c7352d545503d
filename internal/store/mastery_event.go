package store

import (
	"context"
	"fmt"

	"github.com/abhisek/recall/ent"
	"github.com/abhisek/recall/ent/masteryevent"
)

func (r *eventRepo) MasteryHistory(ctx context.Context, planID, unitID string) ([]*MasteryEvent, error) {
	q := r.client.MasteryEvent.Query().
		Where(masteryevent.PlanID(planID)).
		Order(ent.Asc(masteryevent.FieldSequence))

	if unitID != "" {
		q = q.Where(masteryevent.UnitID(unitID))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery events: %w", err)
	}

	events := make([]*MasteryEvent, len(rows))
	for i, e := range rows {
		events[i] = &MasteryEvent{
			ID:         e.ID,
			Sequence:   e.Sequence,
			Timestamp:  e.Timestamp,
			PlanID:     e.PlanID,
			UnitID:     e.UnitID,
			FromLevel:  e.FromLevel,
			ToLevel:    e.ToLevel,
			Trigger:    e.Trigger,
			SessionID:  e.SessionID,
			QuestionID: e.QuestionID,
		}
	}
	return events, nil
}
