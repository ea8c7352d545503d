package store

import (
	"context"
	"fmt"

	"github.com/abhisek/recall/ent"
	"github.com/abhisek/recall/ent/masteryrecord"
)

// masteryRepo implements MasteryRepo backed by ent.
type masteryRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *masteryRepo) Level(ctx context.Context, planID, unitID string) (float64, error) {
	rec, err := r.client.MasteryRecord.Query().
		Where(
			masteryrecord.PlanID(planID),
			masteryrecord.UnitID(unitID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query mastery: %w", err)
	}
	return rec.Level, nil
}

func (r *masteryRepo) Levels(ctx context.Context, planID string) (map[string]float64, error) {
	rows, err := r.client.MasteryRecord.Query().
		Where(masteryrecord.PlanID(planID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mastery levels: %w", err)
	}

	levels := make(map[string]float64, len(rows))
	for _, rec := range rows {
		levels[rec.UnitID] = rec.Level
	}
	return levels, nil
}

func (r *masteryRepo) SetLevel(ctx context.Context, planID, unitID string, level float64, trigger string) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := setLevelTx(ctx, tx, planID, unitID, level, trigger, seqNum); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit mastery: %w", err)
	}
	return nil
}

func setLevelTx(ctx context.Context, tx *ent.Tx, planID, unitID string, level float64, trigger string, seqNum int64) error {
	var from float64

	existing, err := tx.MasteryRecord.Query().
		Where(
			masteryrecord.PlanID(planID),
			masteryrecord.UnitID(unitID),
		).
		Only(ctx)
	switch {
	case err == nil:
		from = existing.Level
		if err := existing.Update().SetLevel(level).Exec(ctx); err != nil {
			return fmt.Errorf("update mastery: %w", err)
		}
	case ent.IsNotFound(err):
		_, err := tx.MasteryRecord.Create().
			SetPlanID(planID).
			SetUnitID(unitID).
			SetLevel(level).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create mastery: %w", err)
		}
	default:
		return fmt.Errorf("query mastery: %w", err)
	}

	_, err = tx.MasteryEvent.Create().
		SetSequence(seqNum).
		SetPlanID(planID).
		SetUnitID(unitID).
		SetFromLevel(from).
		SetToLevel(level).
		SetTrigger(trigger).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save mastery event: %w", err)
	}

	return nil
}
