package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/recall/ent"
	"github.com/abhisek/recall/ent/document"
	"github.com/abhisek/recall/ent/knowledgeunit"
	"github.com/abhisek/recall/ent/learningplan"
)

// planRepo implements PlanRepo backed by ent.
type planRepo struct {
	client *ent.Client
}

func (r *planRepo) CreatePlan(ctx context.Context, plan *Plan, docs []*Document, units []*Unit) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	if err := createPlanTx(ctx, tx, plan, docs, units); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit plan: %w", err)
	}
	return nil
}

func createPlanTx(ctx context.Context, tx *ent.Tx, plan *Plan, docs []*Document, units []*Unit) error {
	for _, d := range docs {
		_, err := tx.Document.Create().
			SetID(d.ID).
			SetTitle(d.Title).
			SetContent(d.Content).
			SetSource(d.Source).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save document %s: %w", d.ID, err)
		}
	}

	_, err := tx.LearningPlan.Create().
		SetID(plan.ID).
		SetDocumentIds(plan.DocumentIDs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}

	for _, u := range units {
		_, err := tx.KnowledgeUnit.Create().
			SetID(u.ID).
			SetPlanID(u.PlanID).
			SetDocumentID(u.DocumentID).
			SetKind(knowledgeunit.Kind(u.Kind)).
			SetText(u.Text).
			SetSourceClaim(u.SourceClaim).
			SetPosition(u.Position).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save unit %s: %w", u.ID, err)
		}
	}

	return nil
}

func (r *planRepo) GetPlan(ctx context.Context, id string) (*Plan, error) {
	p, err := r.client.LearningPlan.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &PlanNotFoundError{PlanID: id}
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return planFromEnt(p), nil
}

func (r *planRepo) ListPlans(ctx context.Context) ([]*Plan, error) {
	rows, err := r.client.LearningPlan.Query().
		Order(ent.Desc(learningplan.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	plans := make([]*Plan, len(rows))
	for i, p := range rows {
		plans[i] = planFromEnt(p)
	}
	return plans, nil
}

func (r *planRepo) CompletePlan(ctx context.Context, id string) error {
	p, err := r.GetPlan(ctx, id)
	if err != nil {
		return err
	}
	if p.CompletedAt != nil {
		return nil
	}

	err = r.client.LearningPlan.UpdateOneID(id).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("complete plan: %w", err)
	}
	return nil
}

func (r *planRepo) Units(ctx context.Context, planID string) ([]*Unit, error) {
	rows, err := r.client.KnowledgeUnit.Query().
		Where(knowledgeunit.PlanID(planID)).
		Order(ent.Asc(knowledgeunit.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query units: %w", err)
	}

	units := make([]*Unit, len(rows))
	for i, u := range rows {
		units[i] = unitFromEnt(u)
	}
	return units, nil
}

func (r *planRepo) RetireUnit(ctx context.Context, planID, unitID string) error {
	n, err := r.client.KnowledgeUnit.Update().
		Where(
			knowledgeunit.ID(unitID),
			knowledgeunit.PlanID(planID),
		).
		SetRetired(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("retire unit: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("unit %q not found in plan %q", unitID, planID)
	}
	return nil
}

func (r *planRepo) GetDocuments(ctx context.Context, ids []string) ([]*Document, error) {
	rows, err := r.client.Document.Query().
		Where(document.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	byID := make(map[string]*Document, len(rows))
	for _, d := range rows {
		byID[d.ID] = &Document{
			ID:        d.ID,
			Title:     d.Title,
			Content:   d.Content,
			Source:    d.Source,
			CreatedAt: d.CreatedAt,
		}
	}

	docs := make([]*Document, 0, len(ids))
	for _, id := range ids {
		if d, ok := byID[id]; ok {
			docs = append(docs, d)
		}
	}
	return docs, nil
}

func planFromEnt(p *ent.LearningPlan) *Plan {
	return &Plan{
		ID:          p.ID,
		DocumentIDs: p.DocumentIds,
		CreatedAt:   p.CreatedAt,
		CompletedAt: p.CompletedAt,
	}
}

func unitFromEnt(u *ent.KnowledgeUnit) *Unit {
	return &Unit{
		ID:          u.ID,
		PlanID:      u.PlanID,
		DocumentID:  u.DocumentID,
		Kind:        UnitKind(u.Kind),
		Text:        u.Text,
		SourceClaim: u.SourceClaim,
		Position:    u.Position,
		Retired:     u.Retired,
		CreatedAt:   u.CreatedAt,
	}
}
