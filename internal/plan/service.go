package plan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/recall/internal/knowledge"
	"github.com/abhisek/recall/internal/mastery"
	"github.com/abhisek/recall/internal/store"
)

// NoUnitsExtractedError indicates extraction produced nothing usable
// across all supplied documents, so no plan was created.
type NoUnitsExtractedError struct {
	DocumentCount int
}

func (e *NoUnitsExtractedError) Error() string {
	return fmt.Sprintf("no knowledge units extracted from %d document(s)", e.DocumentCount)
}

// Service creates and manages learning plans.
type Service struct {
	plans     store.PlanRepo
	sessions  store.SessionRepo
	extractor knowledge.Extractor
	mastery   *mastery.Service
}

// NewService creates a plan service.
func NewService(plans store.PlanRepo, sessions store.SessionRepo, extractor knowledge.Extractor, mastery *mastery.Service) *Service {
	return &Service{plans: plans, sessions: sessions, extractor: extractor, mastery: mastery}
}

// CreateFromDocuments ingests the documents, extracts knowledge units
// from each, and persists the plan atomically. Units duplicated across
// documents are kept once, attributed to the first document that
// yielded them. Returns NoUnitsExtractedError when nothing usable came
// out of any document.
func (s *Service) CreateFromDocuments(ctx context.Context, docs []knowledge.SourceDocument) (*store.Plan, error) {
	if len(docs) == 0 {
		return nil, &NoUnitsExtractedError{DocumentCount: 0}
	}

	planID := uuid.NewString()

	storeDocs := make([]*store.Document, 0, len(docs))
	docIDs := make([]string, 0, len(docs))
	seen := make(map[string]bool)
	var units []*store.Unit

	for i := range docs {
		doc := docs[i]
		if doc.ID == "" {
			doc.ID = uuid.NewString()
		}
		docIDs = append(docIDs, doc.ID)
		storeDocs = append(storeDocs, &store.Document{
			ID:      doc.ID,
			Title:   doc.Title,
			Content: doc.Content,
		})

		extracted, err := s.extractor.Extract(ctx, doc)
		if err != nil {
			return nil, fmt.Errorf("extract from %q: %w", doc.Title, err)
		}

		for _, u := range extracted {
			key := knowledge.Normalize(u.Text)
			if seen[key] {
				continue
			}
			seen[key] = true

			units = append(units, &store.Unit{
				ID:          uuid.NewString(),
				PlanID:      planID,
				DocumentID:  doc.ID,
				Kind:        u.Kind,
				Text:        u.Text,
				SourceClaim: u.SourceClaim,
				Position:    len(units),
			})
		}
	}

	if len(units) == 0 {
		return nil, &NoUnitsExtractedError{DocumentCount: len(docs)}
	}

	p := &store.Plan{ID: planID, DocumentIDs: docIDs}
	if err := s.plans.CreatePlan(ctx, p, storeDocs, units); err != nil {
		return nil, fmt.Errorf("persist plan: %w", err)
	}

	return s.plans.GetPlan(ctx, planID)
}

// Get returns a plan by id.
func (s *Service) Get(ctx context.Context, id string) (*store.Plan, error) {
	return s.plans.GetPlan(ctx, id)
}

// List returns all plans, newest first.
func (s *Service) List(ctx context.Context) ([]*store.Plan, error) {
	return s.plans.ListPlans(ctx)
}

// Units returns a plan's knowledge units in position order.
func (s *Service) Units(ctx context.Context, planID string) ([]*store.Unit, error) {
	if _, err := s.plans.GetPlan(ctx, planID); err != nil {
		return nil, err
	}
	return s.plans.Units(ctx, planID)
}

// Complete marks the plan finished. Completion is a bookkeeping marker;
// further sessions against the plan remain allowed.
func (s *Service) Complete(ctx context.Context, id string) error {
	return s.plans.CompletePlan(ctx, id)
}

// RetireUnit excludes a unit from future question selection, e.g. when
// extraction produced something not worth studying.
func (s *Service) RetireUnit(ctx context.Context, planID, unitID string) error {
	if _, err := s.plans.GetPlan(ctx, planID); err != nil {
		return err
	}
	return s.plans.RetireUnit(ctx, planID, unitID)
}

// SessionProgress is the standing of one session that still has
// unassessed questions.
type SessionProgress struct {
	SessionID string
	CreatedAt time.Time
	Assessed  int
	Total     int
}

// Summary is the progress overview for one plan.
type Summary struct {
	Plan           *store.Plan
	UnitCount      int
	RetiredCount   int
	MasteredCount  int
	AverageMastery float64
	SessionCount   int
	Incomplete     []SessionProgress
}

// Summarize computes the progress overview for a plan. The average and
// the mastered count run over every unit, with unseen units at 0;
// retirement only removes a unit from selection, not from the plan's
// aggregates. Incomplete lists the sessions still missing verdicts,
// newest first.
func (s *Service) Summarize(ctx context.Context, planID string, masteredThreshold float64) (*Summary, error) {
	p, err := s.plans.GetPlan(ctx, planID)
	if err != nil {
		return nil, err
	}

	units, err := s.plans.Units(ctx, planID)
	if err != nil {
		return nil, err
	}

	levels, err := s.mastery.Levels(ctx, planID)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Plan: p, UnitCount: len(units)}
	var total float64
	for _, u := range units {
		if u.Retired {
			sum.RetiredCount++
		}
		level := levels[u.ID]
		total += level
		if level >= masteredThreshold {
			sum.MasteredCount++
		}
	}
	if len(units) > 0 {
		sum.AverageMastery = total / float64(len(units))
	}

	sessions, err := s.sessions.SessionsForPlan(ctx, planID)
	if err != nil {
		return nil, err
	}
	sum.SessionCount = len(sessions)
	for _, sess := range sessions {
		questions, err := s.sessions.Questions(ctx, sess.ID)
		if err != nil {
			return nil, err
		}
		assessed := 0
		for _, q := range questions {
			if q.Assessed() {
				assessed++
			}
		}
		if assessed < len(questions) {
			sum.Incomplete = append(sum.Incomplete, SessionProgress{
				SessionID: sess.ID,
				CreatedAt: sess.CreatedAt,
				Assessed:  assessed,
				Total:     len(questions),
			})
		}
	}

	return sum, nil
}
