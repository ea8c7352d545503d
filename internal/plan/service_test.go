package plan

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/recall/internal/knowledge"
	"github.com/abhisek/recall/internal/mastery"
	"github.com/abhisek/recall/internal/store"
)

// mockPlanRepo is an in-memory PlanRepo for service tests.
type mockPlanRepo struct {
	plans map[string]*store.Plan
	units map[string][]*store.Unit // keyed by plan id
	docs  map[string]*store.Document
}

func newMockPlanRepo() *mockPlanRepo {
	return &mockPlanRepo{
		plans: make(map[string]*store.Plan),
		units: make(map[string][]*store.Unit),
		docs:  make(map[string]*store.Document),
	}
}

func (m *mockPlanRepo) CreatePlan(_ context.Context, plan *store.Plan, docs []*store.Document, units []*store.Unit) error {
	m.plans[plan.ID] = plan
	m.units[plan.ID] = units
	for _, d := range docs {
		m.docs[d.ID] = d
	}
	return nil
}

func (m *mockPlanRepo) GetPlan(_ context.Context, id string) (*store.Plan, error) {
	p, ok := m.plans[id]
	if !ok {
		return nil, &store.PlanNotFoundError{PlanID: id}
	}
	return p, nil
}

func (m *mockPlanRepo) ListPlans(_ context.Context) ([]*store.Plan, error) {
	var out []*store.Plan
	for _, p := range m.plans {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockPlanRepo) CompletePlan(_ context.Context, id string) error {
	if _, ok := m.plans[id]; !ok {
		return &store.PlanNotFoundError{PlanID: id}
	}
	return nil
}

func (m *mockPlanRepo) Units(_ context.Context, planID string) ([]*store.Unit, error) {
	return m.units[planID], nil
}

func (m *mockPlanRepo) RetireUnit(_ context.Context, planID, unitID string) error {
	for _, u := range m.units[planID] {
		if u.ID == unitID {
			u.Retired = true
			return nil
		}
	}
	return errors.New("unit not found")
}

func (m *mockPlanRepo) GetDocuments(_ context.Context, ids []string) ([]*store.Document, error) {
	var out []*store.Document
	for _, id := range ids {
		if d, ok := m.docs[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

// mockSessionRepo serves canned sessions and questions for summaries.
type mockSessionRepo struct {
	sessions  []*store.Session
	questions map[string][]*store.Question
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{questions: make(map[string][]*store.Question)}
}

func (m *mockSessionRepo) CreateSession(_ context.Context, sess *store.Session, questions []*store.Question) error {
	m.sessions = append(m.sessions, sess)
	m.questions[sess.ID] = questions
	return nil
}

func (m *mockSessionRepo) GetSession(_ context.Context, id string) (*store.Session, error) {
	for _, s := range m.sessions {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, &store.SessionNotFoundError{SessionID: id}
}

func (m *mockSessionRepo) Questions(_ context.Context, sessionID string) ([]*store.Question, error) {
	return m.questions[sessionID], nil
}

func (m *mockSessionRepo) GetQuestion(_ context.Context, sessionID, questionID string) (*store.Question, error) {
	return nil, &store.QuestionNotFoundError{SessionID: sessionID, QuestionID: questionID}
}

func (m *mockSessionRepo) SessionsForPlan(_ context.Context, planID string) ([]*store.Session, error) {
	var out []*store.Session
	for _, s := range m.sessions {
		if s.PlanID == planID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSessionRepo) QuestionsForUnit(_ context.Context, _ string) ([]*store.Question, error) {
	return nil, nil
}

func (m *mockSessionRepo) SubmitAnswer(_ context.Context, sessionID, questionID, _ string) (*store.Question, error) {
	return nil, &store.QuestionNotFoundError{SessionID: sessionID, QuestionID: questionID}
}

func (m *mockSessionRepo) RecordAssessment(_ context.Context, _ store.AssessmentRecord) (float64, float64, error) {
	return 0, 0, nil
}

// mockExtractor returns canned units per document title.
type mockExtractor struct {
	byTitle map[string][]knowledge.ExtractedUnit
	err     error
}

func (m *mockExtractor) Extract(_ context.Context, doc knowledge.SourceDocument) ([]knowledge.ExtractedUnit, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.byTitle[doc.Title], nil
}

// mockMasteryRepo is an in-memory MasteryRepo.
type mockMasteryRepo struct {
	levels map[string]float64
}

func (m *mockMasteryRepo) Level(_ context.Context, _, unitID string) (float64, error) {
	return m.levels[unitID], nil
}

func (m *mockMasteryRepo) Levels(_ context.Context, _ string) (map[string]float64, error) {
	return m.levels, nil
}

func (m *mockMasteryRepo) SetLevel(_ context.Context, _, unitID string, level float64, _ string) error {
	m.levels[unitID] = level
	return nil
}

func newTestService(extractor knowledge.Extractor) (*Service, *mockPlanRepo, *mockMasteryRepo, *mockSessionRepo) {
	repo := newMockPlanRepo()
	sessions := newMockSessionRepo()
	masteryRepo := &mockMasteryRepo{levels: make(map[string]float64)}
	svc := NewService(repo, sessions, extractor, mastery.NewService(masteryRepo, 0))
	return svc, repo, masteryRepo, sessions
}

func TestCreateFromDocuments(t *testing.T) {
	extractor := &mockExtractor{byTitle: map[string][]knowledge.ExtractedUnit{
		"Biology": {
			{Kind: store.UnitClaim, Text: "Mitochondria produce ATP."},
			{Kind: store.UnitSkill, Text: "Relate structure to function."},
		},
		"Chemistry": {
			{Kind: store.UnitClaim, Text: "Mitochondria produce ATP."}, // dup across docs
			{Kind: store.UnitClaim, Text: "ATP stores energy in phosphate bonds."},
		},
	}}
	svc, repo, _, _ := newTestService(extractor)

	p, err := svc.CreateFromDocuments(context.Background(), []knowledge.SourceDocument{
		{Title: "Biology", Content: "..."},
		{Title: "Chemistry", Content: "..."},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if len(p.DocumentIDs) != 2 {
		t.Errorf("document ids = %d, want 2", len(p.DocumentIDs))
	}

	units := repo.units[p.ID]
	if len(units) != 3 {
		t.Fatalf("units = %d, want 3 (cross-document duplicate dropped)", len(units))
	}
	for i, u := range units {
		if u.Position != i {
			t.Errorf("unit %d position = %d, want %d", i, u.Position, i)
		}
		if u.PlanID != p.ID {
			t.Errorf("unit %d plan id = %q, want %q", i, u.PlanID, p.ID)
		}
	}
	// The duplicate stays attributed to the first document.
	if units[0].DocumentID != p.DocumentIDs[0] {
		t.Error("first unit should belong to the first document")
	}
}

func TestCreateFromDocumentsNothingExtracted(t *testing.T) {
	svc, _, _, _ := newTestService(&mockExtractor{byTitle: map[string][]knowledge.ExtractedUnit{}})

	_, err := svc.CreateFromDocuments(context.Background(), []knowledge.SourceDocument{
		{Title: "Empty", Content: "..."},
	})

	var noUnits *NoUnitsExtractedError
	if !errors.As(err, &noUnits) {
		t.Fatalf("err = %v, want NoUnitsExtractedError", err)
	}
	if noUnits.DocumentCount != 1 {
		t.Errorf("document count = %d, want 1", noUnits.DocumentCount)
	}
}

func TestCreateFromDocumentsExtractionError(t *testing.T) {
	wantErr := errors.New("provider down")
	svc, _, _, _ := newTestService(&mockExtractor{err: wantErr})

	_, err := svc.CreateFromDocuments(context.Background(), []knowledge.SourceDocument{
		{Title: "Doc", Content: "..."},
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want wrapped extraction error", err)
	}
}

func TestSummarize(t *testing.T) {
	extractor := &mockExtractor{byTitle: map[string][]knowledge.ExtractedUnit{
		"Doc": {
			{Kind: store.UnitClaim, Text: "A."},
			{Kind: store.UnitClaim, Text: "B."},
			{Kind: store.UnitClaim, Text: "C."},
		},
	}}
	svc, repo, masteryRepo, _ := newTestService(extractor)

	p, err := svc.CreateFromDocuments(context.Background(), []knowledge.SourceDocument{
		{Title: "Doc", Content: "..."},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	units := repo.units[p.ID]
	masteryRepo.levels[units[0].ID] = 0.95 // mastered
	masteryRepo.levels[units[1].ID] = 0.4
	units[2].Retired = true

	sum, err := svc.Summarize(context.Background(), p.ID, 0.9)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if sum.UnitCount != 3 || sum.RetiredCount != 1 {
		t.Errorf("counts = %d total / %d retired, want 3 / 1", sum.UnitCount, sum.RetiredCount)
	}
	if sum.MasteredCount != 1 {
		t.Errorf("mastered = %d, want 1", sum.MasteredCount)
	}
	// Average over all three units, the retired one included at its
	// recorded level (0 here): (0.95 + 0.4 + 0) / 3.
	want := 0.45
	if diff := sum.AverageMastery - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("average = %v, want %v", sum.AverageMastery, want)
	}
	if sum.SessionCount != 0 || len(sum.Incomplete) != 0 {
		t.Errorf("sessions = %d/%d incomplete, want none", sum.SessionCount, len(sum.Incomplete))
	}
}

func TestSummarizeSessions(t *testing.T) {
	extractor := &mockExtractor{byTitle: map[string][]knowledge.ExtractedUnit{
		"Doc": {{Kind: store.UnitClaim, Text: "A."}},
	}}
	svc, _, _, sessions := newTestService(extractor)

	p, err := svc.CreateFromDocuments(context.Background(), []knowledge.SourceDocument{
		{Title: "Doc", Content: "..."},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	yes := true
	// One fully assessed session, one abandoned halfway through.
	sessions.CreateSession(context.Background(),
		&store.Session{ID: "s1", PlanID: p.ID},
		[]*store.Question{
			{ID: "s1-q1", SessionID: "s1", IsCorrect: &yes},
			{ID: "s1-q2", SessionID: "s1", IsCorrect: &yes},
		})
	sessions.CreateSession(context.Background(),
		&store.Session{ID: "s2", PlanID: p.ID},
		[]*store.Question{
			{ID: "s2-q1", SessionID: "s2", IsCorrect: &yes},
			{ID: "s2-q2", SessionID: "s2"},
			{ID: "s2-q3", SessionID: "s2"},
		})

	sum, err := svc.Summarize(context.Background(), p.ID, 0.9)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}

	if sum.SessionCount != 2 {
		t.Errorf("session count = %d, want 2", sum.SessionCount)
	}
	if len(sum.Incomplete) != 1 {
		t.Fatalf("incomplete = %d, want 1", len(sum.Incomplete))
	}
	got := sum.Incomplete[0]
	if got.SessionID != "s2" || got.Assessed != 1 || got.Total != 3 {
		t.Errorf("incomplete = %+v, want s2 at 1/3", got)
	}
}

func TestUnitsUnknownPlan(t *testing.T) {
	svc, _, _, _ := newTestService(&mockExtractor{})

	_, err := svc.Units(context.Background(), "nope")
	var notFound *store.PlanNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want PlanNotFoundError", err)
	}
}
