package study

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/recall/internal/mastery"
	"github.com/abhisek/recall/internal/questiongen"
	"github.com/abhisek/recall/internal/store"
)

// mockPlanRepo serves a single canned plan.
type mockPlanRepo struct {
	plan  *store.Plan
	units []*store.Unit
}

func (m *mockPlanRepo) CreatePlan(_ context.Context, _ *store.Plan, _ []*store.Document, _ []*store.Unit) error {
	return nil
}

func (m *mockPlanRepo) GetPlan(_ context.Context, id string) (*store.Plan, error) {
	if m.plan == nil || m.plan.ID != id {
		return nil, &store.PlanNotFoundError{PlanID: id}
	}
	return m.plan, nil
}

func (m *mockPlanRepo) ListPlans(_ context.Context) ([]*store.Plan, error) { return nil, nil }
func (m *mockPlanRepo) CompletePlan(_ context.Context, _ string) error     { return nil }

func (m *mockPlanRepo) Units(_ context.Context, _ string) ([]*store.Unit, error) {
	return m.units, nil
}

func (m *mockPlanRepo) RetireUnit(_ context.Context, _, _ string) error { return nil }

func (m *mockPlanRepo) GetDocuments(_ context.Context, _ []string) ([]*store.Document, error) {
	return nil, nil
}

// mockSessionRepo stores sessions in memory.
type mockSessionRepo struct {
	sessions  map[string]*store.Session
	questions map[string][]*store.Question // keyed by session id
	history   map[string][]*store.Question // keyed by unit id
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{
		sessions:  make(map[string]*store.Session),
		questions: make(map[string][]*store.Question),
		history:   make(map[string][]*store.Question),
	}
}

func (m *mockSessionRepo) CreateSession(_ context.Context, sess *store.Session, questions []*store.Question) error {
	m.sessions[sess.ID] = sess
	m.questions[sess.ID] = questions
	for _, q := range questions {
		m.history[q.UnitID] = append(m.history[q.UnitID], q)
	}
	return nil
}

func (m *mockSessionRepo) GetSession(_ context.Context, id string) (*store.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, &store.SessionNotFoundError{SessionID: id}
	}
	return s, nil
}

func (m *mockSessionRepo) Questions(_ context.Context, sessionID string) ([]*store.Question, error) {
	return m.questions[sessionID], nil
}

func (m *mockSessionRepo) GetQuestion(_ context.Context, sessionID, questionID string) (*store.Question, error) {
	for _, q := range m.questions[sessionID] {
		if q.ID == questionID {
			return q, nil
		}
	}
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

func (m *mockSessionRepo) QuestionsForUnit(_ context.Context, unitID string) ([]*store.Question, error) {
	return m.history[unitID], nil
}

func (m *mockSessionRepo) SubmitAnswer(_ context.Context, sessionID, questionID, answer string) (*store.Question, error) {
	q, err := m.GetQuestion(context.Background(), sessionID, questionID)
	if err != nil {
		return nil, err
	}
	if q.Assessed() {
		return nil, &store.AlreadyAssessedError{QuestionID: questionID}
	}
	q.UserAnswer = &answer
	return q, nil
}

func (m *mockSessionRepo) RecordAssessment(_ context.Context, _ store.AssessmentRecord) (float64, float64, error) {
	return 0, 0, nil
}

// mockEventRepo records appended session events.
type mockEventRepo struct {
	sessionEvents []store.SessionEventData
}

func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (m *mockEventRepo) AppendSession(_ context.Context, data store.SessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}

func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]*store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEvent, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}

func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func (m *mockEventRepo) MasteryHistory(_ context.Context, _, _ string) ([]*store.MasteryEvent, error) {
	return nil, nil
}

// mockMasteryRepo serves canned levels.
type mockMasteryRepo struct {
	levels map[string]float64
}

func (m *mockMasteryRepo) Level(_ context.Context, _, unitID string) (float64, error) {
	return m.levels[unitID], nil
}

func (m *mockMasteryRepo) Levels(_ context.Context, _ string) (map[string]float64, error) {
	return m.levels, nil
}

func (m *mockMasteryRepo) SetLevel(_ context.Context, _, _ string, _ float64, _ string) error {
	return nil
}

// scriptedGenerator returns canned results in order; errors are scripts too.
type scriptedGenerator struct {
	results []scriptedResult
	calls   int
}

type scriptedResult struct {
	q   *questiongen.GeneratedQuestion
	err error
}

func (g *scriptedGenerator) Generate(_ context.Context, _ questiongen.GenerateInput) (*questiongen.GeneratedQuestion, error) {
	if g.calls >= len(g.results) {
		return nil, errors.New("generator script exhausted")
	}
	r := g.results[g.calls]
	g.calls++
	return r.q, r.err
}

func (g *scriptedGenerator) GenerateHint(_ context.Context, _ string, _ *store.Unit) (string, error) {
	return "", nil
}

func ok(text string) scriptedResult {
	return scriptedResult{q: &questiongen.GeneratedQuestion{Text: text, CanonicalAnswer: "a"}}
}

func fail() scriptedResult {
	return scriptedResult{err: errors.New("generation failed")}
}

func testUnits() []*store.Unit {
	return []*store.Unit{
		{ID: "u1", PlanID: "p1", DocumentID: "d1", Kind: store.UnitClaim, Text: "A.", Position: 0},
		{ID: "u2", PlanID: "p1", DocumentID: "d1", Kind: store.UnitClaim, Text: "B.", Position: 1},
		{ID: "u3", PlanID: "p1", DocumentID: "d2", Kind: store.UnitClaim, Text: "C.", Position: 2},
	}
}

func newTestService(gen questiongen.Generator, levels map[string]float64, units []*store.Unit) (*Service, *mockSessionRepo, *mockEventRepo) {
	plans := &mockPlanRepo{plan: &store.Plan{ID: "p1"}, units: units}
	sessions := newMockSessionRepo()
	events := &mockEventRepo{}
	masterySvc := mastery.NewService(&mockMasteryRepo{levels: levels}, 0)
	svc := NewService(plans, sessions, masterySvc, gen, events, DefaultConfig())
	return svc, sessions, events
}

func TestSelectUnitsWeakestFirst(t *testing.T) {
	units := testUnits()
	levels := map[string]float64{"u1": 0.1, "u2": 0.9, "u3": 0.0}

	got := SelectUnits(units, levels, 0.9, 2)
	if len(got) != 2 {
		t.Fatalf("selected = %d, want 2", len(got))
	}
	if got[0].ID != "u3" || got[1].ID != "u1" {
		t.Errorf("selection = [%s %s], want [u3 u1]", got[0].ID, got[1].ID)
	}
}

func TestSelectUnitsTiebreakByPosition(t *testing.T) {
	units := testUnits()
	levels := map[string]float64{} // all unseen, all 0

	got := SelectUnits(units, levels, 0.9, 3)
	for i, want := range []string{"u1", "u2", "u3"} {
		if got[i].ID != want {
			t.Errorf("selection[%d] = %s, want %s (creation order)", i, got[i].ID, want)
		}
	}
}

func TestSelectUnitsExcludesRetired(t *testing.T) {
	units := testUnits()
	units[0].Retired = true

	got := SelectUnits(units, map[string]float64{}, 0.9, 3)
	if len(got) != 2 {
		t.Fatalf("selected = %d, want 2", len(got))
	}
	for _, u := range got {
		if u.ID == "u1" {
			t.Error("retired unit selected")
		}
	}
}

func TestSelectUnitsBackfillSpreadsDocuments(t *testing.T) {
	units := []*store.Unit{
		{ID: "w1", DocumentID: "d1", Position: 0}, // weak
		{ID: "m1", DocumentID: "d1", Position: 1},
		{ID: "m2", DocumentID: "d1", Position: 2},
		{ID: "m3", DocumentID: "d2", Position: 3},
	}
	levels := map[string]float64{"w1": 0.2, "m1": 0.9, "m2": 0.92, "m3": 0.95}

	got := SelectUnits(units, levels, 0.9, 3)
	if len(got) != 3 {
		t.Fatalf("selected = %d, want 3", len(got))
	}
	if got[0].ID != "w1" {
		t.Errorf("first = %s, want the weak unit", got[0].ID)
	}
	// Backfill alternates documents rather than exhausting d1 first.
	if got[1].ID != "m1" || got[2].ID != "m3" {
		t.Errorf("backfill = [%s %s], want [m1 m3]", got[1].ID, got[2].ID)
	}
}

func TestStartCreatesFrozenSession(t *testing.T) {
	gen := &scriptedGenerator{results: []scriptedResult{ok("Q about A?"), ok("Q about B?"), ok("Q about C?")}}
	levels := map[string]float64{"u1": 0.5} // difficulty 3 for u1, 1 for the rest
	svc, sessions, events := newTestService(gen, levels, testUnits())

	view, err := svc.Start(context.Background(), "p1", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if len(view.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(view.Questions))
	}
	for i, q := range view.Questions {
		if q.Position != i {
			t.Errorf("question %d position = %d", i, q.Position)
		}
	}

	// u1 sits at 0.5 so its question lands at difficulty 3.
	var u1Difficulty int
	for _, q := range view.Questions {
		if q.UnitID == "u1" {
			u1Difficulty = q.Difficulty
		}
	}
	if u1Difficulty != 3 {
		t.Errorf("u1 difficulty = %d, want 3", u1Difficulty)
	}

	if _, ok := sessions.sessions[view.Session.ID]; !ok {
		t.Error("session not persisted")
	}
	if len(events.sessionEvents) != 1 || events.sessionEvents[0].Action != "created" {
		t.Errorf("events = %+v, want one created event", events.sessionEvents)
	}
	if events.sessionEvents[0].QuestionCount != 3 {
		t.Errorf("event question count = %d, want 3", events.sessionEvents[0].QuestionCount)
	}
}

func TestStartRetriesOnceThenSkips(t *testing.T) {
	// u1 fails twice (skipped), u2 fails once then succeeds, u3 succeeds.
	gen := &scriptedGenerator{results: []scriptedResult{
		fail(), fail(), // u1
		fail(), ok("Q about B?"), // u2
		ok("Q about C?"), // u3
	}}
	svc, _, _ := newTestService(gen, map[string]float64{}, testUnits())

	view, err := svc.Start(context.Background(), "p1", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if len(view.Questions) != 2 {
		t.Fatalf("questions = %d, want 2 (u1 skipped)", len(view.Questions))
	}
	for _, q := range view.Questions {
		if q.UnitID == "u1" {
			t.Error("u1 should have been skipped")
		}
	}
	// Positions stay dense after the skip.
	if view.Questions[0].Position != 0 || view.Questions[1].Position != 1 {
		t.Error("positions should be contiguous")
	}
}

func TestStartRejectsDuplicateQuestion(t *testing.T) {
	units := testUnits()[:1]
	gen := &scriptedGenerator{results: []scriptedResult{
		ok("what   do MITOCHONDRIA do?"), // normalizes equal to history
		ok("How is ATP produced?"),
	}}
	svc, sessions, _ := newTestService(gen, map[string]float64{}, units)
	sessions.history["u1"] = []*store.Question{{UnitID: "u1", Text: "What do mitochondria do?"}}

	view, err := svc.Start(context.Background(), "p1", 1)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if view.Questions[0].Text != "How is ATP produced?" {
		t.Errorf("text = %q, want the retry result", view.Questions[0].Text)
	}
	if gen.calls != 2 {
		t.Errorf("calls = %d, want 2", gen.calls)
	}
}

func TestStartRejectsDuplicateAcrossUnits(t *testing.T) {
	// u2's first attempt repeats the question just generated for u1.
	gen := &scriptedGenerator{results: []scriptedResult{
		ok("What is ATP?"),        // u1
		ok("what is   ATP?"),      // u2, normalizes equal to u1's question
		ok("Where is ATP made?"),  // u2 retry
		ok("What is a ribosome?"), // u3
	}}
	svc, _, _ := newTestService(gen, map[string]float64{}, testUnits())

	view, err := svc.Start(context.Background(), "p1", 3)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if len(view.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(view.Questions))
	}
	if view.Questions[1].Text != "Where is ATP made?" {
		t.Errorf("u2 text = %q, want the regenerated question", view.Questions[1].Text)
	}
	if gen.calls != 4 {
		t.Errorf("calls = %d, want 4 (one rejection, one retry)", gen.calls)
	}
}

func TestStartSkipsUnitThatKeepsDuplicating(t *testing.T) {
	units := testUnits()[:2]
	gen := &scriptedGenerator{results: []scriptedResult{
		ok("What is ATP?"), // u1
		ok("What is ATP?"), // u2
		ok("What is ATP?"), // u2 retry, still a duplicate
	}}
	svc, _, _ := newTestService(gen, map[string]float64{}, units)

	view, err := svc.Start(context.Background(), "p1", 2)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	if len(view.Questions) != 1 {
		t.Fatalf("questions = %d, want 1 (u2 skipped)", len(view.Questions))
	}
	if view.Questions[0].UnitID != "u1" {
		t.Errorf("kept unit = %s, want u1", view.Questions[0].UnitID)
	}
}

func TestStartAllUnitsFail(t *testing.T) {
	gen := &scriptedGenerator{results: []scriptedResult{
		fail(), fail(), fail(), fail(), fail(), fail(),
	}}
	svc, sessions, _ := newTestService(gen, map[string]float64{}, testUnits())

	_, err := svc.Start(context.Background(), "p1", 3)
	var noQuestions *NoQuestionsGeneratedError
	if !errors.As(err, &noQuestions) {
		t.Fatalf("err = %v, want NoQuestionsGeneratedError", err)
	}
	if len(sessions.sessions) != 0 {
		t.Error("no session should be persisted when nothing was generated")
	}
}

func TestStartUnknownPlan(t *testing.T) {
	svc, _, _ := newTestService(&scriptedGenerator{}, map[string]float64{}, nil)

	_, err := svc.Start(context.Background(), "nope", 3)
	var notFound *store.PlanNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want PlanNotFoundError", err)
	}
}

func TestStartUsesDefaultMaxQuestions(t *testing.T) {
	gen := &scriptedGenerator{results: []scriptedResult{
		ok("Q1?"), ok("Q2?"), ok("Q3?"),
	}}
	svc, _, _ := newTestService(gen, map[string]float64{}, testUnits())

	view, err := svc.Start(context.Background(), "p1", 0)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	// Only 3 units exist; the default cap of 6 does not pad the session.
	if len(view.Questions) != 3 {
		t.Errorf("questions = %d, want 3", len(view.Questions))
	}
	if view.Session.MaxQuestions != 6 {
		t.Errorf("max questions = %d, want the default 6", view.Session.MaxQuestions)
	}
}

func TestResumeIndex(t *testing.T) {
	answered := "yes"
	tests := []struct {
		name      string
		questions []*store.Question
		want      int
	}{
		{
			"first unanswered in the middle",
			[]*store.Question{
				{UserAnswer: &answered},
				{},
				{UserAnswer: &answered},
			},
			1,
		},
		{
			"nothing answered",
			[]*store.Question{{}, {}},
			0,
		},
		{
			"everything answered wraps to the start",
			[]*store.Question{
				{UserAnswer: &answered},
				{UserAnswer: &answered},
			},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &SessionView{Questions: tt.questions}
			if got := v.ResumeIndex(); got != tt.want {
				t.Errorf("resume index = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	answered := "yes"
	yes, no := true, false
	v := &SessionView{Questions: []*store.Question{
		{UserAnswer: &answered, IsCorrect: &yes},
		{UserAnswer: &answered, IsCorrect: &no},
		{UserAnswer: &answered},
		{},
	}}

	p := v.Progress()
	if p.Total != 4 || p.Answered != 3 || p.Assessed != 2 || p.Correct != 1 {
		t.Errorf("progress = %+v, want 4/3/2/1", p)
	}
}
