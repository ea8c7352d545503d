package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedPlan(t *testing.T, s *Store) *Plan {
	t.Helper()
	ctx := context.Background()

	plan := &Plan{ID: "plan-1", DocumentIDs: []string{"doc-1"}}
	docs := []*Document{
		{ID: "doc-1", Title: "Cell Biology", Content: "The mitochondrion is the powerhouse of the cell."},
	}
	units := []*Unit{
		{ID: "unit-1", PlanID: "plan-1", DocumentID: "doc-1", Kind: UnitClaim, Text: "Mitochondria produce ATP.", Position: 0},
		{ID: "unit-2", PlanID: "plan-1", DocumentID: "doc-1", Kind: UnitSkill, Text: "Relate organelle structure to function.", Position: 1},
	}

	if err := s.PlanRepo().CreatePlan(ctx, plan, docs, units); err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	return plan
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestCreateAndGetPlan(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)

	plan, err := s.PlanRepo().GetPlan(ctx, "plan-1")
	if err != nil {
		t.Fatalf("get plan: %v", err)
	}
	if len(plan.DocumentIDs) != 1 || plan.DocumentIDs[0] != "doc-1" {
		t.Errorf("document ids = %v, want [doc-1]", plan.DocumentIDs)
	}
	if plan.CompletedAt != nil {
		t.Error("new plan should not be completed")
	}

	units, err := s.PlanRepo().Units(ctx, "plan-1")
	if err != nil {
		t.Fatalf("units: %v", err)
	}
	if len(units) != 2 {
		t.Fatalf("units = %d, want 2", len(units))
	}
	if units[0].ID != "unit-1" || units[1].ID != "unit-2" {
		t.Errorf("unit order = [%s %s], want [unit-1 unit-2]", units[0].ID, units[1].ID)
	}
	if units[0].Kind != UnitClaim {
		t.Errorf("unit-1 kind = %q, want claim", units[0].Kind)
	}
}

func TestGetPlanNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.PlanRepo().GetPlan(context.Background(), "nope")
	var notFound *PlanNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want PlanNotFoundError", err)
	}
	if notFound.PlanID != "nope" {
		t.Errorf("plan id = %q, want nope", notFound.PlanID)
	}
}

func TestCompletePlanIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)

	if err := s.PlanRepo().CompletePlan(ctx, "plan-1"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	plan, err := s.PlanRepo().GetPlan(ctx, "plan-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if plan.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}
	first := *plan.CompletedAt

	if err := s.PlanRepo().CompletePlan(ctx, "plan-1"); err != nil {
		t.Fatalf("complete again: %v", err)
	}
	plan, _ = s.PlanRepo().GetPlan(ctx, "plan-1")
	if !plan.CompletedAt.Equal(first) {
		t.Error("second complete should not move the marker")
	}
}

func TestRetireUnit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)

	if err := s.PlanRepo().RetireUnit(ctx, "plan-1", "unit-1"); err != nil {
		t.Fatalf("retire: %v", err)
	}

	units, _ := s.PlanRepo().Units(ctx, "plan-1")
	if !units[0].Retired {
		t.Error("unit-1 should be retired")
	}
	if units[1].Retired {
		t.Error("unit-2 should not be retired")
	}

	if err := s.PlanRepo().RetireUnit(ctx, "plan-1", "nope"); err == nil {
		t.Error("expected error retiring unknown unit")
	}
}

func TestMasteryLevelDefaultsToZero(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)

	level, err := s.MasteryRepo().Level(ctx, "plan-1", "unit-1")
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	if level != 0 {
		t.Errorf("level = %v, want 0 for unseen unit", level)
	}
}

func TestMasterySetAndLevels(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)

	if err := s.MasteryRepo().SetLevel(ctx, "plan-1", "unit-1", 0.45, "manual"); err != nil {
		t.Fatalf("set level: %v", err)
	}
	if err := s.MasteryRepo().SetLevel(ctx, "plan-1", "unit-1", 0.6, "manual"); err != nil {
		t.Fatalf("set level again: %v", err)
	}

	level, _ := s.MasteryRepo().Level(ctx, "plan-1", "unit-1")
	if level != 0.6 {
		t.Errorf("level = %v, want 0.6", level)
	}

	levels, err := s.MasteryRepo().Levels(ctx, "plan-1")
	if err != nil {
		t.Fatalf("levels: %v", err)
	}
	if len(levels) != 1 {
		t.Fatalf("levels = %d records, want 1", len(levels))
	}

	// Both updates are in the audit trail.
	history, err := s.EventRepo().MasteryHistory(ctx, "plan-1", "unit-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history = %d events, want 2", len(history))
	}
	if history[1].FromLevel != 0.45 || history[1].ToLevel != 0.6 {
		t.Errorf("second event = %v -> %v, want 0.45 -> 0.6", history[1].FromLevel, history[1].ToLevel)
	}
}

func seedSession(t *testing.T, s *Store) {
	t.Helper()
	ctx := context.Background()

	sess := &Session{ID: "sess-1", PlanID: "plan-1", MaxQuestions: 2}
	questions := []*Question{
		{ID: "q-1", SessionID: "sess-1", UnitID: "unit-1", Position: 0, Text: "What do mitochondria produce?", Difficulty: 1},
		{ID: "q-2", SessionID: "sess-1", UnitID: "unit-2", Position: 1, Text: "Why are cristae folded?", Difficulty: 3},
	}
	if err := s.SessionRepo().CreateSession(ctx, sess, questions); err != nil {
		t.Fatalf("seed session: %v", err)
	}
}

func TestCreateSessionAndQuestionOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)
	seedSession(t, s)

	sess, err := s.SessionRepo().GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if sess.MaxQuestions != 2 {
		t.Errorf("max questions = %d, want 2", sess.MaxQuestions)
	}

	questions, err := s.SessionRepo().Questions(ctx, "sess-1")
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(questions))
	}
	if questions[0].ID != "q-1" || questions[1].ID != "q-2" {
		t.Errorf("order = [%s %s], want [q-1 q-2]", questions[0].ID, questions[1].ID)
	}
	if questions[0].Answered() || questions[0].Assessed() {
		t.Error("fresh question should be unanswered and unassessed")
	}
}

func TestGetSessionNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.SessionRepo().GetSession(context.Background(), "nope")
	var notFound *SessionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want SessionNotFoundError", err)
	}
}

func TestSubmitAnswerOverwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)
	seedSession(t, s)

	q, err := s.SessionRepo().SubmitAnswer(ctx, "sess-1", "q-1", "ATP")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if q.UserAnswer == nil || *q.UserAnswer != "ATP" {
		t.Fatalf("answer = %v, want ATP", q.UserAnswer)
	}

	// Resubmission before assessment replaces the answer.
	q, err = s.SessionRepo().SubmitAnswer(ctx, "sess-1", "q-1", "energy in the form of ATP")
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if *q.UserAnswer != "energy in the form of ATP" {
		t.Errorf("answer = %q, want the resubmitted text", *q.UserAnswer)
	}
}

func TestSubmitAnswerUnknownQuestion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)
	seedSession(t, s)

	_, err := s.SessionRepo().SubmitAnswer(ctx, "sess-1", "nope", "x")
	var notFound *QuestionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("err = %v, want QuestionNotFoundError", err)
	}
}

func TestRecordAssessment(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)
	seedSession(t, s)

	if _, err := s.SessionRepo().SubmitAnswer(ctx, "sess-1", "q-1", "ATP"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rec := AssessmentRecord{
		PlanID:      "plan-1",
		SessionID:   "sess-1",
		QuestionID:  "q-1",
		UnitID:      "unit-1",
		IsCorrect:   true,
		Explanation: "ATP is correct.",
		Advance:     func(from float64) float64 { return from + 0.15 },
	}
	from, to, err := s.SessionRepo().RecordAssessment(ctx, rec)
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if from != 0 || to != 0.15 {
		t.Errorf("applied %v -> %v, want 0 -> 0.15", from, to)
	}

	// Verdict and mastery land together.
	q, _ := s.SessionRepo().GetQuestion(ctx, "sess-1", "q-1")
	if !q.Assessed() || !*q.IsCorrect {
		t.Fatal("expected a correct verdict")
	}
	level, _ := s.MasteryRepo().Level(ctx, "plan-1", "unit-1")
	if level != 0.15 {
		t.Errorf("level = %v, want 0.15", level)
	}

	history, _ := s.EventRepo().MasteryHistory(ctx, "plan-1", "unit-1")
	if len(history) != 1 {
		t.Fatalf("history = %d events, want 1", len(history))
	}
	if history[0].Trigger != "assessment" || history[0].QuestionID != "q-1" {
		t.Errorf("event = %+v, want assessment trigger for q-1", history[0])
	}
}

func TestRecordAssessmentTwice(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)
	seedSession(t, s)

	if _, err := s.SessionRepo().SubmitAnswer(ctx, "sess-1", "q-1", "ATP"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	rec := AssessmentRecord{
		PlanID: "plan-1", SessionID: "sess-1", QuestionID: "q-1", UnitID: "unit-1",
		IsCorrect: true, Advance: func(from float64) float64 { return from + 0.15 },
	}
	if _, _, err := s.SessionRepo().RecordAssessment(ctx, rec); err != nil {
		t.Fatalf("record: %v", err)
	}

	rec.IsCorrect = false
	rec.Advance = func(float64) float64 { return 0 }
	_, _, err := s.SessionRepo().RecordAssessment(ctx, rec)
	var already *AlreadyAssessedError
	if !errors.As(err, &already) {
		t.Fatalf("err = %v, want AlreadyAssessedError", err)
	}

	// The losing write must not have touched mastery.
	level, _ := s.MasteryRepo().Level(ctx, "plan-1", "unit-1")
	if level != 0.15 {
		t.Errorf("level = %v, want 0.15 after rejected re-assessment", level)
	}
}

func TestRecordAssessmentStepsFromStoredLevel(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)
	seedSession(t, s)

	// A second session quizzes the same unit.
	sess2 := &Session{ID: "sess-2", PlanID: "plan-1", MaxQuestions: 1}
	q3 := []*Question{
		{ID: "q-3", SessionID: "sess-2", UnitID: "unit-1", Position: 0, Text: "Where is ATP made?", Difficulty: 1},
	}
	if err := s.SessionRepo().CreateSession(ctx, sess2, q3); err != nil {
		t.Fatalf("seed second session: %v", err)
	}

	for _, id := range []struct{ sess, q string }{{"sess-1", "q-1"}, {"sess-2", "q-3"}} {
		if _, err := s.SessionRepo().SubmitAnswer(ctx, id.sess, id.q, "ATP"); err != nil {
			t.Fatalf("submit %s: %v", id.q, err)
		}
	}

	// Both callers hand over the same step function, as they would after
	// grading answers that were submitted while the unit still sat at 0.
	advance := func(from float64) float64 { return from + 0.15 }

	from, to, err := s.SessionRepo().RecordAssessment(ctx, AssessmentRecord{
		PlanID: "plan-1", SessionID: "sess-1", QuestionID: "q-1", UnitID: "unit-1",
		IsCorrect: true, Advance: advance,
	})
	if err != nil {
		t.Fatalf("record first: %v", err)
	}
	if from != 0 || to != 0.15 {
		t.Errorf("first step %v -> %v, want 0 -> 0.15", from, to)
	}

	// The second assessment must start from the committed 0.15, not
	// from the stale 0 its caller read before grading.
	from, to, err = s.SessionRepo().RecordAssessment(ctx, AssessmentRecord{
		PlanID: "plan-1", SessionID: "sess-2", QuestionID: "q-3", UnitID: "unit-1",
		IsCorrect: true, Advance: advance,
	})
	if err != nil {
		t.Fatalf("record second: %v", err)
	}
	if from != 0.15 || to != 0.3 {
		t.Errorf("second step %v -> %v, want 0.15 -> 0.3", from, to)
	}

	level, _ := s.MasteryRepo().Level(ctx, "plan-1", "unit-1")
	if level != 0.3 {
		t.Errorf("level = %v, want 0.3 (both steps applied)", level)
	}

	history, _ := s.EventRepo().MasteryHistory(ctx, "plan-1", "unit-1")
	if len(history) != 2 {
		t.Fatalf("history = %d events, want 2", len(history))
	}
	if history[1].FromLevel != 0.15 || history[1].ToLevel != 0.3 {
		t.Errorf("second event = %v -> %v, want 0.15 -> 0.3", history[1].FromLevel, history[1].ToLevel)
	}
}

func TestSubmitAnswerAfterAssessment(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)
	seedSession(t, s)

	if _, err := s.SessionRepo().SubmitAnswer(ctx, "sess-1", "q-1", "ATP"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	rec := AssessmentRecord{
		PlanID: "plan-1", SessionID: "sess-1", QuestionID: "q-1", UnitID: "unit-1",
		IsCorrect: true, Advance: func(from float64) float64 { return from + 0.15 },
	}
	if _, _, err := s.SessionRepo().RecordAssessment(ctx, rec); err != nil {
		t.Fatalf("record: %v", err)
	}

	_, err := s.SessionRepo().SubmitAnswer(ctx, "sess-1", "q-1", "changed my mind")
	var already *AlreadyAssessedError
	if !errors.As(err, &already) {
		t.Fatalf("err = %v, want AlreadyAssessedError", err)
	}
}

func TestFeedbackDuplicateRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedPlan(t, s)
	seedSession(t, s)

	fb := &Feedback{
		SessionID:  "sess-1",
		QuestionID: "q-1",
		Kind:       FeedbackQuestionHelpfulness,
		Flag:       true,
	}
	if err := s.FeedbackRepo().Add(ctx, fb); err != nil {
		t.Fatalf("add: %v", err)
	}

	err := s.FeedbackRepo().Add(ctx, fb)
	var dup *DuplicateFeedbackError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want DuplicateFeedbackError", err)
	}

	// A different kind on the same question is fine.
	fb2 := &Feedback{
		SessionID:  "sess-1",
		QuestionID: "q-1",
		Kind:       FeedbackAssessmentAgreement,
		Flag:       false,
		Comment:    "verdict felt too strict",
	}
	if err := s.FeedbackRepo().Add(ctx, fb2); err != nil {
		t.Fatalf("add different kind: %v", err)
	}

	all, err := s.FeedbackRepo().BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("feedback = %d records, want 2", len(all))
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "question-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 800, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "grading", InputTokens: 200, OutputTokens: 30, LatencyMs: 600, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "grading", InputTokens: 150, OutputTokens: 0, LatencyMs: 200, Success: false, ErrorMessage: "rate limited"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Purpose != "grading" || got[0].Success {
		t.Errorf("first event = %+v, want the failed grading call", got[0])
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byPurpose := make(map[string]LLMUsageStat)
	for _, st := range stats {
		byPurpose[st.Purpose] = st
	}
	if byPurpose["grading"].Calls != 2 || byPurpose["grading"].InputTokens != 350 {
		t.Errorf("grading usage = %+v, want 2 calls / 350 input tokens", byPurpose["grading"])
	}

	models, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("model usage: %v", err)
	}
	if len(models) != 1 || models[0].Calls != 3 {
		t.Errorf("model usage = %+v, want one model with 3 calls", models)
	}
}
