package assess

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/recall/internal/grading"
	"github.com/abhisek/recall/internal/mastery"
	"github.com/abhisek/recall/internal/store"
)

// stubGrader returns canned verdicts in order.
type stubGrader struct {
	verdicts []*grading.Verdict
	err      error
	calls    int
	lastIn   grading.Input
}

func (g *stubGrader) Grade(_ context.Context, input grading.Input) (*grading.Verdict, error) {
	g.lastIn = input
	if g.err != nil {
		return nil, g.err
	}
	v := g.verdicts[g.calls]
	g.calls++
	return v, nil
}

type testEnv struct {
	store   *store.Store
	svc     *Service
	grader  *stubGrader
	mastery *mastery.Service
}

func newTestEnv(t *testing.T, grader *stubGrader) *testEnv {
	t.Helper()

	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	plan := &store.Plan{ID: "plan-1", DocumentIDs: []string{"doc-1"}}
	docs := []*store.Document{{ID: "doc-1", Title: "Doc", Content: "text"}}
	units := []*store.Unit{
		{ID: "unit-1", PlanID: "plan-1", DocumentID: "doc-1", Kind: store.UnitClaim, Text: "Mitochondria produce ATP.", Position: 0},
		{ID: "unit-2", PlanID: "plan-1", DocumentID: "doc-1", Kind: store.UnitClaim, Text: "Ribosomes build proteins.", Position: 1},
	}
	if err := s.PlanRepo().CreatePlan(ctx, plan, docs, units); err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	sess := &store.Session{ID: "sess-1", PlanID: "plan-1", MaxQuestions: 2}
	questions := []*store.Question{
		{ID: "q-1", SessionID: "sess-1", UnitID: "unit-1", Position: 0, Text: "What do mitochondria produce?", Difficulty: 1, CanonicalAnswer: "ATP"},
		{ID: "q-2", SessionID: "sess-1", UnitID: "unit-2", Position: 1, Text: "What do ribosomes build?", Difficulty: 1, CanonicalAnswer: "proteins"},
	}
	if err := s.SessionRepo().CreateSession(ctx, sess, questions); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	masterySvc := mastery.NewService(s.MasteryRepo(), mastery.DefaultDelta)
	svc := NewService(s.PlanRepo(), s.SessionRepo(), s.FeedbackRepo(), masterySvc, grader, s.EventRepo())

	return &testEnv{store: s, svc: svc, grader: grader, mastery: masterySvc}
}

func correctVerdict() *grading.Verdict {
	return &grading.Verdict{IsCorrect: true, Explanation: "Right.", CorrectAnswer: "ATP"}
}

func incorrectVerdict() *grading.Verdict {
	return &grading.Verdict{IsCorrect: false, Explanation: "Not quite.", CorrectAnswer: "ATP"}
}

func TestSubmitAndAssessCorrect(t *testing.T) {
	env := newTestEnv(t, &stubGrader{verdicts: []*grading.Verdict{correctVerdict()}})
	ctx := context.Background()

	if _, err := env.svc.SubmitAnswer(ctx, "sess-1", "q-1", "they make ATP"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	res, err := env.svc.Assess(ctx, "sess-1", "q-1")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}

	if !*res.Question.IsCorrect {
		t.Error("verdict should be correct")
	}
	if res.Question.Explanation != "Right." {
		t.Errorf("explanation = %q", res.Question.Explanation)
	}
	if res.FromLevel != 0 || res.ToLevel != 0.15 {
		t.Errorf("mastery %v -> %v, want 0 -> 0.15", res.FromLevel, res.ToLevel)
	}

	// The grader saw the unit and the learner's answer.
	if env.grader.lastIn.Unit.ID != "unit-1" || env.grader.lastIn.UserAnswer != "they make ATP" {
		t.Errorf("grader input = %+v", env.grader.lastIn)
	}

	// Plan average moves by delta/units.
	avg, err := env.mastery.Average(ctx, "plan-1", []string{"unit-1", "unit-2"})
	if err != nil {
		t.Fatalf("average: %v", err)
	}
	if diff := avg - 0.075; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("average = %v, want 0.075", avg)
	}
}

func TestAssessIncorrectStepsDownHalf(t *testing.T) {
	env := newTestEnv(t, &stubGrader{verdicts: []*grading.Verdict{incorrectVerdict()}})
	ctx := context.Background()

	if err := env.mastery.SetLevel(ctx, "plan-1", "unit-1", 0.5); err != nil {
		t.Fatalf("seed level: %v", err)
	}
	if _, err := env.svc.SubmitAnswer(ctx, "sess-1", "q-1", "proteins"); err != nil {
		t.Fatalf("submit: %v", err)
	}

	res, err := env.svc.Assess(ctx, "sess-1", "q-1")
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if diff := res.ToLevel - 0.425; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("level = %v, want 0.425 (0.5 - delta/2)", res.ToLevel)
	}
}

func TestAssessWithoutAnswer(t *testing.T) {
	env := newTestEnv(t, &stubGrader{})

	_, err := env.svc.Assess(context.Background(), "sess-1", "q-1")
	var noAnswer *store.NoAnswerSubmittedError
	if !errors.As(err, &noAnswer) {
		t.Fatalf("err = %v, want NoAnswerSubmittedError", err)
	}
}

func TestAssessTwice(t *testing.T) {
	env := newTestEnv(t, &stubGrader{verdicts: []*grading.Verdict{correctVerdict(), incorrectVerdict()}})
	ctx := context.Background()

	if _, err := env.svc.SubmitAnswer(ctx, "sess-1", "q-1", "ATP"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := env.svc.Assess(ctx, "sess-1", "q-1"); err != nil {
		t.Fatalf("assess: %v", err)
	}

	_, err := env.svc.Assess(ctx, "sess-1", "q-1")
	var already *store.AlreadyAssessedError
	if !errors.As(err, &already) {
		t.Fatalf("err = %v, want AlreadyAssessedError", err)
	}

	// The rejected re-assessment never reached the grader or mastery.
	if env.grader.calls != 1 {
		t.Errorf("grader calls = %d, want 1", env.grader.calls)
	}
	level, _ := env.mastery.Level(ctx, "plan-1", "unit-1")
	if level != 0.15 {
		t.Errorf("level = %v, want 0.15", level)
	}
}

func TestAssessGraderFailureLeavesStateClean(t *testing.T) {
	env := newTestEnv(t, &stubGrader{err: errors.New("provider down")})
	ctx := context.Background()

	if _, err := env.svc.SubmitAnswer(ctx, "sess-1", "q-1", "ATP"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := env.svc.Assess(ctx, "sess-1", "q-1"); err == nil {
		t.Fatal("expected grading error")
	}

	// No verdict, no mastery movement; the answer survives for a retry.
	q, _ := env.store.SessionRepo().GetQuestion(ctx, "sess-1", "q-1")
	if q.Assessed() {
		t.Error("failed grading must not record a verdict")
	}
	if !q.Answered() {
		t.Error("submitted answer should survive a failed grading")
	}
	level, _ := env.mastery.Level(ctx, "plan-1", "unit-1")
	if level != 0 {
		t.Errorf("level = %v, want 0", level)
	}
}

func TestSessionCompletionEvent(t *testing.T) {
	env := newTestEnv(t, &stubGrader{verdicts: []*grading.Verdict{correctVerdict(), incorrectVerdict()}})
	ctx := context.Background()

	for _, qid := range []string{"q-1", "q-2"} {
		if _, err := env.svc.SubmitAnswer(ctx, "sess-1", qid, "answer"); err != nil {
			t.Fatalf("submit %s: %v", qid, err)
		}
		if _, err := env.svc.Assess(ctx, "sess-1", qid); err != nil {
			t.Fatalf("assess %s: %v", qid, err)
		}
	}

	events, err := env.store.Client().SessionEvent.Query().All(ctx)
	if err != nil {
		t.Fatalf("query events: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("session events = %d, want 1 completed event", len(events))
	}
	e := events[0]
	if e.Action != "completed" || e.QuestionCount != 2 || e.CorrectCount != 1 {
		t.Errorf("event = %+v, want completed 2/1", e)
	}
}

func TestQuestionFeedback(t *testing.T) {
	env := newTestEnv(t, &stubGrader{})
	ctx := context.Background()

	if err := env.svc.QuestionFeedback(ctx, "sess-1", "q-1", true, "good question"); err != nil {
		t.Fatalf("feedback: %v", err)
	}

	err := env.svc.QuestionFeedback(ctx, "sess-1", "q-1", false, "changed my mind")
	var dup *store.DuplicateFeedbackError
	if !errors.As(err, &dup) {
		t.Fatalf("err = %v, want DuplicateFeedbackError", err)
	}
}

func TestAssessmentFeedbackRequiresVerdict(t *testing.T) {
	env := newTestEnv(t, &stubGrader{verdicts: []*grading.Verdict{correctVerdict()}})
	ctx := context.Background()

	if err := env.svc.AssessmentFeedback(ctx, "sess-1", "q-1", false, ""); err == nil {
		t.Fatal("expected error before a verdict exists")
	}

	if _, err := env.svc.SubmitAnswer(ctx, "sess-1", "q-1", "ATP"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := env.svc.Assess(ctx, "sess-1", "q-1"); err != nil {
		t.Fatalf("assess: %v", err)
	}
	if err := env.svc.AssessmentFeedback(ctx, "sess-1", "q-1", false, "too strict"); err != nil {
		t.Fatalf("feedback after verdict: %v", err)
	}
}
