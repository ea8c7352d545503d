package study

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/recall/internal/assess"
	"github.com/abhisek/recall/internal/grading"
	"github.com/abhisek/recall/internal/mastery"
	"github.com/abhisek/recall/internal/plan"
	"github.com/abhisek/recall/internal/questiongen"
	"github.com/abhisek/recall/internal/screen"
	"github.com/abhisek/recall/internal/store"
	studysvc "github.com/abhisek/recall/internal/study"
)

// mockGenerator produces one distinct question per call plus canned hints.
type mockGenerator struct {
	calls int
	hint  string
}

func (m *mockGenerator) Generate(_ context.Context, input questiongen.GenerateInput) (*questiongen.GeneratedQuestion, error) {
	m.calls++
	return &questiongen.GeneratedQuestion{
		Text:            fmt.Sprintf("Question %d about %s?", m.calls, input.Unit.ID),
		CanonicalAnswer: "answer",
	}, nil
}

func (m *mockGenerator) GenerateHint(_ context.Context, _ string, _ *store.Unit) (string, error) {
	return m.hint, nil
}

// stubGrader marks every answer correct.
type stubGrader struct{}

func (stubGrader) Grade(_ context.Context, _ grading.Input) (*grading.Verdict, error) {
	return &grading.Verdict{IsCorrect: true, Explanation: "Right."}, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testStudyScreen(t *testing.T) *StudyScreen {
	t.Helper()

	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	ctx := context.Background()
	p := &store.Plan{ID: "plan-1", DocumentIDs: []string{"doc-1"}}
	docs := []*store.Document{{ID: "doc-1", Title: "Doc", Content: "text"}}
	units := []*store.Unit{
		{ID: "unit-1", PlanID: "plan-1", DocumentID: "doc-1", Kind: store.UnitClaim, Text: "Mitochondria produce ATP.", Position: 0},
		{ID: "unit-2", PlanID: "plan-1", DocumentID: "doc-1", Kind: store.UnitClaim, Text: "Ribosomes build proteins.", Position: 1},
	}
	if err := s.PlanRepo().CreatePlan(ctx, p, docs, units); err != nil {
		t.Fatalf("seed plan: %v", err)
	}

	gen := &mockGenerator{hint: "Think about energy."}
	masterySvc := mastery.NewService(s.MasteryRepo(), mastery.DefaultDelta)
	planSvc := plan.NewService(s.PlanRepo(), s.SessionRepo(), nil, masterySvc)
	studySvc := studysvc.NewService(s.PlanRepo(), s.SessionRepo(), masterySvc, gen, s.EventRepo(), studysvc.DefaultConfig())
	assessSvc := assess.NewService(s.PlanRepo(), s.SessionRepo(), s.FeedbackRepo(), masterySvc, stubGrader{}, s.EventRepo())

	return New(planSvc, studySvc, assessSvc, gen, "plan-1")
}

// loadReady runs the synchronous load command and applies its message.
func loadReady(t *testing.T, s *StudyScreen) *StudyScreen {
	t.Helper()
	msg := s.loadSession()()
	ready, ok := msg.(sessionReadyMsg)
	if !ok {
		t.Fatalf("load returned %T", msg)
	}
	if ready.Err != nil {
		t.Fatalf("load session: %v", ready.Err)
	}
	scr, _ := s.Update(ready)
	return scr.(*StudyScreen)
}

func TestStudyScreen_Title(t *testing.T) {
	s := testStudyScreen(t)
	if s.Title() != "Study" {
		t.Errorf("Title = %q, want %q", s.Title(), "Study")
	}
}

func TestStudyScreen_View_Loading(t *testing.T) {
	s := testStudyScreen(t)
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty view for loading state")
	}
}

func TestStudyScreen_SessionReady(t *testing.T) {
	s := loadReady(t, testStudyScreen(t))

	if s.view == nil {
		t.Fatal("expected session view after load")
	}
	if len(s.view.Questions) != 2 {
		t.Errorf("questions = %d, want 2", len(s.view.Questions))
	}
	if s.idx != 0 {
		t.Errorf("idx = %d, want 0", s.idx)
	}
}

func TestStudyScreen_SubmitAndVerdict(t *testing.T) {
	s := loadReady(t, testStudyScreen(t))

	s.input.Model.SetValue("ATP")
	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*StudyScreen)
	if !s.grading {
		t.Error("expected grading state after submit")
	}
	if cmd == nil {
		t.Fatal("expected a grading command")
	}

	msg := cmd()
	v, ok := msg.(verdictMsg)
	if !ok {
		t.Fatalf("command returned %T", msg)
	}
	if v.Err != nil {
		t.Fatalf("verdict: %v", v.Err)
	}

	scr, _ = s.Update(v)
	s = scr.(*StudyScreen)
	if s.verdict == nil {
		t.Fatal("expected verdict to be shown")
	}
	if s.verdict.Question.IsCorrect == nil || !*s.verdict.Question.IsCorrect {
		t.Error("expected correct verdict")
	}
}

func TestStudyScreen_EmptyAnswerIgnored(t *testing.T) {
	s := loadReady(t, testStudyScreen(t))

	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*StudyScreen)
	if s.grading || cmd != nil {
		t.Error("empty answer must not be submitted")
	}
}

func TestStudyScreen_AdvanceToSummary(t *testing.T) {
	s := loadReady(t, testStudyScreen(t))

	for i := 0; i < 2; i++ {
		s.input.Model.SetValue("answer")
		scr, cmd := s.Update(specialKey(tea.KeyEnter))
		s = scr.(*StudyScreen)
		scr, _ = s.Update(cmd())
		s = scr.(*StudyScreen)

		scr, _ = s.Update(specialKey(tea.KeyEnter))
		s = scr.(*StudyScreen)
	}

	if !s.done {
		t.Fatal("expected summary after last question")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Session complete") {
		t.Error("summary view missing completion banner")
	}
}

func TestStudyScreen_QuitConfirm(t *testing.T) {
	s := loadReady(t, testStudyScreen(t))

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*StudyScreen)
	if !ss.showingQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*StudyScreen)
	if ss.showingQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}

	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*StudyScreen)
	_, cmd := ss.Update(keyPress('y'))
	if cmd == nil {
		t.Error("expected a command after quit confirmation")
	}
}

func TestStudyScreen_QuestionFeedback(t *testing.T) {
	s := loadReady(t, testStudyScreen(t))

	s.input.Model.SetValue("answer")
	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	s = scr.(*StudyScreen)
	scr, _ = s.Update(cmd())
	s = scr.(*StudyScreen)

	scr, cmd = s.Update(keyPress('g'))
	s = scr.(*StudyScreen)
	if cmd == nil {
		t.Fatal("expected a feedback command")
	}
	scr, _ = s.Update(cmd())
	s = scr.(*StudyScreen)
	if s.flash != "feedback recorded" {
		t.Errorf("flash = %q, want feedback recorded", s.flash)
	}

	// Second rating of the same question is rejected.
	scr, cmd = s.Update(keyPress('b'))
	s = scr.(*StudyScreen)
	scr, _ = s.Update(cmd())
	s = scr.(*StudyScreen)
	if s.flash != "already rated" {
		t.Errorf("flash = %q, want already rated", s.flash)
	}
}

func TestStudyScreen_Hint(t *testing.T) {
	s := loadReady(t, testStudyScreen(t))

	scr, cmd := s.Update(tea.KeyPressMsg{Code: 'h', Mod: tea.ModCtrl})
	s = scr.(*StudyScreen)
	if !s.hintLoading {
		t.Fatal("expected hint loading state")
	}
	if cmd == nil {
		t.Fatal("expected a hint command")
	}

	scr, _ = s.Update(cmd())
	s = scr.(*StudyScreen)
	if s.hint != "Think about energy." {
		t.Errorf("hint = %q", s.hint)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "Think about energy.") {
		t.Error("hint missing from view")
	}
}

func TestStudyScreen_KeyHints(t *testing.T) {
	s := loadReady(t, testStudyScreen(t))
	hints := s.KeyHints()
	if len(hints) == 0 {
		t.Error("expected non-empty key hints")
	}
}
