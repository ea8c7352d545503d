package study

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/recall/internal/assess"
	"github.com/abhisek/recall/internal/plan"
	"github.com/abhisek/recall/internal/questiongen"
	"github.com/abhisek/recall/internal/router"
	"github.com/abhisek/recall/internal/screen"
	"github.com/abhisek/recall/internal/store"
	studysvc "github.com/abhisek/recall/internal/study"
	"github.com/abhisek/recall/internal/ui/components"
	"github.com/abhisek/recall/internal/ui/layout"
)

// StudyScreen drives one study session: present each question, collect
// the answer, grade it, show the verdict, and move on. A plan's latest
// session is resumed when it still has unassessed questions; otherwise
// a fresh session is started.
type StudyScreen struct {
	plans     *plan.Service
	study     *studysvc.Service
	assess    *assess.Service
	generator questiongen.Generator
	planID    string

	view  *studysvc.SessionView
	units map[string]*store.Unit
	idx   int

	input       components.TextInput
	grading     bool
	verdict     *assess.Result
	hint        string
	hintLoading bool
	flash       string
	done        bool

	showingQuitConfirm bool
	errMsg             string
}

var _ screen.Screen = (*StudyScreen)(nil)
var _ screen.KeyHintProvider = (*StudyScreen)(nil)

// New creates a StudyScreen for the given plan.
func New(plans *plan.Service, study *studysvc.Service, assessSvc *assess.Service, generator questiongen.Generator, planID string) *StudyScreen {
	return &StudyScreen{
		plans:     plans,
		study:     study,
		assess:    assessSvc,
		generator: generator,
		planID:    planID,
		input:     components.NewTextInput("Type your answer...", 500),
	}
}

func (s *StudyScreen) Init() tea.Cmd {
	return tea.Batch(
		s.loadSession(),
		s.input.Init(),
	)
}

func (s *StudyScreen) Title() string {
	return "Study"
}

func (s *StudyScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave session"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.done {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back"},
		}
	}
	if s.verdict != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "G/B", Description: "Rate question"},
			{Key: "A/X", Description: "Rate verdict"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+H", Description: "Hint"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *StudyScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.view == nil {
		return renderLoading(width)
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.done {
		return s.renderSummary(width)
	}
	if s.verdict != nil {
		return s.renderVerdict(width)
	}
	return s.renderQuestion(width)
}

func (s *StudyScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleSessionReady(msg)

	case verdictMsg:
		return s.handleVerdict(msg)

	case hintMsg:
		s.hintLoading = false
		if msg.Err != nil {
			s.flash = "hint unavailable: " + msg.Err.Error()
		} else {
			s.hint = msg.Hint
		}
		return s, nil

	case feedbackSavedMsg:
		if msg.Err != nil {
			var dup *store.DuplicateFeedbackError
			if errors.As(msg.Err, &dup) {
				s.flash = "already rated"
			} else {
				s.flash = "feedback failed: " + msg.Err.Error()
			}
		} else {
			s.flash = "feedback recorded"
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Forward everything else to the input while a question is active.
	if s.view != nil && !s.done && s.verdict == nil && !s.showingQuitConfirm && !s.grading {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// loadSession resumes the latest unfinished session or starts a new one.
func (s *StudyScreen) loadSession() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		view, err := s.study.Latest(ctx, s.planID)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		if view == nil || view.Progress().Assessed == view.Progress().Total {
			view, err = s.study.Start(ctx, s.planID, 0)
			if err != nil {
				return sessionReadyMsg{Err: err}
			}
		}

		units, err := s.plans.Units(ctx, s.planID)
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		byID := make(map[string]*store.Unit, len(units))
		for _, u := range units {
			byID[u.ID] = u
		}

		return sessionReadyMsg{View: view, Units: byID}
	}
}

func (s *StudyScreen) handleSessionReady(msg sessionReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.view = msg.View
	s.units = msg.Units
	s.idx = msg.View.ResumeIndex()
	s.resetForQuestion()
	return s, s.input.Init()
}

func (s *StudyScreen) handleVerdict(msg verdictMsg) (screen.Screen, tea.Cmd) {
	s.grading = false
	if msg.Err != nil {
		// The answer survived; the learner can submit again.
		s.flash = "grading failed: " + msg.Err.Error()
		return s, nil
	}
	s.verdict = msg.Result
	s.input.Submit(msg.Result.Question.IsCorrect != nil && *msg.Result.Question.IsCorrect)
	s.view.Questions[s.idx] = msg.Result.Question
	return s, nil
}

func (s *StudyScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.view == nil {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.done {
		switch key {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Verdict shown: feedback keys or advance.
	if s.verdict != nil {
		switch key {
		case "enter", " ":
			return s.advance()
		case "g", "G":
			return s, s.rateQuestion(true)
		case "b", "B":
			return s, s.rateQuestion(false)
		case "a", "A":
			return s, s.rateVerdict(true)
		case "x", "X":
			return s, s.rateVerdict(false)
		}
		return s, nil
	}

	// Active question.
	if s.grading {
		return s, nil
	}
	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submitAnswer()
	case "ctrl+h":
		return s.requestHint()
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submitAnswer runs the two-phase flow in one command: record the
// answer, then grade it.
func (s *StudyScreen) submitAnswer() (screen.Screen, tea.Cmd) {
	answer := strings.TrimSpace(s.input.Value())
	if answer == "" {
		return s, nil
	}

	q := s.currentQuestion()
	if q == nil {
		return s, nil
	}

	s.grading = true
	s.flash = ""
	sessionID := s.view.Session.ID
	questionID := q.ID

	return s, func() tea.Msg {
		ctx := context.Background()
		if _, err := s.assess.SubmitAnswer(ctx, sessionID, questionID, answer); err != nil {
			return verdictMsg{Err: err}
		}
		res, err := s.assess.Assess(ctx, sessionID, questionID)
		if err != nil {
			return verdictMsg{Err: err}
		}
		return verdictMsg{Result: res}
	}
}

func (s *StudyScreen) requestHint() (screen.Screen, tea.Cmd) {
	q := s.currentQuestion()
	if q == nil || s.hintLoading || s.hint != "" {
		return s, nil
	}
	unit := s.units[q.UnitID]
	if unit == nil {
		return s, nil
	}

	s.hintLoading = true
	questionText := q.Text
	return s, func() tea.Msg {
		hint, err := s.generator.GenerateHint(context.Background(), questionText, unit)
		return hintMsg{Hint: hint, Err: err}
	}
}

func (s *StudyScreen) rateQuestion(helpful bool) tea.Cmd {
	sessionID := s.view.Session.ID
	questionID := s.verdict.Question.ID
	return func() tea.Msg {
		err := s.assess.QuestionFeedback(context.Background(), sessionID, questionID, helpful, "")
		return feedbackSavedMsg{Err: err}
	}
}

func (s *StudyScreen) rateVerdict(agree bool) tea.Cmd {
	sessionID := s.view.Session.ID
	questionID := s.verdict.Question.ID
	return func() tea.Msg {
		err := s.assess.AssessmentFeedback(context.Background(), sessionID, questionID, agree, "")
		return feedbackSavedMsg{Err: err}
	}
}

func (s *StudyScreen) advance() (screen.Screen, tea.Cmd) {
	if s.idx+1 >= len(s.view.Questions) {
		s.done = true
		return s, nil
	}
	s.idx++
	s.resetForQuestion()
	return s, s.input.Init()
}

func (s *StudyScreen) resetForQuestion() {
	s.input = components.NewTextInput("Type your answer...", 500)
	s.verdict = nil
	s.hint = ""
	s.hintLoading = false
	s.flash = ""
}

func (s *StudyScreen) currentQuestion() *store.Question {
	if s.view == nil || s.idx < 0 || s.idx >= len(s.view.Questions) {
		return nil
	}
	return s.view.Questions[s.idx]
}
