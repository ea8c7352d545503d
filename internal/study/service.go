package study

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/abhisek/recall/internal/knowledge"
	"github.com/abhisek/recall/internal/mastery"
	"github.com/abhisek/recall/internal/questiongen"
	"github.com/abhisek/recall/internal/store"
)

// NoQuestionsGeneratedError indicates generation failed for every
// selected unit, so no session was created.
type NoQuestionsGeneratedError struct {
	PlanID string
}

func (e *NoQuestionsGeneratedError) Error() string {
	return fmt.Sprintf("no questions could be generated for plan %q", e.PlanID)
}

// SessionView is a session together with its frozen question list.
type SessionView struct {
	Session   *store.Session
	Questions []*store.Question
}

// ResumeIndex returns the position the learner should land on when
// reopening the session: the first unanswered question, or the first
// question when everything is already answered.
func (v *SessionView) ResumeIndex() int {
	for i, q := range v.Questions {
		if !q.Answered() {
			return i
		}
	}
	return 0
}

// Progress reports how far the session has come.
type Progress struct {
	Total    int
	Answered int
	Assessed int
	Correct  int
}

// Progress computes the session's counters.
func (v *SessionView) Progress() Progress {
	p := Progress{Total: len(v.Questions)}
	for _, q := range v.Questions {
		if q.Answered() {
			p.Answered++
		}
		if q.Assessed() {
			p.Assessed++
			if *q.IsCorrect {
				p.Correct++
			}
		}
	}
	return p
}

// Config holds the study service knobs.
type Config struct {
	// MasteredThreshold excludes units at or above it from primary
	// selection.
	MasteredThreshold float64

	// DefaultMaxQuestions is the session size when the caller gives none.
	DefaultMaxQuestions int
}

// DefaultConfig returns the standard study knobs.
func DefaultConfig() Config {
	return Config{
		MasteredThreshold:   mastery.DefaultMasteredThreshold,
		DefaultMaxQuestions: 6,
	}
}

// Service starts and reopens study sessions.
type Service struct {
	plans     store.PlanRepo
	sessions  store.SessionRepo
	mastery   *mastery.Service
	generator questiongen.Generator
	events    store.EventRepo
	config    Config
}

// NewService creates a study service.
func NewService(
	plans store.PlanRepo,
	sessions store.SessionRepo,
	masterySvc *mastery.Service,
	generator questiongen.Generator,
	events store.EventRepo,
	cfg Config,
) *Service {
	if cfg.MasteredThreshold <= 0 {
		cfg.MasteredThreshold = mastery.DefaultMasteredThreshold
	}
	if cfg.DefaultMaxQuestions <= 0 {
		cfg.DefaultMaxQuestions = 6
	}
	return &Service{
		plans:     plans,
		sessions:  sessions,
		mastery:   masterySvc,
		generator: generator,
		events:    events,
		config:    cfg,
	}
}

// Start creates a new session for the plan: selects the weakest units,
// generates one question per unit at a difficulty matching its mastery,
// and freezes the list. maxQuestions <= 0 uses the configured default.
//
// A unit whose generation fails, returns empty text, or duplicates an
// earlier question gets one retry, then is skipped. At least one
// question must survive or the session is not created.
func (s *Service) Start(ctx context.Context, planID string, maxQuestions int) (*SessionView, error) {
	if _, err := s.plans.GetPlan(ctx, planID); err != nil {
		return nil, err
	}
	if maxQuestions <= 0 {
		maxQuestions = s.config.DefaultMaxQuestions
	}

	units, err := s.plans.Units(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load units: %w", err)
	}
	levels, err := s.mastery.Levels(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load mastery: %w", err)
	}

	selected := SelectUnits(units, levels, s.config.MasteredThreshold, maxQuestions)

	sessionID := uuid.NewString()
	var questions []*store.Question
	generated := make(map[string]bool)

	for _, unit := range selected {
		gen, err := s.generateForUnit(ctx, unit, levels[unit.ID], generated)
		if err != nil {
			// The unit is skipped for this session, not retired.
			fmt.Fprintf(os.Stderr, "warning: skipping unit %s: %v\n", unit.ID, err)
			continue
		}
		generated[knowledge.Normalize(gen.Text)] = true
		questions = append(questions, &store.Question{
			ID:              uuid.NewString(),
			SessionID:       sessionID,
			UnitID:          unit.ID,
			Position:        len(questions),
			Text:            gen.Text,
			Difficulty:      mastery.DifficultyFor(levels[unit.ID]),
			CanonicalAnswer: gen.CanonicalAnswer,
		})
	}

	if len(questions) == 0 {
		return nil, &NoQuestionsGeneratedError{PlanID: planID}
	}

	sess := &store.Session{
		ID:           sessionID,
		PlanID:       planID,
		MaxQuestions: maxQuestions,
	}
	if err := s.sessions.CreateSession(ctx, sess, questions); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	if err := s.events.AppendSession(ctx, store.SessionEventData{
		PlanID:        planID,
		SessionID:     sessionID,
		Action:        "created",
		QuestionCount: len(questions),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log session event: %v\n", err)
	}

	return s.Get(ctx, sessionID)
}

// generateForUnit produces one usable question for a unit, retrying
// once. A result is unusable when the text is empty, duplicates a
// question previously asked about the unit, or repeats a question
// already generated for another unit of the session being built.
func (s *Service) generateForUnit(ctx context.Context, unit *store.Unit, level float64, generated map[string]bool) (*questiongen.GeneratedQuestion, error) {
	history, err := s.sessions.QuestionsForUnit(ctx, unit.ID)
	if err != nil {
		return nil, fmt.Errorf("load question history: %w", err)
	}

	prior := make([]string, len(history))
	asked := make(map[string]bool, len(history))
	for i, q := range history {
		prior[i] = q.Text
		asked[knowledge.Normalize(q.Text)] = true
	}

	input := questiongen.GenerateInput{
		Unit:           unit,
		Difficulty:     mastery.DifficultyFor(level),
		PriorQuestions: prior,
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		gen, err := s.generator.Generate(ctx, input)
		if err != nil {
			lastErr = err
			continue
		}
		if gen.Text == "" {
			lastErr = fmt.Errorf("generator returned empty question")
			continue
		}
		if norm := knowledge.Normalize(gen.Text); asked[norm] || generated[norm] {
			lastErr = fmt.Errorf("generator repeated an earlier question")
			continue
		}
		return gen, nil
	}
	return nil, lastErr
}

// Get returns the session with its questions in position order.
func (s *Service) Get(ctx context.Context, sessionID string) (*SessionView, error) {
	sess, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	questions, err := s.sessions.Questions(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	return &SessionView{Session: sess, Questions: questions}, nil
}

// Latest returns the most recent session of a plan, or nil when the
// plan has none.
func (s *Service) Latest(ctx context.Context, planID string) (*SessionView, error) {
	if _, err := s.plans.GetPlan(ctx, planID); err != nil {
		return nil, err
	}
	sessions, err := s.sessions.SessionsForPlan(ctx, planID)
	if err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, nil
	}
	return s.Get(ctx, sessions[0].ID)
}
