package store

import (
	"context"
	"time"
)

// UnitKind classifies a knowledge unit.
type UnitKind string

const (
	// UnitClaim is a statement verifiable directly from the source text.
	UnitClaim UnitKind = "claim"
	// UnitSkill requires applying a rule or procedure beyond the text.
	UnitSkill UnitKind = "skill"
)

// Document is an ingested source text.
type Document struct {
	ID        string
	Title     string
	Content   string
	Source    string
	CreatedAt time.Time
}

// Unit is an atomic knowledge unit extracted from a document. Units are
// immutable after creation; Retired excludes a unit from future selection.
type Unit struct {
	ID          string
	PlanID      string
	DocumentID  string
	Kind        UnitKind
	Text        string
	SourceClaim string
	Position    int
	Retired     bool
	CreatedAt   time.Time
}

// Plan is a learning plan: the documents it covers plus the knowledge
// units extracted from them.
type Plan struct {
	ID          string
	DocumentIDs []string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Session is one study pass over a plan with a frozen question list.
type Session struct {
	ID           string
	PlanID       string
	MaxQuestions int
	CreatedAt    time.Time
}

// Question is a generated question bound to one session and one unit.
// UserAnswer mutates until the verdict is recorded; after that the row
// is frozen.
type Question struct {
	ID              string
	SessionID       string
	UnitID          string
	Position        int
	Text            string
	Difficulty      int
	CanonicalAnswer string
	UserAnswer      *string
	AnsweredAt      *time.Time
	IsCorrect       *bool
	Explanation     string
	CorrectAnswer   string
	AssessedAt      *time.Time
}

// Answered reports whether the learner has submitted an answer.
func (q *Question) Answered() bool { return q.UserAnswer != nil }

// Assessed reports whether a verdict has been recorded.
func (q *Question) Assessed() bool { return q.IsCorrect != nil }

// FeedbackKind identifies which quality signal a feedback record carries.
type FeedbackKind string

const (
	FeedbackQuestionHelpfulness FeedbackKind = "question_helpfulness"
	FeedbackAssessmentAgreement FeedbackKind = "assessment_agreement"
)

// Feedback is an append-only quality signal on a question or its verdict.
type Feedback struct {
	SessionID  string
	QuestionID string
	Kind       FeedbackKind
	Flag       bool
	Comment    string
	CreatedAt  time.Time
}

// PlanRepo manages learning plans, their documents, and knowledge units.
type PlanRepo interface {
	// CreatePlan stores the plan, its documents, and its units atomically.
	CreatePlan(ctx context.Context, plan *Plan, docs []*Document, units []*Unit) error

	// GetPlan returns the plan or PlanNotFoundError.
	GetPlan(ctx context.Context, id string) (*Plan, error)

	// ListPlans returns all plans, newest first.
	ListPlans(ctx context.Context) ([]*Plan, error)

	// CompletePlan sets the plan's completion marker. Idempotent.
	CompletePlan(ctx context.Context, id string) error

	// Units returns all units of a plan ordered by position, including
	// retired ones.
	Units(ctx context.Context, planID string) ([]*Unit, error)

	// RetireUnit marks a unit so it is skipped by future selection.
	RetireUnit(ctx context.Context, planID, unitID string) error

	// GetDocuments returns the documents with the given ids, in the
	// order requested.
	GetDocuments(ctx context.Context, ids []string) ([]*Document, error)
}

// MasteryRepo manages per-(plan, unit) mastery levels. An absent record
// reads as level 0.
type MasteryRepo interface {
	// Level returns the mastery level for one unit (0 when unseen).
	Level(ctx context.Context, planID, unitID string) (float64, error)

	// Levels returns all recorded levels for a plan keyed by unit id.
	// Units with no record are simply absent from the map.
	Levels(ctx context.Context, planID string) (map[string]float64, error)

	// SetLevel overwrites the level for one unit and appends a mastery
	// event with the given trigger. The level must already be clamped.
	SetLevel(ctx context.Context, planID, unitID string, level float64, trigger string) error
}

// AssessmentRecord is the atomic write that concludes one assessment:
// the verdict on the question and the mastery update it caused are
// committed together or not at all. Advance maps the unit's current
// level to its next one; the store applies it to the level read inside
// the transaction, so concurrent assessments of the same unit chain
// rather than overwrite each other's step.
type AssessmentRecord struct {
	PlanID        string
	SessionID     string
	QuestionID    string
	UnitID        string
	IsCorrect     bool
	Explanation   string
	CorrectAnswer string
	Advance       func(from float64) float64
}

// SessionRepo manages study sessions and their frozen question lists.
type SessionRepo interface {
	// CreateSession stores the session and its questions atomically.
	CreateSession(ctx context.Context, sess *Session, questions []*Question) error

	// GetSession returns the session or SessionNotFoundError.
	GetSession(ctx context.Context, id string) (*Session, error)

	// Questions returns the session's questions ordered by position.
	Questions(ctx context.Context, sessionID string) ([]*Question, error)

	// GetQuestion returns one question of a session or QuestionNotFoundError.
	GetQuestion(ctx context.Context, sessionID, questionID string) (*Question, error)

	// SessionsForPlan returns all sessions of a plan, newest first.
	SessionsForPlan(ctx context.Context, planID string) ([]*Session, error)

	// QuestionsForUnit returns every question ever generated against a
	// unit across all sessions, grouped by session.
	QuestionsForUnit(ctx context.Context, unitID string) ([]*Question, error)

	// SubmitAnswer records or overwrites the learner's answer. Returns
	// AlreadyAssessedError once a verdict exists.
	SubmitAnswer(ctx context.Context, sessionID, questionID, answer string) (*Question, error)

	// RecordAssessment commits the verdict and the mastery update in one
	// transaction and reports the level change it applied. Returns
	// AlreadyAssessedError if a verdict was recorded concurrently.
	RecordAssessment(ctx context.Context, rec AssessmentRecord) (fromLevel, toLevel float64, err error)
}

// FeedbackRepo manages append-only feedback records.
type FeedbackRepo interface {
	// Add stores a feedback record. Returns DuplicateFeedbackError when a
	// record of the same kind already exists for the (session, question).
	Add(ctx context.Context, fb *Feedback) error

	// BySession returns all feedback recorded in a session.
	BySession(ctx context.Context, sessionID string) ([]*Feedback, error)
}

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored LLM request event.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStat aggregates token usage per purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per model for cost estimation.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// SessionEventData captures a session lifecycle milestone.
type SessionEventData struct {
	PlanID        string
	SessionID     string
	Action        string // "created" or "completed"
	QuestionCount int
	CorrectCount  int
}

// MasteryEvent is a stored mastery change event.
type MasteryEvent struct {
	ID         int
	Sequence   int64
	Timestamp  time.Time
	PlanID     string
	UnitID     string
	FromLevel  float64
	ToLevel    float64
	Trigger    string
	SessionID  string
	QuestionID string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendSession records a session lifecycle event.
	AppendSession(ctx context.Context, data SessionEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMRequestEvent, error)

	// GetLLMEvent returns one LLM request event by id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// MasteryHistory returns the mastery events for one plan in sequence
	// order, optionally filtered to one unit (empty unitID = all units).
	MasteryHistory(ctx context.Context, planID, unitID string) ([]*MasteryEvent, error)
}
