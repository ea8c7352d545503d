package study

import (
	"github.com/abhisek/recall/internal/assess"
	"github.com/abhisek/recall/internal/store"
	studysvc "github.com/abhisek/recall/internal/study"
)

// sessionReadyMsg is sent when the session (new or resumed) is loaded.
type sessionReadyMsg struct {
	View  *studysvc.SessionView
	Units map[string]*store.Unit
	Err   error
}

// verdictMsg is sent when submit + assess has completed.
type verdictMsg struct {
	Result *assess.Result
	Err    error
}

// hintMsg is sent when a hint has been generated.
type hintMsg struct {
	Hint string
	Err  error
}

// feedbackSavedMsg is sent after a feedback write completes.
type feedbackSavedMsg struct {
	Err error
}
