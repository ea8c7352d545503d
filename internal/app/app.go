package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/recall/internal/assess"
	"github.com/abhisek/recall/internal/plan"
	"github.com/abhisek/recall/internal/questiongen"
	"github.com/abhisek/recall/internal/router"
	"github.com/abhisek/recall/internal/screen"
	"github.com/abhisek/recall/internal/screens/home"
	studyscreen "github.com/abhisek/recall/internal/screens/study"
	"github.com/abhisek/recall/internal/store"
	studysvc "github.com/abhisek/recall/internal/study"
	"github.com/abhisek/recall/internal/ui/layout"
)

// Options carries the services the TUI runs on. Nil services degrade
// the corresponding screens to placeholders.
type Options struct {
	Plans     *plan.Service
	Study     *studysvc.Service
	Assess    *assess.Service
	Generator questiongen.Generator
	Events    store.EventRepo

	// MasteredThreshold is the policy cutoff used for summaries.
	MasteredThreshold float64

	// InitialPlanID, when set, opens a study session for that plan
	// immediately instead of landing on the home screen.
	InitialPlanID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	initCmd tea.Cmd
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen, optionally
// jumping straight into a study session.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(opts.Plans, opts.Study, opts.Assess, opts.Generator, opts.Events, opts.MasteredThreshold)
	r := router.New(homeScreen)

	initCmd := homeScreen.Init()
	if opts.InitialPlanID != "" && opts.Plans != nil && opts.Study != nil && opts.Assess != nil {
		studyInit := r.Push(studyscreen.New(opts.Plans, opts.Study, opts.Assess, opts.Generator, opts.InitialPlanID))
		initCmd = tea.Batch(initCmd, studyInit)
	}

	return AppModel{
		router:  r,
		initCmd: initCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.initCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if len(footerHints) == 0 {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
