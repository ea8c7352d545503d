package plans

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/recall/internal/assess"
	"github.com/abhisek/recall/internal/plan"
	"github.com/abhisek/recall/internal/questiongen"
	"github.com/abhisek/recall/internal/router"
	"github.com/abhisek/recall/internal/screen"
	studyscreen "github.com/abhisek/recall/internal/screens/study"
	studysvc "github.com/abhisek/recall/internal/study"
	"github.com/abhisek/recall/internal/ui/layout"
	"github.com/abhisek/recall/internal/ui/theme"
)

type plansLoadedMsg struct {
	Summaries []*plan.Summary
	Err       error
}

// PlansScreen lists learning plans and launches study sessions.
type PlansScreen struct {
	plans     *plan.Service
	study     *studysvc.Service
	assess    *assess.Service
	generator questiongen.Generator
	threshold float64

	summaries []*plan.Summary
	selected  int
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*PlansScreen)(nil)
var _ screen.KeyHintProvider = (*PlansScreen)(nil)

// New creates a new PlansScreen.
func New(plans *plan.Service, study *studysvc.Service, assessSvc *assess.Service, generator questiongen.Generator, masteredThreshold float64) *PlansScreen {
	return &PlansScreen{
		plans:     plans,
		study:     study,
		assess:    assessSvc,
		generator: generator,
		threshold: masteredThreshold,
	}
}

func (s *PlansScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		list, err := s.plans.List(ctx)
		if err != nil {
			return plansLoadedMsg{Err: err}
		}

		summaries := make([]*plan.Summary, 0, len(list))
		for _, p := range list {
			sum, err := s.plans.Summarize(ctx, p.ID, s.threshold)
			if err != nil {
				return plansLoadedMsg{Err: err}
			}
			summaries = append(summaries, sum)
		}
		return plansLoadedMsg{Summaries: summaries}
	}
}

func (s *PlansScreen) Title() string {
	return "Plans"
}

func (s *PlansScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Study"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PlansScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case plansLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.summaries = msg.Summaries
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.summaries)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			if s.selected >= 0 && s.selected < len(s.summaries) {
				planID := s.summaries[s.selected].Plan.ID
				return s, func() tea.Msg {
					return router.PushScreenMsg{
						Screen: studyscreen.New(s.plans, s.study, s.assess, s.generator, planID),
					}
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *PlansScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading plans...")
	}
	if len(s.summaries) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No plans yet. Create one with: recall plan create <files>")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sum := range s.summaries {
		dateStr := sum.Plan.CreatedAt.Format("Jan 02, 2006")
		active := sum.UnitCount - sum.RetiredCount

		status := ""
		if sum.Plan.CompletedAt != nil {
			status = "  [completed]"
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		sessInfo := fmt.Sprintf("%d sessions", sum.SessionCount)
		if n := len(sum.Incomplete); n > 0 {
			sessInfo = fmt.Sprintf("%d sessions (%d open)", sum.SessionCount, n)
		}

		line := fmt.Sprintf("%s%s  %d units  %d mastered  avg %.0f%%  %s%s",
			prefix, dateStr, active, sum.MasteredCount, sum.AverageMastery*100, sessInfo, status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
