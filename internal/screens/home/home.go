package home

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
	"github.com/abhisek/recall/internal/screens/placeholder"
	plansscreen "github.com/abhisek/recall/internal/screens/plans"
	"github.com/abhisek/recall/internal/screens/usage"
	"github.com/abhisek/recall/internal/store"
	studysvc "github.com/abhisek/recall/internal/study"
	"github.com/abhisek/recall/internal/ui/components"
	"github.com/abhisek/recall/internal/ui/theme"
)

type statsLoadedMsg struct {
	PlanCount     int
	UnitCount     int
	MasteredCount int
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	plans     *plan.Service
	menu      components.Menu
	planCount int
	unitCount int
	mastered  int
	threshold float64
	loaded    bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(plans *plan.Service, study *studysvc.Service, assessSvc *assess.Service, generator questiongen.Generator, events store.EventRepo, masteredThreshold float64) *HomeScreen {
	items := []components.MenuItem{
		{Label: "STUDY", Action: func() tea.Cmd {
			if plans == nil || study == nil || assessSvc == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Study")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: plansscreen.New(plans, study, assessSvc, generator, masteredThreshold),
				}
			}
		}},
		{Label: "LLM USAGE", Action: func() tea.Cmd {
			if events == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("LLM Usage")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: usage.New(events)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		plans:     plans,
		menu:      components.NewMenu(items),
		threshold: masteredThreshold,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	if h.plans == nil {
		return nil
	}
	return func() tea.Msg {
		ctx := context.Background()

		list, err := h.plans.List(ctx)
		if err != nil {
			return statsLoadedMsg{}
		}

		msg := statsLoadedMsg{PlanCount: len(list)}
		for _, p := range list {
			sum, err := h.plans.Summarize(ctx, p.ID, h.threshold)
			if err != nil {
				continue
			}
			msg.UnitCount += sum.UnitCount - sum.RetiredCount
			msg.MasteredCount += sum.MasteredCount
		}
		return msg
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if stats, ok := msg.(statsLoadedMsg); ok {
		h.planCount = stats.PlanCount
		h.unitCount = stats.UnitCount
		h.mastered = stats.MasteredCount
		h.loaded = true
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("R E C A L L")
	subtitle := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Study what you read. Keep it.")
	sections = append(sections, title+"\n"+subtitle)

	if h.loaded {
		stats := fmt.Sprintf("%d plans   %d units   %d mastered",
			h.planCount, h.unitCount, h.mastered)
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(stats))
	}

	sections = append(sections, lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
