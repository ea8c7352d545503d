package usage

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/recall/internal/llm"
	"github.com/abhisek/recall/internal/router"
	"github.com/abhisek/recall/internal/screen"
	"github.com/abhisek/recall/internal/store"
	"github.com/abhisek/recall/internal/ui/layout"
	"github.com/abhisek/recall/internal/ui/theme"
)

type usageLoadedMsg struct {
	ByPurpose []store.LLMUsageStat
	ByModel   []store.LLMModelUsage
	Err       error
}

// UsageScreen shows aggregate LLM token usage and estimated cost.
type UsageScreen struct {
	events store.EventRepo

	byPurpose []store.LLMUsageStat
	byModel   []store.LLMModelUsage
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*UsageScreen)(nil)
var _ screen.KeyHintProvider = (*UsageScreen)(nil)

// New creates a new UsageScreen.
func New(events store.EventRepo) *UsageScreen {
	return &UsageScreen{events: events}
}

func (s *UsageScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		byPurpose, err := s.events.LLMUsageByPurpose(ctx)
		if err != nil {
			return usageLoadedMsg{Err: err}
		}
		byModel, err := s.events.LLMUsageByModel(ctx)
		if err != nil {
			return usageLoadedMsg{Err: err}
		}
		return usageLoadedMsg{ByPurpose: byPurpose, ByModel: byModel}
	}
}

func (s *UsageScreen) Title() string {
	return "LLM Usage"
}

func (s *UsageScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *UsageScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case usageLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.byPurpose = msg.ByPurpose
			s.byModel = msg.ByModel
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *UsageScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading usage...")
	}
	if len(s.byPurpose) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No LLM calls recorded yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("By purpose")))
	b.WriteString("\n\n")

	for _, u := range s.byPurpose {
		line := fmt.Sprintf("  %-16s %5d calls  %8d in  %8d out  %5dms avg",
			u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.AvgLatencyMs)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("By model")))
	b.WriteString("\n\n")

	var total float64
	for _, m := range s.byModel {
		costStr := "n/a"
		if c := llm.LookupCost(m.Model); c != nil {
			cost := c.Cost(m.InputTokens, m.OutputTokens)
			total += cost
			costStr = fmt.Sprintf("$%.4f", cost)
		}
		line := fmt.Sprintf("  %-32s %5d calls  %8d in  %8d out  %s",
			m.Model, m.Calls, m.InputTokens, m.OutputTokens, costStr)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Render(
			fmt.Sprintf("Estimated total: $%.4f", total))))

	return b.String()
}
