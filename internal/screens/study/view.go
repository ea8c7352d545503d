package study

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/recall/internal/ui/theme"
)

// renderQuestion renders the active question display.
func (s *StudyScreen) renderQuestion(width int) string {
	q := s.currentQuestion()
	if q == nil {
		return renderLoading(width)
	}

	var b strings.Builder

	// Progress line: position, correct count, difficulty.
	p := s.view.Progress()
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", s.idx+1, p.Total))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d correct   difficulty %d/5",
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			p.Correct,
			q.Difficulty,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", width-4)))
	b.WriteString("\n\n")

	// Question text, wrapped and centered.
	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, questionStyle.Render(q.Text)))
	b.WriteString("\n\n")

	// Hint, when requested.
	if s.hintLoading {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Thinking of a hint..."))
		b.WriteString("\n\n")
	} else if s.hint != "" {
		hintStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Accent).
			Italic(true)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hintStyle.Render("Hint: "+s.hint)))
		b.WriteString("\n\n")
	}

	// Input area.
	if s.grading {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Grading your answer..."))
	} else {
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	}

	if s.flash != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.flash))
	}

	return b.String()
}

// renderVerdict renders the graded answer.
func (s *StudyScreen) renderVerdict(width int) string {
	q := s.verdict.Question

	var b strings.Builder
	b.WriteString("\n\n")

	if q.IsCorrect != nil && *q.IsCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if q.CorrectAnswer != "" {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("Correct answer: %s", q.CorrectAnswer)))
		}
	}

	b.WriteString("\n\n")

	if q.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, expStyle.Render(q.Explanation)))
		b.WriteString("\n\n")
	}

	// Mastery movement for the unit.
	dir := "up"
	if s.verdict.ToLevel < s.verdict.FromLevel {
		dir = "down"
	}
	if s.verdict.ToLevel != s.verdict.FromLevel {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("Mastery %s: %.0f%% → %.0f%%", dir, s.verdict.FromLevel*100, s.verdict.ToLevel*100)))
		b.WriteString("\n\n")
	}

	if s.flash != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.flash))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("[G] helpful question  [B] unhelpful  [A] fair verdict  [X] unfair  [Enter] next"))

	return b.String()
}

// renderSummary renders the end-of-session summary.
func (s *StudyScreen) renderSummary(width int) string {
	p := s.view.Progress()

	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete!"))
	b.WriteString("\n\n")

	var accuracy float64
	if p.Assessed > 0 {
		accuracy = float64(p.Correct) / float64(p.Assessed) * 100
	}
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %.0f%%",
		p.Total, p.Correct, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to go back."))

	return b.String()
}

// renderQuitConfirm renders the leave confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is saved. You can pick up where you left off."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the loading state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Preparing your session...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
