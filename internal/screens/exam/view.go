package exam

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/nvasanth/candex/internal/assessment"
	"github.com/nvasanth/candex/internal/ui/theme"
)

func (e *ExamScreen) View(width, height int) string {
	if e.finishing {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Wrapping up...")
	}
	if e.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nCould not load questions:\n%s\n\nPress r to retry.", e.errMsg))
	}
	if e.loading {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading questions...")
	}

	rp := e.st.ActiveProgress()
	if rp == nil {
		return ""
	}
	q := rp.CurrentQuestion()
	if q == nil {
		return ""
	}

	var b strings.Builder

	// Info line: position, round timer.
	remaining := time.Until(e.deadline)
	if remaining < 0 {
		remaining = 0
	}
	timerStr := fmt.Sprintf("%d:%02d", int(remaining.Minutes()), int(remaining.Seconds())%60)

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d/%d", rp.CurrentQuestionIndex+1, len(rp.Questions)))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %s  ",
			lipgloss.NewStyle().Foreground(theme.Accent).Render("⏱"), timerStr))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 2
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	if q.Title != "" {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).Bold(true).
			Render("  " + q.Title))
		b.WriteString("\n\n")
	}

	switch q.Kind {
	case assessment.KindMCQ:
		b.WriteString(indent(e.mc.View()))
	case assessment.KindRating:
		b.WriteString(indent(e.rating.View()))
	case assessment.KindText:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + q.Prompt))
		b.WriteString("\n\n")
		e.area.SetSize(max(width-8, 20), max(height-lipgloss.Height(b.String())-6, 4))
		b.WriteString(indent(e.area.View()))
	case assessment.KindCoding:
		b.WriteString(e.renderCodingPrompt(q, width))
		e.area.SetSize(max(width-8, 20), max(height-lipgloss.Height(b.String())-6, 4))
		b.WriteString(indent(e.area.View()))
	}

	if e.inputErr != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Violation.Render("  " + e.inputErr))
	}

	if banner := e.renderViolations(width); banner != "" {
		b.WriteString("\n\n")
		b.WriteString(banner)
	}

	return b.String()
}

// renderCodingPrompt shows the problem statement, examples, and constraints
// above the editor.
func (e *ExamScreen) renderCodingPrompt(q *assessment.Question, width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render("  " + q.Prompt))
	b.WriteString("\n")
	if q.Language != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  Language: %s", q.Language)))
		b.WriteString("\n")
	}

	for i, ex := range q.Examples {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  Example %d: input %s → output %s", i+1, ex.Input, ex.Output)))
		b.WriteString("\n")
	}
	for _, c := range q.Constraints {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("  • " + c))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// renderViolations shows the most recent violations and the running total.
func (e *ExamScreen) renderViolations(width int) string {
	if e.vTotal == 0 && e.proctorErr == "" {
		return ""
	}

	var b strings.Builder
	if e.proctorErr != "" {
		b.WriteString(theme.Degraded.Render("  Proctoring degraded: " + firstLine(e.proctorErr)))
		b.WriteString("\n")
	}
	if e.vTotal > 0 {
		b.WriteString(theme.Violation.Render(fmt.Sprintf("  Violations: %d", e.vTotal)))
		b.WriteString("\n")
		for _, v := range e.violations {
			b.WriteString(theme.Violation.Render("  ⚠ " + v.Details))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
