package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/components"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/layout"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.question.ID == "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Dim.Render("No questions to show."))
	}
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}

	cw := layout.ContentWidth(width)
	sess, _ := s.engine.Session()
	total := s.engine.Catalog().Len()
	progress, _ := s.engine.Progress()

	var sections []string

	sections = append(sections,
		theme.Title.Render(s.question.Section.Title()),
		theme.Dim.Render(fmt.Sprintf("Question %d of %d", sess.CurrentIndex+1, total)),
		components.NewProgressBar("", progress, true, cw).View(),
	)

	var input string
	if s.question.Type.IsChoice() {
		input = s.choices.View()
	} else {
		input = s.scale.View()
	}
	prompt := lipgloss.NewStyle().Width(cw - 6).Bold(true).Foreground(theme.Text).Render(s.question.Prompt)
	sections = append(sections, theme.Card.Width(cw).Render(prompt+"\n\n"+input))

	if s.errMsg != "" {
		sections = append(sections, theme.ErrorText.Render(s.errMsg))
	} else if s.isLast() {
		sections = append(sections, theme.Hint.Render("Last question: press Enter to see your results"))
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func renderQuitConfirm(width, height int) string {
	box := theme.Card.
		BorderForeground(theme.Accent).
		Align(lipgloss.Center).
		Render(theme.Body.Bold(true).Render("Leave the assessment?") + "\n\n" +
			theme.Dim.Render("Your answers will be discarded.") + "\n\n" +
			theme.Hint.Render("y: leave   n: keep going"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
