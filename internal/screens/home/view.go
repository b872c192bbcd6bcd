package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screens/welcome"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/layout"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/theme"
)

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 26

func (h *HomeScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	title := h.opts.Catalog.Title()
	if title == "" {
		title = welcome.Tagline
	}

	sections := []string{
		center.Render(welcome.RenderBanner(width)),
		center.Render(theme.Heading.Render(title)),
		center.Render(h.renderOverview()),
		center.Render(h.menu.View(buttonWidth)),
		center.Render(h.renderCoachLine()),
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Padding(1, 2).
		Render(strings.Join(sections, "\n\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// renderOverview lists how many questions each section has.
func (h *HomeScreen) renderOverview() string {
	parts := make([]string, 0, len(catalog.AllSections()))
	for _, sec := range catalog.AllSections() {
		parts = append(parts, fmt.Sprintf("%s (%d)", sec.Title(), len(h.opts.Catalog.BySection(sec))))
	}
	return theme.Dim.Render(strings.Join(parts, "   "))
}

func (h *HomeScreen) renderCoachLine() string {
	if h.opts.Coach == nil {
		return theme.Hint.Render("Set an LLM API key to get a coaching note with your results")
	}
	model := h.opts.CoachModel
	if model == "" {
		model = "enabled"
	}
	return lipgloss.NewStyle().Foreground(theme.Success).Render("AI coach: " + model)
}
