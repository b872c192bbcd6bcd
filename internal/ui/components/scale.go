package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/theme"
)

// Scale renders a 1-5 rating with captions at both ends.
type Scale struct {
	Labels   catalog.ScaleLabels
	Selected int
	// Answered is the recorded value, or 0.
	Answered int
}

// NewScale creates a scale with the cursor on the recorded answer, or on
// the middle value when there is none.
func NewScale(labels catalog.ScaleLabels, answered int) Scale {
	s := Scale{Labels: labels, Selected: (catalog.ScaleMin + catalog.ScaleMax) / 2}
	if answered >= catalog.ScaleMin && answered <= catalog.ScaleMax {
		s.Selected = answered
		s.Answered = answered
	}
	return s
}

// Move shifts the cursor by delta, clamped to the scale.
func (s Scale) Move(delta int) Scale {
	s.Selected = min(max(s.Selected+delta, catalog.ScaleMin), catalog.ScaleMax)
	return s
}

// View renders the values on one line with the captions beneath.
func (s Scale) View() string {
	cells := make([]string, 0, catalog.ScaleMax)
	for v := catalog.ScaleMin; v <= catalog.ScaleMax; v++ {
		cell := fmt.Sprintf(" %d ", v)
		switch {
		case v == s.Selected:
			cells = append(cells, theme.Selected.Render("["+strings.TrimSpace(cell)+"]"))
		case v == s.Answered:
			cells = append(cells, theme.Answered.Render(cell))
		default:
			cells = append(cells, theme.Unselected.Render(cell))
		}
	}
	row := strings.Join(cells, "  ")

	width := lipgloss.Width(row)
	gap := max(width-lipgloss.Width(s.Labels.Min)-lipgloss.Width(s.Labels.Max), 1)
	captions := theme.Dim.Render(s.Labels.Min + strings.Repeat(" ", gap) + s.Labels.Max)

	current := theme.Hint.Render(catalog.ScaleLabel(s.Selected))
	if s.Answered > 0 {
		current += theme.Answered.Render(fmt.Sprintf("   answered: %d", s.Answered))
	}
	return row + "\n" + captions + "\n\n" + current
}
