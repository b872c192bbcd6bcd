package components

import (
	"fmt"
	"strings"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/theme"
)

// ChoiceList renders numbered options for a choice question.
type ChoiceList struct {
	Options  []string
	Selected int
	// Answered is the recorded option index, or -1.
	Answered int
}

// NewChoiceList creates a list with the cursor on the recorded answer,
// or on the first option when there is none.
func NewChoiceList(options []string, answered int) ChoiceList {
	c := ChoiceList{Options: options, Answered: -1}
	if answered >= 0 && answered < len(options) {
		c.Selected = answered
		c.Answered = answered
	}
	return c
}

// Move shifts the cursor by delta, clamped to the options.
func (c ChoiceList) Move(delta int) ChoiceList {
	c.Selected = min(max(c.Selected+delta, 0), len(c.Options)-1)
	return c
}

// View renders one option per line.
func (c ChoiceList) View() string {
	var b strings.Builder
	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)
		if i == c.Answered {
			line += " ✓"
		}

		switch {
		case i == c.Selected:
			b.WriteString(theme.Selected.Render(line))
		case i == c.Answered:
			b.WriteString(theme.Answered.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
