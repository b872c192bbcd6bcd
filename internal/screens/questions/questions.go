package questions

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screen"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/layout"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/theme"
)

// QuestionsScreen lists the catalog grouped by section, without answers.
type QuestionsScreen struct {
	cat     *catalog.Catalog
	section int // index into sections; -1 shows all
	vp      viewport.Model
}

var _ screen.Screen = (*QuestionsScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionsScreen)(nil)
var _ screen.StatusProvider = (*QuestionsScreen)(nil)

var sections = catalog.AllSections()

// New creates a QuestionsScreen for cat.
func New(cat *catalog.Catalog) *QuestionsScreen {
	return &QuestionsScreen{
		cat:     cat,
		section: -1,
		vp:      viewport.New(),
	}
}

func (s *QuestionsScreen) Init() tea.Cmd {
	return nil
}

func (s *QuestionsScreen) Title() string {
	return "Questions"
}

func (s *QuestionsScreen) Status() string {
	if s.section < 0 {
		return fmt.Sprintf("%d questions", s.cat.Len())
	}
	return fmt.Sprintf("%d in section", len(s.cat.BySection(sections[s.section])))
}

func (s *QuestionsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Tab", Description: "Section"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuestionsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "tab":
			s.section++
			if s.section >= len(sections) {
				s.section = -1
			}
			s.vp.GotoTop()
			return s, nil
		case "shift+tab":
			s.section--
			if s.section < -1 {
				s.section = len(sections) - 1
			}
			s.vp.GotoTop()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *QuestionsScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	body := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.render(cw))

	s.vp.SetWidth(width)
	s.vp.SetHeight(height)
	s.vp.SetContent(body)
	return s.vp.View()
}

func (s *QuestionsScreen) render(cw int) string {
	shown := sections
	if s.section >= 0 {
		shown = sections[s.section : s.section+1]
	}

	var blocks []string
	for _, sec := range shown {
		var b strings.Builder
		b.WriteString(theme.Title.Render(sec.Title()))
		for _, q := range s.cat.BySection(sec) {
			n := s.cat.IndexOf(q.ID) + 1
			b.WriteString("\n\n")
			b.WriteString(theme.Body.Bold(true).Width(cw).Render(fmt.Sprintf("%d. %s", n, q.Prompt)))
			b.WriteString("\n")
			b.WriteString(theme.Dim.Render(describe(q)))
			for i, opt := range q.Options {
				b.WriteString("\n")
				b.WriteString(theme.Body.Render(fmt.Sprintf("   %d) %s", i+1, opt)))
			}
		}
		blocks = append(blocks, b.String())
	}
	return lipgloss.NewStyle().Width(cw).Render(strings.Join(blocks, "\n\n\n"))
}

// describe returns the one-line metadata shown under a prompt.
func describe(q catalog.Question) string {
	meta := fmt.Sprintf("   %s · %s · weight %.1f", q.Type, q.Category, q.Weight)
	if q.Type.IsScale() {
		l := q.Labels()
		meta += fmt.Sprintf(" · 1 = %s, 5 = %s", l.Min, l.Max)
	}
	return meta
}
