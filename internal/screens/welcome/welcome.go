package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/router"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screen"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bootEnd      = 600 * time.Millisecond
	bannerAt     = 1200 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

// Tagline is shown under the banner.
const Tagline = "Is DevOps the right path for you?"

// bootLines are typed out one per tick before the banner appears.
var bootLines = []string{
	"$ careerfit --assess",
	"loading 17 questions ........ ok",
	"psychological | technical | wiscar",
}

var cursorFrames = []string{"█", " "}

type tickMsg time.Time

// WelcomeScreen plays a short terminal-boot animation, then hands over
// to the home screen on the first key press.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with homeFactory().
func New(homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	home := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

// visibleBootLines returns how many boot lines have been typed so far.
func (w *WelcomeScreen) visibleBootLines() int {
	if w.elapsed >= bootEnd {
		return len(bootLines)
	}
	step := bootEnd / time.Duration(len(bootLines))
	return min(int(w.elapsed/step)+1, len(bootLines))
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	prompt := lipgloss.NewStyle().Foreground(theme.Secondary)
	lines := make([]string, 0, len(bootLines))
	for _, l := range bootLines[:w.visibleBootLines()] {
		lines = append(lines, prompt.Render(l))
	}
	if w.elapsed < bannerAt {
		lines = append(lines, theme.Dim.Render(cursorFrames[w.tickCount%len(cursorFrames)]))
	}
	sections = append(sections, lipgloss.NewStyle().Width(40).Render(strings.Join(lines, "\n")))

	if w.elapsed >= bannerAt {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
