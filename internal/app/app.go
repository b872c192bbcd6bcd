package app

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/router"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screen"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screens/home"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screens/results"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screens/welcome"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/layout"
)

// Options holds the dependencies for the TUI.
type Options struct {
	Catalog *catalog.Catalog

	// Coach is nil when no LLM provider is configured.
	Coach      results.Coach
	CoachModel string

	Logger *zap.Logger

	// SkipWelcome starts on the home screen.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	logger *zap.Logger
	width  int
	height int
}

// newAppModel creates the root model, starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	homeFactory := func() screen.Screen {
		return home.New(home.Options{
			Catalog:    opts.Catalog,
			Coach:      opts.Coach,
			CoachModel: opts.CoachModel,
			Logger:     opts.Logger,
		})
	}

	var initial screen.Screen
	if opts.SkipWelcome {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}
	return AppModel{
		router: router.New(initial),
		logger: opts.Logger,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}
	header := layout.RenderHeader(title, status, m.width)

	var hints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		hints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-layout.HeaderHeight-layout.FooterHeight, 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the TUI and blocks until the user quits.
func Run(opts Options) error {
	m := newAppModel(opts)
	m.logger.Debug("tui starting", zap.Bool("coach", opts.Coach != nil))

	_, err := tea.NewProgram(m).Run()
	if err != nil {
		m.logger.Error("tui exited with error", zap.Error(err))
		return err
	}
	return nil
}
