package home

import (
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/assessment"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/router"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screen"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screens/questions"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screens/quiz"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screens/results"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/components"
)

// Options are the dependencies the home screen hands to the screens it opens.
type Options struct {
	Catalog *catalog.Catalog

	// Coach may be nil; CoachModel names the model behind it for display.
	Coach      results.Coach
	CoachModel string

	Logger *zap.Logger
}

// HomeScreen is the main menu.
type HomeScreen struct {
	opts   Options
	engine *assessment.Engine
	menu   components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// Menu labels, in display order.
const (
	LabelStart  = "Start Assessment"
	LabelBrowse = "Browse Questions"
	LabelQuit   = "Quit"
)

// New creates a HomeScreen. Every assessment started from it reuses one
// engine, so at most one session exists at a time.
func New(opts Options) *HomeScreen {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	h := &HomeScreen{
		opts:   opts,
		engine: assessment.NewEngine(opts.Catalog, assessment.WithLogger(opts.Logger)),
	}

	h.menu = components.NewMenu([]components.MenuItem{
		{Label: LabelStart, Action: func() tea.Cmd {
			s := quiz.New(h.engine, h.opts.Coach, h.opts.Logger)
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}},
		{Label: LabelBrowse, Action: func() tea.Cmd {
			s := questions.New(h.opts.Catalog)
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}},
		{Label: LabelQuit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}
