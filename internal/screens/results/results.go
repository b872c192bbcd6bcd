package results

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/coach"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/recommend"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/router"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screen"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/layout"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/theme"
)

// Coach writes the optional coaching note.
type Coach interface {
	Generate(ctx context.Context, in coach.Input) (*coach.Note, error)
}

// Options configures a ResultsScreen.
type Options struct {
	SessionID string
	Scores    scoring.Scores
	Result    recommend.Result
	Answered  int
	Total     int

	// Coach may be nil, in which case no note is requested.
	Coach  Coach
	Logger *zap.Logger

	// Retake builds the screen that replaces this one on "r".
	Retake func() screen.Screen
}

// noteMsg carries the coaching note back from the background request.
type noteMsg struct {
	note *coach.Note
	err  error
}

// ResultsScreen shows the report for a completed assessment.
type ResultsScreen struct {
	opts    Options
	logger  *zap.Logger
	vp      viewport.Model
	spin    spinner.Model
	loading bool
	note    *coach.Note
	noteErr error
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen.
func New(opts Options) *ResultsScreen {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResultsScreen{
		opts:   opts,
		logger: logger,
		vp:     viewport.New(),
		spin: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Accent)),
		),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.opts.Coach == nil {
		return nil
	}
	s.loading = true
	return tea.Batch(s.spin.Tick, s.requestNote())
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) Status() string {
	return s.opts.Result.Recommendation.Heading()
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Retake"},
		{Key: "Esc", Description: "Home"},
	}
}

// requestNote asks the coach for a note off the UI goroutine.
func (s *ResultsScreen) requestNote() tea.Cmd {
	c := s.opts.Coach
	in := coach.Input{Result: s.opts.Result.Clone(), Scores: s.opts.Scores}
	return func() tea.Msg {
		note, err := c.Generate(context.Background(), in)
		return noteMsg{note: note, err: err}
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case noteMsg:
		s.loading = false
		s.note, s.noteErr = msg.note, msg.err
		if msg.err != nil {
			s.logger.Warn("coach note unavailable",
				zap.String("session_id", s.opts.SessionID),
				zap.Error(msg.err))
		}
		return s, nil

	case spinner.TickMsg:
		if !s.loading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		switch msg.String() {
		case "r", "R":
			if s.opts.Retake == nil {
				return s, nil
			}
			next := s.opts.Retake()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		case "g", "home":
			s.vp.GotoTop()
			return s, nil
		case "G", "end":
			s.vp.GotoBottom()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	cw := layout.ContentWidth(width)
	body := lipgloss.PlaceHorizontal(width, lipgloss.Center, s.render(cw))

	s.vp.SetWidth(width)
	s.vp.SetHeight(height)
	s.vp.SetContent(body)
	return s.vp.View()
}
