package quiz

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/assessment"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/router"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screen"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screens/results"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/components"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/ui/layout"
)

// QuizScreen walks the user through the catalog one question at a time.
type QuizScreen struct {
	engine *assessment.Engine
	coach  results.Coach
	logger *zap.Logger

	question catalog.Question
	choices  components.ChoiceList
	scale    components.Scale

	confirmQuit bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)

// New creates a QuizScreen over engine. coach may be nil.
func New(engine *assessment.Engine, coach results.Coach, logger *zap.Logger) *QuizScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuizScreen{
		engine: engine,
		coach:  coach,
		logger: logger,
	}
}

// Init starts a fresh session unless one is already in progress.
func (s *QuizScreen) Init() tea.Cmd {
	if s.engine.State() != assessment.StateInProgress {
		s.engine.Reset()
		s.engine.Start()
	}
	s.sync()
	return nil
}

func (s *QuizScreen) Title() string {
	if s.question.ID == "" {
		return "Assessment"
	}
	return s.question.Section.Title()
}

func (s *QuizScreen) Status() string {
	sess, err := s.engine.Session()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%d/%d answered", sess.Answered(), s.engine.Catalog().Len())
}

func (s *QuizScreen) HandlesEscape() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	keys := "1-5"
	if s.question.Type.IsChoice() {
		keys = fmt.Sprintf("1-%d", len(s.question.Options))
	}
	hints := []layout.KeyHint{
		{Key: keys, Description: "Answer"},
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer & next"},
		{Key: "←→", Description: "Prev/Next"},
	}
	if s.isLast() {
		hints[2].Description = "Finish"
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Quit"})
}

// sync reloads the current question and positions the cursor on its
// recorded answer.
func (s *QuizScreen) sync() {
	q, ok, err := s.engine.CurrentQuestion()
	if err != nil || !ok {
		s.question = catalog.Question{}
		return
	}
	s.question = q
	value, answered, _ := s.engine.AnswerFor(q.ID)

	if q.Type.IsChoice() {
		if !answered {
			value = -1
		}
		s.choices = components.NewChoiceList(q.Options, value)
		return
	}
	if !answered {
		value = 0
	}
	s.scale = components.NewScale(q.Labels(), value)
}

// selected returns the value under the cursor.
func (s *QuizScreen) selected() int {
	if s.question.Type.IsChoice() {
		return s.choices.Selected
	}
	return s.scale.Selected
}

func (s *QuizScreen) isLast() bool {
	sess, err := s.engine.Session()
	return err == nil && sess.CurrentIndex >= s.engine.Catalog().Len()-1
}

func (s *QuizScreen) answered() bool {
	_, ok, _ := s.engine.AnswerFor(s.question.ID)
	return ok
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.confirmQuit = false
			s.engine.Reset()
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if s.question.ID == "" {
		if key == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	s.errMsg = ""
	switch key {
	case "esc":
		s.confirmQuit = true
	case "up", "k":
		s.move(-1)
	case "down", "j":
		s.move(1)
	case "enter":
		if err := s.answer(s.selected()); err != nil {
			return s, nil
		}
		return s, s.next()
	case "n", "right":
		if !s.answered() {
			s.errMsg = "Answer this question first"
			return s, nil
		}
		return s, s.next()
	case "p", "left":
		if err := s.engine.Back(); err == nil {
			s.sync()
		}
	case "1", "2", "3", "4", "5":
		s.answerDigit(int(key[0] - '0'))
	}
	return s, nil
}

func (s *QuizScreen) move(delta int) {
	if s.question.Type.IsChoice() {
		s.choices = s.choices.Move(delta)
		return
	}
	s.scale = s.scale.Move(delta)
}

// answerDigit records a number key: option n for choice questions, value
// n for scales. Out-of-range digits are ignored.
func (s *QuizScreen) answerDigit(n int) {
	value := n
	if s.question.Type.IsChoice() {
		value = n - 1
	}
	if !s.question.Accepts(value) {
		return
	}
	if err := s.answer(value); err == nil {
		s.sync()
	}
}

func (s *QuizScreen) answer(value int) error {
	if err := s.engine.Answer(s.question.ID, value); err != nil {
		s.errMsg = err.Error()
		return err
	}
	return nil
}

// next advances to the following question, or completes the assessment
// and swaps in the results screen after the last one.
func (s *QuizScreen) next() tea.Cmd {
	if !s.isLast() {
		if err := s.engine.Advance(); err != nil {
			s.errMsg = err.Error()
			return nil
		}
		s.sync()
		return nil
	}

	res, err := s.engine.Complete()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	sess, _ := s.engine.Session()

	engine, coach, logger := s.engine, s.coach, s.logger
	next := results.New(results.Options{
		SessionID: sess.ID,
		Scores:    sess.Scores,
		Result:    res,
		Answered:  sess.Answered(),
		Total:     engine.Catalog().Len(),
		Coach:     coach,
		Logger:    logger,
		Retake: func() screen.Screen {
			engine.Reset()
			return New(engine, coach, logger)
		},
	})
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
