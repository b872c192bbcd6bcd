package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/assessment"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/router"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/screens/results"
)

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

// smallCatalog has one scale question followed by one three-option choice.
func smallCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Question{
		{ID: "s1", Type: catalog.TypeScaleRating, Section: catalog.SectionPsychological, Category: "interest", Prompt: "I enjoy automation", Weight: 1},
		{ID: "c1", Type: catalog.TypeSingleChoice, Section: catalog.SectionTechnical, Category: "linux", Prompt: "Pick one", Options: []string{"a", "b", "c"}, Weight: 1},
	}, map[string]int{"c1": 1})
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	return cat
}

func newQuiz(t *testing.T, cat *catalog.Catalog) (*QuizScreen, *assessment.Engine) {
	t.Helper()
	e := assessment.NewEngine(cat)
	q := New(e, nil, nil)
	q.Init()
	return q, e
}

func TestQuiz_InitStartsSession(t *testing.T) {
	q, e := newQuiz(t, catalog.Default())

	if e.State() != assessment.StateInProgress {
		t.Fatalf("state = %s, want in-progress", e.State())
	}
	if q.Title() != catalog.SectionPsychological.Title() {
		t.Errorf("Title = %q", q.Title())
	}
	if q.Status() != "0/17 answered" {
		t.Errorf("Status = %q", q.Status())
	}
	view := q.View(100, 40)
	if !strings.Contains(view, "Question 1 of 17") {
		t.Errorf("view missing question counter:\n%s", view)
	}
}

func TestQuiz_DigitAnswersScale(t *testing.T) {
	q, e := newQuiz(t, smallCatalog(t))

	q.Update(key("4"))
	if v, ok, _ := e.AnswerFor("s1"); !ok || v != 4 {
		t.Fatalf("s1 = %d, %v; want 4", v, ok)
	}
	if q.scale.Answered != 4 || q.scale.Selected != 4 {
		t.Errorf("scale = %+v", q.scale)
	}
	sess, _ := e.Session()
	if sess.CurrentIndex != 0 {
		t.Errorf("digit should not advance, index = %d", sess.CurrentIndex)
	}
}

func TestQuiz_DigitAnswersChoiceByPosition(t *testing.T) {
	q, e := newQuiz(t, smallCatalog(t))
	q.Update(key("3"))
	q.Update(key("n"))

	q.Update(key("2"))
	if v, ok, _ := e.AnswerFor("c1"); !ok || v != 1 {
		t.Fatalf("c1 = %d, %v; want option index 1", v, ok)
	}

	q.Update(key("5"))
	if v, _, _ := e.AnswerFor("c1"); v != 1 {
		t.Errorf("out-of-range digit changed answer to %d", v)
	}
}

func TestQuiz_NextRequiresAnswer(t *testing.T) {
	q, e := newQuiz(t, smallCatalog(t))

	q.Update(key("right"))
	sess, _ := e.Session()
	if sess.CurrentIndex != 0 {
		t.Fatalf("unanswered question advanced to %d", sess.CurrentIndex)
	}
	if q.errMsg == "" {
		t.Error("expected a prompt to answer first")
	}

	q.Update(key("1"))
	q.Update(key("right"))
	sess, _ = e.Session()
	if sess.CurrentIndex != 1 || q.question.ID != "c1" {
		t.Errorf("index = %d, question = %s", sess.CurrentIndex, q.question.ID)
	}

	q.Update(key("p"))
	if q.question.ID != "s1" || q.scale.Answered != 1 {
		t.Errorf("back: question = %s, scale = %+v", q.question.ID, q.scale)
	}
}

func TestQuiz_ArrowsThenEnter(t *testing.T) {
	q, e := newQuiz(t, smallCatalog(t))

	q.Update(key("up"))
	q.Update(key("up"))
	q.Update(key("enter"))
	if v, _, _ := e.AnswerFor("s1"); v != 1 {
		t.Fatalf("s1 = %d, want 1", v)
	}
	if q.question.ID != "c1" {
		t.Fatalf("enter should advance, at %s", q.question.ID)
	}

	q.Update(key("down"))
	q.Update(key("down"))
	q.Update(key("down"))
	_, cmd := q.Update(key("enter"))
	if v, _, _ := e.AnswerFor("c1"); v != 2 {
		t.Errorf("c1 = %d, want 2", v)
	}
	if cmd == nil {
		t.Fatal("finishing should produce a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("replacement is %T, want results screen", msg.Screen)
	}
	if e.State() != assessment.StateCompleted {
		t.Errorf("state = %s, want completed", e.State())
	}
}

func TestQuiz_FullDefaultRun(t *testing.T) {
	q, e := newQuiz(t, catalog.Default())

	var cmd tea.Cmd
	for range catalog.Default().Len() {
		_, cmd = q.Update(key("enter"))
	}
	if cmd == nil || e.State() != assessment.StateCompleted {
		t.Fatalf("state = %s after answering every question", e.State())
	}
	sess, _ := e.Session()
	if sess.Answered() != 17 {
		t.Errorf("answered = %d, want 17", sess.Answered())
	}

	res := cmd().(router.ReplaceScreenMsg).Screen.(*results.ResultsScreen)
	_, retake := res.Update(key("r"))
	next := retake().(router.ReplaceScreenMsg).Screen
	if e.State() != assessment.StateNotStarted {
		t.Errorf("retake should reset the engine, state = %s", e.State())
	}
	next.Init()
	if e.State() != assessment.StateInProgress {
		t.Errorf("new quiz should start a session, state = %s", e.State())
	}
}

func TestQuiz_QuitConfirm(t *testing.T) {
	q, e := newQuiz(t, smallCatalog(t))
	q.Update(key("3"))

	q.Update(key("esc"))
	if !q.confirmQuit {
		t.Fatal("esc should ask for confirmation")
	}
	if !strings.Contains(q.View(100, 30), "Leave the assessment?") {
		t.Error("confirmation should be shown")
	}
	if hints := q.KeyHints(); len(hints) != 2 || hints[0].Key != "Y" {
		t.Errorf("confirm hints = %+v", hints)
	}

	q.Update(key("n"))
	if q.confirmQuit || e.State() != assessment.StateInProgress {
		t.Fatal("n should keep the session going")
	}

	q.Update(key("esc"))
	_, cmd := q.Update(key("y"))
	if cmd == nil {
		t.Fatal("y should produce a command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
	if e.State() != assessment.StateNotStarted {
		t.Errorf("leaving should reset the engine, state = %s", e.State())
	}
}

func TestQuiz_HandlesEscape(t *testing.T) {
	q, _ := newQuiz(t, smallCatalog(t))
	if !q.HandlesEscape() {
		t.Error("quiz should own the Esc key")
	}
}
