package assessment

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/recommend"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
}

func newTestEngine() *Engine {
	return NewEngine(catalog.Default(), WithIDGenerator(sequentialIDs()))
}

func TestEngine_AccessorsBeforeStart(t *testing.T) {
	e := newTestEngine()

	if e.State() != StateNotStarted {
		t.Fatalf("State = %s, want not-started", e.State())
	}
	if _, err := e.Scores(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Scores err = %v, want ErrNoActiveSession", err)
	}
	if _, err := e.Session(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Session err = %v, want ErrNoActiveSession", err)
	}
	if _, _, err := e.CurrentQuestion(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("CurrentQuestion err = %v, want ErrNoActiveSession", err)
	}
	if _, err := e.Progress(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Progress err = %v, want ErrNoActiveSession", err)
	}
	if _, err := e.Result(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Result err = %v, want ErrNoActiveSession", err)
	}
	if _, _, err := e.AnswerFor("psych_1"); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("AnswerFor err = %v, want ErrNoActiveSession", err)
	}
	if err := e.Answer("psych_1", 3); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Answer err = %v, want ErrNoActiveSession", err)
	}
	if err := e.Advance(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Advance err = %v, want ErrNoActiveSession", err)
	}
	if _, err := e.Complete(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Complete err = %v, want ErrNoActiveSession", err)
	}
}

func TestEngine_StartGivesEmptySession(t *testing.T) {
	e := newTestEngine()
	s := e.Start()

	if s.ID != "session-1" {
		t.Errorf("ID = %q, want session-1", s.ID)
	}
	if s.CurrentIndex != 0 || len(s.Answers) != 0 || s.Completed {
		t.Errorf("unexpected fresh session: %+v", s)
	}
	if s.Scores != (scoring.Scores{}) {
		t.Errorf("Scores = %+v, want zero", s.Scores)
	}

	// Zero answers is a valid state, not an error.
	scores, err := e.Scores()
	if err != nil {
		t.Fatalf("Scores: %v", err)
	}
	if scores != (scoring.Scores{}) {
		t.Errorf("Scores = %+v, want zero", scores)
	}
}

func TestEngine_AnswerRecomputesScores(t *testing.T) {
	e := newTestEngine()
	e.Start()

	if err := e.Answer("tech_2", 1); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	s, _ := e.Scores()
	if math.Abs(s.Technical-100) > 1e-9 {
		t.Errorf("Technical = %v, want 100", s.Technical)
	}

	if err := e.Answer("tech_2", 0); err != nil {
		t.Fatalf("Answer: %v", err)
	}
	s, _ = e.Scores()
	if math.Abs(s.Technical-20) > 1e-9 {
		t.Errorf("Technical after overwrite = %v, want 20", s.Technical)
	}

	v, ok, err := e.AnswerFor("tech_2")
	if err != nil || !ok || v != 0 {
		t.Errorf("AnswerFor = %d, %v, %v; want 0, true, nil", v, ok, err)
	}
	if _, ok, _ := e.AnswerFor("tech_1"); ok {
		t.Error("AnswerFor(tech_1) reported an answer")
	}
}

func TestEngine_AnswerValidation(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		value   int
		wantErr error
	}{
		{"unknown id", "nope", 1, ErrUnknownQuestion},
		{"scale below range", "psych_1", 0, ErrInvalidValue},
		{"scale above range", "psych_1", 6, ErrInvalidValue},
		{"choice negative", "tech_1", -1, ErrInvalidValue},
		{"choice past options", "tech_1", 4, ErrInvalidValue},
		{"scale low edge", "psych_1", 1, nil},
		{"scale high edge", "psych_1", 5, nil},
		{"choice first", "tech_1", 0, nil},
		{"choice last", "tech_1", 3, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			e.Start()
			err := e.Answer(tt.id, tt.value)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Answer(%q, %d) err = %v, want %v", tt.id, tt.value, err, tt.wantErr)
			}
			if tt.wantErr != nil {
				sess, _ := e.Session()
				if len(sess.Answers) != 0 {
					t.Errorf("rejected answer was recorded: %v", sess.Answers)
				}
			}
		})
	}
}

func TestEngine_AdvanceClampsAtLastQuestion(t *testing.T) {
	e := newTestEngine()
	e.Start()
	n := e.Catalog().Len()

	for range n + 5 {
		if err := e.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	s, _ := e.Session()
	if s.CurrentIndex != n-1 {
		t.Errorf("CurrentIndex = %d, want %d", s.CurrentIndex, n-1)
	}
	q, ok, err := e.CurrentQuestion()
	if err != nil || !ok {
		t.Fatalf("CurrentQuestion = %v, %v", ok, err)
	}
	if q.ID != "wiscar_realworld_1" {
		t.Errorf("last question = %s, want wiscar_realworld_1", q.ID)
	}

	p, _ := e.Progress()
	if p >= 1 {
		t.Errorf("Progress = %v, want < 1", p)
	}
}

func TestEngine_BackClampsAtFirstQuestion(t *testing.T) {
	e := newTestEngine()
	e.Start()
	_ = e.Advance()
	_ = e.Advance()

	for range 4 {
		if err := e.Back(); err != nil {
			t.Fatalf("Back: %v", err)
		}
	}
	s, _ := e.Session()
	if s.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d, want 0", s.CurrentIndex)
	}
}

func TestEngine_AdvanceDoesNotTouchAnswers(t *testing.T) {
	e := newTestEngine()
	e.Start()
	_ = e.Answer("psych_1", 4)
	before, _ := e.Scores()

	_ = e.Advance()
	after, _ := e.Scores()
	if before != after {
		t.Errorf("scores changed on advance: %+v -> %+v", before, after)
	}
}

func TestEngine_Progress(t *testing.T) {
	e := newTestEngine()
	e.Start()
	n := float64(e.Catalog().Len())

	for i := range 4 {
		p, err := e.Progress()
		if err != nil {
			t.Fatalf("Progress: %v", err)
		}
		if want := float64(i) / n; p != want {
			t.Errorf("step %d: Progress = %v, want %v", i, p, want)
		}
		_ = e.Advance()
	}
}

func TestEngine_CompleteWithoutAnswers(t *testing.T) {
	e := newTestEngine()
	e.Start()

	r, err := e.Complete()
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if r.OverallScore != 0 || r.Confidence != 20 || r.Recommendation != recommend.TierNotRecommended {
		t.Errorf("Result = overall %d confidence %d tier %s", r.OverallScore, r.Confidence, r.Recommendation)
	}
	if e.State() != StateCompleted {
		t.Errorf("State = %s, want completed", e.State())
	}
	s, _ := e.Session()
	if !s.Completed {
		t.Error("session not marked completed")
	}
}

func TestEngine_CompleteIsIdempotent(t *testing.T) {
	e := newTestEngine()
	e.Start()
	for _, q := range catalog.Default().Questions() {
		_, hi := q.ValueRange()
		if err := e.Answer(q.ID, hi); err != nil {
			t.Fatalf("Answer(%s): %v", q.ID, err)
		}
	}

	first, err := e.Complete()
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	second, err := e.Complete()
	if err != nil {
		t.Fatalf("second Complete: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Complete not idempotent:\n%+v\n%+v", first, second)
	}

	stored, err := e.Result()
	if err != nil {
		t.Fatalf("Result: %v", err)
	}
	if !reflect.DeepEqual(first, stored) {
		t.Errorf("Result() differs from Complete()")
	}
}

func TestEngine_ResultBeforeComplete(t *testing.T) {
	e := newTestEngine()
	e.Start()
	if _, err := e.Result(); !errors.Is(err, ErrNotCompleted) {
		t.Errorf("Result err = %v, want ErrNotCompleted", err)
	}
}

func TestEngine_CompletedSessionRejectsChanges(t *testing.T) {
	e := newTestEngine()
	e.Start()
	_, _ = e.Complete()

	if err := e.Answer("psych_1", 3); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("Answer err = %v, want ErrSessionCompleted", err)
	}
	if err := e.Advance(); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("Advance err = %v, want ErrSessionCompleted", err)
	}
	if err := e.Back(); !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("Back err = %v, want ErrSessionCompleted", err)
	}
}

func TestEngine_ResetThenStart(t *testing.T) {
	e := newTestEngine()
	first := e.Start()
	_ = e.Answer("psych_1", 5)
	_ = e.Advance()
	_, _ = e.Complete()

	e.Reset()
	if e.State() != StateNotStarted {
		t.Fatalf("State = %s, want not-started", e.State())
	}
	if _, err := e.Result(); !errors.Is(err, ErrNoActiveSession) {
		t.Errorf("Result after reset err = %v, want ErrNoActiveSession", err)
	}

	second := e.Start()
	if second.ID == first.ID {
		t.Errorf("new session reused id %q", second.ID)
	}
	if len(second.Answers) != 0 || second.CurrentIndex != 0 || second.Completed {
		t.Errorf("session after reset not empty: %+v", second)
	}
	if second.Scores != (scoring.Scores{}) {
		t.Errorf("Scores = %+v, want zero", second.Scores)
	}
}

func TestEngine_DefaultIDsAreUnique(t *testing.T) {
	e := NewEngine(catalog.Default())
	a := e.Start().ID
	b := e.Start().ID
	if a == "" || a == b {
		t.Errorf("ids %q and %q, want distinct non-empty", a, b)
	}
}

func TestEngine_SessionIsACopy(t *testing.T) {
	e := newTestEngine()
	e.Start()
	_ = e.Answer("psych_1", 2)

	s, _ := e.Session()
	s.Answers["psych_1"] = 5
	s.Answers["psych_2"] = 5

	v, _, _ := e.AnswerFor("psych_1")
	if v != 2 {
		t.Errorf("engine answer changed through copy: %d", v)
	}
	if _, ok, _ := e.AnswerFor("psych_2"); ok {
		t.Error("engine picked up answer added to copy")
	}
}

func TestEngine_CurrentQuestionPastEnd(t *testing.T) {
	cat, err := catalog.New([]catalog.Question{
		{ID: "only", Type: catalog.TypeScaleRating, Section: catalog.SectionPsychological, Category: "x", Prompt: "p", Weight: 1},
	}, nil)
	if err != nil {
		t.Fatalf("catalog.New: %v", err)
	}
	e := NewEngine(cat)
	e.Start()
	e.session.CurrentIndex = 1

	if _, ok, err := e.CurrentQuestion(); ok || err != nil {
		t.Errorf("CurrentQuestion = %v, %v; want none", ok, err)
	}
}

func TestEngine_LogsTransitions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := NewEngine(catalog.Default(), WithLogger(zap.New(core)), WithIDGenerator(sequentialIDs()))

	e.Start()
	_ = e.Answer("psych_1", 3)
	_, _ = e.Complete()

	entries := logs.FilterMessage("assessment transition").All()
	if len(entries) != 3 {
		t.Fatalf("got %d transition logs, want 3", len(entries))
	}
	last := entries[2].ContextMap()
	if last["op"] != "complete" || last["from"] != "in-progress" || last["to"] != "completed" {
		t.Errorf("last transition = %v", last)
	}
	if last["session_id"] != "session-1" {
		t.Errorf("session_id = %v", last["session_id"])
	}
	if logs.FilterMessage("assessment completed").Len() != 1 {
		t.Error("missing completion log")
	}
}

func TestNext_Table(t *testing.T) {
	tests := []struct {
		from    State
		op      Op
		want    State
		wantErr error
	}{
		{StateNotStarted, OpStart, StateInProgress, nil},
		{StateNotStarted, OpReset, StateNotStarted, nil},
		{StateNotStarted, OpAnswer, StateNotStarted, ErrNoActiveSession},
		{StateNotStarted, OpComplete, StateNotStarted, ErrNoActiveSession},
		{StateInProgress, OpAnswer, StateInProgress, nil},
		{StateInProgress, OpBack, StateInProgress, nil},
		{StateInProgress, OpComplete, StateCompleted, nil},
		{StateInProgress, OpReset, StateNotStarted, nil},
		{StateCompleted, OpComplete, StateCompleted, nil},
		{StateCompleted, OpStart, StateInProgress, nil},
		{StateCompleted, OpAdvance, StateCompleted, ErrSessionCompleted},
	}
	for _, tt := range tests {
		got, err := Next(tt.from, tt.op)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Next(%s, %s) err = %v, want %v", tt.from, tt.op, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("Next(%s, %s) = %s, want %s", tt.from, tt.op, got, tt.want)
		}
	}
}
