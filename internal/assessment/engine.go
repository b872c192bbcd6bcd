package assessment

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/recommend"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
)

// Engine drives one assessment at a time. It is owned by a single caller
// and is not safe for concurrent use; run one Engine per user.
type Engine struct {
	cat    Catalog
	logger *zap.Logger
	newID  func() string

	state   State
	session Session
	result  recommend.Result
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for transition debug logs.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithIDGenerator overrides the session id source (uuid by default).
func WithIDGenerator(f func() string) Option {
	return func(e *Engine) {
		if f != nil {
			e.newID = f
		}
	}
}

// NewEngine creates an engine over cat in the not-started state.
func NewEngine(cat Catalog, opts ...Option) *Engine {
	e := &Engine{
		cat:    cat,
		logger: zap.NewNop(),
		newID:  uuid.NewString,
		state:  StateNotStarted,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() Catalog {
	return e.cat
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Start begins a new session, discarding any previous session and result.
func (e *Engine) Start() Session {
	to, _ := Next(e.state, OpStart)
	e.commit(OpStart, startSession(e.newID()), recommend.Result{}, to)
	return e.session.Clone()
}

// Answer records value for question id and recomputes scores. An earlier
// answer for the same id is replaced.
func (e *Engine) Answer(id string, value int) error {
	to, err := e.next(OpAnswer)
	if err != nil {
		return err
	}
	s, err := answerSession(e.session, e.cat, id, value)
	if err != nil {
		e.logger.Debug("answer rejected",
			zap.String("session_id", e.session.ID),
			zap.String("question_id", id),
			zap.Int("value", value),
			zap.Error(err),
		)
		return err
	}
	e.commit(OpAnswer, s, e.result, to)
	return nil
}

// Advance moves to the next question. At the last question it does nothing.
func (e *Engine) Advance() error {
	to, err := e.next(OpAdvance)
	if err != nil {
		return err
	}
	e.commit(OpAdvance, advanceSession(e.session, e.cat.Len()), e.result, to)
	return nil
}

// Back moves to the previous question. At the first question it does nothing.
func (e *Engine) Back() error {
	to, err := e.next(OpBack)
	if err != nil {
		return err
	}
	e.commit(OpBack, backSession(e.session), e.result, to)
	return nil
}

// Complete finalizes the session and returns its Result. Calling it again
// recomputes the same Result from the same answers.
func (e *Engine) Complete() (recommend.Result, error) {
	to, err := e.next(OpComplete)
	if err != nil {
		return recommend.Result{}, err
	}
	s, r := completeSession(e.session, e.cat)
	e.commit(OpComplete, s, r, to)
	e.logger.Info("assessment completed",
		zap.String("session_id", s.ID),
		zap.Int("answered", s.Answered()),
		zap.Int("overall_score", r.OverallScore),
		zap.String("recommendation", string(r.Recommendation)),
	)
	return r.Clone(), nil
}

// Reset discards the session and result.
func (e *Engine) Reset() {
	to, _ := Next(e.state, OpReset)
	e.commit(OpReset, Session{}, recommend.Result{}, to)
}

// CurrentQuestion returns the question at the current index. ok is false
// when the index is past the last question.
func (e *Engine) CurrentQuestion() (q catalog.Question, ok bool, err error) {
	if e.state == StateNotStarted {
		return catalog.Question{}, false, ErrNoActiveSession
	}
	q, ok = e.cat.At(e.session.CurrentIndex)
	return q, ok, nil
}

// Progress returns CurrentIndex / catalog length, for display only.
func (e *Engine) Progress() (float64, error) {
	if e.state == StateNotStarted {
		return 0, ErrNoActiveSession
	}
	n := e.cat.Len()
	if n == 0 {
		return 0, nil
	}
	return float64(e.session.CurrentIndex) / float64(n), nil
}

// Session returns a copy of the active session.
func (e *Engine) Session() (Session, error) {
	if e.state == StateNotStarted {
		return Session{}, ErrNoActiveSession
	}
	return e.session.Clone(), nil
}

// Scores returns the scores for the current answers.
func (e *Engine) Scores() (scoring.Scores, error) {
	if e.state == StateNotStarted {
		return scoring.Scores{}, ErrNoActiveSession
	}
	return e.session.Scores, nil
}

// AnswerFor returns the recorded answer for id, if any.
func (e *Engine) AnswerFor(id string) (int, bool, error) {
	if e.state == StateNotStarted {
		return 0, false, ErrNoActiveSession
	}
	v, ok := e.session.Answers[id]
	return v, ok, nil
}

// Result returns the Result of a completed session.
func (e *Engine) Result() (recommend.Result, error) {
	switch e.state {
	case StateNotStarted:
		return recommend.Result{}, ErrNoActiveSession
	case StateInProgress:
		return recommend.Result{}, ErrNotCompleted
	}
	return e.result.Clone(), nil
}

func (e *Engine) next(op Op) (State, error) {
	to, err := Next(e.state, op)
	if err != nil {
		return e.state, err
	}
	return to, nil
}

func (e *Engine) commit(op Op, s Session, r recommend.Result, to State) {
	from := e.state
	e.session, e.result, e.state = s, r, to
	e.logger.Debug("assessment transition",
		zap.String("session_id", s.ID),
		zap.String("op", string(op)),
		zap.Stringer("from", from),
		zap.Stringer("to", to),
		zap.Int("index", s.CurrentIndex),
	)
}
