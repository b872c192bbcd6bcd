package assessment

import (
	"fmt"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/recommend"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
)

// State is the engine's position in the assessment lifecycle.
type State string

const (
	StateNotStarted State = "not-started"
	StateInProgress State = "in-progress"
	StateCompleted  State = "completed"
)

func (s State) String() string { return string(s) }

// Op names an engine operation that can change state.
type Op string

const (
	OpStart    Op = "start"
	OpAnswer   Op = "answer"
	OpAdvance  Op = "advance"
	OpBack     Op = "back"
	OpComplete Op = "complete"
	OpReset    Op = "reset"
)

// transitions lists every legal (state, op) pair and the resulting state.
// Pairs that are absent are rejected by Next.
var transitions = map[State]map[Op]State{
	StateNotStarted: {
		OpStart: StateInProgress,
		OpReset: StateNotStarted,
	},
	StateInProgress: {
		OpStart:    StateInProgress,
		OpAnswer:   StateInProgress,
		OpAdvance:  StateInProgress,
		OpBack:     StateInProgress,
		OpComplete: StateCompleted,
		OpReset:    StateNotStarted,
	},
	StateCompleted: {
		OpStart:    StateInProgress,
		OpComplete: StateCompleted,
		OpReset:    StateNotStarted,
	},
}

// Next returns the state reached by applying op in state from.
func Next(from State, op Op) (State, error) {
	if to, ok := transitions[from][op]; ok {
		return to, nil
	}
	switch from {
	case StateNotStarted:
		return from, ErrNoActiveSession
	case StateCompleted:
		return from, ErrSessionCompleted
	default:
		return from, fmt.Errorf("no transition for %s from %s", op, from)
	}
}

// Catalog is the question source the engine reads. *catalog.Catalog
// satisfies it.
type Catalog interface {
	scoring.Catalog
	Len() int
	At(i int) (catalog.Question, bool)
}

// The functions below are the transition bodies. Each takes a session by
// value and returns a new one; the input is never modified.

func startSession(id string) Session {
	return NewSession(id)
}

func answerSession(s Session, cat Catalog, id string, value int) (Session, error) {
	q, ok := cat.Lookup(id)
	if !ok {
		return s, fmt.Errorf("%w: %q", ErrUnknownQuestion, id)
	}
	if !q.Accepts(value) {
		lo, hi := q.ValueRange()
		return s, fmt.Errorf("%w: %s accepts %d..%d, got %d", ErrInvalidValue, id, lo, hi, value)
	}

	next := s.Clone()
	next.Answers[id] = value
	next.Scores = scoring.Compute(next.Answers, cat)
	return next, nil
}

func advanceSession(s Session, total int) Session {
	next := s.Clone()
	next.CurrentIndex = min(next.CurrentIndex+1, max(total-1, 0))
	return next
}

func backSession(s Session) Session {
	next := s.Clone()
	next.CurrentIndex = max(next.CurrentIndex-1, 0)
	return next
}

func completeSession(s Session, cat Catalog) (Session, recommend.Result) {
	next := s.Clone()
	next.Scores = scoring.Compute(next.Answers, cat)
	next.Completed = true
	return next, recommend.Derive(next.Scores)
}
