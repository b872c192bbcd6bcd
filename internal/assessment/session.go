package assessment

import (
	"maps"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
)

// Session is one assessment attempt. Values returned by the Engine are
// copies; modifying them does not affect the engine.
type Session struct {
	// ID is a fresh uuid per Start.
	ID string

	// CurrentIndex is the 0-based position in the catalog.
	CurrentIndex int

	// Answers maps question id to the option index (choice questions)
	// or the 1-5 value (scale questions).
	Answers map[string]int

	// Scores is recomputed after every answer.
	Scores scoring.Scores

	// Completed is set once by Complete.
	Completed bool
}

// NewSession returns an empty session with the given id.
func NewSession(id string) Session {
	return Session{
		ID:      id,
		Answers: make(map[string]int),
	}
}

// Clone returns a copy of s that shares no maps with it.
func (s Session) Clone() Session {
	s.Answers = maps.Clone(s.Answers)
	if s.Answers == nil {
		s.Answers = make(map[string]int)
	}
	return s
}

// Answered reports how many questions have an answer.
func (s Session) Answered() int {
	return len(s.Answers)
}
