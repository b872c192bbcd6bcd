package answersheet

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/assessment"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/recommend"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
)

// Outcome is the result of replaying a sheet.
type Outcome struct {
	SessionID string
	Answered  int
	Scores    scoring.Scores
	Result    recommend.Result
}

// Replay starts a fresh session on e, answers every question the sheet
// covers in catalog order, and completes it. All rejected answers are
// reported together and nothing is completed.
func Replay(e *assessment.Engine, s *Sheet) (Outcome, error) {
	sess := e.Start()
	cat := e.Catalog()

	var errs []error
	seen := make(map[string]bool, len(s.Answers))
	for i := range cat.Len() {
		q, _ := cat.At(i)
		if v, ok := s.Answers[q.ID]; ok {
			seen[q.ID] = true
			if err := e.Answer(q.ID, v); err != nil {
				errs = append(errs, err)
			}
		}
		if err := e.Advance(); err != nil {
			return Outcome{}, err
		}
	}
	for _, id := range slices.Sorted(maps.Keys(s.Answers)) {
		if !seen[id] {
			errs = append(errs, fmt.Errorf("%w: %q", assessment.ErrUnknownQuestion, id))
		}
	}
	if len(errs) > 0 {
		e.Reset()
		return Outcome{}, errors.Join(errs...)
	}

	r, err := e.Complete()
	if err != nil {
		return Outcome{}, err
	}
	scores, err := e.Scores()
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		SessionID: sess.ID,
		Answered:  len(s.Answers),
		Scores:    scores,
		Result:    r,
	}, nil
}
