package coach

import (
	"time"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/recommend"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
)

// Note is a short coaching narrative generated from a finished assessment.
type Note struct {
	Headline   string   `json:"headline" yaml:"headline"`
	Summary    string   `json:"summary" yaml:"summary"`
	FocusAreas []string `json:"focus_areas" yaml:"focusAreas"`
	FirstWeek  []string `json:"first_week" yaml:"firstWeek"`
}

// Input is what the coach sees: the derived result and the raw scores.
type Input struct {
	Result recommend.Result
	Scores scoring.Scores
}

// Config holds generation settings.
type Config struct {
	MaxTokens   int
	Temperature float64

	// Timeout bounds one Generate call. Zero means no extra deadline.
	Timeout time.Duration
}

// DefaultConfig returns the settings used by the CLI and TUI.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   700,
		Temperature: 0.4,
		Timeout:     30 * time.Second,
	}
}
