package coach

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/llm"
)

// Purpose tags coach requests in LLM logs.
const Purpose = "coach-note"

// Service turns assessment results into a coaching note.
type Service struct {
	provider llm.Provider
	cfg      Config
	logger   *zap.Logger
}

// NewService creates a coach. A nil logger disables logging.
func NewService(provider llm.Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, cfg: cfg, logger: logger.Named("coach")}
}

// Model returns the model id notes are generated with.
func (s *Service) Model() string {
	return s.provider.ModelID()
}

// Generate produces a note for in. It blocks until the provider answers
// or ctx ends.
func (s *Service) Generate(ctx context.Context, in Input) (*Note, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, Purpose)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    llm.UserPrompt(buildUserMessage(in)),
		Schema:      NoteSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("coach note: %w", err)
	}

	var note Note
	if err := resp.Decode(&note); err != nil {
		return nil, fmt.Errorf("coach note: %w", err)
	}
	note.trim()

	s.logger.Debug("coach note generated",
		zap.String("recommendation", string(in.Result.Recommendation)),
		zap.Int("focus_areas", len(note.FocusAreas)),
		zap.Int("output_tokens", resp.Usage.OutputTokens),
	)
	return &note, nil
}

func (n *Note) trim() {
	n.Headline = strings.TrimSpace(n.Headline)
	n.Summary = strings.TrimSpace(n.Summary)
	n.FocusAreas = trimAll(n.FocusAreas)
	n.FirstWeek = trimAll(n.FirstWeek)
}

func trimAll(items []string) []string {
	out := items[:0]
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}
