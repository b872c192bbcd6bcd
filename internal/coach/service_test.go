package coach

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/llm"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/recommend"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/scoring"
)

func sampleInput() Input {
	s := scoring.Scores{
		Psychological: 82,
		Technical:     44,
		Wiscar: scoring.WiscarScores{
			Will: 80, Interest: 85, Skill: 40, Cognitive: 100, Ability: 60, RealWorld: 60,
		},
	}
	return Input{Result: recommend.Derive(s), Scores: s}
}

func validNote() json.RawMessage {
	return json.RawMessage(`{
		"headline": "  Strong mindset, build the technical base  ",
		"summary": "Your motivation and problem solving are strong. Technical skills are the gap.",
		"focus_areas": ["Linux command line", "  ", "Networking basics"],
		"first_week": ["Install a Linux VM", "Write a bash script that backs up a folder"]
	}`)
}

func TestService_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNote()})
	svc := NewService(mock, DefaultConfig(), nil)

	note, err := svc.Generate(context.Background(), sampleInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if note.Headline != "Strong mindset, build the technical base" {
		t.Errorf("Headline = %q", note.Headline)
	}
	if len(note.FocusAreas) != 2 || note.FocusAreas[1] != "Networking basics" {
		t.Errorf("FocusAreas = %q", note.FocusAreas)
	}
	if len(note.FirstWeek) != 2 {
		t.Errorf("FirstWeek = %q", note.FirstWeek)
	}
}

func TestService_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validNote()})
	svc := NewService(mock, DefaultConfig(), nil)
	in := sampleInput()

	if _, err := svc.Generate(context.Background(), in); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	req := mock.Calls()[0]
	if req.Schema != NoteSchema {
		t.Error("request does not use NoteSchema")
	}
	if req.MaxTokens != DefaultConfig().MaxTokens {
		t.Errorf("MaxTokens = %d", req.MaxTokens)
	}
	msg := req.Messages[0].Content
	for _, want := range []string{
		"Recommendation: " + string(in.Result.Recommendation),
		"Technical prerequisites",
		"- technical: 44",
		"Cognitive Readiness: 100",
		"Infrastructure Engineer",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q:\n%s", want, msg)
		}
	}
}

func TestService_InvalidOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"headline":"x"}`)})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Generate(context.Background(), sampleInput())
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestService_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	svc := NewService(mock, DefaultConfig(), nil)

	_, err := svc.Generate(context.Background(), sampleInput())
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Fatalf("err = %v, want ErrRateLimit", err)
	}
	if !strings.HasPrefix(err.Error(), "coach note:") {
		t.Errorf("err = %q, want coach note prefix", err)
	}
}

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestService_Timeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = 20 * time.Millisecond
	svc := NewService(slowProvider{}, cfg, nil)

	_, err := svc.Generate(context.Background(), sampleInput())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if svc.Model() != "slow" {
		t.Errorf("Model = %q", svc.Model())
	}
}
