package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging_Success(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"headline":"x","items":["y"]}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 4},
	})
	p := WithLogging(m, zap.New(core))

	ctx := WithPurpose(context.Background(), "coach-note")
	if _, err := p.Generate(ctx, Request{Schema: noteSchema()}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	all := logs.All()
	if len(all) != 1 {
		t.Fatalf("got %d entries, want 1", len(all))
	}
	e := all[0]
	if e.Level != zapcore.InfoLevel {
		t.Errorf("level = %s, want info", e.Level)
	}
	f := e.ContextMap()
	if f["purpose"] != "coach-note" || f["model"] != "mock" || f["schema"] != "test-note" {
		t.Errorf("fields = %v", f)
	}
	if f["input_tokens"] != int64(12) || f["success"] != true {
		t.Errorf("fields = %v", f)
	}
}

func TestLogging_Failure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	m := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(m, zap.New(core))

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}
	e := logs.All()[0]
	if e.Level != zapcore.WarnLevel {
		t.Errorf("level = %s, want warn", e.Level)
	}
	if e.ContextMap()["error"] != "boom" || e.ContextMap()["success"] != false {
		t.Errorf("fields = %v", e.ContextMap())
	}
}

func TestLogging_NilLogger(t *testing.T) {
	p := WithLogging(NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)}), nil)
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("ModelID = %q", p.ModelID())
	}
}
