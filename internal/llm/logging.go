package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// LoggingProvider logs one structured entry per Generate call.
type LoggingProvider struct {
	inner  Provider
	logger *zap.Logger
}

// WithLogging wraps p. A nil logger yields a no-op logger.
func WithLogging(p Provider, logger *zap.Logger) *LoggingProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	fields := []zap.Field{
		zap.String("purpose", PurposeFrom(ctx)),
		zap.String("model", l.inner.ModelID()),
		zap.Duration("latency", time.Since(start)),
		zap.Bool("success", err == nil),
	}
	if req.Schema != nil {
		fields = append(fields, zap.String("schema", req.Schema.Name))
	}
	if resp != nil {
		fields = append(fields,
			zap.String("served_by", resp.Model),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
		)
	}

	if err != nil {
		l.logger.Warn("llm request", append(fields, zap.Error(err))...)
	} else {
		l.logger.Info("llm request", fields...)
	}
	return resp, err
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }
