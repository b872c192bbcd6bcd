package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bhavyasrideva22/career-fit-quiz/internal/catalog"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/coach"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/config"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/llm"
	"github.com/bhavyasrideva22/career-fit-quiz/internal/logging"
)

// env is what every command needs: configuration, a logger and the catalog.
type env struct {
	cfg    config.Config
	logger *zap.Logger
	cat    *catalog.Catalog
}

// setup loads configuration, applies flag overrides and opens the log
// and catalog. Callers must call close.
func setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogFile = p
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.Load(cfg.CatalogPath)
		if err != nil {
			_ = logger.Sync()
			return nil, fmt.Errorf("load catalog: %w", err)
		}
	}
	logger.Debug("configured",
		zap.String("command", cmd.Name()),
		zap.String("catalog", cfg.CatalogPath),
		zap.Int("questions", cat.Len()),
		zap.String("llm_provider", cfg.LLM.Provider),
	)

	return &env{cfg: cfg, logger: logger, cat: cat}, nil
}

func (e *env) close() {
	_ = e.logger.Sync()
}

// coach builds the coaching service. It returns nil and no error when no
// LLM provider is configured.
func (e *env) coach(ctx context.Context) (*coach.Service, error) {
	if !e.cfg.LLM.Enabled() {
		return nil, nil
	}
	provider, err := llm.NewProvider(ctx, e.cfg.LLM, e.logger)
	if err != nil {
		return nil, err
	}
	cc := coach.DefaultConfig()
	cc.Timeout = e.cfg.LLM.Timeout
	return coach.NewService(provider, cc, e.logger), nil
}
