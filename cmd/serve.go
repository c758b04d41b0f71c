package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/mathcoach/internal/answer"
	"github.com/abhisek/mathcoach/internal/config"
	"github.com/abhisek/mathcoach/internal/feedback"
	"github.com/abhisek/mathcoach/internal/llm"
	"github.com/abhisek/mathcoach/internal/metrics"
	"github.com/abhisek/mathcoach/internal/problemgen"
	"github.com/abhisek/mathcoach/internal/server"
	"github.com/abhisek/mathcoach/internal/store"
	"github.com/abhisek/mathcoach/internal/tutor"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Local development convenience; a missing .env is not an error.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer st.Close()

	llmCfg := resolveLLMConfig()
	if err := llmCfg.Validate(); err != nil {
		return fmt.Errorf("LLM backend not configured: %w", err)
	}

	m := metrics.New()
	registry := llm.NewRegistry(llmCfg, st.Events(), m)

	svc := tutor.New(
		problemgen.New(registry, problemgen.DefaultConfig()),
		feedback.New(registry),
		answer.NewResolver(registry, m),
		st.Sessions(),
		m,
		logger,
	)

	srv := server.New(svc, m, logger, cfg.CORSOrigins)

	httpSrv := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", cfg.Addr), zap.String("db", dbPath))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// resolveLLMConfig reads MATHCOACH_* backend settings, falling back to
// probing the standard provider key env vars.
func resolveLLMConfig() llm.Config {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() == nil {
		return cfg
	}
	if discovered, ok := llm.DiscoverConfig(); ok {
		return discovered
	}
	return cfg
}

func buildLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level %q: %w", level, err)
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}
