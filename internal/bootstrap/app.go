package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/analyses"
	"ats-backend/internal/llm"
	"ats-backend/internal/llm/gemini"
	"ats-backend/internal/llm/openai"
	"ats-backend/internal/report"
	"ats-backend/internal/shared/config"
	"ats-backend/internal/shared/server"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	LLM             llm.Client
	Store           *analyses.MemoryStore
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
	ReportHandler   *report.Handler
}

// Option overrides a dependency, mainly for tests.
type Option func(*App)

// WithLLM replaces the model client.
func WithLLM(client llm.Client) Option {
	return func(app *App) {
		app.LLM = client
	}
}

// Build wires dependencies and the router.
func Build(ctx context.Context, cfg config.Config, opts ...Option) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	app := &App{
		Config: cfg,
		Store:  analyses.NewMemoryStore(cfg.ResultTTL, nil),
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.LLM == nil {
		client, err := buildLLM(ctx, cfg)
		if err != nil {
			return nil, err
		}
		app.LLM = client
	}

	app.AnalysesService = &analyses.Service{
		LLM:           app.LLM,
		Store:         app.Store,
		Provider:      cfg.LLMProvider,
		Model:         cfg.LLMModel,
		PromptVersion: cfg.PromptVersion,
		Timeout:       cfg.LLMTimeout,
	}
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService, cfg.MaxUploadBytes)
	app.ReportHandler = report.NewHandler(app.AnalysesService)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          app.Config,
		AnalysisHandler: app.AnalysisHandler,
		ReportHandler:   app.ReportHandler,
	})

	return app, nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "openai":
		return openai.NewClient(cfg.OpenAIAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	case "gemini":
		return gemini.New(ctx, cfg.GoogleAPIKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}
