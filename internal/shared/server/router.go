// Package server assembles the Gin engine, middleware, and route wiring.
package server

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobpilot-backend/internal/analyses"
	"jobpilot-backend/internal/extract"
	"jobpilot-backend/internal/llm"
	openai "jobpilot-backend/internal/llm/openai"
	"jobpilot-backend/internal/scrape"
	"jobpilot-backend/internal/shared/config"
	"jobpilot-backend/internal/shared/metrics"
	"jobpilot-backend/internal/shared/server/middleware"
	"jobpilot-backend/internal/shared/server/respond"
	"jobpilot-backend/internal/shared/storage/db"
	"jobpilot-backend/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, opts)
		if err != nil {
			telemetry.Warn("router.db_unavailable", map[string]any{"error": err.Error()})
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				telemetry.Warn("router.migrations_failed", map[string]any{"error": err.Error()})
				dbConn.Close()
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var analysisRepo analyses.Repo
	if sqlDB != nil {
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		analysisRepo = analyses.NewMemoryRepo()
	}

	var llmClient llm.Client = llm.PlaceholderClient{}
	if cfg.OpenAIAPIKey != "" {
		client, err := openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
		if err != nil {
			telemetry.Warn("router.openai_unavailable", map[string]any{"error": err.Error()})
		} else {
			llmClient = client
		}
	}

	extractor := extract.NewExtractor(cfg.OCRLanguages)
	scraper := scrape.NewExtractor()

	analysisSvc := analyses.NewService(analysisRepo, extractor, scraper, llmClient)
	analysisHandler := analyses.NewHandler(analysisSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	analysisHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
