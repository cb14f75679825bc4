package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pivot/backend/agent"
	"github.com/pivot/backend/catalog"
	"github.com/pivot/backend/config"
	_ "github.com/pivot/backend/docs"
	"github.com/pivot/backend/gemini"
	"github.com/pivot/backend/handlers"
	"github.com/pivot/backend/llm"
	"github.com/pivot/backend/logger"
	"github.com/pivot/backend/mcp"
	"github.com/pivot/backend/middleware"
	"github.com/pivot/backend/openai"
	"github.com/pivot/backend/storage"
)

// @title Pivot API
// @version 1.0
// @description Career-coaching backend: résumé text extraction, AI skill gap analysis, résumé structuring and export.

// @contact.name API Support

// @license.name MIT

// @host localhost:3001
// @BasePath /api

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger.Init(&logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	var model llm.ChatModel
	switch cfg.LLMProvider {
	case config.ProviderVertex:
		geminiClient, err := gemini.NewClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize Gemini client: %v", err)
		}
		defer geminiClient.Close()
		model = geminiClient
	default:
		model = openai.NewClient(cfg)
	}
	if err := llm.Check(model); err != nil {
		slog.Warn("LLM provider is not configured; analysis and parsing will fail until it is", "error", err)
	} else {
		slog.Info("LLM provider initialized", "provider", model.Provider())
	}

	store, err := storage.NewUploadStore(cfg.UploadDir, cfg.MaxUploadBytes())
	if err != nil {
		log.Fatalf("Failed to initialize upload store: %v", err)
	}

	positions, err := catalog.Load(cfg.PositionsFile)
	if err != nil {
		log.Fatalf("Failed to load position catalog: %v", err)
	}
	slog.Info("position catalog loaded", "positions", positions.Len())

	careerAgent := agent.NewCareerAgent(cfg, model, store)
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)

	router, err := newRouter(cfg, careerAgent, positions, limiter)
	if err != nil {
		log.Fatalf("Failed to build router: %v", err)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: time.Duration(cfg.HTTPTimeoutSeconds)*time.Second + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	cleanupDone := make(chan struct{})
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				limiter.Cleanup()
			case <-cleanupDone:
				return
			}
		}
	}()

	go func() {
		slog.Info("starting server", "port", cfg.Port, "provider", model.Provider())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	close(cleanupDone)

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	slog.Info("server exited gracefully")
}

// newRouter builds the gin engine with the middleware chain, swagger, the
// REST API and the MCP endpoint. Client IPs are taken from X-Forwarded-For
// only when the peer is one of cfg.TrustedProxies.
func newRouter(cfg *config.Config, careerAgent *agent.CareerAgent, positions *catalog.Catalog, limiter *middleware.RateLimiter) (*gin.Engine, error) {
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid TRUSTED_PROXIES: %w", err)
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader, "Mcp-Session-Id"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.Use(middleware.RateLimitWith(limiter))
	api.Use(middleware.MaxBodySize(cfg.MaxBodyBytes()))
	{
		handlers.RegisterRoutes(api, careerAgent, positions)

		// MCP endpoint for external AI agents
		mcp.NewServer(careerAgent, positions).RegisterRoutes(api)
	}
	return router, nil
}

// allowsAnyOrigin reports whether the wildcard origin is configured.
// Browsers refuse credentialed responses for "*".
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
