package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/meetinsight-team/meeting-insight/pkg/validator"

	"github.com/meetinsight-team/meeting-insight/internal/adapter/handler"
	"github.com/meetinsight-team/meeting-insight/internal/infrastructure/external/assemblyai"
	"github.com/meetinsight-team/meeting-insight/internal/infrastructure/external/groq"
	"github.com/meetinsight-team/meeting-insight/internal/usecase/insight"
	"github.com/meetinsight-team/meeting-insight/internal/usecase/knowledge"
	"github.com/meetinsight-team/meeting-insight/internal/usecase/pipeline"
	"github.com/meetinsight-team/meeting-insight/pkg/config"
)

func main() {
	// Load configuration. A missing speech credential fails here, once,
	// instead of on the first request.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize external clients
	log.Println("🤖 Initializing AI components...")
	asmClient := assemblyai.NewClient(&cfg.Assembly, logger)
	groqClient := groq.NewClient(&cfg.Groq)

	// Initialize knowledge base (immutable for the process lifetime)
	kb := knowledge.New(knowledge.DefaultEntries())

	// Initialize services
	insightService := insight.NewService(groqClient, &cfg.Insight, logger)
	pipelineService := pipeline.NewService(asmClient, insightService, kb, logger)

	// Initialize handlers and routes
	log.Println("🛣️  Setting up routes...")
	uploadHandler := handler.NewUpload(pipelineService, logger)
	router := handler.NewRouter(cfg, uploadHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
