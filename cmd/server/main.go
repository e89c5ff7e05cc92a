package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	"github.com/gaurav-code098/Neo-Translate/internal/config"
	"github.com/gaurav-code098/Neo-Translate/internal/handler"
	"github.com/gaurav-code098/Neo-Translate/internal/infrastructure/ai"
	"github.com/gaurav-code098/Neo-Translate/internal/infrastructure/blob"
	infradb "github.com/gaurav-code098/Neo-Translate/internal/infrastructure/database"
	"github.com/gaurav-code098/Neo-Translate/internal/router"
	"github.com/gaurav-code098/Neo-Translate/internal/usecase"
	dbpkg "github.com/gaurav-code098/Neo-Translate/pkg/database"
	"github.com/gaurav-code098/Neo-Translate/pkg/logger"
)

//	@title			Neo-Translate API Server
//	@version		0.1.0
//	@description	Real-time bilingual doctor/patient consultation API providing translated chat, audio transcription, and clinical summaries

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@host		localhost:8080
//	@BasePath	/api/v1

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "neo-translate-server",
	Short: "Neo-Translate API server for bilingual medical consultations",
	Long: `Neo-Translate API Server is a high-performance HTTP API server built with Hertz framework.
It translates every doctor/patient message across the language barrier, keeps the
consultation log, and generates clinical summaries on demand.`,
	Version: version,
	Run:     runServer,
}

func init() {
	// Define flags
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "configs/config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("config loaded successfully", "config_file", cfgFile)
	slog.Info("Neo-Translate API Server starting...",
		"version", version,
		"config", cfgFile,
	)

	// Setup Hertz to use slog
	hertzLogger := logger.NewHertzSlogAdapter(slog.Default())
	hlog.SetLogger(hertzLogger)
	hlog.SetLevel(hlog.LevelDebug)

	slog.Debug("hertz logger configured to use slog")

	// Initialize the conversation database
	db, err := dbpkg.Open(cfg.Database, slog.Default())
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Initialize audio blob storage
	audioStore, err := blob.NewAudioStore(cfg.Storage.AudioDir)
	if err != nil {
		slog.Error("failed to initialize audio storage", "error", err)
		os.Exit(1)
	}

	// Initialize the translation provider gateway
	gateway := ai.NewGateway(cfg.AI, slog.Default())

	// Initialize usecases
	turnRepo := infradb.NewTurnRepository(db)
	sessionUsecase := usecase.NewSessionUsecase(turnRepo, audioStore, cfg.Session.DefaultPatientLanguage, slog.Default())
	chatUsecase := usecase.NewChatUsecase(gateway, turnRepo, audioStore, sessionUsecase, slog.Default())
	summaryUsecase := usecase.NewSummaryUsecase(gateway, turnRepo, slog.Default())

	// Initialize handlers
	chatHandler := handler.NewChatHandler(chatUsecase, slog.Default())
	consultationHandler := handler.NewConsultationHandler(sessionUsecase, summaryUsecase, slog.Default())
	healthHandler := handler.NewHealthHandler(db, cfg.Storage.AudioDir)

	slog.Info("handlers initialized",
		"patient_language", sessionUsecase.PatientLanguage(),
		"chat_model", cfg.AI.ChatModel,
		"transcription_model", cfg.AI.TranscriptionModel,
	)

	// Create Hertz server with performance optimization. server.New keeps
	// recovery out of the built-in chain; middleware.Recovery handles panics.
	h := server.New(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.GetReadTimeout()),
		server.WithWriteTimeout(cfg.GetWriteTimeout()),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	// Setup routes
	router.Setup(h, chatHandler, consultationHandler, healthHandler, cfg.Storage.AudioDir)

	// Start server
	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	// Graceful shutdown
	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	// Close database connection
	if err := dbpkg.Close(db, slog.Default()); err != nil {
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
