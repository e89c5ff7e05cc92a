package router

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/gaurav-code098/Neo-Translate/internal/handler"
	"github.com/gaurav-code098/Neo-Translate/internal/middleware"
)

// Setup sets up all routes
func Setup(
	h *server.Hertz,
	chatHandler *handler.ChatHandler,
	consultationHandler *handler.ConsultationHandler,
	healthHandler *handler.HealthHandler,
	audioDir string,
) {
	// Global middleware
	h.Use(middleware.Recovery())
	h.Use(middleware.Logger())
	h.Use(middleware.CORS())

	// Health check routes
	h.GET("/ping", healthHandler.Ping)
	h.GET("/health/ready", healthHandler.Readiness)
	h.GET("/health/live", healthHandler.Liveness)

	// Stored audio clips, referenced by turn original_audio_url
	h.StaticFS("/static/audio", &app.FS{Root: audioDir, PathRewrite: app.NewPathSlashesStripper(2)})

	// Session boundary: clients call this on attach to start fresh
	h.DELETE("/session", consultationHandler.Clear)

	// API v1 routes
	apiV1 := h.Group("/api/v1")
	{
		chat := apiV1.Group("/chat")
		{
			chat.POST("/text", chatHandler.SubmitText)
			chat.POST("/audio", chatHandler.SubmitAudio)
		}

		apiV1.GET("/history", chatHandler.History)
		apiV1.GET("/summary", consultationHandler.Summarize)

		config := apiV1.Group("/config")
		{
			config.GET("/language", consultationHandler.GetLanguage)
			config.PUT("/language", consultationHandler.SetLanguage)
		}
	}
}
