package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-insights/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	logger           *zap.Logger
	summarizeHandler *Summarize
	meetingHandler   *Meeting
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, logger *zap.Logger, summarizeHandler *Summarize, meetingHandler *Meeting) *Router {
	return &Router{
		cfg:              cfg,
		logger:           logger,
		summarizeHandler: summarizeHandler,
		meetingHandler:   meetingHandler,
	}
}

// Setup configures middleware and all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.HTTPErrorHandler = HTTPErrorHandler(rt.logger)
	rt.setupMiddleware(e)

	// Health check endpoint
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	rt.setupMeetingRoutes(api)
}

func (rt *Router) setupMiddleware(e *echo.Echo) {
	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// The browser extension calls from chrome-extension://<id>
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     rt.cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodPost, http.MethodGet, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	e.Use(middleware.BodyLimit(rt.cfg.Server.MaxAudioSize))
}

// setupMeetingRoutes configures the extension-facing routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	g.POST("/summarize", rt.summarizeHandler.Summarize)

	meetings := g.Group("/meetings")
	meetings.POST("", rt.meetingHandler.ListMeetings)
	meetings.POST("/getMeeting", rt.meetingHandler.GetMeeting)
	meetings.POST("/deleteMeeting", rt.meetingHandler.DeleteMeeting)
	meetings.POST("/export", rt.meetingHandler.ExportMeetings)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
