package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gavraq/lifetrack/internal/pkg/database"
	"github.com/gavraq/lifetrack/internal/pkg/health"
	"github.com/gavraq/lifetrack/internal/pkg/middleware"
	"github.com/gavraq/lifetrack/internal/pkg/models"
	natspkg "github.com/gavraq/lifetrack/internal/pkg/nats"
	"github.com/gavraq/lifetrack/services/activity"
	httpHandler "github.com/gavraq/lifetrack/services/activity/handler/http"
)

// HTTPHandler combines the HTTP and NATS handlers for the activity service
type HTTPHandler struct {
	activityHTTP *httpHandler.ActivityHandler
	activityNATS *NatsHandler
	cfg          *models.Config
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(
	activityUC activity.ActivityUC,
	natsClient *natspkg.Client,
	cfg *models.Config,
) *HTTPHandler {
	return &HTTPHandler{
		activityHTTP: httpHandler.NewActivityHandler(activityUC),
		activityNATS: NewNatsHandler(activityUC, natsClient),
		cfg:          cfg,
	}
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo, redisClient *database.RedisClient, pgClient *database.PostgresClient) {
	e.GET("/health", health.NewPingHandler(h.cfg.App.Name))
	e.GET("/readiness", health.NewReadinessHandler(map[string]health.Checker{
		"redis":    redisClient.Ping,
		"postgres": pgClient.Ping,
	}))

	// Internal routes for service-to-service communication (API key required)
	internal := e.Group("/internal", middleware.ValidateAPIKey("tracker-service", "assistant-service", "report-service"))

	// ingestion is the hot path, keep one tracker from flooding it
	ingestLimiter := middleware.IPRateLimiter(120, time.Minute, redisClient.GetClient())

	internal.POST("/users/:id/pings", h.activityHTTP.IngestPings, ingestLimiter)
	internal.POST("/users/:id/detect", h.activityHTTP.DetectActivities)
	internal.GET("/users/:id/sessions", h.activityHTTP.GetSessions)

	// Operator routes (JWT required)
	api := e.Group("/api", middleware.JWTAuthMiddleware(h.cfg.JWT))
	api.GET("/users/:id/sessions", h.activityHTTP.GetSessions)
}

// InitNATSConsumers initializes all NATS consumers
func (h *HTTPHandler) InitNATSConsumers() error {
	return h.activityNATS.InitConsumers()
}

// DrainNATSConsumers stops all NATS consumers
func (h *HTTPHandler) DrainNATSConsumers() {
	h.activityNATS.Drain()
}
