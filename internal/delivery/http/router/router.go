// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracker/config"
	"tracker/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	StatusHandler  *handler.StatusHandler
	TrackHandler   *handler.TrackHandler
	WebhookHandler *handler.WebhookHandler
	HealthHandler  *handler.HealthHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	statusHandler  *handler.StatusHandler
	trackHandler   *handler.TrackHandler
	webhookHandler *handler.WebhookHandler
	healthHandler  *handler.HealthHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		statusHandler:  params.StatusHandler,
		trackHandler:   params.TrackHandler,
		webhookHandler: params.WebhookHandler,
		healthHandler:  params.HealthHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Health)
	e.GET("/metrics", r.healthHandler.Metrics)

	api := e.Group("/api")
	{
		// Recruiter routes. No auth beyond network placement; matches the
		// trust model of the dashboard deployment.
		api.GET("/status/all", r.statusHandler.ListAll)
		api.GET("/status/:candidateId", r.statusHandler.Get)
		api.POST("/status/:candidateId", r.statusHandler.UpdateStage)

		// Candidate tracking link, token-scoped.
		api.GET("/track", r.trackHandler.Resolve)

		// Inbound ATS webhook, signature-scoped.
		api.POST("/webhooks/ats", r.webhookHandler.Ingest)

		// Dev-only issuance of tracking links.
		if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
			api.POST("/track/link", r.trackHandler.IssueLink)
		}
	}
}
