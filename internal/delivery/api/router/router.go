// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"familytree/config"
	"familytree/internal/delivery/api/middleware"
	"familytree/internal/delivery/api/router/handler"
	"familytree/internal/domain/entity"
	"familytree/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PeopleHandler     *handler.PeopleHandler
	AdminHandler      *handler.AdminHandler
	SuggestionHandler *handler.SuggestionHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Registry `optional:"true"`
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	peopleHandler     *handler.PeopleHandler
	adminHandler      *handler.AdminHandler
	suggestionHandler *handler.SuggestionHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Registry
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		peopleHandler:     params.PeopleHandler,
		adminHandler:      params.AdminHandler,
		suggestionHandler: params.SuggestionHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public routes
	people := e.Group("/people")
	{
		people.POST("/register", r.peopleHandler.Register)
		people.GET("", r.peopleHandler.Directory)
		people.GET("/:id/family", r.peopleHandler.Family)
		people.GET("/:id/qrcode", r.peopleHandler.QRCode)
	}

	// Console routes, every one requires an administrator token
	admin := e.Group("/admin")
	admin.Use(r.authMiddleware.Authenticate)
	superAdminOnly := r.authMiddleware.RequireRole(entity.RoleSuperAdmin)
	{
		admin.POST("/people", r.adminHandler.Create)
		admin.GET("/people", r.adminHandler.List)
		admin.POST("/people/import", r.adminHandler.Import, superAdminOnly)
		admin.POST("/people/bulk/deceased", r.adminHandler.BulkDeceased)
		admin.POST("/people/bulk/approval", r.adminHandler.BulkApproval)
		admin.GET("/people/:id", r.adminHandler.Get)
		admin.PATCH("/people/:id", r.adminHandler.Update)
		admin.DELETE("/people/:id", r.adminHandler.Purge)
		admin.POST("/people/:id/approve", r.adminHandler.Approve)
		admin.POST("/people/:id/unapprove", r.adminHandler.Unapprove)
		admin.POST("/people/:id/delete", r.adminHandler.SoftDelete)
		admin.POST("/people/:id/recover", r.adminHandler.Recover)
		admin.PUT("/people/:id/relations/:slot", r.adminHandler.LinkRelation)
		admin.DELETE("/people/:id/relations/:slot", r.adminHandler.ClearRelation)
		admin.GET("/people/:id/candidates/:slot", r.adminHandler.Candidates)
		admin.GET("/people/:id/family", r.adminHandler.Family)
		admin.POST("/people/:id/suggestions", r.suggestionHandler.Suggest)
		admin.POST("/people/:id/suggestions/accept", r.suggestionHandler.Accept)
		admin.GET("/dustbin", r.adminHandler.Dustbin)
		admin.GET("/integrity", r.adminHandler.Integrity, superAdminOnly)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.metrics == nil || r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}
	path := r.config.Metrics.Path
	if path == "" {
		path = "/metrics"
	}
	e.GET(path, echo.WrapHandler(r.metrics.Handler()))
}
