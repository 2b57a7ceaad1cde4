// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tattooer/internal/delivery/http/middleware"
	"tattooer/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CalendarHandler *handler.CalendarHandler
	AccountHandler  *handler.AccountHandler
	SessionHandler  *handler.SessionHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	calendarHandler *handler.CalendarHandler
	accountHandler  *handler.AccountHandler
	sessionHandler  *handler.SessionHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		calendarHandler: params.CalendarHandler,
		accountHandler:  params.AccountHandler,
		sessionHandler:  params.SessionHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Local account cache routes; local by nature, no token required.
	accountGroup := e.Group("/accounts")
	{
		accountGroup.GET("", r.accountHandler.ListAccounts)
		accountGroup.POST("", r.accountHandler.SaveAccount)
		accountGroup.DELETE("", r.accountHandler.ClearAccounts)
		accountGroup.GET("/current", r.accountHandler.CurrentAccount)
		accountGroup.GET("/:email", r.accountHandler.GetAccount)
		accountGroup.PUT("/:email/touch", r.accountHandler.TouchAccount)
		accountGroup.DELETE("/:email", r.accountHandler.RemoveAccount)
	}

	// Artist routes that require authentication
	artistGroup := e.Group("/artists")
	artistGroup.Use(r.authMiddleware.Authenticate)
	{
		artistGroup.GET("/:id/calendar", r.calendarHandler.GetCalendar)
		artistGroup.POST("/:id/calendar/device-access", r.calendarHandler.RequestDeviceAccess)
	}

	// Session routes that require authentication
	sessionGroup := e.Group("/sessions")
	sessionGroup.Use(r.authMiddleware.Authenticate)
	{
		sessionGroup.GET("/:id/checkin-code", r.sessionHandler.CheckInCode)
	}
}
