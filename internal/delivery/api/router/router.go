// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vradmin/config"
	"vradmin/internal/delivery/api/middleware"
	"vradmin/internal/delivery/api/router/handler"
	"vradmin/internal/delivery/push"
	"vradmin/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PurchaseHandler     *handler.PurchaseHandler
	NotificationHandler *handler.NotificationHandler
	StreamHandler       *handler.StreamHandler
	TrendHandler        *handler.TrendHandler
	TodoHandler         *handler.TodoHandler
	LogHandler          *handler.LogHandler
	DeviceHandler       *handler.DeviceHandler
	PushHandler         *push.Handler
	AuthMiddleware      *middleware.AuthMiddleware
	Metrics             *metrics.Registry `optional:"true"`
	Config              *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	purchaseHandler     *handler.PurchaseHandler
	notificationHandler *handler.NotificationHandler
	streamHandler       *handler.StreamHandler
	trendHandler        *handler.TrendHandler
	todoHandler         *handler.TodoHandler
	logHandler          *handler.LogHandler
	deviceHandler       *handler.DeviceHandler
	pushHandler         *push.Handler
	authMiddleware      *middleware.AuthMiddleware
	metrics             *metrics.Registry
	config              *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		purchaseHandler:     params.PurchaseHandler,
		notificationHandler: params.NotificationHandler,
		streamHandler:       params.StreamHandler,
		trendHandler:        params.TrendHandler,
		todoHandler:         params.TodoHandler,
		logHandler:          params.LogHandler,
		deviceHandler:       params.DeviceHandler,
		pushHandler:         params.PushHandler,
		authMiddleware:      params.AuthMiddleware,
		metrics:             params.Metrics,
		config:              params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil && r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	// Event bus pushes, relayed to the stream clients of this process
	e.POST("/events/push", r.pushHandler.HandlePush)

	// Everything below requires a staff bearer token
	auth := r.authMiddleware.Authenticate

	purchasesGroup := e.Group("/purchases", auth)
	{
		purchasesGroup.GET("", r.purchaseHandler.ListPurchases)
		purchasesGroup.GET("/all-info-by-date-range", r.purchaseHandler.GetStatusesByDateRange)
		purchasesGroup.GET("/:id/status", r.purchaseHandler.GetPurchaseStatus)
		purchasesGroup.GET("/:id/activation-qr", r.purchaseHandler.GetActivationQR)
		purchasesGroup.POST("/additional-info/:id", r.purchaseHandler.AddAdditionalInfo)
		purchasesGroup.PATCH("/:id", r.purchaseHandler.UpdatePurchase)
	}

	notificationsGroup := purchasesGroup.Group("/notifications")
	{
		notificationsGroup.GET("", r.notificationHandler.ListNotifications)
		notificationsGroup.GET("/count", r.notificationHandler.CountNotifications)
		notificationsGroup.GET("/stream", r.streamHandler.Stream)
		notificationsGroup.POST("/derive", r.notificationHandler.DeriveShippingMissing)
		notificationsGroup.PATCH("/mark-all-read", r.notificationHandler.MarkAllRead)
		notificationsGroup.PATCH("/:id/read", r.notificationHandler.MarkRead)
	}

	trendsGroup := e.Group("/trends", auth)
	{
		trendsGroup.GET("/purchases", r.trendHandler.PurchaseTrend)
		trendsGroup.GET("/activations", r.trendHandler.ActivationTrend)
	}

	e.GET("/dashboard/summary", r.trendHandler.Summary, auth)

	todosGroup := e.Group("/todos", auth)
	{
		todosGroup.GET("", r.todoHandler.ListTodos)
		todosGroup.POST("", r.todoHandler.CreateTodo)
		todosGroup.GET("/stats", r.todoHandler.Stats)
		todosGroup.GET("/:id", r.todoHandler.GetTodo)
		todosGroup.PATCH("/:id", r.todoHandler.UpdateTodo)
		todosGroup.DELETE("/:id", r.todoHandler.DeleteTodo)
	}

	e.GET("/admin-users", r.todoHandler.ListAdminUsers, auth)
	e.GET("/logs", r.logHandler.Search, auth)

	devicesGroup := e.Group("/api/v1/devices", auth)
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetAdminDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
