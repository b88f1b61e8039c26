package httpserver

import (
	"context"
	"log"

	"roastery-admin/internal/domain"
	adminsvc "roastery-admin/internal/service/admin"
	dashboardsvc "roastery-admin/internal/service/dashboard"
	ordersvc "roastery-admin/internal/service/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type orderService interface {
	Create(ctx context.Context, in ordersvc.CreateInput) (*ordersvc.CreateResult, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, trackingID string) error
}

type dashboardService interface {
	Refresh(ctx context.Context) dashboardsvc.Snapshot
}

type adminService interface {
	Create(ctx context.Context, in adminsvc.CreateInput) (*domain.Admin, error)
}

type webhookStore interface {
	Create(ctx context.Context, e domain.WebhookEvent) (*domain.WebhookEvent, error)
}

// Deps carries the services the router dispatches to.
type Deps struct {
	OrderSvc     orderService
	DashboardSvc dashboardService
	AdminSvc     adminService
	WebhookRepo  webhookStore
}

// buildRouter wires routes for the back-office API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, corsOrigins []string) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(corsOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = corsOrigins
		corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
		corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.POST("/orders", createOrderHandler(deps.OrderSvc))
		api.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
		api.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.OrderSvc))
		api.GET("/dashboard/refresh", dashboardRefreshHandler(deps.DashboardSvc))
		api.POST("/admins", createAdminHandler(deps.AdminSvc))
	}

	router.Any("/webhook/test", webhookTestHandler(deps.WebhookRepo, logger))

	return router
}
