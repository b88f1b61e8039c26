package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"roastery-admin/internal/config"
	"roastery-admin/internal/db"
	"roastery-admin/internal/email"
	"roastery-admin/internal/httpserver"
	adminrepo "roastery-admin/internal/repository/admin"
	customerrepo "roastery-admin/internal/repository/customer"
	orderrepo "roastery-admin/internal/repository/order"
	productrepo "roastery-admin/internal/repository/product"
	webhookrepo "roastery-admin/internal/repository/webhook"
	adminsvc "roastery-admin/internal/service/admin"
	dashboardsvc "roastery-admin/internal/service/dashboard"
	ordersvc "roastery-admin/internal/service/order"
	reconcilesvc "roastery-admin/internal/service/reconcile"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	adminRepo := adminrepo.NewPostgres(dbpool, logger)
	webhookRepo := webhookrepo.NewPostgres(dbpool, logger)

	reconcileService := reconcilesvc.New(customerRepo, logger)
	notifier := email.NewNotifier(orderRepo, customerRepo, email.LogSender{Logger: logger, From: cfg.EmailFrom}, logger)
	orderService := ordersvc.New(orderRepo, customerRepo, reconcileService, notifier, nil, logger)
	dashboardService := dashboardsvc.New(orderRepo, customerRepo, productRepo, logger)
	adminService := adminsvc.New(adminRepo)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		OrderSvc:     orderService,
		DashboardSvc: dashboardService,
		AdminSvc:     adminService,
		WebhookRepo:  webhookRepo,
	}, cfg.CORSOrigins)

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
