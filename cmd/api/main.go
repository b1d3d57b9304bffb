package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bizgrow/bizgrow-backend/api/routes"
	cartsvc "github.com/bizgrow/bizgrow-backend/internal/cart"
	cataloguesvc "github.com/bizgrow/bizgrow-backend/internal/catalogue"
	checkoutsvc "github.com/bizgrow/bizgrow-backend/internal/checkout"
	ordersvc "github.com/bizgrow/bizgrow-backend/internal/orders"
	productrepo "github.com/bizgrow/bizgrow-backend/internal/products"
	promotionrepo "github.com/bizgrow/bizgrow-backend/internal/promotions"
	storesvc "github.com/bizgrow/bizgrow-backend/internal/stores"
	"github.com/bizgrow/bizgrow-backend/pkg/config"
	"github.com/bizgrow/bizgrow-backend/pkg/db"
	"github.com/bizgrow/bizgrow-backend/pkg/logger"
	"github.com/bizgrow/bizgrow-backend/pkg/metrics"
	"github.com/bizgrow/bizgrow-backend/pkg/migrate"
	"github.com/bizgrow/bizgrow-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	storeRepo := storesvc.NewRepository(dbClient.DB())
	productRepo := productrepo.NewRepository(dbClient.DB())
	promotionRepo := promotionrepo.NewRepository(dbClient.DB())
	orderRepo := ordersvc.NewRepository(dbClient.DB())

	storeService, err := storesvc.NewService(storeRepo)
	requireService(logg, "stores", err)

	catalogueService, err := cataloguesvc.NewService(storeService, productRepo, promotionRepo)
	requireService(logg, "catalogue", err)

	cartRepo, err := cartsvc.NewRepository(redisClient, cfg.Cart.TTL)
	requireService(logg, "cart repository", err)

	cartService, err := cartsvc.NewService(cartRepo, productRepo)
	requireService(logg, "cart", err)

	checkoutService, err := checkoutsvc.NewService(storeRepo, cartService, orderRepo, redisClient, logg)
	requireService(logg, "checkout", err)

	orderService, err := ordersvc.NewService(orderRepo)
	requireService(logg, "orders", err)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			DBPinger:    dbClient,
			CachePinger: redisClient,
			Idempotency: redisClient,
			HTTPMetrics: httpMetrics,
			MetricsHTTP: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
			Catalogue:   catalogueService,
			Cart:        cartService,
			Checkout:    checkoutService,
			Orders:      orderService,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}

func requireService(logg *logger.Logger, name string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), "failed to create "+name+" service", err)
	os.Exit(1)
}
