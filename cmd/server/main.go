package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"aivault-portal/internal/adapters/primary/http/handlers"
	"aivault-portal/internal/adapters/primary/http/middleware"
	"aivault-portal/internal/adapters/secondary/cache"
	"aivault-portal/internal/adapters/secondary/platform"
	"aivault-portal/internal/adapters/secondary/session"
	"aivault-portal/internal/config"
	"aivault-portal/internal/core/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	store, err := cache.New(context.Background(), &cfg.Cache)
	if err != nil {
		log.Fatalf("create response cache: %v", err)
	}
	log.WithField("backend", cfg.Cache.Backend).Info("response cache ready")

	// ============================================================================
	// Hexagonal Architecture Wiring
	// ============================================================================

	// Secondary Adapter (platform API behind the response cache)
	client := platform.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store)
	log.WithField("api_base", client.BaseURL()).Info("platform client initialized")

	validator, err := services.NewJSONLDValidator()
	if err != nil {
		log.Fatalf("create jsonld validator: %v", err)
	}

	// Core Services (Application Layer)
	pageSvc := services.NewPageService(client, validator)
	accounts := func() *services.AccountService {
		return services.NewAccountService(client, session.NewEphemeralStore())
	}

	// Primary Adapter (HTTP Handlers)
	h := handlers.New(client, pageSvc, accounts)

	// Setup router
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.CORS(cfg.Server.CORSAllowedOrigins),
		gin.Recovery(),
	)
	h.RegisterRoutes(router.Group(""))

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":         "ok",
			"api_base":       client.BaseURL(),
			"cache_backend":  cfg.Cache.Backend,
			"cached_entries": client.CacheLen(c.Request.Context()),
		})
	})

	if cfg.Metrics.Enabled {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting gateway on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down gateway...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("gateway stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
