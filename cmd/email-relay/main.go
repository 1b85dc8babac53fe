package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"glowbook/internal/common/config"
	"glowbook/internal/common/logger"
	"glowbook/internal/relay"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	zlog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zlog.Sync()
	log := logger.NewZapAdapter(zlog)

	if cfg.Relay.Secret == "" {
		zlog.Fatal("relay.secret is required")
	}
	if cfg.Relay.FromEmail == "" {
		zlog.Fatal("relay.from_email is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sender, err := relay.NewSESSender(ctx, cfg.AWS.Region, cfg.Relay.FromEmail)
	if err != nil {
		zlog.Fatal("failed to initialize ses", zap.Error(err))
	}

	redisClient := relay.NewRedisClient(cfg.Redis)
	defer redisClient.Close()
	limiter := relay.NewRateLimiter(redisClient,
		cfg.Relay.RateLimit.PerRecipient,
		config.GetDuration(cfg.Relay.RateLimit.Window))

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	relay.NewHandler(sender, limiter, cfg.Relay.Secret, log).Register(router)

	server := &http.Server{
		Addr:    cfg.Relay.Listen,
		Handler: router,
	}

	go func() {
		log.Info("email relay listening", map[string]interface{}{"addr": cfg.Relay.Listen})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zlog.Error("graceful shutdown failed", zap.Error(err))
	}
}
