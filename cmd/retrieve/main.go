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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vibefolio/backend/handlers"
	"github.com/vibefolio/backend/internal/about"
	"github.com/vibefolio/backend/internal/config"
	"github.com/vibefolio/backend/internal/content"
	"github.com/vibefolio/backend/internal/database"
	"github.com/vibefolio/backend/pkg/logger"
	"github.com/vibefolio/backend/pkg/metrics"
	"github.com/vibefolio/backend/pkg/middleware"
)

func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.Load("5000", config.RetrieveOrigins)
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()
	client := mustConnect(ctx, cfg)
	db := client.Database(cfg.MongoDB.Database)

	contentRepo := content.NewMongoRepository(db)
	aboutSvc := about.NewService(about.NewMongoRepository(db.Collection("about")))

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics("retrieve"))

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterRetrieveRoutes(r, contentRepo, aboutSvc, cfg.IsDevelopment())

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server failed: %v", err)
		}
	}()
	logger.Infof("retrieve service listening on %s", addr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warnf("server shutdown: %v", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		logger.Warnf("mongo disconnect: %v", err)
	}
	logger.Infof("retrieve service stopped")
}

// mustConnect retries the initial MongoDB connection to tolerate startup
// races, then gives up: without the store neither service can do anything.
func mustConnect(ctx context.Context, cfg *config.Config) *mongo.Client {
	const maxAttempts = 5
	backoff := time.Second
	for attempt := 1; ; attempt++ {
		client, err := database.Connect(ctx, cfg.MongoDB)
		if err == nil {
			logger.Infof("connected to MongoDB database %q", cfg.MongoDB.Database)
			return client
		}
		if attempt == maxAttempts {
			logger.Fatalf("could not connect to MongoDB after %d attempts: %v", maxAttempts, err)
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, err)
		time.Sleep(backoff)
		backoff *= 2
	}
}
