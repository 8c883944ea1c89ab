package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"entries-api/internal/config"
	"entries-api/internal/handlers"
	"entries-api/internal/middleware"
	"entries-api/pkg/server"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// bindFlags exposes the most common settings as flags; set flags win over
// environment variables
func bindFlags(fs *flag.FlagSet) error {
	fs.StringP("port", "p", "", "Port to listen on")
	fs.StringP("backend", "b", "", "Storage backend: dynamodb, sqlite or memory")
	fs.StringP("table", "t", "", "Table holding the entries")
	fs.String("log-level", "", "Log level")

	bindings := map[string]string{
		"PORT":            "port",
		"STORAGE_BACKEND": "backend",
		"TABLE_NAME":      "table",
		"LOG_LEVEL":       "log-level",
	}
	for key, name := range bindings {
		if err := viper.BindPFlag(key, fs.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

func newRouter(container *server.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(container.Logger))
	router.Use(middleware.RateLimiter(
		container.Config.RateLimit.RequestsPerSecond,
		container.Config.RateLimit.Burst,
		container.Logger,
	))

	handlers.SetupRoutes(router, container.RouterConfig())
	return router
}

func main() {
	if err := bindFlags(flag.CommandLine); err != nil {
		logrus.WithError(err).Fatal("Failed to bind flags")
	}
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	container, err := server.NewContainer(context.Background(), cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize container")
	}
	defer container.Close()

	logger := container.Logger

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(container),
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	logger.WithFields(logrus.Fields{
		"port":    cfg.Port,
		"backend": cfg.Storage.Backend,
		"table":   cfg.Storage.TableName,
		"mode":    config.GetDeploymentMode(),
	}).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
		return
	}

	logger.Info("Server exited")
}
