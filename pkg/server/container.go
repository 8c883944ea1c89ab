package server

import (
	"context"
	"fmt"

	"entries-api/internal/adapters/storage"
	"entries-api/internal/config"
	"entries-api/internal/handlers"
	"entries-api/internal/logging"

	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies. It is built once per
// process and shared read-only by concurrent invocations
type Container struct {
	Config      *config.Config
	Logger      *logrus.Logger
	Store       storage.EntryStore
	SaveHandler *handlers.SaveHandler
	GetHandler  *handlers.GetHandler
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewFactory(logger).Create(ctx, &storage.StorageConfig{
		Type:      cfg.Storage.Backend,
		TableName: cfg.Storage.TableName,
		Region:    cfg.Storage.Region,
		Endpoint:  cfg.Storage.Endpoint,
		Path:      cfg.Storage.SQLitePath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create entry store: %w", err)
	}

	return &Container{
		Config:      cfg,
		Logger:      logger,
		Store:       store,
		SaveHandler: handlers.NewSaveHandler(store, logger),
		GetHandler:  handlers.NewGetHandler(store, logger),
	}, nil
}

// RouterConfig returns the handlers wired for the HTTP router
func (c *Container) RouterConfig() *handlers.RouterConfig {
	return &handlers.RouterConfig{
		SaveHandler: c.SaveHandler,
		GetHandler:  c.GetHandler,
	}
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.Store != nil {
		if err := c.Store.Close(); err != nil {
			return fmt.Errorf("failed to close entry store: %w", err)
		}
	}
	return nil
}
