package storage

import (
	"context"

	"entries-api/internal/models"
)

// Saver persists entries keyed by their identifier
type Saver interface {
	// Save writes an entry for id, unconditionally replacing any entry
	// already stored under the same key
	Save(ctx context.Context, id string) error
}

// Getter reads entries by their identifier
type Getter interface {
	// Get returns the entry stored under id. A missing item is reported
	// as a StorageError of kind KindNotFound
	Get(ctx context.Context, id string) (*models.Entry, error)
}

// EntryStore is implemented by backends that provide both capabilities
type EntryStore interface {
	Saver
	Getter

	// Close releases any resources held by the backend
	Close() error
}

// StorageConfig represents configuration for entry store backends
type StorageConfig struct {
	Type      string `json:"type" yaml:"type"`             // "dynamodb", "sqlite", "memory"
	TableName string `json:"table_name" yaml:"table_name"` // Table holding the entries
	Region    string `json:"region" yaml:"region"`         // For DynamoDB
	Endpoint  string `json:"endpoint" yaml:"endpoint"`     // Optional DynamoDB endpoint override
	Path      string `json:"path" yaml:"path"`             // For SQLite
}
