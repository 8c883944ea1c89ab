package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entries-api/internal/models"

	"github.com/sirupsen/logrus"
)

const (
	putItemQuery = `INSERT OR REPLACE INTO items (table_name, id, item, updated_at) VALUES (?, ?, ?, ?)`
	getItemQuery = `SELECT item FROM items WHERE table_name = ? AND id = ?`
)

// SQLiteStore keeps entries in the items table of a SQLite database, one
// JSON document per (table_name, id) key. It stands in for DynamoDB when
// running offline
type SQLiteStore struct {
	db        *sql.DB
	tableName string
	logger    logrus.FieldLogger
}

// NewSQLiteStore creates a store over an already migrated database
func NewSQLiteStore(db *sql.DB, tableName string, logger logrus.FieldLogger) *SQLiteStore {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &SQLiteStore{
		db:        db,
		tableName: tableName,
		logger:    logger.WithField("table", tableName),
	}
}

// Save implements Saver.Save
func (s *SQLiteStore) Save(ctx context.Context, id string) error {
	item, err := json.Marshal(models.NewEntry(id))
	if err != nil {
		return NewBackendError("Save", id, fmt.Errorf("failed to marshal entry: %w", err))
	}

	if _, err := s.db.ExecContext(ctx, putItemQuery, s.tableName, id, string(item), time.Now().UTC()); err != nil {
		return NewBackendError("Save", id, err)
	}

	s.logger.WithField("entry_id", id).Debug("Entry written")
	return nil
}

// Get implements Getter.Get
func (s *SQLiteStore) Get(ctx context.Context, id string) (*models.Entry, error) {
	var item string
	err := s.db.QueryRowContext(ctx, getItemQuery, s.tableName, id).Scan(&item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NewNotFoundError("Get", id)
	}
	if err != nil {
		return nil, NewBackendError("Get", id, err)
	}

	var entry models.Entry
	if err := json.Unmarshal([]byte(item), &entry); err != nil {
		return nil, NewBackendError("Get", id, fmt.Errorf("%w: %v", ErrInvalidItem, err))
	}

	return &entry, nil
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
