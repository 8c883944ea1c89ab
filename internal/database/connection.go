package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

// Open opens the SQLite database at path, creating its directory if needed,
// and applies pending migrations
func Open(path string, logger logrus.FieldLogger) (*sql.DB, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", buildSQLiteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite works best with a single connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := NewMigrationManager(db, logger).RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	logger.WithField("db_path", path).Info("Database connection established")
	return db, nil
}

// buildSQLiteDSN enables WAL and a busy timeout so concurrent requests of the
// local server wait for the single writer instead of failing
func buildSQLiteDSN(path string) string {
	if path == ":memory:" {
		return path
	}

	options := []string{
		"_journal_mode=WAL",
		"_busy_timeout=5000",
	}
	return fmt.Sprintf("%s?%s", path, strings.Join(options, "&"))
}
