package storage

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/misterclayt0n/fuel/internal/config"
	"github.com/misterclayt0n/fuel/internal/logger"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

type Storage struct {
	DB *sql.DB
}

// Connection strings with these prefixes go to Turso through libsql,
// everything else is a local SQLite file.
var remoteSchemes = []string{"libsql://", "https://", "http://", "wss://", "ws://"}

func NewStorage(cfg *config.Config) (*Storage, error) {
	return Open(context.Background(), cfg.DB.ConnectionString, cfg.DB.AuthToken)
}

func Open(ctx context.Context, dsn, authToken string) (*Storage, error) {
	driver, source, err := driverFor(dsn, authToken)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	if driver == "sqlite" {
		db.SetMaxOpenConns(1)
	}

	if err := initializeDB(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logger.Debug("storage opened", zap.String("driver", driver))
	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func driverFor(dsn, authToken string) (string, string, error) {
	if dsn == "" {
		return "", "", fmt.Errorf("empty database connection string")
	}

	for _, scheme := range remoteSchemes {
		if strings.HasPrefix(dsn, scheme) {
			if authToken == "" {
				return "libsql", dsn, nil
			}
			u, err := url.Parse(dsn)
			if err != nil {
				return "", "", fmt.Errorf("invalid database url: %w", err)
			}
			q := u.Query()
			q.Set("authToken", authToken)
			u.RawQuery = q.Encode()
			return "libsql", u.String(), nil
		}
	}

	if !strings.HasPrefix(dsn, "file:") && dsn != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return "", "", err
		}
	}
	return "sqlite", dsn, nil
}

func initializeDB(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS foods (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL UNIQUE COLLATE NOCASE,
            amount REAL NOT NULL,
            carbohydrates REAL NOT NULL,
            proteins REAL NOT NULL,
            fats REAL NOT NULL,
            calories REAL NOT NULL,
            custom INTEGER NOT NULL DEFAULT 0,
            created_at TEXT NOT NULL
        );

        CREATE TABLE IF NOT EXISTS food_log (
            id TEXT PRIMARY KEY,
            food_id TEXT,
            name TEXT NOT NULL,
            amount REAL NOT NULL,         -- baseline values, scaled by quantity on load
            carbohydrates REAL NOT NULL,
            proteins REAL NOT NULL,
            fats REAL NOT NULL,
            quantity REAL NOT NULL,
            calories REAL NOT NULL,       -- current (scaled) calories
            custom INTEGER NOT NULL DEFAULT 0,
            logged_at TEXT NOT NULL,
            FOREIGN KEY (food_id) REFERENCES foods(id) ON DELETE SET NULL
        );

        CREATE INDEX IF NOT EXISTS idx_food_log_logged_at ON food_log(logged_at);

        CREATE TABLE IF NOT EXISTS exercise_log (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            reps INTEGER NOT NULL,
            sets INTEGER NOT NULL,
            weight_kg REAL NOT NULL,
            calories_burned REAL NOT NULL,
            logged_at TEXT NOT NULL
        );

        CREATE INDEX IF NOT EXISTS idx_exercise_log_logged_at ON exercise_log(logged_at);
    `)
	return err
}
