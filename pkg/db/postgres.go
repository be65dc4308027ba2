package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/lib/pq"
)

// ConnectPostgres opens a Postgres handle for endpoint, using key as the password, and pings it once.
func ConnectPostgres(ctx context.Context, endpoint, key string) (*sql.DB, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("database URL cannot be empty")
	}

	dsn, err := withPassword(endpoint, key)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

func withPassword(endpoint, key string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid database URL: %w", err)
	}
	if key != "" {
		username := ""
		if u.User != nil {
			username = u.User.Username()
		}
		u.User = url.UserPassword(username, key)
	}
	return u.String(), nil
}
