package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"pet-digital-twin/internal/ports/session"
)

type SessionStore struct {
	db *sql.DB
}

var _ session.Store = (*SessionStore)(nil)

// NewSessionStore crea la tabla session_kv si no existe.
func NewSessionStore(ctx context.Context, db *sql.DB) (*SessionStore, error) {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS session_kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return nil, err
	}
	return &SessionStore{db: db}, nil
}

func (s *SessionStore) Get(ctx context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, nil
	}

	var v string
	err := s.db.QueryRowContext(ctx, `
		SELECT value
		FROM session_kv
		WHERE key = $1
	`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *SessionStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO session_kv (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value,
		    updated_at = EXCLUDED.updated_at
	`, key, value)
	return err
}
