package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"pet-digital-twin/internal/ports/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere DB_DSN apuntando a un Postgres real; si no, se omite.
func TestSessionStoreUpsert(t *testing.T) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		t.Skip("DB_DSN not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := Open(ctx, dsn)
	if err != nil {
		t.Skipf("postgres not available: %v", err)
	}
	defer db.Close()

	s, err := NewSessionStore(ctx, db)
	require.NoError(t, err)

	key := "test:" + session.ActivePetKey
	t.Cleanup(func() { _, _ = db.Exec(`DELETE FROM session_kv WHERE key = $1`, key) })

	require.NoError(t, s.Set(ctx, key, "roger"))
	require.NoError(t, s.Set(ctx, key, "holly"))

	v, ok, err := s.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "holly", v)

	_, ok, err = s.Get(ctx, "missing-key")
	require.NoError(t, err)
	assert.False(t, ok)
}
