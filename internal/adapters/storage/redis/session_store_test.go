package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"pet-digital-twin/internal/ports/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere un Redis real; se omite si no está disponible.
func TestSessionStoreRoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = "redis://localhost:6379/15"
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	client, err := NewClient(ctx, url)
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}
	t.Cleanup(func() {
		client.Del(context.Background(), sessionKeyPrefix+session.ActivePetKey)
		_ = client.Close()
	})

	s := NewSessionStore(client)
	client.Del(ctx, sessionKeyPrefix+session.ActivePetKey)

	_, ok, err := s.Get(ctx, session.ActivePetKey)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, session.ActivePetKey, "holly"))
	v, ok, err := s.Get(ctx, session.ActivePetKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "holly", v)
}
