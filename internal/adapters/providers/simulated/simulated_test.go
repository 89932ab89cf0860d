package simulated

import (
	"context"
	"errors"
	"testing"
	"time"

	"pet-digital-twin/internal/ports/providers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkerDeliversCannedRecords(t *testing.T) {
	l := NewLinker(0)

	res, err := providers.Await(context.Background(), l.Submit(context.Background(), providers.LinkRequest{Provider: "VCA", PetID: "roger"}))

	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "VCA Emergency", res.Records[0].Source)
	assert.Equal(t, "vca:roger", res.BatchKey)
}

func TestLinkerUnknownProvider(t *testing.T) {
	l := NewLinker(0)

	_, err := providers.Await(context.Background(), l.Submit(context.Background(), providers.LinkRequest{Provider: "nope"}))

	assert.ErrorIs(t, err, providers.ErrUnknownProvider)
}

func TestLinkerHonoursCancellation(t *testing.T) {
	l := NewLinker(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())

	ch := l.Submit(ctx, providers.LinkRequest{Provider: "banfield"})
	cancel()

	select {
	case r := <-ch:
		assert.True(t, errors.Is(r.Err, context.Canceled))
	case <-time.After(2 * time.Second):
		t.Fatal("linker did not observe cancellation")
	}
}

func TestCheckout(t *testing.T) {
	c := NewCheckout(0)
	ctx := context.Background()

	rcpt, err := providers.Await(ctx, c.Submit(ctx, providers.CheckoutRequest{Count: 2, Total: decimal.RequireFromString("24.99")}))
	require.NoError(t, err)
	assert.NotEmpty(t, rcpt.OrderID)
	assert.True(t, rcpt.Total.Equal(decimal.RequireFromString("24.99")))

	_, err = providers.Await(ctx, c.Submit(ctx, providers.CheckoutRequest{}))
	assert.ErrorIs(t, err, providers.ErrRejected)
}
