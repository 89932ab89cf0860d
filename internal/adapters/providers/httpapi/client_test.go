package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/ports/providers"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkerPostsAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/account-links", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req providers.LinkRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "banfield", req.Provider)

		_ = json.NewEncoder(w).Encode(providers.LinkResult{
			BatchKey: "b-1",
			Records:  []pets.MedicalRecord{{Date: "2024-01-01", Type: "Exam", Note: "ok", Source: "Banfield"}},
		})
	}))
	defer srv.Close()

	c, err := New(srv.URL, "secret", time.Second)
	require.NoError(t, err)

	ctx := context.Background()
	res, err := providers.Await(ctx, c.Linker().Submit(ctx, providers.LinkRequest{Provider: "banfield", PetID: "holly"}))

	require.NoError(t, err)
	assert.Equal(t, "b-1", res.BatchKey)
	require.Len(t, res.Records, 1)
	assert.Equal(t, "Banfield", res.Records[0].Source)
}

func TestCheckoutUpstreamErrorIsRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "payment declined", http.StatusPaymentRequired)
	}))
	defer srv.Close()

	c, err := New(srv.URL, "", time.Second)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = providers.Await(ctx, c.Checkout().Submit(ctx, providers.CheckoutRequest{Count: 1, Total: decimal.NewFromInt(5)}))

	assert.ErrorIs(t, err, providers.ErrRejected)
}

func TestCheckoutIsNotRetriedOnBadGateway(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/orders", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))
		if calls.Add(1) == 1 {
			http.Error(w, "upstream timeout", http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(providers.CheckoutReceipt{OrderID: "o-dup"})
	}))
	defer srv.Close()

	c, err := New(srv.URL, "", time.Second)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = providers.Await(ctx, c.Checkout().Submit(ctx, providers.CheckoutRequest{Count: 1, Total: decimal.NewFromInt(5)}))

	assert.ErrorIs(t, err, providers.ErrRejected)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLinkerRetriesBadGateway(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream timeout", http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(providers.LinkResult{BatchKey: "b-2"})
	}))
	defer srv.Close()

	c, err := New(srv.URL, "", time.Second)
	require.NoError(t, err)

	ctx := context.Background()
	res, err := providers.Await(ctx, c.Linker().Submit(ctx, providers.LinkRequest{Provider: "vca", PetID: "roger"}))

	require.NoError(t, err)
	assert.Equal(t, "b-2", res.BatchKey)
	assert.Equal(t, int32(2), calls.Load())
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New("  ", "", time.Second)
	assert.Error(t, err)
}
