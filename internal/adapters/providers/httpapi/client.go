package httpapi

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-digital-twin/internal/platform/httpclient"
	"pet-digital-twin/internal/ports/providers"

	"github.com/google/uuid"
)

// Client habla JSON con un upstream real de proveedores:
//   - POST /v1/account-links -> LinkResult (lectura, se reintenta)
//   - POST /v1/orders        -> CheckoutReceipt (un solo intento, con Idempotency-Key)
type Client struct {
	http *httpclient.Client
}

var (
	_ providers.AccountLinker    = (*Linker)(nil)
	_ providers.CheckoutProvider = (*Checkout)(nil)
)

func New(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("httpapi: base url required")
	}
	hc, err := httpclient.New(baseURL, timeout, httpclient.WithBearer(apiKey))
	if err != nil {
		return nil, err
	}
	return &Client{http: hc}, nil
}

func (c *Client) Linker() *Linker     { return &Linker{c: c} }
func (c *Client) Checkout() *Checkout { return &Checkout{c: c} }

type Linker struct{ c *Client }

func (l *Linker) Submit(ctx context.Context, req providers.LinkRequest) <-chan providers.Result[providers.LinkResult] {
	return submit[providers.LinkRequest, providers.LinkResult](ctx, l.c, "/v1/account-links", req, httpclient.Retry())
}

type Checkout struct{ c *Client }

func (k *Checkout) Submit(ctx context.Context, req providers.CheckoutRequest) <-chan providers.Result[providers.CheckoutReceipt] {
	// Un 5xx no dice si la orden se creó; no reintentamos para no cobrar dos veces.
	return submit[providers.CheckoutRequest, providers.CheckoutReceipt](ctx, k.c, "/v1/orders", req,
		httpclient.Header("Idempotency-Key", uuid.NewString()))
}

func submit[Req, Res any](ctx context.Context, c *Client, path string, req Req, opts ...httpclient.CallOption) <-chan providers.Result[Res] {
	out := make(chan providers.Result[Res], 1)
	go func() {
		defer close(out)
		var res Res
		if err := c.http.PostJSON(ctx, path, req, &res, opts...); err != nil {
			out <- providers.Result[Res]{Err: fmt.Errorf("%w: %v", providers.ErrRejected, err)}
			return
		}
		out <- providers.Result[Res]{Value: res}
	}()
	return out
}
