package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	DefaultTimeout = 10 * time.Second
	DefaultRetries = 2

	maxBody = 1 << 20 // 1MB
)

// Client es el cliente JSON que usan los adapters de proveedores externos.
// Siempre trabaja contra un BaseURL; los paths son relativos.
type Client struct {
	http    *http.Client
	baseURL string
	headers map[string]string

	retries   int
	retryWait time.Duration
}

type Option func(*Client)

// WithHeader agrega un header que viaja en todos los requests.
func WithHeader(k, v string) Option {
	return func(c *Client) {
		if strings.TrimSpace(k) != "" && v != "" {
			c.headers[k] = v
		}
	}
}

// WithBearer es WithHeader("Authorization", "Bearer <token>"); token vacío no hace nada.
func WithBearer(token string) Option {
	return func(c *Client) {
		if token = strings.TrimSpace(token); token != "" {
			c.headers["Authorization"] = "Bearer " + token
		}
	}
}

// WithRetries fija cuántas veces se reintenta una respuesta 5xx o un error de red
// en las llamadas que piden Retry(). initial es el primer intervalo de espera.
func WithRetries(n int, initial time.Duration) Option {
	return func(c *Client) {
		if n >= 0 {
			c.retries = n
		}
		if initial > 0 {
			c.retryWait = initial
		}
	}
}

// WithTransport permite inyectar un RoundTripper (p.ej. para tests).
func WithTransport(tr http.RoundTripper) Option {
	return func(c *Client) {
		if tr != nil {
			c.http.Transport = tr
		}
	}
}

func New(baseURL string, timeout time.Duration, opts ...Option) (*Client, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	u, err := url.ParseRequestURI(strings.TrimSpace(baseURL))
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q", baseURL)
	}

	c := &Client{
		http:      &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(u.String(), "/"),
		headers:   map[string]string{},
		retries:   DefaultRetries,
		retryWait: 200 * time.Millisecond,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c, nil
}

func (c *Client) BaseURL() string { return c.baseURL }

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// Retryable: solo errores del lado del upstream.
func (e *HTTPError) Retryable() bool {
	return e.StatusCode >= 500
}

// CallOption ajusta una sola llamada.
type CallOption func(*call)

type call struct {
	retry   bool
	headers map[string]string
}

// Retry habilita reintentos con backoff exponencial para esta llamada.
// Solo para endpoints idempotentes: sin Retry() un POST sale una sola vez.
func Retry() CallOption {
	return func(c *call) { c.retry = true }
}

// Header agrega un header solo a esta llamada (p.ej. Idempotency-Key).
func Header(k, v string) CallOption {
	return func(c *call) {
		if strings.TrimSpace(k) != "" && v != "" {
			c.headers[k] = v
		}
	}
}

// PostJSON serializa in, hace POST a path y decodifica la respuesta en out (si out != nil).
// Los 4xx se devuelven enseguida como *HTTPError. Los 5xx y errores de red
// solo se reintentan si la llamada pidió Retry().
func (c *Client) PostJSON(ctx context.Context, path string, in, out any, opts ...CallOption) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("httpclient: marshal json: %w", err)
	}

	cl := call{headers: map[string]string{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cl)
		}
	}

	var raw []byte
	send := func() error {
		var err error
		raw, err = c.do(ctx, http.MethodPost, path, b, cl.headers)
		return err
	}

	if cl.retry && c.retries > 0 {
		policy := backoff.WithContext(backoff.WithMaxRetries(c.policy(), uint64(c.retries)), ctx)
		err = backoff.Retry(func() error {
			err := send()
			var he *HTTPError
			if errors.As(err, &he) && !he.Retryable() {
				return backoff.Permanent(err)
			}
			return err
		}, policy)
	} else {
		err = send()
	}
	if err != nil {
		return err
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("httpclient: unmarshal json: %w", err)
	}
	return nil
}

func (c *Client) policy() backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = c.retryWait
	exp.MaxInterval = 20 * c.retryWait
	exp.MaxElapsedTime = 0 // el tope lo ponen WithMaxRetries y el ctx
	return exp
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, extra map[string]string) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range extra {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	return raw, nil
}
