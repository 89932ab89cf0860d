package cart

import (
	"context"
	"fmt"

	"pet-digital-twin/internal/platform/logger"
	"pet-digital-twin/internal/platform/metrics"
	"pet-digital-twin/internal/ports/providers"

	"github.com/shopspring/decimal"
)

// Checkout conecta el carrito con el colaborador de pago. Las líneas enviadas
// solo se descuentan cuando el colaborador confirma; cualquier falla deja el
// carrito intacto.
type Checkout struct {
	ledger   *Ledger
	provider providers.CheckoutProvider
	log      logger.Logger
	metrics  *metrics.Metrics
}

func NewCheckout(ledger *Ledger, provider providers.CheckoutProvider, log logger.Logger, m *metrics.Metrics) *Checkout {
	if log == nil {
		log = logger.Nop()
	}
	return &Checkout{ledger: ledger, provider: provider, log: log, metrics: m}
}

func (c *Checkout) Run(ctx context.Context) (providers.CheckoutReceipt, error) {
	items := c.ledger.Items()
	if len(items) == 0 {
		return providers.CheckoutReceipt{}, ErrEmptyCart
	}
	if c.provider == nil {
		return providers.CheckoutReceipt{}, fmt.Errorf("%w: no checkout provider configured", ErrCheckoutFailed)
	}

	req := providers.CheckoutRequest{Lines: make([]providers.CheckoutLine, 0, len(items))}
	for _, it := range items {
		req.Lines = append(req.Lines, providers.CheckoutLine{
			ProductID: it.Product.ID,
			Quantity:  it.Quantity,
			UnitPrice: decimal.NewFromFloat(it.Product.Price),
		})
		req.Count += it.Quantity
	}
	req.Total = totalOf(items)

	rcpt, err := providers.Await(ctx, c.provider.Submit(ctx, req))
	if err != nil {
		c.metrics.Checkout("error")
		c.log.Warn("checkout failed", map[string]any{"count": req.Count, "total": req.Total.StringFixed(2), "err": err.Error()})
		return providers.CheckoutReceipt{}, fmt.Errorf("%w: %w", ErrCheckoutFailed, err)
	}

	c.ledger.Settle(items)
	c.metrics.Checkout("ok")
	c.log.Info("checkout completed", map[string]any{"order_id": rcpt.OrderID, "total": rcpt.Total.StringFixed(2)})
	return rcpt, nil
}
