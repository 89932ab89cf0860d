package cart

import (
	"errors"
	"sync"

	"pet-digital-twin/internal/platform/metrics"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrEmptyCart      = errors.New("cart is empty")
	ErrCheckoutFailed = errors.New("checkout failed")
)

// Ledger es el carrito: una línea por producto, cantidades siempre > 0.
type Ledger struct {
	mu      sync.Mutex
	items   []LineItem
	metrics *metrics.Metrics
}

type Option func(*Ledger)

func WithMetrics(m *metrics.Metrics) Option {
	return func(l *Ledger) { l.metrics = m }
}

func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add suma 1 a la línea existente o inserta una nueva con cantidad 1.
func (l *Ledger) Add(p Product) error {
	if !p.valid() {
		return ErrInvalidProduct
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if i := l.indexLocked(p.ID); i >= 0 {
		l.items[i].Quantity++
	} else {
		l.items = append(l.items, LineItem{Product: p.clone(), Quantity: 1})
	}
	l.metrics.CartMutation("add", l.countLocked())
	return nil
}

// UpdateQuantity suma delta; si la cantidad queda <= 0 la línea se elimina.
// Un productID desconocido no hace nada.
func (l *Ledger) UpdateQuantity(productID string, delta int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexLocked(productID)
	if i < 0 {
		return
	}
	op := "update"
	if q := l.items[i].Quantity + delta; q > 0 {
		l.items[i].Quantity = q
	} else {
		l.items = append(l.items[:i], l.items[i+1:]...)
		op = "remove"
	}
	l.metrics.CartMutation(op, l.countLocked())
}

// Total a precisión completa; redondear solo al presentar (FormatTotal).
func (l *Ledger) Total() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return totalOf(l.items)
}

func (l *Ledger) FormatTotal() string {
	return l.Total().StringFixed(2)
}

func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.items = nil
	l.metrics.CartMutation("clear", 0)
}

// Settle descuenta las cantidades ya cobradas. Lo agregado después del
// snapshot de checkout queda en el carrito.
func (l *Ledger) Settle(paid []LineItem) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, p := range paid {
		i := l.indexLocked(p.Product.ID)
		if i < 0 {
			continue
		}
		if q := l.items[i].Quantity - p.Quantity; q > 0 {
			l.items[i].Quantity = q
		} else {
			l.items = append(l.items[:i], l.items[i+1:]...)
		}
	}
	l.metrics.CartMutation("settle", l.countLocked())
}

func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.countLocked()
}

// Items en orden de inserción.
func (l *Ledger) Items() []LineItem {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]LineItem, len(l.items))
	for i, it := range l.items {
		out[i] = LineItem{Product: it.Product.clone(), Quantity: it.Quantity}
	}
	return out
}

func (l *Ledger) State() State {
	if l.Count() == 0 {
		return StateEmpty
	}
	return StatePopulated
}

func (l *Ledger) indexLocked(productID string) int {
	for i, it := range l.items {
		if it.Product.ID == productID {
			return i
		}
	}
	return -1
}

func (l *Ledger) countLocked() int {
	n := 0
	for _, it := range l.items {
		n += it.Quantity
	}
	return n
}

func totalOf(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}
