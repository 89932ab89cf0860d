package providers

import (
	"context"
	"errors"
	"time"

	"pet-digital-twin/internal/domain/pets"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownProvider = errors.New("unknown provider")
	ErrRejected        = errors.New("provider rejected request")
)

// Result es el único valor que entrega un colaborador.
type Result[T any] struct {
	Value T
	Err   error
}

// Submitter modela un colaborador asíncrono: el canal entrega exactamente
// un Result y luego se cierra. Si ctx se cancela antes, el Result trae ctx.Err().
type Submitter[Req, Res any] interface {
	Submit(ctx context.Context, req Req) <-chan Result[Res]
}

type LinkRequest struct {
	Provider string `json:"provider"`
	PetID    string `json:"pet_id"`
	// BatchKey identifica el lote importado; vacío si el proveedor no lo da.
	BatchKey string `json:"batch_key,omitempty"`
}

type LinkResult struct {
	BatchKey string               `json:"batch_key,omitempty"`
	Records  []pets.MedicalRecord `json:"records"`
}

type CheckoutLine struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type CheckoutRequest struct {
	Lines []CheckoutLine  `json:"lines"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

type CheckoutReceipt struct {
	OrderID  string          `json:"order_id"`
	Total    decimal.Decimal `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}

type (
	AccountLinker    = Submitter[LinkRequest, LinkResult]
	CheckoutProvider = Submitter[CheckoutRequest, CheckoutReceipt]
)

// Await bloquea hasta el Result o hasta que ctx termine.
func Await[T any](ctx context.Context, ch <-chan Result[T]) (T, error) {
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r, ok := <-ch:
		if !ok {
			var zero T
			return zero, errors.New("provider closed without result")
		}
		return r.Value, r.Err
	}
}
