package simulated

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/ports/providers"

	"github.com/google/uuid"
)

// Registros que "devuelve" cada red de clínicas al vincular la cuenta.
var cannedRecords = map[string][]pets.MedicalRecord{
	"banfield": {
		{Date: "2024-02-10", Type: "Vaccination", Note: "Annual boosters administered. No reaction.", Source: "Banfield"},
		{Date: "2023-06-02", Type: "Wellness Exam", Note: "Routine check. Weight stable.", Source: "Banfield"},
	},
	"vca": {
		{Date: "2024-05-21", Type: "Emergency", Note: "Minor laceration cleaned and dressed.", Source: "VCA Emergency"},
	},
	"bluepearl": {
		{Date: "2023-09-14", Type: "Specialist Consult", Note: "Radiographs reviewed. Follow-up in 12 months.", Source: "BluePearl Specialty"},
	},
	"antech": {
		{Date: "2024-03-03", Type: "Lab Results", Note: "CBC and chemistry panel within normal limits.", Source: "Antech Diagnostics"},
	},
}

func normalizeProvider(p string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(p), " ", ""))
}

// Providers lista los proveedores que el linker simulado reconoce.
func Providers() []string {
	return []string{"banfield", "vca", "bluepearl", "antech"}
}

type Linker struct {
	delay time.Duration
}

var _ providers.AccountLinker = (*Linker)(nil)

func NewLinker(delay time.Duration) *Linker {
	return &Linker{delay: delay}
}

func (l *Linker) Submit(ctx context.Context, req providers.LinkRequest) <-chan providers.Result[providers.LinkResult] {
	out := make(chan providers.Result[providers.LinkResult], 1)
	go func() {
		defer close(out)
		if err := wait(ctx, l.delay); err != nil {
			out <- providers.Result[providers.LinkResult]{Err: err}
			return
		}

		recs, ok := cannedRecords[normalizeProvider(req.Provider)]
		if !ok {
			out <- providers.Result[providers.LinkResult]{Err: fmt.Errorf("%w: %q", providers.ErrUnknownProvider, req.Provider)}
			return
		}

		key := req.BatchKey
		if key == "" {
			key = normalizeProvider(req.Provider) + ":" + req.PetID
		}
		out <- providers.Result[providers.LinkResult]{Value: providers.LinkResult{
			BatchKey: key,
			Records:  append([]pets.MedicalRecord(nil), recs...),
		}}
	}()
	return out
}

type Checkout struct {
	delay time.Duration
	now   func() time.Time
}

var _ providers.CheckoutProvider = (*Checkout)(nil)

func NewCheckout(delay time.Duration) *Checkout {
	return &Checkout{delay: delay, now: time.Now}
}

// Submit rechaza carritos vacíos; cualquier otro pedido se acepta.
func (c *Checkout) Submit(ctx context.Context, req providers.CheckoutRequest) <-chan providers.Result[providers.CheckoutReceipt] {
	out := make(chan providers.Result[providers.CheckoutReceipt], 1)
	go func() {
		defer close(out)
		if err := wait(ctx, c.delay); err != nil {
			out <- providers.Result[providers.CheckoutReceipt]{Err: err}
			return
		}
		if req.Count <= 0 {
			out <- providers.Result[providers.CheckoutReceipt]{Err: fmt.Errorf("%w: empty cart", providers.ErrRejected)}
			return
		}
		out <- providers.Result[providers.CheckoutReceipt]{Value: providers.CheckoutReceipt{
			OrderID:  uuid.NewString(),
			Total:    req.Total,
			PlacedAt: c.now().UTC(),
		}}
	}()
	return out
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
