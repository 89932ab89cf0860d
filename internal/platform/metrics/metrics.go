package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics agrupa los collectors del motor.
// Se registran contra un Registerer propio para que los tests
// puedan crear varias instancias sin colisiones.
type Metrics struct {
	Registry *prometheus.Registry

	PetSwitches     *prometheus.CounterVec // result=switched|ignored
	LedgerRecords   prometheus.Counter
	LedgerImports   *prometheus.CounterVec // result=ok|error|duplicate
	CartMutations   *prometheus.CounterVec // op=add|update|remove|clear|settle
	CartItems       prometheus.Gauge
	CheckoutResults *prometheus.CounterVec // result=ok|error
	AlertDismissals prometheus.Counter
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		PetSwitches: f.NewCounterVec(prometheus.CounterOpts{
			Name: "twin_pet_switches_total",
			Help: "Active pet switch requests by outcome",
		}, []string{"result"}),
		LedgerRecords: f.NewCounter(prometheus.CounterOpts{
			Name: "twin_ledger_records_appended_total",
			Help: "Medical records prepended to pet histories",
		}),
		LedgerImports: f.NewCounterVec(prometheus.CounterOpts{
			Name: "twin_ledger_imports_total",
			Help: "Linked-account imports by outcome",
		}, []string{"result"}),
		CartMutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "twin_cart_mutations_total",
			Help: "Cart ledger mutations by operation",
		}, []string{"op"}),
		CartItems: f.NewGauge(prometheus.GaugeOpts{
			Name: "twin_cart_items",
			Help: "Sum of quantities currently in the cart",
		}),
		CheckoutResults: f.NewCounterVec(prometheus.CounterOpts{
			Name: "twin_checkout_total",
			Help: "Checkout attempts by outcome",
		}, []string{"result"}),
		AlertDismissals: f.NewCounter(prometheus.CounterOpts{
			Name: "twin_alert_dismissals_total",
			Help: "Alerts dismissed in view sessions",
		}),
	}
}

// Los helpers toleran receptor nil: los servicios funcionan sin métricas.

func (m *Metrics) PetSwitch(result string) {
	if m == nil {
		return
	}
	m.PetSwitches.WithLabelValues(result).Inc()
}

func (m *Metrics) RecordsAppended(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.LedgerRecords.Add(float64(n))
}

func (m *Metrics) Import(result string) {
	if m == nil {
		return
	}
	m.LedgerImports.WithLabelValues(result).Inc()
}

func (m *Metrics) CartMutation(op string, items int) {
	if m == nil {
		return
	}
	m.CartMutations.WithLabelValues(op).Inc()
	m.CartItems.Set(float64(items))
}

func (m *Metrics) Checkout(result string) {
	if m == nil {
		return
	}
	m.CheckoutResults.WithLabelValues(result).Inc()
}

func (m *Metrics) AlertDismissed() {
	if m == nil {
		return
	}
	m.AlertDismissals.Inc()
}
