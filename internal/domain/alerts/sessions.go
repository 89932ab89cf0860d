package alerts

import (
	"sync"
	"time"

	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/platform/metrics"
)

type entry struct {
	set      *Set
	gen      uint64 // generación de cambio de mascota al tomar el snapshot
	lastUsed time.Time
}

// Sessions guarda un Set por sesión de vista. Cada cambio de mascota activa
// (generación distinta) vuelve a tomar el snapshot y los descartes se pierden,
// aunque se haya vuelto a la misma mascota.
type Sessions struct {
	mu      sync.Mutex
	byView  map[string]*entry
	now     func() time.Time
	metrics *metrics.Metrics
}

type Option func(*Sessions)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Sessions) { s.metrics = m }
}

func WithClock(now func() time.Time) Option {
	return func(s *Sessions) {
		if now != nil {
			s.now = now
		}
	}
}

func NewSessions(opts ...Option) *Sessions {
	s := &Sessions{byView: map[string]*entry{}, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current devuelve el Set de la vista para la mascota activa en la generación gen.
func (s *Sessions) Current(viewID string, active pets.Pet, gen uint64) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentLocked(viewID, active, gen)
}

func (s *Sessions) currentLocked(viewID string, active pets.Pet, gen uint64) *Set {
	e, ok := s.byView[viewID]
	if !ok || e.gen != gen || e.set.PetID() != active.ID {
		e = &entry{set: OpenFor(active), gen: gen}
		s.byView[viewID] = e
	}
	e.lastUsed = s.now()
	return e.set
}

func (s *Sessions) Dismiss(viewID string, active pets.Pet, gen uint64, alertID string) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.currentLocked(viewID, active, gen)
	if set.Dismiss(alertID) {
		s.metrics.AlertDismissed()
	}
	return set
}

// Sweep borra las sesiones sin uso desde hace más de idle. Devuelve cuántas borró.
func (s *Sessions) Sweep(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	n := 0
	for id, e := range s.byView {
		if e.lastUsed.Before(cutoff) {
			delete(s.byView, id)
			n++
		}
	}
	return n
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byView)
}
