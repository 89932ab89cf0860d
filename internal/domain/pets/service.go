package pets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pet-digital-twin/internal/platform/logger"
	"pet-digital-twin/internal/platform/metrics"
	"pet-digital-twin/internal/ports/session"
)

var (
	ErrNotFound          = errors.New("pet not found")
	ErrEmptyRegistry     = errors.New("pet registry is empty")
	ErrInvalidBiometrics = errors.New("biometrics variant does not match environment")
	ErrSessionPersist    = errors.New("could not persist active pet")
)

// Service es el EntityStore: dueño exclusivo de las mascotas y del id activo.
// El único mutador del id activo es SwitchActive.
type Service struct {
	repo     Registry
	sessions session.Store
	log      logger.Logger
	metrics  *metrics.Metrics

	// switchMu serializa SwitchActive completo (asignación + persistencia);
	// mu protege activeID y gen para las lecturas.
	switchMu sync.Mutex
	mu       sync.RWMutex
	activeID string
	gen      uint64
}

type Option func(*Service)

func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// NewService retoma la selección persistida; si no existe (o ya no está en el
// registro) usa la primera mascota del registro.
func NewService(ctx context.Context, repo Registry, sessions session.Store, opts ...Option) (*Service, error) {
	s := &Service{
		repo:     repo,
		sessions: sessions,
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	all, err := repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registry: %w", err)
	}
	if len(all) == 0 {
		return nil, ErrEmptyRegistry
	}
	s.activeID = all[0].ID

	if sessions == nil {
		return s, nil
	}

	saved, ok, err := sessions.Get(ctx, session.ActivePetKey)
	if err != nil {
		// Sin sesión no bloqueamos el arranque: seguimos con el default.
		s.log.Warn("could not read persisted active pet", map[string]any{"err": err.Error()})
		return s, nil
	}
	if ok {
		if _, err := repo.GetByID(ctx, saved); err == nil {
			s.activeID = saved
		} else {
			s.log.Warn("persisted active pet not in registry, using default", map[string]any{
				"saved":   saved,
				"default": s.activeID,
			})
		}
	}
	return s, nil
}

func (s *Service) ActiveID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeID
}

// GetActive devuelve una copia de la mascota activa.
func (s *Service) GetActive(ctx context.Context) (Pet, error) {
	p, _, err := s.ActiveSnapshot(ctx)
	return p, err
}

// ActiveSnapshot devuelve la mascota activa junto con la generación del
// último cambio. La generación sube en cada SwitchActive exitoso, aunque
// se vuelva a una mascota anterior.
func (s *Service) ActiveSnapshot(ctx context.Context) (Pet, uint64, error) {
	s.mu.RLock()
	id, gen := s.activeID, s.gen
	s.mu.RUnlock()

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, gen, fmt.Errorf("active pet %q: %w", id, err)
	}
	return p, gen, nil
}

// SwitchActive con id desconocido es no-op (la UI suele mandar ids de renders viejos).
// Si la persistencia falla, el cambio en memoria se mantiene y se devuelve ErrSessionPersist.
// Dos cambios concurrentes no se intercalan: el id en memoria y el persistido
// siempre terminan siendo el del último que entró.
func (s *Service) SwitchActive(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.metrics.PetSwitch("ignored")
		s.log.Debug("switch to unknown pet ignored", map[string]any{"pet_id": id})
		return nil
	}

	s.switchMu.Lock()
	defer s.switchMu.Unlock()

	s.mu.Lock()
	s.activeID = p.ID
	s.gen++
	s.mu.Unlock()

	s.metrics.PetSwitch("switched")
	s.log.Info("switched active pet", map[string]any{"pet_id": p.ID, "name": p.Profile.Name})

	if s.sessions == nil {
		return nil
	}
	if err := s.sessions.Set(ctx, session.ActivePetKey, p.ID); err != nil {
		s.log.Warn("persist active pet failed", map[string]any{"pet_id": p.ID, "err": err.Error()})
		return fmt.Errorf("%w: %v", ErrSessionPersist, err)
	}
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	p, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return Pet{}, fmt.Errorf("pet %q: %w", id, err)
	}
	return p, nil
}

// UpdateHistory es el hook que usa el ledger médico; no hay otro mutador de mascotas.
func (s *Service) UpdateHistory(ctx context.Context, id string, fn func([]MedicalRecord) []MedicalRecord) error {
	if err := s.repo.UpdateHistory(ctx, id, fn); err != nil {
		return fmt.Errorf("pet %q: %w", id, err)
	}
	return nil
}
