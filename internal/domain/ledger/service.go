package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/platform/logger"
	"pet-digital-twin/internal/platform/metrics"
	"pet-digital-twin/internal/ports/providers"
)

var (
	ErrImportFailed    = errors.New("import failed")
	ErrProviderMissing = errors.New("provider required")
)

// Entities es lo que el ledger necesita del EntityStore.
type Entities interface {
	ActiveID() string
	GetByID(ctx context.Context, id string) (pets.Pet, error)
	UpdateHistory(ctx context.Context, id string, fn func([]pets.MedicalRecord) []pets.MedicalRecord) error
}

// Service es el ledger médico: solo agrega registros, nunca edita ni borra.
type Service struct {
	entities Entities
	log      logger.Logger
	metrics  *metrics.Metrics

	batchKeys bool
	mu        sync.Mutex
	seen      map[string]struct{}
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

// WithBatchKeys hace idempotente Import por BatchKey.
// Sin esta opción, importar dos veces duplica registros.
func WithBatchKeys() Option {
	return func(s *Service) { s.batchKeys = true }
}

func NewService(entities Entities, opts ...Option) *Service {
	s := &Service{
		entities: entities,
		log:      logger.Nop(),
		seen:     map[string]struct{}{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// AppendRecords antepone records (en el orden dado) al historial de petID.
// No deduplica. Un lote vacío no hace nada.
func (s *Service) AppendRecords(ctx context.Context, petID string, records []pets.MedicalRecord) error {
	if len(records) == 0 {
		return nil
	}
	batch := append([]pets.MedicalRecord(nil), records...)

	err := s.entities.UpdateHistory(ctx, petID, func(current []pets.MedicalRecord) []pets.MedicalRecord {
		merged := make([]pets.MedicalRecord, 0, len(batch)+len(current))
		merged = append(merged, batch...)
		return append(merged, current...)
	})
	if err != nil {
		return err
	}

	s.metrics.RecordsAppended(len(batch))
	s.log.Info("medical records appended", map[string]any{"pet_id": petID, "count": len(batch)})
	return nil
}

func (s *Service) AppendToActive(ctx context.Context, records []pets.MedicalRecord) (string, error) {
	id := s.entities.ActiveID()
	return id, s.AppendRecords(ctx, id, records)
}

func (s *Service) History(ctx context.Context, petID string) ([]pets.MedicalRecord, error) {
	p, err := s.entities.GetByID(ctx, petID)
	if err != nil {
		return nil, err
	}
	return p.MedicalHistory, nil
}

type ImportRequest struct {
	Provider string `json:"provider"`
	BatchKey string `json:"batch_key,omitempty"`
}

type ImportResult struct {
	PetID     string `json:"pet_id"`
	Provider  string `json:"provider"`
	Appended  int    `json:"appended"`
	Duplicate bool   `json:"duplicate"`
}

// Import vincula una cuenta externa y agrega lo que entregue a la mascota que
// estaba activa al momento del pedido, aunque se cambie de mascota mientras
// el proveedor responde. Si el proveedor falla, el ledger queda intacto.
func (s *Service) Import(ctx context.Context, linker providers.AccountLinker, req ImportRequest) (ImportResult, error) {
	req.Provider = strings.TrimSpace(req.Provider)
	if req.Provider == "" {
		return ImportResult{}, ErrProviderMissing
	}
	petID := s.entities.ActiveID()
	out := ImportResult{PetID: petID, Provider: req.Provider}
	if linker == nil {
		return out, fmt.Errorf("%w: no account linker configured", ErrImportFailed)
	}

	res, err := providers.Await(ctx, linker.Submit(ctx, providers.LinkRequest{
		Provider: req.Provider,
		PetID:    petID,
		BatchKey: req.BatchKey,
	}))
	if err != nil {
		s.metrics.Import("error")
		s.log.Warn("account import failed", map[string]any{"pet_id": petID, "provider": req.Provider, "err": err.Error()})
		return out, fmt.Errorf("%w: %w", ErrImportFailed, err)
	}

	key := res.BatchKey
	if key == "" {
		key = req.BatchKey
	}
	if s.batchKeys && key != "" {
		if !s.claim(petID, key) {
			s.metrics.Import("duplicate")
			out.Duplicate = true
			return out, nil
		}
	}

	if err := s.AppendRecords(ctx, petID, res.Records); err != nil {
		if s.batchKeys && key != "" {
			s.release(petID, key)
		}
		s.metrics.Import("error")
		return out, err
	}
	s.metrics.Import("ok")
	out.Appended = len(res.Records)
	return out, nil
}

func (s *Service) claim(petID, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := petID + "\x00" + key
	if _, ok := s.seen[k]; ok {
		return false
	}
	s.seen[k] = struct{}{}
	return true
}

func (s *Service) release(petID, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.seen, petID+"\x00"+key)
}
