package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"pet-digital-twin/internal/domain/pets"
)

type petRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]pets.Pet
}

// NewPetRepo carga el registro fijo. Los ids deben ser únicos y no vacíos;
// el orden de entrada se conserva para ListAll.
func NewPetRepo(seed []pets.Pet) (pets.Registry, error) {
	r := &petRepo{
		order: make([]string, 0, len(seed)),
		byID:  make(map[string]pets.Pet, len(seed)),
	}
	for _, p := range seed {
		if strings.TrimSpace(p.ID) == "" {
			return nil, errors.New("pet id required")
		}
		if _, exists := r.byID[p.ID]; exists {
			return nil, errors.New("pet already exists: " + p.ID)
		}
		r.order = append(r.order, p.ID)
		r.byID[p.ID] = p.Clone()
	}
	return r, nil
}

func (r *petRepo) List(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p.Clone(), nil
}

func (r *petRepo) UpdateHistory(ctx context.Context, id string, fn func([]pets.MedicalRecord) []pets.MedicalRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.ErrNotFound
	}
	// fn recibe una copia: si entra en pánico o retiene el slice, el registro no se ve afectado.
	current := append([]pets.MedicalRecord(nil), p.MedicalHistory...)
	p.MedicalHistory = fn(current)
	r.byID[id] = p
	return nil
}
