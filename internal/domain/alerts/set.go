package alerts

import (
	"sync"

	"pet-digital-twin/internal/domain/pets"
)

// Set es la copia de alertas de una vista. Descartar una alerta solo la
// quita de aquí; la mascota nunca se modifica.
type Set struct {
	mu     sync.Mutex
	petID  string
	alerts []pets.AlertRecord
}

// OpenFor toma un snapshot de las alertas de p.
func OpenFor(p pets.Pet) *Set {
	return &Set{
		petID:  p.ID,
		alerts: append([]pets.AlertRecord(nil), p.PredictiveInsights.Alerts...),
	}
}

func (s *Set) PetID() string { return s.petID }

// Dismiss con id desconocido no hace nada. Devuelve si quitó algo.
func (s *Set) Dismiss(alertID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.alerts {
		if a.ID == alertID {
			s.alerts = append(s.alerts[:i:i], s.alerts[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Set) Alerts() []pets.AlertRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]pets.AlertRecord(nil), s.alerts...)
}
