package pets

import "context"

// Registry es el conjunto fijo de mascotas cargado al arrancar.
// No hay Create/Delete: solo lectura y la mutación atómica del historial.
type Registry interface {
	List(ctx context.Context) ([]Pet, error) // orden de inserción
	GetByID(ctx context.Context, id string) (Pet, error)

	// UpdateHistory reemplaza el historial de id con fn(historialActual),
	// bajo el lock del registro.
	UpdateHistory(ctx context.Context, id string, fn func([]MedicalRecord) []MedicalRecord) error
}
