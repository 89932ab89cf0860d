package session

import "context"

// ActivePetKey es la única clave que sobrevive reinicios.
const ActivePetKey = "activePetId"

// Store es el almacenamiento clave-valor durable del host.
type Store interface {
	// Get devuelve ok=false si la clave no existe (no es error).
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}
