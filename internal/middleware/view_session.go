package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const viewSessionKey ctxKey = "view_session"

// ViewSessionHeader identifica la vista (pestaña) que mantiene su propio set de alertas.
const ViewSessionHeader = "X-View-Session"

// ViewSession:
// - Si viene X-View-Session se usa tal cual.
// - Si no, se genera un uuid y se devuelve en la respuesta para que el cliente lo reenvíe.
func ViewSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(ViewSessionHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		w.Header().Set(ViewSessionHeader, id)

		ctx := context.WithValue(r.Context(), viewSessionKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetViewSession(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(viewSessionKey).(string)
	return v, ok && v != ""
}
