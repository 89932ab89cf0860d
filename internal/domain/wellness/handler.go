package wellness

import (
	"context"
	"errors"
	"net/http"

	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

// ActivePet es lo único que el dashboard necesita del EntityStore.
type ActivePet interface {
	GetActive(ctx context.Context) (pets.Pet, error)
}

func RegisterRoutes(r chi.Router, engine *Engine, store ActivePet) {
	r.Get("/pets/active/wellness", getWellnessHandler(engine, store))
}

// getWellnessHandler godoc
// @Summary Score de bienestar de la mascota activa
// @Description Se recalcula en cada request. period ajusta el score para la vista (Day, Week, Month; default Week).
// @Tags wellness
// @Produce json
// @Param period query string false "Day | Week | Month"
// @Success 200 {object} Report
// @Failure 400 {string} string "invalid period"
// @Failure 404 {string} string "pet not found"
// @Router /pets/active/wellness [get]
func getWellnessHandler(engine *Engine, store ActivePet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		period, err := ParsePeriod(r.URL.Query().Get("period"))
		if err != nil {
			http.Error(w, "period must be Day, Week or Month", http.StatusBadRequest)
			return
		}

		p, err := store.GetActive(r.Context())
		if err != nil {
			if errors.Is(err, pets.ErrNotFound) {
				http.Error(w, "pet not found", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		httpjson.Write(w, http.StatusOK, engine.Report(p, period))
	}
}
