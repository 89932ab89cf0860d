package alerts

import (
	"context"
	"errors"
	"net/http"

	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/middleware"
	"pet-digital-twin/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

// ActivePet da la mascota activa y la generación del último cambio.
type ActivePet interface {
	ActiveSnapshot(ctx context.Context) (pets.Pet, uint64, error)
}

// RegisterRoutes espera middleware.ViewSession montado antes en el router.
func RegisterRoutes(r chi.Router, sessions *Sessions, store ActivePet) {
	r.Get("/pets/active/alerts", listAlertsHandler(sessions, store))
	r.Post("/pets/active/alerts/{alertID}/dismiss", dismissAlertHandler(sessions, store))
}

type alertsResponse struct {
	PetID       string `json:"pet_id"`
	ViewSession string `json:"view_session"`
	Alerts      []View `json:"alerts"`
}

// listAlertsHandler godoc
// @Summary Alertas de la sesión de vista
// @Description Cada vista (X-View-Session) tiene su propia copia; cambiar de mascota la reinicia.
// @Tags alerts
// @Produce json
// @Param X-View-Session header string false "ID de la sesión de vista; si falta se genera y se devuelve"
// @Success 200 {object} alertsResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/active/alerts [get]
func listAlertsHandler(sessions *Sessions, store ActivePet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, gen, viewID, ok := resolve(w, r, store)
		if !ok {
			return
		}
		set := sessions.Current(viewID, p, gen)
		httpjson.Write(w, http.StatusOK, alertsResponse{PetID: p.ID, ViewSession: viewID, Alerts: Views(set.Alerts())})
	}
}

// dismissAlertHandler godoc
// @Summary Descartar alerta
// @Description Solo la quita de esta sesión de vista. Un alertID desconocido no hace nada.
// @Tags alerts
// @Produce json
// @Param X-View-Session header string false "ID de la sesión de vista"
// @Param alertID path string true "ID de la alerta"
// @Success 200 {object} alertsResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/active/alerts/{alertID}/dismiss [post]
func dismissAlertHandler(sessions *Sessions, store ActivePet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, gen, viewID, ok := resolve(w, r, store)
		if !ok {
			return
		}
		set := sessions.Dismiss(viewID, p, gen, chi.URLParam(r, "alertID"))
		httpjson.Write(w, http.StatusOK, alertsResponse{PetID: p.ID, ViewSession: viewID, Alerts: Views(set.Alerts())})
	}
}

func resolve(w http.ResponseWriter, r *http.Request, store ActivePet) (pets.Pet, uint64, string, bool) {
	viewID, ok := middleware.GetViewSession(r.Context())
	if !ok {
		http.Error(w, "missing view session", http.StatusBadRequest)
		return pets.Pet{}, 0, "", false
	}
	p, gen, err := store.ActiveSnapshot(r.Context())
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			http.Error(w, "pet not found", http.StatusNotFound)
		} else {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return pets.Pet{}, 0, "", false
	}
	return p, gen, viewID, true
}
