package pets

import (
	"errors"
	"net/http"

	"pet-digital-twin/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/pets", listPetsHandler(svc))
	r.Get("/pets/active", getActiveHandler(svc))
	r.Put("/pets/active", switchActiveHandler(svc))
	r.Get("/pets/{petID}", getPetHandler(svc))
}

// petSummary es la fila del selector de mascotas.
type petSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Species string `json:"species"`
	Avatar  string `json:"avatar"`
	Active  bool   `json:"active"`
}

type switchActiveRequest struct {
	PetID string `json:"pet_id"`
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Lista el registro en su orden original, marcando la mascota activa.
// @Tags pets
// @Produce json
// @Success 200 {array} petSummary
// @Failure 500 {string} string "internal error"
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		active := svc.ActiveID()
		out := make([]petSummary, 0, len(items))
		for _, p := range items {
			out = append(out, petSummary{
				ID:      p.ID,
				Name:    p.Profile.Name,
				Species: p.Profile.Species,
				Avatar:  p.Profile.Avatar,
				Active:  p.ID == active,
			})
		}

		httpjson.Write(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} Pet
// @Failure 404 {string} string "pet not found"
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeLookupError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, p)
	}
}

// getActiveHandler godoc
// @Summary Mascota activa
// @Description Devuelve el gemelo digital completo de la mascota seleccionada.
// @Tags pets
// @Produce json
// @Success 200 {object} Pet
// @Failure 404 {string} string "pet not found"
// @Router /pets/active [get]
func getActiveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetActive(r.Context())
		if err != nil {
			writeLookupError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, p)
	}
}

// switchActiveHandler godoc
// @Summary Cambiar mascota activa
// @Description Un pet_id desconocido no cambia nada y responde 200 con la mascota activa actual (renders viejos de la UI).
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body switchActiveRequest true "Mascota a activar"
// @Success 200 {object} Pet
// @Header 200 {string} X-Session-Persisted "false si la selección no se pudo persistir"
// @Failure 400 {string} string "invalid json"
// @Router /pets/active [put]
func switchActiveHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req switchActiveRequest
		if err := httpjson.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := svc.SwitchActive(r.Context(), req.PetID); err != nil {
			// El cambio en memoria ya se aplicó; solo falló la persistencia.
			if errors.Is(err, ErrSessionPersist) {
				w.Header().Set("X-Session-Persisted", "false")
			} else {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
		}

		p, err := svc.GetActive(r.Context())
		if err != nil {
			writeLookupError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, p)
	}
}

func writeLookupError(w http.ResponseWriter, err error) {
	if errors.Is(err, ErrNotFound) {
		http.Error(w, "pet not found", http.StatusNotFound)
		return
	}
	http.Error(w, "internal error", http.StatusInternalServerError)
}
