package ledger

import (
	"errors"
	"net/http"

	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/platform/httpjson"
	"pet-digital-twin/internal/ports/providers"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, linker providers.AccountLinker) {
	r.Get("/pets/active/history", getHistoryHandler(svc))
	r.Post("/pets/active/history", appendHistoryHandler(svc))
	r.Post("/pets/active/history/import", importHandler(svc, linker))
}

type appendRequest struct {
	Records []pets.MedicalRecord `json:"records"`
}

type historyResponse struct {
	PetID   string               `json:"pet_id"`
	Records []pets.MedicalRecord `json:"records"`
}

// getHistoryHandler godoc
// @Summary Historial médico de la mascota activa
// @Description Más reciente primero; el orden es el que dejaron los imports.
// @Tags history
// @Produce json
// @Success 200 {object} historyResponse
// @Failure 404 {string} string "pet not found"
// @Router /pets/active/history [get]
func getHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := svc.entities.ActiveID()
		recs, err := svc.History(r.Context(), id)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, historyResponse{PetID: id, Records: nonNil(recs)})
	}
}

// appendHistoryHandler godoc
// @Summary Agregar registros al historial activo
// @Description Antepone los registros en el orden recibido. No deduplica.
// @Tags history
// @Accept json
// @Produce json
// @Param payload body appendRequest true "Registros a anteponer"
// @Success 200 {object} historyResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "pet not found"
// @Router /pets/active/history [post]
func appendHistoryHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req appendRequest
		if err := httpjson.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		id, err := svc.AppendToActive(r.Context(), req.Records)
		if err != nil {
			writeLedgerError(w, err)
			return
		}

		recs, err := svc.History(r.Context(), id)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, historyResponse{PetID: id, Records: nonNil(recs)})
	}
}

// importHandler godoc
// @Summary Vincular cuenta externa e importar historial
// @Description Los registros se agregan a la mascota que estaba activa al recibir el pedido. Si el proveedor falla, el historial no cambia.
// @Tags history
// @Accept json
// @Produce json
// @Param payload body ImportRequest true "Proveedor a vincular"
// @Success 200 {object} ImportResult
// @Failure 400 {string} string "provider required / unknown provider"
// @Failure 404 {string} string "pet not found"
// @Failure 502 {string} string "import failed"
// @Router /pets/active/history/import [post]
func importHandler(svc *Service, linker providers.AccountLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ImportRequest
		if err := httpjson.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		res, err := svc.Import(r.Context(), linker, req)
		if err != nil {
			writeLedgerError(w, err)
			return
		}
		httpjson.Write(w, http.StatusOK, res)
	}
}

func writeLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrProviderMissing), errors.Is(err, providers.ErrUnknownProvider):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, pets.ErrNotFound):
		http.Error(w, "pet not found", http.StatusNotFound)
	case errors.Is(err, ErrImportFailed):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func nonNil(r []pets.MedicalRecord) []pets.MedicalRecord {
	if r == nil {
		return []pets.MedicalRecord{}
	}
	return r
}
