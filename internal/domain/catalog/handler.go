package catalog

import (
	"context"
	"errors"
	"net/http"

	"pet-digital-twin/internal/domain/cart"
	"pet-digital-twin/internal/domain/pets"
	"pet-digital-twin/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

type ActivePet interface {
	GetActive(ctx context.Context) (pets.Pet, error)
}

func RegisterRoutes(r chi.Router, store ActivePet, ledger *cart.Ledger) {
	r.Get("/catalog", listCatalogHandler(store))
	r.Post("/pets/active/recommendations/{kind}/cart", addRecommendationHandler(store, ledger))
}

type catalogResponse struct {
	PetID        string    `json:"pet_id"`
	SpeciesGroup string    `json:"species_group"`
	Category     string    `json:"category"`
	Categories   []string  `json:"categories"`
	Products     []Listing `json:"products"`
}

type recommendationResponse struct {
	Kind      Kind         `json:"kind"`
	Product   cart.Product `json:"product"`
	CartCount int          `json:"cart_count"`
}

// listCatalogHandler godoc
// @Summary Catálogo de la tienda
// @Description Sin categoría (o All) lista primero lo recomendado para la especie de la mascota activa.
// @Tags catalog
// @Produce json
// @Param category query string false "All | Nutrition | Treats | Habitat | Tech"
// @Success 200 {object} catalogResponse
// @Failure 400 {string} string "unknown category"
// @Failure 404 {string} string "pet not found"
// @Router /catalog [get]
func listCatalogHandler(store ActivePet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, ok := activePet(w, r, store)
		if !ok {
			return
		}
		category := r.URL.Query().Get("category")
		items, err := List(p.Profile.Species, category)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if category == "" {
			category = CategoryAll
		}
		httpjson.Write(w, http.StatusOK, catalogResponse{
			PetID:        p.ID,
			SpeciesGroup: SpeciesGroup(p.Profile.Species),
			Category:     category,
			Categories:   Categories(),
			Products:     items,
		})
	}
}

// addRecommendationHandler godoc
// @Summary Agregar recomendación de diagnóstico al carrito
// @Description El diagnóstico elige el producto según la especie de la mascota activa y lo agrega al carrito.
// @Tags catalog
// @Produce json
// @Param kind path string true "dental-check | health-predictor"
// @Success 200 {object} recommendationResponse
// @Failure 400 {string} string "unknown recommendation kind"
// @Failure 404 {string} string "pet not found"
// @Router /pets/active/recommendations/{kind}/cart [post]
func addRecommendationHandler(store ActivePet, ledger *cart.Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := ParseKind(chi.URLParam(r, "kind"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		p, ok := activePet(w, r, store)
		if !ok {
			return
		}
		prod, err := Recommend(p, kind)
		if errors.Is(err, ErrUnknownKind) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if err := ledger.Add(prod); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		httpjson.Write(w, http.StatusOK, recommendationResponse{Kind: kind, Product: prod, CartCount: ledger.Count()})
	}
}

func activePet(w http.ResponseWriter, r *http.Request, store ActivePet) (pets.Pet, bool) {
	p, err := store.GetActive(r.Context())
	if err != nil {
		if errors.Is(err, pets.ErrNotFound) {
			http.Error(w, "pet not found", http.StatusNotFound)
		} else {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return pets.Pet{}, false
	}
	return p, true
}
