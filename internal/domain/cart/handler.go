package cart

import (
	"errors"
	"net/http"
	"strings"

	"pet-digital-twin/internal/platform/httpjson"
	"pet-digital-twin/internal/ports/providers"

	"github.com/go-chi/chi/v5"
)

// ProductLookup resuelve un id de producto contra el catálogo.
type ProductLookup func(id string) (Product, bool)

func RegisterRoutes(r chi.Router, ledger *Ledger, checkout *Checkout, lookup ProductLookup) {
	r.Route("/cart", func(cr chi.Router) {
		cr.Get("/", getCartHandler(ledger))
		cr.Delete("/", clearCartHandler(ledger))
		cr.Post("/items", addItemHandler(ledger, lookup))
		cr.Patch("/items/{productID}", updateItemHandler(ledger))
		cr.Post("/checkout", checkoutHandler(ledger, checkout))
	})
}

type cartResponse struct {
	State State      `json:"state"`
	Items []LineItem `json:"items"`
	Count int        `json:"count"`
	// Total a precisión completa; TotalDisplay redondeado a 2 decimales.
	Total        string `json:"total"`
	TotalDisplay string `json:"total_display"`
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type updateItemRequest struct {
	Delta int `json:"delta"`
}

type checkoutResponse struct {
	Receipt providers.CheckoutReceipt `json:"receipt"`
	Cart    cartResponse              `json:"cart"`
}

func toCartResponse(l *Ledger) cartResponse {
	items := l.Items()
	total := totalOf(items)
	count := 0
	for _, it := range items {
		count += it.Quantity
	}
	state := StateEmpty
	if count > 0 {
		state = StatePopulated
	}
	return cartResponse{
		State:        state,
		Items:        items,
		Count:        count,
		Total:        total.String(),
		TotalDisplay: total.StringFixed(2),
	}
}

// getCartHandler godoc
// @Summary Ver carrito
// @Tags cart
// @Produce json
// @Success 200 {object} cartResponse
// @Router /cart [get]
func getCartHandler(l *Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpjson.Write(w, http.StatusOK, toCartResponse(l))
	}
}

// clearCartHandler godoc
// @Summary Vaciar carrito
// @Tags cart
// @Produce json
// @Success 200 {object} cartResponse
// @Router /cart [delete]
func clearCartHandler(l *Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l.Clear()
		httpjson.Write(w, http.StatusOK, toCartResponse(l))
	}
}

// addItemHandler godoc
// @Summary Agregar producto
// @Description Si el producto ya está en el carrito suma 1 a su cantidad.
// @Tags cart
// @Accept json
// @Produce json
// @Param payload body addItemRequest true "Producto del catálogo"
// @Success 200 {object} cartResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "product not found"
// @Router /cart/items [post]
func addItemHandler(l *Ledger, lookup ProductLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addItemRequest
		if err := httpjson.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, ok := lookup(strings.TrimSpace(req.ProductID))
		if !ok {
			http.Error(w, "product not found", http.StatusNotFound)
			return
		}
		if err := l.Add(p); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		httpjson.Write(w, http.StatusOK, toCartResponse(l))
	}
}

// updateItemHandler godoc
// @Summary Cambiar cantidad
// @Description Suma delta a la línea; si queda en 0 o menos se elimina. Un producto que no está en el carrito no cambia nada.
// @Tags cart
// @Accept json
// @Produce json
// @Param productID path string true "ID del producto"
// @Param payload body updateItemRequest true "Delta (positivo o negativo)"
// @Success 200 {object} cartResponse
// @Failure 400 {string} string "invalid json"
// @Router /cart/items/{productID} [patch]
func updateItemHandler(l *Ledger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateItemRequest
		if err := httpjson.Decode(r, &req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}
		l.UpdateQuantity(chi.URLParam(r, "productID"), req.Delta)
		httpjson.Write(w, http.StatusOK, toCartResponse(l))
	}
}

// checkoutHandler godoc
// @Summary Pagar
// @Description El carrito se vacía solo si el proveedor confirma el pedido.
// @Tags cart
// @Produce json
// @Success 200 {object} checkoutResponse
// @Failure 409 {string} string "cart is empty"
// @Failure 502 {string} string "checkout failed"
// @Router /cart/checkout [post]
func checkoutHandler(l *Ledger, c *Checkout) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rcpt, err := c.Run(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, ErrEmptyCart):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, ErrCheckoutFailed):
				http.Error(w, err.Error(), http.StatusBadGateway)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		httpjson.Write(w, http.StatusOK, checkoutResponse{Receipt: rcpt, Cart: toCartResponse(l)})
	}
}
