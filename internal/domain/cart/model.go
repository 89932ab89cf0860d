package cart

import "strings"

// Product se copia por valor al carrito; cambios posteriores del catálogo no lo afectan.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Image       string   `json:"image,omitempty"`
	Species     []string `json:"species,omitempty"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
}

func (p Product) clone() Product {
	p.Species = append([]string(nil), p.Species...)
	return p
}

func (p Product) valid() bool {
	return strings.TrimSpace(p.ID) != "" && p.Price >= 0
}

type LineItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

type State string

const (
	StateEmpty     State = "Empty"
	StatePopulated State = "Populated"
)
