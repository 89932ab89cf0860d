package catalog

import (
	"errors"
	"slices"
	"strings"

	"pet-digital-twin/internal/domain/cart"
)

var (
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownKind     = errors.New("unknown recommendation kind")
	ErrProductMissing  = errors.New("recommended product not in catalog")
)

const CategoryAll = "All"

var categories = []string{CategoryAll, "Nutrition", "Treats", "Habitat", "Tech"}

func Categories() []string { return slices.Clone(categories) }

var products = []cart.Product{
	{
		ID: "p1", Name: "Royal Canin® Urinary SO", Category: "Nutrition", Price: 89.99,
		Image: "/products/royal-canin-urinary.jpg", Species: []string{"Dog", "Cat"},
		Description: "Veterinary exclusive diet for urinary health.",
	},
	{
		ID: "p2", Name: "Mazuri® Aquatic Turtle Diet", Category: "Nutrition", Price: 24.99,
		Image: "/products/mazuri-turtle.jpg", Species: []string{"Turtle"},
		Description: "Complete nutrition for all life stages of fresh water turtles.",
	},
	{
		ID: "p3", Name: "Greenies™ Dental Treats", Category: "Treats", Price: 18.99,
		Image: "/products/greenies.jpg", Species: []string{"Dog"},
		Description: "One a day helps keep tartar away.",
	},
	{
		ID: "p4", Name: "Fluval® UVB Bulb 13W", Category: "Habitat", Price: 34.99,
		Image: "/products/fluval-uvb.jpg", Species: []string{"Turtle", "Lizard"},
		Description: "Essential UVB light for calcium absorption and healthy shell growth.",
	},
	{
		ID: "p5", Name: "Whistle™ Health Device", Category: "Tech", Price: 149.00,
		Image: "/products/whistle.jpg", Species: []string{"Dog"},
		Description: "Smart device to track behavior, health, and location.",
	},
}

// Products devuelve copias del catálogo en orden fijo.
func Products() []cart.Product {
	out := make([]cart.Product, len(products))
	for i, p := range products {
		p.Species = slices.Clone(p.Species)
		out[i] = p
	}
	return out
}

func Lookup(id string) (cart.Product, bool) {
	for _, p := range Products() {
		if p.ID == id {
			return p, true
		}
	}
	return cart.Product{}, false
}

const (
	GroupTurtle = "Turtle"
	GroupDog    = "Dog"
)

// SpeciesGroup agrupa la especie libre en los dos grupos que conoce la tienda.
func SpeciesGroup(species string) string {
	if strings.Contains(species, "Turtle") || strings.Contains(species, "Cooter") {
		return GroupTurtle
	}
	return GroupDog
}

type Listing struct {
	cart.Product
	Recommended bool `json:"recommended"`
}

// List con category "" o All pone primero lo recomendado para la especie;
// con una categoría concreta filtra y conserva el orden del catálogo.
func List(species, category string) ([]Listing, error) {
	group := SpeciesGroup(species)
	category = strings.TrimSpace(category)
	if category == "" {
		category = CategoryAll
	}
	if !slices.Contains(categories, category) {
		return nil, ErrUnknownCategory
	}

	var rec, other []Listing
	for _, p := range Products() {
		l := Listing{Product: p, Recommended: slices.Contains(p.Species, group)}
		switch {
		case category != CategoryAll:
			if p.Category == category {
				rec = append(rec, l)
			}
		case l.Recommended:
			rec = append(rec, l)
		default:
			other = append(other, l)
		}
	}
	return append(rec, other...), nil
}
