package catalog

import (
	"fmt"
	"strings"

	"pet-digital-twin/internal/domain/cart"
	"pet-digital-twin/internal/domain/pets"
)

type Kind string

const (
	// KindDentalCheck es el chequeo por cámara: dental para perros, caparazón para tortugas.
	KindDentalCheck     Kind = "dental-check"
	KindHealthPredictor Kind = "health-predictor"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindDentalCheck, KindHealthPredictor:
		return k, nil
	}
	return "", ErrUnknownKind
}

var (
	vitaminATurtleDiet = cart.Product{
		ID: "p6", Name: "Mazuri® Aquatic Turtle Diet (Vitamin A enriched)", Price: 12.99,
		Image: "/products/mazuri-turtle.jpg", Species: []string{"Turtle"}, Category: "Nutrition",
	}
	jointMobilityDiet = cart.Product{
		ID: "p7", Name: "Royal Canin® Eukanuba Joint Mobility", Price: 94.99,
		Image: "/products/royal-canin-urinary.jpg", Species: []string{"Dog"}, Category: "Nutrition",
	}
)

// Recommend devuelve el producto que el diagnóstico empuja al carrito.
func Recommend(p pets.Pet, kind Kind) (cart.Product, error) {
	turtle := SpeciesGroup(p.Profile.Species) == GroupTurtle

	switch kind {
	case KindDentalCheck:
		id := "p3"
		if turtle {
			id = "p4"
		}
		prod, ok := Lookup(id)
		if !ok {
			return cart.Product{}, fmt.Errorf("%w: %s", ErrProductMissing, id)
		}
		return prod, nil
	case KindHealthPredictor:
		if turtle {
			return clone(vitaminATurtleDiet), nil
		}
		return clone(jointMobilityDiet), nil
	default:
		return cart.Product{}, ErrUnknownKind
	}
}

func clone(p cart.Product) cart.Product {
	p.Species = append([]string(nil), p.Species...)
	return p
}
