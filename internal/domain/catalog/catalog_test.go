package catalog

import (
	"testing"

	"pet-digital-twin/internal/domain/cart"
	"pet-digital-twin/internal/domain/pets"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listingIDs(ls []Listing) []string {
	out := make([]string, 0, len(ls))
	for _, l := range ls {
		out = append(out, l.ID)
	}
	return out
}

func TestSpeciesGroup(t *testing.T) {
	assert.Equal(t, GroupTurtle, SpeciesGroup("Florida Red-Bellied Turtle (Pseudemys nelsoni)"))
	assert.Equal(t, GroupTurtle, SpeciesGroup("River Cooter"))
	assert.Equal(t, GroupDog, SpeciesGroup("Scottish Terrier"))
}

func TestListRecommendedFirst(t *testing.T) {
	ls, err := List("Florida Red-Bellied Turtle", "")
	require.NoError(t, err)

	assert.Equal(t, []string{"p2", "p4", "p1", "p3", "p5"}, listingIDs(ls))
	assert.True(t, ls[0].Recommended)
	assert.False(t, ls[2].Recommended)

	ls, err = List("Scottish Terrier", CategoryAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3", "p5", "p2", "p4"}, listingIDs(ls))
}

func TestListByCategory(t *testing.T) {
	ls, err := List("Scottish Terrier", "Nutrition")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, listingIDs(ls))
	assert.True(t, ls[0].Recommended)
	assert.False(t, ls[1].Recommended)

	_, err = List("Scottish Terrier", "Toys")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestRecommend(t *testing.T) {
	turtle := pets.Pet{Profile: pets.Profile{Species: "Florida Red-Bellied Turtle"}}
	dog := pets.Pet{Profile: pets.Profile{Species: "Scottish Terrier"}}

	cases := []struct {
		p    pets.Pet
		kind Kind
		id   string
		want float64
	}{
		{dog, KindDentalCheck, "p3", 18.99},
		{turtle, KindDentalCheck, "p4", 34.99},
		{turtle, KindHealthPredictor, "p6", 12.99},
		{dog, KindHealthPredictor, "p7", 94.99},
	}
	for _, tc := range cases {
		prod, err := Recommend(tc.p, tc.kind)
		require.NoError(t, err)
		assert.Equal(t, tc.id, prod.ID)
		assert.Equal(t, tc.want, prod.Price)
	}

	_, err := Recommend(dog, "x-ray")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRecommendFailsWhenProductMissing(t *testing.T) {
	saved := products
	t.Cleanup(func() { products = saved })
	products = []cart.Product{saved[0]}

	dog := pets.Pet{Profile: pets.Profile{Species: "Scottish Terrier"}}
	_, err := Recommend(dog, KindDentalCheck)

	assert.ErrorIs(t, err, ErrProductMissing)
	assert.Contains(t, err.Error(), "p3")
}

func TestProductsAreCopies(t *testing.T) {
	ps := Products()
	ps[0].Species[0] = "Ferret"
	assert.Equal(t, "Dog", Products()[0].Species[0])
}
