package pantry

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookbookTOML = `
[[recipe]]
name = "Pancakes"

  [[recipe.ingredient]]
  name = "Milk"
  quantity = 0.5
  unit = "liter"

  [[recipe.ingredient]]
  name = "Eggs"
  quantity = 2
  unit = "pcs"

  [[recipe.ingredient]]
  name = "Flour"
  quantity = "0.25"
  unit = "Kilogram"

[[recipe]]
name = "Boiled eggs"

  [[recipe.ingredient]]
  name = "Eggs"
  quantity = 4
  unit = "pcs"
`

func TestDecodeCookbook(t *testing.T) {
	book, err := DecodeCookbook(strings.NewReader(cookbookTOML))
	require.NoError(t, err)
	require.Len(t, book, 2)

	pancakes, err := book.Find("pancakes")
	require.NoError(t, err)
	require.Len(t, pancakes.Ingredients, 3)
	assert.Equal(t, "Flour", pancakes.Ingredients[2].Name)
	assert.True(t, pancakes.Ingredients[2].Quantity.Equal(Q(0.25)))
	assert.Equal(t, Kilogram, pancakes.Ingredients[2].Unit)

	_, err = book.Find("Lasagna")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDecodeCookbook_Errors(t *testing.T) {
	input := `
[[recipe]]
name = ""

[[recipe]]
name = "Soup"

  [[recipe.ingredient]]
  name = "Water"
  quantity = 1
  unit = "cup"

  [[recipe.ingredient]]
  name = "Salt"
  quantity = 0
  unit = "kilogram"
`
	_, err := DecodeCookbook(strings.NewReader(input))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	// every invalid entry is reported.
	assert.Contains(t, err.Error(), "Water")
	assert.Contains(t, err.Error(), "Salt")

	_, err = DecodeCookbook(strings.NewReader(`[[recipe]`))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRecipe_Check(t *testing.T) {
	book, err := DecodeCookbook(strings.NewReader(cookbookTOML))
	require.NoError(t, err)

	inv := NewInventory()
	require.NoError(t, inv.Add(grocery(t, "Milk", 1, 1.2, Liter, "2025-01-01")))
	require.NoError(t, inv.Add(grocery(t, "Eggs", 6, 3, Pieces, "2025-01-10")))
	require.NoError(t, inv.Add(grocery(t, "flour", 1, 1, Kilogram, "2025-06-01")))

	pancakes, err := book.Find("Pancakes")
	require.NoError(t, err)
	check, err := pancakes.Check(inv)
	require.NoError(t, err)

	// "flour" is on hand (Search ignores case) but not available for "Flour" (IsAvailable does not).
	assert.False(t, check.Ready())
	missing := check.Missing()
	require.Len(t, missing, 1)
	assert.Equal(t, "Flour", missing[0].Name)
	assert.Len(t, check.Ingredients[2].OnHand, 1)

	ready, err := book.Ready(inv)
	require.NoError(t, err)
	require.Len(t, ready, 1)
	assert.Equal(t, "Boiled eggs", ready[0].Name)
}

func TestRecipe_CheckNothingOnHand(t *testing.T) {
	r := Recipe{Name: "Toast", Ingredients: []Ingredient{{Name: "Bread", Quantity: Q(2), Unit: Pieces}}}
	check, err := r.Check(NewInventory())
	require.NoError(t, err)
	assert.False(t, check.Ready())
	assert.Empty(t, check.Ingredients[0].OnHand)
}

func TestRecipe_CheckPropagatesValidation(t *testing.T) {
	r := Recipe{Name: "Nothing", Ingredients: []Ingredient{{Name: " ", Quantity: Q(1), Unit: Pieces}}}
	_, err := r.Check(NewInventory())
	assert.True(t, errors.Is(err, ErrValidation), "err = %v", err)
}
