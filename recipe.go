package pantry

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Ingredient is a quantity of a grocery a recipe needs.
type Ingredient struct {
	Name     string
	Quantity Quantity
	Unit     Unit
}

// Recipe is a named list of ingredients.
type Recipe struct {
	Name        string
	Ingredients []Ingredient
}

// Checker is the part of a Store a recipe is checked against.
type Checker interface {
	IsAvailable(name string, q Quantity, unit string) bool
	Search(name string) ([]Grocery, error)
}

// IngredientCheck is the stock status of one ingredient.
type IngredientCheck struct {
	Ingredient
	Available bool      // a single lot covers the ingredient
	OnHand    []Grocery // lots with a matching name, in any case
}

// RecipeCheck is the stock status of a whole recipe.
type RecipeCheck struct {
	Recipe      string
	Ingredients []IngredientCheck
}

// Ready reports whether every ingredient is available.
func (c RecipeCheck) Ready() bool {
	for _, i := range c.Ingredients {
		if !i.Available {
			return false
		}
	}
	return true
}

// Missing returns the ingredients that are not available.
func (c RecipeCheck) Missing() []Ingredient {
	var missing []Ingredient
	for _, i := range c.Ingredients {
		if !i.Available {
			missing = append(missing, i.Ingredient)
		}
	}
	return missing
}

// Check checks every ingredient of r against the stock.
func (r Recipe) Check(s Checker) (RecipeCheck, error) {
	check := RecipeCheck{Recipe: r.Name}
	for _, in := range r.Ingredients {
		onHand, err := s.Search(in.Name)
		if err != nil && !errors.Is(err, ErrNotFound) {
			return RecipeCheck{}, fmt.Errorf("cannot check %q for recipe %q: %w", in.Name, r.Name, err)
		}
		check.Ingredients = append(check.Ingredients, IngredientCheck{
			Ingredient: in,
			Available:  s.IsAvailable(in.Name, in.Quantity, in.Unit.String()),
			OnHand:     onHand,
		})
	}
	return check, nil
}

// Cookbook is an ordered list of recipes.
type Cookbook []Recipe

// Find returns the recipe named 'name', case-insensitively.
func (c Cookbook) Find(name string) (Recipe, error) {
	for _, r := range c {
		if strings.EqualFold(r.Name, name) {
			return r, nil
		}
	}
	return Recipe{}, fmt.Errorf("%w: no recipe named %q", ErrNotFound, name)
}

// Ready returns the recipes that can be prepared with the current stock.
func (c Cookbook) Ready(s Checker) ([]Recipe, error) {
	var ready []Recipe
	for _, r := range c {
		check, err := r.Check(s)
		if err != nil {
			return nil, err
		}
		if check.Ready() {
			ready = append(ready, r)
		}
	}
	return ready, nil
}

// DecodeCookbook reads a cookbook from a TOML document:
//
//	[[recipe]]
//	name = "Pancakes"
//
//	  [[recipe.ingredient]]
//	  name = "Milk"
//	  quantity = 0.5
//	  unit = "liter"
//
// Quantities can be numbers or strings. All invalid entries are reported together.
func DecodeCookbook(r io.Reader) (Cookbook, error) {
	// tomlCookbook is the document as read by the toml parser.
	type tomlCookbook struct {
		Recipe []struct {
			Name       string `toml:"name"`
			Ingredient []struct {
				Name     string `toml:"name"`
				Quantity any    `toml:"quantity"`
				Unit     string `toml:"unit"`
			} `toml:"ingredient"`
		} `toml:"recipe"`
	}

	var doc tomlCookbook
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: cannot parse cookbook: %w", ErrValidation, err)
	}

	var errs error
	book := make(Cookbook, 0, len(doc.Recipe))
	for _, tr := range doc.Recipe {
		if err := ValidateName(tr.Name); err != nil {
			errs = errors.Join(errs, fmt.Errorf("recipe: %w", err))
			continue
		}
		recipe := Recipe{Name: tr.Name}
		for _, ti := range tr.Ingredient {
			in, err := newIngredient(ti.Name, ti.Quantity, ti.Unit)
			if err != nil {
				errs = errors.Join(errs, fmt.Errorf("recipe %q: %w", tr.Name, err))
				continue
			}
			recipe.Ingredients = append(recipe.Ingredients, in)
		}
		book = append(book, recipe)
	}
	if errs != nil {
		return nil, errs
	}
	return book, nil
}

// newIngredient validates an ingredient from raw toml values.
func newIngredient(name string, quantity any, unit string) (Ingredient, error) {
	if err := ValidateName(name); err != nil {
		return Ingredient{}, err
	}
	var q Quantity
	switch v := quantity.(type) {
	case int64:
		q = Q(v)
	case float64:
		q = Q(v)
	case string:
		var err error
		if q, err = ParseQuantity(v); err != nil {
			return Ingredient{}, err
		}
	default:
		return Ingredient{}, fmt.Errorf("%w: quantity of %q is missing", ErrValidation, name)
	}
	if !q.IsPositive() {
		return Ingredient{}, fmt.Errorf("%w: quantity of %q must be positive", ErrValidation, name)
	}
	u, err := ParseUnit(unit)
	if err != nil {
		return Ingredient{}, fmt.Errorf("ingredient %q: %w", name, err)
	}
	return Ingredient{Name: name, Quantity: q, Unit: u}, nil
}

