package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/pantry"
)

// RecipeCheck renders the stock status of every ingredient of a recipe.
func RecipeCheck(c pantry.RecipeCheck) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Recipe: %s\n\n", c.Recipe)
	fmt.Fprintln(&b, "| Ingredient | Needed | Status | On hand |")
	fmt.Fprintln(&b, "|:---|---:|:---:|:---|")
	for _, i := range c.Ingredients {
		status := "missing"
		if i.Available {
			status = "ok"
		}
		fmt.Fprintf(&b, "| %s | %s %s | %s | %s |\n", cell(i.Name), i.Quantity, i.Unit, status, onHand(i.OnHand))
	}

	ConditionalBlock(&b, func(w io.Writer) bool {
		missing := c.Missing()
		if len(missing) == 0 {
			fmt.Fprintf(w, "\nAll ingredients are in stock.\n")
			return true
		}
		names := make([]string, 0, len(missing))
		for _, m := range missing {
			names = append(names, m.Name)
		}
		fmt.Fprintf(w, "\nMissing: %s.\n", strings.Join(names, ", "))
		return true
	})
	return b.String()
}

// Cookbook renders the list of recipes, marking those that can be prepared.
func Cookbook(book pantry.Cookbook, ready []pantry.Recipe) string {
	isReady := make(map[string]bool, len(ready))
	for _, r := range ready {
		isReady[r.Name] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Cookbook\n\n")
	if len(book) == 0 {
		fmt.Fprintln(&b, "_No recipes._")
		return b.String()
	}
	fmt.Fprintln(&b, "| Recipe | Ingredients | Ready |")
	fmt.Fprintln(&b, "|:---|---:|:---:|")
	for _, r := range book {
		mark := " "
		if isReady[r.Name] {
			mark = "X"
		}
		fmt.Fprintf(&b, "| %s | %d | %s |\n", cell(r.Name), len(r.Ingredients), mark)
	}
	return b.String()
}

// onHand summarizes lots as "2 kilogram (2025-01-01)" items.
func onHand(list []pantry.Grocery) string {
	if len(list) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(list))
	for _, g := range list {
		parts = append(parts, fmt.Sprintf("%s %s %s (%s)", cell(g.Name()), g.Quantity(), g.Unit(), g.Expiry()))
	}
	return strings.Join(parts, "; ")
}
