// Package renderer renders inventory results as markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/pantry"
)

// Groceries renders a list of groceries as a markdown table under a title.
func Groceries(title string, list []pantry.Grocery) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(list) == 0 {
		fmt.Fprintln(&b, "_No groceries._")
		return b.String()
	}
	fmt.Fprintln(&b, "| Name | Quantity | Unit | Total | Expiry |")
	fmt.Fprintln(&b, "|:---|---:|:---|---:|:---|")
	for _, g := range list {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
			cell(g.Name()),
			g.Quantity(),
			g.Unit(),
			g.Total(),
			g.Expiry(),
		)
	}
	return b.String()
}

// Valuation renders a single labelled amount.
func Valuation(label string, m pantry.Money) string {
	return fmt.Sprintf("**%s:** %s\n", label, m)
}
