// Package pantry keeps the inventory of perishable groceries of a household.
//
// The core is the Inventory, an in-memory ledger of lots:
//   - Lots: a lot is a quantity of one grocery, at one expiry date, with the
//     total price paid for it. A lot is identified by its name and expiry,
//     adding an existing lot merges quantities and totals.
//   - Consumption: removing a quantity consumes lots in the order they were
//     added. A partially consumed lot keeps its unit price and its total is
//     prorated.
//   - Queries: case-insensitive search, expiry filters, valuations, and a
//     listing sorted by name.
//   - Recipes: a Cookbook checks its recipes against the stock.
//
// This package serves as the foundational logic for the `gro` command-line
// tool, which only calls the Inventory and renders its results.
package pantry
