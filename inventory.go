package pantry

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/etnz/pantry/date"
	"go.uber.org/zap"
)

// Store is the set of ledger operations offered to collaborators (menus,
// recipe checkers). Inventory is the in-memory implementation.
type Store interface {
	Add(g Grocery) error
	Remove(name string, q Quantity) error
	Search(name string) ([]Grocery, error)
	ExpiredBefore(day string) ([]Grocery, error)
	Valuation(list []Grocery) (Money, error)
	TotalValuation() Money
	Sorted() ([]Grocery, error)
	IsAvailable(name string, q Quantity, unit string) bool
}

var _ Store = (*Inventory)(nil)

// Inventory is the ledger of all groceries in stock, indexed by name.
//
// Lots are identified by (name, expiry): adding a lot that already exists
// merges it. Inventory is safe for concurrent use, every method returns copies.
type Inventory struct {
	mu       sync.RWMutex
	buckets  map[string]lots // lots by exact grocery name, never empty
	currency string
	logger   *zap.Logger
}

// Option configures an Inventory.
type Option func(*Inventory)

// WithCurrency sets the single currency of the inventory. Without it, the
// inventory adopts the currency of the first priced grocery added.
func WithCurrency(currency string) Option {
	return func(inv *Inventory) { inv.currency = currency }
}

// WithLogger sets the logger used to trace mutations.
func WithLogger(logger *zap.Logger) Option {
	return func(inv *Inventory) { inv.logger = logger }
}

// NewInventory creates an empty inventory.
func NewInventory(opts ...Option) *Inventory {
	inv := &Inventory{
		buckets: make(map[string]lots),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Currency returns the inventory currency, possibly empty if nothing priced was added yet.
func (inv *Inventory) Currency() string {
	inv.mu.RLock()
	defer inv.mu.RUnlock()
	return inv.currency
}

// Add stores g. If a lot with the same name and expiry exists, g is merged into it.
func (inv *Inventory) Add(g Grocery) error {
	if err := validateGrocery(g); err != nil {
		return err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	if !g.total.compatible(inv.currency) {
		return fmt.Errorf("%w: %q is priced in %s but the inventory is in %s", ErrValidation, g.name, g.total.Currency(), inv.currency)
	}
	if inv.currency == "" {
		inv.currency = g.total.Currency()
	}
	g.total = g.total.in(inv.currency)

	bucket, merged := inv.buckets[g.name].merge(g)
	inv.buckets[g.name] = bucket

	inv.logger.Debug("grocery added",
		zap.String("name", g.name),
		zap.Stringer("quantity", g.quantity),
		zap.Stringer("total", g.total),
		zap.Stringer("expiry", g.expiry),
		zap.Bool("merged", merged),
	)
	return nil
}

// Remove consumes q of the grocery 'name' across its lots, in insertion order.
//
// It fails with ErrInsufficientQuantity, and changes nothing, if less than q is on hand.
func (inv *Inventory) Remove(name string, q Quantity) error {
	if err := validateRemoval(name, q); err != nil {
		return err
	}

	inv.mu.Lock()
	defer inv.mu.Unlock()

	bucket := inv.buckets[name]
	if err := validateNonEmpty(bucket); err != nil {
		return fmt.Errorf("cannot remove %q: %w", name, err)
	}
	if available := bucket.available(); q.GreaterThan(available) {
		return fmt.Errorf("%w: cannot remove %s of %q, only %s available", ErrInsufficientQuantity, q, name, available)
	}

	bucket = bucket.consume(q)
	if len(bucket) == 0 {
		delete(inv.buckets, name)
	} else {
		inv.buckets[name] = bucket
	}

	inv.logger.Debug("grocery removed",
		zap.String("name", name),
		zap.Stringer("quantity", q),
		zap.Int("lots_left", len(bucket)),
	)
	return nil
}

// each calls f on every lot, buckets in name order, lots in insertion order.
// The caller holds the lock.
func (inv *Inventory) each(f func(g Grocery)) {
	for _, name := range slices.Sorted(maps.Keys(inv.buckets)) {
		for _, g := range inv.buckets[name] {
			f(g)
		}
	}
}

// collect returns a copy of every lot matching keep.
func (inv *Inventory) collect(keep func(g Grocery) bool) []Grocery {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	var list []Grocery
	inv.each(func(g Grocery) {
		if keep(g) {
			list = append(list, g)
		}
	})
	return list
}

// Search returns every lot whose name matches 'name', case-insensitively.
//
// Note that IsAvailable matches names case-sensitively, the two rules differ.
func (inv *Inventory) Search(name string) ([]Grocery, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	list := inv.collect(func(g Grocery) bool { return strings.EqualFold(g.name, name) })
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no grocery named %q", ErrNotFound, name)
	}
	return list, nil
}

// ExpiredBefore returns every lot expiring strictly before 'day' (YYYY-MM-DD).
//
// An empty result is not an error.
func (inv *Inventory) ExpiredBefore(day string) ([]Grocery, error) {
	on, err := date.Parse(day)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return inv.collect(func(g Grocery) bool { return g.expiry.Before(on) }), nil
}

// Expiring returns every lot expiring within r, boundaries included.
func (inv *Inventory) Expiring(r date.Range) []Grocery {
	return inv.collect(func(g Grocery) bool { return r.Contains(g.expiry) })
}

// Valuation returns the summed total price of 'list'. It fails with ErrNotFound if list is empty.
func (inv *Inventory) Valuation(list []Grocery) (Money, error) {
	if err := validateNonEmpty(list); err != nil {
		return Money{}, err
	}
	return sum(list, inv.Currency())
}

// TotalValuation returns the summed total price of every lot in stock, zero for an empty inventory.
func (inv *Inventory) TotalValuation() Money {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	total := M(0, inv.currency)
	inv.each(func(g Grocery) { total = total.Add(g.total) })
	return total
}

// Sorted returns every lot sorted by name. It fails with ErrNotFound if the inventory is empty.
func (inv *Inventory) Sorted() ([]Grocery, error) {
	list := inv.All()
	if err := validateNonEmpty(list); err != nil {
		return nil, fmt.Errorf("inventory is empty: %w", err)
	}
	slices.SortStableFunc(list, func(a, b Grocery) int { return cmp.Compare(a.name, b.name) })
	return list, nil
}

// IsAvailable reports whether a single lot named exactly 'name' (case-sensitive)
// holds at least q, in a unit whose label equals 'unit' case-insensitively.
func (inv *Inventory) IsAvailable(name string, q Quantity, unit string) bool {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	for _, g := range inv.buckets[name] {
		if g.quantity.GreaterThanOrEqual(q) && strings.EqualFold(g.unit.String(), unit) {
			return true
		}
	}
	return false
}

// All returns a copy of every lot in stock.
func (inv *Inventory) All() []Grocery {
	return inv.collect(func(Grocery) bool { return true })
}

// Len returns the number of lots in stock.
func (inv *Inventory) Len() int {
	inv.mu.RLock()
	defer inv.mu.RUnlock()

	n := 0
	for _, bucket := range inv.buckets {
		n += len(bucket)
	}
	return n
}

// sum adds up the total price of every grocery in list, all in 'currency'.
func sum(list []Grocery, currency string) (Money, error) {
	total := M(0, currency)
	for _, g := range list {
		if !g.total.compatible(total.Currency()) {
			return Money{}, fmt.Errorf("%w: %q is priced in %s, not %s", ErrValidation, g.name, g.total.Currency(), total.Currency())
		}
		total = total.Add(g.total)
	}
	return total, nil
}
