package pantry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	"github.com/etnz/pantry/date"
)

type inventoryTestContext struct {
	inv *Inventory
	err error
}

func (c *inventoryTestContext) reset() {
	c.inv = NewInventory(WithCurrency("EUR"))
	c.err = nil
}

func (c *inventoryTestContext) anEmptyInventory() error {
	c.reset()
	return nil
}

func (c *inventoryTestContext) iAdd(quantity, unit, name, total, expiry string) error {
	g, err := ParseGrocery(name, quantity, total, unit, expiry)
	if err != nil {
		return err
	}
	return c.inv.Add(g)
}

func (c *inventoryTestContext) iRemove(quantity, name string) error {
	q, err := ParseQuantity(quantity)
	if err != nil {
		return err
	}
	c.err = c.inv.Remove(name, q)
	return nil
}

func (c *inventoryTestContext) theOperationFailsWith(message string) error {
	if c.err == nil {
		return errors.New("expected the operation to fail but it succeeded")
	}
	if !strings.Contains(c.err.Error(), message) {
		return fmt.Errorf("expected error containing %q, got %q", message, c.err)
	}
	return nil
}

func (c *inventoryTestContext) hasLots(name string, n int) error {
	list, err := c.inv.Search(name)
	if err != nil {
		return err
	}
	if len(list) != n {
		return fmt.Errorf("expected %d lots of %q, got %d", n, name, len(list))
	}
	return nil
}

func (c *inventoryTestContext) theLotHolds(name, expiry, quantity, total string) error {
	on, err := date.Parse(expiry)
	if err != nil {
		return err
	}
	list, err := c.inv.Search(name)
	if err != nil {
		return err
	}
	for _, g := range list {
		if g.Expiry() != on {
			continue
		}
		if g.Quantity().String() != quantity || g.Total().value.String() != total {
			return fmt.Errorf("expected %s worth %s, got %s worth %s", quantity, total, g.Quantity(), g.Total().value)
		}
		return nil
	}
	return fmt.Errorf("no lot of %q expiring on %s", name, expiry)
}

func (c *inventoryTestContext) searchingFailsWith(name, message string) error {
	_, c.err = c.inv.Search(name)
	return c.theOperationFailsWith(message)
}

func (c *inventoryTestContext) theInventoryIsWorth(total string) error {
	if got := c.inv.TotalValuation().value.String(); got != total {
		return fmt.Errorf("expected the inventory to be worth %s, got %s", total, got)
	}
	return nil
}

func (c *inventoryTestContext) valuingAnEmptyListFailsWith(message string) error {
	_, c.err = c.inv.Valuation(nil)
	return c.theOperationFailsWith(message)
}

func (c *inventoryTestContext) theSortedListingFailsWith(message string) error {
	_, c.err = c.inv.Sorted()
	return c.theOperationFailsWith(message)
}

func (c *inventoryTestContext) expiredBefore(n int, day string) error {
	list, err := c.inv.ExpiredBefore(day)
	if err != nil {
		return err
	}
	if len(list) != n {
		return fmt.Errorf("expected %d expired groceries, got %d", n, len(list))
	}
	return nil
}

func (c *inventoryTestContext) availability(quantity, unit, name, not string) error {
	q, err := ParseQuantity(quantity)
	if err != nil {
		return err
	}
	want := not == ""
	if got := c.inv.IsAvailable(name, q, unit); got != want {
		return fmt.Errorf("IsAvailable(%q, %s, %q) = %v, want %v", name, quantity, unit, got, want)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &inventoryTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^an empty inventory$`, tc.anEmptyInventory)
	ctx.Step(`^I add ([\d.]+) (\w+) of "([^"]*)" worth ([\d.]+) expiring on (\S+)$`, tc.iAdd)
	ctx.Step(`^I remove ([\d.]+) of "([^"]*)"$`, tc.iRemove)
	ctx.Step(`^the operation fails with "([^"]*)"$`, tc.theOperationFailsWith)
	ctx.Step(`^"([^"]*)" has (\d+) lots?$`, tc.hasLots)
	ctx.Step(`^searching "([^"]*)" finds (\d+) lots?$`, tc.hasLots)
	ctx.Step(`^the lot of "([^"]*)" expiring on (\S+) holds ([\d.]+) worth ([\d.]+)$`, tc.theLotHolds)
	ctx.Step(`^searching "([^"]*)" fails with "([^"]*)"$`, tc.searchingFailsWith)
	ctx.Step(`^the inventory is worth ([\d.]+)$`, tc.theInventoryIsWorth)
	ctx.Step(`^valuing an empty list fails with "([^"]*)"$`, tc.valuingAnEmptyListFailsWith)
	ctx.Step(`^the sorted listing fails with "([^"]*)"$`, tc.theSortedListingFailsWith)
	ctx.Step(`^(\d+) groceries expired before (\S+)$`, tc.expiredBefore)
	ctx.Step(`^([\d.]+) (\w+) of "([^"]*)" is (not )?available$`, tc.availability)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
