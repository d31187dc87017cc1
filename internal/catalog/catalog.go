// Package catalog holds the fixed set of letters and their categories.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/starletters/internal/model"
)

// ErrInvariantViolation reports a catalog whose declared structure does not
// match its contents.
var ErrInvariantViolation = errors.New("catalog invariant violation")

// Catalog is the read-only collection of letters shown during a session.
type Catalog struct {
	items      []model.Item
	categories []model.Category
	final      model.FinalItem

	byID       map[int]int
	byCategory map[string][]int
}

// New builds a catalog and checks its consistency.
func New(categories []model.Category, items []model.Item, final model.FinalItem) (*Catalog, error) {
	c := &Catalog{
		items:      append([]model.Item(nil), items...),
		categories: append([]model.Category(nil), categories...),
		final:      final,
		byID:       make(map[int]int, len(items)),
		byCategory: make(map[string][]int, len(categories)),
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalog) validate() error {
	if len(c.categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvariantViolation)
	}
	symbols := make(map[string]string, len(c.categories))
	for _, cat := range c.categories {
		if cat.Name == "" {
			return fmt.Errorf("%w: category with empty name", ErrInvariantViolation)
		}
		if _, ok := symbols[cat.Name]; ok {
			return fmt.Errorf("%w: duplicate category %q", ErrInvariantViolation, cat.Name)
		}
		symbols[cat.Name] = cat.Symbol
		c.byCategory[cat.Name] = nil
	}
	for i, item := range c.items {
		if _, ok := c.byID[item.ID]; ok {
			return fmt.Errorf("%w: duplicate item id %d", ErrInvariantViolation, item.ID)
		}
		if _, ok := symbols[item.Category]; !ok {
			return fmt.Errorf("%w: item %d names unknown category %q", ErrInvariantViolation, item.ID, item.Category)
		}
		if c.items[i].CategorySymbol == "" {
			c.items[i].CategorySymbol = symbols[item.Category]
		}
		c.byID[item.ID] = i
		c.byCategory[item.Category] = append(c.byCategory[item.Category], i)
	}
	if len(c.items) == 0 {
		return fmt.Errorf("%w: no letters", ErrInvariantViolation)
	}
	if strings.TrimSpace(c.final.Text) == "" {
		return fmt.Errorf("%w: final letter has no text", ErrInvariantViolation)
	}
	if _, ok := c.byID[c.final.ID]; ok {
		return fmt.Errorf("%w: final item id %d collides with an ordinary item", ErrInvariantViolation, c.final.ID)
	}
	for _, cat := range c.categories {
		if got := len(c.byCategory[cat.Name]); got != cat.Total {
			return fmt.Errorf("%w: category %q declares %d items, catalog has %d", ErrInvariantViolation, cat.Name, cat.Total, got)
		}
	}
	return nil
}

// Items returns the ordinary items in catalog order.
func (c *Catalog) Items() []model.Item {
	return append([]model.Item(nil), c.items...)
}

// Categories returns the categories in catalog order.
func (c *Catalog) Categories() []model.Category {
	return append([]model.Category(nil), c.categories...)
}

// Final returns the final item.
func (c *Catalog) Final() model.FinalItem {
	return c.final
}

// Item looks up an ordinary item by id.
func (c *Catalog) Item(id int) (model.Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return model.Item{}, false
	}
	return c.items[idx], true
}

// Category looks up a category by name.
func (c *Catalog) Category(name string) (model.Category, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return model.Category{}, false
}

// ItemsIn returns the ordinary items of a category in catalog order.
func (c *Catalog) ItemsIn(name string) []model.Item {
	idxs := c.byCategory[name]
	out := make([]model.Item, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, c.items[idx])
	}
	return out
}

// Len returns the number of ordinary items.
func (c *Catalog) Len() int {
	return len(c.items)
}
