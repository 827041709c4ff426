// Package cart implements the storefront shopping cart over durable
// storage. The whole cart lives as a single JSON record; every mutation
// is a synchronous read-modify-write, last write wins.
package cart

import (
	"encoding/json"
	"fmt"

	"github.com/Nikita-Dem/StreetCoffeeSait/models"
	"github.com/Nikita-Dem/StreetCoffeeSait/storage"
)

type Cart struct {
	store storage.Store
}

func New(store storage.Store) *Cart {
	return &Cart{store: store}
}

// load reads the stored items. A missing or corrupt record reads as an
// empty cart, never an error.
func (c *Cart) load() []models.CartItem {
	data, err := c.store.Get(storage.CartKey)
	if err != nil {
		return nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil
	}
	return items
}

func (c *Cart) save(items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.store.Put(storage.CartKey, data)
}

// AddItem merges by item ID: an existing line gets its quantity bumped by
// item.Quantity, a new one is appended. Name and price are trusted as
// given, there is no catalog lookup here.
func (c *Cart) AddItem(item models.CartItem) error {
	items := c.load()
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			return c.save(items)
		}
	}
	return c.save(append(items, item))
}

// UpdateQuantity sets the quantity of the matching line. A quantity at or
// below zero removes the line instead of storing a dead entry. Unknown
// IDs are a no-op.
func (c *Cart) UpdateQuantity(id, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(id)
	}
	items := c.load()
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			return c.save(items)
		}
	}
	return nil
}

func (c *Cart) RemoveItem(id int) error {
	items := c.load()
	for i := range items {
		if items[i].ID == id {
			return c.save(append(items[:i], items[i+1:]...))
		}
	}
	return nil
}

// Items returns the cart lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	return c.load()
}

// Total is the cart sum in minor currency units.
func (c *Cart) Total() int {
	total := 0
	for _, item := range c.load() {
		total += item.Price * item.Quantity
	}
	return total
}

// FormattedTotal renders the sum the way the storefront displays it.
func (c *Cart) FormattedTotal() string {
	return fmt.Sprintf("%d ₽", c.Total())
}

// Count is the badge number in the site header: total units, not lines.
func (c *Cart) Count() int {
	count := 0
	for _, item := range c.load() {
		count += item.Quantity
	}
	return count
}

// Clear empties the cart after a confirmed checkout.
func (c *Cart) Clear() error {
	return c.store.Delete(storage.CartKey)
}
