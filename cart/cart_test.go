package cart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nikita-Dem/StreetCoffeeSait/cart"
	"github.com/Nikita-Dem/StreetCoffeeSait/models"
	"github.com/Nikita-Dem/StreetCoffeeSait/storage"
)

func newTestCart() *cart.Cart {
	return cart.New(storage.NewMemoryStore())
}

func TestAddItem(t *testing.T) {
	t.Run("appends new items in insertion order", func(t *testing.T) {
		c := newTestCart()

		assert.NoError(t, c.AddItem(models.CartItem{ID: 1, Name: "Эспрессо", Price: 150, Quantity: 1}))
		assert.NoError(t, c.AddItem(models.CartItem{ID: 2, Name: "Капучино", Price: 220, Quantity: 2}))

		items := c.Items()
		assert.Len(t, items, 2)
		assert.Equal(t, 1, items[0].ID)
		assert.Equal(t, 2, items[1].ID)
	})

	t.Run("merges duplicate IDs by summing quantities", func(t *testing.T) {
		c := newTestCart()

		assert.NoError(t, c.AddItem(models.CartItem{ID: 1, Name: "Эспрессо", Price: 150, Quantity: 1}))
		assert.NoError(t, c.AddItem(models.CartItem{ID: 1, Name: "Эспрессо", Price: 150, Quantity: 3}))

		items := c.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, 4, items[0].Quantity)
	})

	t.Run("total equals sum over the merged item set", func(t *testing.T) {
		c := newTestCart()

		adds := []models.CartItem{
			{ID: 1, Name: "Эспрессо", Price: 150, Quantity: 2},
			{ID: 2, Name: "Капучино", Price: 220, Quantity: 1},
			{ID: 1, Name: "Эспрессо", Price: 150, Quantity: 1},
			{ID: 3, Name: "Чизкейк", Price: 320, Quantity: 2},
		}
		for _, item := range adds {
			assert.NoError(t, c.AddItem(item))
		}

		// 3×150 + 1×220 + 2×320
		assert.Equal(t, 1310, c.Total())
		assert.Equal(t, "1310 ₽", c.FormattedTotal())
		assert.Equal(t, 6, c.Count())
	})
}

func TestUpdateQuantity(t *testing.T) {
	t.Run("sets the quantity of an existing line", func(t *testing.T) {
		c := newTestCart()
		assert.NoError(t, c.AddItem(models.CartItem{ID: 1, Price: 150, Quantity: 1}))

		assert.NoError(t, c.UpdateQuantity(1, 5))
		assert.Equal(t, 5, c.Items()[0].Quantity)
	})

	t.Run("zero removes the line", func(t *testing.T) {
		c := newTestCart()
		assert.NoError(t, c.AddItem(models.CartItem{ID: 1, Price: 150, Quantity: 2}))

		assert.NoError(t, c.UpdateQuantity(1, 0))
		assert.Empty(t, c.Items())
	})

	t.Run("negative removes the line", func(t *testing.T) {
		c := newTestCart()
		assert.NoError(t, c.AddItem(models.CartItem{ID: 1, Price: 150, Quantity: 2}))

		assert.NoError(t, c.UpdateQuantity(1, -1))
		assert.Empty(t, c.Items())
	})

	t.Run("unknown ID is a no-op", func(t *testing.T) {
		c := newTestCart()
		assert.NoError(t, c.AddItem(models.CartItem{ID: 1, Price: 150, Quantity: 2}))

		assert.NoError(t, c.UpdateQuantity(99, 7))
		items := c.Items()
		assert.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})
}

func TestRemoveItem(t *testing.T) {
	c := newTestCart()
	assert.NoError(t, c.AddItem(models.CartItem{ID: 1, Price: 150, Quantity: 1}))
	assert.NoError(t, c.AddItem(models.CartItem{ID: 2, Price: 220, Quantity: 1}))

	assert.NoError(t, c.RemoveItem(1))

	items := c.Items()
	assert.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)
}

func TestClear(t *testing.T) {
	c := newTestCart()
	assert.NoError(t, c.AddItem(models.CartItem{ID: 1, Price: 150, Quantity: 3}))

	assert.NoError(t, c.Clear())
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.Total())
}

func TestCorruptRecordReadsAsEmpty(t *testing.T) {
	store := storage.NewMemoryStore()
	assert.NoError(t, store.Put(storage.CartKey, []byte("{not json")))

	c := cart.New(store)
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.Total())

	// The cart stays usable after the bad record is overwritten.
	assert.NoError(t, c.AddItem(models.CartItem{ID: 1, Price: 150, Quantity: 1}))
	assert.Len(t, c.Items(), 1)
}
