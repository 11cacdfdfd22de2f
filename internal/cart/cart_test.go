package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adewale/termshop/internal/store"
)

func newTestInventory(t *testing.T, content string) *store.Inventory {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "warehouse1.txt"), []byte(content), 0o644))
	inv := store.NewInventory(dir, 10)
	require.NoError(t, inv.Load())
	return inv
}

// assertConserved checks that every unit of every product is either in stock
// or in the cart, never both or neither.
func assertConserved(t *testing.T, inv *store.Inventory, c *Cart) {
	t.Helper()
	for _, p := range inv.All() {
		inCart := 0
		for _, item := range c.Items() {
			if item.ProductID == p.ID {
				inCart += item.Quantity
			}
		}
		assert.Equal(t, p.InitialStock, p.Stock+inCart, "product %s", p.Name)
	}
}

func TestCart_AddRepeatAddUpdateRemove(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, "Apple:100;Banana:50")
	c := New(inv)
	apple, err := inv.ByID(1)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Add(apple.ID))
		assertConserved(t, inv, c)
	}
	require.Equal(t, 1, c.Len())
	assert.Equal(t, 3, c.Items()[0].Quantity)
	assert.Equal(t, 7, apple.Stock)

	require.NoError(t, c.UpdateQuantity(0, 1))
	assert.Equal(t, 9, apple.Stock)
	assert.Equal(t, 1, c.Items()[0].Quantity)
	assertConserved(t, inv, c)

	_, err = c.Remove(0)
	require.NoError(t, err)
	assert.Equal(t, 10, apple.Stock)
	assert.True(t, c.IsEmpty())
	assertConserved(t, inv, c)
}

func TestCart_AddUnknownProduct(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, "Apple:100")
	c := New(inv)

	err := c.Add(42)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.True(t, c.IsEmpty())
}

func TestCart_AddOutOfStock(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, "Apple:100")
	c := New(inv)
	apple, err := inv.ByID(1)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		require.NoError(t, c.Add(apple.ID))
	}
	assert.Equal(t, 0, apple.Stock)

	err = c.Add(apple.ID)
	assert.ErrorIs(t, err, ErrOutOfStock)
	assert.Equal(t, 0, apple.Stock)
	assert.Equal(t, 10, c.Items()[0].Quantity)
	assertConserved(t, inv, c)
}

func TestCart_UpdateQuantityRejections(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, "Apple:100")
	c := New(inv)
	apple, err := inv.ByID(1)
	require.NoError(t, err)
	require.NoError(t, c.Add(apple.ID))

	tests := []struct {
		name    string
		index   int
		qty     int
		wantErr error
	}{
		{name: "index below range", index: -1, qty: 2, wantErr: ErrInvalidItem},
		{name: "index above range", index: 1, qty: 2, wantErr: ErrInvalidItem},
		{name: "zero quantity", index: 0, qty: 0, wantErr: ErrInvalidQuantity},
		{name: "negative quantity", index: 0, qty: -3, wantErr: ErrInvalidQuantity},
		{name: "more than stock allows", index: 0, qty: 12, wantErr: ErrInsufficientStock},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := c.UpdateQuantity(tt.index, tt.qty)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 9, apple.Stock)
			assert.Equal(t, 1, c.Items()[0].Quantity)
			assertConserved(t, inv, c)
		})
	}
}

func TestCart_UpdateQuantityIncreaseAndDecrease(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, "Apple:100")
	c := New(inv)
	apple, err := inv.ByID(1)
	require.NoError(t, err)
	require.NoError(t, c.Add(apple.ID))

	require.NoError(t, c.UpdateQuantity(0, 10))
	assert.Equal(t, 0, apple.Stock)
	assertConserved(t, inv, c)

	require.NoError(t, c.UpdateQuantity(0, 4))
	assert.Equal(t, 6, apple.Stock)
	assertConserved(t, inv, c)
}

func TestCart_RemoveInvalidIndex(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, "Apple:100")
	c := New(inv)
	require.NoError(t, c.Add(1))

	_, err := c.Remove(5)
	assert.ErrorIs(t, err, ErrInvalidItem)
	_, err = c.Remove(-1)
	assert.ErrorIs(t, err, ErrInvalidItem)
	assert.Equal(t, 1, c.Len())
}

func TestCart_ClearRestoresEveryProduct(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, "Apple:100;Banana:50")
	c := New(inv)
	require.NoError(t, c.Add(1))
	require.NoError(t, c.Add(1))
	require.NoError(t, c.Add(2))

	c.Clear()
	assert.True(t, c.IsEmpty())
	for _, p := range inv.All() {
		assert.Equal(t, p.InitialStock, p.Stock)
	}

	// clearing again is a no-op
	c.Clear()
	assert.True(t, c.IsEmpty())
}

func TestCart_TotalUsesAddTimePrice(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, "Apple:100;Banana:50")
	c := New(inv)
	require.NoError(t, c.Add(1))
	require.NoError(t, c.Add(1))
	require.NoError(t, c.Add(2))
	assert.Equal(t, 250.0, c.Total())

	// a later price change must not move an existing cart line
	apple, err := inv.ByID(1)
	require.NoError(t, err)
	apple.Price = 999
	assert.Equal(t, 250.0, c.Total())
}

func TestCart_DropLeavesStockAlone(t *testing.T) {
	t.Parallel()

	inv := newTestInventory(t, "Apple:100")
	c := New(inv)
	require.NoError(t, c.Add(1))
	require.NoError(t, c.Add(1))

	apple, err := inv.ByID(1)
	require.NoError(t, err)
	require.Equal(t, 8, apple.Stock)

	c.Drop()
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 8, apple.Stock)
}
