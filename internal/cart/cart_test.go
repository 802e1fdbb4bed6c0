package cart

import (
	"testing"

	"victory-pos/internal/models"

	"github.com/stretchr/testify/require"
)

func laptop(id string, stock int, price float64) models.Laptop {
	return models.Laptop{ID: id, Brand: "ASUS", Model: "ROG", Stock: stock, SellPrice: price, Status: models.StatusForStock(stock)}
}

func TestAddInsertsAndMerges(t *testing.T) {
	var c Cart
	l := laptop("1", 3, 1000000)

	require.NoError(t, c.Add(l, 1))
	require.Len(t, c.Lines, 1)
	require.Equal(t, 1, c.Lines[0].Quantity)
	require.Equal(t, 1000000.0, c.Lines[0].Price)

	require.NoError(t, c.Add(l, 2))
	require.Len(t, c.Lines, 1)
	require.Equal(t, 3, c.Lines[0].Quantity)
	require.Equal(t, 3000000.0, c.Subtotal())
}

func TestAddBeyondStockLeavesCartUnchanged(t *testing.T) {
	var c Cart
	l := laptop("1", 2, 500000)

	require.NoError(t, c.Add(l, 2))
	require.ErrorIs(t, c.Add(l, 1), ErrOutOfStock)
	require.Len(t, c.Lines, 1)
	require.Equal(t, 2, c.Lines[0].Quantity)

	var empty Cart
	require.ErrorIs(t, empty.Add(laptop("2", 0, 100), 1), ErrOutOfStock)
	require.True(t, empty.Empty())
}

func TestAddRejectsBadQuantity(t *testing.T) {
	var c Cart
	require.ErrorIs(t, c.Add(laptop("1", 5, 100), 0), ErrBadQuantity)
	require.ErrorIs(t, c.Add(laptop("1", 5, 100), -1), ErrBadQuantity)
	require.True(t, c.Empty())
}

func TestRemove(t *testing.T) {
	var c Cart
	require.NoError(t, c.Add(laptop("1", 5, 100), 1))
	require.NoError(t, c.Add(laptop("2", 5, 200), 1))

	require.NoError(t, c.Remove("1"))
	require.Len(t, c.Lines, 1)
	require.Equal(t, "2", c.Lines[0].LaptopID)

	require.ErrorIs(t, c.Remove("1"), ErrUnknownItem)
}
