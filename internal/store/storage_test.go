package store

import (
	"path/filepath"
	"testing"
	"time"

	"victory-pos/internal/models"

	"github.com/stretchr/testify/require"
)

func TestFileStorageLoadMissing(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "state.json"))

	_, err := fs.Load()
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestFileStorageRoundTrip(t *testing.T) {
	fs := NewFileStorage(filepath.Join(t.TempDir(), "state.json"))

	snap := models.Snapshot{
		Inventory: []models.Laptop{{
			ID:        "l-1",
			Barcode:   "VIC123456789",
			Brand:     "ASUS",
			Model:     "Vivobook",
			Specs:     models.Specs{CPU: "i5", RAM: "8GB", Storage: "512GB SSD", GPU: "Iris Xe"},
			Condition: models.ConditionNew,
			BuyPrice:  7000000,
			SellPrice: 8500000,
			Stock:     3,
			Status:    models.StatusReady,
			CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		}},
		Transactions: []models.Transaction{{
			ID:            "tx-9",
			InvoiceNumber: "INV-20240102-042",
			CustomerName:  "Andi",
			Items:         []models.TransactionItem{{LaptopID: "l-1", Brand: "ASUS", Model: "Vivobook", Quantity: 1, Price: 8500000}},
			Subtotal:      8500000,
			Tax:           935000,
			Total:         9435000,
			PaymentMethod: models.PaymentCash,
			Date:          time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
			CreatedBy:     "Budi",
		}},
		Users: []models.User{{ID: "u-1", Name: "Budi", Email: "budi@victory.id", Role: models.RoleOwner, PasswordHash: "hash"}},
	}

	require.NoError(t, fs.Save(snap))

	loaded, err := fs.Load()
	require.NoError(t, err)
	require.Equal(t, snap, loaded)

	// Saving what was loaded and loading again must be a fixed point.
	require.NoError(t, fs.Save(loaded))
	again, err := fs.Load()
	require.NoError(t, err)
	require.Equal(t, loaded, again)
}
