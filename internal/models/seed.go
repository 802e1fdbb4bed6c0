package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Brands the shop trades in. Used by clients to build filters.
var Brands = []string{"ASUS", "Apple", "Lenovo", "HP", "Dell", "MSI", "Acer"}

// SeedSnapshot builds the demo dataset used when no snapshot exists yet.
// Demo account passwords are hashed here, at first boot, so plaintext never
// touches the persisted snapshot.
func SeedSnapshot(now time.Time) (Snapshot, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.DefaultCost)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Inventory: []Laptop{
			{
				ID:      "1",
				Barcode: "VIC892031001",
				Brand:   "ASUS",
				Model:   "ROG Zephyrus G14",
				Specs: Specs{
					CPU:     "Ryzen 9",
					RAM:     "16GB",
					Storage: "1TB SSD",
					GPU:     "RTX 3060",
				},
				Condition: ConditionNew,
				BuyPrice:  18000000,
				SellPrice: 21500000,
				Stock:     5,
				Status:    StatusReady,
				CreatedAt: now,
			},
			{
				ID:      "2",
				Barcode: "VIC892031002",
				Brand:   "Apple",
				Model:   "MacBook Pro 14 M2",
				Specs: Specs{
					CPU:     "M2 Pro",
					RAM:     "16GB",
					Storage: "512GB SSD",
					GPU:     "16-core GPU",
				},
				Condition: ConditionNew,
				BuyPrice:  28000000,
				SellPrice: 32999000,
				Stock:     3,
				Status:    StatusReady,
				CreatedAt: now,
			},
			{
				ID:      "3",
				Barcode: "VIC892031003",
				Brand:   "Lenovo",
				Model:   "ThinkPad X1 Carbon Gen 9",
				Specs: Specs{
					CPU:     "Intel i7-1165G7",
					RAM:     "16GB",
					Storage: "512GB SSD",
					GPU:     "Iris Xe",
				},
				Condition: ConditionUsed,
				BuyPrice:  12000000,
				SellPrice: 15500000,
				Stock:     2,
				Status:    StatusReady,
				CreatedAt: now,
			},
		},
		Transactions: []Transaction{
			{
				ID:            "tx-1",
				InvoiceNumber: "INV-20231024-001",
				CustomerName:  "Andi Pratama",
				Items: []TransactionItem{
					{LaptopID: "1", Brand: "ASUS", Model: "ROG Zephyrus G14", Quantity: 1, Price: 21500000},
				},
				Subtotal:      21500000,
				Discount:      500000,
				Tax:           0,
				Total:         21000000,
				PaymentMethod: PaymentTransfer,
				Date:          now,
				CreatedBy:     "Budi Santoso",
			},
		},
		Users: []User{
			{ID: "sa-1", Name: "System Admin", Email: "superadmin@victory.id", Role: RoleSuperAdmin, PasswordHash: string(hash)},
			{ID: "ow-1", Name: "Budi Santoso", Email: "owner@victory.id", Role: RoleOwner, PasswordHash: string(hash)},
			{ID: "ad-1", Name: "Siti Aminah", Email: "admin@victory.id", Role: RoleAdmin, PasswordHash: string(hash)},
		},
	}, nil
}
