package models

import (
	"time"
)

// Role determines what an operator may see and do.
type Role string

const (
	RoleSuperAdmin Role = "SUPER_ADMIN"
	RoleOwner      Role = "OWNER"
	RoleAdmin      Role = "ADMIN"
)

// Condition of a unit when it entered stock.
type Condition string

const (
	ConditionNew  Condition = "NEW"
	ConditionUsed Condition = "USED"
)

// Status is derived from stock and never set directly.
type Status string

const (
	StatusReady Status = "READY"
	StatusSold  Status = "SOLD"
)

type PaymentMethod string

const (
	PaymentCash     PaymentMethod = "CASH"
	PaymentTransfer PaymentMethod = "TRANSFER"
	PaymentEWallet  PaymentMethod = "E-WALLET"
)

// Specs describes the hardware of one laptop model.
type Specs struct {
	CPU     string `json:"cpu"`
	RAM     string `json:"ram"`
	Storage string `json:"storage"`
	GPU     string `json:"gpu"`
}

// Laptop - one stock-keeping unit in the shop.
type Laptop struct {
	ID        string    `json:"id"`
	Barcode   string    `json:"barcode"`
	Brand     string    `json:"brand"`
	Model     string    `json:"model"`
	Specs     Specs     `json:"specs"`
	Condition Condition `json:"condition"`
	BuyPrice  float64   `json:"buyPrice"`
	SellPrice float64   `json:"sellPrice"`
	Stock     int       `json:"stock"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// StatusForStock is the single place the READY/SOLD rule lives.
func StatusForStock(stock int) Status {
	if stock > 0 {
		return StatusReady
	}
	return StatusSold
}

// TransactionItem is a frozen copy of a laptop line at sale time.
// It stays valid even if the referenced laptop is later edited or deleted.
type TransactionItem struct {
	LaptopID string  `json:"laptopId"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Transaction - one completed sale. Immutable once recorded.
type Transaction struct {
	ID            string            `json:"id"`
	InvoiceNumber string            `json:"invoiceNumber"`
	CustomerName  string            `json:"customerName"`
	Items         []TransactionItem `json:"items"`
	Subtotal      float64           `json:"subtotal"`
	Discount      float64           `json:"discount"`
	Tax           float64           `json:"tax"`
	Total         float64           `json:"total"`
	PaymentMethod PaymentMethod     `json:"paymentMethod"`
	Date          time.Time         `json:"date"`
	CreatedBy     string            `json:"createdBy"`
}

// User - an operator account.
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// Redacted returns a copy safe to hand to API clients.
func (u User) Redacted() User {
	u.PasswordHash = ""
	return u
}

// Snapshot is the whole-application state and the sole unit of persistence.
type Snapshot struct {
	Inventory    []Laptop      `json:"inventory"`
	Transactions []Transaction `json:"transactions"`
	Users        []User        `json:"users"`
}

// Clone produces a deep copy so callers can read freely without racing the
// store. Only Items needs element-level copying; everything else is value data.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Inventory:    make([]Laptop, len(s.Inventory)),
		Transactions: make([]Transaction, len(s.Transactions)),
		Users:        make([]User, len(s.Users)),
	}
	copy(out.Inventory, s.Inventory)
	copy(out.Users, s.Users)
	for i, tx := range s.Transactions {
		items := make([]TransactionItem, len(tx.Items))
		copy(items, tx.Items)
		tx.Items = items
		out.Transactions[i] = tx
	}
	return out
}
