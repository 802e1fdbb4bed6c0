// Package store holds application state and applies every mutation as a
// single transition: build the next snapshot, persist it, then publish it.
// A transition that fails to persist leaves the visible state untouched.
package store

import (
	"errors"
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"victory-pos/internal/models"

	"github.com/google/uuid"
)

// TaxRate applied to every sale's subtotal.
const TaxRate = 0.11

var (
	ErrLaptopNotFound      = errors.New("store: laptop not found")
	ErrTransactionNotFound = errors.New("store: transaction not found")
	ErrUserNotFound        = errors.New("store: user not found")
	ErrDuplicateEmail      = errors.New("store: email already registered")
	ErrNegativeStock       = errors.New("store: stock cannot go below zero")
	ErrInsufficientStock   = errors.New("store: insufficient stock")
	ErrInvalidQuantity     = errors.New("store: quantity must be positive")
	ErrInvalidDiscount     = errors.New("store: discount out of range")
	ErrEmptyCart           = errors.New("store: cart is empty")
	ErrCustomerRequired    = errors.New("store: customer name is required")
	ErrCodeExhausted       = errors.New("store: could not generate a unique code")
)

// Store is the application state container.
type Store struct {
	mu      sync.Mutex
	state   models.Snapshot
	storage Storage

	// Injection points for tests.
	now      func() time.Time
	newID    func() string
	randIntN func(int) int
}

// New loads the persisted snapshot, seeding the demo dataset when the
// backend is empty.
func New(storage Storage) (*Store, error) {
	s := &Store{
		storage:  storage,
		now:      time.Now,
		newID:    uuid.NewString,
		randIntN: rand.IntN,
	}

	snap, err := storage.Load()
	if errors.Is(err, ErrNoSnapshot) {
		log.Println("No snapshot found, seeding demo data")
		snap, err = models.SeedSnapshot(s.now())
		if err != nil {
			return nil, err
		}
		if err := storage.Save(snap); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	s.state = snap
	return s, nil
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// commit persists next and, only on success, makes it the visible state.
func (s *Store) commit(next models.Snapshot) error {
	if err := s.storage.Save(next); err != nil {
		return err
	}
	s.state = next
	return nil
}

// LaptopInput carries the editable fields of a unit.
type LaptopInput struct {
	Brand     string
	Model     string
	Specs     models.Specs
	Condition models.Condition
	BuyPrice  float64
	SellPrice float64
	Stock     int
}

// AddLaptop registers a new unit with a fresh id and generated barcode.
func (s *Store) AddLaptop(in LaptopInput) (models.Laptop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Stock < 0 {
		return models.Laptop{}, ErrNegativeStock
	}

	next := s.state.Clone()
	barcode, err := s.generateBarcode(next.Inventory)
	if err != nil {
		return models.Laptop{}, err
	}

	laptop := models.Laptop{
		ID:        s.newID(),
		Barcode:   barcode,
		Brand:     in.Brand,
		Model:     in.Model,
		Specs:     in.Specs,
		Condition: in.Condition,
		BuyPrice:  in.BuyPrice,
		SellPrice: in.SellPrice,
		Stock:     in.Stock,
		Status:    models.StatusForStock(in.Stock),
		CreatedAt: s.now(),
	}
	next.Inventory = append(next.Inventory, laptop)

	if err := s.commit(next); err != nil {
		return models.Laptop{}, err
	}
	return laptop, nil
}

// UpdateLaptop replaces the editable fields of a unit; barcode and creation
// time are kept, status is recomputed from the submitted stock.
func (s *Store) UpdateLaptop(id string, in LaptopInput) (models.Laptop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if in.Stock < 0 {
		return models.Laptop{}, ErrNegativeStock
	}

	next := s.state.Clone()
	idx := laptopIndex(next.Inventory, id)
	if idx < 0 {
		return models.Laptop{}, ErrLaptopNotFound
	}

	laptop := next.Inventory[idx]
	laptop.Brand = in.Brand
	laptop.Model = in.Model
	laptop.Specs = in.Specs
	laptop.Condition = in.Condition
	laptop.BuyPrice = in.BuyPrice
	laptop.SellPrice = in.SellPrice
	laptop.Stock = in.Stock
	laptop.Status = models.StatusForStock(in.Stock)
	next.Inventory[idx] = laptop

	if err := s.commit(next); err != nil {
		return models.Laptop{}, err
	}
	return laptop, nil
}

// DeleteLaptop removes a unit. Historical transactions keep referencing the
// vanished id; reports degrade gracefully instead of cascading.
func (s *Store) DeleteLaptop(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	idx := laptopIndex(next.Inventory, id)
	if idx < 0 {
		return ErrLaptopNotFound
	}
	next.Inventory = append(next.Inventory[:idx], next.Inventory[idx+1:]...)
	return s.commit(next)
}

// AdjustStock applies a signed delta to a unit's stock.
func (s *Store) AdjustStock(id string, delta int) (models.Laptop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	idx := laptopIndex(next.Inventory, id)
	if idx < 0 {
		return models.Laptop{}, ErrLaptopNotFound
	}

	laptop := next.Inventory[idx]
	if laptop.Stock+delta < 0 {
		return models.Laptop{}, ErrNegativeStock
	}
	laptop.Stock += delta
	laptop.Status = models.StatusForStock(laptop.Stock)
	next.Inventory[idx] = laptop

	if err := s.commit(next); err != nil {
		return models.Laptop{}, err
	}
	return laptop, nil
}

// CheckoutLine names a unit and how many of it the customer takes.
type CheckoutLine struct {
	LaptopID string
	Quantity int
}

// CheckoutInput is everything needed to turn a cart into a sale.
type CheckoutInput struct {
	CustomerName  string
	Discount      float64
	PaymentMethod models.PaymentMethod
	CreatedBy     string
	Lines         []CheckoutLine
}

// Checkout validates every line against live stock, decrements the stocks and
// appends the transaction in one transition. Item prices, brand and model are
// frozen from the inventory at this moment, so later edits never rewrite
// history.
func (s *Store) Checkout(in CheckoutInput) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(in.Lines) == 0 {
		return models.Transaction{}, ErrEmptyCart
	}
	if in.CustomerName == "" {
		return models.Transaction{}, ErrCustomerRequired
	}

	// Collapse repeated lines for the same unit before validating.
	quantities := make(map[string]int, len(in.Lines))
	order := make([]string, 0, len(in.Lines))
	for _, line := range in.Lines {
		if line.Quantity <= 0 {
			return models.Transaction{}, ErrInvalidQuantity
		}
		if _, seen := quantities[line.LaptopID]; !seen {
			order = append(order, line.LaptopID)
		}
		quantities[line.LaptopID] += line.Quantity
	}

	next := s.state.Clone()

	var subtotal float64
	items := make([]models.TransactionItem, 0, len(order))
	for _, laptopID := range order {
		qty := quantities[laptopID]
		idx := laptopIndex(next.Inventory, laptopID)
		if idx < 0 {
			return models.Transaction{}, fmt.Errorf("%w: %s", ErrLaptopNotFound, laptopID)
		}

		laptop := next.Inventory[idx]
		if laptop.Stock < qty {
			return models.Transaction{}, fmt.Errorf("%w: %s %s", ErrInsufficientStock, laptop.Brand, laptop.Model)
		}

		laptop.Stock -= qty
		laptop.Status = models.StatusForStock(laptop.Stock)
		next.Inventory[idx] = laptop

		subtotal += laptop.SellPrice * float64(qty)
		items = append(items, models.TransactionItem{
			LaptopID: laptop.ID,
			Brand:    laptop.Brand,
			Model:    laptop.Model,
			Quantity: qty,
			Price:    laptop.SellPrice,
		})
	}

	tax := math.Round(subtotal * TaxRate)
	if in.Discount < 0 || in.Discount > subtotal+tax {
		return models.Transaction{}, ErrInvalidDiscount
	}

	invoiceNumber, err := s.generateInvoiceNumber(next.Transactions)
	if err != nil {
		return models.Transaction{}, err
	}

	tx := models.Transaction{
		ID:            s.newID(),
		InvoiceNumber: invoiceNumber,
		CustomerName:  in.CustomerName,
		Items:         items,
		Subtotal:      subtotal,
		Discount:      in.Discount,
		Tax:           tax,
		Total:         subtotal + tax - in.Discount,
		PaymentMethod: in.PaymentMethod,
		Date:          s.now(),
		CreatedBy:     in.CreatedBy,
	}
	next.Transactions = append(next.Transactions, tx)

	if err := s.commit(next); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

// UserInput carries the editable fields of an operator account.
type UserInput struct {
	Name         string
	Email        string
	Role         models.Role
	PasswordHash string
}

func (s *Store) AddUser(in UserInput) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	for _, u := range next.Users {
		if u.Email == in.Email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	user := models.User{
		ID:           s.newID(),
		Name:         in.Name,
		Email:        in.Email,
		Role:         in.Role,
		PasswordHash: in.PasswordHash,
	}
	next.Users = append(next.Users, user)

	if err := s.commit(next); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser replaces an account's fields. An empty PasswordHash keeps the
// current one.
func (s *Store) UpdateUser(id string, in UserInput) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	idx := -1
	for i, u := range next.Users {
		if u.Email == in.Email && u.ID != id {
			return models.User{}, ErrDuplicateEmail
		}
		if u.ID == id {
			idx = i
		}
	}
	if idx < 0 {
		return models.User{}, ErrUserNotFound
	}

	user := next.Users[idx]
	user.Name = in.Name
	user.Email = in.Email
	user.Role = in.Role
	if in.PasswordHash != "" {
		user.PasswordHash = in.PasswordHash
	}
	next.Users[idx] = user

	if err := s.commit(next); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (s *Store) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	for i, u := range next.Users {
		if u.ID == id {
			next.Users = append(next.Users[:i], next.Users[i+1:]...)
			return s.commit(next)
		}
	}
	return ErrUserNotFound
}

// LaptopByBarcode resolves a scanned barcode to a live unit.
func (s *Store) LaptopByBarcode(barcode string) (models.Laptop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.state.Inventory {
		if l.Barcode == barcode {
			return l, nil
		}
	}
	return models.Laptop{}, ErrLaptopNotFound
}

func (s *Store) TransactionByID(id string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.state.Transactions {
		if tx.ID == id {
			items := make([]models.TransactionItem, len(tx.Items))
			copy(items, tx.Items)
			tx.Items = items
			return tx, nil
		}
	}
	return models.Transaction{}, ErrTransactionNotFound
}

func (s *Store) UserByEmail(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.state.Users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// generateBarcode produces a VIC-prefixed nine digit code, regenerating on
// collision instead of trusting randomness alone.
func (s *Store) generateBarcode(inventory []models.Laptop) (string, error) {
	for attempt := 0; attempt < 100; attempt++ {
		code := fmt.Sprintf("VIC%d", 100000000+s.randIntN(900000000))
		if !barcodeTaken(inventory, code) {
			return code, nil
		}
	}
	return "", ErrCodeExhausted
}

// generateInvoiceNumber combines the sale date with a random sequence suffix,
// regenerating on collision.
func (s *Store) generateInvoiceNumber(transactions []models.Transaction) (string, error) {
	datePart := s.now().Format("20060102")
	for attempt := 0; attempt < 1000; attempt++ {
		number := fmt.Sprintf("INV-%s-%03d", datePart, s.randIntN(1000))
		if !invoiceTaken(transactions, number) {
			return number, nil
		}
	}
	return "", ErrCodeExhausted
}

func laptopIndex(inventory []models.Laptop, id string) int {
	for i, l := range inventory {
		if l.ID == id {
			return i
		}
	}
	return -1
}

func barcodeTaken(inventory []models.Laptop, code string) bool {
	for _, l := range inventory {
		if l.Barcode == code {
			return true
		}
	}
	return false
}

func invoiceTaken(transactions []models.Transaction, number string) bool {
	for _, tx := range transactions {
		if tx.InvoiceNumber == number {
			return true
		}
	}
	return false
}
