// Package reports turns the application snapshot into fixed-layout documents.
// Everything here is a pure function of its inputs; nothing writes state.
package reports

import (
	"time"

	"victory-pos/internal/models"
	"victory-pos/internal/rbac"
)

// BarcodeUnavailable marks an invoice line whose unit no longer exists in
// inventory. The frozen brand, model and price still render.
const BarcodeUnavailable = "N/A"

type InventoryRow struct {
	No        int              `json:"no"`
	Brand     string           `json:"brand"`
	Model     string           `json:"model"`
	Barcode   string           `json:"barcode"`
	Specs     models.Specs     `json:"specs"`
	Condition models.Condition `json:"condition"`
	SellPrice float64          `json:"sellPrice"`
	Stock     int              `json:"stock"`
}

// InventoryAudit lists every unit with specs and barcode for stock opname.
type InventoryAudit struct {
	GeneratedAt time.Time      `json:"generatedAt"`
	Rows        []InventoryRow `json:"rows"`
	TotalUnits  int            `json:"totalUnits"`
}

func BuildInventoryAudit(snap models.Snapshot, now time.Time) InventoryAudit {
	audit := InventoryAudit{GeneratedAt: now, Rows: make([]InventoryRow, 0, len(snap.Inventory))}
	for i, l := range snap.Inventory {
		audit.Rows = append(audit.Rows, InventoryRow{
			No:        i + 1,
			Brand:     l.Brand,
			Model:     l.Model,
			Barcode:   l.Barcode,
			Specs:     l.Specs,
			Condition: l.Condition,
			SellPrice: l.SellPrice,
			Stock:     l.Stock,
		})
		audit.TotalUnits += l.Stock
	}
	return audit
}

type SalesRow struct {
	No            int                  `json:"no"`
	InvoiceNumber string               `json:"invoiceNumber"`
	CustomerName  string               `json:"customerName"`
	Date          time.Time            `json:"date"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Total         float64              `json:"total"`
}

// SalesRecap lists all transactions with a summed revenue footer.
type SalesRecap struct {
	GeneratedAt  time.Time  `json:"generatedAt"`
	Rows         []SalesRow `json:"rows"`
	TotalRevenue float64    `json:"totalRevenue"`
}

func BuildSalesRecap(snap models.Snapshot, now time.Time) SalesRecap {
	recap := SalesRecap{GeneratedAt: now, Rows: make([]SalesRow, 0, len(snap.Transactions))}
	for i, tx := range snap.Transactions {
		recap.Rows = append(recap.Rows, SalesRow{
			No:            i + 1,
			InvoiceNumber: tx.InvoiceNumber,
			CustomerName:  tx.CustomerName,
			Date:          tx.Date,
			PaymentMethod: tx.PaymentMethod,
			Total:         tx.Total,
		})
		recap.TotalRevenue += tx.Total
	}
	return recap
}

type InvoiceLine struct {
	Brand     string  `json:"brand"`
	Model     string  `json:"model"`
	Barcode   string  `json:"barcode"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// InvoiceDocument is the printable form of one transaction.
type InvoiceDocument struct {
	InvoiceNumber string               `json:"invoiceNumber"`
	CustomerName  string               `json:"customerName"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	Date          time.Time            `json:"date"`
	CreatedBy     string               `json:"createdBy"`
	Lines         []InvoiceLine        `json:"lines"`
	Subtotal      float64              `json:"subtotal"`
	Discount      float64              `json:"discount"`
	Tax           float64              `json:"tax"`
	Total         float64              `json:"total"`
}

// BuildInvoice renders one transaction. Lines come from the frozen items, so
// the document survives later edits or deletion of the referenced units; only
// the barcode is looked up live and degrades to N/A.
func BuildInvoice(tx models.Transaction, inventory []models.Laptop) InvoiceDocument {
	doc := InvoiceDocument{
		InvoiceNumber: tx.InvoiceNumber,
		CustomerName:  tx.CustomerName,
		PaymentMethod: tx.PaymentMethod,
		Date:          tx.Date,
		CreatedBy:     tx.CreatedBy,
		Lines:         make([]InvoiceLine, 0, len(tx.Items)),
		Subtotal:      tx.Subtotal,
		Discount:      tx.Discount,
		Tax:           tx.Tax,
		Total:         tx.Total,
	}
	for _, item := range tx.Items {
		barcode := BarcodeUnavailable
		for _, l := range inventory {
			if l.ID == item.LaptopID {
				barcode = l.Barcode
				break
			}
		}
		doc.Lines = append(doc.Lines, InvoiceLine{
			Brand:     item.Brand,
			Model:     item.Model,
			Barcode:   barcode,
			Quantity:  item.Quantity,
			UnitPrice: item.Price,
			LineTotal: item.Price * float64(item.Quantity),
		})
	}
	return doc
}

// Summary is the dashboard aggregation. Profit is only present for roles
// allowed to see cost data.
type Summary struct {
	TotalStock       int            `json:"totalStock"`
	TotalRevenue     float64        `json:"totalRevenue"`
	TransactionCount int            `json:"transactionCount"`
	StockByBrand     map[string]int `json:"stockByBrand"`
	Profit           *float64       `json:"profit,omitempty"`
}

func BuildSummary(snap models.Snapshot, role models.Role) Summary {
	sum := Summary{StockByBrand: make(map[string]int)}

	buyPrices := make(map[string]float64, len(snap.Inventory))
	for _, l := range snap.Inventory {
		sum.TotalStock += l.Stock
		sum.StockByBrand[l.Brand] += l.Stock
		buyPrices[l.ID] = l.BuyPrice
	}

	var cost float64
	for _, tx := range snap.Transactions {
		sum.TotalRevenue += tx.Total
		for _, item := range tx.Items {
			// Units deleted from inventory contribute no cost; the
			// figure degrades the same way the original dashboard does.
			cost += buyPrices[item.LaptopID] * float64(item.Quantity)
		}
	}
	sum.TransactionCount = len(snap.Transactions)

	if rbac.CanView(role, rbac.FieldProfit) {
		profit := sum.TotalRevenue - cost
		sum.Profit = &profit
	}
	return sum
}
