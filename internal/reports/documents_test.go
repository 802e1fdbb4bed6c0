package reports

import (
	"bytes"
	"testing"
	"time"

	"victory-pos/internal/models"

	"github.com/stretchr/testify/require"
)

var reportTime = time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)

func sampleSnapshot() models.Snapshot {
	return models.Snapshot{
		Inventory: []models.Laptop{
			{
				ID: "1", Barcode: "VIC892031001", Brand: "ASUS", Model: "ROG Zephyrus G14",
				Specs:     models.Specs{CPU: "Ryzen 9", RAM: "16GB", Storage: "1TB SSD", GPU: "RTX 3060"},
				Condition: models.ConditionNew, BuyPrice: 18000000, SellPrice: 21500000,
				Stock: 5, Status: models.StatusReady,
			},
			{
				ID: "2", Barcode: "VIC892031002", Brand: "Apple", Model: "MacBook Pro 14 M2",
				Specs:     models.Specs{CPU: "M2 Pro", RAM: "16GB", Storage: "512GB SSD", GPU: "16-core GPU"},
				Condition: models.ConditionNew, BuyPrice: 28000000, SellPrice: 32999000,
				Stock: 3, Status: models.StatusReady,
			},
		},
		Transactions: []models.Transaction{
			{
				ID: "tx-1", InvoiceNumber: "INV-20240301-001", CustomerName: "Andi",
				Items:    []models.TransactionItem{{LaptopID: "1", Brand: "ASUS", Model: "ROG Zephyrus G14", Quantity: 2, Price: 21500000}},
				Subtotal: 43000000, Tax: 4730000, Total: 47730000,
				PaymentMethod: models.PaymentCash, Date: reportTime, CreatedBy: "Budi",
			},
			{
				ID: "tx-2", InvoiceNumber: "INV-20240302-004", CustomerName: "Siti",
				Items:    []models.TransactionItem{{LaptopID: "gone", Brand: "Lenovo", Model: "IdeaPad", Quantity: 1, Price: 7000000}},
				Subtotal: 7000000, Tax: 770000, Discount: 500000, Total: 7270000,
				PaymentMethod: models.PaymentEWallet, Date: reportTime, CreatedBy: "Budi",
			},
		},
	}
}

func TestBuildInventoryAudit(t *testing.T) {
	doc := BuildInventoryAudit(sampleSnapshot(), reportTime)

	require.Len(t, doc.Rows, 2)
	require.Equal(t, 8, doc.TotalUnits)
	require.Equal(t, 1, doc.Rows[0].No)
	require.Equal(t, "VIC892031001", doc.Rows[0].Barcode)
	require.Equal(t, "Ryzen 9", doc.Rows[0].Specs.CPU)
}

func TestBuildSalesRecap(t *testing.T) {
	doc := BuildSalesRecap(sampleSnapshot(), reportTime)

	require.Len(t, doc.Rows, 2)
	require.Equal(t, 55000000.0, doc.TotalRevenue)
	require.Equal(t, "INV-20240301-001", doc.Rows[0].InvoiceNumber)
}

func TestBuildInvoiceLineTotals(t *testing.T) {
	snap := sampleSnapshot()
	doc := BuildInvoice(snap.Transactions[0], snap.Inventory)

	require.Equal(t, "INV-20240301-001", doc.InvoiceNumber)
	require.Len(t, doc.Lines, 1)
	require.Equal(t, 43000000.0, doc.Lines[0].LineTotal)
	require.Equal(t, "VIC892031001", doc.Lines[0].Barcode)
	require.Equal(t, doc.Subtotal+doc.Tax-doc.Discount, doc.Total)
}

func TestBuildInvoiceSurvivesDeletedLaptop(t *testing.T) {
	snap := sampleSnapshot()
	doc := BuildInvoice(snap.Transactions[1], snap.Inventory)

	require.Len(t, doc.Lines, 1)
	require.Equal(t, BarcodeUnavailable, doc.Lines[0].Barcode)
	require.Equal(t, "Lenovo", doc.Lines[0].Brand)
	require.Equal(t, 7000000.0, doc.Lines[0].UnitPrice)
	require.Equal(t, 7270000.0, doc.Total)
}

func TestBuildSummaryGatesProfit(t *testing.T) {
	snap := sampleSnapshot()

	owner := BuildSummary(snap, models.RoleOwner)
	require.Equal(t, 8, owner.TotalStock)
	require.Equal(t, 55000000.0, owner.TotalRevenue)
	require.Equal(t, 2, owner.TransactionCount)
	require.Equal(t, map[string]int{"ASUS": 5, "Apple": 3}, owner.StockByBrand)
	require.NotNil(t, owner.Profit)
	// Revenue minus cost of the ASUS units; the deleted unit contributes no cost.
	require.Equal(t, 55000000.0-2*18000000.0, *owner.Profit)

	admin := BuildSummary(snap, models.RoleAdmin)
	require.Nil(t, admin.Profit)
}

func TestXLSXRenderers(t *testing.T) {
	snap := sampleSnapshot()

	var buf bytes.Buffer
	require.NoError(t, BuildInventoryAudit(snap, reportTime).WriteXLSX(&buf))
	require.NotZero(t, buf.Len())

	buf.Reset()
	require.NoError(t, BuildSalesRecap(snap, reportTime).WriteXLSX(&buf))
	require.NotZero(t, buf.Len())

	buf.Reset()
	require.NoError(t, BuildInvoice(snap.Transactions[0], snap.Inventory).WriteXLSX(&buf))
	require.NotZero(t, buf.Len())
}
