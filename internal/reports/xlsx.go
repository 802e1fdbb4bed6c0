package reports

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// The XLSX renderers are the server-side print surface: the same documents
// served as JSON, laid out as downloadable workbooks.

func (a InventoryAudit) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	writeRow(f, sheet, 1, "No", "Brand", "Model", "Barcode", "CPU", "RAM", "Storage", "GPU", "Condition", "Sell Price", "Stock")
	for i, row := range a.Rows {
		writeRow(f, sheet, i+2, row.No, row.Brand, row.Model, row.Barcode,
			row.Specs.CPU, row.Specs.RAM, row.Specs.Storage, row.Specs.GPU,
			string(row.Condition), row.SellPrice, row.Stock)
	}
	writeRow(f, sheet, len(a.Rows)+2, "", "", "", "", "", "", "", "", "", "Total units", a.TotalUnits)

	return f.Write(w)
}

func (r SalesRecap) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	writeRow(f, sheet, 1, "No", "Invoice", "Customer", "Date", "Method", "Total")
	for i, row := range r.Rows {
		writeRow(f, sheet, i+2, row.No, row.InvoiceNumber, row.CustomerName,
			row.Date.Format("2006-01-02"), string(row.PaymentMethod), row.Total)
	}
	writeRow(f, sheet, len(r.Rows)+2, "", "", "", "", "Accumulated revenue", r.TotalRevenue)

	return f.Write(w)
}

func (d InvoiceDocument) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	writeRow(f, sheet, 1, "Invoice", d.InvoiceNumber)
	writeRow(f, sheet, 2, "Customer", d.CustomerName)
	writeRow(f, sheet, 3, "Payment", string(d.PaymentMethod))
	writeRow(f, sheet, 4, "Date", d.Date.Format("2006-01-02 15:04"))
	writeRow(f, sheet, 5, "Served by", d.CreatedBy)

	writeRow(f, sheet, 7, "Product", "Barcode", "Qty", "Unit Price", "Subtotal")
	row := 8
	for _, line := range d.Lines {
		writeRow(f, sheet, row, line.Brand+" "+line.Model, line.Barcode, line.Quantity, line.UnitPrice, line.LineTotal)
		row++
	}

	row++
	writeRow(f, sheet, row, "", "", "", "Subtotal", d.Subtotal)
	writeRow(f, sheet, row+1, "", "", "", "Tax (11%)", d.Tax)
	writeRow(f, sheet, row+2, "", "", "", "Discount", d.Discount)
	writeRow(f, sheet, row+3, "", "", "", "TOTAL", d.Total)

	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			continue
		}
		_ = f.SetCellValue(sheet, cell, v)
	}
}

// Filename builds the attachment name for a document download.
func Filename(kind, stamp string) string {
	return fmt.Sprintf("victory_pos_%s_%s.xlsx", kind, stamp)
}
