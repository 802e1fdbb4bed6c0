package handlers

import (
	"net/http"

	"victory-pos/internal/reports"

	"github.com/gin-gonic/gin"
)

// ListTransactions returns the full sale history, newest last.
func (a *API) ListTransactions(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.Snapshot().Transactions)
}

// Invoice renders one transaction as a printable document, as JSON or as an
// XLSX download when format=xlsx.
func (a *API) Invoice(c *gin.Context) {
	tx, err := a.Store.TransactionByID(c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Transaction not found"})
		return
	}

	doc := reports.BuildInvoice(tx, a.Store.Snapshot().Inventory)
	if c.Query("format") == "xlsx" {
		a.writeXLSX(c, reports.Filename("invoice", tx.InvoiceNumber), doc.WriteXLSX)
		return
	}
	c.JSON(http.StatusOK, doc)
}
