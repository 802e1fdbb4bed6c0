package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"victory-pos/internal/middleware"
	"victory-pos/internal/reports"

	"github.com/gin-gonic/gin"
)

// InventoryReport serves the stock audit document.
func (a *API) InventoryReport(c *gin.Context) {
	doc := reports.BuildInventoryAudit(a.Store.Snapshot(), time.Now())
	if c.Query("format") == "xlsx" {
		a.writeXLSX(c, reports.Filename("inventory", doc.GeneratedAt.Format("2006-01-02")), doc.WriteXLSX)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// SalesReport serves the sales recap with the accumulated revenue footer.
func (a *API) SalesReport(c *gin.Context) {
	doc := reports.BuildSalesRecap(a.Store.Snapshot(), time.Now())
	if c.Query("format") == "xlsx" {
		a.writeXLSX(c, reports.Filename("sales", doc.GeneratedAt.Format("2006-01-02")), doc.WriteXLSX)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Summary serves the dashboard aggregation; profit is role-gated.
func (a *API) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, reports.BuildSummary(a.Store.Snapshot(), middleware.Role(c)))
}

// Backup streams the full snapshot as a timestamped JSON attachment.
func (a *API) Backup(c *gin.Context) {
	data, err := json.MarshalIndent(a.Store.Snapshot(), "", "  ")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to serialize backup"})
		return
	}

	filename := fmt.Sprintf("victory_pos_backup_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/json", data)
}

// writeXLSX sends a workbook renderer's output as a file download.
func (a *API) writeXLSX(c *gin.Context, filename string, render func(io.Writer) error) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Status(http.StatusOK)
	if err := render(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render workbook"})
	}
}
