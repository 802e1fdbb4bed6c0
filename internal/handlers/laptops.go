package handlers

import (
	"net/http"

	"victory-pos/internal/models"
	"victory-pos/internal/store"

	"github.com/gin-gonic/gin"
)

type LaptopRequest struct {
	Brand     string           `json:"brand" binding:"required"`
	Model     string           `json:"model" binding:"required"`
	CPU       string           `json:"cpu" binding:"required"`
	RAM       string           `json:"ram" binding:"required"`
	Storage   string           `json:"storage" binding:"required"`
	GPU       string           `json:"gpu" binding:"required"`
	Condition models.Condition `json:"condition" binding:"required,oneof=NEW USED"`
	BuyPrice  float64          `json:"buyPrice" binding:"required,gt=0"`
	SellPrice float64          `json:"sellPrice" binding:"required,gt=0"`
	Stock     *int             `json:"stock" binding:"required,gte=0"`
}

func (r LaptopRequest) input() store.LaptopInput {
	return store.LaptopInput{
		Brand: r.Brand,
		Model: r.Model,
		Specs: models.Specs{
			CPU:     r.CPU,
			RAM:     r.RAM,
			Storage: r.Storage,
			GPU:     r.GPU,
		},
		Condition: r.Condition,
		BuyPrice:  r.BuyPrice,
		SellPrice: r.SellPrice,
		Stock:     *r.Stock,
	}
}

// ListLaptops returns the whole inventory.
func (a *API) ListLaptops(c *gin.Context) {
	c.JSON(http.StatusOK, a.Store.Snapshot().Inventory)
}

func (a *API) AddLaptop(c *gin.Context) {
	var req LaptopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	laptop, err := a.Store.AddLaptop(req.input())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, laptop)
}

func (a *API) UpdateLaptop(c *gin.Context) {
	var req LaptopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	laptop, err := a.Store.UpdateLaptop(c.Param("id"), req.input())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, laptop)
}

func (a *API) DeleteLaptop(c *gin.Context) {
	if err := a.Store.DeleteLaptop(c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Laptop deleted successfully"})
}

// ScanLaptop resolves a physical barcode to a unit.
func (a *API) ScanLaptop(c *gin.Context) {
	laptop, err := a.Store.LaptopByBarcode(c.Param("barcode"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "Unknown barcode"})
		return
	}
	c.JSON(http.StatusOK, laptop)
}

type StockAdjustRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// AdjustStock applies a signed delta to a unit's stock count.
func (a *API) AdjustStock(c *gin.Context) {
	var req StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	laptop, err := a.Store.AdjustStock(c.Param("id"), req.Delta)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, laptop)
}
