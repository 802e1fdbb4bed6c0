package handlers

import (
	"errors"
	"net/http"

	"victory-pos/internal/cart"
	"victory-pos/internal/middleware"
	"victory-pos/internal/models"
	"victory-pos/internal/reports"
	"victory-pos/internal/store"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	CustomerName  string               `json:"customerName" binding:"required"`
	Discount      float64              `json:"discount" binding:"gte=0"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required,oneof=CASH TRANSFER E-WALLET"`
	Items         []struct {
		LaptopID string `json:"laptopId" binding:"required"`
		Quantity int    `json:"quantity" binding:"required,gt=0"`
	} `json:"items" binding:"required,min=1,dive"`
}

// Checkout turns a cart into a recorded sale. The cart rules reject lines
// beyond available stock up front; the store then revalidates and applies the
// transaction plus all stock decrements as one transition.
func (a *API) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	snap := a.Store.Snapshot()
	laptops := make(map[string]models.Laptop, len(snap.Inventory))
	for _, l := range snap.Inventory {
		laptops[l.ID] = l
	}

	var basket cart.Cart
	for _, item := range req.Items {
		laptop, ok := laptops[item.LaptopID]
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Laptop not found: " + item.LaptopID})
			return
		}
		if err := basket.Add(laptop, item.Quantity); err != nil {
			msg := "Invalid quantity"
			if errors.Is(err, cart.ErrOutOfStock) {
				msg = "Insufficient stock for " + laptop.Brand + " " + laptop.Model
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}
	}

	lines := make([]store.CheckoutLine, 0, len(basket.Lines))
	for _, line := range basket.Lines {
		lines = append(lines, store.CheckoutLine{LaptopID: line.LaptopID, Quantity: line.Quantity})
	}

	tx, err := a.Store.Checkout(store.CheckoutInput{
		CustomerName:  req.CustomerName,
		Discount:      req.Discount,
		PaymentMethod: req.PaymentMethod,
		CreatedBy:     middleware.UserName(c),
		Lines:         lines,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	// Ship the invoice preview along with the sale.
	invoice := reports.BuildInvoice(tx, a.Store.Snapshot().Inventory)
	c.JSON(http.StatusOK, gin.H{
		"transaction": tx,
		"invoice":     invoice,
	})
}
