package handlers

import (
	"net/http"
	"strconv"
	"time"

	"warung-pos-api/cart"
	"warung-pos-api/middleware"
	"warung-pos-api/models"

	"github.com/gin-gonic/gin"
)

type SubmitOrderRequest struct {
	TableNumber int              `json:"table_number"`
	OrderType   models.OrderType `json:"order_type" binding:"required"`
	Lines       []cart.Line      `json:"lines" binding:"required,min=1,dive"`
}

// SubmitOrder creates a pending order from the client-held cart. The
// cart itself lives in the client and is discarded on submit; only its
// line snapshots arrive here.
func SubmitOrder(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	var req SubmitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orderSvc.Submit(ownerID, req.TableNumber, req.OrderType, req.Lines)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order submitted", "order": order})
}

// ListOrders returns the owner's orders, optionally filtered by status
func ListOrders(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	orders, err := orderSvc.List(ownerID, models.OrderStatus(c.Query("status")))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.Status)]++
	}
	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(orders),
		"orders":        orders,
	})
}

// GetOrderDetail returns a single order with items and history
func GetOrderDetail(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	order, err := orderSvc.Get(ownerID, uint(id))
	if err != nil {
		abortServiceError(c, err)
		return
	}

	elapsed := time.Since(order.CreatedAt).Minutes()
	c.JSON(http.StatusOK, gin.H{
		"order":           order,
		"minutes_elapsed": int(elapsed),
	})
}

type AdvanceOrderRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// AdvanceOrder moves an order one step forward in the kitchen sequence
func AdvanceOrder(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := orderSvc.Advance(ownerID, uint(id), req.Status)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "Order status updated",
		"order_id":       order.ID,
		"current_status": order.Status,
	})
}

type PayOrderRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// PayOrder completes an order and appends its revenue entry
func PayOrder(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	var req PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := orderSvc.Pay(ownerID, uint(id), req.PaymentMethod)
	if err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment recorded",
		"receipt": entry,
	})
}

// CancelOrder hard-deletes a pending order
func CancelOrder(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	id, _ := strconv.Atoi(c.Param("id"))

	if err := orderSvc.Cancel(ownerID, uint(id)); err != nil {
		abortServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "order_id": id})
}

// GetKitchenBoard returns active orders grouped by status for the
// kitchen display
func GetKitchenBoard(c *gin.Context) {
	ownerID := middleware.GetUserID(c)
	board, err := orderSvc.KitchenBoard(ownerID)
	if err != nil {
		abortServiceError(c, err)
		return
	}

	counts := map[string]int{}
	for status, orders := range board {
		counts[string(status)] = len(orders)
	}
	c.JSON(http.StatusOK, gin.H{"counts": counts, "board": board})
}
