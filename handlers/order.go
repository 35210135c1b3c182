package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/statemachine"
)

// OrderHandler covers order placement and the admin status workflow.
type OrderHandler struct {
	db *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{db: db}
}

type PlaceOrderRequest struct {
	Cart []models.OrderLine `json:"cart" binding:"required,min=1"`
}

// PlaceOrder snapshots the cart verbatim, computes the payment total
// server-side as the raw sum of line prices, and persists the order with its
// initial status. Client-supplied totals are never trusted.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide cart and payment details"})
		return
	}

	var total float64
	for _, line := range req.Cart {
		total += line.Price
	}

	order := models.Order{
		Foods:   datatypes.NewJSONSlice(req.Cart),
		Payment: total,
		BuyerID: middleware.GetPrincipalID(c),
		Status:  statemachine.StatusPlaced,
	}
	if err := h.db.Create(&order).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to place order"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Order placed successfully",
		"newOrder": order,
	})
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves an order through the guarded state machine. Only the
// status column changes; every other field of the order is left untouched.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var order models.Order
	if err := h.db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide status"})
		return
	}

	next, err := statemachine.Parse(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Unknown order status: " + req.Status})
		return
	}

	if err := statemachine.CanTransition(order.Status, next); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"success":           false,
			"message":           "Invalid state transition",
			"current_status":    order.Status,
			"requested":         next,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.Status),
		})
		return
	}

	prevStatus := order.Status
	if err := h.db.Model(&order).Update("status", next).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Order Status Updated",
		"order_id":        order.ID,
		"previous_status": prevStatus,
		"current_status":  next,
	})
}
