package handlers

import (
	"net/http"
	"strconv"

	"seller_panel/internal/models"
	"seller_panel/internal/services"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService    services.OrderService
	shippingService services.ShippingService
}

func NewOrderHandler(orderService services.OrderService, shippingService services.ShippingService) *OrderHandler {
	return &OrderHandler{
		orderService:    orderService,
		shippingService: shippingService,
	}
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	user := CurrentUser(c)

	orders, err := h.orderService.ListOrders(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) Buyers(c *gin.Context) {
	names, err := h.orderService.BuyerNames(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch buyers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"buyers": names})
}

func (h *OrderHandler) UpdateLineItemStatus(c *gin.Context) {
	lineItemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid line item id"})
		return
	}

	var req struct {
		OrderID     int64  `json:"order_id" binding:"required"`
		BuyerID     int64  `json:"buyer_id" binding:"required"`
		OrderStatus string `json:"order_status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_id, buyer_id and order_status are required"})
		return
	}

	user := CurrentUser(c)
	ref := models.LineItemRef{
		LineItemID: lineItemID,
		OrderID:    req.OrderID,
		BuyerID:    req.BuyerID,
		SellerID:   user.ID,
	}

	result, err := h.orderService.UpdateLineItemStatus(c.Request.Context(), ref, req.OrderStatus)
	if err != nil {
		if !models.IsAllowed(req.OrderStatus, models.AllowedOrderStatuses) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not update order status"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) UpdateOrderType(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		OrderType string `json:"order_type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "order_type is required"})
		return
	}

	user := CurrentUser(c)
	orders, err := h.orderService.UpdateOrderType(c.Request.Context(), user.ID, orderID, req.OrderType)
	if err != nil {
		// The re-fetched list still reflects the backend's state; return
		// it alongside the failure so the caller can reconcile.
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not update order type", "orders": orders})
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) OpenShipping(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}
	buyerID, _ := strconv.ParseInt(c.Query("buyer_id"), 10, 64)

	user := CurrentUser(c)
	form, err := h.shippingService.Open(c.Request.Context(), orderID, buyerID, user.ID)
	if err != nil {
		if err == services.ErrNoShippingContext {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order id and buyer id are required"})
			return
		}
		// Fetch failed; the editor still opens with defaults.
		c.JSON(http.StatusOK, gin.H{"shipping": form, "warning": "Could not load existing shipping details"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"shipping": form})
}

func (h *OrderHandler) SubmitShipping(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	var req struct {
		BuyerID int64               `json:"buyer_id"`
		Form    models.ShippingForm `json:"shipping"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	user := CurrentUser(c)
	if err := h.shippingService.Submit(c.Request.Context(), req.Form, orderID, req.BuyerID, user.ID); err != nil {
		if err == services.ErrNoShippingContext {
			c.JSON(http.StatusBadRequest, gin.H{"error": "order id and buyer id are required"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not save shipping details"})
		return
	}

	orders, err := h.orderService.ListOrders(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"status": "saved"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved", "orders": orders})
}
