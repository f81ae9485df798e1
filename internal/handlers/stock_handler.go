package handlers

import (
	"net/http"
	"strconv"

	"seller_panel/internal/services"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	stockService services.StockService
}

func NewStockHandler(stockService services.StockService) *StockHandler {
	return &StockHandler{stockService: stockService}
}

func (h *StockHandler) List(c *gin.Context) {
	user := CurrentUser(c)

	items, err := h.stockService.List(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not fetch stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": items})
}

func (h *StockHandler) Create(c *gin.Context) {
	var req struct {
		ProductID int64 `json:"product_id" binding:"required"`
		Quantity  int   `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	user := CurrentUser(c)
	items, err := h.stockService.Create(c.Request.Context(), user.ID, req.ProductID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not create stock"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"stock": items})
}

func (h *StockHandler) Update(c *gin.Context) {
	stockID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock id"})
		return
	}

	var req struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity is required"})
		return
	}
	if *req.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "quantity cannot be negative"})
		return
	}

	user := CurrentUser(c)
	items, err := h.stockService.UpdateQuantity(c.Request.Context(), user.ID, stockID, *req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not update stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": items})
}

func (h *StockHandler) Delete(c *gin.Context) {
	stockID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock id"})
		return
	}

	user := CurrentUser(c)
	items, err := h.stockService.Delete(c.Request.Context(), user.ID, stockID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Could not delete stock"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stock": items})
}
