package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"seller_panel/internal/models"
)

// Buyer is the minimal buyer row used for the buyer-id → name map.
type Buyer struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SellerOrders fetches every order carrying at least one line item for the
// seller. 404 and 204 mean "no orders yet", not failure.
func (c *Client) SellerOrders(ctx context.Context, sellerID int64) ([]models.Order, error) {
	data, status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orderseller/%d", sellerID), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound || status == http.StatusNoContent {
		return []models.Order{}, nil
	}
	if status < 200 || status >= 300 {
		return nil, &APIError{StatusCode: status, Message: extractMessage(data)}
	}
	return decodeList[models.Order](data, "orders")
}

// UpdateLineItemStatus patches a single line item's order_status.
func (c *Client) UpdateLineItemStatus(ctx context.Context, lineItemID int64, status string) error {
	payload := map[string]interface{}{
		"order_product_id": lineItemID,
		"order_status":     status,
	}
	_, err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/orderProduct/%d", lineItemID), payload)
	return err
}

// UpdateOrderType flips an order between "Order" and "inquiry".
func (c *Client) UpdateOrderType(ctx context.Context, orderID int64, orderType string) error {
	payload := map[string]interface{}{
		"order_id":   orderID,
		"order_type": orderType,
	}
	_, err := c.doJSON(ctx, http.MethodPatch, "/ordersOrderType", payload)
	return err
}

// Buyers fetches the buyer list for display names.
func (c *Client) Buyers(ctx context.Context) ([]Buyer, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/buyers", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[Buyer](data, "buyers")
}
