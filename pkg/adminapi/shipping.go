package adminapi

import (
	"context"
	"fmt"
	"net/http"

	"seller_panel/internal/models"
)

// OrderShipping fetches the shipping rows recorded for an order. Absence
// (404/204) yields an empty list, not an error; a record simply may not
// exist yet.
func (c *Client) OrderShipping(ctx context.Context, orderID int64) ([]models.ShippingRecord, error) {
	data, status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/ordershipping/%d", orderID), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound || status == http.StatusNoContent {
		return []models.ShippingRecord{}, nil
	}
	if status < 200 || status >= 300 {
		return nil, &APIError{StatusCode: status, Message: extractMessage(data)}
	}
	return decodeList[models.ShippingRecord](data, "shipping")
}

// CreateShipping creates the shipping record for an order if it does not
// exist yet. The backend rejects duplicates, so callers issue this
// best-effort before patching.
func (c *Client) CreateShipping(ctx context.Context, orderID, buyerID int64) error {
	payload := map[string]interface{}{
		"order_id": orderID,
		"buyer_id": buyerID,
	}
	_, err := c.doJSON(ctx, http.MethodPost, "/shipping/", payload)
	return err
}

// UpdateShipping patches the shipping record for (order, seller). The
// cancellation date goes out under both known spellings until the backend
// settles on one.
func (c *Client) UpdateShipping(ctx context.Context, orderID, sellerID int64, fields map[string]interface{}) error {
	payload := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	if v, ok := payload[c.cancelledDateField]; ok {
		payload[altCancelledSpelling(c.cancelledDateField)] = v
	}
	_, err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/shipping/%d/%d", orderID, sellerID), payload)
	return err
}

// CancelledDateField exposes the primary spelling so callers build their
// patches against the same key the shim duplicates.
func (c *Client) CancelledDateField() string {
	return c.cancelledDateField
}

func altCancelledSpelling(primary string) string {
	if primary == "canceled_date" {
		return "cancelled_date"
	}
	return "canceled_date"
}
