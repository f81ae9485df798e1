package adminapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"seller_panel/internal/models"
)

// CategoryCount returns how many categories exist. Only the count is used
// by the dashboard.
func (c *Client) CategoryCount(ctx context.Context) (int, error) {
	return c.listCount(ctx, "/categories")
}

func (c *Client) SubcategoryCount(ctx context.Context) (int, error) {
	return c.listCount(ctx, "/subcategories")
}

// SellerProductCount counts the seller's own products. The endpoint wraps
// its array under "products" on some deployments.
func (c *Client) SellerProductCount(ctx context.Context, sellerID int64) (int, error) {
	data, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/product_seller/%d", sellerID), nil)
	if err != nil {
		return 0, err
	}
	list, err := decodeList[json.RawMessage](data, "products")
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

func (c *Client) listCount(ctx context.Context, path string) (int, error) {
	data, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return 0, err
	}
	list, err := decodeList[json.RawMessage](data)
	if err != nil {
		return 0, err
	}
	return len(list), nil
}

// Stocks lists stock rows, seller-scoped when sellerID is set.
func (c *Client) Stocks(ctx context.Context, sellerID int64) ([]models.StockItem, error) {
	path := "/stock"
	if sellerID != 0 {
		path = fmt.Sprintf("/stock/%d", sellerID)
	}
	data, err := c.doJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.StockItem](data, "items")
}

func (c *Client) CreateStock(ctx context.Context, sellerID, productID int64, quantity int) error {
	payload := map[string]interface{}{
		"seller_id":  sellerID,
		"product_id": productID,
		"quantity":   quantity,
	}
	_, err := c.doJSON(ctx, http.MethodPost, "/stock", payload)
	return err
}

func (c *Client) UpdateStock(ctx context.Context, stockID int64, quantity int) error {
	payload := map[string]interface{}{
		"quantity": quantity,
	}
	_, err := c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/stock/%d", stockID), payload)
	return err
}

func (c *Client) DeleteStock(ctx context.Context, stockID int64) error {
	_, err := c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/stock/%d", stockID), nil)
	return err
}
