package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"seller_panel/internal/models"
)

// LoginSeller is the identity block POST /seller-login returns.
type LoginSeller struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Login authenticates against the remote API. A non-2xx response or a
// response without a seller block is an authentication failure carrying
// the server's message, falling back to a generic one.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginSeller, error) {
	payload := map[string]interface{}{
		"email":    email,
		"password": password,
	}
	data, status, err := c.do(ctx, http.MethodPost, "/seller-login", payload)
	if err != nil {
		return nil, err
	}

	var response struct {
		Seller  *LoginSeller `json:"seller"`
		Message string       `json:"message"`
	}
	_ = json.Unmarshal(data, &response)

	if status < 200 || status >= 300 || response.Seller == nil {
		message := response.Message
		if message == "" {
			message = "Invalid email or password"
		}
		return nil, &APIError{StatusCode: status, Message: message}
	}
	return response.Seller, nil
}

// Seller fetches the full nested profile. Some deployments wrap the
// object in a one-element array; both shapes are accepted.
func (c *Client) Seller(ctx context.Context, sellerID int64) (*models.SellerProfile, error) {
	data, err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/seller/%d", sellerID), nil)
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var list []models.SellerProfile
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("failed to parse seller response: %w", err)
		}
		if len(list) == 0 {
			return nil, &APIError{StatusCode: http.StatusNotFound, Message: "seller not found"}
		}
		return &list[0], nil
	}

	var profile models.SellerProfile
	if err := json.Unmarshal(trimmed, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse seller response: %w", err)
	}
	return &profile, nil
}

// Sellers fetches the flat seller list used by the refresh loop.
func (c *Client) Sellers(ctx context.Context) ([]models.SellerSummary, error) {
	data, err := c.doJSON(ctx, http.MethodGet, "/sellers", nil)
	if err != nil {
		return nil, err
	}
	return decodeList[models.SellerSummary](data, "sellers")
}

// UpdateSellerProfile saves the profile as multipart form data: every text
// field under its flat key, a nested-key backup for the fields some
// backends only read bracketed, and file parts only for files the operator
// actually changed.
func (c *Client) UpdateSellerProfile(ctx context.Context, sellerID int64, form *models.ProfileForm, files []models.FileAttachment) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range form.TextFields() {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	for key, value := range form.NestedFields() {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("failed to write form field %s: %w", key, err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Filename)
		if err != nil {
			return fmt.Errorf("failed to attach %s: %w", file.Field, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return fmt.Errorf("failed to attach %s: %w", file.Field, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, fmt.Sprintf("%s/seller/%d", c.BaseURL, sellerID), &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{StatusCode: resp.StatusCode, Message: extractMessage(body)}
	}
	return nil
}

// PackageHistory fetches a seller's package purchases; ordering is applied
// by the caller.
func (c *Client) PackageHistory(ctx context.Context, sellerID int64) ([]models.PackagePurchase, error) {
	data, status, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/seller/package-history/%d", sellerID), nil)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound || status == http.StatusNoContent {
		return []models.PackagePurchase{}, nil
	}
	if status < 200 || status >= 300 {
		return nil, &APIError{StatusCode: status, Message: extractMessage(data)}
	}
	return decodeList[models.PackagePurchase](data, "items", "history")
}
