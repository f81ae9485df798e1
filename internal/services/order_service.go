package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"seller_panel/internal/models"
	"seller_panel/pkg/adminapi"
)

// StatusUpdateResult carries the refreshed order list after a line item
// status change, plus the pre-loaded shipping editor when the change was
// to Shipped.
type StatusUpdateResult struct {
	Orders       []models.Order       `json:"orders"`
	ShippingForm *models.ShippingForm `json:"shipping_form,omitempty"`
	OpenEditor   bool                 `json:"open_editor"`
}

type OrderService interface {
	// ListOrders returns the seller's orders, normalized: unknown enum
	// values mapped to safe defaults, foreign line items dropped, orders
	// with no remaining items removed.
	ListOrders(ctx context.Context, sellerID int64) ([]models.Order, error)
	OrderStats(ctx context.Context, sellerID int64) (models.OrderStats, error)
	// UpdateLineItemStatus patches one line item's status, then mirrors
	// the change into the order's shipping record. The shipping sync is
	// best-effort; a failed sync never fails the status change.
	UpdateLineItemStatus(ctx context.Context, ref models.LineItemRef, newStatus string) (*StatusUpdateResult, error)
	// UpdateOrderType flips an order between "Order" and "inquiry" and
	// returns the re-fetched list. The list is re-fetched even when the
	// patch fails, so callers always see the backend's current state.
	UpdateOrderType(ctx context.Context, sellerID, orderID int64, orderType string) ([]models.Order, error)
	BuyerNames(ctx context.Context) (map[int64]string, error)
}

type orderService struct {
	api      *adminapi.Client
	shipping ShippingService
	now      func() time.Time
}

func NewOrderService(api *adminapi.Client, shipping ShippingService) OrderService {
	return &orderService{api: api, shipping: shipping, now: time.Now}
}

func (s *orderService) ListOrders(ctx context.Context, sellerID int64) ([]models.Order, error) {
	orders, err := s.api.SellerOrders(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}
	return models.NormalizeOrders(orders, sellerID), nil
}

func (s *orderService) OrderStats(ctx context.Context, sellerID int64) (models.OrderStats, error) {
	orders, err := s.ListOrders(ctx, sellerID)
	if err != nil {
		return models.OrderStats{}, err
	}
	return models.ComputeOrderStats(orders), nil
}

func (s *orderService) UpdateLineItemStatus(ctx context.Context, ref models.LineItemRef, newStatus string) (*StatusUpdateResult, error) {
	if !models.IsAllowed(newStatus, models.AllowedOrderStatuses) {
		return nil, fmt.Errorf("invalid order status: %q", newStatus)
	}
	status := models.NormalizeToAllowed(newStatus, models.AllowedOrderStatuses, string(models.OrderNew))

	if err := s.api.UpdateLineItemStatus(ctx, ref.LineItemID, status); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	// The status change is already committed; shipping sync failures are
	// logged and swallowed.
	s.syncShipping(ctx, ref, status)

	orders, err := s.ListOrders(ctx, ref.SellerID)
	if err != nil {
		return nil, err
	}
	result := &StatusUpdateResult{Orders: orders}

	if status == string(models.OrderShipped) {
		form, err := s.shipping.Open(ctx, ref.OrderID, ref.BuyerID, ref.SellerID)
		if err != nil {
			log.Printf("Could not load shipping details for order %d: %v", ref.OrderID, err)
		}
		result.ShippingForm = form
		result.OpenEditor = form != nil
	}
	return result, nil
}

// syncShipping mirrors a line item status transition into the order's
// shipping record: create if missing, then patch status and the matching
// lifecycle date. Runs sequentially so the patch never races the create.
func (s *orderService) syncShipping(ctx context.Context, ref models.LineItemRef, status string) {
	fields := s.shippingFieldsFor(status)
	if len(fields) == 0 {
		return
	}

	if err := s.api.CreateShipping(ctx, ref.OrderID, ref.BuyerID); err != nil {
		log.Printf("Shipping create skipped for order %d: %v", ref.OrderID, err)
	}
	if err := s.api.UpdateShipping(ctx, ref.OrderID, ref.SellerID, fields); err != nil {
		log.Printf("Shipping sync failed for order %d: %v", ref.OrderID, err)
	}
}

// shippingFieldsFor maps an order status to the shipping patch it implies.
// Statuses without a shipping counterpart produce no patch.
func (s *orderService) shippingFieldsFor(status string) map[string]interface{} {
	now := s.now().UTC()
	switch status {
	case string(models.OrderShipped):
		return map[string]interface{}{
			"shipping_status":         string(models.ShippingShipped),
			"estimated_delivery_date": now,
		}
	case string(models.OrderDelivered):
		return map[string]interface{}{
			"shipping_status":      string(models.ShippingDelivered),
			"actual_delivery_date": now,
		}
	case string(models.OrderCancelled):
		return map[string]interface{}{
			"shipping_status":          string(models.ShippingCancelled),
			s.api.CancelledDateField(): now,
		}
	default:
		return nil
	}
}

func (s *orderService) UpdateOrderType(ctx context.Context, sellerID, orderID int64, orderType string) ([]models.Order, error) {
	normalized := models.NormalizeToAllowed(orderType, models.AllowedOrderTypes, "Order")

	patchErr := s.api.UpdateOrderType(ctx, orderID, normalized)
	if patchErr != nil {
		patchErr = fmt.Errorf("failed to update order type: %w", patchErr)
	}

	orders, err := s.ListOrders(ctx, sellerID)
	if err != nil {
		if patchErr != nil {
			return nil, patchErr
		}
		return nil, err
	}
	return orders, patchErr
}

func (s *orderService) BuyerNames(ctx context.Context) (map[int64]string, error) {
	buyers, err := s.api.Buyers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch buyers: %w", err)
	}
	names := make(map[int64]string, len(buyers))
	for _, b := range buyers {
		names[b.ID] = b.Name
	}
	return names, nil
}
