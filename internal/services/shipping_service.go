package services

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"seller_panel/internal/models"
	"seller_panel/pkg/adminapi"
)

// ErrNoShippingContext is returned by Submit when neither the arguments
// nor a previously opened editor identify the target order.
var ErrNoShippingContext = errors.New("shipping context is not resolved")

type ShippingService interface {
	// Open loads the shipping editor for an order. The order/buyer pair is
	// captured before any network call so a later Submit can fall back to
	// it even if the fetch fails.
	Open(ctx context.Context, orderID, buyerID, sellerID int64) (*models.ShippingForm, error)
	// Submit persists the form. Missing order/buyer ids fall back to the
	// captured context; if still unresolved no request is made.
	Submit(ctx context.Context, form models.ShippingForm, orderID, buyerID, sellerID int64) error
	// Close drops the captured context without submitting.
	Close()
}

type shippingService struct {
	api *adminapi.Client
	now func() time.Time

	mu       sync.Mutex
	ctxOrder int64
	ctxBuyer int64
	hasCtx   bool
}

func NewShippingService(api *adminapi.Client) ShippingService {
	return &shippingService{api: api, now: time.Now}
}

func (s *shippingService) Open(ctx context.Context, orderID, buyerID, sellerID int64) (*models.ShippingForm, error) {
	if orderID == 0 || buyerID == 0 {
		return nil, ErrNoShippingContext
	}

	s.mu.Lock()
	s.ctxOrder = orderID
	s.ctxBuyer = buyerID
	s.hasCtx = true
	s.mu.Unlock()

	form := models.DefaultShippingForm()

	records, err := s.api.OrderShipping(ctx, orderID)
	if err != nil {
		// The editor still opens with defaults so the seller can enter
		// details from scratch.
		return &form, err
	}

	if rec := pickShippingRecord(records, sellerID); rec != nil {
		form = models.ShippingFormFromRecord(rec)
	}
	return &form, nil
}

// pickShippingRecord prefers the row belonging to the seller, falling back
// to the first row when the API does not tag rows with seller ids.
func pickShippingRecord(records []models.ShippingRecord, sellerID int64) *models.ShippingRecord {
	for i := range records {
		if records[i].SellerID == sellerID {
			return &records[i]
		}
	}
	if len(records) > 0 {
		return &records[0]
	}
	return nil
}

func (s *shippingService) Submit(ctx context.Context, form models.ShippingForm, orderID, buyerID, sellerID int64) error {
	if orderID == 0 || buyerID == 0 {
		s.mu.Lock()
		if s.hasCtx {
			orderID = s.ctxOrder
			buyerID = s.ctxBuyer
		}
		s.mu.Unlock()
	}
	if orderID == 0 || buyerID == 0 {
		return ErrNoShippingContext
	}

	status := models.NormalizeToAllowed(form.ShippingStatus, models.AllowedShippingStatuses, string(models.ShippingShipped))

	estimated := models.DateInputToTime(form.EstimatedDelivery)
	actual := models.DateInputToTime(form.ActualDelivery)
	cancelled := models.DateInputToTime(form.CancelledDate)

	now := s.now().UTC()
	if status == string(models.ShippingDelivered) && actual == nil {
		actual = &now
	}
	if status == string(models.ShippingCancelled) && cancelled == nil {
		cancelled = &now
	}

	// Create is best-effort: the row usually exists already and the API
	// rejects duplicates.
	if err := s.api.CreateShipping(ctx, orderID, buyerID); err != nil {
		log.Printf("Shipping create skipped for order %d: %v", orderID, err)
	}

	fields := map[string]interface{}{
		"courier_name":            form.CourierName,
		"courier_company_name":    form.CourierCompanyName,
		"courier_mobile":          form.CourierMobile,
		"tracking_number":         form.TrackingNumber,
		"shipping_address":        form.ShippingAddress,
		"delivery_type":           models.NormalizeToAllowed(form.DeliveryType, models.AllowedDeliveryTypes, "Standard"),
		"total_weight":            form.TotalWeight,
		"shipping_cost":           form.ShippingCost,
		"shipping_status":         status,
		"remarks":                 form.Remarks,
		"estimated_delivery_date": estimated,
		"actual_delivery_date":    actual,
	}
	fields[s.api.CancelledDateField()] = cancelled

	if err := s.api.UpdateShipping(ctx, orderID, sellerID, fields); err != nil {
		return err
	}

	s.Close()
	return nil
}

func (s *shippingService) Close() {
	s.mu.Lock()
	s.ctxOrder = 0
	s.ctxBuyer = 0
	s.hasCtx = false
	s.mu.Unlock()
}
