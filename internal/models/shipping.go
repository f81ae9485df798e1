package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingRecord is the courier/delivery metadata for one (order, seller)
// pair as the backend stores it. A record may not exist yet for an order;
// callers treat absence as "no shipping info", not an error.
type ShippingRecord struct {
	OrderID            int64           `json:"order_id"`
	BuyerID            int64           `json:"buyer_id"`
	SellerID           int64           `json:"seller_id"`
	CourierName        string          `json:"courier_name"`
	CourierCompanyName string          `json:"courier_company_name"`
	CourierMobile      string          `json:"courier_mobile"`
	TrackingNumber     string          `json:"tracking_number"`
	ShippingAddress    string          `json:"shipping_address"`
	DeliveryType       string          `json:"delivery_type"`
	TotalWeight        float64         `json:"total_weight"`
	ShippingCost       decimal.Decimal `json:"shipping_cost"`
	ShippingStatus     string          `json:"shipping_status"`
	Remarks            string          `json:"remarks"`
	EstimatedDelivery  *time.Time      `json:"estimated_delivery_date"`
	ActualDelivery     *time.Time      `json:"actual_delivery_date"`
	CancelledDate      *time.Time      `json:"cancelled_date"`
}

// ShippingForm is the editable shape bound to the shipping editor. Dates
// are date-only strings ("2006-01-02"), converted to UTC-midnight
// timestamps on submit.
type ShippingForm struct {
	CourierName        string          `json:"courier_name"`
	CourierCompanyName string          `json:"courier_company_name"`
	CourierMobile      string          `json:"courier_mobile"`
	TrackingNumber     string          `json:"tracking_number"`
	ShippingAddress    string          `json:"shipping_address"`
	DeliveryType       string          `json:"delivery_type"`
	TotalWeight        float64         `json:"total_weight"`
	ShippingCost       decimal.Decimal `json:"shipping_cost"`
	ShippingStatus     string          `json:"shipping_status"`
	Remarks            string          `json:"remarks"`
	EstimatedDelivery  string          `json:"estimated_delivery_date"`
	ActualDelivery     string          `json:"actual_delivery_date"`
	CancelledDate      string          `json:"cancelled_date"`
}

// DefaultShippingForm matches the editor's blank state.
func DefaultShippingForm() ShippingForm {
	return ShippingForm{
		DeliveryType:   "Standard",
		ShippingStatus: string(ShippingShipped),
	}
}

// ShippingFormFromRecord seeds the editable form from an existing record.
func ShippingFormFromRecord(rec *ShippingRecord) ShippingForm {
	form := DefaultShippingForm()
	if rec == nil {
		return form
	}
	form.CourierName = rec.CourierName
	form.CourierCompanyName = rec.CourierCompanyName
	form.CourierMobile = rec.CourierMobile
	form.TrackingNumber = rec.TrackingNumber
	form.ShippingAddress = rec.ShippingAddress
	if rec.DeliveryType != "" {
		form.DeliveryType = NormalizeToAllowed(rec.DeliveryType, AllowedDeliveryTypes, "Standard")
	}
	form.TotalWeight = rec.TotalWeight
	form.ShippingCost = rec.ShippingCost
	if rec.ShippingStatus != "" {
		form.ShippingStatus = NormalizeToAllowed(rec.ShippingStatus, AllowedShippingStatuses, string(ShippingShipped))
	}
	form.Remarks = rec.Remarks
	form.EstimatedDelivery = TimeToDateInput(rec.EstimatedDelivery)
	form.ActualDelivery = TimeToDateInput(rec.ActualDelivery)
	form.CancelledDate = TimeToDateInput(rec.CancelledDate)
	return form
}

// DateInputToTime converts a date-only value into a UTC-midnight timestamp.
// Empty or malformed input yields nil.
func DateInputToTime(val string) *time.Time {
	if val == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", val, time.UTC)
	if err != nil {
		return nil
	}
	return &t
}

// TimeToDateInput renders a timestamp back into the date-only form value.
func TimeToDateInput(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
