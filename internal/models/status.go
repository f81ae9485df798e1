package models

import "strings"

type OrderStatus string

const (
	OrderNew       OrderStatus = "New"
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderShipped   OrderStatus = "Shipped"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
	OrderReturned  OrderStatus = "Returned"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "Pending"
	PaymentPaid      PaymentStatus = "Paid"
	PaymentFailed    PaymentStatus = "Failed"
	PaymentRefunded  PaymentStatus = "Refunded"
	PaymentCancelled PaymentStatus = "Cancelled"
)

type ShippingStatus string

const (
	ShippingShipped   ShippingStatus = "Shipped"
	ShippingInTransit ShippingStatus = "In Transit"
	ShippingDelivered ShippingStatus = "Delivered"
	ShippingCancelled ShippingStatus = "Cancelled"
)

var (
	AllowedOrderStatuses    = []string{"New", "Pending", "Confirmed", "Shipped", "Delivered", "Cancelled", "Returned"}
	AllowedPaymentStatuses  = []string{"Pending", "Paid", "Failed", "Refunded", "Cancelled"}
	AllowedShippingStatuses = []string{"Shipped", "In Transit", "Delivered", "Cancelled"}
	AllowedOrderTypes       = []string{"Order", "inquiry"}
	AllowedDeliveryTypes    = []string{"Standard", "Express"}
)

// NormalizeToAllowed maps arbitrary backend input onto a fixed allowed set.
// The match is trimmed and case-insensitive; the canonical-cased member is
// returned on a hit, the fallback otherwise. Never returns anything outside
// allowed ∪ {fallback}.
func NormalizeToAllowed(value string, allowed []string, fallback string) string {
	v := strings.TrimSpace(value)
	if v == "" {
		return fallback
	}
	for _, opt := range allowed {
		if strings.EqualFold(opt, v) {
			return opt
		}
	}
	return fallback
}

// IsAllowed reports whether value already is a member of the allowed set,
// ignoring case and surrounding whitespace.
func IsAllowed(value string, allowed []string) bool {
	v := strings.TrimSpace(value)
	for _, opt := range allowed {
		if strings.EqualFold(opt, v) {
			return true
		}
	}
	return false
}
