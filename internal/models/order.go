package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is read-only from this panel's point of view except for order_type
// and the per-line-item order_status, both mutated upstream via PATCH.
type Order struct {
	ID        int64           `json:"id"`
	BuyerID   int64           `json:"buyer_id"`
	OrderType string          `json:"order_type"`
	CreatedAt time.Time       `json:"created_at"`
	Products  []OrderLineItem `json:"products"`
}

// OrderLineItem is one product entry within an order. The backend calls
// these "products"; each carries its own status fields independent of the
// parent order.
type OrderLineItem struct {
	ID            int64           `json:"id"`
	OrderID       int64           `json:"order_id"`
	ProductID     int64           `json:"product_id"`
	SellerID      int64           `json:"seller_id"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	OrderStatus   string          `json:"order_status"`
	PaymentStatus string          `json:"payment_status"`
}

// LineItemRef identifies a line item together with the order/buyer/seller
// context needed for the status-transition and shipping-sync calls.
type LineItemRef struct {
	LineItemID int64 `json:"order_product_id"`
	OrderID    int64 `json:"order_id"`
	BuyerID    int64 `json:"buyer_id"`
	SellerID   int64 `json:"seller_id"`
}

// Status is the effective order status: the first line item's status,
// "New" when the order has no line items.
func (o *Order) Status() string {
	if len(o.Products) == 0 {
		return string(OrderNew)
	}
	if o.Products[0].OrderStatus == "" {
		return string(OrderNew)
	}
	return o.Products[0].OrderStatus
}

// PaymentState is the effective payment status, derived the same way.
func (o *Order) PaymentState() string {
	if len(o.Products) == 0 {
		return string(PaymentPending)
	}
	if o.Products[0].PaymentStatus == "" {
		return string(PaymentPending)
	}
	return o.Products[0].PaymentStatus
}

func (o *Order) TotalQuantity() int {
	total := 0
	for _, p := range o.Products {
		if p.Quantity > 0 {
			total += p.Quantity
		}
	}
	return total
}

func (o *Order) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, p := range o.Products {
		if p.Quantity > 0 {
			total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		}
	}
	return total
}

// Normalize forces the enumerated fields of an order into their allowed
// sets, drops line items that belong to a different seller, and reports
// whether anything remains. Orders left without line items must not be
// shown at all.
func (o *Order) Normalize(sellerID int64) bool {
	o.OrderType = NormalizeToAllowed(o.OrderType, AllowedOrderTypes, "Order")

	kept := o.Products[:0]
	for _, p := range o.Products {
		if p.SellerID != sellerID {
			continue
		}
		p.OrderStatus = NormalizeToAllowed(p.OrderStatus, AllowedOrderStatuses, string(OrderNew))
		p.PaymentStatus = NormalizeToAllowed(p.PaymentStatus, AllowedPaymentStatuses, string(PaymentPending))
		kept = append(kept, p)
	}
	o.Products = kept
	return len(o.Products) > 0
}

// NormalizeOrders normalizes every order for the given seller and drops
// the ones with no remaining line items.
func NormalizeOrders(orders []Order, sellerID int64) []Order {
	out := make([]Order, 0, len(orders))
	for _, o := range orders {
		if o.Normalize(sellerID) {
			out = append(out, o)
		}
	}
	return out
}

// OrderStats is the dashboard breakdown over a normalized order list.
type OrderStats struct {
	Total     int `json:"total_orders"`
	Orders    int `json:"order_orders"`
	Inquiries int `json:"inquiry_orders"`
	New       int `json:"new"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Shipped   int `json:"shipped"`
	Delivered int `json:"delivered"`
	Cancelled int `json:"cancelled"`
	Returned  int `json:"returned"`
}

func ComputeOrderStats(orders []Order) OrderStats {
	stats := OrderStats{Total: len(orders)}
	for i := range orders {
		o := &orders[i]
		if o.OrderType == "inquiry" {
			stats.Inquiries++
		} else {
			stats.Orders++
		}
		switch OrderStatus(o.Status()) {
		case OrderNew:
			stats.New++
		case OrderPending:
			stats.Pending++
		case OrderConfirmed:
			stats.Confirmed++
		case OrderShipped:
			stats.Shipped++
		case OrderDelivered:
			stats.Delivered++
		case OrderCancelled:
			stats.Cancelled++
		case OrderReturned:
			stats.Returned++
		}
	}
	return stats
}
