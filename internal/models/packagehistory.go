package models

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// PackagePurchase is one row of a seller's subscription-package history.
// Date fields come back in mixed formats (full timestamps or bare dates),
// so they stay strings and are parsed only for ordering.
type PackagePurchase struct {
	PackageName      string          `json:"package_name"`
	PackagePrice     decimal.Decimal `json:"package_price"`
	AmountPaid       decimal.Decimal `json:"amount_paid"`
	TotalSales       decimal.Decimal `json:"total_sales"`
	PaymentMode      string          `json:"payment_mode"`
	PackageStartDate string          `json:"package_start_date"`
	PackageEndDate   string          `json:"package_end_date"`
	Status           string          `json:"status"`
	CreatedAt        string          `json:"created_at"`
}

func (p *PackagePurchase) sortKey() time.Time {
	if t, ok := parseWhen(p.CreatedAt); ok {
		return t
	}
	if t, ok := parseWhen(p.PackageStartDate); ok {
		return t
	}
	return time.Time{}
}

func parseWhen(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// SortPackageHistory orders purchases newest first, by creation date
// falling back to the package start date.
func SortPackageHistory(history []PackagePurchase) {
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].sortKey().After(history[j].sortKey())
	})
}
