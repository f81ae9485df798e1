package models

// StockItem is one inventory row for a seller's product.
type StockItem struct {
	ID        int64 `json:"id"`
	SellerID  int64 `json:"seller_id"`
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}
