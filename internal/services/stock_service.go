package services

import (
	"context"
	"fmt"

	"seller_panel/internal/models"
	"seller_panel/pkg/adminapi"
)

type StockService interface {
	List(ctx context.Context, sellerID int64) ([]models.StockItem, error)
	// Create, UpdateQuantity and Delete each return the re-fetched list so
	// callers always render the backend's state, never an optimistic one.
	Create(ctx context.Context, sellerID, productID int64, quantity int) ([]models.StockItem, error)
	UpdateQuantity(ctx context.Context, sellerID, stockID int64, quantity int) ([]models.StockItem, error)
	Delete(ctx context.Context, sellerID, stockID int64) ([]models.StockItem, error)
}

type stockService struct {
	api *adminapi.Client
}

func NewStockService(api *adminapi.Client) StockService {
	return &stockService{api: api}
}

func (s *stockService) List(ctx context.Context, sellerID int64) ([]models.StockItem, error) {
	items, err := s.api.Stocks(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stock: %w", err)
	}
	return items, nil
}

func (s *stockService) Create(ctx context.Context, sellerID, productID int64, quantity int) ([]models.StockItem, error) {
	if productID == 0 {
		return nil, fmt.Errorf("product id is required")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if err := s.api.CreateStock(ctx, sellerID, productID, quantity); err != nil {
		return nil, fmt.Errorf("failed to create stock: %w", err)
	}
	return s.List(ctx, sellerID)
}

func (s *stockService) UpdateQuantity(ctx context.Context, sellerID, stockID int64, quantity int) ([]models.StockItem, error) {
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if err := s.api.UpdateStock(ctx, stockID, quantity); err != nil {
		return nil, fmt.Errorf("failed to update stock: %w", err)
	}
	return s.List(ctx, sellerID)
}

func (s *stockService) Delete(ctx context.Context, sellerID, stockID int64) ([]models.StockItem, error) {
	if err := s.api.DeleteStock(ctx, stockID); err != nil {
		return nil, fmt.Errorf("failed to delete stock: %w", err)
	}
	return s.List(ctx, sellerID)
}
