package services

import (
	"context"
	"fmt"

	"seller_panel/internal/models"
	"seller_panel/pkg/adminapi"
)

type PackageService interface {
	// History returns the seller's package purchases, newest first.
	History(ctx context.Context, sellerID int64) ([]models.PackagePurchase, error)
}

type packageService struct {
	api *adminapi.Client
}

func NewPackageService(api *adminapi.Client) PackageService {
	return &packageService{api: api}
}

func (s *packageService) History(ctx context.Context, sellerID int64) ([]models.PackagePurchase, error) {
	history, err := s.api.PackageHistory(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch package history: %w", err)
	}
	models.SortPackageHistory(history)
	return history, nil
}
