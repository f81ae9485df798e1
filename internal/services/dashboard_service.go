package services

import (
	"context"
	"log"

	"seller_panel/internal/models"
	"seller_panel/pkg/adminapi"
)

// DashboardStats is the set of counts the dashboard cards render.
type DashboardStats struct {
	Categories    int               `json:"categories"`
	Subcategories int               `json:"subcategories"`
	Products      int               `json:"products"`
	Orders        models.OrderStats `json:"orders"`
}

type DashboardService interface {
	Stats(ctx context.Context, sellerID int64) (DashboardStats, error)
}

type dashboardService struct {
	api    *adminapi.Client
	orders OrderService
}

func NewDashboardService(api *adminapi.Client, orders OrderService) DashboardService {
	return &dashboardService{api: api, orders: orders}
}

// Stats gathers each card's count independently; one failing source zeroes
// its card instead of blanking the whole dashboard.
func (s *dashboardService) Stats(ctx context.Context, sellerID int64) (DashboardStats, error) {
	var stats DashboardStats

	if n, err := s.api.CategoryCount(ctx); err != nil {
		log.Printf("Dashboard category count unavailable: %v", err)
	} else {
		stats.Categories = n
	}

	if n, err := s.api.SubcategoryCount(ctx); err != nil {
		log.Printf("Dashboard subcategory count unavailable: %v", err)
	} else {
		stats.Subcategories = n
	}

	if n, err := s.api.SellerProductCount(ctx, sellerID); err != nil {
		log.Printf("Dashboard product count unavailable: %v", err)
	} else {
		stats.Products = n
	}

	if orderStats, err := s.orders.OrderStats(ctx, sellerID); err != nil {
		log.Printf("Dashboard order stats unavailable: %v", err)
	} else {
		stats.Orders = orderStats
	}

	return stats, nil
}
