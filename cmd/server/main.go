package main

import (
	"context"
	"log"

	"seller_panel/internal/config"
	"seller_panel/internal/handlers"
	"seller_panel/internal/services"
	"seller_panel/internal/session"
	"seller_panel/pkg/adminapi"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize session store
	store, err := session.Initialize(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer store.Close()

	// Initialize admin API client
	apiClient := adminapi.NewClient(cfg.AdminAPIURL, cfg.RequestTimeout, cfg.CancelledDateField)

	// Initialize services
	authService := services.NewAuthService(apiClient, store)
	shippingService := services.NewShippingService(apiClient)
	orderService := services.NewOrderService(apiClient, shippingService)
	profileService := services.NewProfileService(apiClient, store)
	stockService := services.NewStockService(apiClient)
	packageService := services.NewPackageService(apiClient)
	dashboardService := services.NewDashboardService(apiClient, orderService)

	// Background session refresher: fast cadence while approval is
	// pending, slow once approved
	refresher := services.NewSessionRefresher(apiClient, store, cfg.RefreshPending, cfg.RefreshApproved)
	refresherCtx, cancelRefresher := context.WithCancel(context.Background())
	refresher.Start(refresherCtx)
	defer func() {
		cancelRefresher()
		refresher.Stop()
	}()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, refresher)
	orderHandler := handlers.NewOrderHandler(orderService, shippingService)
	sellerHandler := handlers.NewSellerHandler(profileService, packageService, dashboardService)
	stockHandler := handlers.NewStockHandler(stockService)

	// Setup routes
	router := gin.Default()

	router.POST("/api/login", authHandler.Login)

	api := router.Group("/api")
	api.Use(handlers.RequireSession(authService))
	{
		api.POST("/logout", authHandler.Logout)
		api.GET("/session", authHandler.Session)
		api.POST("/session/refresh", authHandler.RefreshSession)
		api.GET("/sections", sellerHandler.Sections)

		api.GET("/profile", sellerHandler.GetProfile)
		api.PATCH("/profile", sellerHandler.SaveProfile)
		api.GET("/package-history", sellerHandler.PackageHistory)
	}

	// Routes only approved sellers may use
	approved := router.Group("/api")
	approved.Use(handlers.RequireSession(authService), handlers.RequireApproval())
	{
		approved.GET("/dashboard", sellerHandler.Dashboard)

		approved.GET("/orders", orderHandler.ListOrders)
		approved.GET("/buyers", orderHandler.Buyers)
		approved.PATCH("/order-items/:id/status", orderHandler.UpdateLineItemStatus)
		approved.PATCH("/orders/:id/type", orderHandler.UpdateOrderType)
		approved.GET("/orders/:id/shipping", orderHandler.OpenShipping)
		approved.PUT("/orders/:id/shipping", orderHandler.SubmitShipping)

		approved.GET("/stock", stockHandler.List)
		approved.POST("/stock", stockHandler.Create)
		approved.PATCH("/stock/:id", stockHandler.Update)
		approved.DELETE("/stock/:id", stockHandler.Delete)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
