package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	handler "invoice-dashboard-backend/internal/handlers"
	"invoice-dashboard-backend/internal/repository"
	"invoice-dashboard-backend/internal/services/dashboard"
	"invoice-dashboard-backend/internal/services/invoices"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {
	customerRepo := repository.NewCustomerRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)

	dashboardService := dashboard.NewService(customerRepo, invoiceRepo, revenueRepo)
	invoiceActions := invoices.NewActions(invoiceRepo)

	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceActions, dashboardService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Dashboard overview routes
	dash := api.Group("/dashboard")
	dash.GET("/revenue", dashboardHandler.Revenue)
	dash.GET("/latest-invoices", dashboardHandler.LatestInvoices)
	dash.GET("/cards", dashboardHandler.Cards)

	// Invoice routes
	inv := api.Group("/invoices")
	{
		inv.GET("", dashboardHandler.ListInvoices)
		inv.GET("/pages", dashboardHandler.InvoicePages)
		inv.GET("/:id", dashboardHandler.GetInvoice)
		inv.POST("", invoiceHandler.Create)
		inv.PUT("/:id", invoiceHandler.Update)
		inv.DELETE("/:id", invoiceHandler.Delete)
	}

	// Customer routes
	cust := api.Group("/customers")
	cust.GET("", dashboardHandler.Customers)
	cust.GET("/filtered", dashboardHandler.FilteredCustomers)
}
