// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/dukan-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/dukan-ledger/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	inventoryController   *controller.InventoryController
	importController      *controller.ImportController
	dashboardController   *controller.DashboardController
	reportController      *controller.ReportController
	debtController        *controller.DebtController
	exportController      *controller.ExportController
	uploadRateLimiter     *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	inventoryController *controller.InventoryController,
	importController *controller.ImportController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	debtController *controller.DebtController,
	exportController *controller.ExportController,
	uploadRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		inventoryController:   inventoryController,
		importController:      importController,
		dashboardController:   dashboardController,
		reportController:      reportController,
		debtController:        debtController,
		exportController:      exportController,
		uploadRateLimiter:     uploadRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		transactions := v1.Group("/transactions")
		{
			transactions.GET("", r.transactionController.List)
			transactions.POST("", r.transactionController.Create)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
			transactions.POST("/bulk-delete", r.transactionController.BulkDelete)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.GET("", r.inventoryController.List)
			inventory.POST("", r.inventoryController.Create)
			inventory.PATCH("/:id", r.inventoryController.Update)
			inventory.DELETE("/:id", r.inventoryController.Delete)
		}

		// Uploads are rate limited; decoding runs in the background and
		// status is polled.
		imports := v1.Group("/import")
		{
			imports.POST("", r.uploadRateLimiter.Middleware(), r.importController.Start)
			imports.GET("/status", r.importController.Status)
		}

		v1.GET("/dashboard", r.dashboardController.Get)
		v1.GET("/report", r.reportController.Get)

		debtors := v1.Group("/debtors")
		{
			debtors.GET("", r.debtController.List)
			debtors.POST("/:client/settle", r.debtController.Settle)
		}

		v1.GET("/export", r.exportController.Download)
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
