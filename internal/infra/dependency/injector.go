// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"gorm.io/gorm"

	"github.com/dukan-ledger/backend/config"
	"github.com/dukan-ledger/backend/internal/application/usecase/dashboard"
	"github.com/dukan-ledger/backend/internal/application/usecase/debt"
	"github.com/dukan-ledger/backend/internal/application/usecase/export"
	"github.com/dukan-ledger/backend/internal/application/usecase/importer"
	"github.com/dukan-ledger/backend/internal/application/usecase/inventory"
	"github.com/dukan-ledger/backend/internal/application/usecase/report"
	"github.com/dukan-ledger/backend/internal/application/usecase/transaction"
	"github.com/dukan-ledger/backend/internal/domain/entity"
	"github.com/dukan-ledger/backend/internal/infra/server/router"
	"github.com/dukan-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/dukan-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/dukan-ledger/backend/internal/integration/persistence"
	"github.com/dukan-ledger/backend/internal/integration/spreadsheet"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(db)
	inventoryRepo := persistence.NewInventoryRepository(db)

	// Create spreadsheet codec and import tracker
	decoder := spreadsheet.NewXLSXDecoder()
	encoder := spreadsheet.NewXLSXEncoder()
	importTracker := importer.NewInMemoryImportTracker()

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(
		transactionRepo,
		inventoryRepo,
		entity.Currency(cfg.Ledger.DefaultCurrency),
	)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)
	bulkDeleteTransactionsUseCase := transaction.NewBulkDeleteTransactionsUseCase(transactionRepo)

	// Create inventory use cases
	listItemsUseCase := inventory.NewListItemsUseCase(inventoryRepo)
	createItemUseCase := inventory.NewCreateItemUseCase(inventoryRepo)
	updateItemUseCase := inventory.NewUpdateItemUseCase(inventoryRepo)
	deleteItemUseCase := inventory.NewDeleteItemUseCase(inventoryRepo)

	// Create import use cases
	startImportUseCase := importer.NewStartImportUseCase(decoder, transactionRepo, inventoryRepo, importTracker)
	importStatusUseCase := importer.NewGetImportStatusUseCase(importTracker)

	// Create aggregation use cases
	dashboardStatsUseCase := dashboard.NewGetDashboardStatsUseCase(transactionRepo)
	reportStatsUseCase := report.NewGetReportStatsUseCase(transactionRepo)

	// Create debt use cases
	listDebtorsUseCase := debt.NewListDebtorsUseCase(transactionRepo)
	settleDebtsUseCase := debt.NewSettleDebtsUseCase(transactionRepo)

	// Create export use case
	exportTransactionsUseCase := export.NewExportTransactionsUseCase(transactionRepo, encoder)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
		bulkDeleteTransactionsUseCase,
	)

	inventoryController := controller.NewInventoryController(
		listItemsUseCase,
		createItemUseCase,
		updateItemUseCase,
		deleteItemUseCase,
	)

	importController := controller.NewImportController(startImportUseCase, importStatusUseCase)
	dashboardController := controller.NewDashboardController(dashboardStatsUseCase)
	reportController := controller.NewReportController(reportStatsUseCase)
	debtController := controller.NewDebtController(listDebtorsUseCase, settleDebtsUseCase)
	exportController := controller.NewExportController(exportTransactionsUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var uploadRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "test" {
		uploadRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		uploadRateLimiter = middleware.NewRateLimiterWithConfig(cfg.Ledger.ImportMaxUploads, cfg.Ledger.ImportUploadWindow)
	}

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		inventoryController,
		importController,
		dashboardController,
		reportController,
		debtController,
		exportController,
		uploadRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
