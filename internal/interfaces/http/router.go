package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wms-almacen/internal/application/analytics"
	"github.com/jhoicas/wms-almacen/internal/application/auth"
	"github.com/jhoicas/wms-almacen/internal/application/inventory"
	"github.com/jhoicas/wms-almacen/internal/application/picking"
	"github.com/jhoicas/wms-almacen/internal/application/usecase"
	"github.com/jhoicas/wms-almacen/internal/domain/entity"
	"github.com/jhoicas/wms-almacen/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC     *usecase.ProductUseCase
	LocationUC    *usecase.LocationUseCase
	StockUC       *usecase.StockUseCase
	UserUC        *usecase.UserUseCase
	Ledger        *inventory.LedgerUseCase
	Reception     *inventory.ReceptionUseCase
	Replenishment *inventory.ReplenishmentUseCase
	PickingUC     *picking.UseCase
	DashboardUC   *analytics.DashboardUseCase
	AuthUC        *auth.AuthUseCase
	PickingSheets PickingSheetGenerator
	StockReport   StockReportBuilder
	Logger        *logger.Logger
	JWTSecret     string
}

// Router registra las rutas de la API. El acceso por sección sigue la tabla de entity.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/change-password", authHandler.ChangePassword)

	writers := RequireRole(entity.RoleAdmin, entity.RoleSupervisor)

	// Products
	products := protected.Group("/products", RequireSection(entity.SectionProducts))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.LowStock)
	products.Get("/out-of-stock", productHandler.OutOfStock)
	products.Get("/search", productHandler.Search)
	products.Get("/code/:code", productHandler.GetByCode)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", writers, productHandler.Create)
	products.Put("/:id", writers, productHandler.Update)
	products.Delete("/:id", writers, productHandler.Delete)

	// Locations
	locations := protected.Group("/locations", RequireSection(entity.SectionLocations))
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Get("/", locationHandler.List)
	locations.Get("/available", locationHandler.Available)
	locations.Get("/summary", locationHandler.Summary)
	locations.Get("/suggest", locationHandler.Suggest)
	locations.Post("/", writers, locationHandler.Create)
	locations.Post("/:id/assign", locationHandler.Assign)

	// Reception y movimientos
	inventoryHandler := NewInventoryHandler(deps.Ledger, deps.Reception)
	protected.Post("/reception", RequireSection(entity.SectionReception), inventoryHandler.Receive)
	movements := protected.Group("/movements", RequireSection(entity.SectionMovements))
	movements.Get("/", inventoryHandler.ListMovements)
	movements.Get("/stats", inventoryHandler.Stats)
	movements.Post("/", inventoryHandler.RecordMovement)

	// Picking
	orders := protected.Group("/picking-orders", RequireSection(entity.SectionPicking))
	pickingHandler := NewPickingHandler(deps.PickingUC, deps.PickingSheets, deps.Logger)
	orders.Get("/", pickingHandler.List)
	orders.Get("/:id", pickingHandler.GetByID)
	orders.Get("/:id/sheet.pdf", pickingHandler.Sheet)
	orders.Post("/", writers, pickingHandler.Create)
	orders.Post("/:id/assign", pickingHandler.Assign)
	orders.Post("/:id/complete", pickingHandler.Complete)
	orders.Put("/:id/items/:product_id", pickingHandler.UpdateItemPicked)

	// Stock (ventas)
	stock := protected.Group("/stock", RequireSection(entity.SectionStock))
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Get("/", stockHandler.List)
	stock.Get("/summary", stockHandler.Summary)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", RequireSection(entity.SectionDashboard), dashboardHandler.GetSummary)

	// Reportes
	reports := protected.Group("/reports", RequireSection(entity.SectionReports))
	reportHandler := NewReportHandler(deps.ProductUC, deps.Ledger, deps.Replenishment, deps.StockReport)
	reports.Get("/stock.xlsx", reportHandler.StockWorkbook)
	reports.Get("/replenishment", reportHandler.Replenishment)

	// Usuarios
	users := protected.Group("/users", RequireSection(entity.SectionUsers))
	userHandler := NewUserHandler(deps.UserUC, deps.AuthUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
}
