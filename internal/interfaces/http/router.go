package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/inventario-movil/internal/application/auth"
	"github.com/tu-usuario/inventario-movil/internal/application/inventory"
	"github.com/tu-usuario/inventario-movil/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.UseCase
	ProductUC      *usecase.ProductUseCase
	ScheduleUC     *usecase.ScheduleUseCase
	Reconcile      *inventory.ReconcileUseCase
	InventoryQuery *inventory.InventoryQueryUseCase
	Report         *inventory.ReportUseCase
	JWTSecret      string
	DefaultStoreID int64
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público): login delegado al servicio externo
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Rutas protegidas (requieren Bearer Token del servicio de auth)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido, solo lectura)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/scan/:code", productHandler.Scan)
	products.Get("/:id", productHandler.GetByID)

	// Inventory (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Reconcile, deps.InventoryQuery, deps.Report, deps.DefaultStoreID)
	invGroup.Get("/", inventoryHandler.List)
	invGroup.Post("/additions", inventoryHandler.ReconcileAdditions)
	invGroup.Post("/consumptions", inventoryHandler.RecordConsumption)
	invGroup.Get("/consumptions", inventoryHandler.ConsumptionLog)
	invGroup.Get("/report.pdf", inventoryHandler.StockReport)
	invGroup.Put("/products/:product_id/quantity", inventoryHandler.AdjustStock)
	invGroup.Delete("/products/:product_id", inventoryHandler.DeleteStock)

	// Schedules (protegido)
	schedules := protected.Group("/schedules")
	scheduleHandler := NewScheduleHandler(deps.ScheduleUC)
	schedules.Get("/", scheduleHandler.ListRange)
	schedules.Post("/availability", scheduleHandler.DeclareAvailability)
}
