package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/puntoventa/minimarket-api/internal/application/auth"
	"github.com/puntoventa/minimarket-api/internal/application/stock"
	"github.com/puntoventa/minimarket-api/internal/application/usecase"
	"github.com/puntoventa/minimarket-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CreateEntry *stock.CreateEntryUseCase
	StockQuery  *stock.QueryUseCase
	Voucher     *stock.VoucherUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	CategoryUC  *usecase.CategoryUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público, perfil protegido)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Ledger de entradas (protegido)
	stockGroup := protected.Group("/inventory/stock")
	stockHandler := NewStockHandler(deps.CreateEntry, deps.StockQuery, deps.Voucher)
	stockGroup.Post("/", stockHandler.Create)
	stockGroup.Get("/", stockHandler.List)
	// La ruta fija va antes que :id para que "stats" no se parsee como id.
	stockGroup.Get("/stats/summary", stockHandler.Stats)
	stockGroup.Get("/:id", stockHandler.GetByID)
	stockGroup.Get("/:id/pdf", stockHandler.Voucher)

	// Catálogo (protegido)
	products := protected.Group("/inventory/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:cod", productHandler.GetByCod)
	products.Put("/:cod", productHandler.Update)
	products.Delete("/:cod", adminOnly, productHandler.Delete)

	// Taxonomía (protegido)
	categories := protected.Group("/inventory/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/families", categoryHandler.CreateFamily)
	categories.Put("/families/:id", categoryHandler.UpdateFamily)
	categories.Delete("/families/:id", adminOnly, categoryHandler.DeleteFamily)
	categories.Post("/subfamilies", categoryHandler.CreateSubfamily)
	categories.Put("/subfamilies/:id", categoryHandler.UpdateSubfamily)
	categories.Delete("/subfamilies/:id", adminOnly, categoryHandler.DeleteSubfamily)

	// Clientes/proveedores (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	// La ruta fija va antes que :id.
	customers.Get("/doc/:doc", customerHandler.GetByDoc)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)
}
