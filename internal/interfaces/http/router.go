package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/myfoodtruck/pos-api/internal/application/auth"
	"github.com/myfoodtruck/pos-api/internal/application/report"
	"github.com/myfoodtruck/pos-api/internal/application/sales"
	"github.com/myfoodtruck/pos-api/internal/application/usecase"
	"github.com/myfoodtruck/pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	CategoryUC   *usecase.CategoryUseCase
	ProductUC    *usecase.ProductUseCase
	PosDataUC    *sales.PosDataUseCase
	RegisterSale *sales.RegisterSaleUseCase
	ReportUC     *report.SalesReportUseCase
	ReportPDF    ReportPDFGenerator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login y recuperación son públicos; el perfil requiere sesión (cualquier rol)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/reset-request", authHandler.ResetRequest)
	authGroup.Post("/reset-password", authHandler.ResetPassword)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), RequireRole(), authHandler.Me)
	authGroup.Put("/me", AuthMiddleware(deps.JWTSecret), RequireRole(), authHandler.UpdateMe)

	// Administración (requiere Bearer Token con rol admin)
	admin := api.Group("/admin", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))

	users := admin.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	categories := admin.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Post("/", categoryHandler.Create)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	products := admin.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	reportHandler := NewReportHandler(deps.ReportUC, deps.ReportPDF)
	admin.Get("/sales-report", reportHandler.SalesReport)
	admin.Get("/sales-report/pdf", reportHandler.SalesReportPDF)

	// Terminal de ventas (admin o vendedor)
	vendedor := api.Group("/vendedor", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin, entity.RoleVendedor))
	posHandler := NewPOSHandler(deps.PosDataUC, deps.RegisterSale)
	vendedor.Get("/pos-data", posHandler.PosData)
	vendedor.Post("/sales", posHandler.RegisterSale)
}
