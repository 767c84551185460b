package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sns-api/internal/application/auth"
	"github.com/jhoicas/sns-api/internal/application/usecase"
	"github.com/jhoicas/sns-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	AdminUC       *usecase.AdminUseCase
	CategoryUC    *usecase.CategoryUseCase
	ProductUC     *usecase.ProductUseCase
	SubProductUC  *usecase.SubProductUseCase
	ServiceUC     *usecase.ServiceUseCase
	SolutionUC    *usecase.SolutionUseCase
	CustomerUC    *usecase.CustomerUseCase
	CompanyInfoUC *usecase.CompanyInfoUseCase
	Version       string
	Assets        config.AssetsConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	system := NewSystemHandler(deps.Version, deps.Assets)
	app.Get("/", system.Root)
	app.Get("/health", system.Health)

	categories := NewCategoryHandler(deps.CategoryUC)
	products := NewProductHandler(deps.ProductUC)
	subProducts := NewSubProductHandler(deps.SubProductUC)
	services := NewServiceHandler(deps.ServiceUC)
	solutions := NewSolutionHandler(deps.SolutionUC)
	customers := NewCustomerHandler(deps.CustomerUC)
	companyInfo := NewCompanyInfoHandler(deps.CompanyInfoUC)

	requireAdmin := AuthMiddleware(deps.AuthUC)

	// Auth
	authHandler := NewAuthHandler(deps.AuthUC, deps.AdminUC)
	authGroup := app.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/login-json", authHandler.LoginJSON)
	authGroup.Get("/me", requireAdmin, authHandler.Me)
	authGroup.Put("/me", requireAdmin, authHandler.UpdateMe)

	// Admin (Bearer Token)
	admin := app.Group("/admin", requireAdmin)

	adminCategories := admin.Group("/categories")
	adminCategories.Get("/", categories.List)
	adminCategories.Post("/", categories.Create)
	adminCategories.Get("/:id", categories.GetByID)
	adminCategories.Put("/:id", categories.Update)
	adminCategories.Delete("/:id", categories.Delete)

	adminProducts := admin.Group("/products")
	adminProducts.Get("/", products.List)
	adminProducts.Post("/", products.Create)
	adminProducts.Get("/:id", products.GetByID)
	adminProducts.Put("/:id", products.Update)
	adminProducts.Delete("/:id", products.Delete)
	adminProducts.Get("/:id/sub-products", subProducts.ByProduct)

	// featured y search antes de /:id
	adminSubProducts := admin.Group("/sub-products")
	adminSubProducts.Get("/", subProducts.List)
	adminSubProducts.Post("/", subProducts.Create)
	adminSubProducts.Get("/featured", subProducts.Featured)
	adminSubProducts.Get("/search", subProducts.Search)
	adminSubProducts.Get("/:id", subProducts.GetByID)
	adminSubProducts.Put("/:id", subProducts.Update)
	adminSubProducts.Delete("/:id", subProducts.Delete)
	adminSubProducts.Get("/:id/datasheet", subProducts.Datasheet)

	adminServices := admin.Group("/services")
	adminServices.Get("/", services.List)
	adminServices.Post("/", services.Create)
	adminServices.Get("/:id", services.GetByID)
	adminServices.Put("/:id", services.Update)
	adminServices.Delete("/:id", services.Delete)

	adminSolutions := admin.Group("/solutions")
	adminSolutions.Get("/", solutions.List)
	adminSolutions.Post("/", solutions.Create)
	adminSolutions.Get("/:id", solutions.GetByID)
	adminSolutions.Put("/:id", solutions.Update)
	adminSolutions.Delete("/:id", solutions.Delete)

	adminCustomers := admin.Group("/customers")
	adminCustomers.Get("/", customers.List)
	adminCustomers.Post("/", customers.Create)
	adminCustomers.Get("/:id", customers.GetByID)
	adminCustomers.Put("/:id", customers.Update)
	adminCustomers.Delete("/:id", customers.Delete)

	admin.Get("/company-info", companyInfo.Get)
	admin.Put("/company-info", companyInfo.Update)

	// Público (solo lectura, solo activos)
	public := app.Group("/public")
	public.Get("/categories", categories.PublicList)
	public.Get("/categories/:id", categories.PublicGetByID)
	public.Get("/products", products.PublicList)
	public.Get("/products/:id", products.PublicGetByID)
	public.Get("/products/:id/sub-products", subProducts.ByProduct)
	public.Get("/sub-products", subProducts.PublicList)
	public.Get("/sub-products/featured", subProducts.Featured)
	public.Get("/sub-products/search", subProducts.Search)
	public.Get("/sub-products/:id", subProducts.PublicGetByID)
	public.Get("/sub-products/:id/datasheet", subProducts.PublicDatasheet)
	public.Get("/services", services.PublicList)
	public.Get("/services/:id", services.PublicGetByID)
	public.Get("/solutions", solutions.PublicList)
	public.Get("/solutions/:id", solutions.PublicGetByID)
	public.Get("/customers", customers.PublicList)
	public.Get("/customers/:id", customers.PublicGetByID)
	public.Get("/company-info", companyInfo.Get)
	public.Get("/default-images", system.DefaultImages)
}
