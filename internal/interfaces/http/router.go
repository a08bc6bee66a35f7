package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/agrilconnect-api/internal/application/analytics"
	"github.com/jhoicas/agrilconnect-api/internal/application/auth"
	"github.com/jhoicas/agrilconnect-api/internal/application/checkout"
	"github.com/jhoicas/agrilconnect-api/internal/application/usecase"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC          *auth.AuthUseCase
	ProductUC       *usecase.ProductUseCase
	CategoryUC      *usecase.CategoryUseCase
	CartUC          *usecase.CartUseCase
	CheckoutUC      *checkout.CheckoutUseCase
	OrderUC         *usecase.OrderUseCase
	InquiryUC       *usecase.InquiryUseCase
	UserUC          *usecase.UserUseCase
	DeliverySummary *appanalytics.DeliverySummaryUseCase
	LoginLimiter    LoginLimiter // opcional
	Sessions        SessionResolver
	JWTSecret       string
	Logger          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	authHandler := NewAuthHandler(deps.AuthUC, deps.LoginLimiter, deps.Logger)
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	inquiryHandler := NewInquiryHandler(deps.InquiryUC)
	cartHandler := NewCartHandler(deps.CartUC)
	checkoutHandler := NewCheckoutHandler(deps.CheckoutUC)
	orderHandler := NewOrderHandler(deps.OrderUC)
	deliveryHandler := NewDeliveryHandler(deps.OrderUC, deps.DeliverySummary)
	userHandler := NewUserHandler(deps.UserUC)
	consoleHandler := NewConsoleHandler()

	// Auth (público)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.SignUp)
	authGroup.Post("/login", authHandler.Login)

	// Catálogo y contacto (público)
	api.Get("/products", productHandler.Catalog)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/categories", categoryHandler.List)
	api.Post("/contact", inquiryHandler.Submit)

	// Rutas con sesión (requieren Bearer Token)
	withSession := SessionMiddleware(deps.JWTSecret, deps.Sessions)

	api.Get("/auth/me", withSession, authHandler.Me)

	cart := api.Group("/cart", withSession)
	cart.Get("/", cartHandler.Get)
	cart.Delete("/", cartHandler.Clear)
	cart.Post("/items", cartHandler.Add)
	cart.Put("/items/:productId", cartHandler.UpdateQuantity)
	cart.Delete("/items/:productId", cartHandler.Remove)

	api.Post("/checkout", withSession, checkoutHandler.PlaceOrder)

	orders := api.Group("/orders", withSession)
	orders.Get("/mine", orderHandler.Mine)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/receipt", orderHandler.Receipt)
	orders.Post("/:id/payment", checkoutHandler.ConfirmPayment)

	// Consola administrativa: sesión + rol elevado + permiso por ruta
	admin := api.Group("/admin", withSession, RequireConsole())
	can := RequirePermission

	admin.Get("/console", consoleHandler.Describe)
	admin.Get("/console/:section", consoleHandler.Section)

	products := admin.Group("/products")
	products.Get("/", can(rbac.ActionRead, rbac.ResourceProducts), productHandler.List)
	products.Post("/", can(rbac.ActionCreate, rbac.ResourceProducts), productHandler.Create)
	products.Put("/:id", can(rbac.ActionUpdate, rbac.ResourceProducts), productHandler.Update)
	products.Delete("/:id", can(rbac.ActionDelete, rbac.ResourceProducts), productHandler.Delete)

	categories := admin.Group("/categories")
	categories.Get("/", can(rbac.ActionRead, rbac.ResourceCategories), categoryHandler.List)
	categories.Post("/", can(rbac.ActionCreate, rbac.ResourceCategories), categoryHandler.Create)
	categories.Put("/:id", can(rbac.ActionUpdate, rbac.ResourceCategories), categoryHandler.Update)
	categories.Delete("/:id", can(rbac.ActionDelete, rbac.ResourceCategories), categoryHandler.Delete)

	adminOrders := admin.Group("/orders")
	adminOrders.Get("/", can(rbac.ActionRead, rbac.ResourceOrders), orderHandler.List)
	adminOrders.Patch("/:id/status", can(rbac.ActionUpdate, rbac.ResourceOrders), orderHandler.UpdateStatus)

	deliveries := admin.Group("/deliveries")
	deliveries.Get("/", can(rbac.ActionRead, rbac.ResourceOrders), deliveryHandler.List)
	deliveries.Get("/summary", can(rbac.ActionRead, rbac.ResourceOrders), deliveryHandler.GetSummary)
	deliveries.Patch("/:id/status", can(rbac.ActionUpdate, rbac.ResourceOrders), deliveryHandler.UpdateStatus)

	inquiries := admin.Group("/inquiries")
	inquiries.Get("/", can(rbac.ActionRead, rbac.ResourceInquiries), inquiryHandler.List)
	inquiries.Patch("/:id/status", can(rbac.ActionUpdate, rbac.ResourceInquiries), inquiryHandler.UpdateStatus)

	users := admin.Group("/users")
	users.Get("/", can(rbac.ActionRead, rbac.ResourceUsers), userHandler.List)
	users.Post("/", can(rbac.ActionCreate, rbac.ResourceUsers), userHandler.Create)
	users.Put("/:id", can(rbac.ActionUpdate, rbac.ResourceUsers), userHandler.Update)
	users.Delete("/:id", can(rbac.ActionDelete, rbac.ResourceUsers), userHandler.Delete)
}
