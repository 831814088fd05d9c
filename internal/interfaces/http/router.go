package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/application/auth"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/application/dashboard"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC *dashboard.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string // vacío: rutas de consulta sin autenticación (modo demo)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)

	var guard []fiber.Handler
	if deps.JWTSecret != "" {
		guard = append(guard, AuthMiddleware(deps.JWTSecret))
	}

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash := api.Group("/dashboard", guard...)
	dash.Get("/revenue", dashboardHandler.Revenue)
	dash.Get("/invoices/latest", dashboardHandler.LatestInvoices)
	dash.Get("/cards", dashboardHandler.Cards)

	// /pages antes de /:id
	invoiceHandler := NewInvoiceHandler(deps.DashboardUC)
	invoices := api.Group("/invoices", guard...)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/pages", invoiceHandler.Pages)
	invoices.Get("/:id", invoiceHandler.GetByID)

	customerHandler := NewCustomerHandler(deps.DashboardUC)
	customers := api.Group("/customers", guard...)
	customers.Get("/", customerHandler.List)
	customers.Get("/summary", customerHandler.Summary)
}
