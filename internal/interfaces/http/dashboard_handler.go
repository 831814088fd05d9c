package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/application/dashboard"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/application/dto"
)

// DashboardHandler maneja los widgets de la página principal del dashboard.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Revenue devuelve la serie mensual de ingresos.
// GET /api/dashboard/revenue
func (h *DashboardHandler) Revenue(c *fiber.Ctx) error {
	out, err := h.uc.FetchRevenue(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// LatestInvoices devuelve las 5 facturas más recientes con el monto formateado.
// GET /api/dashboard/invoices/latest
func (h *DashboardHandler) LatestInvoices(c *fiber.Ctx) error {
	out, err := h.uc.FetchLatestInvoices(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// Cards devuelve los conteos de las tarjetas resumen.
// GET /api/dashboard/cards
func (h *DashboardHandler) Cards(c *fiber.Ctx) error {
	out, err := h.uc.FetchCardData(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// internalError responde 500 con el mensaje fijo de la consulta.
func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
