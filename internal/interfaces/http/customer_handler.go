package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/application/dashboard"
)

// CustomerHandler maneja el selector y la tabla de clientes.
type CustomerHandler struct {
	uc *dashboard.UseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *dashboard.UseCase) *CustomerHandler {
	return &CustomerHandler{uc: uc}
}

// List GET /api/customers
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.FetchCustomers(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(list)
}

// Summary GET /api/customers/summary?query=
func (h *CustomerHandler) Summary(c *fiber.Ctx) error {
	rows, err := h.uc.FetchFilteredCustomers(c.Context(), c.Query("query"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(rows)
}
