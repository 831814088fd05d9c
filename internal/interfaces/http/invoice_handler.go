package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/application/dashboard"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/application/dto"
)

// InvoiceHandler maneja la tabla de facturas y el detalle para edición.
type InvoiceHandler struct {
	uc *dashboard.UseCase
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc *dashboard.UseCase) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// List devuelve una página de la tabla de facturas filtrada.
// GET /api/invoices?query=&page=1
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.FetchFilteredInvoices(c.Context(), c.Query("query"), c.QueryInt("page", 1))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(rows)
}

// Pages devuelve el número de páginas de la tabla para `query`.
// GET /api/invoices/pages?query=
func (h *InvoiceHandler) Pages(c *fiber.Ctx) error {
	n, err := h.uc.FetchInvoicesPages(c.Context(), c.Query("query"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.InvoicePagesDTO{TotalPages: n})
}

// GetByID devuelve la factura en forma de formulario de edición.
// GET /api/invoices/:id
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "id requerido"})
	}
	form, err := h.uc.FetchInvoiceByID(c.Context(), id)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(form)
}
