package dto

import "github.com/shopspring/decimal"

// RevenueDTO ingreso mensual para el gráfico de barras.
type RevenueDTO struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// LatestInvoiceDTO factura reciente con datos de display del cliente.
// Amount ya viene formateado ($1,234.56).
type LatestInvoiceDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
}

// CardDataDTO métricas de las tarjetas resumen.
type CardDataDTO struct {
	NumberOfCustomers    int `json:"numberOfCustomers"`
	NumberOfInvoices     int `json:"numberOfInvoices"`
	TotalPaidInvoices    int `json:"totalPaidInvoices"`
	TotalPendingInvoices int `json:"totalPendingInvoices"`
}

// InvoiceTableRowDTO fila de la tabla de facturas. Amount en centavos, Status normalizado.
type InvoiceTableRowDTO struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"image_url"`
	Date       string `json:"date"` // YYYY-MM-DD
	Amount     int64  `json:"amount"`
	Status     string `json:"status"`
}

// InvoiceFormDTO factura para el formulario de edición. Amount en unidades mayores (centavos / 100).
type InvoiceFormDTO struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customer_id"`
	Amount     decimal.Decimal `json:"amount"`
	Status     string          `json:"status"`
}

// CustomerFieldDTO opción del selector de clientes.
type CustomerFieldDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerSummaryDTO fila de la tabla de clientes con agregados formateados.
type CustomerSummaryDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ImageURL      string `json:"image_url"`
	TotalInvoices int    `json:"total_invoices"`
	TotalPending  string `json:"total_pending"`
	TotalPaid     string `json:"total_paid"`
}

// InvoicePagesDTO respuesta de GET /api/invoices/pages.
type InvoicePagesDTO struct {
	TotalPages int `json:"total_pages"`
}
