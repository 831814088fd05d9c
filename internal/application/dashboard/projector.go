package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/application/dto"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/entity"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/repository"
	"github.com/MartinAlejandroSoriano/dashboard-api/pkg/currency"
)

// Proyecciones de las filas del repositorio a las vistas del dashboard. Se construyen
// en cada llamada; no hay caché.

func toLatestInvoice(row entity.InvoiceWithCustomer) dto.LatestInvoiceDTO {
	return dto.LatestInvoiceDTO{
		ID:       row.ID,
		Name:     row.Name,
		ImageURL: row.ImageURL,
		Email:    row.Email,
		Amount:   currency.Format(row.Amount),
	}
}

func toInvoiceTableRow(row entity.InvoiceWithCustomer) dto.InvoiceTableRowDTO {
	return dto.InvoiceTableRowDTO{
		ID:         row.ID,
		CustomerID: row.CustomerID,
		Name:       row.Name,
		Email:      row.Email,
		ImageURL:   row.ImageURL,
		Date:       row.DateString(),
		Amount:     row.Amount,
		Status:     string(entity.NormalizeStatus(row.Status)),
	}
}

// toInvoiceForm convierte el monto de centavos a unidades mayores (amount / 100).
func toInvoiceForm(inv entity.Invoice) dto.InvoiceFormDTO {
	return dto.InvoiceFormDTO{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     decimal.New(inv.Amount, -2),
		Status:     string(entity.NormalizeStatus(inv.Status)),
	}
}

func toCustomerField(c entity.Customer) dto.CustomerFieldDTO {
	return dto.CustomerFieldDTO{ID: c.ID, Name: c.Name}
}

func toCustomerSummary(row repository.CustomerTotals) dto.CustomerSummaryDTO {
	return dto.CustomerSummaryDTO{
		ID:            row.ID,
		Name:          row.Name,
		Email:         row.Email,
		ImageURL:      row.ImageURL,
		TotalInvoices: row.TotalInvoices,
		TotalPending:  currency.Format(row.TotalPending),
		TotalPaid:     currency.Format(row.TotalPaid),
	}
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
