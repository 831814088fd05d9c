// Package dashboard contiene las consultas de lectura del dashboard de facturación:
// ingresos, últimas facturas, tarjetas resumen, tabla de facturas paginada, detalle
// de factura y clientes.
package dashboard

import (
	"context"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/application/dto"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/repository"
	"github.com/MartinAlejandroSoriano/dashboard-api/pkg/logger"
)

const latestInvoicesLimit = 5 // facturas en el widget "Latest Invoices"

// UseCase expone las consultas del dashboard sobre cualquier backend (memoria o PostgreSQL).
//
// Cada consulta es independiente y de solo lectura. Ante cualquier fallo registra la
// causa en el log y devuelve el error fijo de la operación (domain.ErrFetch...); la
// causa no se propaga al llamador.
type UseCase struct {
	repo repository.DashboardRepository
	log  *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.DashboardRepository, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{repo: repo, log: log}
}

// fail registra la causa y devuelve el error fijo de la operación.
func (uc *UseCase) fail(op string, cause, fixed error) error {
	uc.log.Error().Str("op", op).Err(cause).Msg("error de base de datos")
	return fixed
}

// FetchRevenue devuelve la serie de ingresos completa, en el orden almacenado.
func (uc *UseCase) FetchRevenue(ctx context.Context) ([]dto.RevenueDTO, error) {
	rows, err := uc.repo.Revenue(ctx)
	if err != nil {
		return nil, uc.fail("FetchRevenue", err, domain.ErrFetchRevenue)
	}
	out := make([]dto.RevenueDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RevenueDTO{Month: r.Month, Revenue: r.Revenue})
	}
	return out, nil
}

// FetchLatestInvoices devuelve hasta 5 facturas ordenadas por fecha desc, con el monto formateado.
func (uc *UseCase) FetchLatestInvoices(ctx context.Context) ([]dto.LatestInvoiceDTO, error) {
	rows, err := uc.repo.LatestInvoices(ctx, latestInvoicesLimit)
	if err != nil {
		return nil, uc.fail("FetchLatestInvoices", err, domain.ErrFetchLatestInvoices)
	}
	return mapSlice(rows, toLatestInvoice), nil
}

// FetchCardData devuelve los conteos de las tarjetas resumen.
func (uc *UseCase) FetchCardData(ctx context.Context) (*dto.CardDataDTO, error) {
	counts, err := uc.repo.CountCards(ctx)
	if err != nil {
		return nil, uc.fail("FetchCardData", err, domain.ErrFetchCardData)
	}
	return &dto.CardDataDTO{
		NumberOfCustomers:    counts.Customers,
		NumberOfInvoices:     counts.Invoices,
		TotalPaidInvoices:    counts.Paid,
		TotalPendingInvoices: counts.Pending,
	}, nil
}

// FetchFilteredInvoices devuelve la página `page` (1-based, 6 filas) de la tabla de facturas
// filtrada por `query`. Páginas fuera de rango devuelven un slice vacío.
func (uc *UseCase) FetchFilteredInvoices(ctx context.Context, query string, page int) ([]dto.InvoiceTableRowDTO, error) {
	limit, offset := dto.Page(page)
	rows, err := uc.repo.FilteredInvoices(ctx, query, limit, offset)
	if err != nil {
		return nil, uc.fail("FetchFilteredInvoices", err, domain.ErrFetchInvoices)
	}
	return mapSlice(rows, toInvoiceTableRow), nil
}

// FetchInvoicesPages devuelve ceil((facturas + clientes que coinciden) / 6).
func (uc *UseCase) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	counts, err := uc.repo.CountFilteredInvoices(ctx, query)
	if err != nil {
		return 0, uc.fail("FetchInvoicesPages", err, domain.ErrFetchInvoicesPages)
	}
	return dto.TotalPages(counts.Total()), nil
}

// FetchInvoiceByID devuelve la factura para el formulario de edición. Si no existe, el
// repositorio reporta domain.ErrNotFound (queda en el log) y se devuelve ErrFetchInvoice.
func (uc *UseCase) FetchInvoiceByID(ctx context.Context, id string) (*dto.InvoiceFormDTO, error) {
	inv, err := uc.repo.InvoiceByID(ctx, id)
	if err != nil {
		return nil, uc.fail("FetchInvoiceByID", err, domain.ErrFetchInvoice)
	}
	form := toInvoiceForm(*inv)
	return &form, nil
}

// FetchCustomers devuelve id y nombre de todos los clientes, ordenados por nombre.
func (uc *UseCase) FetchCustomers(ctx context.Context) ([]dto.CustomerFieldDTO, error) {
	customers, err := uc.repo.Customers(ctx)
	if err != nil {
		return nil, uc.fail("FetchCustomers", err, domain.ErrFetchCustomers)
	}
	return mapSlice(customers, toCustomerField), nil
}

// FetchFilteredCustomers devuelve la tabla de clientes con totales formateados.
func (uc *UseCase) FetchFilteredCustomers(ctx context.Context, query string) ([]dto.CustomerSummaryDTO, error) {
	rows, err := uc.repo.FilteredCustomers(ctx, query)
	if err != nil {
		return nil, uc.fail("FetchFilteredCustomers", err, domain.ErrFetchFilteredCustomers)
	}
	return mapSlice(rows, toCustomerSummary), nil
}
