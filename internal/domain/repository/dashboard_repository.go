package repository

import (
	"context"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/entity"
)

// CardCounts conteos crudos para las tarjetas del dashboard.
type CardCounts struct {
	Invoices  int
	Customers int
	Paid      int
	Pending   int
}

// MatchCounts conteos independientes usados para calcular el número de páginas:
// facturas que coinciden por monto/fecha/estado y clientes que coinciden por nombre/email.
type MatchCounts struct {
	Invoices  int
	Customers int
}

// Total suma ambos conteos (no es un conteo por join).
func (m MatchCounts) Total() int {
	return m.Invoices + m.Customers
}

// CustomerTotals fila agregada de un cliente: número de facturas y sumas en centavos
// de las facturas pendientes y pagadas.
type CustomerTotals struct {
	entity.Customer
	TotalInvoices int
	TotalPending  int64
	TotalPaid     int64
}

// DashboardRepository puerto de lectura del dashboard. Lo implementan el fixture en
// memoria (modo demo) y PostgreSQL; ambos deben devolver los mismos resultados para
// los mismos datos.
//
// Las búsquedas por texto son "contiene", sin distinguir mayúsculas (ILIKE '%q%').
type DashboardRepository interface {
	// Revenue devuelve la serie de ingresos en el orden almacenado.
	Revenue(ctx context.Context) ([]entity.Revenue, error)

	// LatestInvoices devuelve las `limit` facturas más recientes (fecha desc) con su cliente.
	LatestInvoices(ctx context.Context, limit int) ([]entity.InvoiceWithCustomer, error)

	// CountCards devuelve los conteos de facturas, clientes, pagadas y pendientes.
	CountCards(ctx context.Context) (CardCounts, error)

	// FilteredInvoices filtra por nombre, email, monto, fecha o estado normalizado,
	// ordena por fecha desc y aplica limit/offset.
	FilteredInvoices(ctx context.Context, query string, limit, offset int) ([]entity.InvoiceWithCustomer, error)

	// CountFilteredInvoices cuenta por separado facturas (monto/fecha/estado) y clientes (nombre/email).
	CountFilteredInvoices(ctx context.Context, query string) (MatchCounts, error)

	// InvoiceByID devuelve domain.ErrNotFound si no existe.
	InvoiceByID(ctx context.Context, id string) (*entity.Invoice, error)

	// Customers devuelve todos los clientes ordenados por nombre.
	Customers(ctx context.Context) ([]entity.Customer, error)

	// FilteredCustomers agrega facturas por cliente (left join) filtrando por nombre/email,
	// ordenado por nombre.
	FilteredCustomers(ctx context.Context, query string) ([]CustomerTotals, error)
}
