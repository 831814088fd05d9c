package dashboard_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/application/dashboard"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/application/dto"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/entity"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/repository"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/infrastructure/memory"
	"github.com/MartinAlejandroSoriano/dashboard-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func newDemoUseCase(t *testing.T) *dashboard.UseCase {
	t.Helper()
	store, err := memory.NewDemo()
	require.NoError(t, err)
	return dashboard.NewUseCase(store, logger.Nop())
}

func fixtureInvoices(t *testing.T) map[string]entity.Invoice {
	t.Helper()
	data, err := memory.Fixture()
	require.NoError(t, err)
	out := make(map[string]entity.Invoice, len(data.Invoices))
	for _, inv := range data.Invoices {
		out[inv.ID] = inv
	}
	return out
}

func date(s string) time.Time {
	t, _ := time.Parse(entity.DateLayout, s)
	return t
}

// failingRepo devuelve el mismo error en todas las consultas.
type failingRepo struct{ err error }

var _ repository.DashboardRepository = failingRepo{}

func (f failingRepo) Revenue(context.Context) ([]entity.Revenue, error) { return nil, f.err }
func (f failingRepo) LatestInvoices(context.Context, int) ([]entity.InvoiceWithCustomer, error) {
	return nil, f.err
}
func (f failingRepo) CountCards(context.Context) (repository.CardCounts, error) {
	return repository.CardCounts{}, f.err
}
func (f failingRepo) FilteredInvoices(context.Context, string, int, int) ([]entity.InvoiceWithCustomer, error) {
	return nil, f.err
}
func (f failingRepo) CountFilteredInvoices(context.Context, string) (repository.MatchCounts, error) {
	return repository.MatchCounts{}, f.err
}
func (f failingRepo) InvoiceByID(context.Context, string) (*entity.Invoice, error) { return nil, f.err }
func (f failingRepo) Customers(context.Context) ([]entity.Customer, error) { return nil, f.err }
func (f failingRepo) FilteredCustomers(context.Context, string) ([]repository.CustomerTotals, error) {
	return nil, f.err
}

// ──────────────────────────────────────────────────────────────────────────────
// Revenue / últimas facturas / tarjetas
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchRevenue_SerieCompleta(t *testing.T) {
	uc := newDemoUseCase(t)
	rev, err := uc.FetchRevenue(context.Background())
	require.NoError(t, err)
	require.Len(t, rev, 12)
	assert.Equal(t, "Jan", rev[0].Month)
	assert.Equal(t, int64(2000), rev[0].Revenue)
}

func TestFetchLatestInvoices_MaximoCincoFechaNoCreciente(t *testing.T) {
	uc := newDemoUseCase(t)
	byID := fixtureInvoices(t)

	latest, err := uc.FetchLatestInvoices(context.Background())
	require.NoError(t, err)
	require.LessOrEqual(t, len(latest), 5)
	require.Len(t, latest, 5)

	for i := 1; i < len(latest); i++ {
		prev, cur := byID[latest[i-1].ID], byID[latest[i].ID]
		assert.False(t, cur.Date.After(prev.Date), "las fechas deben ser no crecientes")
	}

	assert.Equal(t, "Michael Novotny", latest[0].Name)
	assert.Equal(t, "michael@novotny.com", latest[0].Email)
	assert.Equal(t, "/customers/michael-novotny.png", latest[0].ImageURL)
	assert.Equal(t, "$448.00", latest[0].Amount)
	assert.Equal(t, "$6.66", latest[4].Amount)
}

func TestFetchCardData_Demo(t *testing.T) {
	uc := newDemoUseCase(t)
	cards, err := uc.FetchCardData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 6, cards.NumberOfCustomers)
	assert.Equal(t, 13, cards.NumberOfInvoices)
	assert.Equal(t, 11, cards.TotalPaidInvoices)
	assert.Equal(t, 2, cards.TotalPendingInvoices)
}

// Con 2 pagadas y N-2 pendientes el modo demo reporta N-2 pagadas y 2 pendientes:
// en memoria pagadas/pendientes no se cuentan por estado.
func TestFetchCardData_AproximacionDemoIgnoraEstado(t *testing.T) {
	const n = 5
	invoices := make([]entity.Invoice, 0, n)
	for i := 0; i < n; i++ {
		status := "pending"
		if i < 2 {
			status = "paid"
		}
		invoices = append(invoices, entity.Invoice{ID: string(rune('a' + i)), CustomerID: "c1", Status: status})
	}
	uc := dashboard.NewUseCase(memory.New(memory.Dataset{
		Customers: []entity.Customer{{ID: "c1", Name: "Ana"}},
		Invoices:  invoices,
	}), nil)

	cards, err := uc.FetchCardData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, n, cards.NumberOfInvoices)
	assert.Equal(t, n-2, cards.TotalPaidInvoices)
	assert.Equal(t, 2, cards.TotalPendingInvoices)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de facturas y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchFilteredInvoices_PrimeraPaginaSinFiltro(t *testing.T) {
	uc := newDemoUseCase(t)
	rows, err := uc.FetchFilteredInvoices(context.Background(), "", 1)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	wantDates := []string{"2023-09-10", "2023-08-19", "2023-08-05", "2023-07-16", "2023-06-27", "2023-06-17"}
	for i, row := range rows {
		assert.Equal(t, wantDates[i], row.Date)
	}
	assert.Equal(t, int64(44800), rows[0].Amount, "el monto de la tabla queda en centavos")
	assert.Equal(t, "paid", rows[0].Status)
	assert.Equal(t, "Michael Novotny", rows[0].Name)
}

func TestFetchFilteredInvoices_PaginaFueraDeRango(t *testing.T) {
	uc := newDemoUseCase(t)
	rows, err := uc.FetchFilteredInvoices(context.Background(), "", 5)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)

	last, err := uc.FetchFilteredInvoices(context.Background(), "", 3)
	require.NoError(t, err)
	assert.Len(t, last, 1)
}

func TestFetchFilteredInvoices_PaginaCeroEquivaAUno(t *testing.T) {
	uc := newDemoUseCase(t)
	p0, err := uc.FetchFilteredInvoices(context.Background(), "", 0)
	require.NoError(t, err)
	p1, err := uc.FetchFilteredInvoices(context.Background(), "", 1)
	require.NoError(t, err)
	assert.Equal(t, p1, p0)
}

func TestFetchFilteredInvoices_EstadoDesconocidoSeNormaliza(t *testing.T) {
	uc := dashboard.NewUseCase(memory.New(memory.Dataset{
		Customers: []entity.Customer{{ID: "c1", Name: "Ana", Email: "ana@x.com"}},
		Invoices: []entity.Invoice{
			{ID: "i1", CustomerID: "c1", Amount: 100, Status: "Paid", Date: date("2024-01-02")},
			{ID: "i2", CustomerID: "c1", Amount: 200, Status: "paid", Date: date("2024-01-01")},
		},
	}), nil)

	rows, err := uc.FetchFilteredInvoices(context.Background(), "pending", 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "i1", rows[0].ID)
	assert.Equal(t, "pending", rows[0].Status)
}

func TestFetchInvoicesPages(t *testing.T) {
	uc := newDemoUseCase(t)
	tests := []struct {
		query string
		want  int
	}{
		{"", 4},      // ceil((13 + 6) / 6)
		{"delba", 1}, // 0 facturas + 1 cliente
		{"2023", 2},  // 9 facturas + 0 clientes
		{"zzz", 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, err := uc.FetchInvoicesPages(context.Background(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Detalle de factura
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchInvoiceByID_RoundTrip(t *testing.T) {
	uc := newDemoUseCase(t)
	for id, inv := range fixtureInvoices(t) {
		form, err := uc.FetchInvoiceByID(context.Background(), id)
		require.NoError(t, err)

		want := decimal.NewFromInt(inv.Amount).Div(decimal.NewFromInt(100))
		assert.True(t, want.Equal(form.Amount), "amount %s != %s", form.Amount, want)
		assert.Equal(t, inv.Status, form.Status)
		assert.Equal(t, inv.CustomerID, form.CustomerID)
	}
}

// Una factura inexistente no provoca panic: el repositorio devuelve ErrNotFound, que
// queda en el log, y el llamador recibe el error fijo de la operación.
func TestFetchInvoiceByID_Inexistente(t *testing.T) {
	var buf bytes.Buffer
	store, err := memory.NewDemo()
	require.NoError(t, err)
	uc := dashboard.NewUseCase(store, logger.New(logger.Config{Env: "production", Output: &buf}))

	var form *dto.InvoiceFormDTO
	assert.NotPanics(t, func() {
		form, err = uc.FetchInvoiceByID(context.Background(), "00000000-0000-0000-0000-000000000000")
	})
	assert.Nil(t, form)
	assert.ErrorIs(t, err, domain.ErrFetchInvoice)
	assert.False(t, errors.Is(err, domain.ErrNotFound), "la causa no viaja en el error")
	assert.Contains(t, buf.String(), domain.ErrNotFound.Error())
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestFetchCustomers_OrdenAscendente(t *testing.T) {
	uc := newDemoUseCase(t)
	customers, err := uc.FetchCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 6)
	assert.Equal(t, "Amy Burns", customers[0].Name)
	assert.Equal(t, "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", customers[0].ID)
	assert.Equal(t, "Michael Novotny", customers[5].Name)
}

func TestFetchFilteredCustomers_TotalesFormateados(t *testing.T) {
	uc := newDemoUseCase(t)

	all, err := uc.FetchFilteredCustomers(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, all, 6)
	assert.Equal(t, "Balazs Orban", all[1].Name)
	assert.Equal(t, 3, all[1].TotalInvoices)
	assert.Equal(t, "$345.77", all[1].TotalPending)
	assert.Equal(t, "$174.91", all[1].TotalPaid)

	amy, err := uc.FetchFilteredCustomers(context.Background(), "AMY@")
	require.NoError(t, err)
	require.Len(t, amy, 1)
	assert.Equal(t, 2, amy[0].TotalInvoices)
	assert.Equal(t, "$0.00", amy[0].TotalPending)
	assert.Equal(t, "$42.90", amy[0].TotalPaid)
}

// ──────────────────────────────────────────────────────────────────────────────
// Frontera de error y concurrencia
// ──────────────────────────────────────────────────────────────────────────────

func TestFallos_DevuelvenErrorFijoYRegistranCausa(t *testing.T) {
	cause := errors.New("conexión rechazada")
	ctx := context.Background()

	tests := []struct {
		op    string
		fixed error
		call  func(*dashboard.UseCase) error
	}{
		{"FetchRevenue", domain.ErrFetchRevenue, func(uc *dashboard.UseCase) error { _, err := uc.FetchRevenue(ctx); return err }},
		{"FetchLatestInvoices", domain.ErrFetchLatestInvoices, func(uc *dashboard.UseCase) error { _, err := uc.FetchLatestInvoices(ctx); return err }},
		{"FetchCardData", domain.ErrFetchCardData, func(uc *dashboard.UseCase) error { _, err := uc.FetchCardData(ctx); return err }},
		{"FetchFilteredInvoices", domain.ErrFetchInvoices, func(uc *dashboard.UseCase) error { _, err := uc.FetchFilteredInvoices(ctx, "", 1); return err }},
		{"FetchInvoicesPages", domain.ErrFetchInvoicesPages, func(uc *dashboard.UseCase) error { _, err := uc.FetchInvoicesPages(ctx, ""); return err }},
		{"FetchInvoiceByID", domain.ErrFetchInvoice, func(uc *dashboard.UseCase) error { _, err := uc.FetchInvoiceByID(ctx, "x"); return err }},
		{"FetchCustomers", domain.ErrFetchCustomers, func(uc *dashboard.UseCase) error { _, err := uc.FetchCustomers(ctx); return err }},
		{"FetchFilteredCustomers", domain.ErrFetchFilteredCustomers, func(uc *dashboard.UseCase) error { _, err := uc.FetchFilteredCustomers(ctx, ""); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			var buf bytes.Buffer
			uc := dashboard.NewUseCase(failingRepo{err: cause}, logger.New(logger.Config{Env: "production", Output: &buf}))

			err := tt.call(uc)
			assert.Equal(t, tt.fixed, err)
			assert.False(t, errors.Is(err, cause))
			assert.Contains(t, buf.String(), tt.op)
			assert.Contains(t, buf.String(), cause.Error())
		})
	}
}

func TestConsultasConcurrentes(t *testing.T) {
	uc := newDemoUseCase(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(page int) {
			defer wg.Done()
			_, err := uc.FetchFilteredInvoices(ctx, "", page)
			assert.NoError(t, err)
			_, err = uc.FetchCustomers(ctx)
			assert.NoError(t, err)
			_, err = uc.FetchFilteredCustomers(ctx, "a")
			assert.NoError(t, err)
			_, err = uc.FetchCardData(ctx)
			assert.NoError(t, err)
		}(i%4 + 1)
	}
	wg.Wait()
}
