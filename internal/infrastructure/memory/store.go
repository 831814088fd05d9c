// Package memory implementa el backend de datos del dashboard sobre un dataset
// estático en memoria (modo demo/local). Reproduce los resultados de las
// consultas SQL del backend postgres filtrando y transformando el fixture.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/entity"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/repository"
	"github.com/MartinAlejandroSoriano/dashboard-api/pkg/logger"
)

var (
	_ repository.DashboardRepository = (*Store)(nil)
	_ repository.UserRepository      = (*Store)(nil)
)

// demoPendingInvoices en modo demo las tarjetas no cuentan por estado: se asume un
// número fijo de facturas pendientes. El backend postgres cuenta por estado real.
const demoPendingInvoices = 2

// Store backend en memoria. El dataset no se modifica tras la construcción, por lo que
// el Store es seguro para uso concurrente sin locks.
type Store struct {
	data    Dataset
	latency time.Duration
	log     *logger.Logger
}

// Option configura el Store.
type Option func(*Store)

// WithLatency simula la latencia del almacenamiento en Revenue (modo demo).
func WithLatency(d time.Duration) Option {
	return func(s *Store) { s.latency = d }
}

// WithLogger asigna el logger del backend.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New construye el Store copiando los slices del dataset.
func New(data Dataset, opts ...Option) *Store {
	s := &Store{
		data: Dataset{
			Customers: append([]entity.Customer(nil), data.Customers...),
			Invoices:  append([]entity.Invoice(nil), data.Invoices...),
			Revenue:   append([]entity.Revenue(nil), data.Revenue...),
			Users:     append([]entity.User(nil), data.Users...),
		},
		log: logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewDemo construye el Store con el fixture de demostración.
func NewDemo(opts ...Option) (*Store, error) {
	data, err := Fixture()
	if err != nil {
		return nil, err
	}
	return New(data, opts...), nil
}

// Revenue devuelve la serie de ingresos tras la latencia simulada.
func (s *Store) Revenue(ctx context.Context) ([]entity.Revenue, error) {
	s.log.Info().Dur("latency", s.latency).Msg("obteniendo datos de ingresos...")
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("memory.Revenue: %w", ctx.Err())
		case <-timer.C:
		}
	}
	s.log.Info().Msg("datos de ingresos obtenidos")
	return append([]entity.Revenue(nil), s.data.Revenue...), nil
}

// LatestInvoices ordena por fecha desc, toma `limit` y solo entonces resuelve los clientes.
func (s *Store) LatestInvoices(_ context.Context, limit int) ([]entity.InvoiceWithCustomer, error) {
	invoices := append([]entity.Invoice(nil), s.data.Invoices...)
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].Date.After(invoices[j].Date)
	})
	if limit < len(invoices) {
		invoices = invoices[:max(limit, 0)]
	}

	rows := make([]entity.InvoiceWithCustomer, 0, len(invoices))
	for _, inv := range invoices {
		row, err := s.join(inv)
		if err != nil {
			return nil, fmt.Errorf("memory.LatestInvoices: %w", err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CountCards conteos de las tarjetas. Pagadas/pendientes usan la aproximación del modo demo.
func (s *Store) CountCards(_ context.Context) (repository.CardCounts, error) {
	n := len(s.data.Invoices)
	paid := max(n-demoPendingInvoices, 0)
	return repository.CardCounts{
		Invoices:  n,
		Customers: len(s.data.Customers),
		Paid:      paid,
		Pending:   n - paid,
	}, nil
}

// FilteredInvoices une cada factura con su cliente, filtra, ordena por fecha desc y pagina.
// El filtro de estado se aplica sobre el estado normalizado.
func (s *Store) FilteredInvoices(_ context.Context, query string, limit, offset int) ([]entity.InvoiceWithCustomer, error) {
	rows := make([]entity.InvoiceWithCustomer, 0, len(s.data.Invoices))
	for _, inv := range s.data.Invoices {
		row, err := s.join(inv)
		if err != nil {
			return nil, fmt.Errorf("memory.FilteredInvoices: %w", err)
		}
		if contains(row.Name, query) ||
			contains(row.Email, query) ||
			contains(strconv.FormatInt(row.Amount, 10), query) ||
			contains(row.DateString(), query) ||
			contains(string(entity.NormalizeStatus(row.Status)), query) {
			rows = append(rows, row)
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.After(rows[j].Date)
	})
	return paginate(rows, limit, offset), nil
}

// CountFilteredInvoices cuenta facturas por monto/fecha/estado y clientes por nombre/email,
// de forma independiente.
func (s *Store) CountFilteredInvoices(_ context.Context, query string) (repository.MatchCounts, error) {
	var counts repository.MatchCounts
	for _, inv := range s.data.Invoices {
		if contains(strconv.FormatInt(inv.Amount, 10), query) ||
			contains(inv.DateString(), query) ||
			contains(inv.Status, query) {
			counts.Invoices++
		}
	}
	for _, c := range s.data.Customers {
		if contains(c.Email, query) || contains(c.Name, query) {
			counts.Customers++
		}
	}
	return counts, nil
}

// InvoiceByID busca la factura por id exacto.
func (s *Store) InvoiceByID(_ context.Context, id string) (*entity.Invoice, error) {
	for _, inv := range s.data.Invoices {
		if inv.ID == id {
			found := inv
			return &found, nil
		}
	}
	return nil, fmt.Errorf("memory.InvoiceByID %s: %w", id, domain.ErrNotFound)
}

// Customers devuelve los clientes ordenados por nombre con collation en inglés.
func (s *Store) Customers(_ context.Context) ([]entity.Customer, error) {
	customers := append([]entity.Customer(nil), s.data.Customers...)
	sortByName(customers, func(c entity.Customer) string { return c.Name })
	return customers, nil
}

// FilteredCustomers equivale al LEFT JOIN + GROUP BY del backend postgres: los clientes
// sin facturas aparecen con totales en cero y las sumas solo consideran los estados
// exactos "pending" y "paid".
func (s *Store) FilteredCustomers(_ context.Context, query string) ([]repository.CustomerTotals, error) {
	out := make([]repository.CustomerTotals, 0, len(s.data.Customers))
	for _, c := range s.data.Customers {
		if !contains(c.Name, query) && !contains(c.Email, query) {
			continue
		}
		row := repository.CustomerTotals{Customer: c}
		for _, inv := range s.data.Invoices {
			if inv.CustomerID != c.ID {
				continue
			}
			row.TotalInvoices++
			switch entity.Status(inv.Status) {
			case entity.StatusPending:
				row.TotalPending += inv.Amount
			case entity.StatusPaid:
				row.TotalPaid += inv.Amount
			}
		}
		out = append(out, row)
	}
	sortByName(out, func(c repository.CustomerTotals) string { return c.Name })
	return out, nil
}

// FindByEmail implementa repository.UserRepository.
func (s *Store) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range s.data.Users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

// join resuelve el cliente de la factura: primera coincidencia exacta por id.
func (s *Store) join(inv entity.Invoice) (entity.InvoiceWithCustomer, error) {
	for _, c := range s.data.Customers {
		if c.ID == inv.CustomerID {
			return entity.InvoiceWithCustomer{
				Invoice:  inv,
				Name:     c.Name,
				Email:    c.Email,
				ImageURL: c.ImageURL,
			}, nil
		}
	}
	return entity.InvoiceWithCustomer{}, fmt.Errorf("factura %s, cliente %s: %w", inv.ID, inv.CustomerID, domain.ErrCustomerNotFound)
}

// contains equivale a ILIKE '%query%'.
func contains(s, query string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(query))
}

// paginate devuelve rows[offset:offset+limit]; fuera de rango devuelve un slice vacío.
func paginate[T any](rows []T, limit, offset int) []T {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || offset >= len(rows) {
		return []T{}
	}
	end := min(offset+limit, len(rows))
	return rows[offset:end]
}

// sortByName ordena (estable) con collation en inglés, como localeCompare.
func sortByName[T any](items []T, name func(T) string) {
	c := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		return c.CompareString(name(items[i]), name(items[j])) < 0
	})
}
