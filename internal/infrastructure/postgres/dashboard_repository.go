package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/entity"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// normalizedStatusSQL replica entity.NormalizeStatus en SQL (fallback a 'pending').
const normalizedStatusSQL = `CASE WHEN i.status IN ('pending', 'paid') THEN i.status ELSE 'pending' END`

const invoiceWithCustomerColumns = `
	    i.id::text, i.customer_id::text, i.amount, i.date, i.status,
	    c.name, c.email, c.image_url`

// DashboardRepo consultas de solo lectura del dashboard sobre PostgreSQL.
type DashboardRepo struct {
	q Querier
}

// NewDashboardRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDashboardRepository(q Querier) *DashboardRepo {
	return &DashboardRepo{q: q}
}

// Revenue devuelve la tabla revenue en su orden almacenado.
func (r *DashboardRepo) Revenue(ctx context.Context) ([]entity.Revenue, error) {
	rows, err := r.q.Query(ctx, `SELECT month, revenue FROM revenue`)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Revenue: %w", err)
	}
	defer rows.Close()

	var results []entity.Revenue
	for rows.Next() {
		var row entity.Revenue
		if err := rows.Scan(&row.Month, &row.Revenue); err != nil {
			return nil, fmt.Errorf("dashboard.Revenue scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard.Revenue rows: %w", err)
	}
	return results, nil
}

// LatestInvoices devuelve las `limit` facturas más recientes con los datos del cliente.
func (r *DashboardRepo) LatestInvoices(ctx context.Context, limit int) ([]entity.InvoiceWithCustomer, error) {
	query := `
	SELECT` + invoiceWithCustomerColumns + `
	FROM invoices i
	JOIN customers c ON i.customer_id = c.id
	ORDER BY i.date DESC, i.id
	LIMIT $1`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LatestInvoices: %w", err)
	}
	results, err := scanInvoicesWithCustomer(rows)
	if err != nil {
		return nil, fmt.Errorf("dashboard.LatestInvoices: %w", err)
	}
	return results, nil
}

// CountCards lanza los tres conteos en paralelo. Pendientes son todas las facturas no
// pagadas (mismo criterio que NormalizeStatus).
func (r *DashboardRepo) CountCards(ctx context.Context) (repository.CardCounts, error) {
	var counts repository.CardCounts
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return r.q.QueryRow(gctx, `SELECT COUNT(*) FROM invoices`).Scan(&counts.Invoices)
	})
	g.Go(func() error {
		return r.q.QueryRow(gctx, `SELECT COUNT(*) FROM customers`).Scan(&counts.Customers)
	})
	g.Go(func() error {
		const query = `
		SELECT
		    COUNT(*) FILTER (WHERE status =  'paid') AS paid,
		    COUNT(*) FILTER (WHERE status <> 'paid') AS pending
		FROM invoices`
		return r.q.QueryRow(gctx, query).Scan(&counts.Paid, &counts.Pending)
	})

	if err := g.Wait(); err != nil {
		return repository.CardCounts{}, fmt.Errorf("dashboard.CountCards: %w", err)
	}
	return counts, nil
}

// FilteredInvoices filtra con ILIKE sobre nombre, email, monto, fecha y estado normalizado.
func (r *DashboardRepo) FilteredInvoices(ctx context.Context, query string, limit, offset int) ([]entity.InvoiceWithCustomer, error) {
	sql := `
	SELECT` + invoiceWithCustomerColumns + `
	FROM invoices i
	JOIN customers c ON i.customer_id = c.id
	WHERE
	    c.name         ILIKE $1 OR
	    c.email        ILIKE $1 OR
	    i.amount::text ILIKE $1 OR
	    i.date::text   ILIKE $1 OR
	    ` + normalizedStatusSQL + ` ILIKE $1
	ORDER BY i.date DESC, i.id
	LIMIT $2 OFFSET $3`

	rows, err := r.q.Query(ctx, sql, containsPattern(query), limit, max(offset, 0))
	if err != nil {
		return nil, fmt.Errorf("dashboard.FilteredInvoices: %w", err)
	}
	results, err := scanInvoicesWithCustomer(rows)
	if err != nil {
		return nil, fmt.Errorf("dashboard.FilteredInvoices: %w", err)
	}
	return results, nil
}

// CountFilteredInvoices dos conteos independientes (no join): facturas por monto/fecha/estado
// y clientes por nombre/email.
func (r *DashboardRepo) CountFilteredInvoices(ctx context.Context, query string) (repository.MatchCounts, error) {
	const sql = `
	SELECT
	    (SELECT COUNT(*) FROM invoices
	      WHERE amount::text ILIKE $1 OR date::text ILIKE $1 OR status ILIKE $1) AS invoices,
	    (SELECT COUNT(*) FROM customers
	      WHERE name ILIKE $1 OR email ILIKE $1)                               AS customers`

	var counts repository.MatchCounts
	if err := r.q.QueryRow(ctx, sql, containsPattern(query)).Scan(&counts.Invoices, &counts.Customers); err != nil {
		return repository.MatchCounts{}, fmt.Errorf("dashboard.CountFilteredInvoices: %w", err)
	}
	return counts, nil
}

// InvoiceByID devuelve domain.ErrNotFound si el id no existe o no es un UUID válido.
func (r *DashboardRepo) InvoiceByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("dashboard.InvoiceByID %q: %w", id, domain.ErrNotFound)
	}

	const sql = `
	SELECT id::text, customer_id::text, amount, date, status
	FROM invoices
	WHERE id = $1`

	var inv entity.Invoice
	err := r.q.QueryRow(ctx, sql, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Date, &inv.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("dashboard.InvoiceByID %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("dashboard.InvoiceByID: %w", err)
	}
	return &inv, nil
}

// Customers devuelve todos los clientes ordenados por nombre.
func (r *DashboardRepo) Customers(ctx context.Context) ([]entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT id::text, name, email, image_url FROM customers ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("dashboard.Customers: %w", err)
	}
	defer rows.Close()

	var results []entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("dashboard.Customers scan: %w", err)
		}
		results = append(results, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard.Customers rows: %w", err)
	}
	return results, nil
}

// FilteredCustomers agrega las facturas de cada cliente (LEFT JOIN) filtrando por nombre/email.
// Las sumas se castean a NUMERIC y se leen como decimal.Decimal.
func (r *DashboardRepo) FilteredCustomers(ctx context.Context, query string) ([]repository.CustomerTotals, error) {
	const sql = `
	SELECT
	    c.id::text,
	    c.name,
	    c.email,
	    c.image_url,
	    COUNT(i.id)                                                                   AS total_invoices,
	    COALESCE(SUM(CASE WHEN i.status = 'pending' THEN i.amount ELSE 0 END), 0)::numeric AS total_pending,
	    COALESCE(SUM(CASE WHEN i.status = 'paid'    THEN i.amount ELSE 0 END), 0)::numeric AS total_paid
	FROM customers c
	LEFT JOIN invoices i ON c.id = i.customer_id
	WHERE
	    c.name  ILIKE $1 OR
	    c.email ILIKE $1
	GROUP BY c.id, c.name, c.email, c.image_url
	ORDER BY c.name ASC`

	rows, err := r.q.Query(ctx, sql, containsPattern(query))
	if err != nil {
		return nil, fmt.Errorf("dashboard.FilteredCustomers: %w", err)
	}
	defer rows.Close()

	var results []repository.CustomerTotals
	for rows.Next() {
		var (
			row           repository.CustomerTotals
			pending, paid decimal.Decimal
		)
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Email,
			&row.ImageURL,
			&row.TotalInvoices,
			&pending,
			&paid,
		); err != nil {
			return nil, fmt.Errorf("dashboard.FilteredCustomers scan: %w", err)
		}
		row.TotalPending = pending.IntPart()
		row.TotalPaid = paid.IntPart()
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("dashboard.FilteredCustomers rows: %w", err)
	}
	return results, nil
}

func scanInvoicesWithCustomer(rows pgx.Rows) ([]entity.InvoiceWithCustomer, error) {
	defer rows.Close()

	results := []entity.InvoiceWithCustomer{}
	for rows.Next() {
		var row entity.InvoiceWithCustomer
		if err := rows.Scan(
			&row.ID,
			&row.CustomerID,
			&row.Amount,
			&row.Date,
			&row.Status,
			&row.Name,
			&row.Email,
			&row.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		results = append(results, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return results, nil
}
