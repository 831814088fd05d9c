package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/entity"
)

// SeedData filas a insertar con Seed.
type SeedData struct {
	Users     []entity.User
	Customers []entity.Customer
	Invoices  []entity.Invoice
	Revenue   []entity.Revenue
}

// Seed inserta los datos en una sola transacción. Las filas ya existentes (mismo id o mes)
// se omiten, así que puede ejecutarse más de una vez.
func Seed(ctx context.Context, pool *pgxpool.Pool, data SeedData) (err error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, u := range data.Users {
		batch.Queue(`INSERT INTO users (id, name, email, password) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`, u.ID, u.Name, u.Email, u.PasswordHash)
	}
	for _, c := range data.Customers {
		batch.Queue(`INSERT INTO customers (id, name, email, image_url) VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING`, c.ID, c.Name, c.Email, c.ImageURL)
	}
	for _, inv := range data.Invoices {
		batch.Queue(`INSERT INTO invoices (id, customer_id, amount, status, date) VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING`, inv.ID, inv.CustomerID, inv.Amount, inv.Status, inv.Date)
	}
	for _, r := range data.Revenue {
		batch.Queue(`INSERT INTO revenue (month, revenue) VALUES ($1, $2)
			ON CONFLICT (month) DO NOTHING`, r.Month, r.Revenue)
	}

	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("seed batch: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}
	return nil
}
