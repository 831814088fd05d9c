// seed crea las tablas del dashboard en PostgreSQL y las puebla con el mismo dataset de
// demostración que usa el backend en memoria.
//
// Uso: POSTGRES_URL=postgres://... go run ./cmd/seed
package main

import (
	"context"
	"time"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/infrastructure/memory"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/infrastructure/postgres"
	"github.com/MartinAlejandroSoriano/dashboard-api/pkg/config"
	"github.com/MartinAlejandroSoriano/dashboard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.RunMigrations(pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	data, err := memory.Fixture()
	if err != nil {
		log.Fatal().Err(err).Msg("fixture de demostración")
	}
	err = postgres.Seed(ctx, pool, postgres.SeedData{
		Users:     data.Users,
		Customers: data.Customers,
		Invoices:  data.Invoices,
		Revenue:   data.Revenue,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}

	log.Info().
		Int("users", len(data.Users)).
		Int("customers", len(data.Customers)).
		Int("invoices", len(data.Invoices)).
		Int("revenue", len(data.Revenue)).
		Msg("seed completado")
}
