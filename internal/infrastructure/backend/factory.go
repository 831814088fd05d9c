// Package backend selecciona la fuente de datos del dashboard (memoria o PostgreSQL)
// según DATA_BACKEND y entrega los repositorios listos para los casos de uso.
package backend

import (
	"context"
	"fmt"

	"github.com/MartinAlejandroSoriano/dashboard-api/internal/domain/repository"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/infrastructure/memory"
	"github.com/MartinAlejandroSoriano/dashboard-api/internal/infrastructure/postgres"
	"github.com/MartinAlejandroSoriano/dashboard-api/pkg/config"
	"github.com/MartinAlejandroSoriano/dashboard-api/pkg/logger"
)

// Result repositorios del backend elegido. Cleanup libera recursos (puede ser nil).
type Result struct {
	Dashboard repository.DashboardRepository
	Users     repository.UserRepository
	Cleanup   func()
}

// Close invoca Cleanup si existe.
func (r *Result) Close() {
	if r.Cleanup != nil {
		r.Cleanup()
	}
}

// New construye el backend indicado en cfg.Data.Backend.
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Result, error) {
	if log == nil {
		log = logger.Nop()
	}
	switch cfg.Data.Backend {
	case config.BackendMemory:
		return newMemory(cfg, log)
	case config.BackendPostgres:
		return newPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("backend no soportado: %q", cfg.Data.Backend)
	}
}

func newMemory(cfg *config.Config, log *logger.Logger) (*Result, error) {
	store, err := memory.NewDemo(
		memory.WithLatency(cfg.Data.MemoryLatency),
		memory.WithLogger(log.Named("memory")),
	)
	if err != nil {
		return nil, fmt.Errorf("backend memoria: %w", err)
	}
	log.Info().Dur("latency", cfg.Data.MemoryLatency).Msg("backend en memoria inicializado")
	return &Result{Dashboard: store, Users: store}, nil
}

func newPostgres(ctx context.Context, cfg *config.Config, log *logger.Logger) (*Result, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("backend postgres: %w", err)
	}
	if cfg.DB.Migrate {
		if err := postgres.RunMigrations(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("backend postgres: %w", err)
		}
		log.Info().Msg("migraciones aplicadas")
	}
	log.Info().Int32("max_conns", pool.Config().MaxConns).Msg("backend PostgreSQL inicializado")
	return &Result{
		Dashboard: postgres.NewDashboardRepository(pool),
		Users:     postgres.NewUserRepository(pool),
		Cleanup:   pool.Close,
	}, nil
}
