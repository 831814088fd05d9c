package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"

	"github.com/MartinAlejandroSoriano/dashboard-api/pkg/config"
)

// Querier abstrae pgxpool.Pool y pgx.Tx para las consultas de lectura.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)

// NewPool crea el pool de conexiones PostgreSQL (una vez por proceso) usando la
// configuración de la app. Exige transporte cifrado: sslmode=disable se rechaza.
func NewPool(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}
	if poolConfig.ConnConfig.TLSConfig == nil {
		return nil, fmt.Errorf("parse DSN: %w", errTLSRequired)
	}
	// Sin fallback a texto plano si el handshake TLS falla.
	poolConfig.ConnConfig.Fallbacks = nonPlaintext(poolConfig.ConnConfig.Fallbacks)

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	// Registrar codec para NUMERIC -> shopspring/decimal (todas las conexiones del pool).
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

func nonPlaintext(fallbacks []*pgconn.FallbackConfig) []*pgconn.FallbackConfig {
	out := fallbacks[:0]
	for _, fb := range fallbacks {
		if fb.TLSConfig != nil {
			out = append(out, fb)
		}
	}
	return out
}
