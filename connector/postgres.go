package connector

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Konsultn-Engineering/datagit/database"
	"github.com/Konsultn-Engineering/datagit/dialect"
)

func init() {
	Register("postgres", postgresProvider{})
}

type postgresProvider struct{}

func (postgresProvider) Dialect() dialect.Dialect { return dialect.NewPostgresDialect() }

func (postgresProvider) Connect(ctx context.Context, cfg Config) (Connection, error) {
	p := &PostgresConnector{
		config:  cfg,
		dialect: dialect.NewPostgresDialect(),
	}
	if err := p.connect(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// PostgresConnector represents a PostgreSQL database connection.
type PostgresConnector struct {
	config  Config
	pool    *pgxpool.Pool
	dialect dialect.Dialect
}

// connect establishes the PostgreSQL connection.
func (p *PostgresConnector) connect(ctx context.Context) error {
	if p.pool != nil {
		return nil // Already connected
	}

	dsn, err := postgresDSN(p.config)
	if err != nil {
		return err
	}
	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return err
	}
	applyPoolDefaults(poolCfg, p.config.Pool)

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return err
	}

	p.pool = pool
	return nil
}

func applyPoolDefaults(poolCfg *pgxpool.Config, pc PoolConfig) {
	if pc.MaxOpen <= 0 {
		pc.MaxOpen = 10
	}
	if pc.MaxIdle < 0 {
		pc.MaxIdle = 0
	}
	if pc.MaxIdle > pc.MaxOpen {
		pc.MaxIdle = pc.MaxOpen
	}
	if pc.MaxLifetime == 0 {
		pc.MaxLifetime = time.Hour
	}
	if pc.MaxIdleTime == 0 {
		pc.MaxIdleTime = 30 * time.Minute
	}

	poolCfg.MaxConns = int32(pc.MaxOpen)
	poolCfg.MinConns = int32(pc.MaxIdle)
	poolCfg.MaxConnLifetime = pc.MaxLifetime
	poolCfg.MaxConnIdleTime = pc.MaxIdleTime
}

// postgresDSN creates a PostgreSQL connection string.
func postgresDSN(cfg Config) (string, error) {
	b := NewDSNBuilder("postgres").
		Auth(cfg.Username, cfg.Password).
		Host(cfg.Host, cfg.Port).
		Database(cfg.Database).
		Param("sslmode", cfg.SSLMode).
		Params(cfg.Params)
	if err := b.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return b.Build(), nil
}

// Database returns a database abstraction interface.
func (p *PostgresConnector) Database() database.Database {
	return database.NewPgxDatabase(p.pool)
}

// Dialect returns the PostgreSQL dialect.
func (p *PostgresConnector) Dialect() dialect.Dialect {
	return p.dialect
}

// Health checks the connection health.
func (p *PostgresConnector) Health(ctx context.Context) error {
	if p.pool == nil {
		return fmt.Errorf("not connected")
	}
	return p.pool.Ping(ctx)
}

// Stats returns connection pool statistics.
func (p *PostgresConnector) Stats() ConnectionStats {
	if p.pool == nil {
		return ConnectionStats{}
	}
	s := p.pool.Stat()
	return ConnectionStats{
		OpenConnections: int(s.TotalConns()),
		InUse:           int(s.AcquiredConns()),
		Idle:            int(s.IdleConns()),
	}
}

// Close closes the connection pool.
func (p *PostgresConnector) Close() error {
	if p.pool != nil {
		p.pool.Close()
		p.pool = nil
	}
	return nil
}
