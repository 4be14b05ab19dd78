package connector

import (
	"context"

	"github.com/Konsultn-Engineering/datagit/database"
	"github.com/Konsultn-Engineering/datagit/dialect"
)

// Connection is an open handle to the engine snapshot queries run against.
type Connection interface {
	Database() database.Database
	Dialect() dialect.Dialect
	Health(ctx context.Context) error
	Stats() ConnectionStats
	Close() error
}

// Provider opens connections for one driver.
type Provider interface {
	Connect(ctx context.Context, config Config) (Connection, error)
	Dialect() dialect.Dialect
}
