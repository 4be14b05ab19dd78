package query

import (
	"github.com/Konsultn-Engineering/datagit/ast"
	"github.com/Konsultn-Engineering/datagit/cache"
	"github.com/Konsultn-Engineering/datagit/dialect"
	"github.com/Konsultn-Engineering/datagit/visitor"
)

const (
	// UniqueKeyAlias names the synthetic key, always the first result column.
	UniqueKeyAlias = "unique_key"
	// KeySeparator sits between key parts inside CONCAT.
	KeySeparator = "__"
)

// Builder turns SnapshotQuery values into SQL. It is safe for concurrent use.
type Builder struct {
	dialect dialect.Dialect
	cache   cache.QueryCache
}

// Option configures a Builder.
type Option func(*Builder)

// WithDialect sets the dialect used to render literals. nil keeps the default.
func WithDialect(d dialect.Dialect) Option {
	return func(b *Builder) {
		if d != nil {
			b.dialect = d
		}
	}
}

// WithCache sets the cache for rendered SQL. nil keeps the default.
func WithCache(c cache.QueryCache) Option {
	return func(b *Builder) {
		if c != nil {
			b.cache = c
		}
	}
}

// NewBuilder creates a Builder rendering for Postgres with a bounded LRU
// cache of rendered statements.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		dialect: dialect.NewPostgresDialect(),
		cache:   cache.NewQueryCache(cache.DefaultQueryCacheSize),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Dialect returns the dialect the builder renders with.
func (b *Builder) Dialect() dialect.Dialect { return b.dialect }

// Build renders
//
//	SELECT CONCAT(k1, '__', k2, ...) AS unique_key, <columns | *>
//	FROM <table> WHERE <w1 AND w2 ... | TRUE> ORDER BY 1
func (b *Builder) Build(q SnapshotQuery) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}

	stmt := ast.NewSelectStmt()
	defer stmt.Release()

	keyParts := ast.Interleave(ast.Columns(q.UniqueKeyColumns...), func() ast.Node {
		return ast.NewValue(KeySeparator)
	})
	stmt.AddColumn(ast.NewFunction("CONCAT", keyParts...).As(UniqueKeyAlias))

	if len(q.Columns) == 0 {
		stmt.AddColumn(ast.AllColumns())
	} else {
		for _, col := range q.Columns {
			stmt.AddColumn(ast.NewColumn(col, ""))
		}
	}

	stmt.From = ast.NewTable(q.TableID)

	stmt.Where = ast.NewWhereClause()
	for _, clause := range q.WhereClauses {
		stmt.Where.Add(ast.NewRaw(clause), "AND")
	}

	stmt.OrderBy = ast.OrderByPosition(1)

	v := visitor.NewSQLVisitor(b.dialect, b.cache)
	defer v.Release()

	return v.Build(stmt)
}

var defaultBuilder = NewBuilder(WithCache(cache.NewNoopQueryCache()))

// BuildQuery builds the snapshot SELECT for tableID. uniqueKeyColumns must
// not be empty; an empty columns selects every column and no where clauses
// selects every row. It keeps no state between calls; use a Builder to cache
// rendered statements.
func BuildQuery(tableID string, uniqueKeyColumns, columns []string, whereClauses ...string) (string, error) {
	return defaultBuilder.Build(SnapshotQuery{
		TableID:          tableID,
		UniqueKeyColumns: uniqueKeyColumns,
		Columns:          columns,
		WhereClauses:     whereClauses,
	})
}
