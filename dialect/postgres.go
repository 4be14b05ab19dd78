package dialect

import (
	"fmt"
	"strconv"
)

type Postgres struct{}

func NewPostgresDialect() Dialect {
	return &Postgres{}
}

func (Postgres) Name() string { return "postgres" }

func (Postgres) Placeholder(n int) string {
	return "$" + strconv.Itoa(n)
}

func (Postgres) RenderValue(v any) string {
	if b, ok := v.([]byte); ok {
		return fmt.Sprintf("'\\x%x'", b) // hex bytea literal
	}
	return renderValue(v, doubledQuote)
}
