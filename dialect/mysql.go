package dialect

import (
	"fmt"
	"strings"
)

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return &MySQL{}
}

func (MySQL) Name() string { return "mysql" }

func (MySQL) Placeholder(int) string {
	return "?"
}

var mysqlEscaper = strings.NewReplacer(`\`, `\\`, `'`, `''`)

// RenderValue escapes backslashes as well, since MySQL treats them as
// escape characters inside string literals by default.
func (MySQL) RenderValue(v any) string {
	if b, ok := v.([]byte); ok {
		return fmt.Sprintf("X'%x'", b)
	}
	return renderValue(v, func(s string) string {
		return "'" + mysqlEscaper.Replace(s) + "'"
	})
}
