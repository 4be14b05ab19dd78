package dialect

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// renderValue holds the literal rules shared by the ANSI-style dialects.
// quote renders string contents between single quotes.
func renderValue(v any, quote func(string) string) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return quote(val)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", val)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", val)
	case float32, float64:
		return strconv.FormatFloat(reflect.ValueOf(val).Float(), 'f', -1, 64)
	case time.Time:
		return quote(val.Format("2006-01-02 15:04:05.000000"))
	default:
		return quote(fmt.Sprint(val))
	}
}

func doubledQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
