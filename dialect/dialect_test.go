package dialect

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderValue(t *testing.T) {
	ts := time.Date(2023, 4, 1, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dialect  Dialect
		value    any
		expected string
	}{
		{"pg separator", NewPostgresDialect(), "__", "'__'"},
		{"pg true", NewPostgresDialect(), true, "TRUE"},
		{"pg false", NewPostgresDialect(), false, "FALSE"},
		{"pg nil", NewPostgresDialect(), nil, "NULL"},
		{"pg int", NewPostgresDialect(), 42, "42"},
		{"pg uint", NewPostgresDialect(), uint8(7), "7"},
		{"pg float", NewPostgresDialect(), 1.5, "1.5"},
		{"pg quote", NewPostgresDialect(), "o'neil", "'o''neil'"},
		{"pg backslash kept", NewPostgresDialect(), `a\b`, `'a\b'`},
		{"pg time", NewPostgresDialect(), ts, "'2023-04-01 12:30:00.000000'"},
		{"pg bytes", NewPostgresDialect(), []byte{0xde, 0xad}, `'\xdead'`},
		{"mysql separator", NewMySQLDialect(), "__", "'__'"},
		{"mysql true", NewMySQLDialect(), true, "TRUE"},
		{"mysql backslash", NewMySQLDialect(), `a\b`, `'a\\b'`},
		{"mysql quote", NewMySQLDialect(), "o'neil", "'o''neil'"},
		{"mysql bytes", NewMySQLDialect(), []byte{0xbe, 0xef}, "X'beef'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.dialect.RenderValue(tt.value))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "$3", NewPostgresDialect().Placeholder(3))
	assert.Equal(t, "?", NewMySQLDialect().Placeholder(3))
}

func TestName(t *testing.T) {
	assert.Equal(t, "postgres", NewPostgresDialect().Name())
	assert.Equal(t, "mysql", NewMySQLDialect().Name())
}
