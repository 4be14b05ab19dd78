package dialect

// Dialect decides how literals and bind placeholders are written. Names
// and predicate fragments are never touched by a dialect.
type Dialect interface {
	Name() string
	Placeholder(n int) string
	RenderValue(v any) string
}
