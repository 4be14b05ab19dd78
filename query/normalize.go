package query

import "strings"

// Normalize collapses every whitespace run to one space and trims the ends.
// Two queries are considered equal when their normalized forms match.
func Normalize(sql string) string {
	return strings.Join(strings.Fields(sql), " ")
}
