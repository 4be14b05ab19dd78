package query

import "fmt"

// SnapshotQuery describes the rows to pull for one table snapshot. Every
// string is copied into the generated SQL verbatim.
type SnapshotQuery struct {
	TableID          string   `json:"table" yaml:"table"`
	UniqueKeyColumns []string `json:"unique_key_columns" yaml:"unique_key_columns"`
	Columns          []string `json:"columns,omitempty" yaml:"columns,omitempty"`
	WhereClauses     []string `json:"where,omitempty" yaml:"where,omitempty"`
}

// Validate reports whether q can be turned into SQL. The only requirement
// is at least one unique key column.
func (q SnapshotQuery) Validate() error {
	if len(q.UniqueKeyColumns) == 0 {
		return fmt.Errorf("%w: unique key columns must not be empty", ErrInvalidArgument)
	}
	return nil
}
