package snapshot

import (
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	ErrDuplicateKey     = errors.New("duplicate unique key")
	ErrMissingUniqueKey = errors.New("result has no unique_key column")
)

// Snapshot is the state of one table at one point in time, keyed by the
// synthetic unique key.
type Snapshot struct {
	ID      ulid.ULID
	Table   string
	TakenAt time.Time
	Columns []string // result columns after unique_key
	Rows    []Row
}

type Row struct {
	Key    string
	Values []string
}

// Index maps each unique key to its row.
func (s *Snapshot) Index() map[string]Row {
	idx := make(map[string]Row, len(s.Rows))
	for _, r := range s.Rows {
		idx[r.Key] = r
	}
	return idx
}

// Record returns the row's values keyed by column name.
func (s *Snapshot) Record(r Row) map[string]string {
	rec := make(map[string]string, len(s.Columns))
	for i, col := range s.Columns {
		if i < len(r.Values) {
			rec[col] = r.Values[i]
		}
	}
	return rec
}
