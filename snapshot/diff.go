package snapshot

import (
	"slices"
)

// Drift lists the unique keys that differ between two snapshots.
type Drift struct {
	Added          []string
	Removed        []string
	Modified       []string
	ColumnsChanged bool
}

func (d Drift) HasDrift() bool {
	return d.ColumnsChanged || len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Modified) > 0
}

// Diff compares prev to next. Rows are matched by key and compared on the
// columns both snapshots share, so reordering columns is not drift. A nil
// snapshot counts as an empty one.
func Diff(prev, next *Snapshot) Drift {
	var d Drift
	if prev == nil {
		prev = &Snapshot{}
	}
	if next == nil {
		next = &Snapshot{}
	}

	shared := sharedColumns(prev.Columns, next.Columns)
	d.ColumnsChanged = len(shared) != len(prev.Columns) || len(shared) != len(next.Columns)

	prevIdx := prev.Index()
	nextIdx := next.Index()

	for key, nr := range nextIdx {
		pr, ok := prevIdx[key]
		if !ok {
			d.Added = append(d.Added, key)
			continue
		}
		pRec, nRec := prev.Record(pr), next.Record(nr)
		for _, col := range shared {
			if pRec[col] != nRec[col] {
				d.Modified = append(d.Modified, key)
				break
			}
		}
	}
	for key := range prevIdx {
		if _, ok := nextIdx[key]; !ok {
			d.Removed = append(d.Removed, key)
		}
	}

	slices.Sort(d.Added)
	slices.Sort(d.Removed)
	slices.Sort(d.Modified)
	return d
}

func sharedColumns(a, b []string) []string {
	var shared []string
	for _, col := range a {
		if slices.Contains(b, col) {
			shared = append(shared, col)
		}
	}
	return shared
}
