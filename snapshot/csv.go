package snapshot

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Konsultn-Engineering/datagit/query"
)

// WriteCSV writes a header of unique_key plus the snapshot columns, then
// one record per row.
func (s *Snapshot) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(s.Columns)+1)
	header = append(header, query.UniqueKeyAlias)
	header = append(header, s.Columns...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(header))
	for _, r := range s.Rows {
		if len(r.Values) != len(s.Columns) {
			return fmt.Errorf("row %q has %d values, want %d", r.Key, len(r.Values), len(s.Columns))
		}
		record[0] = r.Key
		copy(record[1:], r.Values)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %q: %w", r.Key, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a file produced by WriteCSV. The result carries no ID or
// timestamp; those belong to the fetch, not the file.
func ReadCSV(r io.Reader, table string) (*Snapshot, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: empty snapshot file: %w", table, ErrMissingUniqueKey)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", table, err)
	}
	if !strings.EqualFold(header[0], query.UniqueKeyAlias) {
		return nil, fmt.Errorf("%s: %w", table, ErrMissingUniqueKey)
	}

	snap := &Snapshot{Table: table, Columns: header[1:]}
	seen := make(map[string]struct{})

	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", table, err)
		}

		row := Row{Key: record[0], Values: record[1:]}
		if _, dup := seen[row.Key]; dup {
			return nil, fmt.Errorf("%s: %w: %q", table, ErrDuplicateKey, row.Key)
		}
		seen[row.Key] = struct{}{}
		snap.Rows = append(snap.Rows, row)
	}

	return snap, nil
}
