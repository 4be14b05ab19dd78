package database

import (
	"context"
	"fmt"
)

// Each runs query and streams the result. onColumns sees the column names
// once, before any row, even when the result is empty. onRow gets the
// scanned values of each row; the slice is reused, so copy what you keep.
// An error from either callback stops iteration and is returned as is.
func Each(ctx context.Context, db Database, query string, onColumns func([]string) error, onRow func([]any) error) error {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close() //nolint:errcheck // read-only rows, close error carries nothing new.

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	if onColumns != nil {
		if err := onColumns(cols); err != nil {
			return err
		}
	}

	values := make([]any, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}

	for rows.Next() {
		clear(values)
		if err := rows.Scan(dest...); err != nil {
			return fmt.Errorf("scan: %w", err)
		}
		if err := onRow(values); err != nil {
			return err
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	return nil
}
