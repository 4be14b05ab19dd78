package snapshot

import (
	"context"
	"database/sql/driver"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/Konsultn-Engineering/datagit/database"
	"github.com/Konsultn-Engineering/datagit/query"
)

// Fetcher runs snapshot queries against a database.
type Fetcher struct {
	db      database.Database
	builder *query.Builder
	logger  zerolog.Logger
	now     func() time.Time
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithBuilder sets the query builder. nil keeps the default.
func WithBuilder(b *query.Builder) Option {
	return func(f *Fetcher) {
		if b != nil {
			f.builder = b
		}
	}
}

// WithLogger sets the logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Fetcher) {
		f.logger = logger
	}
}

// WithClock replaces time.Now for snapshot timestamps and IDs.
func WithClock(now func() time.Time) Option {
	return func(f *Fetcher) {
		if now != nil {
			f.now = now
		}
	}
}

// NewFetcher creates a Fetcher reading from db.
func NewFetcher(db database.Database, opts ...Option) *Fetcher {
	f := &Fetcher{
		db:      db,
		builder: query.NewBuilder(),
		logger:  zerolog.Nop(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With().Str("component", "snapshot_fetcher").Logger()
	return f
}

// Fetch builds the query for q, runs it and collects the rows sorted by
// unique key.
func (f *Fetcher) Fetch(ctx context.Context, q query.SnapshotQuery) (*Snapshot, error) {
	sql, err := f.builder.Build(q)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot query for %s: %w", q.TableID, err)
	}

	start := f.now()
	f.logger.Debug().Str("table", q.TableID).Str("sql", sql).Msg("Fetching snapshot")

	snap := &Snapshot{
		ID:      ulid.MustNew(ulid.Timestamp(start), ulid.DefaultEntropy()),
		Table:   q.TableID,
		TakenAt: start,
	}
	seen := make(map[string]struct{})

	onColumns := func(cols []string) error {
		if len(cols) == 0 || !strings.EqualFold(cols[0], query.UniqueKeyAlias) {
			return ErrMissingUniqueKey
		}
		snap.Columns = slices.Clone(cols[1:])
		return nil
	}
	onRow := func(values []any) error {
		row := Row{Key: stringify(values[0]), Values: make([]string, len(values)-1)}
		for i, v := range values[1:] {
			row.Values[i] = stringify(v)
		}
		if _, dup := seen[row.Key]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateKey, row.Key)
		}
		seen[row.Key] = struct{}{}
		snap.Rows = append(snap.Rows, row)
		return nil
	}

	if err := database.Each(ctx, f.db, sql, onColumns, onRow); err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", q.TableID, err)
	}

	slices.SortFunc(snap.Rows, func(a, b Row) int { return strings.Compare(a.Key, b.Key) })

	f.logger.Info().
		Str("table", q.TableID).
		Str("snapshot_id", snap.ID.String()).
		Int("rows", len(snap.Rows)).
		Dur("elapsed", f.now().Sub(start)).
		Msg("Snapshot fetched")

	return snap, nil
}

// stringify renders a scanned value the way it is stored in CSV. NULL
// becomes the empty string.
func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return val.String()
	case driver.Valuer:
		inner, err := val.Value()
		if err != nil {
			return fmt.Sprint(v)
		}
		return stringify(inner)
	default:
		return fmt.Sprint(val)
	}
}
