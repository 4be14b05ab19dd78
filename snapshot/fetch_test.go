package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/datagit/database"
	"github.com/Konsultn-Engineering/datagit/query"
)

const testSQL = "SELECT CONCAT(period, '__', organisation_id) AS unique_key, col1, col2 FROM my_table WHERE col1 > 0 ORDER BY 1"

var testQuery = query.SnapshotQuery{
	TableID:          "my_table",
	UniqueKeyColumns: []string{"period", "organisation_id"},
	Columns:          []string{"col1", "col2"},
	WhereClauses:     []string{"col1 > 0"},
}

func newMockFetcher(t *testing.T) (*Fetcher, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clock := func() time.Time { return time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC) }
	return NewFetcher(database.NewSqlDatabase(db), WithClock(clock)), mock
}

func TestFetch(t *testing.T) {
	f, mock := newMockFetcher(t)

	mock.ExpectQuery(testSQL).WillReturnRows(
		sqlmock.NewRows([]string{"unique_key", "col1", "col2"}).
			AddRow("2023-02__org2", int64(5), nil).
			AddRow("2023-01__org1", int64(1), "x"),
	)

	snap, err := f.Fetch(context.Background(), testQuery)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "my_table", snap.Table)
	assert.Equal(t, []string{"col1", "col2"}, snap.Columns)
	assert.Equal(t, []Row{
		{Key: "2023-01__org1", Values: []string{"1", "x"}},
		{Key: "2023-02__org2", Values: []string{"5", ""}},
	}, snap.Rows)
	assert.Equal(t, time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC), snap.TakenAt)
	assert.Equal(t, uint64(snap.TakenAt.UnixMilli()), snap.ID.Time())
}

func TestFetchInvalidQuery(t *testing.T) {
	f, _ := newMockFetcher(t)

	_, err := f.Fetch(context.Background(), query.SnapshotQuery{TableID: "my_table"})
	assert.ErrorIs(t, err, query.ErrInvalidArgument)
}

func TestFetchDuplicateKey(t *testing.T) {
	f, mock := newMockFetcher(t)

	mock.ExpectQuery(testSQL).WillReturnRows(
		sqlmock.NewRows([]string{"unique_key", "col1", "col2"}).
			AddRow("k", "1", "2").
			AddRow("k", "3", "4"),
	)

	_, err := f.Fetch(context.Background(), testQuery)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestFetchMissingUniqueKey(t *testing.T) {
	f, mock := newMockFetcher(t)

	mock.ExpectQuery(testSQL).WillReturnRows(sqlmock.NewRows([]string{"col1", "col2"}))

	_, err := f.Fetch(context.Background(), testQuery)
	assert.ErrorIs(t, err, ErrMissingUniqueKey)
}

func TestFetchQueryError(t *testing.T) {
	f, mock := newMockFetcher(t)

	mock.ExpectQuery(testSQL).WillReturnError(errors.New("connection refused"))

	_, err := f.Fetch(context.Background(), testQuery)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch my_table: query: connection refused")
}

func TestFetchRowError(t *testing.T) {
	f, mock := newMockFetcher(t)

	mock.ExpectQuery(testSQL).WillReturnRows(
		sqlmock.NewRows([]string{"unique_key", "col1", "col2"}).
			AddRow("a", "1", "2").
			RowError(0, errors.New("stream reset")),
	)

	_, err := f.Fetch(context.Background(), testQuery)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream reset")
}

type numeric struct{ s string }

func (n numeric) Value() (any, error) { return n.s, nil }

func TestStringify(t *testing.T) {
	ts := time.Date(2023, 1, 2, 3, 4, 5, 0, time.FixedZone("CET", 3600))

	assert.Equal(t, "", stringify(nil))
	assert.Equal(t, "abc", stringify("abc"))
	assert.Equal(t, "abc", stringify([]byte("abc")))
	assert.Equal(t, "42", stringify(int64(42)))
	assert.Equal(t, "1.5", stringify(1.5))
	assert.Equal(t, "true", stringify(true))
	assert.Equal(t, "2023-01-02T02:04:05Z", stringify(ts))
	assert.Equal(t, "12.30", stringify(numeric{s: "12.30"}))
}
