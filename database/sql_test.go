package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSqlDatabaseQuery(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectQuery("SELECT id, name FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(1, "ada").
			AddRow(2, "grace"))

	sdb := NewSqlDatabase(db)
	rows, err := sdb.QueryContext(context.Background(), "SELECT id, name FROM users")
	require.NoError(t, err)

	cols, err := rows.Columns()
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, cols)

	var names []string
	for rows.Next() {
		var id int
		var name string
		require.NoError(t, rows.Scan(&id, &name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"ada", "grace"}, names)
	require.NoError(t, rows.Close())

	mock.ExpectClose()
	require.NoError(t, sdb.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSqlDatabaseQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck // sqlmock db close error is inconsequential in tests.

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))

	_, err = NewSqlDatabase(db).Query("SELECT 1")
	assert.EqualError(t, err, "connection refused")
}

func TestSqlDatabasePing(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close() //nolint:errcheck // sqlmock db close error is inconsequential in tests.

	mock.ExpectPing()
	assert.NoError(t, NewSqlDatabase(db).PingContext(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
