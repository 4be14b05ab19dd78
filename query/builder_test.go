package query

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Konsultn-Engineering/datagit/cache"
	"github.com/Konsultn-Engineering/datagit/dialect"
)

var (
	testUniqueKey = []string{"period", "organisation_id"}
	testColumns   = []string{"col1", "col2"}
	testWhere     = []string{"col1 > 0", "col2 < 10"}
)

func TestBuildQuery(t *testing.T) {
	expected := `
		SELECT
		  CONCAT(period, '__', organisation_id) AS unique_key,
		  col1, col2
		FROM my_table
		WHERE col1 > 0 AND col2 < 10
		ORDER BY 1
	`

	got, err := BuildQuery("my_table", testUniqueKey, testColumns, testWhere...)
	require.NoError(t, err)
	assert.Equal(t, Normalize(expected), Normalize(got))
}

func TestBuildQueryNoColumns(t *testing.T) {
	expected := `
		SELECT
		  CONCAT(period, '__', organisation_id) AS unique_key,
		  *
		FROM my_table
		WHERE col1 > 0 AND col2 < 10
		ORDER BY 1
	`

	got, err := BuildQuery("my_table", testUniqueKey, nil, testWhere...)
	require.NoError(t, err)
	assert.Equal(t, Normalize(expected), Normalize(got))

	got, err = BuildQuery("my_table", testUniqueKey, []string{}, testWhere...)
	require.NoError(t, err)
	assert.Equal(t, Normalize(expected), Normalize(got))
}

func TestBuildQueryNoWhereClauses(t *testing.T) {
	expected := `
		SELECT
		  CONCAT(period, '__', organisation_id) AS unique_key,
		  col1, col2
		FROM my_table
		WHERE TRUE
		ORDER BY 1
	`

	got, err := BuildQuery("my_table", testUniqueKey, testColumns)
	require.NoError(t, err)
	assert.Equal(t, Normalize(expected), Normalize(got))
}

func TestBuildQueryEmptyUniqueKeyColumns(t *testing.T) {
	for _, keys := range [][]string{nil, {}} {
		got, err := BuildQuery("my_table", keys, testColumns, testWhere...)
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Empty(t, got)
	}
}

func TestBuildQueryConcatArity(t *testing.T) {
	tests := []struct {
		keys     []string
		expected string
	}{
		{[]string{"id"}, "CONCAT(id) AS unique_key"},
		{[]string{"a", "b"}, "CONCAT(a, '__', b) AS unique_key"},
		{[]string{"c", "a", "b"}, "CONCAT(c, '__', a, '__', b) AS unique_key"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.keys, ","), func(t *testing.T) {
			got, err := BuildQuery("t", tt.keys, nil)
			require.NoError(t, err)
			assert.Equal(t, "SELECT "+tt.expected+", * FROM t WHERE TRUE ORDER BY 1", got)
			assert.Equal(t, 1, strings.Count(got, "CONCAT("))
			assert.Equal(t, len(tt.keys)-1, strings.Count(got, "'__'"))
		})
	}
}

func TestBuildQueryVerbatimFragments(t *testing.T) {
	got, err := BuildQuery(
		"`project.dataset.orders`",
		[]string{"CAST(day AS STRING)"},
		[]string{"amount * 2 AS doubled"},
		"status = 'paid' OR refunded",
		"x IN (1, 2)",
	)
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT CONCAT(CAST(day AS STRING)) AS unique_key, amount * 2 AS doubled "+
			"FROM `project.dataset.orders` WHERE status = 'paid' OR refunded AND x IN (1, 2) ORDER BY 1",
		got)
}

func TestBuildQueryEndsWithOrderBy(t *testing.T) {
	got, err := BuildQuery("t", []string{"k"}, []string{"v"}, "v IS NOT NULL")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(got, "ORDER BY 1"))
}

func TestBuildQueryKeepsNoState(t *testing.T) {
	for i := 0; i < 3; i++ {
		_, err := BuildQuery("my_table", testUniqueKey, testColumns, testWhere...)
		require.NoError(t, err)
	}
	assert.Equal(t, 0, defaultBuilder.cache.Len())
}

func TestNewBuilderCachesByDefault(t *testing.T) {
	b := NewBuilder()
	_, err := b.Build(SnapshotQuery{TableID: "t", UniqueKeyColumns: testUniqueKey})
	require.NoError(t, err)
	assert.Equal(t, 1, b.cache.Len())
}

func TestBuilderWithOptions(t *testing.T) {
	qc := cache.NewQueryCache(4)
	b := NewBuilder(WithDialect(dialect.NewMySQLDialect()), WithCache(qc))
	assert.Equal(t, "mysql", b.Dialect().Name())

	q := SnapshotQuery{TableID: "t", UniqueKeyColumns: testUniqueKey, Columns: testColumns}
	first, err := b.Build(q)
	require.NoError(t, err)
	second, err := b.Build(q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, qc.Len())
}

func TestBuilderNilOptionsKeepDefaults(t *testing.T) {
	b := NewBuilder(WithDialect(nil), WithCache(nil))
	assert.Equal(t, "postgres", b.Dialect().Name())
}

func TestBuilderConcurrentUse(t *testing.T) {
	b := NewBuilder()
	want, err := b.Build(SnapshotQuery{TableID: "t", UniqueKeyColumns: testUniqueKey, WhereClauses: testWhere})
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := b.Build(SnapshotQuery{TableID: "t", UniqueKeyColumns: testUniqueKey, WhereClauses: testWhere})
			if err != nil || got != want {
				errs <- got
			}
		}()
	}
	wg.Wait()
	close(errs)

	assert.Empty(t, errs)
}

func TestSnapshotQueryValidate(t *testing.T) {
	assert.NoError(t, SnapshotQuery{UniqueKeyColumns: []string{"id"}}.Validate())
	assert.ErrorIs(t, SnapshotQuery{TableID: "t"}.Validate(), ErrInvalidArgument)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "SELECT * FROM t", Normalize("\n\t SELECT   *\n  FROM t \n"))
	assert.Equal(t, "", Normalize(" \n\t "))
}

func BenchmarkBuildQuery(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = BuildQuery("my_table", testUniqueKey, testColumns, testWhere...)
	}
	b.ReportAllocs()
}

func BenchmarkBuildQueryUncached(b *testing.B) {
	builder := NewBuilder(WithCache(cache.NewNoopQueryCache()))
	q := SnapshotQuery{TableID: "my_table", UniqueKeyColumns: testUniqueKey, Columns: testColumns, WhereClauses: testWhere}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = builder.Build(q)
	}
	b.ReportAllocs()
}
