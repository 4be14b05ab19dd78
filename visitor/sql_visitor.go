package visitor

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/Konsultn-Engineering/datagit/ast"
	"github.com/Konsultn-Engineering/datagit/cache"
	"github.com/Konsultn-Engineering/datagit/dialect"
	"github.com/Konsultn-Engineering/datagit/utils"
)

var (
	ErrNoColumns = errors.New("select list is empty")
	ErrNoTable   = errors.New("select has no FROM table")
)

var visitorPool = sync.Pool{
	New: func() any {
		return &SQLVisitor{}
	},
}

// SQLVisitor renders an AST into a SQL string. A visitor is not safe for
// concurrent use; take one per goroutine from NewSQLVisitor.
type SQLVisitor struct {
	sb      strings.Builder
	dialect dialect.Dialect
	qcache  cache.QueryCache
}

var _ ast.Visitor = (*SQLVisitor)(nil)

func NewSQLVisitor(d dialect.Dialect, q cache.QueryCache) *SQLVisitor {
	v := visitorPool.Get().(*SQLVisitor)
	if d == nil {
		d = dialect.NewPostgresDialect()
	}
	if q == nil {
		q = cache.NewNoopQueryCache()
	}
	v.dialect = d
	v.qcache = q
	v.sb.Reset()
	return v
}

func (v *SQLVisitor) GetSB() *strings.Builder {
	return &v.sb
}

func (v *SQLVisitor) Release() {
	v.dialect = nil
	v.qcache = nil
	v.sb.Reset()
	visitorPool.Put(v)
}

func (v *SQLVisitor) Reset() {
	v.sb.Reset()
}

// Build renders root, serving repeated shapes from the query cache.
func (v *SQLVisitor) Build(root ast.Node) (string, error) {
	fp := utils.Mix64(root.Fingerprint(), utils.FingerprintString(v.dialect.Name()))

	if cached, ok := v.qcache.Get(fp); ok && cached != nil && cached.Dialect == v.dialect.Name() {
		return cached.SQL, nil
	}

	v.sb.Reset()
	if err := root.Accept(v); err != nil {
		return "", err
	}

	sql := v.sb.String()
	v.qcache.Set(fp, &cache.CachedQuery{SQL: sql, Dialect: v.dialect.Name()})
	return sql, nil
}

func (v *SQLVisitor) VisitSelect(s *ast.SelectStmt) error {
	//	SELECT column_list
	//	FROM table_name
	//	[WHERE condition]
	//	[ORDER BY column_list]
	if len(s.Columns) == 0 {
		return ErrNoColumns
	}
	if s.From == nil {
		return ErrNoTable
	}

	v.sb.WriteString("SELECT ")

	for i, col := range s.Columns {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := col.Accept(v); err != nil {
			return err
		}
	}

	if err := s.From.Accept(v); err != nil {
		return err
	}

	if s.Where != nil {
		if err := s.Where.Accept(v); err != nil {
			return err
		}
	}

	if s.OrderBy != nil {
		if err := s.OrderBy.Accept(v); err != nil {
			return err
		}
	}

	return nil
}

func (v *SQLVisitor) VisitColumn(c *ast.Column) error {
	v.sb.WriteString(c.Name)
	v.writeAlias(c.Alias, c.Name)
	return nil
}

func (v *SQLVisitor) VisitStar(*ast.Star) error {
	v.sb.WriteByte('*')
	return nil
}

func (v *SQLVisitor) VisitTable(t *ast.Table) error {
	v.sb.WriteString(" FROM ")
	v.sb.WriteString(t.Name)
	return nil
}

func (v *SQLVisitor) VisitValue(val *ast.Value) error {
	v.sb.WriteString(v.dialect.RenderValue(val.Val))
	return nil
}

func (v *SQLVisitor) VisitFunction(f *ast.Function) error {
	v.sb.WriteString(f.Name)
	v.sb.WriteByte('(')
	for i, arg := range f.Args {
		if i > 0 {
			v.sb.WriteString(", ")
		}
		if err := arg.Accept(v); err != nil {
			return err
		}
	}
	v.sb.WriteByte(')')
	v.writeAlias(f.Alias, "")
	return nil
}

func (v *SQLVisitor) VisitRaw(r *ast.Raw) error {
	v.sb.WriteString(r.SQL)
	return nil
}

func (v *SQLVisitor) VisitOrdinal(o *ast.Ordinal) error {
	v.sb.WriteString(strconv.Itoa(o.Position))
	return nil
}

// VisitWhereClause writes the condition chain. An empty chain still emits
// WHERE with a literal true so the statement shape never changes.
func (v *SQLVisitor) VisitWhereClause(clause *ast.WhereClause) error {
	v.sb.WriteString(" WHERE ")

	if clause.Empty() {
		v.sb.WriteString(v.dialect.RenderValue(true))
		return nil
	}

	for cond := clause.First; cond != nil; cond = cond.Next {
		if cond != clause.First {
			op := cond.Operator
			if op == "" {
				op = "AND"
			}
			v.sb.WriteByte(' ')
			v.sb.WriteString(op)
			v.sb.WriteByte(' ')
		}

		if cond.Condition == nil {
			v.sb.WriteString(v.dialect.RenderValue(true))
			continue
		}
		if err := cond.Condition.Accept(v); err != nil {
			return err
		}
	}

	return nil
}

func (v *SQLVisitor) VisitOrderByClause(clause *ast.OrderByClause) error {
	v.sb.WriteString(" ORDER BY ")

	for c := clause; c != nil; c = c.Next {
		if c != clause {
			v.sb.WriteString(", ")
		}
		if err := c.Expr.Accept(v); err != nil {
			return err
		}
		if c.Desc {
			v.sb.WriteString(" DESC")
		}
	}

	return nil
}

func (v *SQLVisitor) writeAlias(alias, name string) {
	if alias != "" && alias != name {
		v.sb.WriteString(" AS ")
		v.sb.WriteString(alias)
	}
}
