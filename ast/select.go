package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/datagit/utils"
)

type SelectStmt struct {
	Columns []Node
	From    *Table
	Where   *WhereClause
	OrderBy *OrderByClause
}

func NewSelectStmt() *SelectStmt {
	s := selectStmtPool.Get().(*SelectStmt)
	s.Columns = s.Columns[:0]
	s.From = nil
	s.Where = nil
	s.OrderBy = nil
	return s
}

func (s *SelectStmt) Type() NodeType         { return NodeSelect }
func (s *SelectStmt) Accept(v Visitor) error { return v.VisitSelect(s) }
func (s *SelectStmt) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("select:"))
	_, _ = h.Write(utils.U64ToBytes(uint64(len(s.Columns))))
	for _, col := range s.Columns {
		_, _ = h.Write(utils.U64ToBytes(col.Fingerprint()))
	}
	if s.From != nil {
		_, _ = h.Write(utils.U64ToBytes(s.From.Fingerprint()))
	}
	_, _ = h.Write([]byte("where:"))
	if s.Where != nil {
		_, _ = h.Write(utils.U64ToBytes(s.Where.Fingerprint()))
	}
	_, _ = h.Write([]byte("order:"))
	if s.OrderBy != nil {
		_, _ = h.Write(utils.U64ToBytes(s.OrderBy.Fingerprint()))
	}
	return h.Sum64()
}

// AddColumn appends an expression to the target list.
func (s *SelectStmt) AddColumn(n Node) {
	s.Columns = append(s.Columns, n)
}

// AddWhereCondition appends cond to the WHERE chain. op joins cond to the
// condition before it and is ignored for the first one.
func (s *SelectStmt) AddWhereCondition(cond Node, op string) {
	if s.Where == nil {
		s.Where = NewWhereClause()
	}
	s.Where.Add(cond, op)
}

// AddOrderBy appends an ORDER BY term.
func (s *SelectStmt) AddOrderBy(expr Node, desc bool) {
	clause := NewOrderByClause(expr, desc)
	if s.OrderBy == nil {
		s.OrderBy = clause
		return
	}
	last := s.OrderBy
	for last.Next != nil {
		last = last.Next
	}
	last.Next = clause
}

// Release returns the statement and every node it owns to their pools.
func (s *SelectStmt) Release() {
	for _, col := range s.Columns {
		releaseNode(col)
	}
	s.Columns = s.Columns[:0]
	if s.From != nil {
		s.From.Release()
		s.From = nil
	}
	if s.Where != nil {
		s.Where.Release()
		s.Where = nil
	}
	if s.OrderBy != nil {
		s.OrderBy.Release()
		s.OrderBy = nil
	}
	selectStmtPool.Put(s)
}
