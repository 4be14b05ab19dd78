package ast

import (
	"hash/fnv"
	"strconv"

	"github.com/Konsultn-Engineering/datagit/utils"
)

type OrderByClause struct {
	Expr Node
	Desc bool
	Next *OrderByClause
}

func NewOrderByClause(expr Node, desc bool) *OrderByClause {
	clause := orderByClausePool.Get().(*OrderByClause)
	clause.Expr = expr
	clause.Desc = desc
	clause.Next = nil
	return clause
}

func (o *OrderByClause) Type() NodeType         { return NodeOrderBy }
func (o *OrderByClause) Accept(v Visitor) error { return v.VisitOrderByClause(o) }
func (o *OrderByClause) Fingerprint() uint64 {
	h := fnv.New64a()
	for c := o; c != nil; c = c.Next {
		_, _ = h.Write([]byte("order:"))
		if c.Expr != nil {
			_, _ = h.Write(utils.U64ToBytes(c.Expr.Fingerprint()))
		}
		if c.Desc {
			_, _ = h.Write([]byte("desc"))
		}
	}
	return h.Sum64()
}

func (o *OrderByClause) Release() {
	if o.Expr != nil {
		releaseNode(o.Expr)
	}

	// Release the entire chain
	if o.Next != nil {
		o.Next.Release()
	}

	o.Expr = nil
	o.Desc = false
	o.Next = nil
	orderByClausePool.Put(o)
}

// Ordinal refers to a select-list entry by its 1-based position.
type Ordinal struct {
	Position int
}

func (o *Ordinal) Type() NodeType         { return NodeOrdinal }
func (o *Ordinal) Accept(v Visitor) error { return v.VisitOrdinal(o) }
func (o *Ordinal) Fingerprint() uint64 {
	return utils.FingerprintStrings("ordinal:", strconv.Itoa(o.Position))
}
