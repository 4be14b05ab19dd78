package ast

import (
	"hash/fnv"

	"github.com/Konsultn-Engineering/datagit/utils"
)

// WhereClause is a singly linked chain of conditions. A clause without
// conditions renders as the always-true predicate.
type WhereClause struct {
	First *WhereCondition
	last  *WhereCondition
}

type WhereCondition struct {
	Condition Node
	Operator  string // joins this condition to the previous one
	Next      *WhereCondition
}

func NewWhereClause() *WhereClause {
	w := whereClausePool.Get().(*WhereClause)
	w.First = nil
	w.last = nil
	return w
}

func (w *WhereClause) Add(cond Node, op string) {
	c := whereConditionPool.Get().(*WhereCondition)
	c.Condition = cond
	c.Operator = op
	c.Next = nil
	if w.First == nil {
		w.First = c
		w.last = c
		return
	}
	if w.last == nil {
		w.last = w.First
		for w.last.Next != nil {
			w.last = w.last.Next
		}
	}
	w.last.Next = c
	w.last = c
}

func (w *WhereClause) Empty() bool { return w == nil || w.First == nil }

func (w *WhereClause) Type() NodeType         { return NodeWhere }
func (w *WhereClause) Accept(v Visitor) error { return v.VisitWhereClause(w) }
func (w *WhereClause) Fingerprint() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte("where:"))
	for c := w.First; c != nil; c = c.Next {
		_, _ = h.Write(utils.U64ToBytes(utils.FingerprintStrings("op:", c.Operator)))
		if c.Condition != nil {
			_, _ = h.Write(utils.U64ToBytes(c.Condition.Fingerprint()))
		}
	}
	return h.Sum64()
}

func (w *WhereClause) Release() {
	c := w.First
	for c != nil {
		next := c.Next
		if c.Condition != nil {
			releaseNode(c.Condition)
		}
		c.Condition = nil
		c.Operator = ""
		c.Next = nil
		whereConditionPool.Put(c)
		c = next
	}
	w.First = nil
	w.last = nil
	whereClausePool.Put(w)
}
