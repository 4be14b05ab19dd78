package ast

import "github.com/Konsultn-Engineering/datagit/utils"

// Column is a select-list entry. Name is written as given, so it may hold
// any expression the caller considers a column.
type Column struct {
	Name  string
	Alias string
}

func NewColumn(name, alias string) *Column {
	c := columnPool.Get().(*Column)
	c.Name = name
	c.Alias = alias
	return c
}

func (c *Column) Type() NodeType { return NodeColumn }

func (c *Column) Accept(v Visitor) error { return v.VisitColumn(c) }

func (c *Column) Fingerprint() uint64 {
	return utils.FingerprintStrings("col:", c.Name, c.Alias)
}

func (c *Column) Release() {
	c.Name = ""
	c.Alias = ""
	columnPool.Put(c)
}

// Star is the "*" wildcard.
type Star struct{}

func (s *Star) Type() NodeType         { return NodeStar }
func (s *Star) Accept(v Visitor) error { return v.VisitStar(s) }
func (s *Star) Fingerprint() uint64    { return utils.FingerprintString("star:*") }
