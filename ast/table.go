package ast

import "github.com/Konsultn-Engineering/datagit/utils"

// Table holds an identifier such as "project.dataset.table"; it is
// rendered verbatim.
type Table struct {
	Name string
}

func NewTable(name string) *Table {
	t := tablePool.Get().(*Table)
	t.Name = name
	return t
}

func (t *Table) Type() NodeType         { return NodeTable }
func (t *Table) Accept(v Visitor) error { return v.VisitTable(t) }
func (t *Table) Fingerprint() uint64 {
	return utils.FingerprintStrings("table:", t.Name)
}

func (t *Table) Release() {
	t.Name = ""
	tablePool.Put(t)
}
