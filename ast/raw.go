package ast

import "github.com/Konsultn-Engineering/datagit/utils"

// Raw is a SQL fragment written out exactly as given.
type Raw struct {
	SQL string
}

func NewRaw(sql string) *Raw {
	r := rawPool.Get().(*Raw)
	r.SQL = sql
	return r
}

func (r *Raw) Type() NodeType         { return NodeRaw }
func (r *Raw) Accept(v Visitor) error { return v.VisitRaw(r) }
func (r *Raw) Fingerprint() uint64 {
	return utils.FingerprintStrings("raw:", r.SQL)
}

func (r *Raw) Release() {
	r.SQL = ""
	rawPool.Put(r)
}
