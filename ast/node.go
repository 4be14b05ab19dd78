package ast

type NodeType int

const (
	NodeSelect NodeType = iota
	NodeColumn
	NodeStar
	NodeTable
	NodeValue
	NodeFunction
	NodeRaw
	NodeWhere
	NodeOrderBy
	NodeOrdinal
)

type Node interface {
	Type() NodeType
	Accept(v Visitor) error
	Fingerprint() uint64
}

// releaseNode hands n back to its pool when it has one.
func releaseNode(n Node) {
	if r, ok := n.(interface{ Release() }); ok {
		r.Release()
	}
}
