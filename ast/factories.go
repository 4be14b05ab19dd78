package ast

// Columns builds one Column node per name, in order.
func Columns(names ...string) []Node {
	nodes := make([]Node, len(names))
	for i, name := range names {
		nodes[i] = NewColumn(name, "")
	}
	return nodes
}

func AllColumns() *Star {
	return &Star{}
}

// Interleave returns nodes with sep() placed between each pair. sep is
// called once per gap so every separator is its own node.
func Interleave(nodes []Node, sep func() Node) []Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]Node, 0, 2*len(nodes)-1)
	for i, n := range nodes {
		if i > 0 {
			out = append(out, sep())
		}
		out = append(out, n)
	}
	return out
}

func OrderByPosition(position int) *OrderByClause {
	return NewOrderByClause(&Ordinal{Position: position}, false)
}
