package ast

import (
	"sync"
)

var (
	selectStmtPool = sync.Pool{
		New: func() any {
			return &SelectStmt{
				Columns: make([]Node, 0, 16),
			}
		},
	}

	columnPool = sync.Pool{
		New: func() any { return &Column{} },
	}

	tablePool = sync.Pool{
		New: func() any { return &Table{} },
	}

	valuePool = sync.Pool{
		New: func() any { return &Value{} },
	}

	rawPool = sync.Pool{
		New: func() any { return &Raw{} },
	}

	functionPool = sync.Pool{
		New: func() any {
			return &Function{
				Args: make([]Node, 0, 8),
			}
		},
	}

	whereClausePool = sync.Pool{
		New: func() any { return &WhereClause{} },
	}

	whereConditionPool = sync.Pool{
		New: func() any { return &WhereCondition{} },
	}

	orderByClausePool = sync.Pool{
		New: func() any {
			return &OrderByClause{}
		},
	}
)
