package ast

type Visitor interface {
	VisitSelect(*SelectStmt) error

	VisitColumn(*Column) error
	VisitStar(*Star) error
	VisitTable(*Table) error
	VisitValue(*Value) error
	VisitFunction(*Function) error
	VisitRaw(*Raw) error
	VisitOrdinal(*Ordinal) error

	VisitWhereClause(*WhereClause) error
	VisitOrderByClause(*OrderByClause) error
	Build(root Node) (string, error)
	Release()
}
