package query

// Statement is one of the four statement shapes accepted by the
// compiler. Statements are fully populated by a builder before
// compilation and are read-only from the compiler's side.
type Statement interface {
	stmt()
}

// TableRef references a table, optionally with an alias.
type TableRef struct {
	Name  string
	Alias string
}

// Table creates an unaliased table reference.
func Table(name string) TableRef {
	return TableRef{Name: name}
}

// TableAs creates an aliased table reference.
func TableAs(name, alias string) TableRef {
	return TableRef{Name: name, Alias: alias}
}

// JoinKind is the join keyword emitted before JOIN.
type JoinKind string

const (
	InnerJoin JoinKind = "INNER"
	LeftJoin  JoinKind = "LEFT"
	RightJoin JoinKind = "RIGHT"
	FullJoin  JoinKind = "FULL"
)

// JoinClause is one JOIN: kind, target table(s), and a condition chain
// rendered after ON. Conditions follow the same separator rules as WHERE
// chains: no separator on the first entry, one on every entry after.
type JoinClause struct {
	Kind       JoinKind
	Tables     []TableRef
	Conditions []Cond
}

// SelectColumn is one entry of a SELECT list: either a plain (possibly
// dotted) column name or a computed expression tree, with an optional
// alias. Exactly one of Name and Expr is set.
type SelectColumn struct {
	Name  string
	Expr  *Tree
	Alias string
}

// IntoClause is the SELECT ... INTO target, with an optional external
// database qualifier (INTO table IN db).
type IntoClause struct {
	Table    string
	Database string
}

// OrderClause is one ORDER BY entry: a column list followed by a
// direction keyword.
type OrderClause struct {
	Columns   []string
	Direction string // "ASC" or "DESC"
}

// SetClause is one column = value assignment in an UPDATE.
type SetClause struct {
	Column string
	Value  any
}

// SelectStatement is a SELECT with its clause lists in builder order.
type SelectStatement struct {
	Distinct bool
	Columns  []SelectColumn
	Into     *IntoClause
	Tables   []TableRef
	Joins    []JoinClause
	Wheres   []Cond
	GroupBy  []string
	OrderBy  []OrderClause
	Havings  []Cond
	Limit    *int
	Offset   *int
}

// InsertStatement is an INSERT with ordered columns and value rows.
// Row arity must match the column list; the builder guarantees this,
// the compiler does not re-check it.
type InsertStatement struct {
	Tables  []TableRef
	Columns []string
	Rows    [][]any
}

// UpdateStatement is an UPDATE with ordered SET assignments.
type UpdateStatement struct {
	Tables []TableRef
	Set    []SetClause
	Wheres []Cond
}

// DeleteStatement is a DELETE. Targets qualifies which tables to delete
// from in a multi-table delete; when empty the statement renders as a
// bare DELETE FROM.
type DeleteStatement struct {
	Targets []TableRef
	Tables  []TableRef
	Joins   []JoinClause
	Wheres  []Cond
}

func (*SelectStatement) stmt() {}
func (*InsertStatement) stmt() {}
func (*UpdateStatement) stmt() {}
func (*DeleteStatement) stmt() {}
