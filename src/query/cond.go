package query

// Separator keywords for chained condition entries.
const (
	SepAnd = "AND"
	SepOr  = "OR"
)

// Cond is one entry of a WHERE, HAVING, or join condition chain. The
// first entry of a chain carries an empty separator; every later entry
// carries "AND" or "OR". Builders enforce this; the compiler assumes it
// and renders whatever separator is stored.
//
// Each concrete type is dispatched to its own renderer by the compiler's
// type switch, so an unknown Cond implementation fails compilation.
type Cond interface {
	Separator() string
}

// Compare is "column <op> value". Value may be a scalar or time.Time
// (bound as a parameter), a Col (rendered as a wrapped identifier, for
// column-vs-column comparison), or a *Tree (rendered recursively).
type Compare struct {
	Sep    string
	Column string
	Op     string
	Value  any
}

// In is "column IN (...)" or "column NOT IN (...)", against either a
// literal value list or a pre-rendered subquery. Exactly one of Values
// and Subquery is set.
type In struct {
	Sep      string
	Column   string
	Values   []any
	Subquery *Subquery
	Not      bool
}

// Between is "column BETWEEN low AND high", optionally negated.
type Between struct {
	Sep    string
	Column string
	Low    any
	High   any
	Not    bool
}

// Like is "column LIKE pattern", optionally negated. The pattern is
// bound as a parameter.
type Like struct {
	Sep     string
	Column  string
	Pattern any
	Not     bool
}

// Null is "column IS NULL" or "column IS NOT NULL".
type Null struct {
	Sep    string
	Column string
	Not    bool
}

// ExistsCond is "EXISTS (subquery)", optionally negated.
type ExistsCond struct {
	Sep      string
	Subquery Subquery
	Not      bool
}

// SubqueryCompare is "column <op> (subquery)" with an explicit operator.
type SubqueryCompare struct {
	Sep      string
	Column   string
	Op       string
	Subquery Subquery
}

// Nested is a parenthesized inner condition chain. This is how boolean
// grouping composes: the inner chain renders without a WHERE prefix,
// wrapped in parentheses.
type Nested struct {
	Sep   string
	Conds []Cond
}

// TreeCond renders an arbitrary expression tree as a condition entry.
// Join ON chains are typically built from these.
type TreeCond struct {
	Sep  string
	Tree *Tree
}

func (c Compare) Separator() string         { return c.Sep }
func (c In) Separator() string              { return c.Sep }
func (c Between) Separator() string         { return c.Sep }
func (c Like) Separator() string            { return c.Sep }
func (c Null) Separator() string            { return c.Sep }
func (c ExistsCond) Separator() string      { return c.Sep }
func (c SubqueryCompare) Separator() string { return c.Sep }
func (c Nested) Separator() string          { return c.Sep }
func (c TreeCond) Separator() string        { return c.Sep }
