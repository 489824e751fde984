package query

// Node is one element of an expression tree. A tree is an ordered
// sequence of nodes; rendering is strictly left-to-right with each node
// contributing its tokens in place, so the node order is the token order.
type Node interface {
	node()
}

// Col references a column, optionally qualified as "table.column".
// A bare "*" segment passes through the compiler unquoted.
type Col struct {
	Name string
}

// Op is a raw SQL operator token emitted verbatim. It is never
// parameterized, so it must come from trusted code, not user input.
type Op struct {
	Raw string
}

// Val is a scalar bound as a positional parameter. The compiler emits a
// placeholder and appends the value to the parameter list.
type Val struct {
	Value any
}

// Group is a parenthesized nested tree.
type Group struct {
	Tree *Tree
}

// FuncKind selects which renderer family a Func dispatches to.
type FuncKind string

const (
	AggregateFunc FuncKind = "aggregate"
	ScalarFunc    FuncKind = "scalar"
)

// Func calls a named SQL function. Args are keyed by the argument names
// the renderer for that function expects ("column", "start", "length",
// "decimals", "format", "distinct").
type Func struct {
	Kind FuncKind
	Name string
	Args map[string]any
}

// Subquery is pre-rendered SQL inlined in parentheses. The text is never
// re-parsed or re-parameterized; Params holds the subquery's own bound
// values in its placeholder order, and the compiler appends them to the
// outer parameter list at the point the text is inlined.
type Subquery struct {
	SQL    string
	Params []any
}

func (Col) node()      {}
func (Op) node()       {}
func (Val) node()      {}
func (Group) node()    {}
func (Func) node()     {}
func (Subquery) node() {}

// Tree is an ordered sequence of nodes representing a composable SQL
// fragment: a WHERE predicate, a JOIN condition, a computed column.
type Tree struct {
	nodes []Node
}

// NewTree creates a tree from the given nodes, in order.
func NewTree(nodes ...Node) *Tree {
	return &Tree{nodes: nodes}
}

// Nodes returns the node sequence in order.
func (t *Tree) Nodes() []Node {
	if t == nil {
		return nil
	}
	return t.nodes
}

// Add appends nodes and returns the tree for chaining.
func (t *Tree) Add(nodes ...Node) *Tree {
	t.nodes = append(t.nodes, nodes...)
	return t
}

// RawSubquery wraps already-rendered SQL as a subquery node. params must
// be the subquery's bound values in its own placeholder order.
func RawSubquery(sql string, params ...any) Subquery {
	return Subquery{SQL: sql, Params: params}
}
