package compile

import "github.com/sqlforge/sqlforge/src/query"

// ValueVisitor is called for each bound-value position during a walk,
// in the order the compiler emits placeholders for them. Return false
// to stop walking.
type ValueVisitor func(value any) bool

// WalkValues traverses every value position of a statement in compile
// emission order. Values are visited raw: a time.Time is yielded as-is
// even though the compiler binds its formatted string.
func WalkValues(stmt query.Statement, visit ValueVisitor) {
	walkStatementValues(stmt, &walker{visit: visit})
}

// CollectValues returns a statement's bound values in placeholder
// emission order. Tests use it to cross-check placeholder/parameter
// alignment against compile output.
func CollectValues(stmt query.Statement) []any {
	var values []any
	WalkValues(stmt, func(v any) bool {
		values = append(values, v)
		return true
	})
	return values
}

// HasSubqueries reports whether any condition or tree of the statement
// embeds pre-rendered subquery text.
func HasSubqueries(stmt query.Statement) bool {
	found := false
	w := &walker{
		visit:    func(any) bool { return true },
		subquery: func(query.Subquery) { found = true },
	}
	walkStatementValues(stmt, w)
	return found
}

// walker threads the visitor and an optional subquery hook through the
// traversal, carrying the stop flag.
type walker struct {
	visit    ValueVisitor
	subquery func(query.Subquery)
	stopped  bool
}

func (w *walker) value(v any) {
	if w.stopped {
		return
	}
	switch val := v.(type) {
	case *query.Tree:
		w.tree(val)
	case query.Col:
		// identifier position, nothing bound
	case query.Subquery:
		w.sub(val)
	default:
		if !w.visit(v) {
			w.stopped = true
		}
	}
}

func (w *walker) sub(s query.Subquery) {
	if w.subquery != nil {
		w.subquery(s)
	}
	for _, p := range s.Params {
		if w.stopped {
			return
		}
		if !w.visit(p) {
			w.stopped = true
		}
	}
}

func (w *walker) tree(t *query.Tree) {
	for _, n := range t.Nodes() {
		if w.stopped {
			return
		}
		switch node := n.(type) {
		case query.Val:
			w.value(node.Value)
		case query.Group:
			w.tree(node.Tree)
		case query.Func:
			w.funcArgs(node)
		case query.Subquery:
			w.sub(node)
		}
	}
}

// funcArgs visits bound function arguments in the order the renderers
// emit them: column first, then the fixed trailing arguments.
func (w *walker) funcArgs(f query.Func) {
	if col, ok := f.Args["column"].(*query.Tree); ok {
		w.tree(col)
	}
	if f.Kind != query.ScalarFunc {
		return
	}
	switch f.Name {
	case "MID":
		w.value(f.Args["start"])
		if length, ok := f.Args["length"]; ok {
			w.value(length)
		}
	case "ROUND":
		w.value(f.Args["decimals"])
	case "FORMAT":
		w.value(f.Args["format"])
	}
}

func (w *walker) conds(conds []query.Cond) {
	for _, cond := range conds {
		if w.stopped {
			return
		}
		switch e := cond.(type) {
		case query.Compare:
			w.value(e.Value)
		case query.In:
			if e.Subquery != nil {
				w.sub(*e.Subquery)
			} else {
				for _, v := range e.Values {
					w.value(v)
				}
			}
		case query.Between:
			w.value(e.Low)
			w.value(e.High)
		case query.Like:
			w.value(e.Pattern)
		case query.ExistsCond:
			w.sub(e.Subquery)
		case query.SubqueryCompare:
			w.sub(e.Subquery)
		case query.Nested:
			w.conds(e.Conds)
		case query.TreeCond:
			w.tree(e.Tree)
		}
	}
}

func (w *walker) joins(joins []query.JoinClause) {
	for _, join := range joins {
		w.conds(join.Conditions)
	}
}

func walkStatementValues(stmt query.Statement, w *walker) {
	switch s := stmt.(type) {
	case *query.SelectStatement:
		for _, col := range s.Columns {
			if col.Expr != nil {
				w.tree(col.Expr)
			}
		}
		w.joins(s.Joins)
		w.conds(s.Wheres)
		// HAVING params trail ORDER BY in emission order, but ORDER BY
		// binds nothing, so havings come right after wheres here.
		w.conds(s.Havings)
		if s.Limit != nil {
			w.value(*s.Limit)
		}
		if s.Offset != nil {
			w.value(*s.Offset)
		}
	case *query.InsertStatement:
		for _, row := range s.Rows {
			for _, v := range row {
				w.value(v)
			}
		}
	case *query.UpdateStatement:
		for _, set := range s.Set {
			w.value(set.Value)
		}
		w.conds(s.Wheres)
	case *query.DeleteStatement:
		w.joins(s.Joins)
		w.conds(s.Wheres)
	}
}
