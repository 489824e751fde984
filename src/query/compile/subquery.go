package compile

import "github.com/sqlforge/sqlforge/src/query"

// Result holds the output of one compile call: the SQL string and the
// bound parameter values positionally aligned with its placeholders.
type Result struct {
	SQL    string
	Params []any
}

// AsSubquery compiles a statement and wraps the output as a subquery
// node for embedding in another statement. The compiled parameters ride
// along on the node; the outer compiler appends them at the moment the
// subquery text is inlined, keeping the outer parameter list aligned
// depth-first with placeholder order.
//
// With ? placeholders this composes freely. With numbered placeholders
// (Postgres) use AsSubqueryAt with the count of parameters the outer
// statement binds before the subquery's position.
func AsSubquery(dialect Dialect, stmt query.Statement) (query.Subquery, error) {
	return AsSubqueryAt(dialect, stmt, 0)
}

// AsSubqueryAt compiles a statement for inlining after offset outer
// parameters, shifting numbered placeholders accordingly.
func AsSubqueryAt(dialect Dialect, stmt query.Statement, offset int) (query.Subquery, error) {
	c := NewCompiler(dialect)
	c.state.offset = offset
	sql, params, err := c.Compile(stmt)
	if err != nil {
		return query.Subquery{}, err
	}
	return query.Subquery{SQL: sql, Params: params}, nil
}
