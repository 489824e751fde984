package query

// CondList accumulates a condition chain with correct separators: the
// first entry gets none, every later entry gets the keyword of the
// method that added it. It backs WHERE and HAVING chains, join ON
// chains, and nested groups.
type CondList struct {
	conds []Cond
}

// Conds returns the accumulated chain in order.
func (l *CondList) Conds() []Cond {
	return l.conds
}

func (l *CondList) sep(kw string) string {
	if len(l.conds) == 0 {
		return ""
	}
	return kw
}

// Where adds "column op value" joined with AND.
func (l *CondList) Where(column, op string, value any) *CondList {
	l.conds = append(l.conds, Compare{Sep: l.sep(SepAnd), Column: column, Op: op, Value: value})
	return l
}

// OrWhere adds "column op value" joined with OR.
func (l *CondList) OrWhere(column, op string, value any) *CondList {
	l.conds = append(l.conds, Compare{Sep: l.sep(SepOr), Column: column, Op: op, Value: value})
	return l
}

// WhereIn adds "column IN (values...)" joined with AND.
func (l *CondList) WhereIn(column string, values ...any) *CondList {
	l.conds = append(l.conds, In{Sep: l.sep(SepAnd), Column: column, Values: values})
	return l
}

// OrWhereIn adds "column IN (values...)" joined with OR.
func (l *CondList) OrWhereIn(column string, values ...any) *CondList {
	l.conds = append(l.conds, In{Sep: l.sep(SepOr), Column: column, Values: values})
	return l
}

// WhereNotIn adds "column NOT IN (values...)" joined with AND.
func (l *CondList) WhereNotIn(column string, values ...any) *CondList {
	l.conds = append(l.conds, In{Sep: l.sep(SepAnd), Column: column, Values: values, Not: true})
	return l
}

// WhereInSubquery adds "column IN (subquery)" joined with AND.
func (l *CondList) WhereInSubquery(column string, sub Subquery) *CondList {
	l.conds = append(l.conds, In{Sep: l.sep(SepAnd), Column: column, Subquery: &sub})
	return l
}

// WhereNotInSubquery adds "column NOT IN (subquery)" joined with AND.
func (l *CondList) WhereNotInSubquery(column string, sub Subquery) *CondList {
	l.conds = append(l.conds, In{Sep: l.sep(SepAnd), Column: column, Subquery: &sub, Not: true})
	return l
}

// WhereBetween adds "column BETWEEN low AND high" joined with AND.
func (l *CondList) WhereBetween(column string, low, high any) *CondList {
	l.conds = append(l.conds, Between{Sep: l.sep(SepAnd), Column: column, Low: low, High: high})
	return l
}

// WhereNotBetween adds "column NOT BETWEEN low AND high" joined with AND.
func (l *CondList) WhereNotBetween(column string, low, high any) *CondList {
	l.conds = append(l.conds, Between{Sep: l.sep(SepAnd), Column: column, Low: low, High: high, Not: true})
	return l
}

// WhereLike adds "column LIKE pattern" joined with AND.
func (l *CondList) WhereLike(column string, pattern any) *CondList {
	l.conds = append(l.conds, Like{Sep: l.sep(SepAnd), Column: column, Pattern: pattern})
	return l
}

// WhereNotLike adds "column NOT LIKE pattern" joined with AND.
func (l *CondList) WhereNotLike(column string, pattern any) *CondList {
	l.conds = append(l.conds, Like{Sep: l.sep(SepAnd), Column: column, Pattern: pattern, Not: true})
	return l
}

// OrWhereLike adds "column LIKE pattern" joined with OR.
func (l *CondList) OrWhereLike(column string, pattern any) *CondList {
	l.conds = append(l.conds, Like{Sep: l.sep(SepOr), Column: column, Pattern: pattern})
	return l
}

// WhereNull adds "column IS NULL" joined with AND.
func (l *CondList) WhereNull(column string) *CondList {
	l.conds = append(l.conds, Null{Sep: l.sep(SepAnd), Column: column})
	return l
}

// WhereNotNull adds "column IS NOT NULL" joined with AND.
func (l *CondList) WhereNotNull(column string) *CondList {
	l.conds = append(l.conds, Null{Sep: l.sep(SepAnd), Column: column, Not: true})
	return l
}

// OrWhereNull adds "column IS NULL" joined with OR.
func (l *CondList) OrWhereNull(column string) *CondList {
	l.conds = append(l.conds, Null{Sep: l.sep(SepOr), Column: column})
	return l
}

// WhereExists adds "EXISTS (subquery)" joined with AND.
func (l *CondList) WhereExists(sub Subquery) *CondList {
	l.conds = append(l.conds, ExistsCond{Sep: l.sep(SepAnd), Subquery: sub})
	return l
}

// WhereNotExists adds "NOT EXISTS (subquery)" joined with AND.
func (l *CondList) WhereNotExists(sub Subquery) *CondList {
	l.conds = append(l.conds, ExistsCond{Sep: l.sep(SepAnd), Subquery: sub, Not: true})
	return l
}

// WhereSubquery adds "column op (subquery)" joined with AND.
func (l *CondList) WhereSubquery(column, op string, sub Subquery) *CondList {
	l.conds = append(l.conds, SubqueryCompare{Sep: l.sep(SepAnd), Column: column, Op: op, Subquery: sub})
	return l
}

// WhereTree adds an arbitrary expression tree joined with AND.
func (l *CondList) WhereTree(t *Tree) *CondList {
	l.conds = append(l.conds, TreeCond{Sep: l.sep(SepAnd), Tree: t})
	return l
}

// OrWhereTree adds an arbitrary expression tree joined with OR.
func (l *CondList) OrWhereTree(t *Tree) *CondList {
	l.conds = append(l.conds, TreeCond{Sep: l.sep(SepOr), Tree: t})
	return l
}

// WhereGroup adds a parenthesized nested chain joined with AND. The
// callback populates the inner chain, whose first entry again carries no
// separator.
func (l *CondList) WhereGroup(fn func(*CondList)) *CondList {
	inner := &CondList{}
	fn(inner)
	l.conds = append(l.conds, Nested{Sep: l.sep(SepAnd), Conds: inner.conds})
	return l
}

// OrWhereGroup adds a parenthesized nested chain joined with OR.
func (l *CondList) OrWhereGroup(fn func(*CondList)) *CondList {
	inner := &CondList{}
	fn(inner)
	l.conds = append(l.conds, Nested{Sep: l.sep(SepOr), Conds: inner.conds})
	return l
}

// =============================================================================
// SELECT Builder
// =============================================================================

// SelectBuilder builds a SelectStatement.
type SelectBuilder struct {
	stmt   SelectStatement
	where  CondList
	having CondList
}

// From starts a SELECT from the given tables.
func From(tables ...TableRef) *SelectBuilder {
	b := &SelectBuilder{}
	b.stmt.Tables = tables
	return b
}

// Select appends plain column names to the select list. With no columns
// ever added, the statement renders "*".
func (b *SelectBuilder) Select(columns ...string) *SelectBuilder {
	for _, col := range columns {
		b.stmt.Columns = append(b.stmt.Columns, SelectColumn{Name: col})
	}
	return b
}

// SelectAs appends an aliased column.
func (b *SelectBuilder) SelectAs(column, alias string) *SelectBuilder {
	b.stmt.Columns = append(b.stmt.Columns, SelectColumn{Name: column, Alias: alias})
	return b
}

// SelectExpr appends a computed expression column with an optional alias.
func (b *SelectBuilder) SelectExpr(t *Tree, alias string) *SelectBuilder {
	b.stmt.Columns = append(b.stmt.Columns, SelectColumn{Expr: t, Alias: alias})
	return b
}

// Distinct marks the select DISTINCT.
func (b *SelectBuilder) Distinct() *SelectBuilder {
	b.stmt.Distinct = true
	return b
}

// Into sets the SELECT ... INTO target table.
func (b *SelectBuilder) Into(table string) *SelectBuilder {
	b.stmt.Into = &IntoClause{Table: table}
	return b
}

// IntoIn sets the SELECT ... INTO target with an external database.
func (b *SelectBuilder) IntoIn(table, database string) *SelectBuilder {
	b.stmt.Into = &IntoClause{Table: table, Database: database}
	return b
}

// Join adds a join whose ON chain is built from the given trees, AND-joined.
func (b *SelectBuilder) Join(kind JoinKind, table TableRef, on ...*Tree) *SelectBuilder {
	b.stmt.Joins = append(b.stmt.Joins, joinClause(kind, table, on))
	return b
}

// Where adds "column op value" to the WHERE chain with AND.
func (b *SelectBuilder) Where(column, op string, value any) *SelectBuilder {
	b.where.Where(column, op, value)
	return b
}

// OrWhere adds "column op value" to the WHERE chain with OR.
func (b *SelectBuilder) OrWhere(column, op string, value any) *SelectBuilder {
	b.where.OrWhere(column, op, value)
	return b
}

// WhereIn adds "column IN (values...)" with AND.
func (b *SelectBuilder) WhereIn(column string, values ...any) *SelectBuilder {
	b.where.WhereIn(column, values...)
	return b
}

// WhereNotIn adds "column NOT IN (values...)" with AND.
func (b *SelectBuilder) WhereNotIn(column string, values ...any) *SelectBuilder {
	b.where.WhereNotIn(column, values...)
	return b
}

// WhereInSubquery adds "column IN (subquery)" with AND.
func (b *SelectBuilder) WhereInSubquery(column string, sub Subquery) *SelectBuilder {
	b.where.WhereInSubquery(column, sub)
	return b
}

// WhereNotInSubquery adds "column NOT IN (subquery)" with AND.
func (b *SelectBuilder) WhereNotInSubquery(column string, sub Subquery) *SelectBuilder {
	b.where.WhereNotInSubquery(column, sub)
	return b
}

// WhereSubquery adds "column op (subquery)" with AND.
func (b *SelectBuilder) WhereSubquery(column, op string, sub Subquery) *SelectBuilder {
	b.where.WhereSubquery(column, op, sub)
	return b
}

// WhereBetween adds "column BETWEEN low AND high" with AND.
func (b *SelectBuilder) WhereBetween(column string, low, high any) *SelectBuilder {
	b.where.WhereBetween(column, low, high)
	return b
}

// WhereLike adds "column LIKE pattern" with AND.
func (b *SelectBuilder) WhereLike(column string, pattern any) *SelectBuilder {
	b.where.WhereLike(column, pattern)
	return b
}

// WhereNull adds "column IS NULL" with AND.
func (b *SelectBuilder) WhereNull(column string) *SelectBuilder {
	b.where.WhereNull(column)
	return b
}

// WhereNotNull adds "column IS NOT NULL" with AND.
func (b *SelectBuilder) WhereNotNull(column string) *SelectBuilder {
	b.where.WhereNotNull(column)
	return b
}

// WhereExists adds "EXISTS (subquery)" with AND.
func (b *SelectBuilder) WhereExists(sub Subquery) *SelectBuilder {
	b.where.WhereExists(sub)
	return b
}

// WhereGroup adds a parenthesized nested WHERE chain with AND.
func (b *SelectBuilder) WhereGroup(fn func(*CondList)) *SelectBuilder {
	b.where.WhereGroup(fn)
	return b
}

// OrWhereGroup adds a parenthesized nested WHERE chain with OR.
func (b *SelectBuilder) OrWhereGroup(fn func(*CondList)) *SelectBuilder {
	b.where.OrWhereGroup(fn)
	return b
}

// WhereTree adds an arbitrary expression tree to the WHERE chain with AND.
func (b *SelectBuilder) WhereTree(t *Tree) *SelectBuilder {
	b.where.WhereTree(t)
	return b
}

// Having adds "column op value" to the HAVING chain with AND.
func (b *SelectBuilder) Having(column, op string, value any) *SelectBuilder {
	b.having.Where(column, op, value)
	return b
}

// OrHaving adds "column op value" to the HAVING chain with OR.
func (b *SelectBuilder) OrHaving(column, op string, value any) *SelectBuilder {
	b.having.OrWhere(column, op, value)
	return b
}

// HavingTree adds an expression tree to the HAVING chain with AND.
func (b *SelectBuilder) HavingTree(t *Tree) *SelectBuilder {
	b.having.WhereTree(t)
	return b
}

// GroupBy appends GROUP BY columns.
func (b *SelectBuilder) GroupBy(columns ...string) *SelectBuilder {
	b.stmt.GroupBy = append(b.stmt.GroupBy, columns...)
	return b
}

// OrderBy appends an ascending ORDER BY entry over the given columns.
func (b *SelectBuilder) OrderBy(columns ...string) *SelectBuilder {
	b.stmt.OrderBy = append(b.stmt.OrderBy, OrderClause{Columns: columns, Direction: "ASC"})
	return b
}

// OrderByDesc appends a descending ORDER BY entry.
func (b *SelectBuilder) OrderByDesc(columns ...string) *SelectBuilder {
	b.stmt.OrderBy = append(b.stmt.OrderBy, OrderClause{Columns: columns, Direction: "DESC"})
	return b
}

// Limit sets the LIMIT value.
func (b *SelectBuilder) Limit(n int) *SelectBuilder {
	b.stmt.Limit = &n
	return b
}

// Offset sets the OFFSET value.
func (b *SelectBuilder) Offset(n int) *SelectBuilder {
	b.stmt.Offset = &n
	return b
}

// Build returns the finished statement. The builder should not be
// reused after Build.
func (b *SelectBuilder) Build() *SelectStatement {
	b.stmt.Wheres = b.where.conds
	b.stmt.Havings = b.having.conds
	return &b.stmt
}

// joinClause assembles a JoinClause from ON trees, AND-joining entries
// after the first.
func joinClause(kind JoinKind, table TableRef, on []*Tree) JoinClause {
	var chain CondList
	for _, t := range on {
		chain.WhereTree(t)
	}
	return JoinClause{Kind: kind, Tables: []TableRef{table}, Conditions: chain.conds}
}

// OnEq builds the common "left = right" join condition tree from two
// column references.
func OnEq(left, right string) *Tree {
	return NewTree(Col{Name: left}, Op{Raw: "="}, Col{Name: right})
}
