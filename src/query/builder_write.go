package query

// =============================================================================
// INSERT Builder
// =============================================================================

// InsertBuilder builds an InsertStatement.
type InsertBuilder struct {
	stmt InsertStatement
}

// InsertInto starts an INSERT into the given table.
func InsertInto(table string) *InsertBuilder {
	b := &InsertBuilder{}
	b.stmt.Tables = []TableRef{{Name: table}}
	return b
}

// Columns sets the explicit column list. Without one, the column
// position renders "*" and no parenthesized list is emitted.
func (b *InsertBuilder) Columns(columns ...string) *InsertBuilder {
	b.stmt.Columns = columns
	return b
}

// Values appends one value row. Row length must match the column list.
func (b *InsertBuilder) Values(row ...any) *InsertBuilder {
	b.stmt.Rows = append(b.stmt.Rows, row)
	return b
}

// Build returns the finished statement.
func (b *InsertBuilder) Build() *InsertStatement {
	return &b.stmt
}

// =============================================================================
// UPDATE Builder
// =============================================================================

// UpdateBuilder builds an UpdateStatement.
type UpdateBuilder struct {
	stmt  UpdateStatement
	where CondList
}

// Update starts an UPDATE of the given tables.
func Update(tables ...TableRef) *UpdateBuilder {
	b := &UpdateBuilder{}
	b.stmt.Tables = tables
	return b
}

// Set appends a column = value assignment. Assignments render in the
// order they were added.
func (b *UpdateBuilder) Set(column string, value any) *UpdateBuilder {
	b.stmt.Set = append(b.stmt.Set, SetClause{Column: column, Value: value})
	return b
}

// Where adds "column op value" to the WHERE chain with AND.
func (b *UpdateBuilder) Where(column, op string, value any) *UpdateBuilder {
	b.where.Where(column, op, value)
	return b
}

// OrWhere adds "column op value" to the WHERE chain with OR.
func (b *UpdateBuilder) OrWhere(column, op string, value any) *UpdateBuilder {
	b.where.OrWhere(column, op, value)
	return b
}

// WhereIn adds "column IN (values...)" with AND.
func (b *UpdateBuilder) WhereIn(column string, values ...any) *UpdateBuilder {
	b.where.WhereIn(column, values...)
	return b
}

// WhereGroup adds a parenthesized nested WHERE chain with AND.
func (b *UpdateBuilder) WhereGroup(fn func(*CondList)) *UpdateBuilder {
	b.where.WhereGroup(fn)
	return b
}

// Build returns the finished statement.
func (b *UpdateBuilder) Build() *UpdateStatement {
	b.stmt.Wheres = b.where.conds
	return &b.stmt
}

// =============================================================================
// DELETE Builder
// =============================================================================

// DeleteBuilder builds a DeleteStatement.
type DeleteBuilder struct {
	stmt  DeleteStatement
	where CondList
}

// DeleteFrom starts a DELETE from the given tables.
func DeleteFrom(tables ...TableRef) *DeleteBuilder {
	b := &DeleteBuilder{}
	b.stmt.Tables = tables
	return b
}

// Targets qualifies which tables to delete from in a multi-table
// delete. Without targets the statement renders as bare DELETE FROM.
func (b *DeleteBuilder) Targets(tables ...TableRef) *DeleteBuilder {
	b.stmt.Targets = tables
	return b
}

// Join adds a join whose ON chain is built from the given trees.
func (b *DeleteBuilder) Join(kind JoinKind, table TableRef, on ...*Tree) *DeleteBuilder {
	b.stmt.Joins = append(b.stmt.Joins, joinClause(kind, table, on))
	return b
}

// Where adds "column op value" to the WHERE chain with AND.
func (b *DeleteBuilder) Where(column, op string, value any) *DeleteBuilder {
	b.where.Where(column, op, value)
	return b
}

// OrWhere adds "column op value" to the WHERE chain with OR.
func (b *DeleteBuilder) OrWhere(column, op string, value any) *DeleteBuilder {
	b.where.OrWhere(column, op, value)
	return b
}

// WhereIn adds "column IN (values...)" with AND.
func (b *DeleteBuilder) WhereIn(column string, values ...any) *DeleteBuilder {
	b.where.WhereIn(column, values...)
	return b
}

// WhereGroup adds a parenthesized nested WHERE chain with AND.
func (b *DeleteBuilder) WhereGroup(fn func(*CondList)) *DeleteBuilder {
	b.where.WhereGroup(fn)
	return b
}

// Build returns the finished statement.
func (b *DeleteBuilder) Build() *DeleteStatement {
	b.stmt.Wheres = b.where.conds
	return &b.stmt
}
