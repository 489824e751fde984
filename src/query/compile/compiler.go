package compile

import (
	"fmt"
	"strings"

	"github.com/sqlforge/sqlforge/src/query"
)

// Compiler compiles statements to SQL for a specific dialect.
//
// A compiler instance holds the parameter buffer for the compile call in
// flight, so one instance must not be shared across concurrent compiles.
// Reuse across sequential calls is fine: Compile drains the buffer every
// call, nothing leaks from one statement to the next.
//
// The compiler assumes builder-validated input. It does not re-check
// separator well-formedness on chains past the first entry or
// column/row arity on inserts; behavior on malformed statements is
// undefined rather than silently coerced.
type Compiler struct {
	dialect Dialect
	state   *state
}

// state is the per-call mutable compilation state: the bound parameters
// in placeholder emission order, plus the placeholder index offset used
// when compiling a subquery for inlining into a larger statement.
type state struct {
	offset int
	params []any
}

// NewCompiler creates a new compiler for the given dialect.
func NewCompiler(dialect Dialect) *Compiler {
	return &Compiler{
		dialect: dialect,
		state:   &state{},
	}
}

// Compile compiles a statement to SQL. It returns the SQL string and
// the bound parameter values, positionally aligned with the placeholders
// left-to-right. Any error aborts the whole compile; no partial SQL is
// returned.
func (c *Compiler) Compile(stmt query.Statement) (sql string, params []any, err error) {
	// Reset state once at the top level
	c.state.params = nil

	var b strings.Builder
	switch s := stmt.(type) {
	case *query.SelectStatement:
		err = c.compileSelect(&b, s)
	case *query.InsertStatement:
		err = c.compileInsert(&b, s)
	case *query.UpdateStatement:
		err = c.compileUpdate(&b, s)
	case *query.DeleteStatement:
		err = c.compileDelete(&b, s)
	default:
		err = fmt.Errorf("%w: unknown statement type %T", ErrUnsupportedConstruct, stmt)
	}

	if err != nil {
		c.state.params = nil
		return "", nil, err
	}

	params = c.state.params
	c.state.params = nil
	return b.String(), params, nil
}

// =============================================================================
// SELECT Compilation
// =============================================================================

// compileSelect emits clauses in the fixed order SELECT [DISTINCT]
// columns [INTO ... [IN ...]] FROM tables joins where group order having
// limit offset. HAVING after ORDER BY is part of the output contract
// for this compiler, kept even though it diverges from standard SQL
// clause order.
func (c *Compiler) compileSelect(b *strings.Builder, stmt *query.SelectStatement) error {
	b.WriteString("SELECT ")
	if stmt.Distinct {
		b.WriteString("DISTINCT ")
	}
	if err := c.writeSelectColumns(b, stmt.Columns); err != nil {
		return err
	}

	if stmt.Into != nil {
		b.WriteString(" INTO ")
		b.WriteString(c.wrapIdent(stmt.Into.Table))
		if stmt.Into.Database != "" {
			b.WriteString(" IN ")
			b.WriteString(c.wrapIdent(stmt.Into.Database))
		}
	}

	b.WriteString(" FROM ")
	if err := c.writeTables(b, stmt.Tables); err != nil {
		return err
	}

	if err := c.writeJoins(b, stmt.Joins); err != nil {
		return err
	}
	if err := c.writeWhere(b, stmt.Wheres); err != nil {
		return err
	}
	c.writeGroupBy(b, stmt.GroupBy)
	c.writeOrderBy(b, stmt.OrderBy)

	if len(stmt.Havings) > 0 {
		b.WriteString(" HAVING ")
		if err := c.writeConds(b, stmt.Havings); err != nil {
			return err
		}
	}

	if stmt.Limit != nil {
		b.WriteString(" LIMIT ")
		b.WriteString(c.addParam(*stmt.Limit))
	}
	if stmt.Offset != nil {
		b.WriteString(" OFFSET ")
		b.WriteString(c.addParam(*stmt.Offset))
	}

	return nil
}

// =============================================================================
// INSERT Compilation
// =============================================================================

func (c *Compiler) compileInsert(b *strings.Builder, stmt *query.InsertStatement) error {
	b.WriteString("INSERT INTO ")
	if err := c.writeTables(b, stmt.Tables); err != nil {
		return err
	}

	// Column list; omitted entirely when no explicit columns were given
	if len(stmt.Columns) > 0 {
		b.WriteString(" (")
		for i, col := range stmt.Columns {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.wrapIdent(col))
		}
		b.WriteString(")")
	}

	b.WriteString(" VALUES ")
	for i, row := range stmt.Rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		if err := c.writeValueList(b, row); err != nil {
			return err
		}
		b.WriteString(")")
	}

	return nil
}

// =============================================================================
// UPDATE Compilation
// =============================================================================

func (c *Compiler) compileUpdate(b *strings.Builder, stmt *query.UpdateStatement) error {
	b.WriteString("UPDATE ")
	if err := c.writeTables(b, stmt.Tables); err != nil {
		return err
	}

	b.WriteString(" SET ")
	for i, set := range stmt.Set {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.wrapIdent(set.Column))
		b.WriteString(" = ")
		if err := c.writeValue(b, set.Value); err != nil {
			return err
		}
	}

	return c.writeWhere(b, stmt.Wheres)
}

// =============================================================================
// DELETE Compilation
// =============================================================================

func (c *Compiler) compileDelete(b *strings.Builder, stmt *query.DeleteStatement) error {
	b.WriteString("DELETE ")
	if len(stmt.Targets) > 0 {
		if err := c.writeTables(b, stmt.Targets); err != nil {
			return err
		}
		b.WriteString(" ")
	}
	b.WriteString("FROM ")
	if err := c.writeTables(b, stmt.Tables); err != nil {
		return err
	}

	if err := c.writeJoins(b, stmt.Joins); err != nil {
		return err
	}
	return c.writeWhere(b, stmt.Wheres)
}
