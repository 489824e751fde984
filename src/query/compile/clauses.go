package compile

import (
	"fmt"
	"strings"

	"github.com/sqlforge/sqlforge/src/query"
)

// writeTables renders a table list, "name" or "name" AS "alias" per
// entry, joined by ", ".
func (c *Compiler) writeTables(b *strings.Builder, tables []query.TableRef) error {
	for i, t := range tables {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.wrapIdent(t.Name))
		if t.Alias != "" {
			if err := ValidateIdentifier(t.Alias); err != nil {
				return fmt.Errorf("invalid table alias: %w", err)
			}
			b.WriteString(" AS ")
			b.WriteString(c.dialect.QuoteIdentifier(t.Alias))
		}
	}
	return nil
}

// writeSelectColumns renders the SELECT list; an empty list renders *.
func (c *Compiler) writeSelectColumns(b *strings.Builder, cols []query.SelectColumn) error {
	if len(cols) == 0 {
		b.WriteString("*")
		return nil
	}
	for i, col := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		if col.Expr != nil {
			if err := c.writeTree(b, col.Expr); err != nil {
				return err
			}
		} else {
			b.WriteString(c.wrapIdent(col.Name))
		}
		if col.Alias != "" {
			if err := ValidateIdentifier(col.Alias); err != nil {
				return fmt.Errorf("invalid column alias: %w", err)
			}
			b.WriteString(" AS ")
			b.WriteString(c.dialect.QuoteIdentifier(col.Alias))
		}
	}
	return nil
}

// writeJoins renders joins in declaration order, space-joined:
// <KIND> JOIN <tables> ON <condition chain>.
func (c *Compiler) writeJoins(b *strings.Builder, joins []query.JoinClause) error {
	for _, join := range joins {
		b.WriteString(" ")
		b.WriteString(string(join.Kind))
		b.WriteString(" JOIN ")
		if err := c.writeTables(b, join.Tables); err != nil {
			return err
		}
		b.WriteString(" ON ")
		if err := c.writeConds(b, join.Conditions); err != nil {
			return err
		}
	}
	return nil
}

// writeWhere renders a WHERE clause, omitted when the chain is empty.
func (c *Compiler) writeWhere(b *strings.Builder, conds []query.Cond) error {
	if len(conds) == 0 {
		return nil
	}
	b.WriteString(" WHERE ")
	return c.writeConds(b, conds)
}

// writeConds renders a condition chain: the first entry bare, every
// later entry prefixed by its stored separator keyword.
func (c *Compiler) writeConds(b *strings.Builder, conds []query.Cond) error {
	for i, cond := range conds {
		if i > 0 {
			b.WriteString(" ")
			b.WriteString(cond.Separator())
			b.WriteString(" ")
		}
		if err := c.writeCond(b, cond); err != nil {
			return err
		}
	}
	return nil
}

// writeCond dispatches one condition entry to its renderer.
func (c *Compiler) writeCond(b *strings.Builder, cond query.Cond) error {
	switch e := cond.(type) {
	case query.Compare:
		b.WriteString(c.wrapIdent(e.Column))
		b.WriteString(" ")
		b.WriteString(e.Op)
		b.WriteString(" ")
		return c.writeValue(b, e.Value)

	case query.In:
		b.WriteString(c.wrapIdent(e.Column))
		if e.Not {
			b.WriteString(" NOT")
		}
		b.WriteString(" IN ")
		if e.Subquery != nil {
			c.writeSubquery(b, *e.Subquery)
			return nil
		}
		b.WriteString("(")
		if err := c.writeValueList(b, e.Values); err != nil {
			return err
		}
		b.WriteString(")")

	case query.Between:
		b.WriteString(c.wrapIdent(e.Column))
		if e.Not {
			b.WriteString(" NOT")
		}
		b.WriteString(" BETWEEN ")
		if err := c.writeValue(b, e.Low); err != nil {
			return err
		}
		b.WriteString(" AND ")
		return c.writeValue(b, e.High)

	case query.Like:
		b.WriteString(c.wrapIdent(e.Column))
		if e.Not {
			b.WriteString(" NOT")
		}
		b.WriteString(" LIKE ")
		return c.writeValue(b, e.Pattern)

	case query.Null:
		b.WriteString(c.wrapIdent(e.Column))
		b.WriteString(" IS ")
		if e.Not {
			b.WriteString("NOT ")
		}
		b.WriteString("NULL")

	case query.ExistsCond:
		if e.Not {
			b.WriteString("NOT ")
		}
		b.WriteString("EXISTS ")
		c.writeSubquery(b, e.Subquery)

	case query.SubqueryCompare:
		b.WriteString(c.wrapIdent(e.Column))
		b.WriteString(" ")
		b.WriteString(e.Op)
		b.WriteString(" ")
		c.writeSubquery(b, e.Subquery)

	case query.Nested:
		b.WriteString("(")
		if err := c.writeConds(b, e.Conds); err != nil {
			return err
		}
		b.WriteString(")")

	case query.TreeCond:
		return c.writeTree(b, e.Tree)

	default:
		return fmt.Errorf("%w: unknown condition type %T", ErrUnsupportedConstruct, cond)
	}
	return nil
}

// writeGroupBy renders GROUP BY; columns are wrapped, never aliased.
func (c *Compiler) writeGroupBy(b *strings.Builder, cols []string) {
	if len(cols) == 0 {
		return
	}
	b.WriteString(" GROUP BY ")
	for i, col := range cols {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.wrapIdent(col))
	}
}

// writeOrderBy renders ORDER BY as repeated (column list, direction)
// pairs, each pair's columns comma-joined and followed by its keyword.
func (c *Compiler) writeOrderBy(b *strings.Builder, orders []query.OrderClause) {
	if len(orders) == 0 {
		return
	}
	b.WriteString(" ORDER BY ")
	for i, ord := range orders {
		if i > 0 {
			b.WriteString(", ")
		}
		for j, col := range ord.Columns {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(c.wrapIdent(col))
		}
		b.WriteString(" ")
		b.WriteString(ord.Direction)
	}
}
