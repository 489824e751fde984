package compile

import (
	"fmt"
	"strings"
	"time"

	"github.com/sqlforge/sqlforge/src/query"
)

// wrapIdent quotes a dotted identifier, each segment individually,
// passing bare * segments through unquoted so "a.*" wraps to "a".* and
// "*" stays *.
func (c *Compiler) wrapIdent(name string) string {
	parts := strings.Split(name, ".")
	for i, part := range parts {
		if part == "*" {
			continue
		}
		parts[i] = c.dialect.QuoteIdentifier(part)
	}
	return strings.Join(parts, ".")
}

// addParam appends a bound value to the session and returns the
// placeholder token to emit in its place.
func (c *Compiler) addParam(value any) string {
	c.state.params = append(c.state.params, value)
	return c.dialect.Placeholder(c.state.offset + len(c.state.params))
}

// writeValue renders a single value position. Scalars become
// placeholders with the value appended to the parameter list; time
// values are formatted to strings first; column references are wrapped
// identifiers; trees and subqueries render recursively and append their
// own parameters.
func (c *Compiler) writeValue(b *strings.Builder, value any) error {
	switch v := value.(type) {
	case *query.Tree:
		return c.writeTree(b, v)
	case query.Col:
		b.WriteString(c.wrapIdent(v.Name))
	case query.Subquery:
		c.writeSubquery(b, v)
	case time.Time:
		b.WriteString(c.addParam(v.Format(c.dialect.DateFormat())))
	default:
		b.WriteString(c.addParam(value))
	}
	return nil
}

// writeValueList renders values through the single-value path, joined
// by ", ". Used for IN lists and INSERT value rows.
func (c *Compiler) writeValueList(b *strings.Builder, values []any) error {
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := c.writeValue(b, v); err != nil {
			return err
		}
	}
	return nil
}

// writeTree renders a tree's nodes strictly left-to-right, tokens
// joined by single spaces.
func (c *Compiler) writeTree(b *strings.Builder, t *query.Tree) error {
	for i, n := range t.Nodes() {
		if i > 0 {
			b.WriteString(" ")
		}
		switch node := n.(type) {
		case query.Col:
			b.WriteString(c.wrapIdent(node.Name))
		case query.Op:
			// Raw token, emitted verbatim
			b.WriteString(node.Raw)
		case query.Val:
			if err := c.writeValue(b, node.Value); err != nil {
				return err
			}
		case query.Group:
			b.WriteString("(")
			if err := c.writeTree(b, node.Tree); err != nil {
				return err
			}
			b.WriteString(")")
		case query.Func:
			if err := c.writeFunc(b, node); err != nil {
				return err
			}
		case query.Subquery:
			c.writeSubquery(b, node)
		default:
			return fmt.Errorf("%w: unknown tree node type %T", ErrUnsupportedConstruct, n)
		}
	}
	return nil
}

// writeSubquery inlines pre-rendered subquery text in parentheses and
// appends its parameter values at this point, so the outer list stays
// aligned with placeholders depth-first.
func (c *Compiler) writeSubquery(b *strings.Builder, sub query.Subquery) {
	b.WriteString("(")
	b.WriteString(sub.SQL)
	b.WriteString(")")
	c.state.params = append(c.state.params, sub.Params...)
}
