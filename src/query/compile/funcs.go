package compile

import (
	"fmt"
	"strings"

	"github.com/sqlforge/sqlforge/src/query"
)

// funcRenderer renders one named SQL function from its argument map.
type funcRenderer func(c *Compiler, b *strings.Builder, f query.Func) error

// aggregateRenderers keys the aggregate family. All five take a
// "column" argument and an optional "distinct" flag.
var aggregateRenderers map[string]funcRenderer

// scalarRenderers keys the scalar family. Each function owns its fixed
// argument shape.
var scalarRenderers map[string]funcRenderer

// The renderer maps are filled in init to break the initialization
// cycle through writeFunc.
func init() {
	aggregateRenderers = map[string]funcRenderer{
		"COUNT": renderAggregate,
		"AVG":   renderAggregate,
		"SUM":   renderAggregate,
		"MIN":   renderAggregate,
		"MAX":   renderAggregate,
	}
	scalarRenderers = map[string]funcRenderer{
		"UCASE":  renderColumnFunc,
		"LCASE":  renderColumnFunc,
		"LEN":    renderColumnFunc,
		"MID":    renderMid,
		"ROUND":  renderRound,
		"NOW":    renderNow,
		"FORMAT": renderFormat,
	}
}

// writeFunc dispatches a function node to the renderer registered for
// its (kind, name). An unregistered name fails the whole compile.
func (c *Compiler) writeFunc(b *strings.Builder, f query.Func) error {
	var renderers map[string]funcRenderer
	switch f.Kind {
	case query.AggregateFunc:
		renderers = aggregateRenderers
	case query.ScalarFunc:
		renderers = scalarRenderers
	default:
		return fmt.Errorf("%w: unknown function kind %q", ErrUnsupportedConstruct, f.Kind)
	}
	render, ok := renderers[f.Name]
	if !ok {
		return fmt.Errorf("%w: unknown %s function %q", ErrUnsupportedConstruct, f.Kind, f.Name)
	}
	return render(c, b, f)
}

// writeFuncColumn renders the "column" argument: a name goes through
// the identifier wrapper, a tree renders recursively.
func (c *Compiler) writeFuncColumn(b *strings.Builder, f query.Func) error {
	switch col := f.Args["column"].(type) {
	case string:
		b.WriteString(c.wrapIdent(col))
		return nil
	case *query.Tree:
		return c.writeTree(b, col)
	default:
		return fmt.Errorf("%w: %s requires a column name or tree, got %T", ErrUnsupportedConstruct, f.Name, f.Args["column"])
	}
}

// renderAggregate renders NAME([DISTINCT ]column).
func renderAggregate(c *Compiler, b *strings.Builder, f query.Func) error {
	b.WriteString(f.Name)
	b.WriteString("(")
	if distinct, _ := f.Args["distinct"].(bool); distinct {
		b.WriteString("DISTINCT ")
	}
	if err := c.writeFuncColumn(b, f); err != nil {
		return err
	}
	b.WriteString(")")
	return nil
}

// renderColumnFunc renders the single-column scalars: NAME(column).
func renderColumnFunc(c *Compiler, b *strings.Builder, f query.Func) error {
	b.WriteString(f.Name)
	b.WriteString("(")
	if err := c.writeFuncColumn(b, f); err != nil {
		return err
	}
	b.WriteString(")")
	return nil
}

// renderMid renders MID(column, start[, length]); start and length are
// bound as parameters.
func renderMid(c *Compiler, b *strings.Builder, f query.Func) error {
	b.WriteString("MID(")
	if err := c.writeFuncColumn(b, f); err != nil {
		return err
	}
	b.WriteString(", ")
	if err := c.writeValue(b, f.Args["start"]); err != nil {
		return err
	}
	if length, ok := f.Args["length"]; ok {
		b.WriteString(", ")
		if err := c.writeValue(b, length); err != nil {
			return err
		}
	}
	b.WriteString(")")
	return nil
}

// renderRound renders ROUND(column, decimals).
func renderRound(c *Compiler, b *strings.Builder, f query.Func) error {
	b.WriteString("ROUND(")
	if err := c.writeFuncColumn(b, f); err != nil {
		return err
	}
	b.WriteString(", ")
	if err := c.writeValue(b, f.Args["decimals"]); err != nil {
		return err
	}
	b.WriteString(")")
	return nil
}

// renderNow takes no arguments; the token is dialect-specific.
func renderNow(c *Compiler, b *strings.Builder, f query.Func) error {
	b.WriteString(c.dialect.NowFunc())
	return nil
}

// renderFormat renders FORMAT(column, format) with the format string
// bound as a parameter.
func renderFormat(c *Compiler, b *strings.Builder, f query.Func) error {
	b.WriteString("FORMAT(")
	if err := c.writeFuncColumn(b, f); err != nil {
		return err
	}
	b.WriteString(", ")
	if err := c.writeValue(b, f.Args["format"]); err != nil {
		return err
	}
	b.WriteString(")")
	return nil
}
