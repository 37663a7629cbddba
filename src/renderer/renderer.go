// Package renderer turns a cypher.Statement tree into query text.
package renderer

import (
	"regexp"
	"strings"

	"github.com/seuros/cypher-ast/src/cypher"
)

const (
	labelSeparator = ":"
	typeSeparator  = ":"
	listSeparator  = ", "
)

var plainIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Renderer accumulates the textual form of a statement tree. A Renderer
// is single use: create a fresh instance per render pass and do not
// share it between goroutines.
type Renderer struct {
	builder strings.Builder

	// Pending separator, emitted before the next sibling at a level
	// that needs separation.
	separator string

	// Levels of the tree at which siblings are joined by a separator.
	// Tracking by absolute depth assumes no two distinct separated
	// lists are ever active at the same depth at the same time; that
	// holds structurally for the clause grammar and must not be
	// re-derived per node.
	separatorOnLevel map[int]bool

	currentLevel int
}

// NewRenderer creates a renderer for a single render pass.
func NewRenderer() *Renderer {
	return &Renderer{separatorOnLevel: make(map[int]bool)}
}

// Render renders the statement with a fresh renderer and returns the
// query text. Rendering is deterministic: the same tree always yields
// the same text.
func Render(statement *cypher.Statement) string {
	r := NewRenderer()
	statement.Accept(r)
	return strings.TrimRight(r.GetRenderedContent(), " ")
}

// GetRenderedContent returns the accumulated statement text.
func (r *Renderer) GetRenderedContent() string {
	return r.builder.String()
}

func (r *Renderer) enableSeparator(level int, on bool) {
	if on {
		r.separatorOnLevel[level] = true
	} else {
		delete(r.separatorOnLevel, level)
	}
	r.separator = ""
}

func (r *Renderer) needsSeparator() bool {
	return r.separatorOnLevel[r.currentLevel]
}

// PreEnter tracks depth and emits a pending separator between siblings
// of a separated list.
func (r *Renderer) PreEnter(visitable cypher.Visitable) {
	r.currentLevel++
	if visitable.Separated() {
		r.enableSeparator(r.currentLevel+1, true)
	}

	if r.needsSeparator() && r.separator != "" {
		r.builder.WriteString(r.separator)
		r.separator = ""
	}
}

// PostLeave arms the separator for the next sibling and closes the
// separator scope of a fully left separated list.
func (r *Renderer) PostLeave(visitable cypher.Visitable) {
	if r.needsSeparator() {
		r.separator = listSeparator
	}

	if visitable.Separated() {
		r.enableSeparator(r.currentLevel+1, false)
	}

	r.currentLevel--
}

// Enter emits the fragments that precede an element's children. Element
// kinds without structural text of their own fall through silently.
func (r *Renderer) Enter(visitable cypher.Visitable) {
	switch n := visitable.(type) {
	case *cypher.Match:
		if n.IsOptional() {
			r.builder.WriteString("OPTIONAL ")
		}
		r.builder.WriteString("MATCH ")
	case *cypher.Where:
		r.builder.WriteString(" WHERE ")
	case *cypher.Return:
		r.builder.WriteString("RETURN ")
		if n.IsDistinct() {
			r.builder.WriteString("DISTINCT ")
		}
	case *cypher.With:
		r.builder.WriteString("WITH ")
		if n.IsDistinct() {
			r.builder.WriteString("DISTINCT ")
		}
	case *cypher.Delete:
		if n.IsDetach() {
			r.builder.WriteString("DETACH ")
		}
		r.builder.WriteString("DELETE ")
	case *cypher.Order:
		r.builder.WriteString(" ORDER BY ")
	case *cypher.Skip:
		r.builder.WriteString(" SKIP ")
	case *cypher.Limit:
		r.builder.WriteString(" LIMIT ")
	case *cypher.SortDirection:
		r.builder.WriteString(" ")
		r.builder.WriteString(n.Symbol())
	case *cypher.Property:
		r.builder.WriteString(n.ParentAlias())
		r.builder.WriteString(".")
		r.builder.WriteString(n.Name())
	case *cypher.FunctionInvocation:
		r.builder.WriteString(n.FunctionName())
		r.builder.WriteString("(")
	case *cypher.Operator:
		r.builder.WriteString(" ")
		r.builder.WriteString(n.Symbol())
		r.builder.WriteString(" ")
	case *cypher.CompoundCondition:
		r.builder.WriteString("(")
	case *cypher.NotCondition:
		r.builder.WriteString("NOT (")
	case *cypher.SymbolicName:
		r.builder.WriteString(n.Name())
	case *cypher.Node:
		r.builder.WriteString("(")
		if name := n.SymbolicName(); name != nil {
			r.builder.WriteString(name.Name())
		}
		if n.IsLabeled() {
			r.builder.WriteString(labelSeparator)
			r.builder.WriteString(joinEscaped(n.Labels(), labelSeparator))
		}
		r.builder.WriteString(")")
	case *cypher.RelationshipDetail:
		direction := n.Direction()
		r.builder.WriteString(direction.SymbolLeft())
		r.builder.WriteString("[")
		if name := n.SymbolicName(); name != nil {
			r.builder.WriteString(name.Name())
		}
		if n.IsTyped() {
			r.builder.WriteString(typeSeparator)
			r.builder.WriteString(joinEscaped(n.Types(), typeSeparator))
		}
		r.builder.WriteString("]")
		r.builder.WriteString(direction.SymbolRight())
	case cypher.Literal:
		r.builder.WriteString(n.AsString())
	}
}

// Leave emits the fragments that follow an element's children.
func (r *Renderer) Leave(visitable cypher.Visitable) {
	switch n := visitable.(type) {
	case *cypher.Match:
		r.builder.WriteString(" ")
	case *cypher.With:
		r.builder.WriteString(" ")
	case *cypher.Delete:
		r.builder.WriteString(" ")
	case *cypher.FunctionInvocation:
		r.builder.WriteString(")")
	case *cypher.CompoundCondition:
		r.builder.WriteString(")")
	case *cypher.NotCondition:
		r.builder.WriteString(")")
	case *cypher.IsNull:
		r.builder.WriteString(" IS ")
		if n.IsNegated() {
			r.builder.WriteString("NOT ")
		}
		r.builder.WriteString("NULL")
	case *cypher.AliasedExpression:
		r.builder.WriteString(" AS ")
		r.builder.WriteString(n.Alias())
	}
}

// EscapeName quotes a label, relationship type or similar identifier
// with backticks, doubling any embedded backtick. An empty name escapes
// to no output rather than an empty pair of quotes.
func EscapeName(name string) string {
	if name == "" {
		return ""
	}
	return "`" + strings.ReplaceAll(name, "`", "``") + "`"
}

// escapeIfNecessary leaves plain identifiers untouched and quotes
// everything else.
func escapeIfNecessary(name string) string {
	if name == "" || plainIdentifier.MatchString(name) {
		return name
	}
	return EscapeName(name)
}

func joinEscaped(names []string, separator string) string {
	escaped := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		escaped = append(escaped, escapeIfNecessary(name))
	}
	return strings.Join(escaped, separator)
}
