package cypher

// With pipes intermediate results to the rest of the statement.
type With struct {
	distinct bool
	items    *ExpressionList
}

// NewWith creates a WITH clause over the given expressions.
func NewWith(items ...Expression) *With {
	return &With{items: NewExpressionList(items...)}
}

// Distinct returns a copy piping distinct results.
func (w *With) Distinct() *With {
	return &With{distinct: true, items: w.items}
}

// IsDistinct reports whether DISTINCT was requested.
func (w *With) IsDistinct() bool { return w.distinct }

func (w *With) Accept(v Visitor)      { visit(w, v) }
func (w *With) Children() []Visitable { return []Visitable{w.items} }
func (w *With) Separated() bool       { return false }
func (w *With) clause()               {}
