package cypher

// Where filters the clause it hangs off by a single condition tree. It
// is not a standalone clause: it only appears as a child of Match, which
// owns the surrounding spacing.
type Where struct {
	condition Condition
}

// NewWhere creates a WHERE sub-clause.
func NewWhere(condition Condition) *Where {
	return &Where{condition: condition}
}

func (w *Where) Accept(v Visitor)      { visit(w, v) }
func (w *Where) Children() []Visitable { return []Visitable{w.condition} }
func (w *Where) Separated() bool       { return false }
