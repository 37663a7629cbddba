package cypher

// Delete removes the matched elements, optionally detaching their
// relationships first.
type Delete struct {
	detach      bool
	expressions *ExpressionList
}

// NewDelete creates a DELETE clause over the given expressions.
func NewDelete(expressions ...Expression) *Delete {
	return &Delete{expressions: NewExpressionList(expressions...)}
}

// NewDetachDelete creates a DETACH DELETE clause.
func NewDetachDelete(expressions ...Expression) *Delete {
	return &Delete{detach: true, expressions: NewExpressionList(expressions...)}
}

// IsDetach reports whether relationships are detached before deletion.
func (d *Delete) IsDetach() bool { return d.detach }

func (d *Delete) Accept(v Visitor)      { visit(d, v) }
func (d *Delete) Children() []Visitable { return []Visitable{d.expressions} }
func (d *Delete) Separated() bool       { return false }
func (d *Delete) clause()               {}
