package cypher

// Limit caps the number of returned records.
type Limit struct {
	amount *IntegerLiteral
}

// NewLimit creates a LIMIT section.
func NewLimit(amount int64) *Limit {
	return &Limit{amount: NewIntegerLiteral(amount)}
}

func (l *Limit) Accept(v Visitor)      { visit(l, v) }
func (l *Limit) Children() []Visitable { return []Visitable{l.amount} }
func (l *Limit) Separated() bool       { return false }
func (l *Limit) clause()               {}
