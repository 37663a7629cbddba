package cypher

// Skip paginates past the given number of records.
type Skip struct {
	amount *IntegerLiteral
}

// NewSkip creates a SKIP section.
func NewSkip(amount int64) *Skip {
	return &Skip{amount: NewIntegerLiteral(amount)}
}

func (s *Skip) Accept(v Visitor)      { visit(s, v) }
func (s *Skip) Children() []Visitable { return []Visitable{s.amount} }
func (s *Skip) Separated() bool       { return false }
func (s *Skip) clause()               {}
