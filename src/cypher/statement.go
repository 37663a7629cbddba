package cypher

import "sort"

// Clause is a top-level fragment of a statement, such as MATCH or RETURN.
type Clause interface {
	Visitable
	clause()
}

// clauseRank fixes the canonical position of each clause kind within a
// statement. Lower ranks render first; unknown clauses sort last.
func clauseRank(c Clause) int {
	switch c.(type) {
	case *Match:
		return 5
	case *Delete:
		return 25
	case *With:
		return 30
	case *Return:
		return 37
	case *Order:
		return 40
	case *Skip:
		return 43
	case *Limit:
		return 47
	default:
		return 99
	}
}

// Statement is the root of a Cypher statement tree.
type Statement struct {
	clauses []Clause
}

// NewStatement assembles a statement from the given clauses, reordering
// them into canonical clause order. The sort is stable, so clauses of the
// same kind keep their relative order.
func NewStatement(clauses ...Clause) *Statement {
	ordered := make([]Clause, len(clauses))
	copy(ordered, clauses)
	sort.SliceStable(ordered, func(i, j int) bool {
		return clauseRank(ordered[i]) < clauseRank(ordered[j])
	})
	return &Statement{clauses: ordered}
}

// Clauses returns the clauses in canonical order.
func (s *Statement) Clauses() []Clause {
	return s.clauses
}

func (s *Statement) Accept(v Visitor) { visit(s, v) }

func (s *Statement) Children() []Visitable {
	children := make([]Visitable, len(s.clauses))
	for i, c := range s.clauses {
		children[i] = c
	}
	return children
}

func (s *Statement) Separated() bool { return false }
