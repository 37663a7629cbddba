package cypher

// Match is a MATCH or OPTIONAL MATCH clause over a pattern, with an
// optional attached WHERE.
type Match struct {
	optional bool
	pattern  *Pattern
	where    *Where
}

// NewMatch creates a MATCH clause.
func NewMatch(pattern *Pattern) *Match {
	return &Match{pattern: pattern}
}

// NewOptionalMatch creates an OPTIONAL MATCH clause.
func NewOptionalMatch(pattern *Pattern) *Match {
	return &Match{optional: true, pattern: pattern}
}

// Where returns a copy of this clause filtered by the given condition.
func (m *Match) Where(condition Condition) *Match {
	return &Match{optional: m.optional, pattern: m.pattern, where: NewWhere(condition)}
}

// IsOptional reports whether this is an OPTIONAL MATCH.
func (m *Match) IsOptional() bool { return m.optional }

func (m *Match) Accept(v Visitor) { visit(m, v) }

func (m *Match) Children() []Visitable {
	children := []Visitable{m.pattern}
	if m.where != nil {
		children = append(children, m.where)
	}
	return children
}

func (m *Match) Separated() bool { return false }
func (m *Match) clause()         {}
