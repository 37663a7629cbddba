package cypher

// Condition is an expression that evaluates to a boolean and may appear
// in a WHERE clause.
type Condition interface {
	Expression
	condition()
}

// Comparison relates two expressions through a comparison operator,
// e.g. n.name = 'Alice'.
type Comparison struct {
	left  Expression
	op    *Operator
	right Expression
}

// NewComparison creates a comparison with the given operator symbol.
func NewComparison(left Expression, operator string, right Expression) *Comparison {
	return &Comparison{left: left, op: &Operator{symbol: operator}, right: right}
}

func (c *Comparison) Accept(v Visitor) { visit(c, v) }

func (c *Comparison) Children() []Visitable {
	return []Visitable{c.left, c.op, c.right}
}

func (c *Comparison) Separated() bool { return false }
func (c *Comparison) expression()     {}
func (c *Comparison) condition()      {}

// CompoundCondition chains two or more conditions with one logical
// operator. It is always rendered parenthesized.
type CompoundCondition struct {
	operator   string
	conditions []Condition
}

// And combines conditions with AND.
func And(first, second Condition, remainder ...Condition) *CompoundCondition {
	return newCompoundCondition("AND", first, second, remainder)
}

// Or combines conditions with OR.
func Or(first, second Condition, remainder ...Condition) *CompoundCondition {
	return newCompoundCondition("OR", first, second, remainder)
}

func newCompoundCondition(operator string, first, second Condition, remainder []Condition) *CompoundCondition {
	conditions := make([]Condition, 0, 2+len(remainder))
	conditions = append(conditions, first, second)
	conditions = append(conditions, remainder...)
	return &CompoundCondition{operator: operator, conditions: conditions}
}

func (c *CompoundCondition) Accept(v Visitor) { visit(c, v) }

// Children interleaves the operator between the chained conditions, so
// the renderer emits it in order without bespoke bookkeeping. Each slot
// gets its own Operator value; the children stay a tree, nothing is
// shared between positions.
func (c *CompoundCondition) Children() []Visitable {
	children := make([]Visitable, 0, 2*len(c.conditions)-1)
	for i, cond := range c.conditions {
		if i > 0 {
			children = append(children, &Operator{symbol: c.operator})
		}
		children = append(children, cond)
	}
	return children
}

func (c *CompoundCondition) Separated() bool { return false }
func (c *CompoundCondition) expression()     {}
func (c *CompoundCondition) condition()      {}

// NotCondition negates the condition it wraps, rendered as "NOT (...)".
type NotCondition struct {
	inner Condition
}

// Not negates a condition.
func Not(condition Condition) *NotCondition {
	return &NotCondition{inner: condition}
}

func (n *NotCondition) Accept(v Visitor)      { visit(n, v) }
func (n *NotCondition) Children() []Visitable { return []Visitable{n.inner} }
func (n *NotCondition) Separated() bool       { return false }
func (n *NotCondition) expression()           {}
func (n *NotCondition) condition()            {}

// IsNull tests an expression against NULL, optionally negated.
type IsNull struct {
	expr    Expression
	negated bool
}

// NewIsNull creates an "expression IS NULL" condition.
func NewIsNull(expression Expression) *IsNull {
	return &IsNull{expr: expression}
}

// NewIsNotNull creates an "expression IS NOT NULL" condition.
func NewIsNotNull(expression Expression) *IsNull {
	return &IsNull{expr: expression, negated: true}
}

// IsNegated reports whether the test is IS NOT NULL.
func (i *IsNull) IsNegated() bool { return i.negated }

func (i *IsNull) Accept(v Visitor)      { visit(i, v) }
func (i *IsNull) Children() []Visitable { return []Visitable{i.expr} }
func (i *IsNull) Separated() bool       { return false }
func (i *IsNull) expression()           {}
func (i *IsNull) condition()            {}
