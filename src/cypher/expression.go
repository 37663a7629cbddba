package cypher

// Expression defines any value that can appear inside a Cypher statement.
type Expression interface {
	Visitable
	expression()
}

// SymbolicName is a variable or alias identifier bound to a node or
// relationship in a pattern.
type SymbolicName struct {
	name string
}

// NewSymbolicName creates a symbolic name.
func NewSymbolicName(name string) *SymbolicName {
	return &SymbolicName{name: name}
}

// Name returns the raw identifier.
func (s *SymbolicName) Name() string { return s.name }

// Property returns an accessor for a property of the element bound to
// this symbolic name, e.g. n.name.
func (s *SymbolicName) Property(name string) *Property {
	return &Property{parent: s, name: name}
}

func (s *SymbolicName) Accept(v Visitor)      { visit(s, v) }
func (s *SymbolicName) Children() []Visitable { return nil }
func (s *SymbolicName) Separated() bool       { return false }
func (s *SymbolicName) expression()           {}

// Property is the access to a named property of a bound element.
type Property struct {
	parent *SymbolicName
	name   string
}

// ParentAlias returns the identifier the property is read from.
func (p *Property) ParentAlias() string { return p.parent.Name() }

// Name returns the property name.
func (p *Property) Name() string { return p.name }

func (p *Property) Accept(v Visitor)      { visit(p, v) }
func (p *Property) Children() []Visitable { return nil }
func (p *Property) Separated() bool       { return false }
func (p *Property) expression()           {}

// Operator is a leaf emitted between the operands it belongs to. Both
// comparison operators and the logical operators of condition chains are
// modelled this way so the renderer needs a single handler for them.
type Operator struct {
	symbol string
}

// Symbol returns the textual operator, e.g. "=", "AND".
func (o *Operator) Symbol() string { return o.symbol }

func (o *Operator) Accept(v Visitor)      { visit(o, v) }
func (o *Operator) Children() []Visitable { return nil }
func (o *Operator) Separated() bool       { return false }

// AliasedExpression decorates an expression with an alias, rendered as
// "expression AS alias".
type AliasedExpression struct {
	delegate Expression
	alias    string
}

// NewAliasedExpression aliases the given expression.
func NewAliasedExpression(delegate Expression, alias string) *AliasedExpression {
	return &AliasedExpression{delegate: delegate, alias: alias}
}

// Alias returns the alias.
func (a *AliasedExpression) Alias() string { return a.alias }

func (a *AliasedExpression) Accept(v Visitor)      { visit(a, v) }
func (a *AliasedExpression) Children() []Visitable { return []Visitable{a.delegate} }
func (a *AliasedExpression) Separated() bool       { return false }
func (a *AliasedExpression) expression()           {}
