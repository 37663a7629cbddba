package cypher

// ExpressionList is an ordered, homogeneous list of expressions. Its
// children are joined with the list separator when rendered.
type ExpressionList struct {
	expressions []Expression
}

// NewExpressionList creates a list from the given expressions.
func NewExpressionList(expressions ...Expression) *ExpressionList {
	return &ExpressionList{expressions: expressions}
}

func (l *ExpressionList) Accept(v Visitor) { visit(l, v) }

func (l *ExpressionList) Children() []Visitable {
	children := make([]Visitable, len(l.expressions))
	for i, e := range l.expressions {
		children[i] = e
	}
	return children
}

func (l *ExpressionList) Separated() bool { return true }
func (l *ExpressionList) expression()     {}

// FunctionInvocation is a call such as count(n) or coalesce(a, b).
type FunctionInvocation struct {
	name      string
	arguments *ExpressionList
}

// NewFunctionInvocation creates a call of the named function over the
// given arguments.
func NewFunctionInvocation(name string, arguments ...Expression) *FunctionInvocation {
	return &FunctionInvocation{name: name, arguments: NewExpressionList(arguments...)}
}

// FunctionName returns the name of the invoked function.
func (f *FunctionInvocation) FunctionName() string { return f.name }

func (f *FunctionInvocation) Accept(v Visitor)      { visit(f, v) }
func (f *FunctionInvocation) Children() []Visitable { return []Visitable{f.arguments} }
func (f *FunctionInvocation) Separated() bool       { return false }
func (f *FunctionInvocation) expression()           {}
