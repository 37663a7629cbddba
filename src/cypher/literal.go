package cypher

import (
	"strconv"
	"strings"
)

// Literal is an expression that renders itself as an inline value.
type Literal interface {
	Expression
	// AsString returns the literal in its textual Cypher form.
	AsString() string
}

// StringLiteral renders as a single-quoted Cypher string.
type StringLiteral struct {
	content string
}

// NewStringLiteral creates a string literal.
func NewStringLiteral(content string) *StringLiteral {
	return &StringLiteral{content: content}
}

// AsString quotes the content with single quotes. Backslashes are
// escaped before quotes so a trailing backslash cannot swallow the
// closing quote.
func (l *StringLiteral) AsString() string {
	escaped := strings.ReplaceAll(l.content, `\`, `\\`)
	escaped = strings.ReplaceAll(escaped, "'", `\'`)
	return "'" + escaped + "'"
}

func (l *StringLiteral) Accept(v Visitor)      { visit(l, v) }
func (l *StringLiteral) Children() []Visitable { return nil }
func (l *StringLiteral) Separated() bool       { return false }
func (l *StringLiteral) expression()           {}

// IntegerLiteral renders as a plain base-10 integer.
type IntegerLiteral struct {
	value int64
}

// NewIntegerLiteral creates an integer literal.
func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{value: value}
}

// Value returns the wrapped integer.
func (l *IntegerLiteral) Value() int64 { return l.value }

func (l *IntegerLiteral) AsString() string      { return strconv.FormatInt(l.value, 10) }
func (l *IntegerLiteral) Accept(v Visitor)      { visit(l, v) }
func (l *IntegerLiteral) Children() []Visitable { return nil }
func (l *IntegerLiteral) Separated() bool       { return false }
func (l *IntegerLiteral) expression()           {}

// FloatLiteral renders in the shortest form that round-trips.
type FloatLiteral struct {
	value float64
}

// NewFloatLiteral creates a float literal.
func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{value: value}
}

func (l *FloatLiteral) AsString() string      { return strconv.FormatFloat(l.value, 'g', -1, 64) }
func (l *FloatLiteral) Accept(v Visitor)      { visit(l, v) }
func (l *FloatLiteral) Children() []Visitable { return nil }
func (l *FloatLiteral) Separated() bool       { return false }
func (l *FloatLiteral) expression()           {}

// BooleanLiteral renders as true or false.
type BooleanLiteral struct {
	value bool
}

// NewBooleanLiteral creates a boolean literal.
func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{value: value}
}

func (l *BooleanLiteral) AsString() string      { return strconv.FormatBool(l.value) }
func (l *BooleanLiteral) Accept(v Visitor)      { visit(l, v) }
func (l *BooleanLiteral) Children() []Visitable { return nil }
func (l *BooleanLiteral) Separated() bool       { return false }
func (l *BooleanLiteral) expression()           {}
