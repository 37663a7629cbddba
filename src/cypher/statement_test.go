package cypher

import "testing"

func TestStatementNormalizesClauseOrder(t *testing.T) {
	match := NewMatch(NewPattern(NewNode("Person").Named("n")))
	ret := NewReturn(NewSymbolicName("n"))

	statement := NewStatement(ret, match)
	children := statement.Children()
	if len(children) != 2 {
		t.Fatalf("expected 2 clauses, got %d", len(children))
	}
	if _, ok := children[0].(*Match); !ok {
		t.Errorf("expected MATCH first, got %T", children[0])
	}
	if _, ok := children[1].(*Return); !ok {
		t.Errorf("expected RETURN last, got %T", children[1])
	}
}

func TestStatementKeepsEqualRankOrder(t *testing.T) {
	first := NewMatch(NewPattern(NewNode().Named("a")))
	second := NewMatch(NewPattern(NewNode().Named("b")))

	statement := NewStatement(second, first)
	children := statement.Children()
	if children[0] != second || children[1] != first {
		t.Error("clauses of equal rank should keep their relative position")
	}
}

func TestWhereIsNotAStandaloneClause(t *testing.T) {
	var v Visitable = NewWhere(NewIsNull(NewSymbolicName("n")))
	if _, ok := v.(Clause); ok {
		t.Error("Where must only appear as a child of Match, never at statement level")
	}
}

func TestStatementIsNotSeparated(t *testing.T) {
	statement := NewStatement(NewReturn(NewSymbolicName("n")))
	if statement.Separated() {
		t.Error("statement must not be a separated list")
	}
}

func TestExpressionListSeparated(t *testing.T) {
	list := NewExpressionList(NewSymbolicName("a"), NewSymbolicName("b"))
	if !list.Separated() {
		t.Error("expression list must be a separated list")
	}
	if len(list.Children()) != 2 {
		t.Errorf("expected 2 children, got %d", len(list.Children()))
	}
}

func TestCompoundConditionInterleavesOperator(t *testing.T) {
	a := NewComparison(NewSymbolicName("a"), "=", NewIntegerLiteral(1))
	b := NewComparison(NewSymbolicName("b"), "=", NewIntegerLiteral(2))
	c := NewComparison(NewSymbolicName("c"), "=", NewIntegerLiteral(3))

	children := And(a, b, c).Children()
	if len(children) != 5 {
		t.Fatalf("expected 5 children, got %d", len(children))
	}
	for i := 1; i < len(children); i += 2 {
		op, ok := children[i].(*Operator)
		if !ok {
			t.Fatalf("expected operator at position %d, got %T", i, children[i])
		}
		if op.Symbol() != "AND" {
			t.Errorf("expected AND, got %s", op.Symbol())
		}
	}
}

func TestCompoundConditionChildrenFormATree(t *testing.T) {
	a := NewComparison(NewSymbolicName("a"), "=", NewIntegerLiteral(1))
	b := NewComparison(NewSymbolicName("b"), "=", NewIntegerLiteral(2))
	c := NewComparison(NewSymbolicName("c"), "=", NewIntegerLiteral(3))

	children := And(a, b, c).Children()
	if children[1] == children[3] {
		t.Error("operator slots must not share one node between positions")
	}
}

func TestConditionWrappersExposeChild(t *testing.T) {
	inner := NewComparison(NewSymbolicName("n").Property("age"), ">", NewIntegerLiteral(21))

	not := Not(inner)
	if children := not.Children(); len(children) != 1 || children[0] != Visitable(inner) {
		t.Errorf("expected NOT to wrap its condition, got %v", children)
	}

	prop := NewSymbolicName("n").Property("name")
	isNull := NewIsNull(prop)
	if children := isNull.Children(); len(children) != 1 || children[0] != Visitable(prop) {
		t.Errorf("expected IS NULL to wrap its expression, got %v", children)
	}
	if NewIsNotNull(prop).IsNegated() != true || isNull.IsNegated() != false {
		t.Error("negation flag mixed up")
	}
}

func TestNodeNamedReturnsCopy(t *testing.T) {
	anonymous := NewNode("Person")
	named := anonymous.Named("n")

	if anonymous.SymbolicName() != nil {
		t.Error("Named must not mutate the receiver")
	}
	if named.SymbolicName() == nil || named.SymbolicName().Name() != "n" {
		t.Error("expected the copy to carry the symbolic name")
	}
}

func TestRelationshipDirections(t *testing.T) {
	a := NewNode().Named("a")
	b := NewNode().Named("b")

	tests := []struct {
		name      string
		rel       *Relationship
		direction Direction
	}{
		{"outgoing", a.RelationshipTo(b, "KNOWS"), Outgoing},
		{"incoming", a.RelationshipFrom(b, "KNOWS"), Incoming},
		{"undirected", a.RelationshipBetween(b, "KNOWS"), Undirected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rel.Detail().Direction(); got != tt.direction {
				t.Errorf("expected direction %v, got %v", tt.direction, got)
			}
			if types := tt.rel.Detail().Types(); len(types) != 1 || types[0] != "KNOWS" {
				t.Errorf("unexpected types %v", types)
			}
		})
	}
}

func TestDirectionSymbols(t *testing.T) {
	tests := []struct {
		direction   Direction
		left, right string
	}{
		{Outgoing, "-", "->"},
		{Incoming, "<-", "-"},
		{Undirected, "-", "-"},
	}

	for _, tt := range tests {
		if tt.direction.SymbolLeft() != tt.left {
			t.Errorf("direction %v: expected left %q, got %q", tt.direction, tt.left, tt.direction.SymbolLeft())
		}
		if tt.direction.SymbolRight() != tt.right {
			t.Errorf("direction %v: expected right %q, got %q", tt.direction, tt.right, tt.direction.SymbolRight())
		}
	}
}

func TestLiteralAsString(t *testing.T) {
	tests := []struct {
		name     string
		literal  Literal
		expected string
	}{
		{"string", NewStringLiteral("X"), "'X'"},
		{"string with quote", NewStringLiteral("it's"), `'it\'s'`},
		{"string with backslash", NewStringLiteral(`a\b`), `'a\\b'`},
		{"string ending in backslash", NewStringLiteral(`a\`), `'a\\'`},
		{"integer", NewIntegerLiteral(42), "42"},
		{"float", NewFloatLiteral(3.5), "3.5"},
		{"bool true", NewBooleanLiteral(true), "true"},
		{"bool false", NewBooleanLiteral(false), "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.literal.AsString(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}
