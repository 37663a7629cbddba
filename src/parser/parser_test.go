package parser

import (
	"strings"
	"testing"

	"github.com/seuros/cypher-ast/src/cypher"
)

func mustParse(t *testing.T, input string) *cypher.Statement {
	t.Helper()
	p, err := New()
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}
	statement, err := p.Parse(input)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", input, err)
	}
	return statement
}

func TestParseSimpleMatch(t *testing.T) {
	statement := mustParse(t, "MATCH (n:Person) RETURN n")

	dump := cypher.Describe(statement)
	if !strings.Contains(dump, "Match") {
		t.Errorf("expected a Match clause:\n%s", dump)
	}
	if !strings.Contains(dump, "Node n :Person") {
		t.Errorf("expected a labeled node:\n%s", dump)
	}
	if !strings.Contains(dump, "Return") {
		t.Errorf("expected a Return clause:\n%s", dump)
	}
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	statement := mustParse(t, "match (n:Person) return n")
	if !strings.Contains(cypher.Describe(statement), "Match") {
		t.Error("lower-case keywords should parse")
	}
}

func TestParseRelationshipPattern(t *testing.T) {
	statement := mustParse(t, "MATCH (a)-[r:KNOWS]->(b) RETURN a")
	dump := cypher.Describe(statement)
	if !strings.Contains(dump, "Relationship") {
		t.Errorf("expected a relationship:\n%s", dump)
	}
	if !strings.Contains(dump, "RelationshipDetail :KNOWS") {
		t.Errorf("expected a typed detail:\n%s", dump)
	}
}

func TestParseWhereAttachesToMatch(t *testing.T) {
	statement := mustParse(t, "MATCH (n:Person) WHERE n.age > 21 RETURN n")
	dump := cypher.Describe(statement)

	matchIdx := strings.Index(dump, "Match")
	whereIdx := strings.Index(dump, "Where")
	returnIdx := strings.Index(dump, "Return")
	if whereIdx < matchIdx || whereIdx > returnIdx {
		t.Errorf("WHERE should sit inside the MATCH clause:\n%s", dump)
	}
}

func TestParseRejectsMultipleStatements(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}
	if _, err := p.Parse("RETURN 1; RETURN 2"); err == nil {
		t.Error("expected multiple statements to be rejected")
	}
}

func TestParseRejectsEmptyInput(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}
	if _, err := p.Parse("   "); err == nil {
		t.Error("expected empty input to be rejected")
	}
}

func TestParseRejectsDanglingClauses(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{"where without match", "WHERE n.age > 21 RETURN n"},
		{"where after with", "MATCH (n) WITH count(n) AS c WHERE c > 2 RETURN c"},
		{"order without return", "MATCH (n) ORDER BY n.age"},
		{"skip without return", "MATCH (n) SKIP 5"},
		{"limit without return", "MATCH (n) LIMIT 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.Parse(tt.input); err == nil {
				t.Errorf("expected %q to be rejected", tt.input)
			}
		})
	}
}

func TestParseRejectsRepeatedClauses(t *testing.T) {
	p, err := New()
	if err != nil {
		t.Fatalf("failed to build parser: %v", err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{"double return", "MATCH (n) RETURN n RETURN m"},
		{"double with", "MATCH (n) WITH n WITH n RETURN n"},
		{"double delete", "MATCH (n) DELETE n DELETE n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := p.Parse(tt.input); err == nil {
				t.Errorf("expected %q to be rejected instead of dropping a clause", tt.input)
			}
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	valid := []string{"n", "node_1", "_x", "Person"}
	invalid := []string{"", "1n", "some label", "we`ird"}

	for _, s := range valid {
		if !IsValidIdentifier(s) {
			t.Errorf("expected %q to be a valid identifier", s)
		}
	}
	for _, s := range invalid {
		if IsValidIdentifier(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestUnquoteHelpers(t *testing.T) {
	if got := unquoteIdent("`Some Label`"); got != "Some Label" {
		t.Errorf("unexpected unquoted ident %q", got)
	}
	if got := unquoteIdent("plain"); got != "plain" {
		t.Errorf("plain idents should pass through, got %q", got)
	}
	if got := unquoteIdent("`we``ird`"); got != "we`ird" {
		t.Errorf("doubled backticks should collapse, got %q", got)
	}
	if got := unquoteString(`'it\'s'`); got != "it's" {
		t.Errorf("unexpected unquoted string %q", got)
	}
	if got := unquoteString(`'a\\'`); got != `a\` {
		t.Errorf("escaped backslash should collapse, got %q", got)
	}
}
