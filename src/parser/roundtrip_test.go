package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/seuros/cypher-ast/src/renderer"
)

// TestRoundTripStability pins the statements that must survive a
// parse/render cycle unchanged. A failure here is a regression in
// either the grammar or the renderer.
func TestRoundTripStability(t *testing.T) {
	parser, err := New()
	require.NoError(t, err)

	fixtures := []struct {
		name  string
		query string
	}{
		{
			name:  "Simple match and return",
			query: "MATCH (n:Person) RETURN n",
		},
		{
			name:  "Optional match",
			query: "OPTIONAL MATCH (n:Person) RETURN n",
		},
		{
			name:  "Property comparison",
			query: "MATCH (n:Person) WHERE n.name = 'X' RETURN n",
		},
		{
			name:  "String with escaped backslash",
			query: `MATCH (n) WHERE n.path = 'a\\b' RETURN n`,
		},
		{
			name:  "Parenthesized condition chain",
			query: "MATCH (n:Person) WHERE (n.age >= 18 AND n.name IS NOT NULL) RETURN n",
		},
		{
			name:  "Negated condition",
			query: "MATCH (n) WHERE NOT (n.deleted = true) RETURN n",
		},
		{
			name:  "Relationship pattern",
			query: "MATCH (a)-[r:KNOWS]->(b) RETURN a, b",
		},
		{
			name:  "Incoming relationship",
			query: "MATCH (a)<-[:KNOWS]-(b) RETURN a",
		},
		{
			name:  "Multiple labels",
			query: "MATCH (n:Person:Employee) RETURN n",
		},
		{
			name:  "Quoted label",
			query: "MATCH (n:`Some Label`) RETURN n",
		},
		{
			name:  "Aliased function call",
			query: "MATCH (n:Person) RETURN count(n) AS total",
		},
		{
			name:  "Distinct projection",
			query: "MATCH (n:Person) RETURN DISTINCT n",
		},
		{
			name:  "Ordering and pagination",
			query: "MATCH (n:Person) RETURN n ORDER BY n.age DESC, n.name SKIP 5 LIMIT 10",
		},
		{
			name:  "With pipeline",
			query: "MATCH (n:Person) WITH n RETURN n.name",
		},
		{
			name:  "Detach delete",
			query: "MATCH (n:Person) DETACH DELETE n",
		},
		{
			name:  "Multiple pattern elements",
			query: "MATCH (a:Person), (b:Person) RETURN a, b",
		},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			statement, err := parser.Parse(fixture.query)
			require.NoError(t, err, "%s should parse", fixture.name)
			require.NotNil(t, statement)

			rendered := renderer.Render(statement)
			require.Equal(t, fixture.query, rendered, "round-trip drifted")

			reparsed, err := parser.Parse(rendered)
			require.NoError(t, err, "rendered output should parse again")
			require.Equal(t, rendered, renderer.Render(reparsed), "second cycle drifted")
		})
	}
}

// TestRenderNormalizesInput pins cases where parse/render intentionally
// produces a canonical form differing from the input.
func TestRenderNormalizesInput(t *testing.T) {
	parser, err := New()
	require.NoError(t, err)

	fixtures := []struct {
		name     string
		query    string
		expected string
	}{
		{
			name:     "Keywords upper-cased",
			query:    "match (n:Person) return n",
			expected: "MATCH (n:Person) RETURN n",
		},
		{
			name:     "Condition chains gain parentheses",
			query:    "MATCH (n) WHERE n.age >= 18 AND n.age <= 65 RETURN n",
			expected: "MATCH (n) WHERE (n.age >= 18 AND n.age <= 65) RETURN n",
		},
		{
			name:     "Redundant grouping collapses",
			query:    "MATCH (n) WHERE (n.age > 21) RETURN n",
			expected: "MATCH (n) WHERE n.age > 21 RETURN n",
		},
		{
			name:     "Whitespace collapses",
			query:    "MATCH   (n:Person)\n  RETURN n",
			expected: "MATCH (n:Person) RETURN n",
		},
		{
			name:     "Clause order is canonical",
			query:    "RETURN n MATCH (n:Person)",
			expected: "MATCH (n:Person) RETURN n",
		},
	}

	for _, fixture := range fixtures {
		t.Run(fixture.name, func(t *testing.T) {
			statement, err := parser.Parse(fixture.query)
			require.NoError(t, err)
			require.Equal(t, fixture.expected, renderer.Render(statement))
		})
	}
}
