package cypher

import (
	"strings"
	"testing"
)

// recordingVisitor captures the callback sequence for a traversal.
type recordingVisitor struct {
	events []string
}

func (r *recordingVisitor) PreEnter(v Visitable)  { r.events = append(r.events, "pre:"+kindOf(v)) }
func (r *recordingVisitor) Enter(v Visitable)     { r.events = append(r.events, "enter:"+kindOf(v)) }
func (r *recordingVisitor) Leave(v Visitable)     { r.events = append(r.events, "leave:"+kindOf(v)) }
func (r *recordingVisitor) PostLeave(v Visitable) { r.events = append(r.events, "post:"+kindOf(v)) }

func TestTraversalOrder(t *testing.T) {
	where := NewWhere(NewIsNull(NewSymbolicName("n").Property("name")))

	v := &recordingVisitor{}
	where.Accept(v)

	expected := []string{
		"pre:Where", "enter:Where",
		"pre:IsNull", "enter:IsNull",
		"pre:Property", "enter:Property", "leave:Property", "post:Property",
		"leave:IsNull", "post:IsNull",
		"leave:Where", "post:Where",
	}
	if len(v.events) != len(expected) {
		t.Fatalf("expected %d events, got %d: %v", len(expected), len(v.events), v.events)
	}
	for i, e := range expected {
		if v.events[i] != e {
			t.Errorf("event %d: expected %s, got %s", i, e, v.events[i])
		}
	}
}

func TestAcceptVisitsChildrenInOrder(t *testing.T) {
	list := NewExpressionList(NewSymbolicName("a"), NewSymbolicName("b"), NewSymbolicName("c"))

	v := &recordingVisitor{}
	list.Accept(v)

	var names []string
	for _, e := range v.events {
		if strings.HasPrefix(e, "enter:SymbolicName") {
			names = append(names, e)
		}
	}
	if len(names) != 3 {
		t.Fatalf("expected 3 symbolic names, got %d", len(names))
	}
}

func TestDescribe(t *testing.T) {
	statement := NewStatement(
		NewMatch(NewPattern(NewNode("Person").Named("n"))),
		NewReturn(NewSymbolicName("n")),
	)

	out := Describe(statement)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if lines[0] != "Statement" {
		t.Errorf("expected root line Statement, got %q", lines[0])
	}
	if !strings.Contains(out, "Node n :Person") {
		t.Errorf("expected node detail in dump:\n%s", out)
	}
	if !strings.Contains(out, "  Match") {
		t.Errorf("expected indented Match in dump:\n%s", out)
	}
}
