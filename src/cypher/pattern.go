package cypher

// PatternElement is anything that can appear inside a MATCH pattern.
type PatternElement interface {
	Visitable
	patternElement()
}

// Pattern is the comma-separated list of pattern elements in a MATCH.
type Pattern struct {
	elements []PatternElement
}

// NewPattern creates a pattern over the given elements.
func NewPattern(elements ...PatternElement) *Pattern {
	return &Pattern{elements: elements}
}

func (p *Pattern) Accept(v Visitor) { visit(p, v) }

func (p *Pattern) Children() []Visitable {
	children := make([]Visitable, len(p.elements))
	for i, e := range p.elements {
		children[i] = e
	}
	return children
}

func (p *Pattern) Separated() bool { return true }

// Direction of a relationship between two nodes.
type Direction int

const (
	// Outgoing renders as (a)-[...]->(b).
	Outgoing Direction = iota
	// Incoming renders as (a)<-[...]-(b).
	Incoming
	// Undirected renders as (a)-[...]-(b).
	Undirected
)

// SymbolLeft returns the glyph preceding the bracketed detail.
func (d Direction) SymbolLeft() string {
	if d == Incoming {
		return "<-"
	}
	return "-"
}

// SymbolRight returns the glyph following the bracketed detail.
func (d Direction) SymbolRight() string {
	if d == Outgoing {
		return "->"
	}
	return "-"
}

// Node is a node pattern: an optional symbolic name plus an ordered set
// of labels, e.g. (n:Person:Employee).
type Node struct {
	name   *SymbolicName
	labels []string
}

// NewNode creates an anonymous node pattern with the given labels.
func NewNode(labels ...string) *Node {
	return &Node{labels: labels}
}

// Named returns a copy of this node bound to the given symbolic name.
func (n *Node) Named(name string) *Node {
	return &Node{name: NewSymbolicName(name), labels: n.labels}
}

// SymbolicName returns the bound name or nil for an anonymous node.
func (n *Node) SymbolicName() *SymbolicName { return n.name }

// IsLabeled reports whether at least one label is present.
func (n *Node) IsLabeled() bool { return len(n.labels) > 0 }

// Labels returns the labels in declaration order.
func (n *Node) Labels() []string {
	labels := make([]string, len(n.labels))
	copy(labels, n.labels)
	return labels
}

// Property returns an accessor for a property of this node. The node
// must be named.
func (n *Node) Property(name string) *Property {
	return n.name.Property(name)
}

// RelationshipTo creates an outgoing relationship to the other node.
func (n *Node) RelationshipTo(other *Node, types ...string) *Relationship {
	return newRelationship(n, other, Outgoing, types)
}

// RelationshipFrom creates an incoming relationship from the other node.
func (n *Node) RelationshipFrom(other *Node, types ...string) *Relationship {
	return newRelationship(n, other, Incoming, types)
}

// RelationshipBetween creates an undirected relationship to the other node.
func (n *Node) RelationshipBetween(other *Node, types ...string) *Relationship {
	return newRelationship(n, other, Undirected, types)
}

func (n *Node) Accept(v Visitor)      { visit(n, v) }
func (n *Node) Children() []Visitable { return nil }
func (n *Node) Separated() bool       { return false }
func (n *Node) patternElement()       {}

// RelationshipDetail is the bracketed part of a relationship pattern:
// direction, optional symbolic name and the ordered set of types.
type RelationshipDetail struct {
	direction Direction
	name      *SymbolicName
	types     []string
}

// Direction returns the direction of the relationship.
func (d *RelationshipDetail) Direction() Direction { return d.direction }

// SymbolicName returns the bound name or nil.
func (d *RelationshipDetail) SymbolicName() *SymbolicName { return d.name }

// IsTyped reports whether at least one relationship type is present.
func (d *RelationshipDetail) IsTyped() bool { return len(d.types) > 0 }

// Types returns the relationship types in declaration order.
func (d *RelationshipDetail) Types() []string {
	types := make([]string, len(d.types))
	copy(types, d.types)
	return types
}

func (d *RelationshipDetail) Accept(v Visitor)      { visit(d, v) }
func (d *RelationshipDetail) Children() []Visitable { return nil }
func (d *RelationshipDetail) Separated() bool       { return false }

// Relationship is a single-hop pattern of two nodes joined by a detail,
// e.g. (a)-[r:KNOWS]->(b).
type Relationship struct {
	left   *Node
	detail *RelationshipDetail
	right  *Node
}

func newRelationship(left, right *Node, direction Direction, types []string) *Relationship {
	return &Relationship{
		left:   left,
		detail: &RelationshipDetail{direction: direction, types: types},
		right:  right,
	}
}

// Named returns a copy of this relationship with its detail bound to the
// given symbolic name.
func (r *Relationship) Named(name string) *Relationship {
	detail := &RelationshipDetail{
		direction: r.detail.direction,
		name:      NewSymbolicName(name),
		types:     r.detail.types,
	}
	return &Relationship{left: r.left, detail: detail, right: r.right}
}

// Detail returns the bracketed middle part of the pattern.
func (r *Relationship) Detail() *RelationshipDetail { return r.detail }

func (r *Relationship) Accept(v Visitor) { visit(r, v) }

func (r *Relationship) Children() []Visitable {
	return []Visitable{r.left, r.detail, r.right}
}

func (r *Relationship) Separated() bool { return false }
func (r *Relationship) patternElement() {}
