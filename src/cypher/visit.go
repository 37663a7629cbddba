package cypher

// Visitable is implemented by every element of the statement tree.
// Elements are immutable once constructed; a statement owns its subtree
// exclusively, so the structure is always a tree, never a graph.
type Visitable interface {
	// Accept makes the element and its children visible to the visitor.
	// It is the sole entry point for traversal.
	Accept(v Visitor)
	// Children returns the direct children in traversal order. Leaf
	// elements return nil.
	Children() []Visitable
	// Separated reports whether the children form a homogeneous list
	// whose siblings must be joined by a separator when rendered.
	Separated() bool
}

// Visitor receives traversal callbacks for each element of the tree.
// PreEnter and PostLeave bracket the whole visit of an element including
// its children; Enter and Leave fire directly before and after the
// children are visited. An implementation that has nothing to do for a
// given element simply ignores the callback.
type Visitor interface {
	PreEnter(Visitable)
	Enter(Visitable)
	Leave(Visitable)
	PostLeave(Visitable)
}

// visit drives the depth-first walk shared by all Accept implementations.
func visit(n Visitable, v Visitor) {
	v.PreEnter(n)
	v.Enter(n)
	for _, child := range n.Children() {
		if child != nil {
			child.Accept(v)
		}
	}
	v.Leave(n)
	v.PostLeave(n)
}
