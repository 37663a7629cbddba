package cypher

// Order is the ORDER BY section: a separated list of sort items.
type Order struct {
	items []*SortItem
}

// NewOrder creates an ORDER BY over the given sort items.
func NewOrder(items ...*SortItem) *Order {
	return &Order{items: items}
}

func (o *Order) Accept(v Visitor) { visit(o, v) }

func (o *Order) Children() []Visitable {
	children := make([]Visitable, len(o.items))
	for i, item := range o.items {
		children[i] = item
	}
	return children
}

func (o *Order) Separated() bool { return true }
func (o *Order) clause()         {}

// SortDirection is the rendered ascending/descending marker.
type SortDirection struct {
	symbol string
}

// Symbol returns ASC or DESC.
func (d *SortDirection) Symbol() string { return d.symbol }

func (d *SortDirection) Accept(v Visitor)      { visit(d, v) }
func (d *SortDirection) Children() []Visitable { return nil }
func (d *SortDirection) Separated() bool       { return false }

// SortItem pairs an expression with an optional explicit direction.
type SortItem struct {
	expression Expression
	direction  *SortDirection
}

// Sort creates a sort item without an explicit direction.
func Sort(expression Expression) *SortItem {
	return &SortItem{expression: expression}
}

// Ascending creates an explicitly ascending sort item.
func Ascending(expression Expression) *SortItem {
	return &SortItem{expression: expression, direction: &SortDirection{symbol: "ASC"}}
}

// Descending creates a descending sort item.
func Descending(expression Expression) *SortItem {
	return &SortItem{expression: expression, direction: &SortDirection{symbol: "DESC"}}
}

func (s *SortItem) Accept(v Visitor) { visit(s, v) }

func (s *SortItem) Children() []Visitable {
	children := []Visitable{s.expression}
	if s.direction != nil {
		children = append(children, s.direction)
	}
	return children
}

func (s *SortItem) Separated() bool { return false }
