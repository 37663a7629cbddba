package cypher

// Return projects the statement's results. Ordering and pagination are
// attached here because their keywords follow the projected expressions.
type Return struct {
	distinct bool
	items    *ExpressionList
	order    *Order
	skip     *Skip
	limit    *Limit
}

// NewReturn creates a RETURN clause over the given expressions.
func NewReturn(items ...Expression) *Return {
	return &Return{items: NewExpressionList(items...)}
}

// Distinct returns a copy projecting distinct results.
func (r *Return) Distinct() *Return {
	c := *r
	c.distinct = true
	return &c
}

// OrderBy returns a copy sorted by the given items.
func (r *Return) OrderBy(items ...*SortItem) *Return {
	c := *r
	c.order = NewOrder(items...)
	return &c
}

// Skip returns a copy skipping the given number of records.
func (r *Return) Skip(amount int64) *Return {
	c := *r
	c.skip = NewSkip(amount)
	return &c
}

// Limit returns a copy limited to the given number of records.
func (r *Return) Limit(amount int64) *Return {
	c := *r
	c.limit = NewLimit(amount)
	return &c
}

// IsDistinct reports whether DISTINCT projection was requested.
func (r *Return) IsDistinct() bool { return r.distinct }

func (r *Return) Accept(v Visitor) { visit(r, v) }

func (r *Return) Children() []Visitable {
	children := []Visitable{r.items}
	if r.order != nil {
		children = append(children, r.order)
	}
	if r.skip != nil {
		children = append(children, r.skip)
	}
	if r.limit != nil {
		children = append(children, r.limit)
	}
	return children
}

func (r *Return) Separated() bool { return false }
func (r *Return) clause()         {}
