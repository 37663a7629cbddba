package parser

import (
	"fmt"
	"strings"

	"github.com/seuros/cypher-ast/src/cypher"
)

func convertToStatement(parsed *query) (*cypher.Statement, error) {
	var (
		matches []*cypher.Match
		with    *cypher.With
		del     *cypher.Delete
		ret     *cypher.Return
	)

	// WHERE may only directly follow its MATCH; anything in between
	// changes what the filter would apply to.
	lastWasMatch := false

	for _, c := range parsed.Clauses {
		switch {
		case c.Match != nil:
			match, err := convertMatch(c.Match)
			if err != nil {
				return nil, err
			}
			matches = append(matches, match)

		case c.Where != nil:
			if !lastWasMatch {
				return nil, fmt.Errorf("WHERE must directly follow a MATCH pattern")
			}
			condition, err := convertOr(c.Where.Condition)
			if err != nil {
				return nil, err
			}
			matches[len(matches)-1] = matches[len(matches)-1].Where(condition)

		case c.With != nil:
			if with != nil {
				return nil, fmt.Errorf("statement has more than one WITH clause")
			}
			items, err := convertReturnItems(c.With.Items)
			if err != nil {
				return nil, err
			}
			with = cypher.NewWith(items...)
			if c.With.Distinct {
				with = with.Distinct()
			}

		case c.Delete != nil:
			if del != nil {
				return nil, fmt.Errorf("statement has more than one DELETE clause")
			}
			exprs := make([]cypher.Expression, 0, len(c.Delete.Exprs))
			for _, e := range c.Delete.Exprs {
				expr, err := convertPrimary(e)
				if err != nil {
					return nil, err
				}
				exprs = append(exprs, expr)
			}
			if c.Delete.Detach {
				del = cypher.NewDetachDelete(exprs...)
			} else {
				del = cypher.NewDelete(exprs...)
			}

		case c.Return != nil:
			if ret != nil {
				return nil, fmt.Errorf("statement has more than one RETURN clause")
			}
			items, err := convertReturnItems(c.Return.Items)
			if err != nil {
				return nil, err
			}
			ret = cypher.NewReturn(items...)
			if c.Return.Distinct {
				ret = ret.Distinct()
			}

		case c.Order != nil:
			if ret == nil {
				return nil, fmt.Errorf("ORDER BY without a preceding RETURN")
			}
			items := make([]*cypher.SortItem, 0, len(c.Order.Items))
			for _, item := range c.Order.Items {
				converted, err := convertSortItem(item)
				if err != nil {
					return nil, err
				}
				items = append(items, converted)
			}
			ret = ret.OrderBy(items...)

		case c.Skip != nil:
			if ret == nil {
				return nil, fmt.Errorf("SKIP without a preceding RETURN")
			}
			ret = ret.Skip(c.Skip.Amount)

		case c.Limit != nil:
			if ret == nil {
				return nil, fmt.Errorf("LIMIT without a preceding RETURN")
			}
			ret = ret.Limit(c.Limit.Amount)
		}

		lastWasMatch = c.Match != nil
	}

	clauses := make([]cypher.Clause, 0, len(matches)+3)
	for _, m := range matches {
		clauses = append(clauses, m)
	}
	if with != nil {
		clauses = append(clauses, with)
	}
	if del != nil {
		clauses = append(clauses, del)
	}
	if ret != nil {
		clauses = append(clauses, ret)
	}
	if len(clauses) == 0 {
		return nil, fmt.Errorf("statement has no clauses")
	}

	return cypher.NewStatement(clauses...), nil
}

func convertMatch(m *matchClause) (*cypher.Match, error) {
	elements := make([]cypher.PatternElement, 0, len(m.Pattern.Elements))
	for _, e := range m.Pattern.Elements {
		element, err := convertPatternElement(e)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}

	pattern := cypher.NewPattern(elements...)
	if m.Optional {
		return cypher.NewOptionalMatch(pattern), nil
	}
	return cypher.NewMatch(pattern), nil
}

func convertPatternElement(e *patternElement) (cypher.PatternElement, error) {
	left := convertNodePattern(e.Left)
	if e.Rel == nil {
		return left, nil
	}
	if e.Right == nil {
		return nil, fmt.Errorf("relationship pattern is missing its right-hand node")
	}

	right := convertNodePattern(e.Right)
	types := make([]string, 0, len(e.Rel.Types))
	for _, t := range e.Rel.Types {
		types = append(types, unquoteIdent(t))
	}

	var rel *cypher.Relationship
	switch {
	case e.Rel.Incoming && e.Rel.Outgoing:
		return nil, fmt.Errorf("relationship cannot point both ways")
	case e.Rel.Incoming:
		rel = left.RelationshipFrom(right, types...)
	case e.Rel.Outgoing:
		rel = left.RelationshipTo(right, types...)
	default:
		rel = left.RelationshipBetween(right, types...)
	}

	if e.Rel.Variable != "" {
		rel = rel.Named(e.Rel.Variable)
	}
	return rel, nil
}

func convertNodePattern(n *nodePattern) *cypher.Node {
	labels := make([]string, 0, len(n.Labels))
	for _, l := range n.Labels {
		labels = append(labels, unquoteIdent(l))
	}
	node := cypher.NewNode(labels...)
	if n.Variable != "" {
		node = node.Named(n.Variable)
	}
	return node
}

func convertOr(o *orCondition) (cypher.Condition, error) {
	conditions, err := convertAndChain(o)
	if err != nil {
		return nil, err
	}
	if len(conditions) == 1 {
		return conditions[0], nil
	}
	return cypher.Or(conditions[0], conditions[1], conditions[2:]...), nil
}

func convertAndChain(o *orCondition) ([]cypher.Condition, error) {
	parts := append([]*andCondition{o.First}, o.Rest...)
	conditions := make([]cypher.Condition, 0, len(parts))
	for _, part := range parts {
		condition, err := convertAnd(part)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, condition)
	}
	return conditions, nil
}

func convertAnd(a *andCondition) (cypher.Condition, error) {
	parts := append([]*unaryCondition{a.First}, a.Rest...)
	conditions := make([]cypher.Condition, 0, len(parts))
	for _, part := range parts {
		condition, err := convertUnary(part)
		if err != nil {
			return nil, err
		}
		conditions = append(conditions, condition)
	}
	if len(conditions) == 1 {
		return conditions[0], nil
	}
	return cypher.And(conditions[0], conditions[1], conditions[2:]...), nil
}

func convertUnary(u *unaryCondition) (cypher.Condition, error) {
	switch {
	case u.Not != nil:
		inner, err := convertUnary(u.Not)
		if err != nil {
			return nil, err
		}
		return cypher.Not(inner), nil
	case u.Group != nil:
		return convertOr(u.Group)
	default:
		return convertAtom(u.Atom)
	}
}

func convertAtom(a *atomCondition) (cypher.Condition, error) {
	left, err := convertPrimary(a.Left)
	if err != nil {
		return nil, err
	}

	switch {
	case a.IsNull != nil:
		if a.IsNull.Negated {
			return cypher.NewIsNotNull(left), nil
		}
		return cypher.NewIsNull(left), nil
	case a.Op != nil:
		if a.Right == nil {
			return nil, fmt.Errorf("comparison %q is missing its right-hand side", *a.Op)
		}
		right, err := convertPrimary(a.Right)
		if err != nil {
			return nil, err
		}
		return cypher.NewComparison(left, *a.Op, right), nil
	default:
		return nil, fmt.Errorf("bare expressions are not supported as conditions")
	}
}

func convertReturnItems(items []*returnItem) ([]cypher.Expression, error) {
	expressions := make([]cypher.Expression, 0, len(items))
	for _, item := range items {
		expr, err := convertPrimary(item.Expression)
		if err != nil {
			return nil, err
		}
		if item.Alias != nil {
			expr = cypher.NewAliasedExpression(expr, *item.Alias)
		}
		expressions = append(expressions, expr)
	}
	return expressions, nil
}

func convertSortItem(item *sortItem) (*cypher.SortItem, error) {
	expr, err := convertPrimary(item.Expression)
	if err != nil {
		return nil, err
	}
	switch strings.ToUpper(item.Direction) {
	case "":
		return cypher.Sort(expr), nil
	case "ASC", "ASCENDING":
		return cypher.Ascending(expr), nil
	case "DESC", "DESCENDING":
		return cypher.Descending(expr), nil
	default:
		return nil, fmt.Errorf("unknown sort direction %q", item.Direction)
	}
}

func convertPrimary(e *primaryExpr) (cypher.Expression, error) {
	switch {
	case e.Function != nil:
		args := make([]cypher.Expression, 0, len(e.Function.Args))
		for _, arg := range e.Function.Args {
			converted, err := convertPrimary(arg)
			if err != nil {
				return nil, err
			}
			args = append(args, converted)
		}
		return cypher.NewFunctionInvocation(e.Function.Name, args...), nil
	case e.Property != nil:
		return cypher.NewSymbolicName(e.Property.Variable).Property(e.Property.Property), nil
	case e.String != nil:
		return cypher.NewStringLiteral(unquoteString(*e.String)), nil
	case e.Float != nil:
		return cypher.NewFloatLiteral(*e.Float), nil
	case e.Int != nil:
		return cypher.NewIntegerLiteral(*e.Int), nil
	case e.Bool != nil:
		return cypher.NewBooleanLiteral(strings.EqualFold(*e.Bool, "true")), nil
	case e.Variable != nil:
		return cypher.NewSymbolicName(unquoteIdent(*e.Variable)), nil
	default:
		return nil, fmt.Errorf("empty expression")
	}
}
