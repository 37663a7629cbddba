package cypher

import (
	"fmt"
	"strings"
)

// Describe returns an indented structural dump of the tree below root,
// one element per line. It is meant for diagnostics, not for parsing.
func Describe(root Visitable) string {
	d := &describeVisitor{}
	root.Accept(d)
	return d.builder.String()
}

// describeVisitor is the second visitor shipped with the library. It
// shares the traversal engine with the renderer but only reports
// structure.
type describeVisitor struct {
	builder strings.Builder
	depth   int
}

func (d *describeVisitor) PreEnter(Visitable) { d.depth++ }

func (d *describeVisitor) Enter(v Visitable) {
	d.builder.WriteString(strings.Repeat("  ", d.depth-1))
	d.builder.WriteString(kindOf(v))
	if detail := detailOf(v); detail != "" {
		d.builder.WriteByte(' ')
		d.builder.WriteString(detail)
	}
	d.builder.WriteByte('\n')
}

func (d *describeVisitor) Leave(Visitable) {}

func (d *describeVisitor) PostLeave(Visitable) { d.depth-- }

func kindOf(v Visitable) string {
	switch v.(type) {
	case *Statement:
		return "Statement"
	case *Match:
		return "Match"
	case *Where:
		return "Where"
	case *Return:
		return "Return"
	case *With:
		return "With"
	case *Delete:
		return "Delete"
	case *Order:
		return "Order"
	case *SortItem:
		return "SortItem"
	case *SortDirection:
		return "SortDirection"
	case *Skip:
		return "Skip"
	case *Limit:
		return "Limit"
	case *Pattern:
		return "Pattern"
	case *Node:
		return "Node"
	case *Relationship:
		return "Relationship"
	case *RelationshipDetail:
		return "RelationshipDetail"
	case *SymbolicName:
		return "SymbolicName"
	case *Property:
		return "Property"
	case *Operator:
		return "Operator"
	case *Comparison:
		return "Comparison"
	case *CompoundCondition:
		return "CompoundCondition"
	case *NotCondition:
		return "NotCondition"
	case *IsNull:
		return "IsNull"
	case *FunctionInvocation:
		return "FunctionInvocation"
	case *ExpressionList:
		return "ExpressionList"
	case *AliasedExpression:
		return "AliasedExpression"
	case *StringLiteral:
		return "StringLiteral"
	case *IntegerLiteral:
		return "IntegerLiteral"
	case *FloatLiteral:
		return "FloatLiteral"
	case *BooleanLiteral:
		return "BooleanLiteral"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func detailOf(v Visitable) string {
	switch n := v.(type) {
	case *Match:
		if n.IsOptional() {
			return "optional"
		}
	case *Node:
		parts := make([]string, 0, 2)
		if name := n.SymbolicName(); name != nil {
			parts = append(parts, name.Name())
		}
		if n.IsLabeled() {
			parts = append(parts, ":"+strings.Join(n.Labels(), ":"))
		}
		return strings.Join(parts, " ")
	case *RelationshipDetail:
		if n.IsTyped() {
			return ":" + strings.Join(n.Types(), ":")
		}
	case *SymbolicName:
		return n.Name()
	case *Property:
		return n.ParentAlias() + "." + n.Name()
	case *Operator:
		return n.Symbol()
	case *SortDirection:
		return n.Symbol()
	case *FunctionInvocation:
		return n.FunctionName()
	case *AliasedExpression:
		return "AS " + n.Alias()
	case Literal:
		return n.AsString()
	}
	return ""
}
