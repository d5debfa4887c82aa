package parser

import (
	"strings"

	"github.com/shibukawa/mathtex/tokenizer"
)

// NodeKind represents the kind of an AST node
type NodeKind int

const (
	NodeAdd NodeKind = iota
	NodeSubtract
	NodeMultiply
	NodeDivide
	NodeNegate
	NodePower
	NodeIdentifier
	NodeNumber
	NodeFunctionCall
)

// String returns the string representation of NodeKind
func (k NodeKind) String() string {
	switch k {
	case NodeAdd:
		return "Add"
	case NodeSubtract:
		return "Subtract"
	case NodeMultiply:
		return "Multiply"
	case NodeDivide:
		return "Divide"
	case NodeNegate:
		return "Negate"
	case NodePower:
		return "Power"
	case NodeIdentifier:
		return "Identifier"
	case NodeNumber:
		return "Number"
	case NodeFunctionCall:
		return "FunctionCall"
	default:
		return "UNKNOWN"
	}
}

// Operator precedence levels. Precedence is a property of the node kind,
// fixed at construction and used solely to decide parenthesization during
// rendering. Higher binds tighter.
const (
	PrecAdditive       = 1 // Add, Subtract
	PrecMultiplicative = 2 // Multiply, Divide
	PrecNegate         = 3 // unary minus
	PrecPower          = 4 // right-associative exponentiation
	PrecLeaf           = 9 // Identifier, Number, FunctionCall
)

// Precedence returns the fixed operator precedence of the node kind
func (k NodeKind) Precedence() int {
	switch k {
	case NodeAdd, NodeSubtract:
		return PrecAdditive
	case NodeMultiply, NodeDivide:
		return PrecMultiplicative
	case NodeNegate:
		return PrecNegate
	case NodePower:
		return PrecPower
	default:
		return PrecLeaf
	}
}

// Node is a node in the abstract syntax tree of an expression.
//
// Token is the originating token, kept for error reporting and literal
// text. Children are owned exclusively by their parent; the tree is built
// bottom-up during parsing and never mutated afterwards.
type Node struct {
	Kind     NodeKind
	Token    tokenizer.Token
	Children []*Node
}

// Precedence returns the fixed operator precedence of the node
func (n *Node) Precedence() int {
	return n.Kind.Precedence()
}

// String returns an s-expression dump of the tree (for debugging)
func (n *Node) String() string {
	var builder strings.Builder

	n.dump(&builder)

	return builder.String()
}

func (n *Node) dump(builder *strings.Builder) {
	if len(n.Children) == 0 {
		builder.WriteString(n.Token.Value)
		return
	}

	builder.WriteByte('(')
	builder.WriteString(n.Token.Value)

	for _, child := range n.Children {
		builder.WriteByte(' ')
		child.dump(builder)
	}

	builder.WriteByte(')')
}
