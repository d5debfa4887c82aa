package formatter

import (
	"fmt"
	"strings"

	"github.com/shibukawa/mathtex/parser"
)

// LaTeXFormatter converts a parsed expression tree into LaTeX math markup.
//
// Rendering is a pure recursive function dispatched on node kind, with no
// shared mutable state. Parentheses are inserted only where operator
// precedence and associativity require them.
type LaTeXFormatter struct{}

// NewLaTeXFormatter creates a new LaTeX formatter
func NewLaTeXFormatter() *LaTeXFormatter {
	return &LaTeXFormatter{}
}

// Format renders the AST rooted at node.
// The tree is assumed to have been produced by the parser; there is no
// separate validation pass. The first error aborts the whole rendering.
func (f *LaTeXFormatter) Format(node *parser.Node) (string, error) {
	return f.format(node)
}

func (f *LaTeXFormatter) format(n *parser.Node) (string, error) {
	switch n.Kind {
	case parser.NodeAdd, parser.NodeSubtract, parser.NodeMultiply:
		return f.formatBinary(n)
	case parser.NodeDivide:
		return f.formatFraction(n)
	case parser.NodePower:
		return f.formatPower(n)
	case parser.NodeNegate:
		return f.formatNegate(n)
	case parser.NodeIdentifier:
		return f.formatIdentifier(n)
	case parser.NodeNumber:
		return f.formatNumber(n)
	case parser.NodeFunctionCall:
		return f.formatFunctionCall(n)
	default:
		// Defensive fallback. Unreachable as long as every node kind has a
		// rendering rule above.
		return "", fmt.Errorf("%w: no rendering rule for node kind %s", ErrInternal, n.Kind)
	}
}

// formatBinary renders left-associative binary operators (Add, Subtract,
// Multiply). The left child is parenthesized when it binds strictly looser
// than this node; the right child also when it binds equally, because
// left-associativity is being overridden. Multiply renders as implicit
// multiplication with a plain space instead of '*'.
func (f *LaTeXFormatter) formatBinary(n *parser.Node) (string, error) {
	prec := n.Precedence()

	left, err := f.format(n.Children[0])
	if err != nil {
		return "", err
	}

	if n.Children[0].Precedence() < prec {
		left = parenthesize(left)
	}

	right, err := f.format(n.Children[1])
	if err != nil {
		return "", err
	}

	if n.Children[1].Precedence() <= prec {
		right = parenthesize(right)
	}

	op := n.Token.Value
	if n.Kind == parser.NodeMultiply {
		op = " "
	}

	return left + op + right, nil
}

// formatFraction renders division as \frac{numerator}{denominator}.
// The fraction notation is self-delimiting, so precedence of the children
// is irrelevant here.
func (f *LaTeXFormatter) formatFraction(n *parser.Node) (string, error) {
	numerator, err := f.format(n.Children[0])
	if err != nil {
		return "", err
	}

	denominator, err := f.format(n.Children[1])
	if err != nil {
		return "", err
	}

	return `\frac{` + numerator + `}{` + denominator + `}`, nil
}

// formatPower renders right-associative exponentiation. The base is
// parenthesized when it binds equally or looser. The exponent is
// parenthesized only when it binds strictly looser; otherwise it is
// wrapped in braces so multi-character exponents typeset correctly.
func (f *LaTeXFormatter) formatPower(n *parser.Node) (string, error) {
	prec := n.Precedence()

	base, err := f.format(n.Children[0])
	if err != nil {
		return "", err
	}

	if n.Children[0].Precedence() <= prec {
		base = parenthesize(base)
	}

	exponent, err := f.format(n.Children[1])
	if err != nil {
		return "", err
	}

	if n.Children[1].Precedence() < prec {
		exponent = parenthesize(exponent)
	} else {
		exponent = "{" + exponent + "}"
	}

	return base + "^" + exponent, nil
}

// formatNegate renders unary minus
func (f *LaTeXFormatter) formatNegate(n *parser.Node) (string, error) {
	operand, err := f.format(n.Children[0])
	if err != nil {
		return "", err
	}

	if n.Children[0].Precedence() < n.Precedence() {
		operand = parenthesize(operand)
	}

	return "-" + operand, nil
}

// formatIdentifier renders a single Latin letter verbatim and a Greek
// letter name as the backslash-prefixed macro. Anything else is a format
// error.
func (f *LaTeXFormatter) formatIdentifier(n *parser.Node) (string, error) {
	name := n.Token.Value

	if len(name) == 1 && isLatinLetter(name[0]) {
		return name, nil
	}

	if greekLetterNames[name] {
		return `\` + name, nil
	}

	return "", formatError(ErrInvalidIdentifier, n)
}

// formatNumber renders a numeric literal. Scientific notation is split at
// the exponent marker and rendered as mantissa \times 10^{exponent}.
func (f *LaTeXFormatter) formatNumber(n *parser.Node) (string, error) {
	literal := n.Token.Value

	if i := strings.IndexAny(literal, "eE"); i >= 0 {
		mantissa := literal[:i]
		exponent := literal[i+1:]

		return mantissa + ` \times 10^{` + exponent + `}`, nil
	}

	return literal, nil
}

// formatFunctionCall renders a call against the closed function whitelist.
// Unknown names and wrong argument counts are format errors; there is no
// path for arbitrary functions to render.
func (f *LaTeXFormatter) formatFunctionCall(n *parser.Node) (string, error) {
	name := n.Token.Value

	switch name {
	case "sqrt":
		arg, err := f.formatSingleArgument(n)
		if err != nil {
			return "", err
		}

		return `\sqrt{` + arg + `}`, nil
	case "abs":
		arg, err := f.formatSingleArgument(n)
		if err != nil {
			return "", err
		}

		return `\left|` + arg + `\right|`, nil
	case "sin", "cos":
		arg, err := f.formatSingleArgument(n)
		if err != nil {
			return "", err
		}

		return `\` + name + `\left(` + arg + `\right)`, nil
	default:
		return "", formatError(ErrUnknownFunction, n)
	}
}

// formatSingleArgument checks that the call has exactly one argument and
// renders it
func (f *LaTeXFormatter) formatSingleArgument(n *parser.Node) (string, error) {
	if len(n.Children) != 1 {
		return "", formatError(ErrArgumentCount, n)
	}

	return f.format(n.Children[0])
}

// parenthesize wraps markup in size-matched parentheses
func parenthesize(markup string) string {
	return `\left(` + markup + `\right)`
}

func isLatinLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
