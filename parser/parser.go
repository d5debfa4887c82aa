package parser

import (
	"github.com/shibukawa/mathtex/tokenizer"
)

// Grammar (top rule first, lowest precedence first):
//
//	expr    ::= mulexpr { ('+'|'-') mulexpr }
//	mulexpr ::= powexpr { ('*'|'/') powexpr }
//	powexpr ::= {'+'} ('-' powexpr | atom ['^' powexpr])
//	atom    ::= identifier ['(' expr {',' expr} ')'] | number | '(' expr ')'

// ExprParser represents the expression parser
type ExprParser struct {
	tokens  []tokenizer.Token
	current int
}

// NewExprParser creates a new expression parser.
// The token slice is expected to end with an EOF token and to contain no
// whitespace tokens, as produced by tokenizer.AllTokens with
// SkipWhitespace enabled.
func NewExprParser(tokens []tokenizer.Token) *ExprParser {
	return &ExprParser{
		tokens:  tokens,
		current: 0,
	}
}

// Parse parses the token sequence and generates the AST.
// On success every token has been consumed; a trailing token after a
// complete expression is a syntax error.
func (p *ExprParser) Parse() (*Node, error) {
	root, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != tokenizer.EOF {
		return nil, syntaxError(ErrTrailingTokens, tok)
	}

	return root, nil
}

// parseExpr parses additive expressions (left-associative)
func (p *ExprParser) parseExpr() (*Node, error) {
	left, err := p.parseMulExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()

		var kind NodeKind

		switch tok.Type {
		case tokenizer.PLUS:
			kind = NodeAdd
		case tokenizer.MINUS:
			kind = NodeSubtract
		default:
			return left, nil
		}

		p.advance()

		right, err := p.parseMulExpr()
		if err != nil {
			return nil, err
		}

		left = &Node{Kind: kind, Token: tok, Children: []*Node{left, right}}
	}
}

// parseMulExpr parses multiplicative expressions (left-associative)
func (p *ExprParser) parseMulExpr() (*Node, error) {
	left, err := p.parsePowExpr()
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()

		var kind NodeKind

		switch tok.Type {
		case tokenizer.MULTIPLY:
			kind = NodeMultiply
		case tokenizer.DIVIDE:
			kind = NodeDivide
		default:
			return left, nil
		}

		p.advance()

		right, err := p.parsePowExpr()
		if err != nil {
			return nil, err
		}

		left = &Node{Kind: kind, Token: tok, Children: []*Node{left, right}}
	}
}

// parsePowExpr parses unary signs and exponentiation.
//
// Leading unary '+' signs are consumed and discarded with no AST effect.
// Unary '-' wraps the result of parsing another powexpr, so "-x^2" parses
// as Negate(Power(x, 2)) and "--x" as Negate(Negate(x)). '^' is
// right-associative via right-recursion.
func (p *ExprParser) parsePowExpr() (*Node, error) {
	for p.peek().Type == tokenizer.PLUS {
		p.advance()
	}

	if tok := p.peek(); tok.Type == tokenizer.MINUS {
		p.advance()

		operand, err := p.parsePowExpr()
		if err != nil {
			return nil, err
		}

		return &Node{Kind: NodeNegate, Token: tok, Children: []*Node{operand}}, nil
	}

	base, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type == tokenizer.CARET {
		p.advance()

		exponent, err := p.parsePowExpr()
		if err != nil {
			return nil, err
		}

		return &Node{Kind: NodePower, Token: tok, Children: []*Node{base, exponent}}, nil
	}

	return base, nil
}

// parseAtom parses identifiers, function calls, numbers, and parenthesized
// subexpressions. A parenthesized expression returns the inner node
// directly without introducing an extra node, so "(x)" and "x" are
// AST-equal.
func (p *ExprParser) parseAtom() (*Node, error) {
	tok := p.peek()

	switch tok.Type {
	case tokenizer.IDENT:
		p.advance()

		if p.peek().Type == tokenizer.OPENED_PARENS {
			p.advance()
			return p.parseFunctionCall(tok)
		}

		return &Node{Kind: NodeIdentifier, Token: tok}, nil
	case tokenizer.NUMBER:
		p.advance()

		return &Node{Kind: NodeNumber, Token: tok}, nil
	case tokenizer.OPENED_PARENS:
		p.advance()

		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		if end := p.peek(); end.Type != tokenizer.CLOSED_PARENS {
			return nil, syntaxError(ErrExpectedCloseParen, end)
		}

		p.advance()

		return inner, nil
	default:
		return nil, syntaxError(ErrUnexpectedToken, tok)
	}
}

// parseFunctionCall parses the comma-separated argument list of a call.
// The opening parenthesis has already been consumed; name is the
// identifier token. The grammar requires at least one argument, so an
// empty "f()" is a syntax error.
func (p *ExprParser) parseFunctionCall(name tokenizer.Token) (*Node, error) {
	args := make([]*Node, 0, 1)

	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		args = append(args, arg)

		if p.peek().Type != tokenizer.COMMA {
			break
		}

		p.advance()
	}

	if end := p.peek(); end.Type != tokenizer.CLOSED_PARENS {
		return nil, syntaxError(ErrExpectedCloseParen, end)
	}

	p.advance()

	return &Node{Kind: NodeFunctionCall, Token: name, Children: args}, nil
}

// peek returns the current token without consuming it
func (p *ExprParser) peek() tokenizer.Token {
	if p.current >= len(p.tokens) {
		return tokenizer.Token{Type: tokenizer.EOF}
	}

	return p.tokens[p.current]
}

// advance consumes the current token
func (p *ExprParser) advance() {
	if p.current < len(p.tokens) {
		p.current++
	}
}
