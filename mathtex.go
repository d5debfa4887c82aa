// Package mathtex converts arithmetic and function expressions into LaTeX
// math markup.
//
// The pipeline has two stages: Parse tokenizes the source string and
// builds an abstract syntax tree with fixed per-node operator precedence,
// and Render converts that tree into markup, inserting parentheses only
// where precedence and associativity require them. Both stages are pure
// and synchronous; concurrent invocations share no state.
package mathtex

import (
	"github.com/shibukawa/mathtex/formatter"
	"github.com/shibukawa/mathtex/parser"
	"github.com/shibukawa/mathtex/tokenizer"
)

// Parse tokenizes and parses an expression string.
// On success every token of the input was consumed. On failure the error
// is a *parser.SyntaxError.
func Parse(src string) (*parser.Node, error) {
	exprTokenizer := tokenizer.NewExprTokenizer(src, tokenizer.TokenizerOptions{
		SkipWhitespace: true,
	})

	return parser.NewExprParser(exprTokenizer.AllTokens()).Parse()
}

// Render converts an AST produced by Parse into LaTeX markup.
// On failure the error is a *formatter.FormatError.
func Render(root *parser.Node) (string, error) {
	return formatter.NewLaTeXFormatter().Format(root)
}

// Convert parses an expression and renders it in one step
func Convert(src string) (string, error) {
	root, err := Parse(src)
	if err != nil {
		return "", err
	}

	return Render(root)
}
