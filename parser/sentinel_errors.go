package parser

import (
	"errors"
	"fmt"

	"github.com/shibukawa/mathtex/tokenizer"
)

// Sentinel errors - Parser related
var (
	ErrUnexpectedToken    = errors.New("unexpected token")
	ErrUnexpectedEOF      = errors.New("unexpected end of input")
	ErrExpectedCloseParen = errors.New("expected ')'")
	ErrTrailingTokens     = errors.New("unexpected token after expression")
)

// SyntaxError represents a parse error.
//
// Token is the offending token, or nil when the input ended where a token
// was expected. Error sinks should treat a nil token as "point at end of
// input".
type SyntaxError struct {
	Err   error
	Token *tokenizer.Token
}

func (e *SyntaxError) Error() string {
	if e.Token == nil {
		return fmt.Sprintf("syntax error: %s", e.Err)
	}

	return fmt.Sprintf("syntax error: %s at line %d, column %d (token: %q)",
		e.Err, e.Token.Position.Line, e.Token.Position.Column, e.Token.Value)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Span returns the byte span of the offending token in the original
// source. ok is false when the error is not tied to a token (end of input).
func (e *SyntaxError) Span() (offset, length int, ok bool) {
	if e.Token == nil {
		return 0, 0, false
	}

	offset, length = e.Token.Span()

	return offset, length, true
}

// syntaxError builds a SyntaxError for tok. An EOF token carries no
// meaningful position, so it is reported as an unlocated error instead.
func syntaxError(sentinel error, tok tokenizer.Token) *SyntaxError {
	if tok.Type == tokenizer.EOF {
		if errors.Is(sentinel, ErrUnexpectedToken) {
			sentinel = ErrUnexpectedEOF
		}

		return &SyntaxError{Err: sentinel}
	}

	return &SyntaxError{Err: sentinel, Token: &tok}
}
