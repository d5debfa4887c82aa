package formatter

import (
	"errors"
	"fmt"

	"github.com/shibukawa/mathtex/parser"
	"github.com/shibukawa/mathtex/tokenizer"
)

// Sentinel errors - Formatter related
var (
	// ErrInvalidIdentifier indicates an identifier that is neither a single
	// Latin letter nor a Greek letter name.
	ErrInvalidIdentifier = errors.New("identifier must be a Latin letter or Greek letter name")
	// ErrUnknownFunction indicates a function name outside the whitelist.
	ErrUnknownFunction = errors.New("unknown function")
	// ErrArgumentCount indicates a whitelisted function called with the
	// wrong number of arguments.
	ErrArgumentCount = errors.New("wrong number of arguments")
	// ErrInternal indicates a node kind without a rendering rule. It
	// signals a missing case in the formatter, not malformed input, and
	// should never be observable with a parser-produced tree.
	ErrInternal = errors.New("internal error")
)

// FormatError represents a rendering error. It always carries the
// offending node's originating token.
type FormatError struct {
	Err   error
	Token tokenizer.Token
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format error: %s at line %d, column %d (token: %q)",
		e.Err, e.Token.Position.Line, e.Token.Position.Column, e.Token.Value)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Span returns the byte span of the offending token in the original
// source. ok is always true; the signature matches parser.SyntaxError so
// error sinks can handle both through one interface.
func (e *FormatError) Span() (offset, length int, ok bool) {
	offset, length = e.Token.Span()

	return offset, length, true
}

func formatError(sentinel error, n *parser.Node) *FormatError {
	return &FormatError{Err: sentinel, Token: n.Token}
}
