package tokenizer

import (
	"iter"
	"strings"
	"unicode"
)

// TokenIterator uses Go 1.24 iterator pattern
type TokenIterator iter.Seq[Token]

// ExprTokenizer is a tokenizer that returns an iterator.
//
// Tokenization never fails: an unrecognized character still becomes a
// one-character OTHER token, and later stages decide if it is meaningful.
type ExprTokenizer struct {
	input   string
	options TokenizerOptions
}

// TokenizerOptions are options for the tokenizer
type TokenizerOptions struct {
	SkipWhitespace bool
}

// NewExprTokenizer creates a new ExprTokenizer
func NewExprTokenizer(input string, options ...TokenizerOptions) *ExprTokenizer {
	opts := TokenizerOptions{
		SkipWhitespace: false,
	}
	if len(options) > 0 {
		opts = options[0]
	}

	return &ExprTokenizer{
		input:   input,
		options: opts,
	}
}

// Tokens returns an iterator of tokens
func (t *ExprTokenizer) Tokens() TokenIterator {
	return func(yield func(Token) bool) {
		tokenizer := &tokenizer{
			input:  t.input,
			line:   1,
			column: 1,
		}

		tokenizer.readChar()

		for {
			token := tokenizer.nextToken()

			if token.Type == EOF {
				yield(token)
				return
			}

			// Filtering based on options
			if t.options.SkipWhitespace && token.Type == WHITESPACE {
				continue
			}

			if !yield(token) {
				return
			}
		}
	}
}

// AllTokens gets all tokens as a slice, including the trailing EOF token
func (t *ExprTokenizer) AllTokens() []Token {
	tokens := make([]Token, 0, 16)

	for token := range t.Tokens() {
		tokens = append(tokens, token)

		if token.Type == EOF {
			break
		}
	}

	return tokens
}

// Internal tokenizer implementation
type tokenizer struct {
	input    string
	position int
	line     int
	column   int
	current  rune
}

// nextToken gets the next token.
// Classification is by first character: letter/underscore starts an
// identifier, digit starts a number, anything else is a single-character
// operator token.
func (t *tokenizer) nextToken() Token {
	switch t.current {
	case 0:
		return t.newToken(EOF, "")
	case ' ', '\t', '\r', '\n':
		return t.readWhitespace()
	case '+':
		return t.readSingle(PLUS)
	case '-':
		return t.readSingle(MINUS)
	case '*':
		return t.readSingle(MULTIPLY)
	case '/':
		return t.readSingle(DIVIDE)
	case '^':
		return t.readSingle(CARET)
	case '(':
		return t.readSingle(OPENED_PARENS)
	case ')':
		return t.readSingle(CLOSED_PARENS)
	case ',':
		return t.readSingle(COMMA)
	default:
		if unicode.IsLetter(t.current) || t.current == '_' {
			return t.readIdent()
		} else if unicode.IsDigit(t.current) {
			return t.readNumber()
		} else {
			return t.readSingle(OTHER)
		}
	}
}

// readChar reads the next character
func (t *tokenizer) readChar() {
	if t.position >= len(t.input) {
		t.current = 0
		t.position++
		return
	}

	t.current = rune(t.input[t.position])
	t.position++

	if t.current == '\n' {
		t.line++
		t.column = 1
	} else {
		t.column++
	}
}

// peekChar looks ahead at the character n positions after the current one
func (t *tokenizer) peekChar(n int) rune {
	pos := t.position + n
	if pos >= len(t.input) {
		return 0
	}

	return rune(t.input[pos])
}

// readSingle reads a single-character token
func (t *tokenizer) readSingle(tokenType TokenType) Token {
	token := t.newToken(tokenType, string(t.current))
	t.readChar()

	return token
}

// readWhitespace reads whitespace characters
func (t *tokenizer) readWhitespace() Token {
	var builder strings.Builder

	startLine := t.line
	startColumn := t.column - 1
	startOffset := t.position - 1

	for unicode.IsSpace(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	return Token{
		Type:  WHITESPACE,
		Value: builder.String(),
		Position: Position{
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
		},
	}
}

// readIdent reads identifiers and function names
func (t *tokenizer) readIdent() Token {
	var builder strings.Builder

	startLine := t.line
	startColumn := t.column - 1
	startOffset := t.position - 1

	for unicode.IsLetter(t.current) || unicode.IsDigit(t.current) || t.current == '_' {
		builder.WriteRune(t.current)
		t.readChar()
	}

	return Token{
		Type:  IDENT,
		Value: builder.String(),
		Position: Position{
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
		},
	}
}

// readNumber reads numeric literals matching digits[.digits][(e|E)[+|-]digits].
// A dot or exponent marker that is not followed by digits is left for the
// next token rather than reported as an error.
func (t *tokenizer) readNumber() Token {
	var builder strings.Builder

	startLine := t.line
	startColumn := t.column - 1
	startOffset := t.position - 1

	// Integer part
	for unicode.IsDigit(t.current) {
		builder.WriteRune(t.current)
		t.readChar()
	}

	// Decimal point
	if t.current == '.' && unicode.IsDigit(t.peekChar(0)) {
		builder.WriteRune(t.current)
		t.readChar()

		// Decimal part
		for unicode.IsDigit(t.current) {
			builder.WriteRune(t.current)
			t.readChar()
		}
	}

	// Exponential part
	if t.current == 'e' || t.current == 'E' {
		next := t.peekChar(0)

		digitAfterSign := (next == '+' || next == '-') && unicode.IsDigit(t.peekChar(1))
		if unicode.IsDigit(next) || digitAfterSign {
			builder.WriteRune(t.current)
			t.readChar()

			if t.current == '+' || t.current == '-' {
				builder.WriteRune(t.current)
				t.readChar()
			}

			for unicode.IsDigit(t.current) {
				builder.WriteRune(t.current)
				t.readChar()
			}
		}
	}

	return Token{
		Type:  NUMBER,
		Value: builder.String(),
		Position: Position{
			Line:   startLine,
			Column: startColumn,
			Offset: startOffset,
		},
	}
}

// newToken creates a new token
func (t *tokenizer) newToken(tokenType TokenType, value string) Token {
	return Token{
		Type:  tokenType,
		Value: value,
		Position: Position{
			Line:   t.line,
			Column: t.column - len([]rune(value)),
			Offset: t.position - len(value),
		},
	}
}
