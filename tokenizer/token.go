package tokenizer

// TokenType represents the type of a token
type TokenType int

const (
	// Basic tokens
	EOF TokenType = iota
	WHITESPACE
	IDENT  // identifiers and function names
	NUMBER // numeric literals

	// Operators
	PLUS     // +
	MINUS    // -
	MULTIPLY // *
	DIVIDE   // /
	CARET    // ^

	// Punctuation
	OPENED_PARENS // (
	CLOSED_PARENS // )
	COMMA         // ,

	// Others
	OTHER // any character the tokenizer does not recognize
)

// String returns the string representation of TokenType
func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case WHITESPACE:
		return "WHITESPACE"
	case IDENT:
		return "IDENT"
	case NUMBER:
		return "NUMBER"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MULTIPLY:
		return "MULTIPLY"
	case DIVIDE:
		return "DIVIDE"
	case CARET:
		return "CARET"
	case OPENED_PARENS:
		return "OPENED_PARENS"
	case CLOSED_PARENS:
		return "CLOSED_PARENS"
	case COMMA:
		return "COMMA"
	case OTHER:
		return "OTHER"
	default:
		return "UNKNOWN"
	}
}

// IsOperator reports whether the token type is an operator or punctuation
// character rather than an identifier, number, or whitespace.
func (t TokenType) IsOperator() bool {
	switch t {
	case PLUS, MINUS, MULTIPLY, DIVIDE, CARET, OPENED_PARENS, CLOSED_PARENS, COMMA, OTHER:
		return true
	default:
		return false
	}
}

// Position represents a position in the source expression
type Position struct {
	Line   int
	Column int
	Offset int
}

// Token represents a token
type Token struct {
	Type     TokenType
	Value    string
	Position Position
}

// String returns the string representation of Token
func (t Token) String() string {
	return t.Type.String() + ": " + t.Value
}

// Span returns the byte offset of the token's first character in the
// original source and the token's length. Error sinks use it to highlight
// the exact substring that caused a failure.
func (t Token) Span() (offset, length int) {
	return t.Position.Offset, len(t.Value)
}
