package parser

import (
	"errors"
	"testing"

	"github.com/shibukawa/mathtex/tokenizer"
	"github.com/stretchr/testify/assert"
)

func parseString(input string) (*Node, error) {
	exprTokenizer := tokenizer.NewExprTokenizer(input, tokenizer.TokenizerOptions{
		SkipWhitespace: true,
	})

	return NewExprParser(exprTokenizer.AllTokens()).Parse()
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{
			name:  "single identifier",
			input: "x",
			want:  "x",
		},
		{
			name:  "subtraction is left-associative",
			input: "a-b-c",
			want:  "(- (- a b) c)",
		},
		{
			name:  "power is right-associative",
			input: "a^b^c",
			want:  "(^ a (^ b c))",
		},
		{
			name:  "multiplication binds tighter than addition",
			input: "a*b+c",
			want:  "(+ (* a b) c)",
		},
		{
			name:  "division stays inside the additive chain",
			input: "a+b/c+d",
			want:  "(+ (+ a (/ b c)) d)",
		},
		{
			name:  "unary minus wraps the whole power",
			input: "-x^2",
			want:  "(- (^ x 2))",
		},
		{
			name:  "parenthesized negation is the power base",
			input: "(-x)^2",
			want:  "(^ (- x) 2)",
		},
		{
			name:  "parentheses add no extra node",
			input: "(x)",
			want:  "x",
		},
		{
			name:  "explicit grouping on the right",
			input: "a-(b-c)",
			want:  "(- a (- b c))",
		},
		{
			name:  "leading unary plus signs are discarded",
			input: "++x",
			want:  "x",
		},
		{
			name:  "doubled unary minus nests",
			input: "--x",
			want:  "(- (- x))",
		},
		{
			name:  "unary minus in exponent",
			input: "x^-y",
			want:  "(^ x (- y))",
		},
		{
			name:  "function call with one argument",
			input: "sqrt(x)",
			want:  "(sqrt x)",
		},
		{
			name:  "function call with two arguments",
			input: "f(x,y+1)",
			want:  "(f x (+ y 1))",
		},
		{
			name:  "scientific notation literal",
			input: "1.23e-4",
			want:  "1.23e-4",
		},
		{
			name:    "empty argument list",
			input:   "f()",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "operand missing at end",
			input:   "2+",
			wantErr: true,
		},
		{
			name:    "operator where operand expected",
			input:   "2+*3",
			wantErr: true,
		},
		{
			name:    "unclosed parenthesis",
			input:   "(a+b",
			wantErr: true,
		},
		{
			name:    "trailing token after expression",
			input:   "a b",
			wantErr: true,
		},
		{
			name:    "lone closing parenthesis",
			input:   ")",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := parseString(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				var syntaxErr *SyntaxError

				assert.True(t, errors.As(err, &syntaxErr))

				return
			}

			if !assert.NoError(t, err) {
				return
			}

			assert.Equal(t, tt.want, root.String())
		})
	}
}

func TestParseDeterminism(t *testing.T) {
	const input = "a+sqrt(b^2-4*a*c)/2"

	first, err := parseString(input)
	if !assert.NoError(t, err) {
		return
	}

	second, err := parseString(input)
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, first, second)
}

func TestSyntaxErrorLocation(t *testing.T) {
	t.Run("end of input carries no token", func(t *testing.T) {
		_, err := parseString("2+")

		var syntaxErr *SyntaxError
		if !assert.True(t, errors.As(err, &syntaxErr)) {
			return
		}

		assert.Nil(t, syntaxErr.Token)
		assert.True(t, errors.Is(err, ErrUnexpectedEOF))

		_, _, ok := syntaxErr.Span()
		assert.False(t, ok)
	})

	t.Run("unexpected token is referenced", func(t *testing.T) {
		_, err := parseString("2+*3")

		var syntaxErr *SyntaxError
		if !assert.True(t, errors.As(err, &syntaxErr)) {
			return
		}

		assert.True(t, errors.Is(err, ErrUnexpectedToken))

		offset, length, ok := syntaxErr.Span()
		assert.True(t, ok)
		assert.Equal(t, 2, offset)
		assert.Equal(t, 1, length)
	})

	t.Run("unclosed parenthesis at end of input", func(t *testing.T) {
		_, err := parseString("(a+b")

		var syntaxErr *SyntaxError
		if !assert.True(t, errors.As(err, &syntaxErr)) {
			return
		}

		assert.True(t, errors.Is(err, ErrExpectedCloseParen))
		assert.Nil(t, syntaxErr.Token)
	})

	t.Run("trailing token is referenced", func(t *testing.T) {
		_, err := parseString("x y")

		var syntaxErr *SyntaxError
		if !assert.True(t, errors.As(err, &syntaxErr)) {
			return
		}

		assert.True(t, errors.Is(err, ErrTrailingTokens))

		offset, _, ok := syntaxErr.Span()
		assert.True(t, ok)
		assert.Equal(t, 2, offset)
	})
}

func TestNodePrecedence(t *testing.T) {
	tests := []struct {
		kind NodeKind
		prec int
	}{
		{NodeAdd, PrecAdditive},
		{NodeSubtract, PrecAdditive},
		{NodeMultiply, PrecMultiplicative},
		{NodeDivide, PrecMultiplicative},
		{NodeNegate, PrecNegate},
		{NodePower, PrecPower},
		{NodeIdentifier, PrecLeaf},
		{NodeNumber, PrecLeaf},
		{NodeFunctionCall, PrecLeaf},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.prec, tt.kind.Precedence())
		})
	}
}
