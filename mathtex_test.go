package mathtex

import (
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/mathtex/formatter"
	"github.com/shibukawa/mathtex/parser"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "associativity without parentheses",
			input:    "a-b-c",
			expected: `a-b-c`,
		},
		{
			name:     "explicit grouping preserved",
			input:    "a-(b-c)",
			expected: `a-\left(b-c\right)`,
		},
		{
			name:     "implicit multiplication",
			input:    "(a+b)*c",
			expected: `\left(a+b\right) c`,
		},
		{
			name:     "fraction ignores surrounding precedence",
			input:    "a+b/c+d",
			expected: `a+\frac{b}{c}+d`,
		},
		{
			name:     "unary minus and power",
			input:    "-x^2",
			expected: `-x^{2}`,
		},
		{
			name:     "square root of a Greek letter",
			input:    "sqrt(theta)",
			expected: `\sqrt{\theta}`,
		},
		{
			name:     "scientific notation",
			input:    "1.23e-4",
			expected: `1.23 \times 10^{-4}`,
		},
		{
			name:     "whitespace is insignificant",
			input:    "  sin( x ) + 1 ",
			expected: `\sin\left(x\right)+1`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			markup, err := Convert(tt.input)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, markup)
		})
	}
}

func TestErrorStages(t *testing.T) {
	t.Run("parse failure short-circuits rendering", func(t *testing.T) {
		_, err := Convert("2+")

		var syntaxErr *parser.SyntaxError

		assert.True(t, errors.As(err, &syntaxErr))
	})

	t.Run("render failure carries the offending token", func(t *testing.T) {
		_, err := Convert("sqrt(x,y)")

		var formatErr *formatter.FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("expected FormatError, got %v", err)
		}

		assert.Equal(t, "sqrt", formatErr.Token.Value)
	})
}

func TestParseConsumesAllTokens(t *testing.T) {
	_, err := Parse("2 3")

	var syntaxErr *parser.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("expected SyntaxError, got %v", err)
	}

	assert.True(t, errors.Is(err, parser.ErrTrailingTokens))
}
