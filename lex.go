package polish

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Operators contains the characters which are considered to be operators.
// Every operator is a single byte.
const Operators = "=+-*/"

// OpenBracket and CloseBracket group subexpressions. They are the only
// brackets the parser understands.
const (
	OpenBracket  = '('
	CloseBracket = ')'
)

// priority gets the splitting priority of an operator byte. Lower values are
// less binding and so are chosen as split points first. The result is 0 for
// any byte that is not an operator.
func priority(c byte) int {
	switch c {
	case '=':
		return 1
	case '+', '-':
		return 2
	case '*', '/':
		return 3
	default:
		return 0
	}
}

// isOperator reports whether s is exactly one operator.
func isOperator(s string) bool {
	return len(s) == 1 && priority(s[0]) != 0
}

// Normalize removes every whitespace character from s. The parser treats
// whitespace as part of terms, so input typed by people generally wants
// normalizing first. Bytes that are not valid UTF-8 are kept as they are.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}
