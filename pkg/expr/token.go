package expr

import (
	"fmt"
	"strings"
)

// Kind classifies a token.
type Kind int

const (
	Term Kind = iota
	Operator
	LeftParen
	RightParen
)

func (k Kind) String() string {
	switch k {
	case Term:
		return "term"
	case Operator:
		return "operator"
	case LeftParen:
		return "left paren"
	case RightParen:
		return "right paren"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is one lexical unit of an expression.
type Token struct {
	Kind Kind
	Text string
}

func (t Token) String() string {
	return t.Text
}

func isTermChar(c byte) bool {
	return (c >= '0' && c <= '9') || c == 'x' || c == '^'
}

// Tokenize splits s into operators, parentheses and polynomial terms. A term
// is a maximal run of digits, 'x' and '^'. Whitespace is removed before
// scanning, so "1 2" is the single term "12"; any other character is skipped.
func Tokenize(s string) []Token {
	s = strings.Join(strings.Fields(s), "")
	var tokens []Token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '+' || c == '-' || c == '*' || c == '/':
			tokens = append(tokens, Token{Kind: Operator, Text: s[i : i+1]})
			i++
		case c == '(':
			tokens = append(tokens, Token{Kind: LeftParen, Text: "("})
			i++
		case c == ')':
			tokens = append(tokens, Token{Kind: RightParen, Text: ")"})
			i++
		case isTermChar(c):
			j := i
			for j < len(s) && isTermChar(s[j]) {
				j++
			}
			tokens = append(tokens, Token{Kind: Term, Text: s[i:j]})
			i = j
		default:
			i++
		}
	}
	return tokens
}
