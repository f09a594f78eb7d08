// Package expr evaluates infix arithmetic over the elements of a GF(p^m).
//
// Expressions combine polynomial terms such as "1+x" or "2x^2" with + - * /
// and parentheses. Evaluation uses the shunting-yard algorithm with explicit
// operator and value stacks; products and quotients come from the field's
// precomputed tables.
package expr

import (
	"errors"
	"fmt"

	"github.com/Davincible/fieldcalc/pkg/galois"
)

// ErrMalformedExpression is returned for unbalanced parentheses, missing
// operands and empty expressions.
var ErrMalformedExpression = errors.New("malformed expression")

func precedence(op string) int {
	switch op {
	case "+", "-":
		return 1
	case "*", "/":
		return 2
	default:
		return 0
	}
}

type evaluator struct {
	field  *galois.Field
	ops    *stack[Token]
	values *stack[galois.Element]
}

// Evaluate computes the value of s in f. Errors wrap ErrMalformedExpression,
// galois.ErrParse or galois.ErrNoInverse. The field is only read.
func Evaluate(f *galois.Field, s string) (galois.Element, error) {
	tokens := Tokenize(s)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty expression", ErrMalformedExpression)
	}

	ev := &evaluator{
		field:  f,
		ops:    newStack[Token](len(tokens)),
		values: newStack[galois.Element](len(tokens)),
	}
	for _, tok := range tokens {
		if err := ev.step(tok); err != nil {
			return nil, err
		}
	}

	for !ev.ops.IsEmpty() {
		op, _ := ev.ops.Pop()
		if op.Kind == LeftParen {
			return nil, fmt.Errorf("%w: unmatched '('", ErrMalformedExpression)
		}
		if err := ev.apply(op); err != nil {
			return nil, err
		}
	}

	if ev.values.Len() != 1 {
		return nil, fmt.Errorf("%w: %d values left after evaluation", ErrMalformedExpression, ev.values.Len())
	}
	result, _ := ev.values.Pop()
	return result, nil
}

func (ev *evaluator) step(tok Token) error {
	switch tok.Kind {
	case Term:
		e, err := ev.field.Element(tok.Text)
		if err != nil {
			return err
		}
		ev.values.Push(e)

	case Operator:
		for {
			top, err := ev.ops.Peek()
			if err != nil || top.Kind == LeftParen || precedence(top.Text) < precedence(tok.Text) {
				break
			}
			ev.ops.Pop()
			if err := ev.apply(top); err != nil {
				return err
			}
		}
		ev.ops.Push(tok)

	case LeftParen:
		ev.ops.Push(tok)

	case RightParen:
		for {
			top, err := ev.ops.Pop()
			if err != nil {
				return fmt.Errorf("%w: unmatched ')'", ErrMalformedExpression)
			}
			if top.Kind == LeftParen {
				break
			}
			if err := ev.apply(top); err != nil {
				return err
			}
		}
	}
	return nil
}

// apply pops two operands, combines them with op and pushes the result.
func (ev *evaluator) apply(op Token) error {
	b, err := ev.values.Pop()
	if err != nil {
		return fmt.Errorf("%w: missing operand for '%s'", ErrMalformedExpression, op.Text)
	}
	a, err := ev.values.Pop()
	if err != nil {
		return fmt.Errorf("%w: missing operand for '%s'", ErrMalformedExpression, op.Text)
	}

	var res galois.Element
	switch op.Text {
	case "+":
		res = ev.field.Add(a, b)
	case "-":
		res = ev.field.Sub(a, b)
	case "*":
		res, err = ev.field.Mul(a, b)
	case "/":
		res, err = ev.field.Div(a, b)
	default:
		err = fmt.Errorf("%w: unknown operator '%s'", ErrMalformedExpression, op.Text)
	}
	if err != nil {
		return err
	}
	ev.values.Push(res)
	return nil
}
