package galois

import (
	"errors"
	"fmt"
)

var (
	// ErrNotPrime is returned when the characteristic is not a prime.
	ErrNotPrime = errors.New("not a prime")

	// ErrParse is returned for a polynomial string that cannot be read.
	ErrParse = errors.New("parse error")

	// ErrNotIrreducible is returned when the modulus has a linear factor.
	ErrNotIrreducible = errors.New("modulus is not irreducible")

	// ErrNoInverse is returned when dividing by an element without an
	// inverse, which is always the case for zero.
	ErrNoInverse = errors.New("no inverse exists")

	// ErrInvalidDegree is returned when m is outside the accepted range.
	ErrInvalidDegree = errors.New("invalid degree")

	// ErrDegreeMismatch is returned when the modulus degree differs from m.
	ErrDegreeMismatch = errors.New("modulus degree does not match field degree")

	// ErrOrderTooLarge is returned when p^m exceeds the configured maximum.
	ErrOrderTooLarge = errors.New("field order too large")

	// ErrNotElement is returned for a vector that is not one of the field's
	// elements.
	ErrNotElement = errors.New("not a field element")
)

// ParseError identifies the term of a polynomial string that failed to parse.
type ParseError struct {
	Input string
	Term  string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse error: invalid term %q in %q: %v", e.Term, e.Input, e.Err)
	}
	return fmt.Sprintf("parse error: invalid term %q in %q", e.Term, e.Input)
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrParse}
	}
	return []error{ErrParse, e.Err}
}

// NoInverseError names the element that has no multiplicative inverse.
type NoInverseError struct {
	Element Element
}

func (e *NoInverseError) Error() string {
	return fmt.Sprintf("no inverse exists for %s", e.Element)
}

func (e *NoInverseError) Unwrap() error {
	return ErrNoInverse
}
