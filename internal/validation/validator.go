package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	polyPattern = regexp.MustCompile(`^[0-9x^+\-\s]+$`)
	exprPattern = regexp.MustCompile(`^[0-9x^+\-*/()\s]+$`)
)

// MaxPrime bounds the characteristic accepted from user input.
const MaxPrime = 1 << 20

// MaxExpressionLength bounds the length of an expression line.
const MaxExpressionLength = 4096

func ValidatePrime(p int) error {
	if p < 2 {
		return fmt.Errorf("prime must be at least 2 (got %d)", p)
	}
	if p > MaxPrime {
		return fmt.Errorf("prime must not exceed %d (got %d)", MaxPrime, p)
	}
	return nil
}

func ValidateDegree(m int) error {
	if m < 1 {
		return fmt.Errorf("degree must be at least 1 (got %d)", m)
	}
	if m > 64 {
		return fmt.Errorf("degree must not exceed 64 (got %d)", m)
	}
	return nil
}

func ValidatePolynomial(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("polynomial cannot be empty")
	}

	if !polyPattern.MatchString(input) {
		return fmt.Errorf("polynomial contains invalid characters: %s", input)
	}

	return nil
}

func ValidateExpression(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("expression cannot be empty")
	}

	if len(input) > MaxExpressionLength {
		return fmt.Errorf("expression too long (max %d characters)", MaxExpressionLength)
	}

	if !exprPattern.MatchString(input) {
		for i, ch := range input {
			if !exprPattern.MatchString(string(ch)) {
				return fmt.Errorf("expression contains invalid character %q at position %d", ch, i)
			}
		}
	}

	return nil
}

func ValidateFieldParams(p, m int) error {
	if err := ValidatePrime(p); err != nil {
		return err
	}
	return ValidateDegree(m)
}

func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, " ")
}
