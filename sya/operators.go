package sya

import (
	"fmt"
	"unicode"
)

// Associativity of a binary operator.
type Associativity int

// Operators are either left- or right-associative.
const (
	Left Associativity = iota
	Right
)

func (a Associativity) String() string {
	if a == Right {
		return "RIGHT"
	}
	return "LEFT"
}

// Operator describes a binary operator.
type Operator struct {
	Symbol     rune
	Precedence int // higher values bind tighter
	Assoc      Associativity
}

func (op Operator) String() string {
	return fmt.Sprintf("%c(%d,%s)", op.Symbol, op.Precedence, op.Assoc)
}

// DefaultOperators returns the default operator table.
func DefaultOperators() []Operator {
	return []Operator{
		{'+', 1, Left},
		{'-', 1, Left},
		{'*', 2, Left},
		{'/', 2, Left},
		{'@', 3, Right}, // imaginary operators, for demonstration purposes
		{'#', 3, Right},
	}
}

// validOperatorSymbol is false for symbols which the tokenizer reserves for
// operands, function names, delimiters or whitespace.
func validOperatorSymbol(r rune) bool {
	switch {
	case r == '(' || r == ')' || r == ',' || r == '_':
		return false
	case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r):
		return false
	case r > unicode.MaxASCII:
		return false
	}
	return unicode.IsPrint(r)
}

// IsOperand returns true for single lowercase letters.
func IsOperand(token string) bool {
	return len(token) == 1 && token[0] >= 'a' && token[0] <= 'z'
}

// IsFunctionName returns true for single uppercase letters.
func IsFunctionName(token string) bool {
	return len(token) == 1 && token[0] >= 'A' && token[0] <= 'Z'
}
