package syntax

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// Operators of regular expressions in postfix notation.
const (
	Concat    = '.' // explicit concatenation, postfix only
	Alternate = '|'
	Optional  = '?' // zero or one
	Star      = '*' // zero or more
	Plus      = '+' // one or more
)

// Grouping delimiters, infix only.
const (
	LeftParen  = '('
	RightParen = ')'
)

// IsOperator returns true if r is one of the postfix operators.
func IsOperator(r rune) bool {
	switch r {
	case Concat, Alternate, Optional, Star, Plus:
		return true
	}
	return false
}

// ErrInvalidExpression is the error kind of every conversion failure.
// Use errors.Is to check for it.
var ErrInvalidExpression = errors.New("invalid regular expression")

// ExpressionError reports a malformed infix expression, together with the
// (rune-)position of the offending character.
type ExpressionError struct {
	Pos int
	Msg string
}

func (e *ExpressionError) Error() string {
	return fmt.Sprintf("%s at position %d: %s", ErrInvalidExpression.Error(), e.Pos, e.Msg)
}

// Unwrap returns ErrInvalidExpression.
func (e *ExpressionError) Unwrap() error {
	return ErrInvalidExpression
}

func invalid(pos int, msg string) error {
	tracer().Errorf("regex error at %d: %s", pos, msg)
	return &ExpressionError{Pos: pos, Msg: msg}
}

// --- Conversion ------------------------------------------------------------

// scope holds the counters of an enclosing nesting level while a group is
// being converted.
type scope struct {
	altOps      int // pending alternations
	concatOpnds int // operands of a pending concatenation
}

type converter struct {
	out         strings.Builder
	scopes      *arraystack.Stack // of scope, one per open '('
	altOps      int
	concatOpnds int
}

func (c *converter) emit(r rune) {
	tracer().Debugf("emit %q", r)
	c.out.WriteRune(r)
}

// insertOneDot reduces two pending operands to one concatenation.
func (c *converter) insertOneDot() {
	if c.concatOpnds >= 2 {
		c.concatOpnds--
		c.emit(Concat)
	}
}

// insertAllDots concatenates all pending operands of the current level.
func (c *converter) insertAllDots() {
	for ; c.concatOpnds > 1; c.concatOpnds-- {
		c.emit(Concat)
	}
	c.concatOpnds = 0
}

// insertAllBars emits the pending alternations of the current level. As the
// alternands already are on the output, this results in a right-to-left fold.
func (c *converter) insertAllBars() {
	for ; c.altOps > 0; c.altOps-- {
		c.emit(Alternate)
	}
}

// Convert rewrites an infix regular expression into postfix notation.
// Concatenation, which is implicit in infix notation, is made explicit
// with operator '.'.
//
// Convert returns an error wrapping ErrInvalidExpression if the expression is
// malformed: unbalanced parentheses, an alternation with a missing operand,
// an empty group or a repetition operator with nothing to repeat. Character
// '.' is reserved for concatenation and may not appear in infix input.
// A trailing '|' is rejected as well, even though a lenient conversion
// could flush it as "a|".
//
// The empty expression converts to the empty postfix expression.
func Convert(regex string) (string, error) {
	c := &converter{scopes: arraystack.New()}
	pos := 0
	for _, r := range regex {
		switch r {
		case LeftParen:
			c.insertOneDot()
			c.scopes.Push(scope{altOps: c.altOps, concatOpnds: c.concatOpnds})
			c.altOps, c.concatOpnds = 0, 0
		case Alternate:
			if c.concatOpnds == 0 {
				return "", invalid(pos, "alternation without left operand")
			}
			c.insertAllDots()
			c.altOps++
		case RightParen:
			if c.scopes.Empty() {
				return "", invalid(pos, "unmatched closing parenthesis")
			}
			if c.concatOpnds == 0 {
				return "", invalid(pos, "empty group or alternative")
			}
			c.insertAllDots()
			c.insertAllBars()
			s, _ := c.scopes.Pop()
			outer := s.(scope)
			c.altOps = outer.altOps
			c.concatOpnds = outer.concatOpnds + 1 // the group is a single atom
		case Star, Plus, Optional:
			if c.concatOpnds == 0 {
				return "", invalid(pos, fmt.Sprintf("nothing to repeat for '%c'", r))
			}
			c.emit(r)
		case Concat:
			return "", invalid(pos, "'.' is reserved for concatenation")
		default:
			c.insertOneDot()
			c.emit(r)
			c.concatOpnds++
		}
		pos++
	}
	if !c.scopes.Empty() {
		return "", invalid(pos, fmt.Sprintf("%d unclosed parenthesis", c.scopes.Size()))
	}
	if c.altOps > 0 && c.concatOpnds == 0 {
		return "", invalid(pos, "alternation without right operand")
	}
	c.insertAllDots()
	c.insertAllBars()
	postfix := c.out.String()
	tracer().Debugf("%q => %q", regex, postfix)
	return postfix, nil
}

// MustConvert is like Convert, but panics if the expression is malformed.
func MustConvert(regex string) string {
	postfix, err := Convert(regex)
	if err != nil {
		panic(err)
	}
	return postfix
}
