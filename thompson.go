package thompson

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. We do not define any constants here, as
// it is up to the tokenizing packages to define them.
type TokType int

// Tokens represent input tokens. They are produced by a scanner and reflect
// operands, operators and delimiters of an expression.
//
// An example would be a token for a binary operator:
//
//    TokType = Operator    // identifier for this kind of tokens (package specific)
//    Lexeme  = "@"         // lexeme how it appeared in the input stream
//    Value   = nil         // scanners may attach a value
//    Span    = 2…3         // occured from position 2 in the input stream
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. Errors
// use it to report where in the input they occured. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
