/*
Package scanner defines an interface for scanners (tokenizers) and an adapter
for lexmachine.

Lexmachine is a lexer generator compiling regular expressions into a DFA.
Clients initialize it with patterns for their tokens; the adapter wraps the
resulting lexer into the Tokenizer interface. See NewLMAdapter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thompson"
)

// tracer traces with key 'thompson.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("thompson.scanner")
}

// EOF is the token type of the token signalling the end of input.
const EOF thompson.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() thompson.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used by the LexMachine
// scanner.
type DefaultToken struct {
	kind   thompson.TokType
	lexeme string
	Val    interface{}
	span   thompson.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ thompson.TokType, lexeme string, span thompson.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() thompson.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() thompson.Span {
	return t.span
}

var _ thompson.Token = DefaultToken{}
