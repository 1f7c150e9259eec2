package thompson

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/thompson/nfa"
	"github.com/npillmayer/thompson/syntax"
)

// tracer traces with key 'thompson'.
func tracer() tracing.Trace {
	return tracing.Select("thompson")
}

// ErrEmptyAutomaton is returned by Compile if a pattern does not yield an
// automaton, i.e. the pattern is empty.
var ErrEmptyAutomaton = errors.New("pattern does not yield an automaton")

// Regexp is a compiled regular expression. A Regexp is immutable and may be
// used by multiple goroutines concurrently.
type Regexp struct {
	pattern string
	postfix string
	nfa     *nfa.NFA
}

// Compile converts a regular expression to postfix and builds its
// automaton.
//
// Errors from the conversion step wrap syntax.ErrInvalidExpression.
func Compile(pattern string) (*Regexp, error) {
	postfix, err := syntax.Convert(pattern)
	if err != nil {
		tracer().Errorf("cannot compile %q: %v", pattern, err)
		return nil, err
	}
	a := nfa.Build(postfix)
	if a == nil {
		return nil, fmt.Errorf("%w: %q", ErrEmptyAutomaton, pattern)
	}
	tracer().Debugf("compiled %q to postfix %q, %d states", pattern, postfix, a.Size())
	return &Regexp{pattern: pattern, postfix: postfix, nfa: a}, nil
}

// MustCompile is like Compile, but panics if the pattern cannot be compiled.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// Match returns true if the regular expression matches the complete input.
// See nfa.Match for options and errors.
func (re *Regexp) Match(input string, opts ...nfa.MatchOption) (bool, error) {
	return nfa.Match(re.nfa, input, opts...)
}

// Postfix returns the postfix form of the pattern, with explicit
// concatenation operators.
func (re *Regexp) Postfix() string {
	return re.postfix
}

// Automaton returns the NFA of the pattern. Clients must treat it as
// read-only.
func (re *Regexp) Automaton() *nfa.NFA {
	return re.nfa
}

// String returns the pattern the Regexp has been compiled from.
func (re *Regexp) String() string {
	return re.pattern
}
