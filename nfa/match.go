package nfa

import (
	"errors"
)

// Errors returned by Match.
var (
	ErrInvalidAutomaton = errors.New("invalid NFA")
	ErrInvalidInput     = errors.New("invalid input: empty string")
)

// MatchOption configures a call to Match.
type MatchOption func(*matchConfig)

type matchConfig struct {
	allowEmptyInput bool
}

// AllowEmptyInput sets or clears option AllowEmptyInput. By default Match
// rejects an empty input string with ErrInvalidInput. With this option set,
// an empty input matches if the start state's epsilon closure contains an
// accepting state, i.e. `a*` and `a?` will match "", whereas `a+` will not.
func AllowEmptyInput(b bool) MatchOption {
	return func(c *matchConfig) {
		c.allowEmptyInput = b
	}
}

// Match simulates automaton a on input and returns true if a accepts the
// complete input.
//
// Match returns ErrInvalidAutomaton if a is nil or empty, and ErrInvalidInput
// if input is the empty string (see option AllowEmptyInput).
//
// Match does not modify a. It is safe to call Match concurrently for the same
// automaton.
func Match(a *NFA, input string, opts ...MatchOption) (bool, error) {
	if a.Start() == NoState {
		return false, ErrInvalidAutomaton
	}
	conf := matchConfig{}
	for _, opt := range opts {
		opt(&conf)
	}
	if input == "" && !conf.allowEmptyInput {
		return false, ErrInvalidInput
	}
	current := a.Closure([]State{a.Start()})
	for pos, r := range input {
		var next []State
		for _, s := range current.Values() {
			if a.Kind(s) == Literal && a.Symbol(s) == r {
				next = append(next, a.Next(s))
			}
		}
		if current = a.Closure(next); current == nil {
			tracer().Debugf("no active state left after %q at position %d", r, pos)
			return false, nil
		}
		tracer().Debugf("after %q: %v", r, current)
	}
	return a.accepts(current), nil
}

// accepts checks if a set of states contains an accepting state.
func (a *NFA) accepts(S *StateSet) bool {
	for _, s := range S.Values() {
		if a.IsAccepting(s) {
			return true
		}
	}
	return false
}
