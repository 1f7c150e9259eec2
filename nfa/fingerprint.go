package nfa

import (
	"github.com/cnf/structhash"
)

// shape is the structure of an automaton with states replaced by their
// breadth-first numbers. Automata with equal shapes are isomorphic.
type shape struct {
	States []shapeState
}

type shapeState struct {
	Kind   uint8
	Symbol int32
	Out    []int
}

// Fingerprint returns a hash of the structure of automaton a. States are
// hashed in breadth-first order, so the fingerprint does not depend on the
// order in which states have been created. Two automata built from `(a)` and
// `a` share a fingerprint, `a|b` and `b|a` do not.
func (a *NFA) Fingerprint() (string, error) {
	if a.Start() == NoState {
		return "", ErrInvalidAutomaton
	}
	ids := a.Number(0)
	id := func(s State) int {
		if s == NoState {
			return -1
		}
		return ids[s]
	}
	sh := shape{States: make([]shapeState, 0, a.Size())}
	a.bfs(func(s State) {
		s1, s2 := a.Out(s)
		sh.States = append(sh.States, shapeState{
			Kind:   uint8(a.Kind(s)),
			Symbol: int32(a.Symbol(s)),
			Out:    []int{id(s1), id(s2)},
		})
	})
	return structhash.Hash(sh, 1)
}
