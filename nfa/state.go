package nfa

import "fmt"

// State is a handle for a state within an automaton. Handles are only
// meaningful together with the NFA they have been created by.
type State int32

// NoState denotes an unset transition.
const NoState State = -1

// Kind is the variant of a state.
type Kind uint8

// Kinds of states. Invalid is returned for handles not denoting a state.
const (
	Invalid Kind = iota
	Literal      // consumes a symbol, one successor
	Split        // two ε-successors
	Accept       // final state, no successors
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Lit"
	case Split:
		return "Spl"
	case Accept:
		return "Acc"
	}
	return "???"
}

// node is the arena record of a state. Literal states use out[0] only,
// Split states use both slots, Accept states none.
type node struct {
	kind   Kind
	symbol rune
	out    [2]State
}

// NFA is an automaton created by Build. Its states are stored in an arena,
// which is the single owner of all the states.
//
// The zero value is an empty automaton without a start state.
type NFA struct {
	nodes []node
	start State
}

// Start returns the start state of the automaton, or NoState for an empty
// automaton.
func (a *NFA) Start() State {
	if a == nil || len(a.nodes) == 0 {
		return NoState
	}
	return a.start
}

// Size returns the number of states of the automaton.
func (a *NFA) Size() int {
	if a == nil {
		return 0
	}
	return len(a.nodes)
}

func (a *NFA) valid(s State) bool {
	return a != nil && s >= 0 && int(s) < len(a.nodes)
}

// Kind returns the kind of state s, or Invalid if s is not a state of a.
func (a *NFA) Kind(s State) Kind {
	if !a.valid(s) {
		return Invalid
	}
	return a.nodes[s].kind
}

// Symbol returns the input symbol of a Literal state. For other kinds of
// states Symbol returns 0.
func (a *NFA) Symbol(s State) rune {
	if a.Kind(s) != Literal {
		return 0
	}
	return a.nodes[s].symbol
}

// Out returns the successors of state s. For Literal states the second
// successor is always NoState, for Accept states both are.
func (a *NFA) Out(s State) (State, State) {
	if !a.valid(s) {
		return NoState, NoState
	}
	n := a.nodes[s]
	return n.out[0], n.out[1]
}

// Next returns the successor of a Literal state, or NoState.
func (a *NFA) Next(s State) State {
	if a.Kind(s) != Literal {
		return NoState
	}
	return a.nodes[s].out[0]
}

// IsAccepting returns true if s is an Accept state.
func (a *NFA) IsAccepting(s State) bool {
	return a.Kind(s) == Accept
}

func (a *NFA) String() string {
	if a == nil {
		return "<nil NFA>"
	}
	return fmt.Sprintf("NFA[%d states, start=%d]", len(a.nodes), a.start)
}

// --- Construction ----------------------------------------------------------

// ConstructionConflict is the panic value raised when a transition is about
// to be set which is already connected. It signals a bug in the construction
// algorithm, not an input error.
type ConstructionConflict struct {
	State  State
	Kind   Kind
	Target State
}

func (c ConstructionConflict) Error() string {
	return fmt.Sprintf("construction conflict: cannot connect %s state %d to %d, transitions already set",
		c.Kind, c.State, c.Target)
}

func (a *NFA) newState(k Kind, sym rune) State {
	a.nodes = append(a.nodes, node{kind: k, symbol: sym, out: [2]State{NoState, NoState}})
	return State(len(a.nodes) - 1)
}

func (a *NFA) newLiteral(sym rune) State {
	return a.newState(Literal, sym)
}

// newSplit creates a Split state with its first transition set to first.
func (a *NFA) newSplit(first State) State {
	s := a.newState(Split, 0)
	a.nodes[s].out[0] = first
	return s
}

func (a *NFA) newAccept() State {
	return a.newState(Accept, 0)
}

// connect fills the first unset transition of s with a transition to target.
// Overwriting a transition panics with a ConstructionConflict.
func (a *NFA) connect(s, target State) {
	n := &a.nodes[s]
	switch n.kind {
	case Literal:
		if n.out[0] == NoState {
			n.out[0] = target
			return
		}
	case Split:
		if n.out[0] == NoState {
			n.out[0] = target
			return
		} else if n.out[1] == NoState {
			n.out[1] = target
			return
		}
	}
	c := ConstructionConflict{State: s, Kind: n.kind, Target: target}
	tracer().Errorf(c.Error())
	panic(c)
}

// isOpen is true if s has a transition which is not yet connected.
func (a *NFA) isOpen(s State) bool {
	n := a.nodes[s]
	switch n.kind {
	case Literal:
		return n.out[0] == NoState
	case Split:
		return n.out[0] == NoState || n.out[1] == NoState
	}
	return false
}
