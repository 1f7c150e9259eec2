package nfa

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/utils"
)

// StateSet is a set of states, ordered by handle. The zero value is not
// usable; create one with NewStateSet. Methods which only read the set
// accept a nil set, which is treated as empty.
type StateSet struct {
	states *treeset.Set
}

// We need this for sets of states. It sorts states by handle.
func stateComparator(s1, s2 interface{}) int {
	return utils.IntComparator(int(s1.(State)), int(s2.(State)))
}

// NewStateSet creates a set of states, initially containing states.
func NewStateSet(states ...State) *StateSet {
	S := &StateSet{states: treeset.NewWith(stateComparator)}
	for _, s := range states {
		S.states.Add(s)
	}
	return S
}

// Add adds a state to the set.
func (S *StateSet) Add(s State) {
	S.states.Add(s)
}

// Contains checks if s is a member of S.
func (S *StateSet) Contains(s State) bool {
	if S == nil {
		return false
	}
	return S.states.Contains(s)
}

// Size returns the number of states in S.
func (S *StateSet) Size() int {
	if S == nil {
		return 0
	}
	return S.states.Size()
}

// Empty is true for a set without states.
func (S *StateSet) Empty() bool {
	return S.Size() == 0
}

// Values returns the states of S in ascending order of their handles.
func (S *StateSet) Values() []State {
	if S == nil {
		return nil
	}
	r := make([]State, 0, S.states.Size())
	it := S.states.Iterator()
	for it.Next() {
		r = append(r, it.Value().(State))
	}
	return r
}

// Equals checks if two sets contain the same states.
func (S *StateSet) Equals(other *StateSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, s := range S.Values() {
		if !other.Contains(s) {
			return false
		}
	}
	return true
}

func (S *StateSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, s := range S.Values() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf(" %d", s))
	}
	b.WriteString(" }")
	return b.String()
}

// Closure computes the epsilon closure of a set of states, i.e. all the
// states reachable from states by following zero or more transitions of
// Split states. The closure contains the given states themselves.
//
// Closure returns nil if no (valid) state is given.
//
// Automata may contain loops of Split states. Closure therefore works off an
// explicit worklist and never visits a state twice.
func (a *NFA) Closure(states []State) *StateSet {
	if len(states) == 0 {
		return nil
	}
	C := NewStateSet()
	worklist := arraystack.New()
	for _, s := range states {
		worklist.Push(s)
	}
	for !worklist.Empty() {
		x, _ := worklist.Pop()
		s := x.(State)
		if !a.valid(s) || C.Contains(s) {
			continue
		}
		C.Add(s)
		if a.Kind(s) == Split {
			s1, s2 := a.Out(s)
			worklist.Push(s2)
			worklist.Push(s1)
		}
	}
	if C.Empty() {
		return nil
	}
	return C
}
