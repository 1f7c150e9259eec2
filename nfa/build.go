package nfa

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/thompson/syntax"
)

// fragment is a partially built automaton, living on the construction stack
// only. A fragment is open as long as it has open ends, and closed as soon as
// it has been connected to an accepting state.
type fragment struct {
	start    State
	openEnds []State // states with an unconnected transition
	accept   State
}

func (f *fragment) isOpen() bool {
	return len(f.openEnds) > 0 && f.accept == NoState
}

func (f *fragment) isClosed() bool {
	return len(f.openEnds) == 0 && f.accept != NoState
}

func (f *fragment) String() string {
	return fmt.Sprintf("frag(start=%d, ends=%v)", f.start, f.openEnds)
}

// builder is the stack machine interpreting postfix tokens.
type builder struct {
	nfa   *NFA
	stack *arraystack.Stack // of *fragment
}

func (b *builder) push(start State, openEnds ...State) {
	b.stack.Push(&fragment{start: start, openEnds: openEnds, accept: NoState})
}

func (b *builder) pop() (*fragment, bool) {
	f, ok := b.stack.Pop()
	if !ok {
		return nil, false
	}
	return f.(*fragment), true
}

// pop2 pops the right operand, then the left operand of a binary operator.
func (b *builder) pop2() (left *fragment, right *fragment, ok bool) {
	if right, ok = b.pop(); !ok {
		return
	}
	left, ok = b.pop()
	return
}

// patch connects every state in ends to target.
func (b *builder) patch(ends []State, target State) {
	for _, s := range ends {
		b.nfa.connect(s, target)
	}
}

// Build creates an automaton from a regular expression in postfix notation,
// as produced by syntax.Convert.
//
// Build returns nil if postfix is empty or malformed, i.e. if the postfix
// tokens do not reduce to exactly one automaton. Infix expressions will
// usually be rejected as well.
//
// Build panics with a ConstructionConflict if it is about to overwrite a
// transition. This cannot be triggered by any input and indicates a bug.
func Build(postfix string) *NFA {
	if postfix == "" {
		tracer().Infof("no postfix expression to build an NFA from")
		return nil
	}
	b := &builder{nfa: &NFA{}, stack: arraystack.New()}
	for _, r := range postfix {
		if !b.step(r) {
			tracer().Infof("malformed postfix expression %q: missing operand for '%c'", postfix, r)
			return nil
		}
	}
	if b.stack.Size() != 1 {
		tracer().Infof("malformed postfix expression %q: %d fragments left", postfix, b.stack.Size())
		return nil
	}
	f, _ := b.pop()
	if !f.isOpen() {
		panic(fmt.Sprintf("final fragment %v is expected to be open", f))
	}
	accept := b.nfa.newAccept()
	b.patch(f.openEnds, accept)
	f.openEnds = nil
	f.accept = accept
	if !f.isClosed() {
		panic(fmt.Sprintf("final fragment %v is expected to be closed", f))
	}
	b.nfa.start = f.start
	tracer().Debugf("built %v from %q", b.nfa, postfix)
	return b.nfa
}

// step interprets a single postfix token. It returns false on a stack
// underflow.
func (b *builder) step(r rune) bool {
	tracer().Debugf("token %q, stack size = %d", r, b.stack.Size())
	switch r {
	case syntax.Concat:
		left, right, ok := b.pop2()
		if !ok {
			return false
		}
		b.patch(left.openEnds, right.start)
		left.openEnds = right.openEnds
		b.stack.Push(left)
	case syntax.Alternate:
		left, right, ok := b.pop2()
		if !ok {
			return false
		}
		s := b.nfa.newSplit(left.start)
		b.nfa.connect(s, right.start)
		ends := make([]State, 0, len(left.openEnds)+len(right.openEnds))
		ends = append(ends, left.openEnds...)
		ends = append(ends, right.openEnds...)
		b.push(s, ends...)
	case syntax.Optional:
		f, ok := b.pop()
		if !ok {
			return false
		}
		s := b.nfa.newSplit(f.start) // second transition skips f
		ends := make([]State, 0, len(f.openEnds)+1)
		ends = append(ends, f.openEnds...)
		b.push(s, append(ends, s)...)
	case syntax.Star:
		f, ok := b.pop()
		if !ok {
			return false
		}
		s := b.nfa.newSplit(f.start)
		b.patch(f.openEnds, s) // loop back
		b.push(s, s)
	case syntax.Plus:
		f, ok := b.pop()
		if !ok {
			return false
		}
		s := b.nfa.newSplit(f.start)
		b.patch(f.openEnds, s) // loop back, f has to be passed at least once
		f.openEnds = []State{s}
		b.stack.Push(f)
	default:
		s := b.nfa.newLiteral(r)
		b.push(s, s)
	}
	return true
}
