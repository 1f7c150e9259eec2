package nfa

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/thompson/syntax"
)

func TestBuildOneChar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	a := Build("a")
	if a == nil {
		t.Fatalf("Expected NFA for 'a', got nil")
	}
	start := a.Start()
	if a.Kind(start) != Literal || a.Symbol(start) != 'a' {
		t.Errorf("Expected start to be literal 'a', is %s %q", a.Kind(start), a.Symbol(start))
	}
	if !a.IsAccepting(a.Next(start)) {
		t.Errorf("Expected successor of 'a' to be accepting, is %s", a.Kind(a.Next(start)))
	}
	if a.Size() != 2 {
		t.Errorf("Expected NFA to have 2 states, has %d", a.Size())
	}
}

func TestBuildConcat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	a := Build("ab.")
	start := a.Start()
	if a.Kind(start) != Literal || a.Symbol(start) != 'a' {
		t.Fatalf("Expected start to be literal 'a', is %s", a.Kind(start))
	}
	second := a.Next(start)
	if a.Kind(second) != Literal || a.Symbol(second) != 'b' {
		t.Fatalf("Expected second state to be literal 'b', is %s", a.Kind(second))
	}
	if !a.IsAccepting(a.Next(second)) {
		t.Errorf("Expected state after 'b' to be accepting")
	}
}

func TestBuildAlternate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	a := Build("ab|")
	start := a.Start()
	if a.Kind(start) != Split {
		t.Fatalf("Expected start to be split, is %s", a.Kind(start))
	}
	s1, s2 := a.Out(start)
	if a.Symbol(s1) != 'a' || a.Symbol(s2) != 'b' {
		t.Errorf("Expected split to 'a' and 'b', is %q and %q", a.Symbol(s1), a.Symbol(s2))
	}
	if a.Next(s1) != a.Next(s2) || !a.IsAccepting(a.Next(s1)) {
		t.Errorf("Expected both branches to end in the same accepting state")
	}
}

func TestBuildStar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	a := Build("a*")
	start := a.Start()
	if a.Kind(start) != Split {
		t.Fatalf("Expected start to be split, is %s", a.Kind(start))
	}
	s1, s2 := a.Out(start)
	if a.Kind(s1) != Literal || a.Symbol(s1) != 'a' {
		t.Errorf("Expected first branch to be literal 'a', is %s", a.Kind(s1))
	}
	if !a.IsAccepting(s2) {
		t.Errorf("Expected second branch to be accepting, is %s", a.Kind(s2))
	}
	if a.Next(s1) != start {
		t.Errorf("Expected 'a' to loop back to start")
	}
}

func TestBuildPlus(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	a := Build("a+")
	start := a.Start()
	if a.Kind(start) != Literal || a.Symbol(start) != 'a' {
		t.Fatalf("Expected start to be literal 'a', is %s", a.Kind(start))
	}
	split := a.Next(start)
	if a.Kind(split) != Split {
		t.Fatalf("Expected successor of 'a' to be split, is %s", a.Kind(split))
	}
	s1, s2 := a.Out(split)
	if s1 != start {
		t.Errorf("Expected split to loop back to start")
	}
	if !a.IsAccepting(s2) {
		t.Errorf("Expected second branch of split to be accepting")
	}
}

func TestBuildQuestion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	a := Build("a?")
	start := a.Start()
	if a.Kind(start) != Split {
		t.Fatalf("Expected start to be split, is %s", a.Kind(start))
	}
	s1, s2 := a.Out(start)
	if a.Symbol(s1) != 'a' {
		t.Errorf("Expected first branch to be literal 'a'")
	}
	if !a.IsAccepting(s2) {
		t.Errorf("Expected second branch to be accepting")
	}
	if a.Next(s1) != s2 {
		t.Errorf("Expected 'a' to lead to the accepting state")
	}
}

func TestBuildMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	for _, postfix := range []string{
		"",     // nothing to build
		"a*b",  // two fragments left
		"(ab)", // infix not supported
		".",    // missing operands
		"a.",   // missing right operand
		"*",    // nothing to repeat
		"ab|.", // missing operand for concatenation
	} {
		if a := Build(postfix); a != nil {
			t.Errorf("Expected Build(%q) to return nil, is %v", postfix, a)
		}
	}
}

// After Build, no state may have an unconnected transition.
func TestBuildLeavesNoOpenEnds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	for _, regex := range []string{
		"a", "ab", "a|b|c", "a*", "a+", "a?", "a(b|c)*d", "(a|b)*c(d|e)?",
		"(a*)*", "(a?)+", "((a|b)?c*)+d", "a??", "a*+?",
	} {
		a := Build(syntax.MustConvert(regex))
		if a == nil {
			t.Errorf("Expected NFA for %q, got nil", regex)
			continue
		}
		accepting := 0
		a.bfs(func(s State) {
			if a.isOpen(s) {
				t.Errorf("%q: state %d (%s) has an open transition", regex, s, a.Kind(s))
			}
			if a.IsAccepting(s) {
				accepting++
			}
		})
		if accepting != 1 {
			t.Errorf("%q: expected exactly 1 accepting state, have %d", regex, accepting)
		}
	}
}

func TestConstructionConflict(t *testing.T) {
	a := &NFA{}
	s := a.newLiteral('a')
	acc := a.newAccept()
	a.connect(s, acc)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected connecting a connected literal to panic")
		}
		c, ok := r.(ConstructionConflict)
		if !ok {
			t.Fatalf("Expected panic value to be a ConstructionConflict, is %T", r)
		}
		if c.State != s || c.Kind != Literal {
			t.Errorf("Expected conflict for literal %d, is %s %d", s, c.Kind, c.State)
		}
	}()
	a.connect(s, s)
}

func TestConnectAccept(t *testing.T) {
	a := &NFA{}
	acc := a.newAccept()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected connecting an accept state to panic")
		}
	}()
	a.connect(acc, acc)
}
