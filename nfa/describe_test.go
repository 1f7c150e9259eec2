package nfa

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNumber(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	a := Build("a")
	ids := a.Number(0)
	if ids[a.Start()] != 0 || ids[a.Next(a.Start())] != 1 {
		t.Errorf("Expected 'a' to be numbered 0 → 1, is %v", ids)
	}
	//
	a = Build("ab.")
	ids = a.Number(1)
	s := a.Start()
	if ids[s] != 1 || ids[a.Next(s)] != 2 || ids[a.Next(a.Next(s))] != 3 {
		t.Errorf("Expected 'ab.' to be numbered 1 → 2 → 3, is %v", ids)
	}
	//
	a = Build("ab|")
	ids = a.Number(1)
	s1, s2 := a.Out(a.Start())
	if ids[a.Start()] != 1 || ids[s1] != 2 || ids[s2] != 3 || ids[a.Next(s1)] != 4 || ids[a.Next(s2)] != 4 {
		t.Errorf("Unexpected numbering for 'ab|': %v", ids)
	}
	//
	a = Build("a*")
	ids = a.Number(1)
	s1, s2 = a.Out(a.Start())
	if ids[a.Start()] != 1 || ids[s1] != 2 || ids[s2] != 3 || ids[a.Next(s1)] != 1 {
		t.Errorf("Unexpected numbering for 'a*': %v", ids)
	}
	//
	a = Build("a+")
	ids = a.Number(1)
	split := a.Next(a.Start())
	s1, s2 = a.Out(split)
	if ids[a.Start()] != 1 || ids[split] != 2 || ids[s1] != 1 || ids[s2] != 3 {
		t.Errorf("Unexpected numbering for 'a+': %v", ids)
	}
	//
	a = Build("a?")
	ids = a.Number(1)
	s1, s2 = a.Out(a.Start())
	if ids[a.Start()] != 1 || ids[s1] != 2 || ids[s2] != 3 || ids[a.Next(s1)] != 3 {
		t.Errorf("Unexpected numbering for 'a?': %v", ids)
	}
}

func TestDescribe(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	expected := strings.Join([]string{
		"[id:00][Spl] --- ε ---> [id:01]",
		strings.Repeat(" ", 13) + "`-- ε ---> [id:02]",
		"[id:01][Lit] --- a ---> [id:00]",
		"[id:02][Acc]",
	}, "\n")
	if d := Describe(Build("a*")); d != expected {
		t.Errorf("Expected description of 'a*' to be\n%s\nis\n%s", expected, d)
	}
	expected = strings.Join([]string{
		"[id:00][Lit] --- a ---> [id:01]",
		"[id:01][Lit] --- b ---> [id:02]",
		"[id:02][Acc]",
	}, "\n")
	if d := Describe(Build("ab.")); d != expected {
		t.Errorf("Expected description of 'ab.' to be\n%s\nis\n%s", expected, d)
	}
	if d := Describe(nil); d != "<empty NFA>" {
		t.Errorf("Expected description of nil NFA to be <empty NFA>, is %q", d)
	}
}

func TestTransitionTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	tbl := TransitionTable(Build("ab|"))
	if tbl.States() != 4 {
		t.Fatalf("Expected table with 4 states, has %d", tbl.States())
	}
	if syms := tbl.Symbols(); len(syms) != 2 || syms[0] != 'a' || syms[1] != 'b' {
		t.Errorf("Expected symbols [a b], are %q", syms)
	}
	if e1, e2 := tbl.Epsilon(0); e1 != 1 || e2 != 2 {
		t.Errorf("Expected ε-transitions of state 0 to be 1/2, are %d/%d", e1, e2)
	}
	if tgt := tbl.Target(1, 'a'); tgt != 3 {
		t.Errorf("Expected state 1 to go to 3 on 'a', is %d", tgt)
	}
	if tgt := tbl.Target(1, 'b'); tgt != tbl.NullValue() {
		t.Errorf("Expected no transition for state 1 on 'b', is %d", tgt)
	}
	if tgt := tbl.Target(2, 'x'); tgt != tbl.NullValue() {
		t.Errorf("Expected no transition for unknown symbol, is %d", tgt)
	}
	if !tbl.IsAccepting(3) || tbl.IsAccepting(0) {
		t.Errorf("Expected state 3 to be the only accepting state")
	}
	var html bytes.Buffer
	if err := TableAsHTML(tbl, &html); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html.String(), "<td>1/2</td>") {
		t.Errorf("Expected HTML table to contain ε-pair 1/2, is\n%s", html.String())
	}
	if TransitionTable(nil) != nil {
		t.Errorf("Expected no table for nil NFA")
	}
}

// failingWriter accepts n writes, then fails.
type failingWriter struct {
	n int
}

var errWriteFailed = errors.New("write failed")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errWriteFailed
	}
	w.n--
	return len(p), nil
}

func TestTableAsHTMLWriteError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	tbl := TransitionTable(Build("ab|"))
	if err := TableAsHTML(tbl, &failingWriter{n: 3}); !errors.Is(err, errWriteFailed) {
		t.Errorf("Expected write error to be reported, is %v", err)
	}
	if err := TableAsHTML(nil, &bytes.Buffer{}); !errors.Is(err, ErrInvalidAutomaton) {
		t.Errorf("Expected missing table to be rejected, is %v", err)
	}
	if err := ToGraphViz(Build("ab|"), &failingWriter{n: 1}); !errors.Is(err, errWriteFailed) {
		t.Errorf("Expected GraphViz write error to be reported, is %v", err)
	}
}

func TestGraphViz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	var dot bytes.Buffer
	if err := ToGraphViz(Build("ab|*"), &dot); err != nil {
		t.Fatal(err)
	}
	out := dot.String()
	for _, frag := range []string{"digraph {", "start -> s000", "doublecircle", `[label="a"]`, "style=dashed"} {
		if !strings.Contains(out, frag) {
			t.Errorf("Expected Dot output to contain %q, is\n%s", frag, out)
		}
	}
	if err := ToGraphViz(nil, &dot); err == nil {
		t.Errorf("Expected export of nil NFA to fail")
	}
}

func TestFingerprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "thompson.nfa")
	defer teardown()
	//
	f1, err := compile(t, "(a)").Fingerprint()
	if err != nil {
		t.Fatal(err)
	}
	f2, _ := compile(t, "a").Fingerprint()
	if f1 != f2 {
		t.Errorf("Expected '(a)' and 'a' to have the same fingerprint, are %s and %s", f1, f2)
	}
	f1, _ = compile(t, "a|b").Fingerprint()
	f2, _ = compile(t, "b|a").Fingerprint()
	if f1 == f2 {
		t.Errorf("Expected 'a|b' and 'b|a' to have different fingerprints")
	}
	f1, _ = compile(t, "(a|b)*c").Fingerprint()
	f2, _ = compile(t, "(a|b)*c").Fingerprint()
	if f1 != f2 {
		t.Errorf("Expected equal expressions to have the same fingerprint")
	}
	if _, err := (*NFA)(nil).Fingerprint(); err == nil {
		t.Errorf("Expected fingerprint of nil NFA to fail")
	}
}
