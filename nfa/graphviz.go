package nfa

import (
	"fmt"
	"io"
)

// ToGraphViz exports an automaton to the Graphviz Dot format. States are
// labeled with their breadth-first identifiers (see Number).
func ToGraphViz(a *NFA, w io.Writer) error {
	if a.Start() == NoState {
		return ErrInvalidAutomaton
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write(`digraph {
graph [rankdir=LR, splines=true, fontname=Helvetica, fontsize=10];
node [style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

`)
	ids := a.Number(0)
	a.bfs(func(s State) {
		write(fmt.Sprintf("s%03d [shape=%s fillcolor=%s label=\"%02d\"]\n",
			ids[s], nodeshape(a, s), nodecolor(a, s), ids[s]))
	})
	a.bfs(func(s State) {
		switch a.Kind(s) {
		case Literal:
			write(fmt.Sprintf("s%03d -> s%03d [label=%q]\n", ids[s], ids[a.Next(s)], string(a.Symbol(s))))
		case Split:
			s1, s2 := a.Out(s)
			write(fmt.Sprintf("s%03d -> s%03d [label=\"ε\" style=dashed]\n", ids[s], ids[s1]))
			write(fmt.Sprintf("s%03d -> s%03d [label=\"ε\" style=dashed]\n", ids[s], ids[s2]))
		}
	})
	write(fmt.Sprintf("start [shape=point]\nstart -> s%03d\n", ids[a.Start()]))
	write("}\n")
	return err
}

func nodeshape(a *NFA, s State) string {
	if a.IsAccepting(s) {
		return "doublecircle"
	}
	return "circle"
}

func nodecolor(a *NFA, s State) string {
	switch a.Kind(s) {
	case Accept:
		return "lightgray"
	case Split:
		return "lightyellow"
	}
	return "white"
}
