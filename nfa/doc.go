/*
Package nfa builds nondeterministic finite automata from postfix regular
expressions and simulates them.

Construction follows Ken Thompson's algorithm: a postfix expression is
interpreted by a stack machine, where every stack entry is a partially built
automaton (a fragment). Fragments have "open ends", i.e. states with a
transition not yet connected. Operators pop fragments, wire them together and
push the result. Finally the single remaining fragment is closed by
connecting all of its open ends to an accepting state.

Automata consist of three kinds of states:

    Literal   consumes one input symbol and has exactly one successor
    Split     has two successors, reachable without consuming input (ε)
    Accept    has no successors; reaching it after the input is consumed
              means the input matches

States live in an arena owned by an NFA and are addressed by integer handles
of type State. Loops (from '*' and '+') and states shared between paths are
therefore plain handle equality. Once Build returns, an NFA is never modified
again and may be shared between goroutines running Match.

Simulation does not backtrack: it keeps the epsilon closure of all states
active after the input consumed so far and steps this set over every input
symbol.

    postfix := syntax.MustConvert("a(b|c)*d")
    a := nfa.Build(postfix)
    ok, err := nfa.Match(a, "abcbd")   // ok == true

Diagnostics

Describe renders an automaton in a line-oriented text format, ToGraphViz
exports it in Graphviz Dot format and TransitionTable creates a transition
table, which may be exported to HTML.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nfa

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thompson.nfa'.
func tracer() tracing.Trace {
	return tracing.Select("thompson.nfa")
}
