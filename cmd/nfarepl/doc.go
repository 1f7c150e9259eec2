/*
Command nfarepl provides an interactive command line tool for experiments
with Thompson automata. Users enter regular expressions and input strings;
nfarepl will show the postfix form of an expression, its automaton and the
result of simulating the automaton on the input.

Commands are

    post  RE              postfix form of RE
    nfa   RE              states of the automaton for RE
    tree  RE              expression tree of RE
    match RE INPUT        simulate the automaton for RE on INPUT
    dot   RE FILE         export the automaton for RE in GraphViz format
    table RE [FILE]       transition table for RE, optionally as HTML file
    def   NAME RE         name RE; refer to it as $NAME
    list                  list named expressions
    eval  EXPR            convert an arithmetic expression to postfix
    quit

Wherever a command expects a pattern, '_' denotes the most recently used
expression.

Flags are

    -trace LEVEL          trace level [Debug|Info|Error]
    -init FILE            file of commands to execute at startup

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thompson.repl'
func tracer() tracing.Trace {
	return tracing.Select("thompson.repl")
}
