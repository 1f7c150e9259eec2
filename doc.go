/*
Package thompson compiles regular expressions into nondeterministic finite
automata (NFAs), using Ken Thompson's construction, and simulates them
without backtracking.

Compiling is a pipeline of three stages:

■ syntax: Package syntax rewrites an infix regular expression into postfix
order, inserting an explicit concatenation operator '.'.

■ nfa: Package nfa builds an automaton from a postfix expression and simulates
it against input strings. It contains some diagnostic helpers, too.

■ sya: Package sya implements a generalized shunting-yard algorithm for
arithmetic-like expressions with functions. It is not part of the pipeline.

The base package contains the types shared by the tokenizing packages and a
small facade for the pipeline:

    re, err := thompson.Compile("a(b|c)*d")
    if err != nil {
        …
    }
    ok, err := re.Match("abcbd")   // ok == true

Supported regular expression syntax is deliberately minimal: literals, '.'
for concatenation (implicit in infix form), '|', '?', '*', '+' and grouping
parentheses.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package thompson
