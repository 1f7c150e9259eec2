/*
Package sya implements Dijkstra's shunting-yard algorithm for infix expressions
with binary operators and function calls.

Expressions consist of single-letter operands (a…z), single-letter function
names (A…Z), binary operators, parentheses and commas separating function
arguments. Whitespace is ignored. Evaluating an expression converts it to
postfix notation (reverse Polish notation):

    a+b*c          abc*+
    a@b@c          abc@@          (@ is right-associative)
    F(a,b)+c       abFc+

Operators are configurable with respect to precedence and associativity.
The default operator table is

    + -     precedence 1, left-associative
    * /     precedence 2, left-associative
    @ #     precedence 3, right-associative

The algorithm is structurally related to the conversion of regular expressions
in package syntax, but independent of it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sya

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thompson.sya'.
func tracer() tracing.Trace {
	return tracing.Select("thompson.sya")
}
