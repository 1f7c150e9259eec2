/*
Package syntax converts regular expressions from infix to postfix notation.

The postfix form makes concatenation explicit, using '.' as an operator, and
needs neither parentheses nor precedence rules any more. It is the input
format for package nfa:

    regex          postfix
    ab             ab.
    a|b|c          abc||
    a(b|c)*d       abc|*.d.

The conversion is a variant of the shunting-yard algorithm. Instead of an
operator stack it keeps two counters for every nesting level of parentheses:
the number of pending alternations and the number of operands of a pending
concatenation. Concatenation is left-associative and is emitted eagerly for
every adjacent pair of atoms, whereas alternations have to wait until the
enclosing group (or the input) ends.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'thompson.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("thompson.syntax")
}
