package nfa

import (
	"fmt"
	"io"
	"sort"

	"github.com/npillmayer/thompson/sparse"
)

// Table is a transition table for an automaton. Rows are states, identified
// by their breadth-first numbers (see Number). Column 0 holds ε-transitions,
// the other columns hold transitions for input symbols, one column per
// distinct symbol. Entries are target state numbers.
type Table struct {
	matrix  *sparse.IntMatrix
	symbols []rune       // symbol of column j is symbols[j-1]
	columns map[rune]int // column for symbol
	accept  []bool       // accepting states by number
}

// TransitionTable creates a transition table for automaton a. It returns nil
// for an empty automaton.
func TransitionTable(a *NFA) *Table {
	if a.Start() == NoState {
		return nil
	}
	ids := a.Number(0)
	t := &Table{columns: make(map[rune]int)}
	cnt := 0
	a.bfs(func(s State) {
		cnt++
		if a.Kind(s) == Literal {
			if _, ok := t.columns[a.Symbol(s)]; !ok {
				t.columns[a.Symbol(s)] = 0
				t.symbols = append(t.symbols, a.Symbol(s))
			}
		}
	})
	sort.Slice(t.symbols, func(i, j int) bool { return t.symbols[i] < t.symbols[j] })
	for j, sym := range t.symbols {
		t.columns[sym] = j + 1
	}
	tracer().Debugf("transition table of size %d x %d", cnt, len(t.symbols)+1)
	t.matrix = sparse.NewIntMatrix(cnt, len(t.symbols)+1, sparse.DefaultNullValue)
	t.accept = make([]bool, cnt)
	a.bfs(func(s State) {
		row := ids[s]
		switch a.Kind(s) {
		case Literal:
			t.matrix.Set(row, t.columns[a.Symbol(s)], int32(ids[a.Next(s)]))
		case Split:
			s1, s2 := a.Out(s)
			t.matrix.Add(row, 0, int32(ids[s1]))
			t.matrix.Add(row, 0, int32(ids[s2]))
		case Accept:
			t.accept[row] = true
		}
	})
	return t
}

// States returns the number of rows.
func (t *Table) States() int {
	return t.matrix.M()
}

// Symbols returns the input symbols of the table, in column order.
func (t *Table) Symbols() []rune {
	return t.symbols
}

// NullValue is the table's value for "no transition".
func (t *Table) NullValue() int32 {
	return t.matrix.NullValue()
}

// Epsilon returns the ε-successors of state number id.
func (t *Table) Epsilon(id int) (int32, int32) {
	return t.matrix.Values(id, 0)
}

// Target returns the successor of state number id for input symbol sym,
// or NullValue.
func (t *Table) Target(id int, sym rune) int32 {
	j, ok := t.columns[sym]
	if !ok {
		return t.matrix.NullValue()
	}
	return t.matrix.Value(id, j)
}

// IsAccepting returns true if state number id is an accepting state.
func (t *Table) IsAccepting(id int) bool {
	return id >= 0 && id < len(t.accept) && t.accept[id]
}

// TableAsHTML exports a transition table in HTML-format. It returns the
// first error from writing to w.
func TableAsHTML(t *Table, w io.Writer) error {
	if t == nil {
		tracer().Errorf("no transition table, cannot export to HTML")
		return ErrInvalidAutomaton
	}
	var err error
	write := func(s string) {
		if err == nil {
			_, err = io.WriteString(w, s)
		}
	}
	write("<html><body>\n")
	write(fmt.Sprintf("transition table of size = %d<p>", t.matrix.ValueCount()))
	write("<table border=1 cellspacing=0 cellpadding=5>\n")
	write("<tr bgcolor=#cccccc><td></td><td>&epsilon;</td>")
	for _, sym := range t.symbols {
		write(fmt.Sprintf("<td>%c</td>", sym))
	}
	write("</tr>\n")
	var td string // table cell
	for id := 0; id < t.States(); id++ {
		if t.IsAccepting(id) {
			write(fmt.Sprintf("<tr><td><b>state %d</b></td>\n", id))
		} else {
			write(fmt.Sprintf("<tr><td>state %d</td>\n", id))
		}
		for j := 0; j <= len(t.symbols); j++ {
			v1, v2 := t.matrix.Values(id, j)
			if v1 == t.NullValue() {
				td = "&nbsp;"
			} else if v2 == t.NullValue() {
				td = fmt.Sprintf("%d", v1)
			} else {
				td = fmt.Sprintf("%d/%d", v1, v2)
			}
			write("<td>" + td + "</td>\n")
		}
		write("</tr>\n")
	}
	write("</table></body></html>\n")
	return err
}
