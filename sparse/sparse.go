/*
Package sparse implements a simple type for sparse integer matrices.
It is used for transition tables of automata, where rows are states and
columns are input symbols. Transition tables of Thompson automata are very
sparse: every state has at most two successors.
Every entry in the table is either a single int32 or a pair (int32,int32),
the latter for states with two ε-transitions.

Storage is row-wise: every row holds a slice of (column, pair) entries,
ordered by column.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sparse

import (
	"fmt"
	"sort"
)

// IntMatrix is a type for a sparse matrix of integer values. Construct with
//
//     M := NewIntMatrix(10, 10, -1)  // last parameter is M's null-value
//
// Now
//
//     M.Set(2, 3, 4711)              // set a value
//     v := M.Value(2, 3)             // returns 4711
//     M.Add(2, 3, 123)               // add a second value
//     a, b := M.Values(2, 3)         // returns 4711, 123
//     cnt := M.ValueCount()          // still returns 1 (one position set)
//     v = M.Value(9, 9)              // returns -1, i.e. the null-value
//
// Adding a third value to a position panics.
type IntMatrix struct {
	rows    [][]entry
	colcnt  int
	count   int
	nullval int32
}

// entry is a position within a row, holding up to two values.
type entry struct {
	col  int
	a, b int32
}

// NewIntMatrix creates a new matrix for int, size m x n. The 3rd argument is a null-value,
// indicating empty entries (use DefaultNullValue if you haven't any specific
// requirements).
func NewIntMatrix(m, n int, nullValue int32) *IntMatrix {
	return &IntMatrix{
		rows:    make([][]entry, m),
		colcnt:  n,
		nullval: nullValue,
	}
}

// DefaultNullValue is the default empty-value for matrices (min int32).
const DefaultNullValue = -2147483648

// M returns the row count.
func (m *IntMatrix) M() int {
	return len(m.rows)
}

// N returns the column count.
func (m *IntMatrix) N() int {
	return m.colcnt
}

// NullValue returns this matrix' null value
func (m *IntMatrix) NullValue() int32 {
	return m.nullval
}

// ValueCount returns the number of positions set in the matrix.
func (m *IntMatrix) ValueCount() int {
	return m.count
}

// Value returns the primary value at position (i,j), or NullValue
func (m *IntMatrix) Value(i, j int) int32 {
	a, _ := m.Values(i, j)
	return a
}

// Values returns the pair of values at position (i,j), or (NullValue, NullValue)
func (m *IntMatrix) Values(i, j int) (int32, int32) {
	m.check(i, j)
	row := m.rows[i]
	if k, found := m.find(i, j); found {
		return row[k].a, row[k].b
	}
	return m.nullval, m.nullval
}

// Set a value in the matrix at position (i,j), replacing any values present.
func (m *IntMatrix) Set(i, j int, value int32) *IntMatrix {
	k, found := m.find(i, j)
	if found {
		m.rows[i][k].a, m.rows[i][k].b = value, m.nullval
		return m
	}
	m.insert(i, k, entry{col: j, a: value, b: m.nullval})
	return m
}

// Add a value in the matrix at position (i,j). If (i,j) already holds a
// value, value becomes the second one.
func (m *IntMatrix) Add(i, j int, value int32) *IntMatrix {
	k, found := m.find(i, j)
	if !found {
		m.insert(i, k, entry{col: j, a: value, b: m.nullval})
		return m
	}
	e := &m.rows[i][k]
	if e.a == m.nullval {
		e.a = value
	} else if e.b == m.nullval {
		e.b = value
	} else {
		panic(fmt.Sprintf("sparse.IntMatrix: position (%d,%d) already holds 2 values", i, j))
	}
	return m
}

// EachInRow calls f for every position set in row i, in column order.
func (m *IntMatrix) EachInRow(i int, f func(j int, a, b int32)) {
	m.check(i, 0)
	for _, e := range m.rows[i] {
		f(e.col, e.a, e.b)
	}
}

// find returns the index of column j within row i, or the index where it
// would have to be inserted.
func (m *IntMatrix) find(i, j int) (int, bool) {
	m.check(i, j)
	row := m.rows[i]
	k := sort.Search(len(row), func(k int) bool { return row[k].col >= j })
	return k, k < len(row) && row[k].col == j
}

func (m *IntMatrix) insert(i, k int, e entry) {
	row := append(m.rows[i], entry{})
	copy(row[k+1:], row[k:])
	row[k] = e
	m.rows[i] = row
	m.count++
}

func (m *IntMatrix) check(i, j int) {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= m.colcnt {
		panic(fmt.Sprintf("sparse.IntMatrix: index (%d,%d) out of range %d x %d", i, j, len(m.rows), m.colcnt))
	}
}
