package nfa

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/lists/arraylist"
)

// bfs visits all states reachable from the start state, breadth first.
// A state reachable by more than one path is visited once.
func (a *NFA) bfs(visit func(State)) {
	if a.Start() == NoState {
		return
	}
	visited := make([]bool, a.Size())
	queue := arraylist.New()
	queue.Add(a.start)
	for !queue.Empty() {
		x, _ := queue.Get(0)
		queue.Remove(0)
		s := x.(State)
		if !a.valid(s) || visited[s] {
			continue
		}
		visited[s] = true
		visit(s)
		switch a.Kind(s) {
		case Literal:
			queue.Add(a.Next(s))
		case Split:
			s1, s2 := a.Out(s)
			queue.Add(s1, s2)
		}
	}
}

// Number assigns sequential identifiers to all states reachable from the
// start state, in breadth-first order and starting with from. The result is
// indexed by state handle; unreachable states get -1.
//
// Identifiers are for diagnostic purposes only. They are not stored in the
// automaton, therefore Number may be called concurrently.
func (a *NFA) Number(from int) []int {
	ids := make([]int, a.Size())
	for i := range ids {
		ids[i] = -1
	}
	a.bfs(func(s State) {
		ids[s] = from
		from++
	})
	return ids
}

func idString(ids []int, s State) string {
	if s < 0 || int(s) >= len(ids) || ids[s] < 0 {
		return "[id:--]"
	}
	return fmt.Sprintf("[id:%02d]", ids[s])
}

// Describe renders an automaton as text, one line per Literal or Accept state
// and two lines per Split state. States are numbered breadth-first:
//
//    [id:00][Spl] --- ε ---> [id:01]
//                 `-- ε ---> [id:02]
//    [id:01][Lit] --- a ---> [id:00]
//    [id:02][Acc]
//
func Describe(a *NFA) string {
	if a.Start() == NoState {
		return "<empty NFA>"
	}
	ids := a.Number(0)
	lines := make([]string, 0, a.Size()+1)
	a.bfs(func(s State) {
		switch a.Kind(s) {
		case Literal:
			lines = append(lines, fmt.Sprintf("%s[%s] --- %c ---> %s",
				idString(ids, s), Literal, a.Symbol(s), idString(ids, a.Next(s))))
		case Split:
			s1, s2 := a.Out(s)
			first := fmt.Sprintf("%s[%s] --- ε ---> %s", idString(ids, s), Split, idString(ids, s1))
			second := fmt.Sprintf("`-- ε ---> %s", idString(ids, s2))
			// right-align second line with first one
			width := utf8.RuneCountInString(first)
			lines = append(lines, first, fmt.Sprintf("%*s", width, second))
		case Accept:
			lines = append(lines, fmt.Sprintf("%s[%s]", idString(ids, s), Accept))
		}
	})
	return strings.Join(lines, "\n")
}
