package main

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/thompson/syntax"
	"github.com/pterm/pterm"
)

var errMalformedPostfix = errors.New("malformed postfix expression")

// exprNode is a node of an expression tree, as reconstructed from a postfix
// expression.
type exprNode struct {
	op       rune
	children []*exprNode
}

func (n *exprNode) label() string {
	switch n.op {
	case syntax.Concat:
		return ". concat"
	case syntax.Alternate:
		return "| alternate"
	case syntax.Star:
		return "* star"
	case syntax.Plus:
		return "+ plus"
	case syntax.Optional:
		return "? optional"
	}
	return fmt.Sprintf("'%c'", n.op)
}

// exprTree reconstructs the expression tree of a postfix expression.
func exprTree(postfix string) (*exprNode, error) {
	stack := arraystack.New()
	popNode := func() (*exprNode, bool) {
		n, ok := stack.Pop()
		if !ok {
			return nil, false
		}
		return n.(*exprNode), true
	}
	for _, r := range postfix {
		node := &exprNode{op: r}
		switch r {
		case syntax.Concat, syntax.Alternate:
			right, ok1 := popNode()
			left, ok2 := popNode()
			if !ok1 || !ok2 {
				return nil, fmt.Errorf("%w: %q lacks operands", errMalformedPostfix, r)
			}
			node.children = []*exprNode{left, right}
		case syntax.Star, syntax.Plus, syntax.Optional:
			operand, ok := popNode()
			if !ok {
				return nil, fmt.Errorf("%w: %q lacks an operand", errMalformedPostfix, r)
			}
			node.children = []*exprNode{operand}
		}
		stack.Push(node)
	}
	if stack.Size() != 1 {
		return nil, fmt.Errorf("%w: %d sub-expressions", errMalformedPostfix, stack.Size())
	}
	root, _ := popNode()
	return root, nil
}

// leveledList flattens an expression tree in pre-order, as input for
// pterm.NewTreeFromLeveledList.
func leveledList(n *exprNode, ll pterm.LeveledList, level int) pterm.LeveledList {
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  n.label(),
	})
	for _, ch := range n.children {
		ll = leveledList(ch, ll, level+1)
	}
	return ll
}

// printTree renders the expression tree of postfix onto the terminal.
func printTree(postfix string) error {
	root, err := exprTree(postfix)
	if err != nil {
		return err
	}
	ll := leveledList(root, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	pterm.DefaultTree.WithRoot(pterm.NewTreeFromLeveledList(ll)).Render()
	return nil
}
