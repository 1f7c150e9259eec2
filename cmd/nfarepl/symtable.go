package main

import (
	"fmt"
	"sort"

	"github.com/npillmayer/thompson"
)

// Symbol table for named expressions. Users define names with
//
//    def digits (0|1|2|3|4|5|6|7|8|9)+
//
// and refer to them as '$digits' wherever a pattern is expected.

// Tag binds a name to a compiled expression.
type Tag struct {
	name string
	re   *thompson.Regexp
}

// String is a debug Stringer for tags.
func (tag *Tag) String() string {
	return fmt.Sprintf("<tag '%s':%s>", tag.name, tag.re)
}

// SymbolTable stores tags by name.
type SymbolTable struct {
	table map[string]*Tag
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{table: make(map[string]*Tag)}
}

// ResolveTag finds a tag by name, or returns nil.
func (t *SymbolTable) ResolveTag(name string) *Tag {
	if t == nil {
		return nil
	}
	return t.table[name]
}

// DefineTag binds name to re. It returns the new tag and the tag
// previously bound to name, if any.
func (t *SymbolTable) DefineTag(name string, re *thompson.Regexp) (*Tag, *Tag) {
	old := t.table[name]
	tag := &Tag{name: name, re: re}
	t.table[name] = tag
	tracer().Debugf("defined %v", tag)
	return tag, old
}

// Size returns the number of tags in the table.
func (t *SymbolTable) Size() int {
	if t == nil {
		return 0
	}
	return len(t.table)
}

// Each iterates over all tags, in alphabetical order of their names.
func (t *SymbolTable) Each(mapper func(string, *Tag)) {
	if t == nil {
		return
	}
	names := make([]string, 0, len(t.table))
	for name := range t.table {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mapper(name, t.table[name])
	}
}
