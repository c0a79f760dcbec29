package stringlist

import "strings"

// List is a string list that owns its strings. Every entry is an independent
// copy, so a List never keeps a caller's memory alive.
//
// The zero value is an empty list ready to use.
type List struct {
	base[string]
}

// NewList returns a list holding copies of strs, in order.
func NewList(strs []string) *List {
	l := &List{}
	for _, s := range strs {
		l.Append(s)
	}
	return l
}

// Append adds a copy of s at the end of the list.
func (l *List) Append(s string) *Item[string] {
	return l.add(strings.Clone(s))
}

// Insert adds a copy of s at its sorted position unless an equal entry
// already exists. It returns the new or existing entry.
func (l *List) Insert(s string) *Item[string] {
	i, found := l.find(s)
	if found {
		return &l.items[i]
	}
	return l.insertAt(i, strings.Clone(s))
}

// RefList is a string list that borrows its strings. Entries are byte slices
// pointing into memory the caller owns; the list never copies, modifies or
// frees them. The caller must keep that memory alive and unchanged for as
// long as the entries are in use.
//
// The zero value is an empty list ready to use.
type RefList struct {
	base[[]byte]
}

// Append adds a reference to b at the end of the list.
func (l *RefList) Append(b []byte) *Item[[]byte] {
	return l.add(b)
}

// Insert adds a reference to b at its sorted position unless an equal entry
// already exists. It returns the new or existing entry.
func (l *RefList) Insert(b []byte) *Item[[]byte] {
	i, found := l.find(b)
	if found {
		return &l.items[i]
	}
	return l.insertAt(i, b)
}
