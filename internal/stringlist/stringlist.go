// Package stringlist provides an ordered, growable list of strings with
// tokenizing, filtering and duplicate removal.
//
// A list either owns its strings (List) or borrows them from memory owned by
// the caller (RefList). The mode is part of the type: List entries are
// independent string copies, RefList entries are byte slices pointing into a
// caller buffer, typically one cut up by RefList.SplitInPlace.
//
// Lists are not safe for concurrent use.
package stringlist

import (
	"strings"

	"github.com/samber/lo"
)

// Text is the set of representations an entry's string can have.
type Text interface {
	~string | ~[]byte
}

// Item is one entry of a list: the string plus an optional attachment.
type Item[T Text] struct {
	String T
	Util   any
}

// Releaser is implemented by attachments holding resources that must be
// freed when their entry is dropped from a list.
type Releaser interface {
	Release()
}

// Predicate decides whether Filter keeps an entry. data is passed through
// from the Filter call unchanged.
type Predicate[T Text] func(item *Item[T], data any) bool

// base is the storage shared by List and RefList.
type base[T Text] struct {
	items []Item[T]

	// Cmp orders entries for Sort, Insert, Lookup, Has, Remove and
	// RemoveDuplicates. Nil means byte-wise lexicographic order.
	Cmp func(a, b T) int
}

// Len returns the number of entries.
func (l *base[T]) Len() int {
	return len(l.items)
}

// Cap returns the number of entries the list can hold before growing.
func (l *base[T]) Cap() int {
	return cap(l.items)
}

// At returns the i-th entry. It panics if i is out of range.
func (l *base[T]) At(i int) *Item[T] {
	return &l.items[i]
}

// Last returns the last entry, or nil for an empty list.
func (l *base[T]) Last() *Item[T] {
	if len(l.items) == 0 {
		return nil
	}
	return &l.items[len(l.items)-1]
}

// Items returns the entries in order. The slice shares storage with the list
// and is only valid until the next call that modifies the list.
func (l *base[T]) Items() []Item[T] {
	return l.items
}

// Strings returns a copy of the entries' strings in order.
func (l *base[T]) Strings() []string {
	return lo.Map(l.items, func(item Item[T], _ int) string {
		return string(item.String)
	})
}

func (l *base[T]) add(s T) *Item[T] {
	l.items = append(l.items, Item[T]{String: s})
	return &l.items[len(l.items)-1]
}

func (l *base[T]) compare(a, b T) int {
	if l.Cmp != nil {
		return l.Cmp(a, b)
	}
	return strings.Compare(string(a), string(b))
}

// drop releases an entry that is leaving the list. Zeroing the slot drops the
// list's reference to an owned copy; borrowed bytes are never written.
func drop[T Text](item *Item[T], freeUtil bool) {
	if freeUtil {
		releaseUtil(item)
	}
	*item = Item[T]{}
}

func releaseUtil[T Text](item *Item[T]) {
	if r, ok := item.Util.(Releaser); ok {
		r.Release()
	}
	item.Util = nil
}

// truncate shrinks the list to its first n entries. An empty result gives up
// the backing array entirely.
func (l *base[T]) truncate(n int) {
	if n == 0 {
		clear(l.items)
		l.items = nil
		return
	}
	clear(l.items[n:])
	l.items = l.items[:n]
}

// Clear removes every entry and resets the capacity to zero. Attachments are
// released when freeUtil is set.
func (l *base[T]) Clear(freeUtil bool) {
	for i := range l.items {
		drop(&l.items[i], freeUtil)
	}
	l.items = nil
}

// ClearFunc calls fn on every entry, then clears the list without releasing
// attachments. fn is responsible for them.
func (l *base[T]) ClearFunc(fn func(item *Item[T])) {
	for i := range l.items {
		fn(&l.items[i])
	}
	l.Clear(false)
}

// Filter keeps the entries for which want returns true, preserving their
// order. Removed entries always have their attachment released.
func (l *base[T]) Filter(want Predicate[T], data any) {
	l.filter(want, data, true)
}

func (l *base[T]) filter(want Predicate[T], data any, freeUtil bool) {
	dst := 0
	for src := range l.items {
		if !want(&l.items[src], data) {
			drop(&l.items[src], freeUtil)
			continue
		}
		if dst != src {
			l.items[dst] = l.items[src]
		}
		dst++
	}
	l.truncate(dst)
}

// RemoveEmptyItems drops every entry whose string is empty.
func (l *base[T]) RemoveEmptyItems(freeUtil bool) {
	l.filter(func(item *Item[T], _ any) bool {
		return len(item.String) > 0
	}, nil, freeUtil)
}

// RemoveDuplicates collapses runs of equal adjacent entries into their first
// entry. The list must already be sorted with the same ordering (see Sort);
// duplicates that are not adjacent survive.
func (l *base[T]) RemoveDuplicates(freeUtil bool) {
	if len(l.items) == 0 {
		return
	}
	dst := 1
	for src := 1; src < len(l.items); src++ {
		if l.compare(l.items[dst-1].String, l.items[src].String) == 0 {
			drop(&l.items[src], freeUtil)
			continue
		}
		if dst != src {
			l.items[dst] = l.items[src]
		}
		dst++
	}
	l.truncate(dst)
}

// ForEach calls fn on every entry in order and stops at the first error.
func (l *base[T]) ForEach(fn func(item *Item[T], data any) error, data any) error {
	for i := range l.items {
		if err := fn(&l.items[i], data); err != nil {
			return err
		}
	}
	return nil
}

// DeleteUnsorted removes the i-th entry by moving the last entry into its
// place. Use it only on lists whose order does not matter.
func (l *base[T]) DeleteUnsorted(i int, freeUtil bool) {
	last := len(l.items) - 1
	if freeUtil {
		releaseUtil(&l.items[i])
	}
	l.items[i] = l.items[last]
	l.truncate(last)
}
