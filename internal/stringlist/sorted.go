package stringlist

import "slices"

// Sort orders the entries by Cmp. Equal entries keep their relative order.
func (l *base[T]) Sort() {
	slices.SortStableFunc(l.items, func(a, b Item[T]) int {
		return l.compare(a.String, b.String)
	})
}

// find binary-searches a sorted list for s. It returns the index of the
// entry equal to s, or the index where s would be inserted.
func (l *base[T]) find(s T) (int, bool) {
	return slices.BinarySearchFunc(l.items, s, func(item Item[T], target T) int {
		return l.compare(item.String, target)
	})
}

func (l *base[T]) insertAt(i int, s T) *Item[T] {
	l.items = slices.Insert(l.items, i, Item[T]{String: s})
	return &l.items[i]
}

// Lookup returns the entry equal to s in a sorted list, or nil.
func (l *base[T]) Lookup(s T) *Item[T] {
	i, found := l.find(s)
	if !found {
		return nil
	}
	return &l.items[i]
}

// Has reports whether a sorted list contains s.
func (l *base[T]) Has(s T) bool {
	_, found := l.find(s)
	return found
}

// UnsortedHas reports whether the list contains s, scanning every entry.
func (l *base[T]) UnsortedHas(s T) bool {
	for i := range l.items {
		if l.compare(l.items[i].String, s) == 0 {
			return true
		}
	}
	return false
}

// Remove deletes the entry equal to s from a sorted list, keeping the order
// of the others. It reports whether an entry was removed.
func (l *base[T]) Remove(s T, freeUtil bool) bool {
	i, found := l.find(s)
	if !found {
		return false
	}
	drop(&l.items[i], freeUtil)
	if len(l.items) == 1 {
		l.truncate(0)
		return true
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}
