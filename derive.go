package keyedList

import "github.com/hneemann/iterator"

// Slice returns a new List holding the elements in [start,end). A
// negative index counts from the end; both bounds are clamped to the
// valid range. The result indexes the same key field but owns
// independent maps, so later mutation of either list does not affect
// the other.
func (l *List[T]) Slice(start, end int) (*List[T], error) {
	n := len(l.items)
	if start < 0 {
		start = n + start
	}
	if end < 0 {
		end = n + end
	}
	start = clamp(start, n)
	end = clamp(end, n)
	if end < start {
		end = start
	}
	return FromSlice(l.keyField, l.items[start:end])
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// Map applies f to every element and returns a new List of the results,
// indexing the same key field. If a result has no value for the key
// field, a MissingKeyError is returned.
func (l *List[T]) Map(f func(T) T) (*List[T], error) {
	items := make([]T, len(l.items))
	for i, it := range l.items {
		items[i] = f(it)
	}
	return FromSlice(l.keyField, items)
}

// Concat returns a new List holding the elements of l followed by the
// elements of the given lists, in order. The result indexes the key
// field of l.
func (l *List[T]) Concat(others ...*List[T]) (*List[T], error) {
	size := len(l.items)
	for _, o := range others {
		size += len(o.items)
	}
	items := make([]T, 0, size)
	items = append(items, l.items...)
	for _, o := range others {
		items = append(items, o.items...)
	}
	return FromSlice(l.keyField, items)
}

// Accept returns a new List holding all elements for which accept
// returns true.
func (l *List[T]) Accept(accept func(T) (bool, error)) (*List[T], error) {
	items, err := iterator.ToSlice(iterator.Filter(l.Iter(), accept))
	if err != nil {
		return nil, err
	}
	return FromSlice(l.keyField, items)
}

// Iter returns a producer over the elements in sequence order. The
// producer iterates a fixed-length view of the backing slice taken when
// Iter is called: later structural mutation does not change the
// iterated length, but an in-place Replace of a shared slot remains
// visible.
func (l *List[T]) Iter() iterator.Producer[T] {
	return iterator.Slice(l.ToSlice())
}
