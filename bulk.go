package keyedList

import (
	"sort"

	"github.com/hneemann/iterator"
)

// bulkChunkSize is the number of elements handed to a single push or
// unshift when a bulk operation partitions its input.
const bulkChunkSize = 10000

// PushAll appends arbitrarily many items, internally partitioned into
// chunks of bulkChunkSize. The whole batch is key validated up front, so
// a failing call leaves the list unchanged. The final order is the same
// as a single Push of all items.
func (l *List[T]) PushAll(items []T) (int, error) {
	keys, err := l.keysFor(items)
	if err != nil {
		return len(l.items), err
	}
	n := len(l.items)
	for start := 0; start < len(items); start += bulkChunkSize {
		end := min(start+bulkChunkSize, len(items))
		n = l.push(items[start:end], keys[start:end])
	}
	return n, nil
}

// UnshiftAll prepends arbitrarily many items, internally partitioned
// into chunks of bulkChunkSize. The chunks are applied back to front so
// the final order is the same as a single Unshift of all items.
func (l *List[T]) UnshiftAll(items []T) (int, error) {
	keys, err := l.keysFor(items)
	if err != nil {
		return len(l.items), err
	}
	n := len(l.items)
	first := (len(items) - 1) / bulkChunkSize * bulkChunkSize
	for start := first; start >= 0; start -= bulkChunkSize {
		end := min(start+bulkChunkSize, len(items))
		n = l.unshift(items[start:end], keys[start:end])
	}
	return n, nil
}

// FromSlice creates a List indexing the given key field and fills it
// with the items in order.
func FromSlice[T Record](keyField string, items []T) (*List[T], error) {
	l := New[T](keyField)
	if _, err := l.PushAll(items); err != nil {
		return nil, err
	}
	return l, nil
}

// FromMap creates a List from a keyed mapping of records. Go maps have
// no iteration order, so the records are inserted in ascending order of
// their map keys to keep construction deterministic. The map keys only
// define the insertion order; the elements are indexed by their key
// field as usual.
func FromMap[T Record](keyField string, m map[string]T) (*List[T], error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	items := make([]T, 0, len(m))
	for _, name := range names {
		items = append(items, m[name])
	}
	return FromSlice(keyField, items)
}

// FromIterable drains the given producer and creates a List from the
// produced elements.
func FromIterable[T Record](keyField string, it iterator.Producer[T]) (*List[T], error) {
	items, err := iterator.ToSlice(it)
	if err != nil {
		return nil, err
	}
	return FromSlice(keyField, items)
}
