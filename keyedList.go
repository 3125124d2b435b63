// Package keyedList provides an ordered list of records that additionally
// supports O(1) lookup, replacement and deletion of elements by a unique
// key field. The list keeps three representations in sync: the ordered
// backing slice, a map from key value to element and a map from key value
// to the element's current position. All mutations go through the methods
// of List; assigning through a slice obtained from ToSlice bypasses the
// index maps and is not supported.
//
// The list is not safe for concurrent mutation. Concurrent readers are
// fine as long as no writer is active.
package keyedList

import (
	"bytes"
	"fmt"
	"reflect"
)

// DefaultKeyField is used if no key field name is given.
const DefaultKeyField = "id"

// Record is the element contract. A record is a set of named fields with
// dynamic values. Field reports a field and whether it is present,
// SetField writes a field in place and Fields iterates all present
// fields. MapRecord and fieldRec.Record are the implementations shipped
// with this module.
type Record interface {
	Field(name string) (any, bool)
	SetField(name string, v any)
	Fields(yield func(name string, v any) bool) bool
}

// MapRecord is the simplest Record implementation. Field order is not
// preserved; use fieldRec.Record if a stable field order is required.
type MapRecord map[string]any

func (m MapRecord) Field(name string) (any, bool) {
	v, ok := m[name]
	return v, ok
}

func (m MapRecord) SetField(name string, v any) {
	m[name] = v
}

func (m MapRecord) Fields(yield func(name string, v any) bool) bool {
	for n, v := range m {
		if !yield(n, v) {
			return false
		}
	}
	return true
}

// Keyed is implemented by collections that index their elements by a key
// field. It replaces any global type check: callers that need to know
// whether a value is such a collection assert against this interface.
type Keyed interface {
	KeyField() string
	Len() int
}

// IsKeyed reports whether v is a key indexed collection.
func IsKeyed(v any) bool {
	_, ok := v.(Keyed)
	return ok
}

// List is an ordered list of records indexed by a unique key field.
// The key field name is fixed at construction. Key values need to be
// comparable; typically they are strings or ints. Keys are assumed to be
// unique: if a second element with an already known key is inserted, the
// key maps point to the later element while the earlier one keeps its
// slot in the ordered sequence.
//
// Always use New to create a List.
type List[T Record] struct {
	keyField string
	items    []T
	byKey    map[any]T
	pos      map[any]int
}

// New creates an empty List indexing the given key field.
// An empty name selects DefaultKeyField.
func New[T Record](keyField string) *List[T] {
	if keyField == "" {
		keyField = DefaultKeyField
	}
	return &List[T]{
		keyField: keyField,
		byKey:    map[any]T{},
		pos:      map[any]int{},
	}
}

// KeyField returns the name of the indexed key field.
func (l *List[T]) KeyField() string {
	return l.keyField
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the element at position i.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// First returns the first element. It returns an EmptyCollectionError
// if the list is empty.
func (l *List[T]) First() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, EmptyCollectionError{Op: "first"}
	}
	return l.items[0], nil
}

// Last returns the last element. It returns an EmptyCollectionError
// if the list is empty.
func (l *List[T]) Last() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, EmptyCollectionError{Op: "last"}
	}
	return l.items[len(l.items)-1], nil
}

// ToSlice returns the elements as a slice. The slice shares the backing
// array with the list but is capacity clipped, so appending to it does
// not affect the list. Assigning to its slots is not supported.
func (l *List[T]) ToSlice() []T {
	return l.items[0:len(l.items):len(l.items)]
}

// CopyToSlice creates a slice copy of all elements.
func (l *List[T]) CopyToSlice() []T {
	co := make([]T, len(l.items))
	copy(co, l.items)
	return co
}

// Keys returns the key values in sequence order.
func (l *List[T]) Keys() []any {
	keys := make([]any, 0, len(l.items))
	for _, it := range l.items {
		if k, ok := l.keyOf(it); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// keyOf extracts the key value of an item. A missing field or a nil
// value counts as no key.
func (l *List[T]) keyOf(item T) (any, bool) {
	v, ok := item.Field(l.keyField)
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// keysFor extracts the key of every item before any mutation takes
// place, so a failing call leaves the list untouched.
func (l *List[T]) keysFor(items []T) ([]any, error) {
	keys := make([]any, len(items))
	for i, it := range items {
		k, ok := l.keyOf(it)
		if !ok {
			return nil, MissingKeyError{Field: l.keyField}
		}
		keys[i] = k
	}
	return keys, nil
}

// push appends pre-validated items. Only the positions of the new index
// range are written.
func (l *List[T]) push(items []T, keys []any) int {
	base := len(l.items)
	l.items = append(l.items, items...)
	for i, it := range items {
		l.byKey[keys[i]] = it
		l.pos[keys[i]] = base + i
	}
	return len(l.items)
}

// unshift prepends pre-validated items. All positions change, so the
// position map is rebuilt completely.
func (l *List[T]) unshift(items []T, keys []any) int {
	grown := make([]T, 0, len(items)+len(l.items))
	grown = append(grown, items...)
	l.items = append(grown, l.items...)
	for i, it := range items {
		l.byKey[keys[i]] = it
	}
	l.reindex(0)
	return len(l.items)
}

// reindex recomputes the position map for all elements at index from
// and above.
func (l *List[T]) reindex(from int) {
	for i := from; i < len(l.items); i++ {
		if k, ok := l.keyOf(l.items[i]); ok {
			l.pos[k] = i
		}
	}
}

// rebuild recreates both maps by a single scan over the elements.
// Stale map entries that no longer correspond to an element are dropped.
func (l *List[T]) rebuild() {
	l.byKey = make(map[any]T, len(l.items))
	l.pos = make(map[any]int, len(l.items))
	for i, it := range l.items {
		if k, ok := l.keyOf(it); ok {
			l.byKey[k] = it
			l.pos[k] = i
		}
	}
}

// Push appends the given items and returns the new length. If any item
// has no value for the key field, a MissingKeyError is returned and the
// list is left unchanged.
func (l *List[T]) Push(items ...T) (int, error) {
	keys, err := l.keysFor(items)
	if err != nil {
		return len(l.items), err
	}
	return l.push(items, keys), nil
}

// Unshift inserts the given items at the front, preserving their
// relative order, and returns the new length. Key validation is the same
// as in Push. All existing positions shift, so this is O(n).
func (l *List[T]) Unshift(items ...T) (int, error) {
	keys, err := l.keysFor(items)
	if err != nil {
		return len(l.items), err
	}
	return l.unshift(items, keys), nil
}

// Pop removes and returns the last element. It returns an
// EmptyCollectionError if the list is empty.
func (l *List[T]) Pop() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, EmptyCollectionError{Op: "pop"}
	}
	last := l.items[len(l.items)-1]
	l.items = l.items[:len(l.items)-1]
	if k, ok := l.keyOf(last); ok {
		delete(l.byKey, k)
		delete(l.pos, k)
	}
	return last, nil
}

// Shift removes and returns the first element. It returns an
// EmptyCollectionError if the list is empty. All remaining positions
// shift down, so the position map is rebuilt.
func (l *List[T]) Shift() (T, error) {
	if len(l.items) == 0 {
		var zero T
		return zero, EmptyCollectionError{Op: "shift"}
	}
	first := l.items[0]
	l.items = l.items[1:]
	if k, ok := l.keyOf(first); ok {
		delete(l.byKey, k)
		delete(l.pos, k)
	}
	l.reindex(0)
	return first, nil
}

// Splice removes deleteCount elements starting at start, inserts the
// given items in their place and returns the removed elements. A
// negative start counts from the end; start and deleteCount are clamped
// to the valid range. Inserted items are key validated before any
// mutation. Afterwards both maps are rebuilt by a single scan.
func (l *List[T]) Splice(start, deleteCount int, insert ...T) ([]T, error) {
	n := len(l.items)
	if start < 0 {
		start = n + start
		if start < 0 {
			start = 0
		}
	}
	if start > n {
		start = n
	}
	if deleteCount < 0 {
		deleteCount = 0
	}
	if deleteCount > n-start {
		deleteCount = n - start
	}

	if _, err := l.keysFor(insert); err != nil {
		return nil, err
	}

	removed := make([]T, deleteCount)
	copy(removed, l.items[start:start+deleteCount])

	tail := append([]T(nil), l.items[start+deleteCount:]...)
	l.items = append(l.items[:start], insert...)
	l.items = append(l.items, tail...)

	l.rebuild()
	return removed, nil
}

// Equals reports whether both lists index the same key field and hold
// equal elements in the same order.
func (l *List[T]) Equals(other *List[T]) bool {
	if l.keyField != other.keyField {
		return false
	}
	if len(l.items) != len(other.items) {
		return false
	}
	for i, it := range l.items {
		if !reflect.DeepEqual(it, other.items[i]) {
			return false
		}
	}
	return true
}

func (l *List[T]) String() string {
	var b bytes.Buffer
	b.WriteString("[")
	for i, it := range l.items {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", it)
	}
	b.WriteString("]")
	return b.String()
}
