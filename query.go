package keyedList

// Find returns the element with the given key. The second return value
// reports whether the key is known; an unknown key is an expected case,
// not an error.
func (l *List[T]) Find(key any) (T, bool) {
	it, ok := l.byKey[key]
	return it, ok
}

// IndexOfKey returns the current position of the element with the given
// key, or -1 if the key is unknown.
func (l *List[T]) IndexOfKey(key any) int {
	if p, ok := l.pos[key]; ok {
		return p
	}
	return -1
}

// ContainsKey reports whether an element with the given key is indexed.
func (l *List[T]) ContainsKey(key any) bool {
	_, ok := l.byKey[key]
	return ok
}

// DeleteKey removes the element with the given key and returns the
// position it was removed from, or -1 if the key is unknown. Removal is
// a splice of one element, so both maps are rebuilt afterwards.
func (l *List[T]) DeleteKey(key any) int {
	p, ok := l.pos[key]
	if !ok {
		return -1
	}
	l.Splice(p, 1)
	return p
}

// Replace stores the item under its key. If the key is currently at a
// known position, the element at that position is overwritten in place;
// length and positions do not change. If the key is unknown, only the
// key map entry is written and no slot is created, leaving a map entry
// without a backing element. Such an entry is reachable through Find
// until the next full rebuild drops it. Callers relying on the list and
// the key map holding the same elements should check ContainsKey first.
func (l *List[T]) Replace(item T) error {
	k, ok := l.keyOf(item)
	if !ok {
		return MissingKeyError{Field: l.keyField}
	}
	l.byKey[k] = item
	if p, ok := l.pos[k]; ok {
		l.items[p] = item
	}
	return nil
}

// Update merges the fields of partial into the element whose key is
// found in partial. The merge is shallow: field values are assigned,
// referenced slices and maps are shared. If no element with that key
// exists, a KeyNotFoundError is returned and nothing changes. Length
// and positions do not change.
func (l *List[T]) Update(partial Record) error {
	key, ok := partial.Field(l.keyField)
	if !ok || key == nil {
		return KeyNotFoundError{Key: key}
	}
	existing, ok := l.byKey[key]
	if !ok {
		return KeyNotFoundError{Key: key}
	}
	merge(existing, partial)
	return nil
}

// UpdateRange merges the fields of partial into every element whose
// position lies in [start,end), regardless of key. Bounds are clamped
// to the valid range. It returns the number of elements touched.
func (l *List[T]) UpdateRange(partial Record, start, end int) int {
	start = clamp(start, len(l.items))
	end = clamp(end, len(l.items))
	for i := start; i < end; i++ {
		merge(l.items[i], partial)
	}
	if end < start {
		return 0
	}
	return end - start
}

// UpdateAll merges the fields of partial into every element.
func (l *List[T]) UpdateAll(partial Record) int {
	return l.UpdateRange(partial, 0, len(l.items))
}

func merge(dst, src Record) {
	src.Fields(func(name string, v any) bool {
		dst.SetField(name, v)
		return true
	})
}
