// Package fieldRec provides a record type whose fields keep the order
// in which they were first set. It implements the Record contract of
// the keyedList package and renders deterministically, which plain maps
// do not.
package fieldRec

import (
	"bytes"
	"fmt"
)

type field struct {
	Name  string
	Value any
}

// Record is an ordered set of named fields.
// Always use New to create a Record.
type Record struct {
	fields []field
}

// New creates an empty Record with capacity for size fields.
func New(size int) *Record {
	return &Record{fields: make([]field, 0, size)}
}

// From creates a Record from alternating name/value pairs. It panics if
// the number of arguments is odd or a name is not a string.
func From(pairs ...any) *Record {
	if len(pairs)%2 != 0 {
		panic(fmt.Errorf("From requires name/value pairs, got %d arguments", len(pairs)))
	}
	r := New(len(pairs) / 2)
	for i := 0; i < len(pairs); i += 2 {
		name, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Errorf("From requires a string as %d. argument", i+1))
		}
		r.Set(name, pairs[i+1])
	}
	return r
}

// Set stores the value under the given name. An existing field is
// updated in place and keeps its order; a new field is appended. It
// returns the record to allow chaining.
func (r *Record) Set(name string, v any) *Record {
	for i, f := range r.fields {
		if f.Name == name {
			r.fields[i].Value = v
			return r
		}
	}
	r.fields = append(r.fields, field{Name: name, Value: v})
	return r
}

// Get returns the value stored under the given name.
func (r *Record) Get(name string) (any, bool) {
	for _, f := range r.fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

// Delete removes the field with the given name and reports whether it
// was present.
func (r *Record) Delete(name string) bool {
	for i, f := range r.fields {
		if f.Name == name {
			r.fields = append(r.fields[:i], r.fields[i+1:]...)
			return true
		}
	}
	return false
}

// Size returns the number of fields.
func (r *Record) Size() int {
	return len(r.fields)
}

// Iter iterates the fields in order. It can be used with range.
func (r *Record) Iter(yield func(name string, v any) bool) {
	for _, f := range r.fields {
		if !yield(f.Name, f.Value) {
			return
		}
	}
}

// Clone creates a copy of the record. Field values are assigned, not
// deep copied.
func (r *Record) Clone() *Record {
	c := &Record{fields: make([]field, len(r.fields))}
	copy(c.fields, r.fields)
	return c
}

// Field implements the keyedList Record contract.
func (r *Record) Field(name string) (any, bool) {
	return r.Get(name)
}

// SetField implements the keyedList Record contract.
func (r *Record) SetField(name string, v any) {
	r.Set(name, v)
}

// Fields implements the keyedList Record contract.
func (r *Record) Fields(yield func(name string, v any) bool) bool {
	for _, f := range r.fields {
		if !yield(f.Name, f.Value) {
			return false
		}
	}
	return true
}

func (r *Record) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.Name)
		b.WriteString(":")
		fmt.Fprintf(&b, "%v", f.Value)
	}
	b.WriteString("}")
	return b.String()
}
