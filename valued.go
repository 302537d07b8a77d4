package valenum

import (
	"fmt"
	"iter"
)

// Valued pairs a variant table with a value table of the same length
// and order.
type Valued[E any, V any] struct {
	*Indexed[E]
	values []V
	equal  func(a, b V) bool
}

// NewValued builds the value table on top of index. equal is used by
// the reverse lookups and may be nil when V has no meaningful equality.
func NewValued[E any, V any](index *Indexed[E], values []V, equal func(a, b V) bool) (*Valued[E, V], error) {
	if index == nil {
		return nil, fmt.Errorf("valenum: nil variant table")
	}
	if len(values) != index.Len() {
		return nil, fmt.Errorf("valenum: %d values for %d variants: %w", len(values), index.Len(), ErrTableMismatch)
	}
	table := make([]V, len(values))
	copy(table, values)
	return &Valued[E, V]{Indexed: index, values: table, equal: equal}, nil
}

// MustValued is like NewValued but panics on an invalid table.
func MustValued[E any, V any](index *Indexed[E], values []V, equal func(a, b V) bool) *Valued[E, V] {
	t, err := NewValued(index, values, equal)
	if err != nil {
		panic(err)
	}
	return t
}

// ValueOpt returns a copy of the value of v. It only reports false for
// values whose discriminant is outside the table.
func (t *Valued[E, V]) ValueOpt(v E) (V, bool) {
	d := t.discriminant(v)
	if d < 0 || d >= len(t.values) {
		var zero V
		return zero, false
	}
	return t.values[d], true
}

// Value is like ValueOpt but panics with a *RangeError.
func (t *Valued[E, V]) Value(v E) V {
	value, ok := t.ValueOpt(v)
	if !ok {
		panic(&RangeError{Discriminant: t.discriminant(v), Len: len(t.values)})
	}
	return value
}

// ValueRef returns a pointer to the value of v inside the table, or nil.
// The pointee is shared by every caller and must not be modified.
func (t *Valued[E, V]) ValueRef(v E) *V {
	d := t.discriminant(v)
	if d < 0 || d >= len(t.values) {
		return nil
	}
	return &t.values[d]
}

// ValueToVariantOpt scans the value table and returns the variant of the
// first entry equal to value. When several variants share a value the
// one with the lowest discriminant wins.
func (t *Valued[E, V]) ValueToVariantOpt(value V) (E, bool) {
	if t.equal != nil {
		for d, candidate := range t.values {
			if t.equal(value, candidate) {
				return t.FromDiscriminantOpt(d)
			}
		}
	}
	var zero E
	return zero, false
}

// ValueToVariant is like ValueToVariantOpt but panics when no entry
// matches.
func (t *Valued[E, V]) ValueToVariant(value V) E {
	v, ok := t.ValueToVariantOpt(value)
	if !ok {
		if t.equal == nil {
			panic(fmt.Errorf("valenum: reverse lookup: %w", ErrNoEquality))
		}
		panic(fmt.Errorf("valenum: %v: %w", value, ErrNoVariant))
	}
	return v
}

// Comparable reports whether reverse lookups are available.
func (t *Valued[E, V]) Comparable() bool { return t.equal != nil }

// Values returns a copy of the value table.
func (t *Valued[E, V]) Values() []V {
	out := make([]V, len(t.values))
	copy(out, t.values)
	return out
}

// Pairs yields every variant with its value, in discriminant order.
func (t *Valued[E, V]) Pairs() iter.Seq2[E, V] {
	return func(yield func(E, V) bool) {
		for d, v := range t.variants {
			if !yield(v, t.values[d]) {
				return
			}
		}
	}
}
