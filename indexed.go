package valenum

import (
	"fmt"
	"iter"
)

// Indexed is the variant table of an enum. Entry i is the variant whose
// discriminant is i.
type Indexed[E any] struct {
	variants     []E
	discriminant func(E) int
}

// NewIndexed builds the variant table. The variants must be listed in
// discriminant order: discriminant(variants[i]) == i for every i.
func NewIndexed[E any](discriminant func(E) int, variants ...E) (*Indexed[E], error) {
	if discriminant == nil {
		return nil, fmt.Errorf("valenum: nil discriminant function")
	}
	if len(variants) == 0 {
		return nil, ErrEmpty
	}
	for i, v := range variants {
		if d := discriminant(v); d != i {
			return nil, fmt.Errorf("valenum: entry %d has discriminant %d: %w", i, d, ErrNotDense)
		}
	}
	table := make([]E, len(variants))
	copy(table, variants)
	return &Indexed[E]{variants: table, discriminant: discriminant}, nil
}

// MustIndexed is like NewIndexed but panics on an invalid table. It is
// meant for package-level tables, so a broken table stops the program
// during initialisation.
func MustIndexed[E any](discriminant func(E) int, variants ...E) *Indexed[E] {
	t, err := NewIndexed(discriminant, variants...)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of variants.
func (t *Indexed[E]) Len() int { return len(t.variants) }

// Discriminant returns the discriminant of v. The result is not checked
// against the table; values built outside the declared variants may
// report an out of range discriminant.
func (t *Indexed[E]) Discriminant(v E) int {
	return t.discriminant(v)
}

// FromDiscriminantOpt returns a copy of the variant at position d.
func (t *Indexed[E]) FromDiscriminantOpt(d int) (E, bool) {
	if d < 0 || d >= len(t.variants) {
		var zero E
		return zero, false
	}
	return t.variants[d], true
}

// FromDiscriminant is like FromDiscriminantOpt but panics with a
// *RangeError when d is out of range.
func (t *Indexed[E]) FromDiscriminant(d int) E {
	v, ok := t.FromDiscriminantOpt(d)
	if !ok {
		panic(&RangeError{Discriminant: d, Len: len(t.variants)})
	}
	return v
}

// Clone returns the table entry with the same discriminant as v. Fields
// carried by v are not copied: the result holds the table's defaults.
func (t *Indexed[E]) Clone(v E) E {
	return t.FromDiscriminant(t.discriminant(v))
}

// Contains reports whether v has a discriminant inside the table.
func (t *Indexed[E]) Contains(v E) bool {
	d := t.discriminant(v)
	return d >= 0 && d < len(t.variants)
}

// Variants returns a copy of the table.
func (t *Indexed[E]) Variants() []E {
	out := make([]E, len(t.variants))
	copy(out, t.variants)
	return out
}

// All yields every discriminant with its variant, in order.
func (t *Indexed[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, v := range t.variants {
			if !yield(i, v) {
				return
			}
		}
	}
}
