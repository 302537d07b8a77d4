package valenum

// Integer is the set of types an integer enum can be declared on.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Ordinal is the discriminant function of integer enums: the constant
// value itself.
func Ordinal[E Integer](v E) int {
	return int(v)
}

// Equal is the default value equality used for reverse lookups.
func Equal[V comparable](a, b V) bool {
	return a == b
}

// Zero returns the zero value of T. Generated tables use it to build
// field-carrying variants whose fields have no explicit initializer.
func Zero[T any]() T {
	var zero T
	return zero
}
