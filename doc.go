// Package valenum maps enum variants to dense discriminants and to an
// associated value, in both directions.
//
// An [Indexed] table holds every variant ordered by discriminant, so
// discriminant i is the entry at position i. A [Valued] table layers a
// second table of values with the same order on top of it:
//
//	var colors = valenum.MustValued[Color, string](
//		valenum.MustIndexed[Color](valenum.Ordinal[Color], Red, Green, Blue),
//		[]string{"#f00", "#0f0", "#00f"},
//		valenum.Equal[string],
//	)
//
//	colors.Discriminant(Green)          // 1
//	colors.Value(Blue)                  // "#00f"
//	colors.ValueToVariant("#f00")       // Red
//
// Tables are normally not written by hand: the valenum command
// (cmd/valenum) generates them, plus optional delegator methods and
// discriminant-only wire adapters (package codec), from annotated Go
// source or from a YAML/JSON description.
//
// Tables are immutable once built and every lookup is a plain slice
// read, so they can be shared by any number of goroutines.
package valenum
