package valenum

import (
	"testing"
)

func benchTable(b *testing.B, n int) *Valued[int, string] {
	variants := make([]int, n)
	values := make([]string, n)
	for i := range variants {
		variants[i] = i
		values[i] = string(rune('a' + i%26))
	}
	table, err := NewValued(MustIndexed(Ordinal[int], variants...), values, Equal[string])
	if err != nil {
		b.Fatal(err)
	}
	return table
}

func BenchmarkFromDiscriminant(b *testing.B) {
	table := benchTable(b, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = table.FromDiscriminant(i & 63)
	}
}

func BenchmarkValue(b *testing.B) {
	table := benchTable(b, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = table.Value(i & 63)
	}
}

func BenchmarkValueToVariantLast(b *testing.B) {
	table := benchTable(b, 26)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = table.ValueToVariantOpt("z")
	}
}
