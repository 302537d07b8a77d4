package valenum

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func numberTable(t *testing.T) *Valued[number, description] {
	t.Helper()
	table, err := NewValued(numberIndex(t), []description{
		{Description: "Zero position", Index: 0},
		{Description: "First position", Index: 1},
		{Description: "Second position", Index: 2},
		{Description: "Third position", Index: 3},
	}, Equal[description])
	require.NoError(t, err)
	return table
}

func TestValuedScenario(t *testing.T) {
	table := numberTable(t)
	require.Equal(t, 0, table.Discriminant(zero))
	require.Equal(t, "First position", table.Value(first).Description)
	require.Equal(t, third, table.ValueToVariant(description{Description: "Third position", Index: 3}))

	_, ok := table.ValueToVariantOpt(description{Description: "Fourth position", Index: 4})
	require.False(t, ok)
}

func TestValuedValueOpt(t *testing.T) {
	table := numberTable(t)
	v, ok := table.ValueOpt(second)
	require.True(t, ok)
	require.Equal(t, uint16(2), v.Index)

	_, ok = table.ValueOpt(number(7))
	require.False(t, ok)
	require.Panics(t, func() { table.Value(number(7)) })
}

func TestValuedValueRef(t *testing.T) {
	table := numberTable(t)
	ref := table.ValueRef(first)
	require.NotNil(t, ref)
	require.Equal(t, "First position", ref.Description)
	require.Same(t, ref, table.ValueRef(first))
	require.Nil(t, table.ValueRef(number(-1)))
}

func TestValuedFirstMatchWins(t *testing.T) {
	table, err := NewValued(numberIndex(t), []int{10, 20, 10, 20}, Equal[int])
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.Equal(t, zero, table.ValueToVariant(10))
		require.Equal(t, first, table.ValueToVariant(20))
	}
}

func TestValuedMissingValuePanics(t *testing.T) {
	table := numberTable(t)
	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		require.ErrorIs(t, err, ErrNoVariant)
	}()
	table.ValueToVariant(description{Description: "nope"})
}

func TestValuedWithoutEquality(t *testing.T) {
	table, err := NewValued(numberIndex(t), []int{1, 2, 3, 4}, nil)
	require.NoError(t, err)
	require.False(t, table.Comparable())

	_, ok := table.ValueToVariantOpt(1)
	require.False(t, ok)
	defer func() {
		err, ok := recover().(error)
		require.True(t, ok)
		require.ErrorIs(t, err, ErrNoEquality)
	}()
	table.ValueToVariant(1)
}

func TestValuedCustomEquality(t *testing.T) {
	idx, err := NewIndexed(Ordinal[number], zero, first)
	require.NoError(t, err)
	table, err := NewValued(idx, [][]string{{"a"}, {"b", "c"}}, slices.Equal[[]string])
	require.NoError(t, err)
	require.Equal(t, first, table.ValueToVariant([]string{"b", "c"}))
}

func TestNewValuedRejectsMismatch(t *testing.T) {
	_, err := NewValued(numberIndex(t), []int{1, 2}, Equal[int])
	require.ErrorIs(t, err, ErrTableMismatch)

	_, err = NewValued[number, int](nil, nil, nil)
	require.Error(t, err)

	require.Panics(t, func() { MustValued(numberIndex(t), []int{1}, nil) })
}

func TestValuedPairsAndValues(t *testing.T) {
	table := numberTable(t)
	var got []string
	for v, value := range table.Pairs() {
		got = append(got, fmt.Sprintf("%d=%s", v, value.Description))
	}
	require.Equal(t, []string{"0=Zero position", "1=First position", "2=Second position", "3=Third position"}, got)

	values := table.Values()
	values[0].Description = "changed"
	require.Equal(t, "Zero position", table.Value(zero).Description)
}

func TestZero(t *testing.T) {
	require.Equal(t, 0, Zero[int]())
	require.Equal(t, "", Zero[string]())
	require.Nil(t, Zero[[]byte]())
	require.Equal(t, description{}, Zero[description]())
}
