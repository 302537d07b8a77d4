package decl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func numberEnum() *Enum {
	return &Enum{
		Name:     "Number",
		ValuedAs: TypeList{"Description"},
		Features: NameList{"Delegators", "ValueToVariantDelegators"},
		Variants: []Variant{
			{Name: "Zero", Value: ptr(`Description{"Zero position", 0}`)},
			{Name: "First", Value: ptr(`Description{"First position", 1}`)},
			{Name: "Second", Value: ptr(`Description{"Second position", 2}`)},
			{Name: "Third", Value: ptr(`Description{"Third position", 3}`)},
		},
	}
}

func TestResolveInteger(t *testing.T) {
	r, err := Resolve(numberEnum())
	require.NoError(t, err)
	assert.False(t, r.Sum)
	assert.Equal(t, "Description", r.ValueType)
	assert.Equal(t, "int", r.Repr)
	assert.Equal(t, "valenum.Equal[Description]", r.Equal)
	assert.Equal(t, []Feature{FeatureDelegators, FeatureValueToVariantDelegators}, r.Features)
	require.Len(t, r.Variants, 4)
	for i, v := range r.Variants {
		assert.Equal(t, i, v.Discriminant)
		assert.Equal(t, v.Name, v.Literal)
	}
	assert.Equal(t, `Description{"First position", 1}`, r.Variants[1].Value)
	assert.True(t, r.Has(FeatureDelegators))
	assert.False(t, r.Has(FeatureClone))
}

func TestResolveEqualOverride(t *testing.T) {
	e := numberEnum()
	e.Equal = "sameDescription"
	r, err := Resolve(e)
	require.NoError(t, err)
	assert.Equal(t, "sameDescription", r.Equal)

	e = numberEnum()
	e.Features = NameList{"Delegators"}
	r, err = Resolve(e)
	require.NoError(t, err)
	assert.Empty(t, r.Equal)
}

func TestResolveDefaultSubstitution(t *testing.T) {
	e := &Enum{
		Name:     "Level",
		ValuedAs: TypeList{"string"},
		Default:  ptr(`"unset"`),
		Variants: []Variant{
			{Name: "Low"},
			{Name: "High", Value: ptr(`"high"`)},
		},
	}
	r, err := Resolve(e)
	require.NoError(t, err)
	assert.Equal(t, `"unset"`, r.Variants[0].Value)
	assert.True(t, r.Variants[0].Defaulted)
	assert.Equal(t, `"high"`, r.Variants[1].Value)

	e.Default = ptr(`"other"`)
	r, err = Resolve(e)
	require.NoError(t, err)
	assert.Equal(t, `"other"`, r.Variants[0].Value)
	assert.Equal(t, `"high"`, r.Variants[1].Value)
}

func TestResolvePayloadTypeCount(t *testing.T) {
	e := numberEnum()
	e.ValuedAs = nil
	_, err := Resolve(e)
	require.Error(t, err)
	ds := Diagnostics(err)
	require.Len(t, ds, 1)
	assert.Equal(t, "Number", ds[0].Enum)
	assert.Contains(t, ds[0].Msg, "no payload type")

	e.ValuedAs = TypeList{"string", "int"}
	_, err = Resolve(e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple payload types declared: string, int")
}

func TestResolveMissingValueNamesVariant(t *testing.T) {
	e := numberEnum()
	e.Variants = append(e.Variants, Variant{Name: "Fourth"})
	_, err := Resolve(e)
	require.Error(t, err)
	ds := Diagnostics(err)
	require.Len(t, ds, 1)
	assert.Equal(t, "Fourth", ds[0].Variant)
	assert.Contains(t, ds[0].Hint, "unvalued_default")
	assert.Contains(t, err.Error(), "enum Number: variant Fourth: no value")
}

func TestResolveReportsEveryProblem(t *testing.T) {
	e := &Enum{
		Name:     "Bad",
		ValuedAs: TypeList{"int"},
		Features: NameList{"Delegators", "Delegators", "Teleport"},
		Repr:     "string",
		Variants: []Variant{
			{Name: "A", Value: ptr("1")},
			{Name: "A", Value: ptr("2")},
			{Name: "b-c", Value: ptr("3")},
			{Name: "D", Value: ptr("1 +")},
		},
	}
	r, err := Resolve(e)
	require.Error(t, err)
	assert.Nil(t, r)
	msgs := make([]string, 0)
	for _, d := range Diagnostics(err) {
		msgs = append(msgs, d.Msg)
	}
	assert.ElementsMatch(t, []string{
		`repr "string" is not an integer type`,
		"feature Delegators requested twice",
		`unknown feature "Teleport"`,
		"duplicate variant name",
		`"b-c" is not a valid Go identifier`,
		`malformed value "1 +"`,
	}, msgs)
}

func TestResolveEmpty(t *testing.T) {
	_, err := Resolve(&Enum{Name: "Empty", ValuedAs: TypeList{"int"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no variants")
}

func shapeEnum() *Enum {
	return &Enum{
		Name:     "Shape",
		ValuedAs: TypeList{"string"},
		Default:  ptr(`"shape"`),
		Variants: []Variant{
			{Name: "Point"},
			{Name: "Circle", Fields: []Field{{Name: "Radius", Type: "float64"}}},
			{Name: "Rect", Fields: []Field{{Name: "W", Type: "int"}, {Name: "H", Type: "int"}, {Name: "Label", Type: "string"}}},
			{Name: "Pair", Fields: []Field{{Type: "int"}, {Type: "*Shape"}}},
			{Name: "Tagged", Fields: []Field{{Name: "Tags", Type: "[]string"}, {Name: "At", Type: "time.Time"}}},
		},
	}
}

func TestResolveFieldDefaults(t *testing.T) {
	r, err := Resolve(shapeEnum())
	require.NoError(t, err)
	assert.True(t, r.Sum)
	lits := make([]string, 0, len(r.Variants))
	for _, v := range r.Variants {
		lits = append(lits, v.Literal)
	}
	assert.Equal(t, []string{
		"Point{}",
		"Circle{Radius: 0}",
		`Rect{W: 0, H: 0, Label: ""}`,
		"Pair{0, nil}",
		"Tagged{Tags: nil, At: valenum.Zero[time.Time]()}",
	}, lits)
	assert.True(t, r.Variants[3].Positional)
	assert.Equal(t, []Field{{Name: "Field0", Type: "int"}, {Name: "Field1", Type: "*Shape"}}, r.Variants[3].Fields)
}

func TestResolveFieldInitializers(t *testing.T) {
	e := shapeEnum()
	e.Variants[1].Init = ptr("Radius: 1.5")
	e.Variants[2].Init = ptr(`Label: "unit", W: 1`)
	e.Variants[3].Init = ptr("7, &Shape{}")
	r, err := Resolve(e)
	require.NoError(t, err)
	assert.Equal(t, "Circle{Radius: 1.5}", r.Variants[1].Literal)
	assert.Equal(t, `Rect{W: 1, H: 0, Label: "unit"}`, r.Variants[2].Literal)
	assert.Equal(t, "Pair{7, &Shape{}}", r.Variants[3].Literal)
}

func TestResolveMalformedInitializers(t *testing.T) {
	cases := map[string]struct {
		variant int
		init    string
		msg     string
	}{
		"syntax":        {1, "Radius: ", "malformed field initializer"},
		"unknown field": {1, "Diameter: 2", "unknown field Diameter"},
		"twice":         {2, "W: 1, W: 2", "sets W twice"},
		"mixed":         {2, "W: 1, 2", "mixes keyed and positional"},
		"count":         {2, "1, 2", "has 2 values for 3 fields"},
		"keyed tuple":   {3, "Field0: 1", "keyed field initializer for positional fields"},
		"no fields":     {0, "1", "without fields"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := shapeEnum()
			e.Variants[tc.variant].Init = ptr(tc.init)
			_, err := Resolve(e)
			require.Error(t, err)
			ds := Diagnostics(err)
			require.Len(t, ds, 1)
			assert.Equal(t, e.Variants[tc.variant].Name, ds[0].Variant)
			assert.Contains(t, ds[0].Msg, tc.msg)
		})
	}
}

func TestResolveNameCollisions(t *testing.T) {
	cases := map[string]struct {
		name     string
		features NameList
		msg      string
	}{
		"enum type": {"Number", nil, "the enum type"},
		"table":     {"_Number_table", nil, "the generated lookup table"},
		"accessor":  {"NumberTable", nil, "generated function NumberTable"},
		"delegator": {"NumberVariants", NameList{"Delegators"}, "generated function NumberVariants"},
		"reverse":   {"NumberFromValueOpt", NameList{"ValueToVariantDelegators"}, "generated function NumberFromValueOpt"},
		"string":    {"_Number_names", NameList{"String"}, "the generated name table"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			e := numberEnum()
			e.Features = tc.features
			e.Variants[2].Name = tc.name
			_, err := Resolve(e)
			require.Error(t, err)
			ds := Diagnostics(err)
			require.Len(t, ds, 1)
			assert.Equal(t, tc.name, ds[0].Variant)
			assert.Equal(t, "name collides with "+tc.msg, ds[0].Msg)
		})
	}

	e := numberEnum()
	e.Features = nil
	e.Variants[2].Name = "NumberVariants"
	_, err := Resolve(e)
	assert.NoError(t, err)
}

func TestResolveSumNameCollisions(t *testing.T) {
	e := shapeEnum()
	e.Features = NameList{"Delegators", "Deserialize"}
	e.Variants[4].Name = "UnmarshalShapeJSON"
	e.Variants[1].Fields = []Field{{Name: "Value", Type: "float64"}}
	_, err := Resolve(e)
	require.Error(t, err)
	ds := Diagnostics(err)
	require.Len(t, ds, 2)
	assert.Equal(t, "Circle", ds[0].Variant)
	assert.Equal(t, "field Value collides with generated method Circle.Value", ds[0].Msg)
	assert.Equal(t, "UnmarshalShapeJSON", ds[1].Variant)
	assert.Equal(t, "name collides with generated function UnmarshalShapeJSON", ds[1].Msg)

	e = shapeEnum()
	e.Variants[1].Fields = []Field{{Name: "Value", Type: "float64"}}
	_, err = Resolve(e)
	assert.NoError(t, err)

	e = shapeEnum()
	e.Variants[0].Name = "Shape"
	_, err = Resolve(e)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "variant Shape: name collides with the enum type")
}

func TestIdent(t *testing.T) {
	assert.Equal(t, "UnmarshalShapeJSON", Ident("Unmarshal", "Shape", "JSON"))
	assert.Equal(t, "unmarshalShapeJSON", Ident("Unmarshal", "shape", "JSON"))
}

func TestZeroExpr(t *testing.T) {
	cases := map[string]string{
		"int":              "0",
		"float64":          "0",
		"rune":             "0",
		"string":           `""`,
		"bool":             "false",
		"*int":             "nil",
		"[]byte":           "nil",
		"map[string]int":   "nil",
		"chan int":         "nil",
		"func(int) bool":   "nil",
		"error":            "nil",
		"any":              "nil",
		"interface{}":      "nil",
		"[4]int":           "valenum.Zero[[4]int]()",
		"time.Duration":    "valenum.Zero[time.Duration]()",
		"channelState":     "valenum.Zero[channelState]()",
		"struct{ X int }":  "valenum.Zero[struct{ X int }]()",
		" string ":         `""`,
	}
	for typ, want := range cases {
		assert.Equal(t, want, ZeroExpr(typ), typ)
	}
}
