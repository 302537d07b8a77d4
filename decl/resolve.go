package decl

import (
	"fmt"
	"strings"
)

// Resolved is an enum with every payload and field value decided.
type Resolved struct {
	Name      string
	Doc       string
	Sum       bool
	ValueType string
	// Equal is the payload equality expression, empty when reverse
	// lookup is not generated.
	Equal    string
	Repr     string
	Declared bool
	Features []Feature
	Variants []ResolvedVariant
}

// ResolvedVariant is one variant ready for generation.
type ResolvedVariant struct {
	Name         string
	Doc          string
	Discriminant int
	Value        string
	// Defaulted is set when Value came from unvalued_default.
	Defaulted  bool
	Fields     []Field
	Positional bool
	// Literal is the table entry: the constant name for integer enums,
	// a composite literal for sum enums.
	Literal string
}

// Has reports whether f was requested.
func (r *Resolved) Has(f Feature) bool {
	for _, g := range r.Features {
		if g == f {
			return true
		}
	}
	return false
}

// Resolve validates e and decides every payload and field value. Either
// the whole enum resolves or the returned error lists every problem.
func Resolve(e *Enum) (*Resolved, error) {
	var ds diagnostics
	fail := func(v *Variant, msg, hint string) {
		d := &Diagnostic{Pos: e.Pos, Enum: e.Name, Msg: msg, Hint: hint}
		if v != nil {
			d.Variant = v.Name
			if v.Pos.IsValid() {
				d.Pos = v.Pos
			}
		}
		ds.add(d)
	}

	r := &Resolved{
		Name:     e.Name,
		Doc:      e.Doc,
		Sum:      e.Sum || e.HasFields(),
		Equal:    strings.TrimSpace(e.Equal),
		Repr:     strings.TrimSpace(e.Repr),
		Declared: e.Declared,
	}
	if !isIdent(e.Name) {
		fail(nil, fmt.Sprintf("%q is not a valid Go identifier", e.Name), "")
	}

	switch len(e.ValuedAs) {
	case 0:
		fail(nil, "no payload type declared",
			"declare one with valued_as: <type> or //valenum:valued_as <type>")
	case 1:
		r.ValueType = strings.TrimSpace(e.ValuedAs[0])
		if err := checkExpr(r.ValueType); err != nil || r.ValueType == "" {
			fail(nil, fmt.Sprintf("payload type %q is not a Go type", r.ValueType), "")
		}
	default:
		fail(nil, fmt.Sprintf("multiple payload types declared: %s", strings.Join(e.ValuedAs, ", ")),
			"an enum has exactly one payload type")
	}

	if r.Repr == "" {
		r.Repr = "int"
	}
	if !integerTypes[r.Repr] {
		fail(nil, fmt.Sprintf("repr %q is not an integer type", r.Repr), "")
	}

	var dflt string
	if e.Default != nil {
		dflt = strings.TrimSpace(*e.Default)
		if err := checkExpr(dflt); err != nil {
			fail(nil, fmt.Sprintf("malformed unvalued_default %q", dflt), err.Error())
		}
	}

	seenFeature := make(map[Feature]bool)
	for _, name := range e.Features {
		f, ok := FeatureFromValueOpt(name)
		switch {
		case !ok:
			fail(nil, fmt.Sprintf("unknown feature %q", name), "known features: "+knownFeatures())
		case seenFeature[f]:
			fail(nil, fmt.Sprintf("feature %s requested twice", name), "")
		default:
			seenFeature[f] = true
			r.Features = append(r.Features, f)
		}
	}

	switch {
	case r.Equal != "":
		if err := checkExpr(r.Equal); err != nil {
			fail(nil, fmt.Sprintf("malformed equal function %q", r.Equal), err.Error())
		}
	case seenFeature[FeatureValueToVariantDelegators] && r.ValueType != "":
		r.Equal = "valenum.Equal[" + r.ValueType + "]"
	}

	if len(e.Variants) == 0 {
		fail(nil, "enum has no variants", "")
	}
	reserved := reservedNames(r)
	methods := variantMethods(r)
	seen := make(map[string]bool, len(e.Variants))
	for i := range e.Variants {
		v := &e.Variants[i]
		rv := ResolvedVariant{Name: v.Name, Doc: v.Doc, Discriminant: i}
		if !isIdent(v.Name) {
			fail(v, fmt.Sprintf("%q is not a valid Go identifier", v.Name), "")
		} else if seen[v.Name] {
			fail(v, "duplicate variant name", "")
		} else if what, ok := reserved[v.Name]; ok {
			fail(v, "name collides with "+what, "rename the variant")
		}
		seen[v.Name] = true

		switch {
		case v.Value != nil:
			rv.Value = strings.TrimSpace(*v.Value)
			if err := checkExpr(rv.Value); err != nil {
				fail(v, fmt.Sprintf("malformed value %q", rv.Value), err.Error())
			}
		case e.Default != nil:
			rv.Value = dflt
			rv.Defaulted = true
		default:
			fail(v, "no value",
				"give the variant a value or set unvalued_default on the enum")
		}

		if !r.Sum {
			if v.Init != nil {
				fail(v, "field initializer on a variant without fields", "")
			}
			rv.Literal = v.Name
			r.Variants = append(r.Variants, rv)
			continue
		}
		if err := resolveFields(v, &rv); err != nil {
			fail(v, err.Error(), "")
		}
		for _, f := range rv.Fields {
			if methods[f.Name] {
				fail(v, fmt.Sprintf("field %s collides with generated method %s.%s", f.Name, v.Name, f.Name),
					"rename the field or drop the feature that generates the method")
			}
		}
		r.Variants = append(r.Variants, rv)
	}

	if err := ds.err(); err != nil {
		return nil, err
	}
	return r, nil
}

func resolveFields(v *Variant, rv *ResolvedVariant) error {
	named := 0
	for _, f := range v.Fields {
		if f.Name != "" {
			named++
		}
	}
	if named != 0 && named != len(v.Fields) {
		return fmt.Errorf("fields mix named and positional declarations")
	}
	rv.Positional = len(v.Fields) > 0 && named == 0

	seen := make(map[string]bool, len(v.Fields))
	for i, f := range v.Fields {
		if rv.Positional {
			f.Name = positionalName(i)
		}
		if !isIdent(f.Name) {
			return fmt.Errorf("field %q is not a valid Go identifier", f.Name)
		}
		if seen[f.Name] {
			return fmt.Errorf("duplicate field %s", f.Name)
		}
		seen[f.Name] = true
		if err := checkExpr(f.Type); err != nil || strings.TrimSpace(f.Type) == "" {
			return fmt.Errorf("field %s has malformed type %q", f.Name, f.Type)
		}
		rv.Fields = append(rv.Fields, Field{Name: f.Name, Type: strings.TrimSpace(f.Type)})
	}

	var values []string
	switch {
	case len(rv.Fields) == 0:
		if v.Init != nil && strings.TrimSpace(*v.Init) != "" {
			return fmt.Errorf("field initializer on a variant without fields")
		}
	case v.Init != nil:
		var err error
		values, err = initValues(*v.Init, rv.Fields, rv.Positional)
		if err != nil {
			return err
		}
	default:
		for _, f := range rv.Fields {
			values = append(values, ZeroExpr(f.Type))
		}
	}
	rv.Literal = literal(v.Name, rv.Fields, values, rv.Positional)
	return nil
}

// reservedNames maps the package-level identifiers generated for r to
// what declares them.
func reservedNames(r *Resolved) map[string]string {
	names := map[string]string{
		r.Name:                  "the enum type",
		"_" + r.Name + "_table": "the generated lookup table",
		r.Name + "Table":        "generated function " + r.Name + "Table",
	}
	fn := func(list ...string) {
		for _, name := range list {
			names[name] = "generated function " + name
		}
	}
	if r.Sum {
		fn("_" + r.Name + "_discriminant")
	}
	for _, f := range r.Features {
		switch f {
		case FeatureDelegators:
			fn(r.Name+"FromDiscriminant", r.Name+"FromDiscriminantOpt", r.Name+"Variants")
		case FeatureValueToVariantDelegators:
			fn(r.Name+"FromValue", r.Name+"FromValueOpt")
		case FeatureString:
			if !r.Sum {
				names["_"+r.Name+"_names"] = "the generated name table"
			}
		default:
			if format, ok := f.Wire(); ok && f.Decodes() && r.Sum {
				fn(Ident("Unmarshal", r.Name, format))
			}
		}
	}
	return names
}

// variantMethods is the set of methods generated on every variant of a
// sum enum.
func variantMethods(r *Resolved) map[string]bool {
	methods := map[string]bool{"is" + r.Name: true}
	for _, f := range r.Features {
		switch f {
		case FeatureDelegators:
			methods["Discriminant"] = true
			methods["Value"] = true
			methods["ValueOpt"] = true
		case FeatureDerefToValue:
			methods["Ref"] = true
		case FeatureClone:
			methods["Clone"] = true
		case FeatureString:
			methods["String"] = true
		default:
			if format, ok := f.Wire(); ok && !f.Decodes() {
				methods["Marshal"+format] = true
			}
		}
	}
	return methods
}

func knownFeatures() string {
	return strings.Join(FeatureTable().Values(), ", ")
}
