package decl

//go:generate go run ../cmd/valenum -t Feature

// Feature names an optional member set generated for an enum.
//
//valenum:enum
//valenum:valued_as string
//valenum:features Delegators, ValueToVariantDelegators
type Feature int

const (
	// Delegators adds Discriminant, Value and ValueOpt methods plus
	// the FromDiscriminant and Variants functions.
	//
	//valenum:value "Delegators"
	FeatureDelegators Feature = iota
	// ValueToVariantDelegators adds the FromValue reverse lookups.
	//
	//valenum:value "ValueToVariantDelegators"
	FeatureValueToVariantDelegators
	// DerefToValue adds Ref, a pointer into the value table.
	//
	//valenum:value "DerefToValue"
	FeatureDerefToValue
	//valenum:value "Clone"
	FeatureClone
	//valenum:value "String"
	FeatureString
	// Serialize and Deserialize use JSON.
	//
	//valenum:value "Serialize"
	FeatureSerialize
	//valenum:value "Deserialize"
	FeatureDeserialize
	//valenum:value "SerBin"
	FeatureSerBin
	//valenum:value "DeBin"
	FeatureDeBin
	//valenum:value "SerText"
	FeatureSerText
	//valenum:value "DeText"
	FeatureDeText
	//valenum:value "SerCBOR"
	FeatureSerCBOR
	//valenum:value "DeCBOR"
	FeatureDeCBOR
	//valenum:value "SerYAML"
	FeatureSerYAML
	//valenum:value "DeYAML"
	FeatureDeYAML
)

func (f Feature) String() string {
	if name, ok := f.ValueOpt(); ok {
		return name
	}
	return "Feature(?)"
}

// Decodes reports whether f generates a decoder. Sum enums get a
// package function for these since an interface cannot be a receiver.
func (f Feature) Decodes() bool {
	switch f {
	case FeatureDeserialize, FeatureDeBin, FeatureDeText, FeatureDeCBOR, FeatureDeYAML:
		return true
	}
	return false
}

// Wire reports the codec format name behind a serialization feature.
func (f Feature) Wire() (string, bool) {
	switch f {
	case FeatureSerialize, FeatureDeserialize:
		return "JSON", true
	case FeatureSerBin, FeatureDeBin:
		return "Binary", true
	case FeatureSerText, FeatureDeText:
		return "Text", true
	case FeatureSerCBOR, FeatureDeCBOR:
		return "CBOR", true
	case FeatureSerYAML, FeatureDeYAML:
		return "YAML", true
	}
	return "", false
}
