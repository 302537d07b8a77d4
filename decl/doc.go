// Package decl holds the declarative description of a valued enum and
// turns it into a fully resolved form ready for code generation.
//
// A description comes either from a YAML/JSON file (LoadFile), in which
// case the generator also declares the enum types, or from annotated Go
// source (LoadPackage), in which case the types already exist:
//
//	//valenum:enum
//	//valenum:valued_as string
//	//valenum:unvalued_default "unknown"
//	//valenum:features Delegators, ValueToVariantDelegators
//	type Color int
//
//	const (
//		//valenum:value "#f00"
//		Red Color = iota
//		Green
//	)
//
// Resolve validates a description and fills in every payload and field
// initializer. It never returns a partial result: all problems are
// reported together as *Diagnostic values joined with errors.Join.
package decl
