package decl

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var numericTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "byte": true, "rune": true,
	"float32": true, "float64": true, "complex64": true, "complex128": true,
}

var integerTypes = map[string]bool{
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true, "byte": true, "rune": true,
}

// ZeroExpr returns a Go expression for the default value of typ.
func ZeroExpr(typ string) string {
	typ = strings.TrimSpace(typ)
	switch {
	case numericTypes[typ]:
		return "0"
	case typ == "string":
		return `""`
	case typ == "bool":
		return "false"
	case typ == "any", typ == "error",
		strings.HasPrefix(typ, "*"),
		strings.HasPrefix(typ, "[]"),
		strings.HasPrefix(typ, "map["),
		strings.HasPrefix(typ, "chan "), strings.HasPrefix(typ, "chan<-"),
		strings.HasPrefix(typ, "<-chan"),
		strings.HasPrefix(typ, "func("),
		strings.HasPrefix(typ, "interface{"):
		return "nil"
	}
	return "valenum.Zero[" + typ + "]()"
}

// initValues parses the element list of a composite literal and returns
// one expression per field in declared order. Keys missing from a keyed
// list are filled with ZeroExpr.
func initValues(init string, fields []Field, positional bool) ([]string, error) {
	src := "_{" + init + "}"
	fset := token.NewFileSet()
	expr, err := parser.ParseExprFrom(fset, "", src, 0)
	if err != nil {
		return nil, fmt.Errorf("malformed field initializer %q: %w", init, err)
	}
	lit, ok := expr.(*ast.CompositeLit)
	if !ok {
		return nil, fmt.Errorf("malformed field initializer %q", init)
	}
	text := func(n ast.Node) string {
		return src[fset.Position(n.Pos()).Offset:fset.Position(n.End()).Offset]
	}

	keyed := 0
	for _, elt := range lit.Elts {
		if _, ok := elt.(*ast.KeyValueExpr); ok {
			keyed++
		}
	}
	switch {
	case keyed == 0:
		if len(lit.Elts) != len(fields) {
			return nil, fmt.Errorf("field initializer has %d values for %d fields", len(lit.Elts), len(fields))
		}
		out := make([]string, len(lit.Elts))
		for i, elt := range lit.Elts {
			out[i] = text(elt)
		}
		return out, nil
	case keyed != len(lit.Elts):
		return nil, fmt.Errorf("field initializer mixes keyed and positional values")
	case positional:
		return nil, fmt.Errorf("keyed field initializer for positional fields")
	}

	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Name] = i
	}
	out := make([]string, len(fields))
	for _, elt := range lit.Elts {
		kv := elt.(*ast.KeyValueExpr)
		key, ok := kv.Key.(*ast.Ident)
		if !ok {
			return nil, fmt.Errorf("field initializer key %s is not a field name", text(kv.Key))
		}
		i, ok := index[key.Name]
		if !ok {
			return nil, fmt.Errorf("field initializer names unknown field %s", key.Name)
		}
		if out[i] != "" {
			return nil, fmt.Errorf("field initializer sets %s twice", key.Name)
		}
		out[i] = text(kv.Value)
	}
	for i, f := range fields {
		if out[i] == "" {
			out[i] = ZeroExpr(f.Type)
		}
	}
	return out, nil
}

// literal renders the table entry for a sum variant.
func literal(name string, fields []Field, values []string, positional bool) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('{')
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		if !positional {
			b.WriteString(fields[i].Name)
			b.WriteString(": ")
		}
		b.WriteString(v)
	}
	b.WriteByte('}')
	return b.String()
}

// positionalName names the i-th unnamed field of a declared variant.
func positionalName(i int) string {
	return "Field" + strconv.Itoa(i)
}

// Ident joins parts into an identifier that keeps the visibility of
// name: Ident("Unmarshal", "shape", "JSON") is "unmarshalShapeJSON".
func Ident(prefix, name, suffix string) string {
	r, n := utf8.DecodeRuneInString(name)
	if unicode.IsUpper(r) {
		return prefix + name + suffix
	}
	p, m := utf8.DecodeRuneInString(prefix)
	return string(unicode.ToLower(p)) + prefix[m:] + string(unicode.ToUpper(r)) + name[n:] + suffix
}

func isIdent(s string) bool {
	return token.IsIdentifier(s) && s != "_"
}

func checkExpr(s string) error {
	_, err := parser.ParseExpr(s)
	return err
}
