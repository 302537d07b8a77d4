package decl

import (
	"fmt"
	"go/ast"
	"go/build"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

const directivePrefix = "//valenum:"

type directive struct {
	key string
	arg string
	pos token.Position
}

// parseDirectives returns the //valenum: lines of a comment group.
func parseDirectives(fset *token.FileSet, cg *ast.CommentGroup) []directive {
	if cg == nil {
		return nil
	}
	var out []directive
	for _, c := range cg.List {
		rest, ok := strings.CutPrefix(c.Text, directivePrefix)
		if !ok {
			continue
		}
		key, arg := rest, ""
		if i := strings.IndexFunc(rest, unicode.IsSpace); i >= 0 {
			key, arg = rest[:i], rest[i:]
		}
		out = append(out, directive{
			key: strings.TrimSpace(key),
			arg: strings.TrimSpace(arg),
			pos: fset.Position(c.Pos()),
		})
	}
	return out
}

type sourceFile struct {
	name string
	src  []byte
	ast  *ast.File
}

type sourceEnum struct {
	enum  *Enum
	files map[*sourceFile]bool
}

// LoadPackage reads the annotated enums declared in the Go files of dir.
// Test files, generated files and files excluded by build constraints
// are skipped. When types is not empty
// only those enums are loaded and each must exist.
func LoadPackage(dir string, types []string) (*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	fset := token.NewFileSet()
	var files []*sourceFile
	for _, ent := range entries {
		name := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		match, err := build.Default.MatchFile(dir, name)
		if err != nil {
			return nil, err
		}
		if !match {
			continue
		}
		path := filepath.Join(dir, name)
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		f, err := parser.ParseFile(fset, path, src, parser.ParseComments)
		if err != nil {
			return nil, err
		}
		if ast.IsGenerated(f) {
			continue
		}
		files = append(files, &sourceFile{name: path, src: src, ast: f})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%s: no Go files", dir)
	}
	return loadFiles(fset, dir, files, types)
}

func loadFiles(fset *token.FileSet, dir string, files []*sourceFile, types []string) (*Document, error) {
	var ds diagnostics
	doc := &Document{Package: files[0].ast.Name.Name, Path: dir}
	for _, sf := range files[1:] {
		if pkg := sf.ast.Name.Name; pkg != doc.Package {
			return nil, fmt.Errorf("%s: found packages %s (%s) and %s (%s)", dir,
				doc.Package, filepath.Base(files[0].name), pkg, filepath.Base(sf.name))
		}
	}
	enums := make(map[string]*sourceEnum)
	var order []string

	// Enum types first, so that variants and constants may appear in
	// any file.
	for _, sf := range files {
		for _, gd := range genDecls(sf.ast, token.TYPE) {
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				dirs := parseDirectives(fset, typeDoc(gd, ts))
				if !hasDirective(dirs, "enum") {
					continue
				}
				pos := fset.Position(ts.Pos())
				e := &Enum{Name: ts.Name.Name, Declared: true, Pos: pos}
				switch t := ts.Type.(type) {
				case *ast.InterfaceType:
					e.Sum = true
				case *ast.Ident:
					e.Repr = t.Name
				default:
					ds.add(&Diagnostic{Pos: pos, Enum: e.Name,
						Msg:  "enum type must be an integer type or an interface",
						Hint: "declare type " + e.Name + " int or type " + e.Name + " interface{ is" + e.Name + "() }"})
					continue
				}
				applyEnumDirectives(e, dirs, &ds)
				if _, dup := enums[e.Name]; dup {
					ds.add(&Diagnostic{Pos: pos, Enum: e.Name, Msg: "enum declared twice"})
					continue
				}
				enums[e.Name] = &sourceEnum{enum: e, files: map[*sourceFile]bool{sf: true}}
				order = append(order, e.Name)
			}
		}
	}

	for _, sf := range files {
		collectVariants(fset, sf, enums, &ds)
		collectConstants(fset, sf, enums, &ds)
	}

	wanted := order
	if len(types) > 0 {
		wanted = nil
		for _, t := range types {
			if _, ok := enums[t]; !ok {
				ds.add(&Diagnostic{Enum: t, Msg: "type not found in " + dir,
					Hint: "annotate the type with //valenum:enum"})
				continue
			}
			wanted = append(wanted, t)
		}
	}

	if len(types) > 0 {
		ds.filter(func(d *Diagnostic) bool {
			return d.Enum == "" || slices.Contains(types, d.Enum)
		})
	}

	seenImport := make(map[string]bool)
	for _, name := range wanted {
		se := enums[name]
		doc.Enums = append(doc.Enums, *se.enum)
		for _, sf := range files {
			if !se.files[sf] {
				continue
			}
			for _, imp := range sf.ast.Imports {
				spec := imp.Path.Value
				if imp.Name != nil {
					spec = imp.Name.Name + " " + spec
				}
				if !seenImport[spec] {
					seenImport[spec] = true
					doc.Imports = append(doc.Imports, spec)
				}
			}
		}
	}
	if err := ds.err(); err != nil {
		return nil, err
	}
	return doc, nil
}

func applyEnumDirectives(e *Enum, dirs []directive, ds *diagnostics) {
	for _, d := range dirs {
		switch d.key {
		case "enum":
		case "valued_as":
			e.ValuedAs = append(e.ValuedAs, d.arg)
		case "unvalued_default":
			arg := d.arg
			e.Default = &arg
		case "features":
			e.Features = append(e.Features, SplitNames(d.arg)...)
		case "equal":
			e.Equal = d.arg
		default:
			ds.add(&Diagnostic{Pos: d.pos, Enum: e.Name, Msg: fmt.Sprintf("unknown directive %s%s", directivePrefix, d.key)})
		}
	}
}

// collectVariants gathers the structs marked //valenum:variant in file
// order.
func collectVariants(fset *token.FileSet, sf *sourceFile, enums map[string]*sourceEnum, ds *diagnostics) {
	for _, gd := range genDecls(sf.ast, token.TYPE) {
		for _, spec := range gd.Specs {
			ts := spec.(*ast.TypeSpec)
			dirs := parseDirectives(fset, typeDoc(gd, ts))
			i := slices.IndexFunc(dirs, func(d directive) bool { return d.key == "variant" })
			if i < 0 {
				continue
			}
			pos := fset.Position(ts.Pos())
			v := Variant{Name: ts.Name.Name, Pos: pos}
			se, ok := enums[dirs[i].arg]
			if !ok {
				ds.add(&Diagnostic{Pos: pos, Enum: dirs[i].arg, Variant: v.Name, Msg: "variant of an unknown enum"})
				continue
			}
			if !se.enum.Sum {
				ds.add(&Diagnostic{Pos: pos, Enum: se.enum.Name, Variant: v.Name,
					Msg: "struct variants need an interface enum"})
				continue
			}
			st, ok := ts.Type.(*ast.StructType)
			if !ok {
				ds.add(&Diagnostic{Pos: pos, Enum: se.enum.Name, Variant: v.Name, Msg: "variant must be a struct type"})
				continue
			}
			for _, fld := range st.Fields.List {
				typ := string(sf.src[fset.Position(fld.Type.Pos()).Offset:fset.Position(fld.Type.End()).Offset])
				if len(fld.Names) == 0 {
					v.Fields = append(v.Fields, Field{Name: embeddedName(fld.Type), Type: typ})
				}
				for _, n := range fld.Names {
					v.Fields = append(v.Fields, Field{Name: n.Name, Type: typ})
				}
			}
			for _, d := range dirs {
				switch d.key {
				case "variant":
				case "value":
					arg := d.arg
					v.Value = &arg
				case "init":
					arg := d.arg
					v.Init = &arg
				default:
					ds.add(&Diagnostic{Pos: d.pos, Enum: se.enum.Name, Variant: v.Name,
						Msg: fmt.Sprintf("unknown directive %s%s", directivePrefix, d.key)})
				}
			}
			se.enum.Variants = append(se.enum.Variants, v)
			se.files[sf] = true
		}
	}
}

// collectConstants gathers the iota constants of integer enums. The
// sequence must be dense and start at zero.
func collectConstants(fset *token.FileSet, sf *sourceFile, enums map[string]*sourceEnum, ds *diagnostics) {
	for _, gd := range genDecls(sf.ast, token.CONST) {
		var typ ast.Expr
		var values []ast.Expr
		for i, spec := range gd.Specs {
			vs := spec.(*ast.ValueSpec)
			if vs.Type != nil || len(vs.Values) > 0 {
				typ, values = vs.Type, vs.Values
			}
			ident, ok := typ.(*ast.Ident)
			if !ok {
				continue
			}
			se, ok := enums[ident.Name]
			if !ok || se.enum.Sum {
				continue
			}
			e := se.enum
			pos := fset.Position(vs.Pos())
			if len(values) != 1 || !isIota(values[0]) {
				ds.add(&Diagnostic{Pos: pos, Enum: e.Name, Variant: vs.Names[0].Name,
					Msg:  "constant has an explicit value",
					Hint: "variants must be a plain iota sequence starting at 0; custom discriminants are not supported"})
				continue
			}
			if len(vs.Names) != 1 || vs.Names[0].Name == "_" {
				ds.add(&Diagnostic{Pos: pos, Enum: e.Name, Variant: vs.Names[0].Name,
					Msg:  "discriminant sequence has a gap",
					Hint: "declare one named constant per line"})
				continue
			}
			if i != len(e.Variants) {
				ds.add(&Diagnostic{Pos: pos, Enum: e.Name, Variant: vs.Names[0].Name,
					Msg:  "discriminant " + strconv.Itoa(i) + " is not dense",
					Hint: "the iota sequence must start at 0 in its own const block"})
				continue
			}
			v := Variant{Name: vs.Names[0].Name, Pos: pos}
			for _, d := range parseDirectives(fset, vs.Doc) {
				if d.key != "value" {
					ds.add(&Diagnostic{Pos: d.pos, Enum: e.Name, Variant: v.Name,
						Msg: fmt.Sprintf("unknown directive %s%s", directivePrefix, d.key)})
					continue
				}
				arg := d.arg
				v.Value = &arg
			}
			e.Variants = append(e.Variants, v)
			se.files[sf] = true
		}
	}
}

func genDecls(f *ast.File, tok token.Token) []*ast.GenDecl {
	var out []*ast.GenDecl
	for _, d := range f.Decls {
		if gd, ok := d.(*ast.GenDecl); ok && gd.Tok == tok {
			out = append(out, gd)
		}
	}
	return out
}

// typeDoc returns the doc comment of a type spec, falling back to the
// declaration's doc for an unparenthesized declaration.
func typeDoc(gd *ast.GenDecl, ts *ast.TypeSpec) *ast.CommentGroup {
	if ts.Doc != nil {
		return ts.Doc
	}
	if !gd.Lparen.IsValid() {
		return gd.Doc
	}
	return nil
}

func hasDirective(dirs []directive, key string) bool {
	return slices.ContainsFunc(dirs, func(d directive) bool { return d.key == key })
}

func isIota(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == "iota"
}

func embeddedName(t ast.Expr) string {
	switch t := t.(type) {
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.SelectorExpr:
		return t.Sel.Name
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return embeddedName(t.X)
	case *ast.IndexListExpr:
		return embeddedName(t.X)
	}
	return ""
}
