package gen

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"github.com/rawbytedev/valenum/decl"
	"golang.org/x/tools/imports"
)

const (
	RuntimePath = "github.com/rawbytedev/valenum"
	CodecPath   = RuntimePath + "/codec"
	yamlPath    = "gopkg.in/yaml.v3"
)

//go:embed valenum.tmpl
var templateText string

var templates = template.Must(template.New("valenum").Funcs(template.FuncMap{
	"comment": comment,
	"ident":   decl.Ident,
}).Parse(templateText))

// File is the input of one generated Go file.
type File struct {
	Package string
	// Imports are import specs needed by payload expressions, either
	// "path" or `name "path"`. Unused ones are dropped.
	Imports []string
	Enums   []*decl.Resolved
}

type Options struct {
	// Filename is the output name, used when resolving missing imports.
	Filename string
	Logger   *slog.Logger
}

type Generator struct {
	Opts Options
	log  *slog.Logger
}

func NewGenerator(opts Options) *Generator {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Filename == "" {
		opts.Filename = "valenum.go"
	}
	return &Generator{Opts: opts, log: log}
}

// Generate renders f with default options.
func Generate(f *File) ([]byte, error) {
	return NewGenerator(Options{}).Generate(f)
}

// Generate renders f into formatted Go source with a digest header.
func (g *Generator) Generate(f *File) ([]byte, error) {
	if f.Package == "" {
		return nil, fmt.Errorf("gen: missing package name")
	}
	var body bytes.Buffer
	err := templates.ExecuteTemplate(&body, "file", struct {
		Package string
		Imports []string
	}{f.Package, importBlock(f)})
	if err != nil {
		return nil, fmt.Errorf("gen: %w", err)
	}
	for _, e := range f.Enums {
		if err := g.enum(&body, e); err != nil {
			return nil, fmt.Errorf("gen: enum %s: %w", e.Name, err)
		}
	}

	src, err := imports.Process(g.Opts.Filename, body.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		g.log.Debug("unformatted output", "source", body.String())
		return nil, fmt.Errorf("gen: format %s: %w", g.Opts.Filename, err)
	}
	return WithHeader(src), nil
}

func (g *Generator) enum(w *bytes.Buffer, r *decl.Resolved) error {
	data := enumData{Resolved: *r, Table: "_" + r.Name + "_table"}
	if !r.Declared {
		if err := templates.ExecuteTemplate(w, "decl", data); err != nil {
			return err
		}
	}
	base := "base.integer"
	if r.Sum {
		base = "base.sum"
	}
	if err := templates.ExecuteTemplate(w, base, data); err != nil {
		return err
	}
	for _, f := range r.Features {
		var err error
		if format, ok := f.Wire(); ok {
			name := "ser"
			if f.Decodes() {
				name = "de"
			}
			err = templates.ExecuteTemplate(w, name, newWireData(data, format))
		} else {
			err = templates.ExecuteTemplate(w, "feature/"+f.String(), data)
		}
		if err != nil {
			return fmt.Errorf("feature %s: %w", f, err)
		}
	}
	g.log.Debug("generated enum", "enum", r.Name, "variants", len(r.Variants), "features", len(r.Features))
	return nil
}

type enumData struct {
	decl.Resolved
	Table string
}

// EqualExpr is the equality argument of the value table.
func (e enumData) EqualExpr() string {
	if e.Equal == "" {
		return "nil"
	}
	return e.Equal
}

type wireData struct {
	Enum   enumData
	Format string
	Result string
	Param  string
	Arg    string
}

func newWireData(e enumData, format string) wireData {
	w := wireData{Enum: e, Format: format, Result: "[]byte", Param: "data []byte", Arg: "data"}
	if format == "YAML" {
		w.Result, w.Param, w.Arg = "any", "node *yaml.Node", "node"
	}
	return w
}

// importBlock returns the import specs of the output, standard library
// first, with an empty entry separating the groups.
func importBlock(f *File) []string {
	specs := map[string]string{RuntimePath: ""}
	for _, e := range f.Enums {
		for _, feat := range e.Features {
			if _, ok := feat.Wire(); ok {
				specs[CodecPath] = ""
			}
			if feat == decl.FeatureDeYAML {
				specs[yamlPath] = ""
			}
			if feat == decl.FeatureString && !e.Sum {
				specs["strconv"] = ""
			}
		}
	}
	for _, imp := range f.Imports {
		name, path := splitImport(imp)
		if path != "" {
			specs[path] = name
		}
	}

	var std, other []string
	for path, name := range specs {
		spec := strconv.Quote(path)
		if name != "" {
			spec = name + " " + spec
		}
		first, _, _ := strings.Cut(path, "/")
		if strings.Contains(first, ".") {
			other = append(other, spec)
		} else {
			std = append(std, spec)
		}
	}
	byPath := func(a, b string) int {
		return strings.Compare(specPath(a), specPath(b))
	}
	slices.SortFunc(std, byPath)
	slices.SortFunc(other, byPath)
	if len(std) > 0 && len(other) > 0 {
		std = append(std, "")
	}
	return append(std, other...)
}

// splitImport parses "path", `"path"` or `name "path"`.
func splitImport(s string) (name, path string) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		path = fields[0]
	case 2:
		name, path = fields[0], fields[1]
	default:
		return "", ""
	}
	if unquoted, err := strconv.Unquote(path); err == nil {
		path = unquoted
	}
	return name, path
}

func specPath(spec string) string {
	_, path := splitImport(spec)
	return path
}

// comment renders doc text as // lines.
func comment(doc string) string {
	doc = strings.TrimSpace(doc)
	if doc == "" {
		return ""
	}
	lines := strings.Split(doc, "\n")
	for i, l := range lines {
		if l = strings.TrimRight(l, " \t"); l == "" {
			lines[i] = "//"
		} else {
			lines[i] = "// " + l
		}
	}
	return strings.Join(lines, "\n")
}
