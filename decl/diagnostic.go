package decl

import (
	"errors"
	"fmt"
	"go/token"
	"slices"
	"strings"
)

// Diagnostic is a generation error tied to an enum and, when relevant,
// one of its variants.
type Diagnostic struct {
	Pos     token.Position
	Enum    string
	Variant string
	Msg     string
	Hint    string
}

func (d *Diagnostic) Error() string {
	var b strings.Builder
	if d.Pos.IsValid() {
		b.WriteString(d.Pos.String())
		b.WriteString(": ")
	}
	if d.Enum != "" {
		fmt.Fprintf(&b, "enum %s: ", d.Enum)
	}
	if d.Variant != "" {
		fmt.Fprintf(&b, "variant %s: ", d.Variant)
	}
	b.WriteString(d.Msg)
	if d.Hint != "" {
		b.WriteString("\n\t")
		b.WriteString(strings.ReplaceAll(d.Hint, "\n", "\n\t"))
	}
	return b.String()
}

// Diagnostics unwraps err into its individual diagnostics. Errors that
// are not diagnostics are returned wrapped in one with only Msg set.
func Diagnostics(err error) []*Diagnostic {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []*Diagnostic
		for _, e := range joined.Unwrap() {
			out = append(out, Diagnostics(e)...)
		}
		return out
	}
	var d *Diagnostic
	if errors.As(err, &d) {
		return []*Diagnostic{d}
	}
	return []*Diagnostic{{Msg: err.Error()}}
}

type diagnostics struct {
	list []error
}

func (ds *diagnostics) add(d *Diagnostic) {
	ds.list = append(ds.list, d)
}

// filter drops the diagnostics keep rejects.
func (ds *diagnostics) filter(keep func(*Diagnostic) bool) {
	ds.list = slices.DeleteFunc(ds.list, func(err error) bool {
		d, ok := err.(*Diagnostic)
		return ok && !keep(d)
	})
}

func (ds *diagnostics) err() error {
	return errors.Join(ds.list...)
}
