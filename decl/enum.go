package decl

import (
	"encoding/json"
	"fmt"
	"go/token"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is one description file or one annotated package.
type Document struct {
	Package string   `yaml:"package" json:"package"`
	Imports []string `yaml:"imports,omitempty" json:"imports,omitempty"`
	Enums   []Enum   `yaml:"enums" json:"enums"`

	// Path is the file or directory the document was loaded from.
	Path string `yaml:"-" json:"-"`
}

// Enum describes one valued enum.
type Enum struct {
	Name     string    `yaml:"name" json:"name"`
	Doc      string    `yaml:"doc,omitempty" json:"doc,omitempty"`
	ValuedAs TypeList  `yaml:"valued_as" json:"valued_as"`
	Default  *string   `yaml:"unvalued_default,omitempty" json:"unvalued_default,omitempty"`
	Features NameList  `yaml:"features,omitempty" json:"features,omitempty"`
	Equal    string    `yaml:"equal,omitempty" json:"equal,omitempty"`
	Repr     string    `yaml:"repr,omitempty" json:"repr,omitempty"`
	Sum      bool      `yaml:"sum,omitempty" json:"sum,omitempty"`
	Variants []Variant `yaml:"variants" json:"variants"`

	// Declared is set when the Go types already exist, so only the
	// tables and features are generated.
	Declared bool           `yaml:"-" json:"-"`
	Pos      token.Position `yaml:"-" json:"-"`
}

// Variant is one enum variant in declaration order.
type Variant struct {
	Name   string  `yaml:"name" json:"name"`
	Doc    string  `yaml:"doc,omitempty" json:"doc,omitempty"`
	Value  *string `yaml:"value,omitempty" json:"value,omitempty"`
	Fields []Field `yaml:"fields,omitempty" json:"fields,omitempty"`
	Init   *string `yaml:"init,omitempty" json:"init,omitempty"`

	Pos token.Position `yaml:"-" json:"-"`
}

// Field is a field of a sum enum variant. An empty Name makes the
// field positional.
type Field struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	Type string `yaml:"type" json:"type"`
}

// TypeList holds the declared payload types. It accepts a single scalar
// or a list, so that a description declaring several types can be
// reported instead of silently taking one.
type TypeList []string

func (l *TypeList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = TypeList{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*l = list
		return nil
	}
	return fmt.Errorf("line %d: valued_as must be a type or a list of types", node.Line)
}

func (l *TypeList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = TypeList{one}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("valued_as must be a type or a list of types: %w", err)
	}
	*l = list
	return nil
}

// NameList holds feature names. A scalar is split on commas and spaces.
type NameList []string

func (l *NameList) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*l = SplitNames(node.Value)
		return nil
	}
	var list []string
	if err := node.Decode(&list); err != nil {
		return err
	}
	*l = list
	return nil
}

func (l *NameList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = SplitNames(one)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*l = list
	return nil
}

// SplitNames splits "A, B C" into its names.
func SplitNames(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// HasFields reports whether any variant carries fields.
func (e *Enum) HasFields() bool {
	for _, v := range e.Variants {
		if len(v.Fields) > 0 {
			return true
		}
	}
	return false
}
