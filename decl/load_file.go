package decl

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var ErrUnknownFormat = errors.New("unknown description format")

// LoadFile reads a description file. The format follows the extension:
// .yaml and .yml are YAML, .json and .jsonc are JSON with comments.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc *Document
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		doc, err = ParseYAML(data)
	case ".json", ".jsonc":
		doc, err = ParseJSON(data)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	for i := range doc.Enums {
		e := &doc.Enums[i]
		e.Pos.Filename = path
		for j := range e.Variants {
			e.Variants[j].Pos.Filename = path
		}
	}
	return doc, nil
}

// ParseYAML decodes a YAML description. Unknown keys are rejected.
func ParseYAML(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err == nil {
		markPositions(&root, &doc)
	}
	return &doc, nil
}

// ParseJSON decodes a JSON description. Comments and trailing commas
// are allowed.
func ParseJSON(data []byte) (*Document, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// markPositions copies node lines onto the enums and variants.
func markPositions(root *yaml.Node, doc *Document) {
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	enums := mappingValue(root, "enums")
	if enums == nil || enums.Kind != yaml.SequenceNode {
		return
	}
	for i, en := range enums.Content {
		if i >= len(doc.Enums) {
			return
		}
		e := &doc.Enums[i]
		e.Pos = token.Position{Line: en.Line, Column: en.Column}
		variants := mappingValue(en, "variants")
		if variants == nil || variants.Kind != yaml.SequenceNode {
			continue
		}
		for j, vn := range variants.Content {
			if j >= len(e.Variants) {
				break
			}
			e.Variants[j].Pos = token.Position{Line: vn.Line, Column: vn.Column}
		}
	}
}

func mappingValue(n *yaml.Node, key string) *yaml.Node {
	if n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return n.Content[i+1]
		}
	}
	return nil
}
