package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/rawbytedev/valenum"
)

// MarshalYAML returns the discriminant of v, for use from a
// yaml.Marshaler implementation.
func MarshalYAML[E any](t *valenum.Indexed[E], v E) (any, error) {
	d, err := discriminantOf(t, FormatYAML, v)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// UnmarshalYAML decodes an integer scalar node, for use from a
// yaml.Unmarshaler implementation.
func UnmarshalYAML[E any](t *valenum.Indexed[E], node *yaml.Node) (E, error) {
	var zero E
	if node == nil {
		return zero, &DecodeError{Format: FormatYAML, Err: ErrNull}
	}
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!int" {
		if node.ShortTag() == "!!null" {
			return zero, &DecodeError{Format: FormatYAML, Err: ErrNull}
		}
		return zero, &DecodeError{Format: FormatYAML, Err: fmt.Errorf("line %d: expected integer, got %s", node.Line, node.ShortTag())}
	}
	var d uint64
	if err := node.Decode(&d); err != nil {
		return zero, &DecodeError{Format: FormatYAML, Err: err}
	}
	return variantOf(t, FormatYAML, d)
}
