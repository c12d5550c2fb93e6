package yamlpage

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformed is wrapped by Get errors when a page file exists but its
// content does not parse as a mapping of scalar fields.
var ErrMalformed = errors.New("malformed page")

// marshalRecord serializes fields in record order. Multi-line values
// become literal block scalars (|- when the value has no trailing
// newline, | when it does) so they stay readable and round-trip
// exactly; everything else is a plain scalar, quoted by the encoder
// when needed to stay a string (e.g. "42", "true", trailing spaces).
func marshalRecord(r *Record) ([]byte, error) {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r.Fields {
		k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}
		v := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Value}
		if useLiteral(f.Value) {
			v.Style = yaml.LiteralStyle
		}
		m.Content = append(m.Content, k, v)
	}
	return yaml.Marshal(m)
}

// useLiteral reports whether v can be written as a literal block
// scalar without loss. A value starting with a newline can't: the
// encoder emits it with an indentation indicator that drops the
// leading newline on decode. Such values get the quoted fallback.
func useLiteral(v string) bool {
	return strings.Contains(v, "\n") && !strings.HasPrefix(v, "\n")
}

// unmarshalRecord is the inverse of marshalRecord. Field values are
// returned as the raw strings from the file, never re-typed by YAML's
// implicit typing rules. An empty file is a valid empty record.
func unmarshalRecord(d []byte) (*Record, error) {
	var doc yaml.Node
	err := yaml.Unmarshal(d, &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}
	if len(doc.Content) == 0 {
		return &Record{}, nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level is not a mapping", ErrMalformed)
	}
	r := &Record{}
	for i := 0; i+1 < len(m.Content); i += 2 {
		k, v := m.Content[i], m.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: field %q is not a scalar", ErrMalformed, k.Value)
		}
		r.Fields = append(r.Fields, Field{Name: k.Value, Value: v.Value})
	}
	return r, nil
}
