package document

import (
	"bytes"
	"encoding/json"

	gotoml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// MarshalYAML implements yaml.Marshaler, emitting keys in document order.
func (t *Table) MarshalYAML() (interface{}, error) {
	return yamlNode(t)
}

func yamlNode(v any) (*yaml.Node, error) {
	switch v := v.(type) {
	case *Table:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range v.keys {
			valueNode, err := yamlNode(v.values[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				valueNode,
			)
		}
		return node, nil
	case []*Table:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, t := range v {
			child, err := yamlNode(t)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case []any:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, e := range v {
			child, err := yamlNode(e)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case gotoml.LocalDate:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.String()}, nil
	case gotoml.LocalTime:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.String()}, nil
	case gotoml.LocalDateTime:
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v.String()}, nil
	default:
		node := &yaml.Node{}
		if err := node.Encode(v); err != nil {
			return nil, err
		}
		return node, nil
	}
}

// MarshalJSON implements json.Marshaler, emitting keys in document order.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(t.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
