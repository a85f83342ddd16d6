package control

import "go.yaml.in/yaml/v3"

// MarshalYAML renders a one-line value as a scalar and a multi-line
// value as a sequence of lines.
func (v Value) MarshalYAML() (interface{}, error) {
	if v.Multi {
		return v.Lines, nil
	}
	return v.Text, nil
}

// MarshalYAML renders the stanza as a mapping node so that field order
// is preserved in the output (a plain map would marshal in sorted key
// order).
func (s *Stanza) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range s.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Value: key}
		valNode := &yaml.Node{}
		if err := valNode.Encode(s.fields[key]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}
