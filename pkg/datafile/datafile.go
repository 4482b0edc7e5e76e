// Package datafile decodes template data contexts from YAML (and therefore
// JSON) documents. Mappings keep their key order: the top level becomes a
// model.Data and nested mappings become *model.Collection, so a mapping used
// as a collection renders its values in file order.
//
// Nested templates are written with the !template tag:
//
//	title: Home
//	items:
//	  - !template
//	    source: <li>{label}</li>
//	    data: {label: First}
package datafile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-domengine/pkg/model"
)

// TemplateTag marks a mapping that describes a nested template.
const TemplateTag = "!template"

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("datafile: document root must be a mapping")

// Decode reads one YAML document from r.
func Decode(r io.Reader) (model.Data, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Data{}, nil
		}
		return nil, fmt.Errorf("datafile: decode: %w", err)
	}
	return fromDocument(&root)
}

// DecodeBytes decodes a YAML document held in memory.
func DecodeBytes(data []byte) (model.Data, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("datafile: decode: %w", err)
	}
	if root.Kind == 0 {
		return model.Data{}, nil
	}
	return fromDocument(&root)
}

// Load reads and decodes the file at path.
func Load(path string) (model.Data, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("datafile: open: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	return Decode(file)
}

func fromDocument(root *yaml.Node) (model.Data, error) {
	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return model.Data{}, nil
		}
		node = node.Content[0]
	}
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode || node.Tag == TemplateTag {
		return nil, ErrNotMapping
	}
	return toData(node)
}

func toData(node *yaml.Node) (model.Data, error) {
	data := make(model.Data, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value, err := toValue(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("datafile: %s: %w", key, err)
		}
		data[key] = value
	}
	return data, nil
}

func toValue(node *yaml.Node) (any, error) {
	node = resolveAlias(node)

	switch node.Kind {
	case yaml.MappingNode:
		if node.Tag == TemplateTag {
			return toTemplate(node)
		}
		collection := model.NewCollection()
		for i := 0; i+1 < len(node.Content); i += 2 {
			value, err := toValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			collection.Set(node.Content[i].Value, value)
		}
		return collection, nil
	case yaml.SequenceNode:
		items := make([]any, 0, len(node.Content))
		for _, child := range node.Content {
			value, err := toValue(child)
			if err != nil {
				return nil, err
			}
			items = append(items, value)
		}
		return items, nil
	case yaml.ScalarNode:
		var value any
		if err := node.Decode(&value); err != nil {
			return nil, err
		}
		return value, nil
	}
	return nil, fmt.Errorf("unsupported node at line %d", node.Line)
}

// toTemplate reads a !template mapping with a required source and an
// optional data mapping.
func toTemplate(node *yaml.Node) (model.Template, error) {
	var (
		source    string
		hasSource bool
		data      model.Data
	)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		value := resolveAlias(node.Content[i+1])
		switch key {
		case "source":
			if value.Kind != yaml.ScalarNode {
				return model.Template{}, fmt.Errorf("template source must be a string (line %d)", value.Line)
			}
			source = value.Value
			hasSource = true
		case "data":
			if value.Kind != yaml.MappingNode {
				return model.Template{}, fmt.Errorf("template data must be a mapping (line %d)", value.Line)
			}
			decoded, err := toData(value)
			if err != nil {
				return model.Template{}, err
			}
			data = decoded
		default:
			return model.Template{}, fmt.Errorf("unknown template field %q (line %d)", key, node.Content[i].Line)
		}
	}
	if !hasSource {
		return model.Template{}, fmt.Errorf("template at line %d has no source", node.Line)
	}
	return model.Template{Source: source, Data: data}, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
