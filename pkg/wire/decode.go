package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-domengine/pkg/model"
)

// ErrMalformed is returned for payloads that do not follow the portable form.
var ErrMalformed = errors.New("wire: malformed payload")

// Decode rebuilds a template from its portable form. Numbers decode as
// json.Number so integers keep their textual form when rendered.
func Decode(payload []byte) (model.Template, error) {
	value, err := decodeValue(payload)
	if err != nil {
		return model.Template{}, err
	}
	tmpl, ok := value.(model.Template)
	if !ok {
		return model.Template{}, fmt.Errorf("%w: top-level value is not a template", ErrMalformed)
	}
	return tmpl, nil
}

func decodeValue(raw json.RawMessage) (any, error) {
	var parts []json.RawMessage
	if err := json.Unmarshal(raw, &parts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(parts) == 0 || len(parts) > 3 {
		return nil, fmt.Errorf("%w: expected 1 to 3 elements, got %d", ErrMalformed, len(parts))
	}

	head := bytes.TrimSpace(parts[0])
	if len(head) == 0 {
		return nil, fmt.Errorf("%w: empty element", ErrMalformed)
	}

	switch head[0] {
	case '[':
		if len(parts) != 1 {
			return nil, fmt.Errorf("%w: sequence with trailing elements", ErrMalformed)
		}
		return decodeSequence(head)
	case '{':
		return decodeObject(head, parts[1:])
	}

	if len(parts) != 1 {
		return nil, fmt.Errorf("%w: scalar with trailing elements", ErrMalformed)
	}
	dec := json.NewDecoder(bytes.NewReader(head))
	dec.UseNumber()
	var scalar any
	if err := dec.Decode(&scalar); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return scalar, nil
}

func decodeSequence(raw json.RawMessage) ([]any, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	out := make([]any, 0, len(items))
	for _, item := range items {
		value, err := decodeValue(item)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

func decodeObject(raw json.RawMessage, rest []json.RawMessage) (any, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	data := make(model.Data, len(fields))
	for key, field := range fields {
		value, err := decodeValue(field)
		if err != nil {
			return nil, fmt.Errorf("wire: decode %q: %w", key, err)
		}
		data[key] = value
	}

	var source *string
	if len(rest) > 0 {
		if err := json.Unmarshal(rest[0], &source); err != nil {
			return nil, fmt.Errorf("%w: template source: %v", ErrMalformed, err)
		}
	}

	if len(rest) == 2 {
		var keys []string
		if err := json.Unmarshal(rest[1], &keys); err != nil {
			return nil, fmt.Errorf("%w: collection keys: %v", ErrMalformed, err)
		}
		collection := model.NewCollection()
		for _, key := range keys {
			value, ok := data[key]
			if !ok {
				return nil, fmt.Errorf("%w: collection key %q has no value", ErrMalformed, key)
			}
			collection.Set(key, value)
		}
		return collection, nil
	}

	if source != nil {
		return model.Template{Source: *source, Data: data}, nil
	}
	return data, nil
}
