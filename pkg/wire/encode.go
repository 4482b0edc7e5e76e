package wire

import (
	"encoding"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/goliatone/go-domengine/pkg/model"
)

// Encode serializes tmpl into the portable form.
func Encode(tmpl model.Template) ([]byte, error) {
	value, err := encodeTemplate(tmpl)
	if err != nil {
		return nil, err
	}
	out, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("wire: marshal template: %w", err)
	}
	return out, nil
}

func encodeTemplate(tmpl model.Template) ([]any, error) {
	fields, err := encodeMap(tmpl.Data)
	if err != nil {
		return nil, err
	}
	return []any{fields, tmpl.Source}, nil
}

func encodeMap(in map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(in))
	for key, value := range in {
		encoded, err := encodeValue(value)
		if err != nil {
			return nil, fmt.Errorf("wire: encode %q: %w", key, err)
		}
		out[key] = encoded
	}
	return out, nil
}

func encodeValue(value any) ([]any, error) {
	switch v := value.(type) {
	case nil:
		return []any{nil}, nil
	case string, bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return []any{v}, nil
	case []byte:
		return []any{string(v)}, nil
	case model.Template:
		return encodeTemplate(v)
	case *model.Template:
		if v == nil {
			return []any{nil}, nil
		}
		return encodeTemplate(*v)
	case model.Data:
		fields, err := encodeMap(v)
		if err != nil {
			return nil, err
		}
		return []any{fields}, nil
	case map[string]any:
		fields, err := encodeMap(v)
		if err != nil {
			return nil, err
		}
		return []any{fields}, nil
	case *model.Collection:
		fields := make(map[string]any, v.Len())
		keys := v.Keys()
		for _, key := range keys {
			item, _ := v.Get(key)
			encoded, err := encodeValue(item)
			if err != nil {
				return nil, fmt.Errorf("wire: encode %q: %w", key, err)
			}
			fields[key] = encoded
		}
		return []any{fields, nil, keys}, nil
	case fmt.Stringer:
		return []any{v.String()}, nil
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return nil, err
		}
		return []any{string(text)}, nil
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return []any{nil}, nil
		}
		return encodeValue(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			encoded, err := encodeValue(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			items[i] = encoded
		}
		return []any{items}, nil
	case reflect.String:
		return []any{rv.String()}, nil
	case reflect.Bool:
		return []any{rv.Bool()}, nil
	}

	// Structs and other maps go through their JSON form.
	generic, err := jsonToAny(value)
	if err != nil {
		return nil, err
	}
	return encodeValue(generic)
}

func jsonToAny(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
