package resolve

import (
	"encoding"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-domengine/pkg/model"
	"github.com/goliatone/go-domengine/pkg/token"
)

// Resolve looks up tok in the template's data. A nil or absent value fails
// with *MissingValueError for required markers and yields Empty for optional
// ones.
func Resolve(tmpl model.Template, tok token.Token) (Resolved, error) {
	value, ok := Value(tmpl.Data, tok.Key)
	if !ok {
		if tok.Optional {
			return Empty{}, nil
		}
		return nil, &MissingValueError{
			Marker: tok.Marker,
			Key:    tok.Key,
			Source: tmpl.Source,
		}
	}
	return Classify(value), nil
}

// Value walks the dotted key through data. It reports false when any segment
// is absent or nil; the two cases are indistinguishable.
func Value(data model.Data, key string) (any, bool) {
	var current any = data
	for _, segment := range strings.Split(key, ".") {
		next, ok := lookup(current, segment)
		if !ok || isNil(next) {
			return nil, false
		}
		current = next
	}
	return current, true
}

func lookup(container any, name string) (any, bool) {
	switch c := container.(type) {
	case nil:
		return nil, false
	case model.Data:
		v, ok := c[name]
		return v, ok
	case map[string]any:
		v, ok := c[name]
		return v, ok
	case *model.Collection:
		return c.Get(name)
	case model.Template:
		return c.Lookup(name)
	case *model.Template:
		return c.Lookup(name)
	}

	rv := reflect.ValueOf(container)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil, false
		}
		return v.Interface(), true
	case reflect.Struct:
		return structField(rv, name)
	}
	return nil, false
}

// structField matches a json tag name first, then an exported field name
// case-insensitively.
func structField(rv reflect.Value, name string) (any, bool) {
	rt := rv.Type()
	fallback := -1
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if !field.IsExported() {
			continue
		}
		if tag, _, _ := strings.Cut(field.Tag.Get("json"), ","); tag != "" && tag != "-" {
			if tag == name {
				return rv.Field(i).Interface(), true
			}
			continue
		}
		if fallback < 0 && strings.EqualFold(field.Name, name) {
			fallback = i
		}
	}
	if fallback >= 0 {
		return rv.Field(fallback).Interface(), true
	}
	return nil, false
}

// Classify maps a non-nil value onto the Resolved variant. Nil items inside
// sequences and collections are dropped.
func Classify(value any) Resolved {
	switch v := value.(type) {
	case nil:
		return Empty{}
	case Resolved:
		return v
	case model.Template:
		return Sub{Template: v}
	case *model.Template:
		if v == nil {
			return Empty{}
		}
		return Sub{Template: *v}
	case string:
		return Scalar(v)
	case []byte:
		return Scalar(string(v))
	case bool:
		return Scalar(strconv.FormatBool(v))
	case int:
		return Scalar(strconv.Itoa(v))
	case int64:
		return Scalar(strconv.FormatInt(v, 10))
	case float64:
		return Scalar(strconv.FormatFloat(v, 'f', -1, 64))
	case *model.Collection:
		return sequenceOf(v.Values())
	case []any:
		return sequenceOf(v)
	case fmt.Stringer:
		return Scalar(v.String())
	case encoding.TextMarshaler:
		text, err := v.MarshalText()
		if err != nil {
			return Scalar(fmt.Sprint(value))
		}
		return Scalar(string(text))
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return sequenceOf(items)
	case reflect.Map:
		return sequenceOf(mapValues(rv))
	case reflect.Pointer:
		if rv.IsNil() {
			return Empty{}
		}
		return Classify(rv.Elem().Interface())
	}
	return Scalar(fmt.Sprint(value))
}

func sequenceOf(items []any) Sequence {
	out := make(Sequence, 0, len(items))
	for _, item := range items {
		if isNil(item) {
			continue
		}
		out = append(out, Classify(item))
	}
	return out
}

// mapValues orders plain map values by key so output stays deterministic.
func mapValues(rv reflect.Value) []any {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})
	out := make([]any, 0, len(keys))
	for _, key := range keys {
		out = append(out, rv.MapIndex(key).Interface())
	}
	return out
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// String stringifies r the way an attribute or raw-text position sees it:
// Scalars as-is, Empty as "", Sequences concatenated. Sub templates have no
// string form here; callers render them first.
func String(r Resolved) string {
	switch v := r.(type) {
	case Scalar:
		return string(v)
	case Sequence:
		var b strings.Builder
		for _, item := range v {
			b.WriteString(String(item))
		}
		return b.String()
	}
	return ""
}
