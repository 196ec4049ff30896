package node

import (
	"encoding/json"
	"reflect"
	"strings"
)

// ToMap converts a node to plain maps, slices and scalars. Each node map
// carries "kind", "envelope" and one member per structural field, named by
// the field's json tag. Absent optional children are nil and absent
// sequences are empty.
func ToMap(n Node) map[string]any {
	if IsNil(n) {
		return nil
	}

	v := reflect.ValueOf(n).Elem()
	t := v.Type()

	out := map[string]any{
		"kind":     string(n.Kind()),
		"envelope": envelopeMap(n.Env()),
	}

	for i := range t.NumField() {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}

		out[jsonName(sf)] = plainValue(v.Field(i))
	}

	return out
}

// Marshal encodes a single node as JSON.
func Marshal(n Node) ([]byte, error) {
	return json.Marshal(ToMap(n))
}

func envelopeMap(env *Envelope) map[string]any {
	var doc any
	if env.DocComment != nil {
		doc = *env.DocComment
	}

	return map[string]any{
		"text": env.Text,
		"span": map[string]any{
			"start_offset": env.Span.StartOffset,
			"end_offset":   env.Span.EndOffset,
		},
		"doc_comment": doc,
	}
}

func plainValue(field reflect.Value) any {
	switch field.Kind() {
	case reflect.Interface, reflect.Pointer:
		if field.IsNil() {
			return nil
		}

		if child, ok := field.Interface().(Node); ok {
			if IsNil(child) {
				return nil
			}

			return ToMap(child)
		}

		return plainValue(field.Elem())
	case reflect.Slice:
		out := make([]any, 0, field.Len())
		for i := range field.Len() {
			out = append(out, plainValue(field.Index(i)))
		}

		return out
	case reflect.String:
		return field.String()
	case reflect.Bool:
		return field.Bool()
	case reflect.Uint32:
		return uint32(field.Uint())
	default:
		return field.Interface()
	}
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" || tag == "-" {
		return sf.Name
	}

	name, _, _ := strings.Cut(tag, ",")

	return name
}
