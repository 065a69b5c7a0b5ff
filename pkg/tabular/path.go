package tabular

import (
	"reflect"
	"strconv"
	"strings"
)

// Lookup resolves a dotted path such as "owner.name" against record. Maps
// with string keys are indexed by key, structs by field name, then json or
// yaml tag, then case-insensitive field name, and slices or arrays by a
// numeric segment. Pointers and interfaces are followed. Any step that
// cannot be resolved yields nil. An empty path returns record itself.
func Lookup(record any, path string) any {
	if path == "" {
		return record
	}

	cur := reflect.ValueOf(record)
	for _, seg := range strings.Split(path, ".") {
		cur = indirect(cur)
		if !cur.IsValid() {
			return nil
		}

		switch cur.Kind() {
		case reflect.Map:
			cur = mapIndex(cur, seg)
		case reflect.Struct:
			cur = structField(cur, seg)
		case reflect.Slice, reflect.Array:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= cur.Len() {
				return nil
			}
			cur = cur.Index(i)
		default:
			return nil
		}
	}

	cur = indirect(cur)
	if !cur.IsValid() || !cur.CanInterface() {
		return nil
	}
	return cur.Interface()
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func mapIndex(m reflect.Value, key string) reflect.Value {
	kt := m.Type().Key()
	if kt.Kind() != reflect.String {
		return reflect.Value{}
	}
	return m.MapIndex(reflect.ValueOf(key).Convert(kt))
}

func structField(s reflect.Value, name string) reflect.Value {
	t := s.Type()

	if f, ok := t.FieldByName(name); ok && f.IsExported() {
		return s.FieldByIndex(f.Index)
	}

	var folded reflect.Value
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		if tagName(f, "json") == name || tagName(f, "yaml") == name {
			return s.Field(i)
		}
		if !folded.IsValid() && strings.EqualFold(f.Name, name) {
			folded = s.Field(i)
		}
	}
	return folded
}

func tagName(f reflect.StructField, key string) string {
	tag := f.Tag.Get(key)
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}
