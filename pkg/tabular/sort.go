package tabular

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"slices"
	"strings"
	"time"
)

type keyed[T any] struct {
	item    T
	value   any
	missing bool
}

// SortBy returns a new slice with items ordered by the value key extracts.
//
// Values compare numerically when both are numbers, chronologically when
// both are times, and otherwise as lowercased text. Missing values (nil,
// nil pointers, NaN) always sort after present ones, in both directions.
// The sort is stable.
func SortBy[T any](items []T, key func(T) any, dir Direction) []T {
	entries := make([]keyed[T], len(items))
	for i, item := range items {
		v := key(item)
		entries[i] = keyed[T]{item: item, value: v, missing: IsMissing(v)}
	}

	slices.SortStableFunc(entries, func(a, b keyed[T]) int {
		switch {
		case a.missing && b.missing:
			return 0
		case a.missing:
			return 1
		case b.missing:
			return -1
		}

		c := Compare(a.value, b.value)
		if dir == Descending {
			c = -c
		}
		return c
	})

	out := make([]T, len(entries))
	for i, e := range entries {
		out[i] = e.item
	}
	return out
}

// SortByPath sorts records by the value at spec.Field, resolved with Lookup.
// Prefer SortBy with a typed accessor when the record shape is known.
func SortByPath[T any](items []T, spec SortSpec) []T {
	return SortBy(items, func(item T) any {
		return Lookup(item, spec.Field)
	}, spec.Direction)
}

// IsMissing reports whether v counts as an absent value for sorting.
func IsMissing(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if rv.IsNil() {
			return true
		}
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return true
		}
	}
	return false
}

// Compare orders two present values. It returns a negative number when a
// sorts before b, zero when they are equal, and a positive number otherwise.
func Compare(a, b any) int {
	a, b = deref(a), deref(b)

	if x, ok := number(a); ok {
		if y, ok := number(b); ok {
			return compareNumbers(x, y)
		}
	}

	if x, ok := a.(time.Time); ok {
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}

	return strings.Compare(strings.ToLower(text(a)), strings.ToLower(text(b)))
}

// numeric holds a number in the representation that compares it exactly.
type numeric struct {
	kind byte // 'i', 'u' or 'f'
	i    int64
	u    uint64
	f    float64
}

func number(v any) (numeric, bool) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return numeric{kind: 'i', i: i}, true
		}
		if f, err := n.Float64(); err == nil {
			return numeric{kind: 'f', f: f}, true
		}
		return numeric{}, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return numeric{kind: 'i', i: rv.Int()}, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return numeric{kind: 'u', u: rv.Uint()}, true
	case reflect.Float32, reflect.Float64:
		return numeric{kind: 'f', f: rv.Float()}, true
	default:
		return numeric{}, false
	}
}

func compareNumbers(x, y numeric) int {
	switch {
	case x.kind == 'i' && y.kind == 'i':
		return cmpOrdered(x.i, y.i)
	case x.kind == 'u' && y.kind == 'u':
		return cmpOrdered(x.u, y.u)
	case x.kind == 'i' && y.kind == 'u':
		if x.i < 0 {
			return -1
		}
		return cmpOrdered(uint64(x.i), y.u)
	case x.kind == 'u' && y.kind == 'i':
		return -compareNumbers(y, x)
	default:
		return cmpOrdered(x.float(), y.float())
	}
}

func (n numeric) float() float64 {
	switch n.kind {
	case 'i':
		return float64(n.i)
	case 'u':
		return float64(n.u)
	default:
		return n.f
	}
}

func cmpOrdered[V int64 | uint64 | float64](a, b V) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func deref(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
