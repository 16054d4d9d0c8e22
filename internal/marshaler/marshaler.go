// Package marshaler converts Go values into YAML node trees.
package marshaler

import (
	"encoding"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/errors"
	"github.com/KimNorgaard/go-yamldoc/internal/mapper"
)

var (
	nodeType          = reflect.TypeFor[ast.Node]()
	marshalerType     = reflect.TypeFor[ast.Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// Marshal converts a Go value into a YAML node. Nodes are returned as they
// are. Structs become mappings keyed by field name or "yaml" tag, maps
// become mappings with sorted keys, and slices and arrays become
// sequences. Numbers and booleans become plain scalars in their Go
// notation.
func Marshal(v any) (ast.Node, error) {
	m := &marshaler{visiting: make(map[visit]bool)}
	return m.marshal(reflect.ValueOf(v))
}

type visit struct {
	ptr uintptr
	typ reflect.Type
}

type marshaler struct {
	visiting map[visit]bool
}

// isEmptyValue reports whether the value v is empty.
// It is equivalent to the `encoding/json` definition of empty:
// false, 0, a nil pointer, a nil interface value, and any empty array,
// slice, map, or string.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

func (m *marshaler) marshal(v reflect.Value) (ast.Node, error) {
	if !v.IsValid() {
		return ast.Null(), nil
	}
	if n, ok, err := m.custom(v); ok {
		return n, err
	}

	// Follow pointers and interfaces to find the concrete value.
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ast.Null(), nil
		}
		if v.Kind() == reflect.Pointer {
			key := visit{ptr: v.Pointer(), typ: v.Type()}
			if m.visiting[key] {
				return nil, fmt.Errorf("yamldoc: encountered a cycle via %s", v.Type())
			}
			m.visiting[key] = true
			defer delete(m.visiting, key)
		}
		v = v.Elem()
		if n, ok, err := m.custom(v); ok {
			return n, err
		}
	}

	switch v.Kind() {
	case reflect.String:
		return ast.NewScalar(v.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ast.NewScalar(strconv.FormatInt(v.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ast.NewScalar(strconv.FormatUint(v.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return ast.NewScalar(formatFloat(v.Float(), v.Type().Bits())), nil
	case reflect.Bool:
		return ast.NewScalar(strconv.FormatBool(v.Bool())), nil
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return ast.Null(), nil
		}
		if v.Kind() == reflect.Slice && v.Len() > 0 {
			key := visit{ptr: v.Pointer(), typ: v.Type()}
			if m.visiting[key] {
				return nil, fmt.Errorf("yamldoc: encountered a cycle via %s", v.Type())
			}
			m.visiting[key] = true
			defer delete(m.visiting, key)
		}
		items := make([]ast.Node, v.Len())
		for i := 0; i < v.Len(); i++ {
			item, err := m.marshal(v.Index(i))
			if err != nil {
				return nil, err
			}
			items[i] = item
		}
		return ast.NewSequence(items...), nil
	case reflect.Map:
		if v.IsNil() {
			return ast.Null(), nil
		}
		return m.marshalMap(v)
	case reflect.Struct:
		return m.marshalStruct(v)
	default:
		// nil can be a valid value for some kinds (e.g. chan, func)
		if v.IsZero() {
			return ast.Null(), nil
		}
		return nil, fmt.Errorf("yamldoc: unsupported type for marshaling: %s", v.Type())
	}
}

// custom converts values that describe themselves: nodes, ast.Marshaler
// and encoding.TextMarshaler implementations. We must check the value
// itself and a pointer to the value, to handle both value and pointer
// receivers.
func (m *marshaler) custom(v reflect.Value) (ast.Node, bool, error) {
	if v.Kind() == reflect.Interface || !v.CanInterface() {
		return nil, false, nil
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return nil, false, nil
	}
	t := v.Type()
	if !t.Implements(nodeType) && !t.Implements(marshalerType) && !t.Implements(textMarshalerType) && v.Kind() != reflect.Pointer {
		pt := reflect.PointerTo(t)
		if pt.Implements(marshalerType) || pt.Implements(textMarshalerType) {
			pv := reflect.New(t)
			pv.Elem().Set(v)
			v = pv
		}
	}

	switch u := v.Interface().(type) {
	case ast.Node:
		return u, true, nil
	case ast.Marshaler:
		n, err := u.MarshalYAMLNode()
		if err != nil {
			return nil, true, &errors.MarshalerError{Type: v.Type(), Err: err}
		}
		if n == nil {
			return ast.Null(), true, nil
		}
		return n, true, nil
	case encoding.TextMarshaler:
		b, err := u.MarshalText()
		if err != nil {
			return nil, true, &errors.MarshalerError{Type: v.Type(), Err: err}
		}
		return ast.NewScalar(string(b)), true, nil
	}
	return nil, false, nil
}

func formatFloat(f float64, bits int) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

func (m *marshaler) marshalMap(v reflect.Value) (ast.Node, error) {
	key := visit{ptr: v.Pointer(), typ: v.Type()}
	if m.visiting[key] {
		return nil, fmt.Errorf("yamldoc: encountered a cycle via %s", v.Type())
	}
	m.visiting[key] = true
	defer delete(m.visiting, key)

	type pair struct {
		key   string
		value reflect.Value
	}
	pairs := make([]pair, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k, err := mapKey(iter.Key())
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair{key: k, value: iter.Value()})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].key < pairs[j].key })

	entries := make([]ast.Entry, 0, len(pairs))
	for _, p := range pairs {
		value, err := m.marshal(p.value)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.Pair(p.key, value))
	}
	return ast.NewMapping(entries...), nil
}

// mapKey returns the text of a map key. Keys may be strings, integers,
// booleans or encoding.TextMarshaler implementations.
func mapKey(k reflect.Value) (string, error) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return "", fmt.Errorf("yamldoc: unsupported nil map key")
		}
		k = k.Elem()
	}
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		if k.Kind() == reflect.Pointer && k.IsNil() {
			return "", fmt.Errorf("yamldoc: unsupported nil map key")
		}
		b, err := tm.MarshalText()
		if err != nil {
			return "", &errors.MarshalerError{Type: k.Type(), Err: err}
		}
		return string(b), nil
	}
	switch k.Kind() {
	case reflect.String:
		return k.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(k.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(k.Uint(), 10), nil
	case reflect.Bool:
		return strconv.FormatBool(k.Bool()), nil
	}
	return "", fmt.Errorf("yamldoc: unsupported map key type %s", k.Type())
}

func (m *marshaler) marshalStruct(v reflect.Value) (ast.Node, error) {
	fields := mapper.Fields(v.Type())
	entries := make([]ast.Entry, 0, len(fields))
	for _, f := range fields {
		fv, ok := fieldByIndex(v, f.Index)
		if !ok {
			continue
		}
		if f.OmitEmpty && isEmptyValue(fv) {
			continue
		}
		value, err := m.marshal(fv)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ast.Pair(f.Name, value))
	}
	return ast.NewMapping(entries...), nil
}

// fieldByIndex is reflect.Value.FieldByIndex that reports false instead of
// panicking when it meets a nil embedded pointer.
func fieldByIndex(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}
