// Package mapper describes how Go struct fields map to mapping keys.
package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// Field is a struct field that maps to a mapping key.
type Field struct {
	// Name is the mapping key of the field.
	Name string
	// Index is the index sequence for reflect.Value.FieldByIndex.
	Index     []int
	Tagged    bool
	OmitEmpty bool
}

// fieldCache caches the fields of a struct type.
var fieldCache sync.Map

// Fields returns the fields of struct type t in declaration order. The
// fields of embedded structs without a tag name are inlined at the position
// of the embedding field. Unexported fields and fields tagged "yaml:\"-\""
// are skipped. When several fields share a name the outermost wins; among
// fields at the same depth a tagged field wins over an untagged one.
func Fields(t reflect.Type) []Field {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]Field)
	}

	var all []Field
	depths := make(map[string]int)
	var walk func(t reflect.Type, idx []int, depth int)
	walk = func(t reflect.Type, idx []int, depth int) {
		for i := 0; i < t.NumField(); i++ {
			sf := t.Field(i)
			tag := sf.Tag.Get("yaml")
			if tag == "-" {
				continue
			}
			name, opts, _ := strings.Cut(tag, ",")
			index := append(append([]int(nil), idx...), i)

			if sf.Anonymous && name == "" {
				ft := sf.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					walk(ft, index, depth+1)
					continue
				}
			}
			if !sf.IsExported() {
				continue
			}

			f := Field{Index: index}
			if name != "" {
				f.Name = name
				f.Tagged = true
			} else {
				f.Name = sf.Name
			}
			for opts != "" {
				var opt string
				opt, opts, _ = strings.Cut(opts, ",")
				if opt == "omitempty" {
					f.OmitEmpty = true
				}
			}

			if d, ok := depths[f.Name]; ok {
				j := find(all, f.Name)
				if d < depth || (d == depth && (all[j].Tagged || !f.Tagged)) {
					continue
				}
				all[j] = f
				depths[f.Name] = depth
				continue
			}
			depths[f.Name] = depth
			all = append(all, f)
		}
	}
	walk(t, nil, 0)

	fieldCache.Store(t, all)
	return all
}

func find(fields []Field, name string) int {
	for i, f := range fields {
		if f.Name == name {
			return i
		}
	}
	return -1
}
