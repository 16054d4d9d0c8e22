package ast

// Equal reports whether a and b hold the same data. Comments and scalar
// styles are ignored, and mappings compare regardless of entry order.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch a.Kind() {
	case KindScalar:
		sa, sb := ScalarOf(a), ScalarOf(b)
		if sa.IsNull() || sb.IsNull() {
			return sa.IsNull() == sb.IsNull()
		}
		return sa.Value() == sb.Value()
	case KindMapping:
		return equalMappings(MappingOf(a).Entries(), MappingOf(b).Entries())
	case KindSequence:
		return equalNodes(SequenceOf(a).Items(), SequenceOf(b).Items())
	case KindStream:
		return equalNodes(StreamOf(a).Documents(), StreamOf(b).Documents())
	}
	return false
}

func equalNodes(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// scalarKey indexes a mapping entry by its scalar key.
type scalarKey struct {
	null  bool
	value string
}

func keyOf(n Node) (scalarKey, bool) {
	if n == nil {
		return scalarKey{null: true}, true
	}
	s := ScalarOf(n)
	if s == nil {
		return scalarKey{}, false
	}
	if s.IsNull() {
		return scalarKey{null: true}, true
	}
	return scalarKey{value: s.Value()}, true
}

// equalMappings matches the entries of a against those of b. Scalar keys
// are looked up in an index of b; other keys are compared one by one. The
// first entry wins when b repeats a key.
func equalMappings(a, b []Entry) bool {
	if len(a) != len(b) {
		return false
	}
	index := make(map[scalarKey]Node, len(b))
	var complexKeys []Entry
	for _, e := range b {
		k, ok := keyOf(e.Key)
		if !ok {
			complexKeys = append(complexKeys, e)
			continue
		}
		if _, dup := index[k]; !dup {
			index[k] = e.Value
		}
	}
	for _, e := range a {
		var (
			v     Node
			found bool
		)
		if k, ok := keyOf(e.Key); ok {
			v, found = index[k]
		} else {
			for _, c := range complexKeys {
				if Equal(e.Key, c.Key) {
					v, found = c.Value, true
					break
				}
			}
		}
		if !found || !Equal(e.Value, v) {
			return false
		}
	}
	return true
}
