package ast

// ScalarOf returns n as a Scalar, or nil if n is not one.
func ScalarOf(n Node) Scalar {
	if n == nil || n.Kind() != KindScalar {
		return nil
	}
	s, _ := n.(Scalar)
	return s
}

// MappingOf returns n as a Mapping, or nil if n is not one.
func MappingOf(n Node) Mapping {
	if n == nil || n.Kind() != KindMapping {
		return nil
	}
	m, _ := n.(Mapping)
	return m
}

// SequenceOf returns n as a Sequence, or nil if n is not one.
func SequenceOf(n Node) Sequence {
	if n == nil || n.Kind() != KindSequence {
		return nil
	}
	s, _ := n.(Sequence)
	return s
}

// StreamOf returns n as a Stream, or nil if n is not one.
func StreamOf(n Node) Stream {
	if n == nil || n.Kind() != KindStream {
		return nil
	}
	s, _ := n.(Stream)
	return s
}

// Get returns the value stored in m under the scalar key, or nil if m is nil
// or holds no such key.
func Get(m Mapping, key string) Node {
	if m == nil {
		return nil
	}
	return m.Value(NewScalar(key))
}

// Index returns item i of s, or nil if s is nil or i is out of range.
func Index(s Sequence, i int) Node {
	if s == nil {
		return nil
	}
	items := s.Items()
	if i < 0 || i >= len(items) {
		return nil
	}
	return items[i]
}

// String returns the text of n if it is a non-null scalar.
func String(n Node) (string, bool) {
	s := ScalarOf(n)
	if s == nil || s.IsNull() {
		return "", false
	}
	return s.Value(), true
}

// Path follows keys from n through nested mappings and returns the node
// found, or nil.
func Path(n Node, keys ...string) Node {
	for _, k := range keys {
		n = Get(MappingOf(n), k)
		if n == nil {
			return nil
		}
	}
	return n
}
