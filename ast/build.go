package ast

type scalar struct {
	value   string
	null    bool
	style   Style
	comment Comment
}

// NewScalar returns a plain scalar holding value.
func NewScalar(value string) Scalar { return &scalar{value: value} }

// NewStyledScalar returns a scalar holding value that prints in style when
// the value allows it.
func NewStyledScalar(value string, style Style) Scalar {
	return &scalar{value: value, style: style}
}

// Null returns the null scalar.
func Null() Scalar { return &scalar{null: true} }

func (s *scalar) Kind() Kind { return KindScalar }
func (s *scalar) Comment() Comment {
	c := s.comment
	c.Owner = s
	return c
}
func (s *scalar) Value() string { return s.value }
func (s *scalar) IsNull() bool  { return s.null }
func (s *scalar) Style() Style  { return s.style }

type mapping struct {
	entries []Entry
	comment Comment
}

// NewMapping returns a mapping holding entries in order. When a key repeats,
// the entry keeps the position of the first occurrence and the value of the
// last. Entries with a nil key are skipped and nil values become null.
func NewMapping(entries ...Entry) Mapping {
	m := &mapping{}
	seen := make(map[scalarKey]int, len(entries))
	for _, e := range entries {
		if e.Key == nil {
			continue
		}
		if e.Value == nil {
			e.Value = Null()
		}
		k, ok := keyOf(e.Key)
		i, dup := seen[k]
		if !ok {
			i = m.index(e.Key)
			dup = i >= 0
		}
		if dup {
			m.entries[i].Value = e.Value
			continue
		}
		if ok {
			seen[k] = len(m.entries)
		}
		m.entries = append(m.entries, e)
	}
	return m
}

// Pair returns the entry mapping the plain scalar key to value.
func Pair(key string, value Node) Entry {
	return Entry{Key: NewScalar(key), Value: value}
}

func (m *mapping) index(key Node) int {
	for i, e := range m.entries {
		if Equal(e.Key, key) {
			return i
		}
	}
	return -1
}

func (m *mapping) Kind() Kind { return KindMapping }
func (m *mapping) Comment() Comment {
	c := m.comment
	c.Owner = m
	return c
}
func (m *mapping) Entries() []Entry { return m.entries }
func (m *mapping) Len() int         { return len(m.entries) }
func (m *mapping) Value(key Node) Node {
	if i := m.index(key); i >= 0 {
		return m.entries[i].Value
	}
	return nil
}

type sequence struct {
	items   []Node
	comment Comment
}

// NewSequence returns a sequence holding items. Nil items become null.
func NewSequence(items ...Node) Sequence {
	s := &sequence{items: make([]Node, 0, len(items))}
	for _, n := range items {
		if n == nil {
			n = Null()
		}
		s.items = append(s.items, n)
	}
	return s
}

func (s *sequence) Kind() Kind { return KindSequence }
func (s *sequence) Comment() Comment {
	c := s.comment
	c.Owner = s
	return c
}
func (s *sequence) Items() []Node { return s.items }
func (s *sequence) Len() int      { return len(s.items) }

type stream struct {
	docs    []Node
	comment Comment
}

// NewStream returns a stream of the given documents.
func NewStream(docs ...Node) Stream {
	s := &stream{docs: make([]Node, 0, len(docs))}
	for _, d := range docs {
		if d == nil {
			d = Null()
		}
		s.docs = append(s.docs, d)
	}
	return s
}

func (s *stream) Kind() Kind { return KindStream }
func (s *stream) Comment() Comment {
	c := s.comment
	c.Owner = s
	return c
}
func (s *stream) Documents() []Node { return s.docs }
func (s *stream) Len() int          { return len(s.docs) }

// WithComment returns a node holding the same data as n with c attached.
// The children of n are shared, not copied.
func WithComment(n Node, c Comment) Node {
	c.Owner = nil
	switch n := n.(type) {
	case Scalar:
		return &scalar{value: n.Value(), null: n.IsNull(), style: n.Style(), comment: c}
	case Mapping:
		return &mapping{entries: n.Entries(), comment: c}
	case Sequence:
		return &sequence{items: n.Items(), comment: c}
	case Stream:
		return &stream{docs: n.Documents(), comment: c}
	}
	return n
}
