// Package ast defines the YAML node model.
//
// A node is one of four kinds: Scalar, Mapping, Sequence or Stream. Nodes
// returned by the reader are views over the source lines and compute their
// children on demand; nodes created with the constructors in this package
// hold their children directly. Both are immutable and compare equal
// through Equal when they carry the same data.
package ast

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind identifies the variant of a Node.
type Kind int

const (
	_ Kind = iota
	KindScalar
	KindMapping
	KindSequence
	KindStream
)

//go:generate go tool stringer -type=Style -output=style_string.go

// Style is the textual form a scalar was written in.
type Style int

const (
	Plain Style = iota
	DoubleQuoted
	SingleQuoted
	Literal
	Folded
)

// Node is the base interface of every YAML node.
type Node interface {
	Kind() Kind
	// Comment returns the comment attached to the node.
	Comment() Comment
}

// Scalar is a leaf value.
type Scalar interface {
	Node
	// Value returns the text of the scalar, or "" for null.
	Value() string
	// IsNull reports whether the scalar is the null value.
	IsNull() bool
	Style() Style
}

// Entry is one key/value pair of a Mapping.
type Entry struct {
	Key   Node
	Value Node
}

// Mapping is an ordered collection of entries with unique keys.
type Mapping interface {
	Node
	// Entries returns the entries in insertion order.
	Entries() []Entry
	// Value returns the value stored under key, or nil.
	Value(key Node) Node
	Len() int
}

// Sequence is an ordered list of nodes.
type Sequence interface {
	Node
	Items() []Node
	Len() int
}

// Stream is an ordered list of documents.
type Stream interface {
	Node
	Documents() []Node
	Len() int
}

// Marshaler is implemented by types that can represent themselves as a
// YAML node.
type Marshaler interface {
	MarshalYAMLNode() (Node, error)
}
