package yamldoc

import (
	"bytes"
	"io"

	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/internal/formatter"
	"github.com/KimNorgaard/go-yamldoc/internal/lexer"
	"github.com/KimNorgaard/go-yamldoc/internal/marshaler"
	"github.com/KimNorgaard/go-yamldoc/internal/parser"
)

// Parse reads the first YAML document of data. Input without any document
// reads as a null scalar.
//
// The returned node recomputes its children from the source text each time
// they are accessed; it never changes and is safe for concurrent use.
func Parse(data []byte, opts ...Option) (ast.Node, error) {
	p, err := newParser(data, opts)
	if err != nil {
		return nil, err
	}
	return p.Document()
}

// ParseStream reads every YAML document of data.
func ParseStream(data []byte, opts ...Option) (ast.Stream, error) {
	p, err := newParser(data, opts)
	if err != nil {
		return nil, err
	}
	return p.Stream()
}

// ReadMapping reads the first document of r as a mapping. A document of
// another shape reads as an empty mapping.
func ReadMapping(r io.Reader, opts ...Option) (ast.Mapping, error) {
	n, err := read(r, opts)
	if err != nil {
		return nil, err
	}
	if m := ast.MappingOf(n); m != nil {
		return m, nil
	}
	return ast.NewMapping(), nil
}

// ReadSequence reads the first document of r as a sequence. A document of
// another shape reads as an empty sequence.
func ReadSequence(r io.Reader, opts ...Option) (ast.Sequence, error) {
	n, err := read(r, opts)
	if err != nil {
		return nil, err
	}
	if s := ast.SequenceOf(n); s != nil {
		return s, nil
	}
	return ast.NewSequence(), nil
}

// ReadScalar reads the first document of r as a scalar. A document of
// another shape reads as null.
func ReadScalar(r io.Reader, opts ...Option) (ast.Scalar, error) {
	n, err := read(r, opts)
	if err != nil {
		return nil, err
	}
	if s := ast.ScalarOf(n); s != nil {
		return s, nil
	}
	return ast.Null(), nil
}

// ReadStream reads every document of r.
func ReadStream(r io.Reader, opts ...Option) (ast.Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseStream(data, opts...)
}

// Marshal returns the YAML text of v.
//
// A node is printed as it is. Any other value is converted to a node first:
// structs become mappings keyed by field name, or by the name given in a
// "yaml" struct tag, maps become mappings with sorted keys, and slices and
// arrays become sequences. A value implementing ast.Marshaler provides its
// own node.
//
// Struct fields tagged "-" are skipped, and fields tagged with the
// "omitempty" option are skipped when empty:
//
//	Port int `yaml:"port,omitempty"`
func Marshal(v any, opts ...Option) ([]byte, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	n, err := marshaler.Marshal(v)
	if err != nil {
		return nil, err
	}
	return render(n, o)
}

func read(r io.Reader, opts []Option) (ast.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts...)
}

func newParser(data []byte, opts []Option) (*parser.Parser, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	lines, err := lexer.Bytes(data)
	if err != nil {
		return nil, err
	}
	return parser.New(lines, o.parserOptions()...), nil
}

func render(n ast.Node, o *options) ([]byte, error) {
	var buf bytes.Buffer
	if err := formatter.New(&buf, o.formatterConfig()).Format(n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
