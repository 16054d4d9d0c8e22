package yamldoc

import (
	"errors"
	"io"

	"github.com/KimNorgaard/go-yamldoc/ast"
)

// Decoder reads YAML documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
	docs []ast.Node
	read bool
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder reads all of r the first time a document is requested. It is
// the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode returns the next document of the input. It returns io.EOF when
// no documents remain.
//
// If the input is not valid YAML, Decode returns the error and every later
// call returns io.EOF.
func (d *Decoder) Decode() (ast.Node, error) {
	if err := d.fill(); err != nil {
		return nil, err
	}
	if len(d.docs) == 0 {
		return nil, io.EOF
	}
	n := d.docs[0]
	d.docs = d.docs[1:]
	return n, nil
}

// DecodeStream returns the documents of the input that have not been
// returned by Decode yet.
func (d *Decoder) DecodeStream() (ast.Stream, error) {
	if err := d.fill(); err != nil {
		return nil, err
	}
	s := ast.NewStream(d.docs...)
	d.docs = nil
	return s, nil
}

func (d *Decoder) fill() error {
	if d.read {
		return nil
	}
	d.read = true
	if d.r == nil {
		return errors.New("yamldoc: Decode(nil reader)")
	}
	s, err := ReadStream(d.r, d.opts...)
	if err != nil {
		return err
	}
	d.docs = s.Documents()
	return nil
}
