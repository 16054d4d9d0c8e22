package yamldoc

import (
	"io"

	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/internal/marshaler"
)

// Encoder writes YAML documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
	n    int
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the YAML text of v to the stream. See Marshal for how Go
// values are converted.
//
// The first document is written bare. Every later document starts with a
// "---" marker so that the output reads back as a stream.
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}
	n, err := marshaler.Marshal(v)
	if err != nil {
		return err
	}
	if e.n > 0 && n.Kind() != ast.KindStream {
		n = ast.NewStream(n)
	}
	b, err := render(n, o)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(b); err != nil {
		return err
	}
	e.n++
	return nil
}
