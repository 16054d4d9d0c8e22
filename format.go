package yamldoc

import (
	"github.com/KimNorgaard/go-yamldoc/ast"
)

// Format reads the YAML text in data and returns it in canonical form.
// Comments are kept. Input that marks its documents with "---", or that
// holds more than one document, is printed as a stream; anything else is
// printed as a single document without a marker.
func Format(data []byte, opts ...Option) ([]byte, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	p, err := newParser(data, opts)
	if err != nil {
		return nil, err
	}
	s, err := p.Stream()
	if err != nil {
		return nil, err
	}

	var n ast.Node = s
	switch {
	case p.Explicit() || s.Len() > 1:
	case s.Len() == 1:
		n = s.Documents()[0]
	default:
		n = ast.Null()
	}
	return render(n, o)
}
