package parser

import (
	"strings"

	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/errors"
	"github.com/KimNorgaard/go-yamldoc/internal/line"
)

// flow reads the flow collection text found on line l.
func (p *Parser) flow(text string, l line.Line, cs commentSource) (ast.Node, error) {
	f := flowReader{maxDepth: p.maxDepth, line: l}
	n, err := f.node(strings.TrimSpace(text), 0)
	if err != nil {
		return nil, err
	}
	return withComment(n, p.store, cs), nil
}

type flowReader struct {
	maxDepth int
	line     line.Line
}

func (f flowReader) errorf(msg string) error {
	return &errors.SyntaxError{Message: msg, Line: f.line.Number + 1}
}

func (f flowReader) node(s string, depth int) (ast.Node, error) {
	if s == "" {
		return ast.Null(), nil
	}
	if (s[0] == '[' || s[0] == '{') && depth > f.maxDepth {
		return nil, &errors.DepthError{Max: f.maxDepth, Line: f.line.Number + 1}
	}
	switch s[0] {
	case '[':
		inner, err := f.enclosed(s, "flow sequence")
		if err != nil {
			return nil, err
		}
		return f.sequence(inner, depth)
	case '{':
		inner, err := f.enclosed(s, "flow mapping")
		if err != nil {
			return nil, err
		}
		return f.mapping(inner, depth)
	case ']', '}':
		return nil, f.errorf("unexpected '" + s[:1] + "'")
	}
	n, err := readScalar(s)
	if err != nil {
		return nil, f.errorf(err.Error())
	}
	return n, nil
}

func (f flowReader) enclosed(s, what string) (string, error) {
	end := line.Closing(s)
	switch {
	case end < 0:
		return "", f.errorf("unterminated " + what)
	case end != len(s)-1:
		return "", f.errorf("unexpected content after " + what)
	case (s[0] == '[') != (s[end] == ']'):
		return "", f.errorf("mismatched brackets in " + what)
	}
	return s[1:end], nil
}

// elements splits the inside of a flow collection at its top-level commas.
// A trailing comma is allowed, an empty element is not.
func (f flowReader) elements(inner string) ([]string, error) {
	if strings.TrimSpace(inner) == "" {
		return nil, nil
	}
	parts := line.Split(inner, ',')
	if strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	for i, e := range parts {
		parts[i] = strings.TrimSpace(e)
		if parts[i] == "" {
			return nil, f.errorf("empty flow collection element")
		}
	}
	return parts, nil
}

func (f flowReader) sequence(inner string, depth int) (ast.Node, error) {
	elems, err := f.elements(inner)
	if err != nil {
		return nil, err
	}
	items := make([]ast.Node, 0, len(elems))
	for _, e := range elems {
		var n ast.Node
		if e[0] != '[' && e[0] != '{' && line.FlowColon(e) >= 0 {
			// A single pair inside a sequence, as in [a: 1].
			n, err = f.mapping(e, depth+1)
		} else {
			n, err = f.node(e, depth+1)
		}
		if err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return ast.NewSequence(items...), nil
}

func (f flowReader) mapping(inner string, depth int) (ast.Node, error) {
	elems, err := f.elements(inner)
	if err != nil {
		return nil, err
	}
	entries := make([]ast.Entry, 0, len(elems))
	var keys keyIndex
	for _, e := range elems {
		k, v := e, ""
		if i := line.FlowColon(e); i >= 0 {
			k, v = strings.TrimSpace(e[:i]), strings.TrimSpace(e[i+1:])
		}
		if k == "" {
			return nil, &errors.KeyStateError{Message: "empty key in flow mapping", Line: f.line.Number + 1, Text: f.line.Raw()}
		}
		key, err := f.node(k, depth+1)
		if err != nil {
			return nil, err
		}
		value, err := f.node(v, depth+1)
		if err != nil {
			return nil, err
		}
		if _, ok := keys.add(key, f.line); !ok {
			return nil, &errors.DuplicateKeyError{Key: keyText(key), Line: f.line.Number + 1, First: f.line.Number + 1}
		}
		entries = append(entries, ast.Entry{Key: key, Value: value})
	}
	return ast.NewMapping(entries...), nil
}
