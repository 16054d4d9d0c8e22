package parser

import (
	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/errors"
	"github.com/KimNorgaard/go-yamldoc/internal/line"
	"github.com/KimNorgaard/go-yamldoc/internal/view"
)

func (m *mapping) readEntries() ([]ast.Entry, error) {
	level := view.SameIndentation(m.v).Lines()
	entries := make([]ast.Entry, 0, len(level))
	var keys keyIndex
	for i := 0; i < len(level); i++ {
		l := level[i]
		parts := l.Parts()
		var (
			e   ast.Entry
			err error
		)
		switch parts.Leading() {
		case '?':
			var value *line.Line
			if i+1 < len(level) && level[i+1].Parts().Leading() == ':' {
				value = &level[i+1]
				i++
			}
			e, err = m.complexEntry(l, value, nextLine(level, i))
		case ':':
			return nil, &errors.KeyStateError{
				Message: "value indicator ':' without a preceding '?' key",
				Line:    l.Number + 1,
				Text:    l.Raw(),
			}
		case '-':
			return nil, &errors.SyntaxError{Message: "sequence item where a mapping entry was expected", Line: l.Number + 1}
		default:
			if !parts.HasKey {
				return nil, &errors.SyntaxError{Message: "expected a 'key: value' entry", Line: l.Number + 1}
			}
			for parts.Value == "" && i+1 < len(level) && level[i+1].IsItem() {
				i++
			}
			e, err = m.entry(l, parts, nextLine(level, i))
		}
		if err != nil {
			return nil, err
		}
		if first, ok := keys.add(e.Key, l); !ok {
			return nil, &errors.DuplicateKeyError{Key: keyText(e.Key), Line: l.Number + 1, First: first.Number + 1}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// nextLine returns the level line following index i, or nil after the last.
func nextLine(level []line.Line, i int) *line.Line {
	if i+1 < len(level) {
		return &level[i+1]
	}
	return nil
}

// entry reads a "key: value" line and the block nested under it. The entry
// ends where next, the following entry of the mapping, begins.
func (m *mapping) entry(l line.Line, parts line.Parts, next *line.Line) (ast.Entry, error) {
	if parts.Key == "" {
		return ast.Entry{}, &errors.KeyStateError{Message: "empty key", Line: l.Number + 1, Text: l.Raw()}
	}
	key, err := m.p.scalar(parts.Key, l, commentSource{})
	if err != nil {
		return ast.Entry{}, err
	}
	cs := lineComments(l)
	var value ast.Node
	if hasItemAfter(m.v, l) && parts.Value == "" {
		children := view.NestedSequence(m.v, l)
		cs.foot = footComment(m.v, l, len(children.Lines()), next)
		return ast.Entry{Key: key, Value: &sequence{p: m.p, v: children, cs: cs}}, nil
	}
	children := view.Nested(m.v, l)
	cs.foot = footComment(m.v, l, claimed(children, l), next)
	if parts.Value != "" {
		value, err = m.p.inline(parts.Value, children, l, cs)
	} else {
		value, err = m.p.read(children, &l, cs)
	}
	if err != nil {
		return ast.Entry{}, err
	}
	return ast.Entry{Key: key, Value: value}, nil
}

// complexEntry reads a "? key" line and the optional ": value" line
// answering it. The value's comment is the one written above the key and
// on the value line.
func (m *mapping) complexEntry(k line.Line, v *line.Line, next *line.Line) (ast.Entry, error) {
	key, err := m.p.item(m.v, k, commentSource{})
	if err != nil {
		return ast.Entry{}, err
	}
	cs := commentSource{}
	if !k.Compact() {
		cs.above = &k
	}
	last := k
	if v != nil {
		last = *v
	}
	cs.foot = footComment(m.v, last, claimed(view.Nested(m.v, last), last), next)
	var value ast.Node
	if v == nil {
		value = nullScalar(m.v, cs)
	} else {
		cs.inline = v
		value, err = m.p.item(m.v, *v, cs)
		if err != nil {
			return ast.Entry{}, err
		}
	}
	return ast.Entry{Key: key, Value: value}, nil
}

// hasItemAfter reports whether the line after l in v is a sequence item at
// the indentation of l.
func hasItemAfter(v view.View, l line.Line) bool {
	n, ok := view.Next(v, l)
	return ok && n.Indentation() == l.Indentation() && n.IsItem()
}

// keyIndex records the keys of a mapping being read and the lines
// defining them.
type keyIndex struct {
	scalars map[string]line.Line
	null    *line.Line
	complex []definedKey
}

type definedKey struct {
	key  ast.Node
	line line.Line
}

// add records that key is defined on line l. It reports false and the
// line of the first definition if key is already present.
func (k *keyIndex) add(key ast.Node, l line.Line) (line.Line, bool) {
	s := ast.ScalarOf(key)
	switch {
	case s == nil:
		for _, d := range k.complex {
			if ast.Equal(d.key, key) {
				return d.line, false
			}
		}
		k.complex = append(k.complex, definedKey{key: key, line: l})
	case s.IsNull():
		if k.null != nil {
			return *k.null, false
		}
		k.null = &l
	default:
		if first, ok := k.scalars[s.Value()]; ok {
			return first, false
		}
		if k.scalars == nil {
			k.scalars = make(map[string]line.Line)
		}
		k.scalars[s.Value()] = l
	}
	return l, true
}

func keyText(n ast.Node) string {
	if s, ok := ast.String(n); ok {
		return s
	}
	if ast.ScalarOf(n) != nil {
		return "null"
	}
	return n.Kind().String()
}
