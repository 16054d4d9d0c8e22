package parser

import (
	"sync"

	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/internal/view"
)

// mapping is a block mapping read from the lines of v. Its entries are
// read on first access.
type mapping struct {
	p  *Parser
	v  view.View
	cs commentSource

	once sync.Once
	list []ast.Entry
	err  error
}

func (m *mapping) Kind() ast.Kind { return ast.KindMapping }

func (m *mapping) Comment() ast.Comment {
	c := m.cs.comment(m.v.Original())
	c.Owner = m
	return c
}

// Entries reads the entries of the mapping. The lines were checked when the
// document was read, so reading cannot fail here.
func (m *mapping) Entries() []ast.Entry {
	entries, _ := m.entries()
	return entries
}

func (m *mapping) entries() ([]ast.Entry, error) {
	m.once.Do(func() { m.list, m.err = m.readEntries() })
	return m.list, m.err
}

func (m *mapping) Value(key ast.Node) ast.Node {
	for _, e := range m.Entries() {
		if ast.Equal(e.Key, key) {
			return e.Value
		}
	}
	return nil
}

func (m *mapping) Len() int { return len(m.Entries()) }

// sequence is a block sequence read from the lines of v. Its items are
// read on first access.
type sequence struct {
	p  *Parser
	v  view.View
	cs commentSource

	once sync.Once
	list []ast.Node
	err  error
}

func (s *sequence) Kind() ast.Kind { return ast.KindSequence }

func (s *sequence) Comment() ast.Comment {
	c := s.cs.comment(s.v.Original())
	c.Owner = s
	return c
}

func (s *sequence) Items() []ast.Node {
	items, _ := s.items()
	return items
}

func (s *sequence) items() ([]ast.Node, error) {
	s.once.Do(func() { s.list, s.err = s.readItems() })
	return s.list, s.err
}

func (s *sequence) Len() int { return len(s.Items()) }

type stream struct {
	docs []ast.Node
}

func (s *stream) Kind() ast.Kind        { return ast.KindStream }
func (s *stream) Comment() ast.Comment  { return ast.Comment{Owner: s} }
func (s *stream) Documents() []ast.Node { return s.docs }
func (s *stream) Len() int              { return len(s.docs) }
