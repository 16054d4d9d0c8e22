// Package parser turns the lines of a YAML stream into nodes.
//
// Mappings and sequences read from block text are views: they keep the
// lines they were read from and compute their entries or items the first
// time they are asked. Scalars and flow collections are read into plain
// nodes.
// Stream and Document walk the whole tree once before returning, so every
// error in the input is reported up front and later accesses cannot fail.
package parser

import (
	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/errors"
	"github.com/KimNorgaard/go-yamldoc/internal/debug"
	"github.com/KimNorgaard/go-yamldoc/internal/line"
	"github.com/KimNorgaard/go-yamldoc/internal/view"
)

// DefaultMaxDepth is the nesting limit used when none is configured.
const DefaultMaxDepth = 1000

type shape int

const (
	shapeScalar shape = iota
	shapeMapping
	shapeSequence
	shapeFlowSequence
	shapeFlowMapping
	shapeBlockScalar
	shapeComplexValue
)

var shapeNames = map[shape]string{
	shapeScalar:       "scalar",
	shapeMapping:      "mapping",
	shapeSequence:     "sequence",
	shapeFlowSequence: "flow sequence",
	shapeFlowMapping:  "flow mapping",
	shapeBlockScalar:  "block scalar",
	shapeComplexValue: "complex value",
}

type readFn func(v view.View, first line.Line, cs commentSource) (ast.Node, error)

// Parser reads nodes from a line store.
type Parser struct {
	lines    []line.Line
	store    view.View
	maxDepth int

	readFns map[shape]readFn
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth limits how deeply nodes may nest.
func WithMaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// New creates a parser over lines.
func New(lines []line.Line, opts ...Option) *Parser {
	p := &Parser{
		lines:    lines,
		store:    view.All(lines),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.readFns = map[shape]readFn{
		shapeScalar:       p.readPlain,
		shapeMapping:      p.readMapping,
		shapeSequence:     p.readSequence,
		shapeFlowSequence: p.readFlowLine,
		shapeFlowMapping:  p.readFlowLine,
		shapeBlockScalar:  p.readRootBlock,
		shapeComplexValue: p.readStrayValue,
	}
	return p
}

// Stream reads every document of the input.
func (p *Parser) Stream() (ast.Stream, error) {
	var docs []ast.Node
	for _, seg := range segments(p.lines) {
		d, err := p.document(seg)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	s := &stream{docs: docs}
	if err := p.check(s, 0); err != nil {
		return nil, err
	}
	return s, nil
}

// Document reads the first document of the input. Input without any
// document reads as null.
func (p *Parser) Document() (ast.Node, error) {
	s, err := p.Stream()
	if err != nil {
		return nil, err
	}
	if s.Len() == 0 {
		return ast.Null(), nil
	}
	return s.Documents()[0], nil
}

// Explicit reports whether the input marks its documents with "---".
func (p *Parser) Explicit() bool {
	for _, l := range p.lines {
		if l.IsStartMarker() {
			return true
		}
	}
	return false
}

// read classifies the block held by v and reads it. The anchor is the line
// introducing the block, such as "key:" or "-", or nil at the root.
func (p *Parser) read(v view.View, anchor *line.Line, cs commentSource) (ast.Node, error) {
	if anchor != nil {
		if ind, ok := line.ParseIndicator(anchorValue(*anchor)); ok {
			return p.blockScalar(v, *anchor, anchorOwner(*anchor), ind, cs)
		}
	}
	first, ok := view.FirstSignificant(v)
	if !ok {
		return nullScalar(v, cs), nil
	}
	sh := classify(first)
	if debug.Read() {
		debug.Logf("line %d: reading %s", first.Number+1, shapeNames[sh])
	}
	return p.readFns[sh](v, first, cs)
}

func classify(l line.Line) shape {
	parts := l.Parts()
	switch parts.Leading() {
	case '-':
		return shapeSequence
	case '?':
		return shapeMapping
	case ':':
		return shapeComplexValue
	}
	switch {
	case parts.HasKey:
		return shapeMapping
	case line.IsIndicator(parts.Value):
		return shapeBlockScalar
	case parts.Value[0] == '[':
		return shapeFlowSequence
	case parts.Value[0] == '{':
		return shapeFlowMapping
	}
	return shapeScalar
}

func anchorValue(l line.Line) string {
	if l.IsStartMarker() {
		return l.MarkerContent()
	}
	return l.Parts().Value
}

func anchorOwner(l line.Line) int {
	if l.IsStartMarker() {
		return -1
	}
	return l.Parts().Owner(l.Indentation())
}

func (p *Parser) readMapping(v view.View, _ line.Line, cs commentSource) (ast.Node, error) {
	return &mapping{p: p, v: v, cs: cs}, nil
}

func (p *Parser) readSequence(v view.View, _ line.Line, cs commentSource) (ast.Node, error) {
	return &sequence{p: p, v: v, cs: cs}, nil
}

func (p *Parser) readRootBlock(v view.View, first line.Line, cs commentSource) (ast.Node, error) {
	ind, _ := line.ParseIndicator(first.Parts().Value)
	cs = cs.withInline(first)
	return p.blockScalar(view.NoIndicators(v), first, first.Indentation(), ind, cs)
}

func (p *Parser) readFlowLine(v view.View, first line.Line, cs commentSource) (ast.Node, error) {
	if err := onlyLine(v, first); err != nil {
		return nil, err
	}
	return p.flow(first.Parts().Value, first, cs.withInline(first))
}

// readPlain reads a plain or quoted scalar. A plain scalar may span several
// lines, which are joined with single spaces.
func (p *Parser) readPlain(v view.View, first line.Line, cs commentSource) (ast.Node, error) {
	text := first.Trimmed()
	for _, l := range v.Lines() {
		if l.Number <= first.Number || !l.Significant() {
			continue
		}
		if text[0] == '"' || text[0] == '\'' {
			return nil, &errors.SyntaxError{Message: "unexpected content after quoted scalar", Line: l.Number + 1}
		}
		if i := line.MappingColon(l.Trimmed()); i >= 0 || l.IsItem() {
			return nil, &errors.SyntaxError{Message: "unexpected block content after scalar", Line: l.Number + 1}
		}
		text += " " + l.Trimmed()
	}
	return p.scalar(text, first, cs.withInline(first))
}

func (p *Parser) readStrayValue(_ view.View, first line.Line, _ commentSource) (ast.Node, error) {
	return nil, &errors.KeyStateError{
		Message: "value indicator ':' without a preceding '?' key",
		Line:    first.Number + 1,
		Text:    first.Raw(),
	}
}

func onlyLine(v view.View, first line.Line) error {
	for _, l := range v.Lines() {
		if l.Number > first.Number && l.Significant() {
			return &errors.SyntaxError{Message: "unexpected content after flow collection", Line: l.Number + 1}
		}
	}
	return nil
}

// check walks n and everything below it, reporting the first error any
// lazily read node would hit.
func (p *Parser) check(n ast.Node, depth int) error {
	if depth > p.maxDepth && n.Kind() != ast.KindScalar {
		return &errors.DepthError{Max: p.maxDepth, Line: lineOf(n)}
	}
	switch n := n.(type) {
	case *mapping:
		entries, err := n.entries()
		if err != nil {
			return err
		}
		for _, e := range entries {
			if err := p.check(e.Key, depth+1); err != nil {
				return err
			}
			if err := p.check(e.Value, depth+1); err != nil {
				return err
			}
		}
	case *sequence:
		items, err := n.items()
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := p.check(item, depth+1); err != nil {
				return err
			}
		}
	case *stream:
		for _, d := range n.docs {
			if err := p.check(d, depth); err != nil {
				return err
			}
		}
	case ast.Mapping:
		for _, e := range n.Entries() {
			if err := p.check(e.Value, depth+1); err != nil {
				return err
			}
		}
	case ast.Sequence:
		for _, item := range n.Items() {
			if err := p.check(item, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

func lineOf(n ast.Node) int {
	var v view.View
	switch n := n.(type) {
	case *mapping:
		v = n.v
	case *sequence:
		v = n.v
	default:
		return 0
	}
	if l, ok := view.FirstSignificant(v); ok {
		return l.Number + 1
	}
	return 0
}
