// Package view implements composable read-only projections over the lines
// of a document.
//
// A View exposes an ordered subset of lines (possibly rewritten, as when a
// multi-line flow collection is joined into one logical line) together with
// the unfiltered line store it was derived from. Comment lookups always go
// through the store, indexed by line number.
//
// A view computes its lines the first time they are asked for and keeps
// them. Views are safe for concurrent use.
package view

import (
	"cmp"
	"slices"
	"sync"

	"github.com/KimNorgaard/go-yamldoc/internal/line"
)

// View is an ordered projection over a document's lines.
type View interface {
	// Lines returns the lines the view exposes, in document order.
	Lines() []line.Line
	// Original returns the unfiltered line store of the whole input.
	Original() []line.Line
}

// cache holds the lines of a view once computed.
type cache struct {
	once  sync.Once
	lines []line.Line
}

func (c *cache) get(compute func() []line.Line) []line.Line {
	c.once.Do(func() { c.lines = compute() })
	return c.lines
}

type all struct {
	lines []line.Line
}

// All returns the view over every line of the store.
func All(lines []line.Line) View { return all{lines: lines} }

func (a all) Lines() []line.Line    { return a.lines }
func (a all) Original() []line.Line { return a.lines }

type span struct {
	inner    View
	from, to int
}

// Range returns the lines of v with index in [from, to).
func Range(v View, from, to int) View { return span{inner: v, from: from, to: to} }

func (s span) Lines() []line.Line {
	ls := s.inner.Lines()
	from, to := min(s.from, len(ls)), min(s.to, len(ls))
	return ls[from:to]
}

func (s span) Original() []line.Line { return s.inner.Original() }

type skip struct {
	cache
	inner View
	preds []func(line.Line) bool
}

// Skip returns v without the lines matching any of preds.
func Skip(v View, preds ...func(line.Line) bool) View { return &skip{inner: v, preds: preds} }

func (s *skip) Lines() []line.Line { return s.get(s.compute) }

func (s *skip) compute() []line.Line {
	var out []line.Line
next:
	for _, l := range s.inner.Lines() {
		for _, p := range s.preds {
			if p(l) {
				continue next
			}
		}
		out = append(out, l)
	}
	return out
}

func (s *skip) Original() []line.Line { return s.inner.Original() }

// NoDirectives returns v without "%" directives and document markers.
func NoDirectives(v View) View {
	return Skip(v, line.Line.IsDirective, line.Line.IsStartMarker, line.Line.IsEndMarker)
}

type noIndicators struct {
	inner View
}

// NoIndicators returns v without its leading block scalar header line
// ("|", ">-" and the like) and anything preceding it.
func NoIndicators(v View) View { return noIndicators{inner: v} }

func (n noIndicators) Lines() []line.Line {
	ls := n.inner.Lines()
	for i, l := range ls {
		if !l.Significant() {
			continue
		}
		if line.IsIndicator(l.Trimmed()) {
			return ls[i+1:]
		}
		break
	}
	return ls
}

func (n noIndicators) Original() []line.Line { return n.inner.Original() }

type sameIndentation struct {
	cache
	inner View
}

// SameIndentation returns the significant lines of v that sit at its
// smallest indentation: the entries or items of the block v holds.
func SameIndentation(v View) View { return &sameIndentation{inner: v} }

func (s *sameIndentation) Lines() []line.Line { return s.get(s.compute) }

func (s *sameIndentation) compute() []line.Line {
	ls := s.inner.Lines()
	least := -1
	for _, l := range ls {
		if l.Significant() && (least < 0 || l.Indentation() < least) {
			least = l.Indentation()
		}
	}
	var out []line.Line
	for _, l := range ls {
		if l.Significant() && l.Indentation() == least {
			out = append(out, l)
		}
	}
	return out
}

func (s *sameIndentation) Original() []line.Line { return s.inner.Original() }

type compact struct {
	cache
	first line.Line
	rest  View
}

// Compact returns rest preceded by first, a line synthesized from the
// content following a "- " or "? " marker.
func Compact(first line.Line, rest View) View { return &compact{first: first, rest: rest} }

func (c *compact) Lines() []line.Line { return c.get(c.compute) }

func (c *compact) compute() []line.Line {
	rest := c.rest.Lines()
	out := make([]line.Line, 0, len(rest)+1)
	out = append(out, c.first)
	return append(out, rest...)
}

func (c *compact) Original() []line.Line { return c.rest.Original() }

// FirstSignificant returns the first line of v holding content.
func FirstSignificant(v View) (line.Line, bool) {
	for _, l := range v.Lines() {
		if l.Significant() {
			return l, true
		}
	}
	return line.Line{}, false
}

// Search returns the index of the first line of ls numbered n or later.
// The lines of every view are ordered by number.
func Search(ls []line.Line, n int) int {
	i, _ := slices.BinarySearchFunc(ls, n, func(l line.Line, n int) int {
		return cmp.Compare(l.Number, n)
	})
	return i
}

// Next returns the first line of v holding content after l.
func Next(v View, l line.Line) (line.Line, bool) {
	ls := v.Lines()
	for _, n := range ls[Search(ls, l.Number+1):] {
		if n.Significant() {
			return n, true
		}
	}
	return line.Line{}, false
}
