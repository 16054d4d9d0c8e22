package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/errors"
	"github.com/KimNorgaard/go-yamldoc/internal/lexer"
)

func newParser(t *testing.T, src string, opts ...Option) *Parser {
	t.Helper()
	lines, err := lexer.Bytes([]byte(src))
	require.NoError(t, err)
	return New(lines, opts...)
}

func parse(t *testing.T, src string) ast.Node {
	t.Helper()
	n, err := newParser(t, src).Document()
	require.NoError(t, err)
	return n
}

func str(t *testing.T, n ast.Node) string {
	t.Helper()
	s := ast.ScalarOf(n)
	require.NotNil(t, s, "expected a scalar, got %v", n)
	require.False(t, s.IsNull())
	return s.Value()
}

func TestMapping(t *testing.T) {
	doc := parse(t, "a: 1\nb:\n  c: 2\n  d: [x, y]\ne: 'q'\n")
	m := ast.MappingOf(doc)
	require.NotNil(t, m)
	require.Equal(t, 3, m.Len())

	require.Equal(t, "1", str(t, ast.Get(m, "a")))
	b := ast.MappingOf(ast.Get(m, "b"))
	require.NotNil(t, b)
	require.Equal(t, "2", str(t, ast.Get(b, "c")))
	d := ast.SequenceOf(ast.Get(b, "d"))
	require.NotNil(t, d)
	require.Equal(t, 2, d.Len())
	require.Equal(t, "y", str(t, ast.Index(d, 1)))

	e := ast.ScalarOf(ast.Get(m, "e"))
	require.Equal(t, "q", e.Value())
	require.Equal(t, ast.SingleQuoted, e.Style())

	var keys []string
	for _, entry := range m.Entries() {
		keys = append(keys, str(t, entry.Key))
	}
	require.Equal(t, []string{"a", "b", "e"}, keys)
}

func TestMappingEntriesAreReadOnce(t *testing.T) {
	m := ast.MappingOf(parse(t, "a:\n  b: 1\n"))
	first := m.Entries()
	second := m.Entries()
	require.Equal(t, len(first), len(second))
	require.Same(t, first[0].Value, second[0].Value)
	require.True(t, ast.Equal(first[0].Value, second[0].Value))
}

func TestSequence(t *testing.T) {
	doc := parse(t, "- a\n- b: 1\n  c: 2\n- - x\n  - y\n-\n- |\n  lit\n- [1, 2]\n")
	s := ast.SequenceOf(doc)
	require.NotNil(t, s)
	items := s.Items()
	require.Len(t, items, 6)

	require.Equal(t, "a", str(t, items[0]))

	m := ast.MappingOf(items[1])
	require.NotNil(t, m)
	require.Equal(t, "1", str(t, ast.Get(m, "b")))
	require.Equal(t, "2", str(t, ast.Get(m, "c")))

	inner := ast.SequenceOf(items[2])
	require.NotNil(t, inner)
	require.Equal(t, "x", str(t, ast.Index(inner, 0)))
	require.Equal(t, "y", str(t, ast.Index(inner, 1)))

	require.True(t, ast.ScalarOf(items[3]).IsNull())

	lit := ast.ScalarOf(items[4])
	require.Equal(t, "lit\n", lit.Value())
	require.Equal(t, ast.Literal, lit.Style())

	require.Equal(t, 2, ast.SequenceOf(items[5]).Len())
}

func TestSequenceAtKeyIndentation(t *testing.T) {
	m := ast.MappingOf(parse(t, "key:\n- a\n- b\nother: 1\n"))
	require.Equal(t, 2, m.Len())
	seq := ast.SequenceOf(ast.Get(m, "key"))
	require.NotNil(t, seq)
	require.Equal(t, 2, seq.Len())
	require.Equal(t, "1", str(t, ast.Get(m, "other")))
}

func TestComplexKeys(t *testing.T) {
	m := ast.MappingOf(parse(t, "? - a\n  - b\n: value\n? simple\nplain: 1\n"))
	require.NotNil(t, m)
	entries := m.Entries()
	require.Len(t, entries, 3)

	key := ast.SequenceOf(entries[0].Key)
	require.NotNil(t, key)
	require.Equal(t, 2, key.Len())
	require.Equal(t, "value", str(t, entries[0].Value))
	require.Equal(t, "value", str(t, m.Value(ast.NewSequence(ast.NewScalar("a"), ast.NewScalar("b")))))

	require.Equal(t, "simple", str(t, entries[1].Key))
	require.True(t, ast.ScalarOf(entries[1].Value).IsNull())
	require.Equal(t, "1", str(t, entries[2].Value))
}

func TestComplexKeyComments(t *testing.T) {
	m := ast.MappingOf(parse(t, "# about key\n? - a\n: v # on value\n"))
	entries := m.Entries()
	require.Len(t, entries, 1)
	require.True(t, entries[0].Key.Comment().IsEmpty(), "complex keys carry no comment")
	c := entries[0].Value.Comment()
	require.Equal(t, "about key", c.Above)
	require.Equal(t, "on value", c.Inline)
}

func TestComplexKeyWithBlockValue(t *testing.T) {
	m := ast.MappingOf(parse(t, "? a: 1\n  b: 2\n:\n  - x\n"))
	entries := m.Entries()
	require.Len(t, entries, 1)
	key := ast.MappingOf(entries[0].Key)
	require.NotNil(t, key)
	require.Equal(t, 2, key.Len())
	require.Equal(t, 1, ast.SequenceOf(entries[0].Value).Len())
}

func TestScalars(t *testing.T) {
	testCases := []struct {
		name  string
		src   string
		value string
		null  bool
		style ast.Style
	}{
		{name: "plain", src: "v: hello world", value: "hello world"},
		{name: "null", src: "v: null", null: true},
		{name: "missing value", src: "v:", null: true},
		{name: "quoted null", src: `v: "null"`, value: "null", style: ast.DoubleQuoted},
		{name: "double escapes", src: `v: "a\tb\n\"c\" \u00e9 \x41"`, value: "a\tb\n\"c\" é A", style: ast.DoubleQuoted},
		{name: "single escape", src: `v: 'it''s'`, value: "it's", style: ast.SingleQuoted},
		{name: "empty quoted", src: `v: ""`, value: "", style: ast.DoubleQuoted},
		{name: "number stays text", src: "v: 012", value: "012"},
		{name: "hash inside", src: "v: a#b", value: "a#b"},
		{name: "multi-line plain", src: "v:\n  first\n  second", value: "first second"},
		{name: "anchors are text", src: "v: &x val", value: "&x val"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := ast.ScalarOf(ast.Get(ast.MappingOf(parse(t, tc.src)), "v"))
			require.NotNil(t, v)
			require.Equal(t, tc.null, v.IsNull())
			require.Equal(t, tc.value, v.Value())
			require.Equal(t, tc.style, v.Style())
		})
	}
}

func TestRootScalars(t *testing.T) {
	require.Equal(t, "one two three", str(t, parse(t, "one\ntwo\nthree\n")))
	require.Equal(t, "x", str(t, parse(t, `"x"`)))
	require.True(t, ast.ScalarOf(parse(t, "")).IsNull())
	require.True(t, ast.ScalarOf(parse(t, "null")).IsNull())
}

func TestBlockScalars(t *testing.T) {
	testCases := []struct {
		name  string
		src   string
		value string
		style ast.Style
	}{
		{
			name:  "folded",
			src:   "quote: >\n  Mark McGwire's\n  year was crippled\n  by a knee injury.\n",
			value: "Mark McGwire's year was crippled by a knee injury.",
			style: ast.Folded,
		},
		{
			name: "folded with indented lines",
			src: "quote: >\n Sammy Sosa completed another\n fine season with great stats.\n\n" +
				"   63 Home Runs\n   0.288 Batting Average\n\n What a year!\n",
			value: "Sammy Sosa completed another fine season with great stats.\n\n" +
				"  63 Home Runs\n  0.288 Batting Average\n\nWhat a year!",
			style: ast.Folded,
		},
		{name: "folded paragraphs", src: "quote: >\n  a\n  b\n\n  c\n", value: "a b\nc", style: ast.Folded},
		{name: "literal", src: "text: |\n  line1\n\n  line2\nnext: 1\n", value: "line1\n\nline2\n", style: ast.Literal},
		{name: "literal strip", src: "text: |-\n  x\n", value: "x", style: ast.Literal},
		{name: "literal keep", src: "text: |+\n  x\n\nnext: 1\n", value: "x\n\n", style: ast.Literal},
		{name: "folded keep", src: "text: >+\n  x\n  y\n\n", value: "x y\n\n", style: ast.Folded},
		{name: "indentation indicator", src: "text: |2\n    indented\n  base\n", value: "  indented\nbase\n", style: ast.Literal},
		{name: "hash kept in content", src: "text: |\n  # not a comment\n  a # b\n", value: "# not a comment\na # b\n", style: ast.Literal},
		{name: "trailing comment excluded", src: "text: |\n  x\n# about next\nnext: 1\n", value: "x\n", style: ast.Literal},
		{name: "empty", src: "text: |\nnext: 1\n", value: "", style: ast.Literal},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := ast.MappingOf(parse(t, tc.src))
			require.NotNil(t, m)
			v := ast.ScalarOf(m.Entries()[0].Value)
			require.NotNil(t, v)
			require.Equal(t, tc.value, v.Value())
			require.Equal(t, tc.style, v.Style())
		})
	}
}

func TestRootBlockScalar(t *testing.T) {
	n := parse(t, "# head\n\n>\n Sammy Sosa completed another\n fine season.\n")
	s := ast.ScalarOf(n)
	require.Equal(t, "Sammy Sosa completed another fine season.", s.Value())
	require.Equal(t, ast.Folded, s.Style())
	require.Equal(t, "head", n.Comment().Above)
}

func TestFlow(t *testing.T) {
	m := ast.MappingOf(parse(t, "a: [x, 'y, z', [1, 2], {k: v}, b: 3,]\nm: {\"q\":1, e,\n  n: [ ] }\n"))
	a := ast.SequenceOf(ast.Get(m, "a"))
	require.Equal(t, 5, a.Len())
	require.Equal(t, "y, z", str(t, ast.Index(a, 1)))
	require.Equal(t, 2, ast.SequenceOf(ast.Index(a, 2)).Len())
	require.Equal(t, "v", str(t, ast.Get(ast.MappingOf(ast.Index(a, 3)), "k")))
	require.Equal(t, "3", str(t, ast.Get(ast.MappingOf(ast.Index(a, 4)), "b")))

	fm := ast.MappingOf(ast.Get(m, "m"))
	require.Equal(t, 3, fm.Len())
	require.Equal(t, "1", str(t, ast.Get(fm, "q")))
	require.True(t, ast.ScalarOf(ast.Get(fm, "e")).IsNull())
	require.Equal(t, 0, ast.SequenceOf(ast.Get(fm, "n")).Len())
}

func TestFlowCollapsedAcrossLines(t *testing.T) {
	s := ast.SequenceOf(parse(t, "- [a, \n   b,\n [c, d],\n{e: f},\ng]\n"))
	inner := ast.SequenceOf(ast.Index(s, 0))
	require.NotNil(t, inner)
	require.Equal(t, 5, inner.Len())
	require.True(t, ast.Equal(inner, ast.NewSequence(
		ast.NewScalar("a"),
		ast.NewScalar("b"),
		ast.NewSequence(ast.NewScalar("c"), ast.NewScalar("d")),
		ast.NewMapping(ast.Pair("e", ast.NewScalar("f"))),
		ast.NewScalar("g"),
	)))
}

func TestEmptyCollections(t *testing.T) {
	m := ast.MappingOf(parse(t, "a: {}\nb: []\nc:\n"))
	require.Equal(t, 0, ast.MappingOf(ast.Get(m, "a")).Len())
	require.Equal(t, 0, ast.SequenceOf(ast.Get(m, "b")).Len())
	require.True(t, ast.ScalarOf(ast.Get(m, "c")).IsNull())
}

func TestComments(t *testing.T) {
	src := `# head

# about a
a: 1 # one
b:  # bee
  # about c
  c: 2
seq:
  # first
  - x # ex
  - y
`
	doc := parse(t, src)
	require.Equal(t, "head", doc.Comment().Above)

	m := ast.MappingOf(doc)
	a := ast.Get(m, "a").Comment()
	require.Equal(t, "about a", a.Above)
	require.Equal(t, "one", a.Inline)

	b := ast.Get(m, "b")
	require.Equal(t, "", b.Comment().Above)
	require.Equal(t, "bee", b.Comment().Inline)
	require.Equal(t, "about c", ast.Get(ast.MappingOf(b), "c").Comment().Above)

	x := ast.Index(ast.SequenceOf(ast.Get(m, "seq")), 0).Comment()
	require.Equal(t, "first", x.Above)
	require.Equal(t, "ex", x.Inline)
	require.Equal(t, "first\nex", x.Value())
}

func TestFootComments(t *testing.T) {
	testCases := []struct {
		name  string
		src   string
		key   string
		foot  string
		below string
	}{
		{name: "separated by a blank line", src: "a: 1\n# about b\n\nb: 2\n", key: "a", foot: "about b", below: "b"},
		{name: "closing a nested block", src: "a:\n  b: 1\n# trailing\n", key: "a", foot: "trailing"},
		{name: "indented under a scalar", src: "k: v\n  # note about k\nz: 1\n", key: "k", foot: "note about k", below: "z"},
		{name: "end of document", src: "a: 1\n\n# tail of doc\n", key: "a", foot: "tail of doc"},
		{name: "under a null value", src: "a:\n  # only comment\nb: 1\n", key: "a", foot: "only comment", below: "b"},
		{name: "after a block scalar", src: "a: |\n  text\n# after text\n\nb: 1\n", key: "a", foot: "after text", below: "b"},
		{name: "inside a block scalar", src: "a: |\n  # text\nb: 1\n", key: "a", foot: "", below: "b"},
		{name: "several lines", src: "a: 1\n# one\n  # two\n\n# three\n\nb: 2\n", key: "a", foot: "one\ntwo\nthree", below: "b"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := ast.MappingOf(parse(t, tc.src))
			require.NotNil(t, m)
			require.Equal(t, tc.foot, ast.Get(m, tc.key).Comment().Foot)
			if tc.below != "" {
				require.True(t, ast.Get(m, tc.below).Comment().IsEmpty())
			}
		})
	}

	t.Run("nested entry", func(t *testing.T) {
		m := ast.MappingOf(parse(t, "a:\n  b: 1\n  # closes a\nc: 2\n"))
		a := ast.Get(m, "a")
		require.Empty(t, a.Comment().Foot)
		require.Equal(t, "closes a", ast.Get(ast.MappingOf(a), "b").Comment().Foot)
	})

	t.Run("sequence items", func(t *testing.T) {
		s := ast.SequenceOf(parse(t, "- x\n  # under x\n- y\n# end\n"))
		require.Equal(t, "under x", ast.Index(s, 0).Comment().Foot)
		require.Empty(t, ast.Index(s, 1).Comment().Above)
		require.Equal(t, "end", ast.Index(s, 1).Comment().Foot)
	})

	t.Run("scalar root", func(t *testing.T) {
		c := parse(t, "# above\nhello\n# below\n").Comment()
		require.Equal(t, "above", c.Above)
		require.Equal(t, "below", c.Foot)
	})
}

func TestCommentAttachedToFirstEntry(t *testing.T) {
	doc := parse(t, "# about a\na: 1\n")
	require.True(t, doc.Comment().IsEmpty())
	require.Equal(t, "about a", ast.Get(ast.MappingOf(doc), "a").Comment().Above)
}

func TestCommentOfCompactItem(t *testing.T) {
	s := ast.SequenceOf(parse(t, "# item\n- a: 1 # one\n  b: 2\n"))
	item := ast.Index(s, 0)
	require.Equal(t, "item", item.Comment().Above)
	require.Equal(t, "", item.Comment().Inline)
	require.Equal(t, "one", ast.Get(ast.MappingOf(item), "a").Comment().Inline)
}

func TestCommentOnlyDocument(t *testing.T) {
	doc := parse(t, "# just\n# comments\n")
	require.True(t, ast.ScalarOf(doc).IsNull())
	require.Equal(t, "just\ncomments", doc.Comment().Above)
}

func TestStream(t *testing.T) {
	s, err := newParser(t, "a: 1\n---\nb: 2\n...\n--- # third\n- x\n").Stream()
	require.NoError(t, err)
	docs := s.Documents()
	require.Len(t, docs, 3)
	require.Equal(t, "1", str(t, ast.Get(ast.MappingOf(docs[0]), "a")))
	require.Equal(t, "2", str(t, ast.Get(ast.MappingOf(docs[1]), "b")))
	require.Equal(t, "x", str(t, ast.Index(ast.SequenceOf(docs[2]), 0)))
	require.Equal(t, "third", docs[2].Comment().Inline)
}

func TestStreamShapes(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		docs     int
		explicit bool
	}{
		{name: "empty", src: "", docs: 0},
		{name: "implicit", src: "a: 1\n", docs: 1},
		{name: "empty documents", src: "---\n---\n", docs: 2, explicit: true},
		{name: "header comment", src: "# header\n---\na: 1\n", docs: 1, explicit: true},
		{name: "directive", src: "%YAML 1.2\n---\na: 1\n", docs: 1, explicit: true},
		{name: "end marker only", src: "a: 1\n...\n", docs: 1},
		{name: "content after end marker", src: "a: 1\n...\nb: 2\n", docs: 2},
		{name: "comment after end marker", src: "a: 1\n...\n# done\n", docs: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := newParser(t, tc.src)
			s, err := p.Stream()
			require.NoError(t, err)
			require.Equal(t, tc.docs, s.Len())
			require.Equal(t, tc.explicit, p.Explicit())
		})
	}
}

func TestMarkerContent(t *testing.T) {
	s, err := newParser(t, "--- text\n--- |\n  literal\n--- [a]\n").Stream()
	require.NoError(t, err)
	docs := s.Documents()
	require.Len(t, docs, 3)
	require.Equal(t, "text", str(t, docs[0]))
	require.Equal(t, "literal\n", str(t, docs[1]))
	require.Equal(t, 1, ast.SequenceOf(docs[2]).Len())
}

func TestErrors(t *testing.T) {
	testCases := []struct {
		name     string
		src      string
		sentinel error
	}{
		{name: "duplicate key", src: "a: 1\na: 2\n", sentinel: errors.ErrDuplicateKey},
		{name: "duplicate nested key", src: "a:\n  b: 1\n  b: 2\n", sentinel: errors.ErrDuplicateKey},
		{name: "duplicate flow key", src: "a: {x: 1, x: 2}\n", sentinel: errors.ErrDuplicateKey},
		{name: "stray value indicator", src: ": v\n", sentinel: errors.ErrKeyState},
		{name: "value indicator in mapping", src: "a: 1\n: v\n", sentinel: errors.ErrKeyState},
		{name: "empty complex key", src: "? : x\n", sentinel: errors.ErrKeyState},
		{name: "indentation", src: "a:\n b: x\n  c: 1\n", sentinel: errors.ErrIndentation},
		{name: "content under value", src: "- a\n  - b\n", sentinel: errors.ErrIndentation},
		{name: "unterminated flow", src: "a: [1, 2\n", sentinel: errors.ErrSyntax},
		{name: "unterminated quote", src: "a: \"abc\n", sentinel: errors.ErrSyntax},
		{name: "content after quote", src: "a: 'x' y\n", sentinel: errors.ErrSyntax},
		{name: "bad escape", src: "a: \"\\q\"\n", sentinel: errors.ErrSyntax},
		{name: "item in mapping", src: "a: 1\n- b\n", sentinel: errors.ErrSyntax},
		{name: "entry in sequence", src: "- a\nb: 1\n", sentinel: errors.ErrSyntax},
		{name: "empty flow element", src: "a: [1,,2]\n", sentinel: errors.ErrSyntax},
		{name: "mismatched flow", src: "a: [1}\n", sentinel: errors.ErrSyntax},
		{name: "nested error found eagerly", src: "a:\n  b:\n    c: 1\n    c: 2\n", sentinel: errors.ErrDuplicateKey},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := newParser(t, tc.src).Document()
			require.Error(t, err)
			require.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestDuplicateKeyPosition(t *testing.T) {
	_, err := newParser(t, "a: 1\nb: 2\na: 3\n").Document()
	var de *errors.DuplicateKeyError
	require.ErrorAs(t, err, &de)
	require.Equal(t, "a", de.Key)
	require.Equal(t, 3, de.Line)
	require.Equal(t, 1, de.First)
}

func TestDuplicateComplexKeyPosition(t *testing.T) {
	_, err := newParser(t, "? [a]\n: 1\nb: 2\n? [a]\n: 3\n").Document()
	var de *errors.DuplicateKeyError
	require.ErrorAs(t, err, &de)
	require.Equal(t, 4, de.Line)
	require.Equal(t, 1, de.First)
}

func TestMaxDepth(t *testing.T) {
	src := "a:\n  b:\n    c:\n      d: 1\n"
	_, err := newParser(t, src, WithMaxDepth(2)).Document()
	require.ErrorIs(t, err, errors.ErrDepth)

	_, err = newParser(t, src, WithMaxDepth(3)).Document()
	require.NoError(t, err)

	_, err = newParser(t, "a: [[[[1]]]]\n", WithMaxDepth(3)).Document()
	require.ErrorIs(t, err, errors.ErrDepth)
}
