package line

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMappingColon(t *testing.T) {
	testCases := []struct {
		in   string
		want int
	}{
		{in: "a: b", want: 1},
		{in: "a:", want: 1},
		{in: "a:b", want: -1},
		{in: "'a: b': c", want: 6},
		{in: `"a\": b": c`, want: 8},
		{in: "{a: b}", want: -1},
		{in: "[a, b]: c", want: 6},
		{in: "plain text", want: -1},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, MappingColon(tc.in))
		})
	}
}

func TestFlowColon(t *testing.T) {
	require.Equal(t, 3, FlowColon(`"a":1`))
	require.Equal(t, 1, FlowColon("a: 1"))
	require.Equal(t, -1, FlowColon("a:1"))
	require.Equal(t, -1, FlowColon("[a: 1]"))
}

func TestDepthAndClosing(t *testing.T) {
	require.Equal(t, 0, Depth("[a, [b], {c: d}]"))
	require.Equal(t, 1, Depth("[a, "))
	require.Equal(t, 2, Depth("[a, {b: "))
	require.Equal(t, 1, Depth("[']'"))
	require.Equal(t, 0, Depth("- a"))

	require.Equal(t, 5, Closing("[a, b]"))
	require.Equal(t, 10, Closing("[a, [b, c]] x"))
	require.Equal(t, -1, Closing("[a, [b]"))
	require.Equal(t, 5, Closing(`{"}":}`))
}

func TestSplit(t *testing.T) {
	require.Equal(t, []string{"a", " [b, c]", " 'd, e'", " {f: g}"}, Split("a, [b, c], 'd, e', {f: g}", ','))
	require.Equal(t, []string{""}, Split("", ','))
	require.Equal(t, []string{"a", ""}, Split("a,", ','))
}

func TestCommentIndex(t *testing.T) {
	require.Equal(t, -1, CommentIndex("a: b"))
	require.Equal(t, 0, CommentIndex("# x"))
	require.Equal(t, 5, CommentIndex("a: b # x"))
	require.Equal(t, -1, CommentIndex(`a: "b # x"`))
	require.Equal(t, 13, CommentIndex(`a: ["b # x"] # y`))
}
