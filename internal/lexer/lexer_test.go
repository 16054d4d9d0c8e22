package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-yamldoc/errors"
)

func TestLines(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single without newline", input: "a: 1", want: []string{"a: 1"}},
		{name: "final newline", input: "a: 1\nb: 2\n", want: []string{"a: 1", "b: 2"}},
		{name: "crlf", input: "a: 1\r\nb: 2\r\n", want: []string{"a: 1", "b: 2"}},
		{name: "blank lines", input: "a\n\n\nb", want: []string{"a", "", "", "b"}},
		{name: "only newline", input: "\n", want: []string{""}},
		{name: "bom", input: "\ufeffa: 1\n", want: []string{"a: 1"}},
		{name: "tab in content", input: "a: x\ty\n", want: []string{"a: x\ty"}},
		{name: "tab only line", input: "\t\n", want: []string{"\t"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			lines, err := New(strings.NewReader(tc.input)).Lines()
			require.NoError(t, err)
			var got []string
			for i, l := range lines {
				require.Equal(t, i, l.Number)
				got = append(got, l.Raw())
			}
			require.Equal(t, tc.want, got)
		})
	}
}

func TestLinesErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "tab indentation", input: "a:\n\tb: 1\n", want: "yamldoc: syntax error at line 2, column 1: tab character used for indentation"},
		{name: "control character", input: "a: \x01\n", want: "yamldoc: syntax error at line 1, column 4: invalid control character"},
		{name: "invalid utf8", input: "a: \xff\n", want: "yamldoc: syntax error at line 1: invalid UTF-8 encoding"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Bytes([]byte(tc.input))
			require.Error(t, err)
			require.ErrorIs(t, err, errors.ErrSyntax)
			require.EqualError(t, err, tc.want)
		})
	}
}
