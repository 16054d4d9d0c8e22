package parser

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-yamldoc/ast"
	"github.com/KimNorgaard/go-yamldoc/errors"
	"github.com/KimNorgaard/go-yamldoc/internal/line"
)

// scalar reads the plain or quoted scalar text found on line l.
func (p *Parser) scalar(text string, l line.Line, cs commentSource) (ast.Node, error) {
	n, err := readScalar(text)
	if err != nil {
		return nil, &errors.SyntaxError{Message: err.Error(), Line: l.Number + 1}
	}
	return withComment(n, p.store, cs), nil
}

type scalarError string

func (e scalarError) Error() string { return string(e) }

func readScalar(text string) (ast.Scalar, error) {
	switch {
	case text == "null":
		return ast.Null(), nil
	case text[0] == '"':
		v, err := unquoteDouble(text)
		if err != nil {
			return nil, err
		}
		return ast.NewStyledScalar(v, ast.DoubleQuoted), nil
	case text[0] == '\'':
		v, err := unquoteSingle(text)
		if err != nil {
			return nil, err
		}
		return ast.NewStyledScalar(v, ast.SingleQuoted), nil
	}
	return ast.NewScalar(text), nil
}

func unquoteSingle(s string) (string, error) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		if s[i] != '\'' {
			b.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			b.WriteByte('\'')
			i++
			continue
		}
		if i != len(s)-1 {
			return "", scalarError("unexpected content after single-quoted scalar")
		}
		return b.String(), nil
	}
	return "", scalarError("unterminated single-quoted scalar")
}

func unquoteDouble(s string) (string, error) {
	var b strings.Builder
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			if i != len(s)-1 {
				return "", scalarError("unexpected content after double-quoted scalar")
			}
			return b.String(), nil
		case '\\':
			if i+1 >= len(s) {
				return "", scalarError("unterminated double-quoted scalar")
			}
			i++
			n, err := unescape(s, i, &b)
			if err != nil {
				return "", err
			}
			i += n
		default:
			b.WriteByte(c)
		}
	}
	return "", scalarError("unterminated double-quoted scalar")
}

// unescape writes the escape sequence starting at s[i] and returns how many
// bytes past s[i] it consumed.
func unescape(s string, i int, b *strings.Builder) (int, error) {
	switch s[i] {
	case '0':
		b.WriteByte(0)
	case 'a':
		b.WriteByte('\a')
	case 'b':
		b.WriteByte('\b')
	case 't', '\t':
		b.WriteByte('\t')
	case 'n':
		b.WriteByte('\n')
	case 'v':
		b.WriteByte('\v')
	case 'f':
		b.WriteByte('\f')
	case 'r':
		b.WriteByte('\r')
	case 'e':
		b.WriteByte(0x1b)
	case ' ':
		b.WriteByte(' ')
	case '"', '/', '\\':
		b.WriteByte(s[i])
	case 'N':
		b.WriteRune('\u0085')
	case '_':
		b.WriteRune('\u00a0')
	case 'L':
		b.WriteRune('\u2028')
	case 'P':
		b.WriteRune('\u2029')
	case 'x':
		return hex(s, i, 2, b)
	case 'u':
		return hex(s, i, 4, b)
	case 'U':
		return hex(s, i, 8, b)
	default:
		return 0, scalarError("invalid escape sequence '\\" + string(s[i]) + "'")
	}
	return 0, nil
}

func hex(s string, i, n int, b *strings.Builder) (int, error) {
	if i+n >= len(s) {
		return 0, scalarError("short escape sequence")
	}
	v, err := strconv.ParseUint(s[i+1:i+1+n], 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return 0, scalarError("invalid escape sequence '\\" + s[i:i+1+n] + "'")
	}
	b.WriteRune(rune(v))
	return n, nil
}
