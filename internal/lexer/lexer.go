// Package lexer splits YAML source into the line store every view reads
// from.
package lexer

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-yamldoc/errors"
	"github.com/KimNorgaard/go-yamldoc/internal/line"
)

const bom = "\ufeff"

// Lexer holds the state for splitting YAML source into lines.
type Lexer struct {
	r    *bufio.Reader
	line int
}

// New creates and returns a new Lexer.
func New(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r)}
}

// Lines reads the whole input and returns its lines. Both "\n" and "\r\n"
// terminate a line. A final line terminator does not start another line.
func (l *Lexer) Lines() ([]line.Line, error) {
	var lines []line.Line
	for {
		raw, err := l.r.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, err
		}
		if raw == "" && err == io.EOF {
			return lines, nil
		}
		raw = strings.TrimSuffix(raw, "\n")
		raw = strings.TrimSuffix(raw, "\r")
		if l.line == 0 {
			raw = strings.TrimPrefix(raw, bom)
		}
		if perr := check(raw, l.line+1); perr != nil {
			return nil, perr
		}
		lines = append(lines, line.New(l.line, raw))
		l.line++
		if err == io.EOF {
			return lines, nil
		}
	}
}

// Bytes splits data into lines.
func Bytes(data []byte) ([]line.Line, error) {
	return New(bytes.NewReader(data)).Lines()
}

func check(raw string, n int) error {
	if !utf8.ValidString(raw) {
		return &errors.SyntaxError{Message: "invalid UTF-8 encoding", Line: n}
	}
	for i, ch := range raw {
		if isForbiddenControlChar(ch) {
			return &errors.SyntaxError{Message: "invalid control character", Line: n, Column: i + 1}
		}
	}
	if strings.HasPrefix(raw, "\t") && strings.TrimSpace(raw) != "" {
		return &errors.SyntaxError{Message: "tab character used for indentation", Line: n, Column: 1}
	}
	return nil
}

func isForbiddenControlChar(ch rune) bool {
	return (ch < 0x20 && ch != '\t') || ch == 0x7f
}
