// Package errors defines the errors reported while reading and printing
// YAML documents.
//
// Every error type unwraps to one of the sentinel values below, so callers
// can classify failures with errors.Is without depending on the concrete
// types.
package errors

import (
	stderrors "errors"
	"fmt"
	"reflect"
)

var (
	// ErrSyntax is the class of malformed input: unterminated quotes or flow
	// collections, stray content, invalid characters.
	ErrSyntax = stderrors.New("syntax error")
	// ErrIndentation is the class of lines whose indentation does not fit
	// the block they appear in.
	ErrIndentation = stderrors.New("bad indentation")
	// ErrKeyState is the class of mapping entries with a missing or
	// misplaced key.
	ErrKeyState = stderrors.New("invalid key")
	// ErrDuplicateKey is the class of mappings that define a key twice.
	ErrDuplicateKey = stderrors.New("duplicate key")
	// ErrDepth is the class of documents nested beyond the configured limit.
	ErrDepth = stderrors.New("maximum nesting depth exceeded")
)

// SyntaxError represents malformed input at a position.
type SyntaxError struct {
	Message string
	// Line is 1-based; 0 means the position is unknown.
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return "yamldoc: syntax error: " + e.Message
	}
	if e.Column == 0 {
		return fmt.Sprintf("yamldoc: syntax error at line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("yamldoc: syntax error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

// IndentationError reports a line whose indentation is inconsistent with an
// earlier reference line.
type IndentationError struct {
	Message string
	Line    int
	Text    string
	// Reference is the 1-based line the offending line was checked against.
	Reference     int
	ReferenceText string
}

func (e *IndentationError) Error() string {
	return fmt.Sprintf("yamldoc: bad indentation at line %d %q: %s (line %d %q)",
		e.Line, e.Text, e.Message, e.Reference, e.ReferenceText)
}

func (e *IndentationError) Unwrap() error { return ErrIndentation }

// KeyStateError reports a mapping entry whose key is missing or cannot
// appear where it does.
type KeyStateError struct {
	Message string
	Line    int
	Text    string
}

func (e *KeyStateError) Error() string {
	return fmt.Sprintf("yamldoc: invalid key at line %d %q: %s", e.Line, e.Text, e.Message)
}

func (e *KeyStateError) Unwrap() error { return ErrKeyState }

// DuplicateKeyError reports a mapping key defined more than once.
type DuplicateKeyError struct {
	Key   string
	Line  int
	First int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("yamldoc: duplicate key %q at line %d (first defined at line %d)", e.Key, e.Line, e.First)
}

func (e *DuplicateKeyError) Unwrap() error { return ErrDuplicateKey }

// DepthError reports a document nested deeper than allowed.
type DepthError struct {
	Max  int
	Line int
}

func (e *DepthError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("yamldoc: nesting depth exceeds %d", e.Max)
	}
	return fmt.Sprintf("yamldoc: nesting depth exceeds %d at line %d", e.Max, e.Line)
}

func (e *DepthError) Unwrap() error { return ErrDepth }

// A MarshalerError represents an error from calling a MarshalYAMLNode method.
type MarshalerError struct {
	Type reflect.Type
	Err  error
}

func (e *MarshalerError) Error() string {
	return "yamldoc: error calling MarshalYAMLNode for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }
