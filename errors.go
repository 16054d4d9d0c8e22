package yamldoc

import "github.com/KimNorgaard/go-yamldoc/errors"

// The error types reported by this package. They are defined in the
// errors package and repeated here for convenience.
type (
	SyntaxError       = errors.SyntaxError
	IndentationError  = errors.IndentationError
	KeyStateError     = errors.KeyStateError
	DuplicateKeyError = errors.DuplicateKeyError
	DepthError        = errors.DepthError
	MarshalerError    = errors.MarshalerError
)

// The error classes reported by this package, for use with errors.Is.
var (
	ErrSyntax       = errors.ErrSyntax
	ErrIndentation  = errors.ErrIndentation
	ErrKeyState     = errors.ErrKeyState
	ErrDuplicateKey = errors.ErrDuplicateKey
	ErrDepth        = errors.ErrDepth
)
