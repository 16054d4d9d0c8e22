package yamldoc

import (
	"fmt"

	"github.com/KimNorgaard/go-yamldoc/internal/formatter"
	"github.com/KimNorgaard/go-yamldoc/internal/parser"
)

const (
	defaultIndent = 2
	maxIndent     = 8
)

// Option configures reading and printing.
type Option func(*options) error

type options struct {
	indent        int
	maxDepth      int
	lineSeparator string
	colors        *Colors
	omitComments  bool
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		indent:        defaultIndent,
		maxDepth:      parser.DefaultMaxDepth,
		lineSeparator: "\n",
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *options) formatterConfig() formatter.Config {
	return formatter.Config{
		Indent:        o.indent,
		LineSeparator: o.lineSeparator,
		Colors:        o.colors,
		OmitComments:  o.omitComments,
	}
}

func (o *options) parserOptions() []parser.Option {
	return []parser.Option{parser.WithMaxDepth(o.maxDepth)}
}

// Indent sets the number of spaces per nesting level of printed output.
// The default is 2.
//
// The indent n must be between 1 and 8.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 1 || n > maxIndent {
			return fmt.Errorf("yamldoc: indent must be between 1 and %d, got %d", maxIndent, n)
		}
		o.indent = n
		return nil
	}
}

// MaxDepth sets the maximum nesting depth of documents accepted by the
// reader. This guards against pathologically nested input.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("yamldoc: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// LineSeparator sets the separator terminating every printed line, "\n"
// (the default) or "\r\n".
func LineSeparator(sep string) Option {
	return func(o *options) error {
		if sep != "\n" && sep != "\r\n" {
			return fmt.Errorf("yamldoc: line separator must be \"\\n\" or \"\\r\\n\", got %q", sep)
		}
		o.lineSeparator = sep
		return nil
	}
}

// WithColors highlights printed output with the palette c. A nil palette
// turns highlighting off.
func WithColors(c *Colors) Option {
	return func(o *options) error {
		o.colors = c
		return nil
	}
}

// OmitComments prints documents without their comments.
func OmitComments() Option {
	return func(o *options) error {
		o.omitComments = true
		return nil
	}
}

// Colors is the palette used to highlight printed YAML.
type Colors = formatter.Colors

// DefaultColors returns the default highlighting palette.
func DefaultColors() *Colors { return formatter.DefaultColors() }
