/*
Package yamldoc reads and prints YAML documents while keeping their
comments. It works on a tree of nodes rather than on Go values: a document
is a scalar, a mapping or a sequence, and a multi-document input is a
stream of such documents. Mapping keys keep their order and may themselves
be mappings or sequences.

1. Reading

Parse reads the first document of its input and ParseStream reads all of
them. The Read functions do the same for an io.Reader and fix the shape the
caller expects; a document of another shape reads as an empty node instead
of failing, so callers can branch on shape:

	m, err := yamldoc.ReadMapping(r)
	if err != nil {
		// handle error
	}
	name, ok := ast.String(ast.Get(m, "name"))

Nodes read from text are computed from the source lines the first time
they are accessed. Malformed input is rejected with one of the error types of this
package, such as IndentationError, which reports both the offending line
and the line it was compared against.

2. Printing

Marshal prints a node, or converts a Go value to a node and prints that.
Format reads text and prints it in canonical form:

	// # The project name
	// name:   yamldoc    # inline
	out, err := yamldoc.Format(input, yamldoc.Indent(2))
	if err != nil {
		// handle error
	}
	// out is "# The project name\nname: yamldoc # inline\n"

Comment lines that introduce nothing below them, such as a comment closing
a block, are kept as the foot comment of the node before them.

Printing is stable: formatting the output of Format again returns the same
bytes. Printed text reads back as a structurally equal tree, where
structural equality (ast.Equal) ignores comments and scalar styles.

Options such as Indent, LineSeparator, WithColors and OmitComments control
the printed text; MaxDepth limits the nesting accepted by the reader.
*/
package yamldoc
