// Command yamlfmt formats YAML documents.
//
// Without file arguments it formats standard input and prints the result.
// Given files, it prints the formatted files, or with -w rewrites them in
// place. Comments are kept unless -no-comments is given.
package main

import (
	"context"

	"github.com/scott-cotton/cli"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}
