// Package debug holds switches for tracing the reader, set from the
// environment.
package debug

import (
	"fmt"
	"io"
	"os"
	"strconv"
)

type debug struct {
	Read   bool
	Stream bool
	out    io.Writer
}

var d *debug

func init() {
	d = &debug{out: os.Stderr}
	d.Read = boolEnv("YAMLDOC_DEBUG_READ")
	d.Stream = boolEnv("YAMLDOC_DEBUG_STREAM")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Read reports whether node classification is traced.
func Read() bool {
	return d.Read
}

// Stream reports whether document segmentation is traced.
func Stream() bool {
	return d.Stream
}

// Logf writes one trace line.
func Logf(format string, args ...any) {
	fmt.Fprintf(d.out, "yamldoc: "+format+"\n", args...)
}
