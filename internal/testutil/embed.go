// Package testutil gives tests access to the sample documents embedded
// under testdata.
package testutil

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
)

//go:embed testdata/*.yaml
var samplesFS embed.FS

// Sample returns the content of the sample document name.
func Sample(name string) ([]byte, error) {
	data, err := fs.ReadFile(samplesFS, path.Join("testdata", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read sample '%s': %w", name, err)
	}
	return data, nil
}

// Samples returns the names of all sample documents in sorted order.
func Samples() []string {
	entries, err := fs.ReadDir(samplesFS, "testdata")
	if err != nil {
		panic(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}
