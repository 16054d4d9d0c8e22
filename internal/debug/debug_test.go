package debug

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoolEnv(t *testing.T) {
	t.Setenv("YAMLDOC_TEST_FLAG", "true")
	require.True(t, boolEnv("YAMLDOC_TEST_FLAG"))
	t.Setenv("YAMLDOC_TEST_FLAG", "nope")
	require.False(t, boolEnv("YAMLDOC_TEST_FLAG"))
	require.False(t, boolEnv("YAMLDOC_TEST_UNSET"))
}

func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	old := d.out
	d.out = &buf
	defer func() { d.out = old }()

	Logf("line %d: %s", 3, "mapping")
	require.Equal(t, "yamldoc: line 3: mapping\n", buf.String())
}
