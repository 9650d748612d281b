package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) {
	t.Helper()
	cmd := newRootCommand(zerolog.Nop())
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	out := filepath.Join(t.TempDir(), "query_generated.go")
	t.Setenv("ECSBIND_MAX_ARITY", "3")
	t.Setenv("ECSBIND_PACKAGE", "fromenv")
	t.Setenv("ECSBIND_OUTPUT", filepath.Join(t.TempDir(), "unused.go"))

	execute(t, "--max-arity", "5", "--output", out)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "const MaxArity = 5")
	assert.Contains(t, string(src), "package fromenv")
}

func TestEnvironmentWithoutFlags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "query_generated.go")
	t.Setenv("ECSBIND_MAX_ARITY", "3")
	t.Setenv("ECSBIND_OUTPUT", out)

	execute(t)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "const MaxArity = 3")
	assert.Contains(t, string(src), "package ecsbind")
}

func TestInvalidArityFails(t *testing.T) {
	out := filepath.Join(t.TempDir(), "query_generated.go")
	cmd := newRootCommand(zerolog.Nop())
	cmd.SetArgs([]string{"--max-arity", "0", "--output", out})
	assert.Error(t, cmd.Execute())
	assert.NoFileExists(t, out)
}
