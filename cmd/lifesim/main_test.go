package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/lifesim/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Introduction(t *testing.T) {
	t.Parallel()

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	err := run(context.Background(), out, logs, []string{"-seed", "1"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Welcome to 'Life Simulation'")
	assert.Contains(t, out.String(), "ancient world elements")
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when help is requested")
	require.Contains(t, out.String(), "Usage:")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Parallel()

	invalidHCL := `
		match_three {
		  width = 4
		// Missing closing brace here
	`
	filePath := filepath.Join(t.TempDir(), "main.hcl")
	require.NoError(t, os.WriteFile(filePath, []byte(invalidHCL), 0o600))

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"-config", filePath})

	require.Error(t, err)
	var exitErr *cli.ExitError
	assert.False(t, errors.As(err, &exitErr), "configuration errors exit with the generic code")
	assert.Contains(t, err.Error(), "failed to parse")
}
