package cli

import (
	"bytes"
	"testing"

	"github.com/specialistvlad/lifesim/internal/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected *app.Config
	}{
		{
			name:     "no arguments",
			args:     nil,
			expected: &app.Config{LogFormat: "text", LogLevel: "info"},
		},
		{
			name: "every flag",
			args: []string{
				"-config", "game.hcl", "-save", "me.sav", "-log-format", "JSON", "-log-level", "Debug",
				"-seed", "42", "-preview", "-serve", "-color",
			},
			expected: &app.Config{
				ConfigPath: "game.hcl",
				SavePath:   "me.sav",
				LogFormat:  "json",
				LogLevel:   "debug",
				Seed:       42,
				Preview:    true,
				Serve:      true,
				Color:      true,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, exit, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.False(t, exit)
			assert.Equal(t, tc.expected, cfg)
		})
	}
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}
	cfg, exit, err := Parse([]string{"-h"}, out)
	require.NoError(t, err)
	assert.True(t, exit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "-preview")
}

func TestParse_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		contains string
	}{
		{name: "unknown flag", args: []string{"-fly"}, contains: "flag provided but not defined"},
		{name: "bad seed", args: []string{"-seed", "many"}, contains: "invalid value"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, contains: "log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud"}, contains: "log-level"},
		{name: "positional argument", args: []string{"extra"}, contains: "unexpected argument"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := Parse(tc.args, &bytes.Buffer{})
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.contains)
		})
	}
}
