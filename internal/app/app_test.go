package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/specialistvlad/lifesim/internal/config"
	"github.com/specialistvlad/lifesim/internal/hcl"
	"github.com/specialistvlad/lifesim/internal/lifesim"
	"github.com/specialistvlad/lifesim/internal/matchthree"
	"github.com/specialistvlad/lifesim/internal/savegame"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// safeBuffer is a thread-safe buffer for capturing output in tests.
type safeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

type failingLoader struct{ err error }

func (l failingLoader) Load(context.Context, ...string) (*config.Settings, error) {
	return nil, l.err
}

func setupApp(t *testing.T, cfg Config) (*App, *safeBuffer, *safeBuffer) {
	t.Helper()
	appCfg, err := NewConfig(cfg)
	require.NoError(t, err)
	appCfg.LogLevel = "debug"

	out, logs := &safeBuffer{}, &safeBuffer{}
	a, err := NewApp(out, logs, appCfg, hcl.NewLoader())
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("LIFESIM_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return a, out, logs
}

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)

	_, err = NewConfig(Config{LogFormat: "xml"})
	assert.ErrorContains(t, err, "log-format")
	_, err = NewConfig(Config{LogLevel: "loud"})
	assert.ErrorContains(t, err, "log-level")
}

func TestNewApp_LoaderError(t *testing.T) {
	cfg, err := NewConfig(Config{})
	require.NoError(t, err)

	_, err = NewApp(&safeBuffer{}, &safeBuffer{}, cfg, failingLoader{err: errors.New("boom")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
	assert.Contains(t, err.Error(), "boom")
}

func TestRun_PrintsIntroduction(t *testing.T) {
	a, out, _ := setupApp(t, Config{Seed: 1})
	require.NoError(t, a.Run(context.Background()))

	text := out.String()
	assert.Contains(t, text, "Welcome to 'Life Simulation'")
	assert.Contains(t, text, "ATTACKING")
	assert.Contains(t, text, "╒")
	assert.Contains(t, text, "1. BEAUTY\n")
	assert.Contains(t, text, "6. SOUL\n")
	assert.NotContains(t, text, lifesim.MatchThree, "boards are only shown with preview")
}

func TestRun_Preview(t *testing.T) {
	a, out, _ := setupApp(t, Config{Seed: 3, Preview: true, Color: true})
	require.NoError(t, a.Run(context.Background()))

	text := out.String()
	for _, name := range lifesim.MinigameNames() {
		assert.Contains(t, text, name)
	}
	assert.Equal(t, 24, strings.Count(text, "CLOSED"), "match word tiles start closed")
	assert.Contains(t, text, "BOX")
}

func TestRun_SaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "player.sav")

	a, out, _ := setupApp(t, Config{Seed: 5, Preview: true, SavePath: path})
	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "A new player")

	var first lifesim.Game
	require.NoError(t, savegame.Load(path, &first))
	assert.NotEmpty(t, first.PlayerName)
	require.NotNil(t, first.MatchThree)
	for _, m := range first.Minigames {
		assert.True(t, m.AlreadyPlayed, m.Name)
	}

	saved, err := matchthree.Restore(*first.MatchThree, matchthree.Options{})
	require.NoError(t, err)

	b, out, _ := setupApp(t, Config{Seed: 6, Preview: true, SavePath: path})
	require.NoError(t, b.Run(context.Background()))
	assert.Contains(t, out.String(), "Welcome back, "+first.PlayerName+".")
	assert.Contains(t, out.String(), saved.String(), "saved match-3 board is resumed")
}

func TestRun_CorruptSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.sav")
	require.NoError(t, os.WriteFile(path, []byte{0xc1}, 0o600))

	a, _, _ := setupApp(t, Config{SavePath: path})
	err := a.Run(context.Background())
	require.ErrorIs(t, err, savegame.ErrCorrupt)
}

func TestRun_ServeStopsWithContext(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "serve.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server {\n  listen = \"127.0.0.1:0\"\n}\n"), 0o600))

	a, _, logs := setupApp(t, Config{ConfigPath: cfgPath, Serve: true})

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()
	require.NoError(t, a.Run(ctx))
	assert.Contains(t, logs.String(), "Match-3 server starting.")
}

func TestNewApp_SeedFlagOverridesSettings(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "seed.hcl")
	require.NoError(t, os.WriteFile(cfgPath, []byte("seed = 99\n"), 0o600))

	a, _, _ := setupApp(t, Config{ConfigPath: cfgPath})
	assert.Equal(t, int64(99), a.seed)
	assert.Equal(t, int64(99), a.Settings().Seed)

	b, _, _ := setupApp(t, Config{ConfigPath: cfgPath, Seed: 7})
	assert.Equal(t, int64(7), b.seed)
}
