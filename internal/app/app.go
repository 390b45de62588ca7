package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/gookit/color"
	"github.com/specialistvlad/lifesim/internal/config"
	"github.com/specialistvlad/lifesim/internal/ctxlog"
)

// App encapsulates the game's dependencies, settings and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	cfg      *Config
	settings *config.Settings
	seed     int64
	rng      *rand.Rand
}

// NewApp loads settings with loader and returns a ready App. Game output goes
// to outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var paths []string
	if cfg.ConfigPath != "" {
		paths = append(paths, cfg.ConfigPath)
	}
	settings, err := loader.Load(ctx, paths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Settings loaded.", "config_path", cfg.ConfigPath)

	seed := settings.Seed
	if cfg.Seed != 0 {
		seed = cfg.Seed
	}
	src := uint64(seed)
	if seed == 0 {
		src = uint64(time.Now().UnixNano())
	}
	logger.Debug("Random source ready.", "seed", seed)

	return &App{
		outW:     outW,
		logger:   logger,
		cfg:      cfg,
		settings: settings,
		seed:     seed,
		rng:      rand.New(rand.NewPCG(src, src^0x9e3779b97f4a7c15)),
	}, nil
}

// Settings returns the loaded settings.
func (a *App) Settings() *config.Settings {
	return a.settings
}

// heading styles a section title when colour output is enabled.
func (a *App) heading(s string) string {
	if !a.cfg.Color {
		return s
	}
	return color.New(color.FgCyan, color.OpBold).Sprint(s)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.outW, format, args...)
}
