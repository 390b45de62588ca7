package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/specialistvlad/lifesim/internal/boxeatsplants"
	"github.com/specialistvlad/lifesim/internal/ctxlog"
	"github.com/specialistvlad/lifesim/internal/lifesim"
	"github.com/specialistvlad/lifesim/internal/matchthree"
	"github.com/specialistvlad/lifesim/internal/matchword"
	"github.com/specialistvlad/lifesim/internal/render"
	"github.com/specialistvlad/lifesim/internal/savegame"
	"github.com/specialistvlad/lifesim/internal/server"
)

// Number of pieces spawned on the Box Eats Plants preview.
const (
	previewPlants = 5
	previewRocks  = 3
)

// Run prints the introduction and then runs whatever the config asks for:
// loading the save file, previewing the minigame boards, writing the save
// file back and serving match-3 games until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.printIntro()

	var game *lifesim.Game
	if a.cfg.SavePath != "" {
		var err error
		if game, err = a.loadGame(ctx); err != nil {
			return err
		}
	}

	if a.cfg.Preview {
		if err := a.preview(ctx, game); err != nil {
			return err
		}
	}

	if game != nil {
		if err := savegame.Save(a.cfg.SavePath, game); err != nil {
			return fmt.Errorf("failed to save game: %w", err)
		}
		a.logger.Info("Game saved.", "path", a.cfg.SavePath, "player", game.PlayerName)
	}

	if a.cfg.Serve {
		srv := server.New(a.settings.MatchThree, a.seed, a.logger)
		if err := srv.ListenAndServe(ctx, a.settings.Server.Listen); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) printIntro() {
	a.printf("Welcome to 'Life Simulation' by 'SoftwareApkDev'.\n")
	a.printf("This game is an offline adventure and simulation RPG allowing the player to \n")
	a.printf("choose various real-life actions.\n")
	a.printf("%s\n\n", a.heading("Below is the element chart in 'Adventure Mode' of 'Life Simulation'."))
	a.printf("%s\n\n", render.Grid(a.settings.Chart().Table(), true))
	a.printf("The following elements do not have any elemental strengths nor weaknesses.\n")
	a.printf("This is because they are ancient world elements. In this case, these elements will always \n")
	a.printf("be dealt with normal damage.\n\n")
	for i, e := range a.settings.AncientElements {
		a.printf("%d. %s\n", i+1, e)
	}
}

// loadGame reads the save file, or starts a new game when there is none.
func (a *App) loadGame(ctx context.Context) (*lifesim.Game, error) {
	logger := ctxlog.FromContext(ctx).With("path", a.cfg.SavePath)

	var game lifesim.Game
	err := savegame.Load(a.cfg.SavePath, &game)
	switch {
	case err == nil:
		logger.Info("Save file loaded.", "player", game.PlayerName, "version", game.Version)
		a.printf("\nWelcome back, %s.\n", game.PlayerName)
		return &game, nil
	case errors.Is(err, fs.ErrNotExist):
		g := lifesim.NewGame(lifesim.RandomName(a.rng), time.Now())
		logger.Info("No save file found, starting a new game.", "player", g.PlayerName)
		a.printf("\nA new player, %s, has arrived.\n", g.PlayerName)
		return g, nil
	default:
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
}

// preview deals one board of each minigame and prints it. When a game is
// loaded, its match-3 board is resumed and the minigames are marked played.
func (a *App) preview(ctx context.Context, game *lifesim.Game) error {
	logger := ctxlog.FromContext(ctx)

	box, err := a.boxEatsPlants()
	if err != nil {
		return err
	}
	a.printf("\n%s\n%s\n", a.heading(lifesim.BoxEatsPlants), box)

	words, err := matchword.New(matchword.Options{
		Width:    a.settings.MatchWord.Width,
		Height:   a.settings.MatchWord.Height,
		Keywords: a.settings.MatchWord.Keywords,
		Rand:     a.rng,
	})
	if err != nil {
		return fmt.Errorf("dealing match word board: %w", err)
	}
	a.printf("\n%s\n%s\n", a.heading(lifesim.MatchWordPuzzle), words)

	engine, err := a.matchThree(game)
	if err != nil {
		return err
	}
	a.printf("\n%s\n%s\n", a.heading(lifesim.MatchThree), engine)
	if engine.NoPossibleMoves() {
		logger.Warn("Match-3 board has no possible moves.")
	}

	if game != nil {
		for _, name := range lifesim.MinigameNames() {
			game.MarkPlayed(name)
		}
		snap := engine.Snapshot()
		game.MatchThree = &snap
	}
	logger.Debug("Previews printed.")
	return nil
}

func (a *App) boxEatsPlants() (*boxeatsplants.Board, error) {
	b, err := boxeatsplants.New(boxeatsplants.Options{
		Width:  a.settings.BoxEatsPlants.Width,
		Height: a.settings.BoxEatsPlants.Height,
		Rand:   a.rng,
	})
	if err != nil {
		return nil, fmt.Errorf("building box eats plants board: %w", err)
	}
	for i := 0; i < previewPlants; i++ {
		b.SpawnPlant()
	}
	for i := 0; i < previewRocks; i++ {
		b.SpawnRock()
	}
	b.SpawnBox()
	return b, nil
}

// matchThree resumes the saved board when there is one, or deals a new one.
func (a *App) matchThree(game *lifesim.Game) (*matchthree.Engine, error) {
	opts := matchthree.Options{
		Width:    a.settings.MatchThree.Width,
		Height:   a.settings.MatchThree.Height,
		Keywords: a.settings.MatchThree.Tiles(),
		Rand:     a.rng,
	}
	if game != nil && game.MatchThree != nil {
		e, err := matchthree.Restore(*game.MatchThree, opts)
		if err == nil {
			return e, nil
		}
		a.logger.Warn("Saved match-3 board is unusable, dealing a new one.", "error", err)
	}
	e, err := matchthree.New(opts)
	if err != nil {
		return nil, fmt.Errorf("dealing match-3 board: %w", err)
	}
	return e, nil
}
