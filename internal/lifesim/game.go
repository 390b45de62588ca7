package lifesim

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/specialistvlad/lifesim/internal/matchthree"
)

// Version is the current save format version.
const Version = 1

// Minigame names.
const (
	BoxEatsPlants   = "BOX EATS PLANTS"
	MatchWordPuzzle = "MATCH WORD PUZZLE"
	MatchThree      = "MATCH-3 GAME"
)

const letters = "abcdefghijklmnopqrstuvwxyz"

// MinigameNames returns the known minigames in menu order.
func MinigameNames() []string {
	return []string{BoxEatsPlants, MatchWordPuzzle, MatchThree}
}

// Minigame records whether the player has tried one of the minigames.
type Minigame struct {
	Name          string `msgpack:"name"`
	AlreadyPlayed bool   `msgpack:"already_played"`
}

// NewMinigame returns an unplayed minigame. Unknown names fall back to the
// first minigame.
func NewMinigame(name string) Minigame {
	for _, n := range MinigameNames() {
		if n == name {
			return Minigame{Name: name}
		}
	}
	return Minigame{Name: MinigameNames()[0]}
}

// Game is everything written to a save file.
type Game struct {
	Version    int                  `msgpack:"version"`
	PlayerName string               `msgpack:"player_name"`
	CreatedAt  time.Time            `msgpack:"created_at"`
	Minigames  []Minigame           `msgpack:"minigames"`
	MatchThree *matchthree.Snapshot `msgpack:"match_three,omitempty"`
}

// NewGame starts a game with every minigame unplayed.
func NewGame(playerName string, now time.Time) *Game {
	g := &Game{Version: Version, PlayerName: playerName, CreatedAt: now.UTC()}
	for _, n := range MinigameNames() {
		g.Minigames = append(g.Minigames, NewMinigame(n))
	}
	return g
}

// MarkPlayed flags the named minigame as played. It reports false for a name
// that is not part of the game.
func (g *Game) MarkPlayed(name string) bool {
	for i := range g.Minigames {
		if g.Minigames[i].Name == name {
			g.Minigames[i].AlreadyPlayed = true
			return true
		}
	}
	return false
}

// RandomName returns 5 to 25 random letters with the first one capitalised.
func RandomName(r *rand.Rand) string {
	n := 5 + r.IntN(21)
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(letters[r.IntN(len(letters))])
	}
	name := sb.String()
	return strings.ToUpper(name[:1]) + name[1:]
}
