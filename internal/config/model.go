package config

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/lifesim/internal/boxeatsplants"
	"github.com/specialistvlad/lifesim/internal/element"
	"github.com/specialistvlad/lifesim/internal/matchthree"
	"github.com/specialistvlad/lifesim/internal/matchword"
)

// ErrInvalid is returned by Validate.
var ErrInvalid = errors.New("invalid settings")

// DefaultListen is the address the match-3 server binds to by default.
const DefaultListen = "127.0.0.1:8080"

// Settings is the unified game configuration.
type Settings struct {
	// Seed drives every random source. Zero means seed from the clock.
	Seed            int64
	AncientElements []string
	MatchThree      MatchThree
	MatchWord       MatchWord
	BoxEatsPlants   BoxEatsPlants
	Elements        []Element
	Server          Server
}

// MatchThree configures the match-3 board.
type MatchThree struct {
	Width    int
	Height   int
	Keywords []string
}

// MatchWord configures the Match Word Puzzle board.
type MatchWord struct {
	Width    int
	Height   int
	Keywords []string
}

// BoxEatsPlants configures the Box Eats Plants board.
type BoxEatsPlants struct {
	Width  int
	Height int
}

// Element is one row of the element chart.
type Element struct {
	Name         string
	DoubleDamage []string
	HalfDamage   []string
}

// Server configures the match-3 socket.io server.
type Server struct {
	Listen string
}

// Default returns the settings the game ships with.
func Default() *Settings {
	s := &Settings{
		AncientElements: element.AncientElements(),
		MatchThree: MatchThree{
			Width:  matchthree.DefaultWidth,
			Height: matchthree.DefaultHeight,
		},
		MatchWord: MatchWord{
			Width:    matchword.DefaultWidth,
			Height:   matchword.DefaultHeight,
			Keywords: matchword.DefaultKeywords(),
		},
		BoxEatsPlants: BoxEatsPlants{
			Width:  boxeatsplants.DefaultWidth,
			Height: boxeatsplants.DefaultHeight,
		},
		Server: Server{Listen: DefaultListen},
	}
	for _, kw := range matchthree.DefaultKeywords() {
		s.MatchThree.Keywords = append(s.MatchThree.Keywords, string(kw))
	}
	for _, e := range element.DefaultChart() {
		s.Elements = append(s.Elements, Element{Name: e.Element, DoubleDamage: e.Double, HalfDamage: e.Half})
	}
	return s
}

// Chart converts the element rows into a damage chart.
func (s *Settings) Chart() element.Chart {
	chart := make(element.Chart, 0, len(s.Elements))
	for _, e := range s.Elements {
		chart = append(chart, element.Entry{Element: e.Name, Double: e.DoubleDamage, Half: e.HalfDamage})
	}
	return chart
}

// Tiles returns the match-3 alphabet as tiles.
func (m MatchThree) Tiles() []matchthree.Tile {
	out := make([]matchthree.Tile, len(m.Keywords))
	for i, kw := range m.Keywords {
		out[i] = matchthree.Tile(kw)
	}
	return out
}

// Validate checks the settings for values no board could be built from.
func (s *Settings) Validate() error {
	var errs []error

	if s.MatchThree.Width < 1 || s.MatchThree.Height < 1 {
		errs = append(errs, fmt.Errorf("match_three: size %dx%d must be positive", s.MatchThree.Width, s.MatchThree.Height))
	}
	if err := distinct("match_three.keywords", s.MatchThree.Keywords); err != nil {
		errs = append(errs, err)
	}
	if len(s.MatchThree.Keywords) < 4 {
		errs = append(errs, fmt.Errorf("match_three.keywords: need at least 4, got %d", len(s.MatchThree.Keywords)))
	}
	for _, kw := range s.MatchThree.Keywords {
		if kw == string(matchthree.Empty) {
			errs = append(errs, fmt.Errorf("match_three.keywords: %q is reserved", kw))
		}
	}

	cells := s.MatchWord.Width * s.MatchWord.Height
	switch {
	case s.MatchWord.Width < 1 || s.MatchWord.Height < 1:
		errs = append(errs, fmt.Errorf("match_word: size %dx%d must be positive", s.MatchWord.Width, s.MatchWord.Height))
	case cells%2 != 0:
		errs = append(errs, fmt.Errorf("match_word: %dx%d has an odd number of tiles", s.MatchWord.Width, s.MatchWord.Height))
	case cells/2 > len(s.MatchWord.Keywords):
		errs = append(errs, fmt.Errorf("match_word: %d pairs need more than %d keywords", cells/2, len(s.MatchWord.Keywords)))
	}
	if err := distinct("match_word.keywords", s.MatchWord.Keywords); err != nil {
		errs = append(errs, err)
	}

	if s.BoxEatsPlants.Width < 1 || s.BoxEatsPlants.Height < 1 {
		errs = append(errs, fmt.Errorf("box_eats_plants: size %dx%d must be positive", s.BoxEatsPlants.Width, s.BoxEatsPlants.Height))
	}

	names := make([]string, len(s.Elements))
	for i, e := range s.Elements {
		names[i] = e.Name
	}
	if err := distinct("element", names); err != nil {
		errs = append(errs, err)
	}

	if s.Server.Listen == "" {
		errs = append(errs, errors.New("server.listen must not be empty"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func distinct(field string, values []string) error {
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			return fmt.Errorf("%s: empty value", field)
		}
		if _, ok := seen[v]; ok {
			return fmt.Errorf("%s: duplicate %q", field, v)
		}
		seen[v] = struct{}{}
	}
	return nil
}
