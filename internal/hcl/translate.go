package hcl

import (
	"context"

	"github.com/specialistvlad/lifesim/internal/config"
	"github.com/specialistvlad/lifesim/internal/ctxlog"
)

// merge applies every value present in root onto s.
func merge(ctx context.Context, s *config.Settings, root *fileRoot) {
	logger := ctxlog.FromContext(ctx)

	if root.Seed != nil {
		s.Seed = *root.Seed
	}
	if root.AncientElements != nil {
		s.AncientElements = *root.AncientElements
	}
	if b := root.MatchThree; b != nil {
		setInt(&s.MatchThree.Width, b.Width)
		setInt(&s.MatchThree.Height, b.Height)
		if b.Keywords != nil {
			s.MatchThree.Keywords = *b.Keywords
		}
	}
	if b := root.MatchWord; b != nil {
		setInt(&s.MatchWord.Width, b.Width)
		setInt(&s.MatchWord.Height, b.Height)
		if b.Keywords != nil {
			s.MatchWord.Keywords = *b.Keywords
		}
	}
	if b := root.BoxEatsPlants; b != nil {
		setInt(&s.BoxEatsPlants.Width, b.Width)
		setInt(&s.BoxEatsPlants.Height, b.Height)
	}
	for _, e := range root.Elements {
		mergeElement(s, e)
		logger.Debug("Element row merged.", "element", e.Name)
	}
	if root.Server != nil && root.Server.Listen != nil {
		s.Server.Listen = *root.Server.Listen
	}
}

// mergeElement replaces the chart row of the same name in place, or appends
// a new row.
func mergeElement(s *config.Settings, e *elementBlock) {
	row := config.Element{Name: e.Name, DoubleDamage: e.DoubleDamage, HalfDamage: e.HalfDamage}
	for i := range s.Elements {
		if s.Elements[i].Name == e.Name {
			s.Elements[i] = row
			return
		}
	}
	s.Elements = append(s.Elements, row)
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func toDefaultsDoc(s *config.Settings) defaultsDoc {
	doc := defaultsDoc{
		Seed:            s.Seed,
		AncientElements: orEmpty(s.AncientElements),
		MatchThree:      defaultsBoard{Width: s.MatchThree.Width, Height: s.MatchThree.Height, Keywords: orEmpty(s.MatchThree.Keywords)},
		MatchWord:       defaultsBoard{Width: s.MatchWord.Width, Height: s.MatchWord.Height, Keywords: orEmpty(s.MatchWord.Keywords)},
		BoxEatsPlants:   defaultsSize{Width: s.BoxEatsPlants.Width, Height: s.BoxEatsPlants.Height},
		Elements:        []defaultsElement{},
		Server:          defaultsServer{Listen: s.Server.Listen},
	}
	for _, e := range s.Elements {
		doc.Elements = append(doc.Elements, defaultsElement{
			Name:         e.Name,
			DoubleDamage: orEmpty(e.DoubleDamage),
			HalfDamage:   orEmpty(e.HalfDamage),
		})
	}
	return doc
}

func orEmpty(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
