package element

import "strings"

// Multipliers returned by Chart.Multiplier.
const (
	Double = 2.0
	Half   = 0.5
	Normal = 1.0
)

// minResistance is the floor of ResistanceAccuracy.
const minResistance = 0.15

// Entry lists, for one attacking element, the defending elements that take
// double or half damage from it.
type Entry struct {
	Element string
	Double  []string
	Half    []string
}

// Chart is an ordered elemental damage chart. Elements missing from the
// chart always deal normal damage.
type Chart []Entry

// DefaultChart returns the chart used by Adventure Mode.
//
// The TERRA entry carries the single defender "ELECTRIC, DARK", so TERRA
// deals normal damage to both ELECTRIC and DARK.
func DefaultChart() Chart {
	return Chart{
		{Element: "TERRA", Double: []string{"ELECTRIC, DARK"}, Half: []string{"METAL", "WAR"}},
		{Element: "FLAME", Double: []string{"NATURE", "ICE"}, Half: []string{"SEA", "WAR"}},
		{Element: "SEA", Double: []string{"FLAME", "WAR"}, Half: []string{"NATURE", "ELECTRIC"}},
		{Element: "NATURE", Double: []string{"SEA", "LIGHT"}, Half: []string{"FLAME", "ICE"}},
		{Element: "ELECTRIC", Double: []string{"SEA", "METAL"}, Half: []string{"TERRA", "LIGHT"}},
		{Element: "ICE", Double: []string{"NATURE", "WAR"}, Half: []string{"FLAME", "METAL"}},
		{Element: "METAL", Double: []string{"TERRA", "ICE"}, Half: []string{"ELECTRIC", "DARK"}},
		{Element: "DARK", Double: []string{"METAL", "LIGHT"}, Half: []string{"TERRA"}},
		{Element: "LIGHT", Double: []string{"ELECTRIC", "DARK"}, Half: []string{"NATURE"}},
		{Element: "WAR", Double: []string{"TERRA", "FLAME"}, Half: []string{"SEA", "ICE"}},
		{Element: "PURE", Double: []string{"LEGEND"}, Half: []string{"PRIMAL"}},
		{Element: "LEGEND", Double: []string{"PRIMAL"}, Half: []string{"PURE"}},
		{Element: "PRIMAL", Double: []string{"PURE"}, Half: []string{"LEGEND"}},
		{Element: "WIND", Double: []string{"WIND"}},
	}
}

// AncientElements returns the elements without strengths or weaknesses.
func AncientElements() []string {
	return []string{"BEAUTY", "MAGIC", "CHAOS", "HAPPY", "DREAM", "SOUL"}
}

// Lookup returns the entry for an attacking element.
func (c Chart) Lookup(element string) (Entry, bool) {
	for _, e := range c {
		if e.Element == element {
			return e, true
		}
	}
	return Entry{}, false
}

// Multiplier returns the damage multiplier for attacker hitting defender.
func (c Chart) Multiplier(attacker, defender string) float64 {
	e, ok := c.Lookup(attacker)
	if !ok {
		return Normal
	}
	if contains(e.Double, defender) {
		return Double
	}
	if contains(e.Half, defender) {
		return Half
	}
	return Normal
}

// Table lays the chart out for display: a header row of attacking elements
// followed by the double, half and normal damage rows. A defender named as a
// comma-separated list is printed one element per line.
func (c Chart) Table() [][]string {
	header := []string{"ATTACKING\nELEMENT"}
	double := []string{"DOUBLE\nDAMAGE"}
	half := []string{"HALF\nDAMAGE"}
	normal := []string{"NORMAL\nDAMAGE"}

	for _, e := range c {
		header = append(header, e.Element)
		double = append(double, joinOrNA(e.Double))
		half = append(half, joinOrNA(e.Half))
		normal = append(normal, "OTHER")
	}
	return [][]string{header, double, half, normal}
}

// ResistanceAccuracy returns the effective resistance of a defender against
// an attacker's accuracy, never lower than 0.15.
func ResistanceAccuracy(accuracy, resistance float64) float64 {
	if resistance-accuracy <= minResistance {
		return minResistance
	}
	return resistance - accuracy
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func joinOrNA(list []string) string {
	if len(list) == 0 {
		return "N/A"
	}
	return strings.ReplaceAll(strings.Join(list, "\n"), ", ", "\n")
}
