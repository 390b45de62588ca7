package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiplier(t *testing.T) {
	chart := DefaultChart()

	testCases := []struct {
		attacker string
		defender string
		expected float64
	}{
		{"FLAME", "NATURE", Double},
		{"FLAME", "ICE", Double},
		{"FLAME", "SEA", Half},
		{"FLAME", "TERRA", Normal},
		{"SEA", "ELECTRIC", Half},
		{"METAL", "DARK", Half},
		{"DARK", "TERRA", Half},
		{"DARK", "LIGHT", Double},
		{"LIGHT", "NATURE", Half},
		{"PURE", "LEGEND", Double},
		{"LEGEND", "PURE", Half},
		{"PRIMAL", "PURE", Double},
		{"WIND", "WIND", Double},
		{"WIND", "TERRA", Normal},
		{"TERRA", "METAL", Half},
		{"TERRA", "WAR", Half},
		// The TERRA chart entry names "ELECTRIC, DARK" as one element.
		{"TERRA", "ELECTRIC", Normal},
		{"TERRA", "DARK", Normal},
		{"TERRA", "ELECTRIC, DARK", Double},
		{"BEAUTY", "FLAME", Normal},
		{"SOUL", "SOUL", Normal},
	}

	for _, tc := range testCases {
		t.Run(tc.attacker+"->"+tc.defender, func(t *testing.T) {
			assert.Equal(t, tc.expected, chart.Multiplier(tc.attacker, tc.defender))
		})
	}
}

func TestLookup(t *testing.T) {
	chart := DefaultChart()

	e, ok := chart.Lookup("ICE")
	require.True(t, ok)
	assert.Equal(t, []string{"NATURE", "WAR"}, e.Double)

	_, ok = chart.Lookup("MAGIC")
	assert.False(t, ok)
}

func TestTable(t *testing.T) {
	table := DefaultChart().Table()
	require.Len(t, table, 4)

	for _, row := range table {
		assert.Len(t, row, 15)
	}
	assert.Equal(t, "ATTACKING\nELEMENT", table[0][0])
	assert.Equal(t, "TERRA", table[0][1])
	assert.Equal(t, "WIND", table[0][14])
	assert.Equal(t, "NATURE\nICE", table[1][2])
	assert.Equal(t, "ELECTRIC\nDARK", table[1][1], "TERRA lists its defenders one per line")
	assert.Equal(t, "N/A", table[2][14], "WIND has no half-damage defenders")
	assert.Equal(t, "OTHER", table[3][7])
}

func TestResistanceAccuracy(t *testing.T) {
	testCases := []struct {
		name       string
		accuracy   float64
		resistance float64
		expected   float64
	}{
		{name: "well above floor", accuracy: 0.2, resistance: 0.9, expected: 0.7},
		{name: "below floor", accuracy: 0.8, resistance: 0.5, expected: 0.15},
		{name: "exactly at floor", accuracy: 0.25, resistance: 0.4, expected: 0.15},
		{name: "zero accuracy", accuracy: 0, resistance: 0.5, expected: 0.5},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, ResistanceAccuracy(tc.accuracy, tc.resistance), 1e-9)
		})
	}
}

func TestAncientElementsHaveNoEntries(t *testing.T) {
	chart := DefaultChart()
	for _, name := range AncientElements() {
		_, ok := chart.Lookup(name)
		assert.False(t, ok, "%s should not be in the chart", name)
	}
}
