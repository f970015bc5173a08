package sense_test

import (
	"math"
	"testing"

	"github.com/senseweave/watset/sense"
	"github.com/senseweave/watset/simil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisambiguatePicksBestSense(t *testing.T) {
	bank0 := sense.New("bank", 0)
	bank1 := sense.New("bank", 1)

	inv := sense.Inventory[string]{
		"bank": {
			bank0: {"river": 1, "water": 1},
			bank1: {"money": 1, "loan": 1},
		},
	}

	context := map[string]float64{"bank": 1, "money": 1}
	got, err := sense.Disambiguate(inv, simil.Cosine[string], context, map[string]struct{}{"river": {}})
	require.NoError(t, err)
	assert.Equal(t, map[sense.ID[string]]float64{bank1: 1}, got)
}

func TestDisambiguateExcludesSelf(t *testing.T) {
	x0 := sense.New("x", 0)
	inv := sense.Inventory[string]{"x": {x0: {}}}

	context := map[string]float64{"x": 1}
	got, err := sense.Disambiguate(inv, simil.Cosine[string], context, map[string]struct{}{"x": {}})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDisambiguateSkipsUnknownItem(t *testing.T) {
	inv := sense.Inventory[string]{}
	context := map[string]float64{"unknown": 1}
	got, err := sense.Disambiguate(inv, simil.Cosine[string], context, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDisambiguateUnresolvedOnNaNSimilarity(t *testing.T) {
	y0 := sense.New("y", 0)
	inv := sense.Inventory[string]{"y": {y0: {"a": 1}}}
	context := map[string]float64{"y": 1}

	nanSim := func(a, b map[string]float64) float64 { return math.NaN() }
	_, err := sense.Disambiguate(inv, nanSim, context, nil)
	require.ErrorIs(t, err, sense.ErrSenseUnresolved)
}

func TestDisambiguatePrefersFiniteSenseOverEarlierNaNSense(t *testing.T) {
	y0 := sense.New("y", 0)
	y1 := sense.New("y", 1)
	inv := sense.Inventory[string]{
		"y": {
			y0: {"nan-marker": 1},
			y1: {"a": 1},
		},
	}
	context := map[string]float64{"y": 1, "a": 1}

	// y0 sorts first (lowest index) and scores NaN; y1 scores a real
	// cosine similarity. The finite score must win even though the NaN
	// score was seen first.
	mixedSim := func(a, b map[string]float64) float64 {
		if _, ok := b["nan-marker"]; ok {
			return math.NaN()
		}
		return simil.Cosine(a, b)
	}

	got, err := sense.Disambiguate(inv, mixedSim, context, nil)
	require.NoError(t, err)
	assert.Equal(t, map[sense.ID[string]]float64{y1: 1}, got)
}

func TestDisambiguateTieBreaksByLowestIndex(t *testing.T) {
	y0 := sense.New("y", 0)
	y1 := sense.New("y", 1)
	inv := sense.Inventory[string]{
		"y": {
			y1: {"a": 1},
			y0: {"a": 1},
		},
	}
	context := map[string]float64{"y": 1, "a": 1}

	got, err := sense.Disambiguate(inv, simil.Cosine[string], context, nil)
	require.NoError(t, err)
	assert.Equal(t, map[sense.ID[string]]float64{y0: 1}, got)
}
