package glicko2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMatchQualityEvenMatch(t *testing.T) {
	player := &Rating{Rating: 1500, Deviation: 350, Volatility: 0.06}
	opponent := &Rating{Rating: 1500, Deviation: 80, Volatility: 0.06}

	quality, err := CalculateMatchQuality(player, []*Rating{opponent})
	require.NoError(t, err)

	assert.Equal(t, 1.0, quality.Opponents[0])
	assert.Equal(t, 1.0, quality.Min)
	assert.Equal(t, 1.0, quality.Max)
	assert.Equal(t, 1.0, quality.Average)
	assert.Equal(t, 1.0, quality.Median)
	assert.Equal(t, 1.0, quality.Strongest)
}

func TestCalculateMatchQualityBounds(t *testing.T) {
	player := &Rating{Rating: 1500, Deviation: 350, Volatility: 0.06}
	opponents := []*Rating{
		{Rating: 700, Deviation: 350, Volatility: 0.06},
		{Rating: 1500, Deviation: 350, Volatility: 0.06},
		{Rating: 3200, Deviation: 350, Volatility: 0.06},
	}

	quality, err := CalculateMatchQuality(player, opponents)
	require.NoError(t, err)

	for i, q := range quality.Opponents {
		assert.GreaterOrEqual(t, q, 0.0, "opponent %d", i)
		assert.LessOrEqual(t, q, 1.0, "opponent %d", i)
	}
	// A wildly mismatched pairing is worth less than an even one.
	assert.Less(t, quality.Opponents[2], quality.Opponents[1])
}

func TestCalculateMatchQualityAggregates(t *testing.T) {
	player := &Rating{Rating: 1500, Deviation: 350, Volatility: 0.06}
	weak := &Rating{Rating: 1100, Deviation: 350, Volatility: 0.06}
	even := &Rating{Rating: 1500, Deviation: 350, Volatility: 0.06}
	strong := &Rating{Rating: 1900, Deviation: 350, Volatility: 0.06}

	quality, err := CalculateMatchQuality(player, []*Rating{weak, even, strong})
	require.NoError(t, err)

	assert.Equal(t, quality.Max, 1.0)
	assert.Equal(t, quality.Min, quality.Opponents[0])
	// Equidistant opponents score the same, so their quality is the median.
	assert.Equal(t, quality.Opponents[0], quality.Opponents[2])
	assert.Equal(t, quality.Opponents[2], quality.Median)
	assert.InDelta(t, (quality.Opponents[0]+quality.Opponents[1]+quality.Opponents[2])/3, quality.Average, 1e-12)
	// Strongest opponent by raw rating is the 1900.
	assert.Equal(t, quality.Opponents[2], quality.Strongest)
}

func TestCalculateMatchQualityMedianEvenLength(t *testing.T) {
	player := &Rating{Rating: 1500, Deviation: 350, Volatility: 0.06}
	opponents := []*Rating{
		{Rating: 1500, Deviation: 350, Volatility: 0.06},
		{Rating: 1600, Deviation: 350, Volatility: 0.06},
		{Rating: 1700, Deviation: 350, Volatility: 0.06},
		{Rating: 1800, Deviation: 350, Volatility: 0.06},
	}

	quality, err := CalculateMatchQuality(player, opponents)
	require.NoError(t, err)

	expected := (quality.Opponents[1] + quality.Opponents[2]) / 2
	assert.InDelta(t, expected, quality.Median, 1e-12)
}

func TestCalculateMatchQualityStrongestTieBreak(t *testing.T) {
	player := &Rating{Rating: 1500, Deviation: 350, Volatility: 0.06}
	firstOfTie := &Rating{Rating: 1800, Deviation: 350, Volatility: 0.06}
	secondOfTie := &Rating{Rating: 1800, Deviation: 350, Volatility: 0.06}

	quality, err := CalculateMatchQuality(player, []*Rating{firstOfTie, secondOfTie})
	require.NoError(t, err)

	assert.Equal(t, quality.Opponents[0], quality.Strongest)
}

func TestCalculateMatchQualityNoOpponents(t *testing.T) {
	_, err := CalculateMatchQuality(NewRating(), nil)

	assert.ErrorIs(t, err, ErrEmptyOpponentSet)
}
