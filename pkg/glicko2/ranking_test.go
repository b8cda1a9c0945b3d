package glicko2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveMatches(t *testing.T) {
	first := &Rating{Rating: 1900, Deviation: 60, Volatility: 0.06}
	second := &Rating{Rating: 1700, Deviation: 80, Volatility: 0.06}
	alsoSecond := &Rating{Rating: 1650, Deviation: 120, Volatility: 0.06}
	last := &Rating{Rating: 1400, Deviation: 200, Volatility: 0.06}
	ranking := Ranking{
		{first},
		{second, alsoSecond},
		{last},
	}

	matches, err := DeriveMatches(ranking, nil)
	require.NoError(t, err)
	require.Len(t, matches, 4)

	byPlayer := make(map[*Rating]Match)
	for _, m := range matches {
		byPlayer[m.Player] = m
	}

	assert.Equal(t, []*Rating{second, alsoSecond, last}, byPlayer[first].Opponents)
	assert.Equal(t, []float64{Win, Win, Win}, byPlayer[first].Outcomes)

	assert.Equal(t, []*Rating{first, alsoSecond, last}, byPlayer[second].Opponents)
	assert.Equal(t, []float64{Loss, Draw, Win}, byPlayer[second].Outcomes)

	assert.Equal(t, []*Rating{first, second, last}, byPlayer[alsoSecond].Opponents)
	assert.Equal(t, []float64{Loss, Draw, Win}, byPlayer[alsoSecond].Outcomes)

	assert.Equal(t, []*Rating{first, second, alsoSecond}, byPlayer[last].Opponents)
	assert.Equal(t, []float64{Loss, Loss, Loss}, byPlayer[last].Outcomes)
}

// If X outranks Y, X's match records a win against Y and Y's match records
// a loss against X.
func TestDeriveMatchesSymmetry(t *testing.T) {
	winner := NewRating()
	loser := NewRating()

	matches, err := DeriveMatches(Ranking{{winner}, {loser}}, nil)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	for _, m := range matches {
		require.Len(t, m.Opponents, 1)
		if m.Player == winner {
			assert.Same(t, loser, m.Opponents[0])
			assert.Equal(t, Win, m.Outcomes[0])
		} else {
			assert.Same(t, winner, m.Opponents[0])
			assert.Equal(t, Loss, m.Outcomes[0])
		}
	}
}

func TestDeriveMatchesFilter(t *testing.T) {
	first := &Rating{Rating: 1800, Deviation: 70, Volatility: 0.06}
	second := &Rating{Rating: 1600, Deviation: 90, Volatility: 0.06}
	third := &Rating{Rating: 1450, Deviation: 110, Volatility: 0.06}

	matches, err := DeriveMatches(Ranking{{first}, {second}, {third}}, second)
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(t, second, matches[0].Player)
	assert.Equal(t, []*Rating{first, third}, matches[0].Opponents)
	assert.Equal(t, []float64{Loss, Win}, matches[0].Outcomes)
}

func TestDeriveMatchesDuplicatePlayer(t *testing.T) {
	player := NewRating()
	other := NewRating()

	_, err := DeriveMatches(Ranking{{player, other}, {player}}, nil)

	assert.ErrorIs(t, err, ErrDuplicatePlayer)
}

// Two distinct players with identical values are not duplicates; identity
// is by pointer, not by rating.
func TestDeriveMatchesEqualValuesAreDistinct(t *testing.T) {
	a := &Rating{Rating: 1500, Deviation: 350, Volatility: 0.06}
	b := &Rating{Rating: 1500, Deviation: 350, Volatility: 0.06}

	matches, err := DeriveMatches(Ranking{{a}, {b}}, nil)

	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestDeriveMatchesFilterNotFound(t *testing.T) {
	_, err := DeriveMatches(Ranking{{NewRating()}, {NewRating()}}, NewRating())

	assert.ErrorIs(t, err, ErrPlayerNotFound)
}
