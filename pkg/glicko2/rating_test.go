package glicko2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRatingDefaults(t *testing.T) {
	r := NewRating()
	assert.Equal(t, 1500.0, r.Rating)
	assert.Equal(t, 350.0, r.Deviation)
	assert.Equal(t, 0.06, r.Volatility)
}

func TestNewRatingFromConfig(t *testing.T) {
	cfg := Config{
		Tau:               0.5,
		InitialRating:     1200,
		InitialDeviation:  250,
		InitialVolatility: 0.05,
	}
	r := cfg.NewRating()
	assert.Equal(t, 1200.0, r.Rating)
	assert.Equal(t, 250.0, r.Deviation)
	assert.Equal(t, 0.05, r.Volatility)
}

func TestCopyIsIndependent(t *testing.T) {
	original := &Rating{Rating: 1850, Deviation: 120, Volatility: 0.059}
	copied := original.Copy()
	require.Equal(t, *original, *copied)

	copied.Rating = 900
	assert.Equal(t, 1850.0, original.Rating)
	assert.NotSame(t, original, copied)
}

func TestScaleRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		rating Rating
	}{{
		"default player",
		Rating{Rating: 1500, Deviation: 350, Volatility: 0.06},
	}, {
		"strong player",
		Rating{Rating: 2412.5, Deviation: 41.3, Volatility: 0.0512},
	}, {
		"provisional player",
		Rating{Rating: 843, Deviation: 349.9, Volatility: 0.061},
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			roundTripped := ToPublicScale(ToInternalScale(test.rating))
			assert.InDelta(t, test.rating.Rating, roundTripped.Rating, 1e-9)
			assert.InDelta(t, test.rating.Deviation, roundTripped.Deviation, 1e-9)
			assert.Equal(t, test.rating.Volatility, roundTripped.Volatility)
		})
	}
}

func TestToInternalScale(t *testing.T) {
	internal := ToInternalScale(Rating{Rating: 1500, Deviation: 173.7178, Volatility: 0.06})
	assert.InDelta(t, 0.0, internal.Rating, 1e-12)
	assert.InDelta(t, 1.0, internal.Deviation, 1e-12)
	assert.Equal(t, 0.06, internal.Volatility)
}
