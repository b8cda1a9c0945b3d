package glicko2

import (
	"math"
	"sort"
)

// MatchQuality measures how balanced a prospective match is. Each score lies
// in [0, 1]: 1 means a 50/50 expected outcome, 0 a foregone conclusion. The
// scores use the single-game Glicko expected-score formula with the
// configured initial deviation as scaling constant, not the parties' actual
// deviations.
type MatchQuality struct {
	// Opponents holds one quality score per opponent, in input order.
	Opponents []float64

	Min     float64
	Max     float64
	Average float64
	// Median of the scores; an even-length list averages the middle two.
	Median float64
	// Strongest is the quality against the opponent with the highest raw
	// rating, ties broken by first encountered.
	Strongest float64
}

// CalculateMatchQuality estimates the quality of a match between the player
// and each opponent. Neither argument is mutated.
func (cfg Config) CalculateMatchQuality(player *Rating, opponents []*Rating) (MatchQuality, error) {
	if len(opponents) == 0 {
		return MatchQuality{}, ErrEmptyOpponentSet
	}

	quality := MatchQuality{
		Opponents: make([]float64, len(opponents)),
		Min:       math.Inf(1),
		Max:       math.Inf(-1),
	}
	strongest := 0
	var sum float64
	for i, opp := range opponents {
		e := 1 / (1 + math.Pow(10, (opp.Rating-player.Rating)/(2*cfg.InitialDeviation)))
		q := (0.5 - math.Abs(e-0.5)) / 0.5
		quality.Opponents[i] = q
		quality.Min = math.Min(quality.Min, q)
		quality.Max = math.Max(quality.Max, q)
		sum += q
		if opp.Rating > opponents[strongest].Rating {
			strongest = i
		}
	}
	quality.Average = sum / float64(len(opponents))
	quality.Strongest = quality.Opponents[strongest]

	sorted := append([]float64(nil), quality.Opponents...)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		quality.Median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		quality.Median = sorted[mid]
	}

	return quality, nil
}

// CalculateMatchQuality applies the process-wide configuration.
func CalculateMatchQuality(player *Rating, opponents []*Rating) (MatchQuality, error) {
	return defaultConfig.CalculateMatchQuality(player, opponents)
}
