package glicko2

import (
	"fmt"
	"math"
)

// g weights an opponent's influence down by their rating deviation.
func g(phi float64) float64 {
	return 1 / math.Sqrt(1+3*phi*phi/(math.Pi*math.Pi))
}

// expectedScore is the expected outcome of a game between a player with
// rating mu and an opponent with rating oppMu and deviation oppPhi, all on
// the internal scale.
func expectedScore(mu, oppMu, oppPhi float64) float64 {
	return 1 / (1 + math.Exp(-g(oppPhi)*(mu-oppMu)))
}

// CalculateRating returns the player's rating after one rating period in
// which they scored outcomes[j] against opponents[j]. The arguments are not
// mutated; opponents' volatilities are irrelevant and ignored. A player with
// no games only has their deviation inflated.
func (cfg Config) CalculateRating(
	player *Rating,
	opponents []*Rating,
	outcomes []float64,
) (Rating, error) {
	if len(opponents) != len(outcomes) {
		return Rating{}, fmt.Errorf(
			"%w: %d opponents, %d outcomes",
			ErrInvalidArgument, len(opponents), len(outcomes),
		)
	}
	if len(opponents) == 0 {
		return cfg.CalculateRatingDidNotCompete(player), nil
	}

	p := ToInternalScale(*player)

	// Estimated variance v of the player's performance and the outcome sum
	// the improvement estimate delta is derived from.
	var vInv, dSum float64
	for j, opp := range opponents {
		o := ToInternalScale(*opp)
		gj := g(o.Deviation)
		e := expectedScore(p.Rating, o.Rating, o.Deviation)
		vInv += gj * gj * e * (1 - e)
		dSum += gj * (outcomes[j] - e)
	}
	v := 1 / vInv
	delta := v * dSum

	sigmaPrime, err := cfg.newVolatility(p.Deviation, p.Volatility, v, delta)
	if err != nil {
		return Rating{}, err
	}

	// Deviation inflated by the new volatility, then combined with the
	// period's information; rating moved by the precision-weighted outcomes.
	phiStar := math.Sqrt(p.Deviation*p.Deviation + sigmaPrime*sigmaPrime)
	phiPrime := 1 / math.Sqrt(1/(phiStar*phiStar)+1/v)
	muPrime := p.Rating + phiPrime*phiPrime*dSum

	return ToPublicScale(Rating{
		Rating:     muPrime,
		Deviation:  phiPrime,
		Volatility: sigmaPrime,
	}), nil
}

// CalculateRatingDidNotCompete returns the player's rating after a period
// without games: the deviation grows by the volatility, rating and
// volatility stay put.
func (cfg Config) CalculateRatingDidNotCompete(player *Rating) Rating {
	p := ToInternalScale(*player)
	p.Deviation = math.Sqrt(p.Deviation*p.Deviation + p.Volatility*p.Volatility)
	return ToPublicScale(p)
}

// UpdateRating overwrites the player's rating with the result of
// CalculateRating. On error the player is left untouched.
func (cfg Config) UpdateRating(
	player *Rating,
	opponents []*Rating,
	outcomes []float64,
) error {
	updated, err := cfg.CalculateRating(player, opponents, outcomes)
	if err != nil {
		return err
	}
	*player = updated
	return nil
}

// UpdateRatingDidNotCompete overwrites the player's rating with the result
// of CalculateRatingDidNotCompete.
func (cfg Config) UpdateRatingDidNotCompete(player *Rating) {
	*player = cfg.CalculateRatingDidNotCompete(player)
}

// UpdateRatings applies UpdateRating to each match in list order. Matches
// are independent: a failed match leaves its player untouched and does not
// stop the rest. The first error encountered is returned.
func (cfg Config) UpdateRatings(matches []Match) error {
	var firstErr error
	for _, m := range matches {
		if err := cfg.UpdateRating(m.Player, m.Opponents, m.Outcomes); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// CalculateRating applies the process-wide configuration.
func CalculateRating(player *Rating, opponents []*Rating, outcomes []float64) (Rating, error) {
	return defaultConfig.CalculateRating(player, opponents, outcomes)
}

// CalculateRatingDidNotCompete applies the process-wide configuration.
func CalculateRatingDidNotCompete(player *Rating) Rating {
	return defaultConfig.CalculateRatingDidNotCompete(player)
}

// UpdateRating applies the process-wide configuration.
func UpdateRating(player *Rating, opponents []*Rating, outcomes []float64) error {
	return defaultConfig.UpdateRating(player, opponents, outcomes)
}

// UpdateRatingDidNotCompete applies the process-wide configuration.
func UpdateRatingDidNotCompete(player *Rating) {
	defaultConfig.UpdateRatingDidNotCompete(player)
}

// UpdateRatings applies the process-wide configuration.
func UpdateRatings(matches []Match) error {
	return defaultConfig.UpdateRatings(matches)
}
