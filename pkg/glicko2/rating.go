package glicko2

// Ratio between the public Glicko scale and the internal Glicko-2 scale.
const conversionFactor = 173.7178

// Rating is the belief about a competitor's skill: a point estimate, the
// uncertainty of that estimate (one standard deviation) and the expected
// degree of fluctuation over time. Deviation and Volatility are always
// positive.
type Rating struct {
	Rating     float64
	Deviation  float64
	Volatility float64
}

// NewRating returns an unrated player seeded from the given tunables.
func (cfg Config) NewRating() *Rating {
	return &Rating{
		Rating:     cfg.InitialRating,
		Deviation:  cfg.InitialDeviation,
		Volatility: cfg.InitialVolatility,
	}
}

// NewRating returns an unrated player seeded from the process-wide defaults.
func NewRating() *Rating {
	return defaultConfig.NewRating()
}

// Copy returns an independent copy of the rating.
func (r *Rating) Copy() *Rating {
	c := *r
	return &c
}

// ToInternalScale converts a rating from the public Glicko scale to the
// Glicko-2 scale used internally, where ratings are centered at 0.
// Volatility is the same on both scales.
func ToInternalScale(r Rating) Rating {
	return Rating{
		Rating:     (r.Rating - 1500) / conversionFactor,
		Deviation:  r.Deviation / conversionFactor,
		Volatility: r.Volatility,
	}
}

// ToPublicScale is the inverse of ToInternalScale.
func ToPublicScale(r Rating) Rating {
	return Rating{
		Rating:     conversionFactor*r.Rating + 1500,
		Deviation:  conversionFactor * r.Deviation,
		Volatility: r.Volatility,
	}
}
