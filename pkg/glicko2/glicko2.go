// Package glicko2 implements the Glicko-2 rating system described in
// Professor Mark E. Glickman's paper (https://www.glicko.net/glicko/glicko2.pdf).
//
// A player's strength is tracked as a triple of rating, rating deviation
// and volatility. All games of one rating period are batched into a single
// update per player. Ratings are kept on the public Glicko scale; the
// internal Glicko-2 scale is used only during computation.
package glicko2

// Game outcomes from the perspective of the rated player.
const (
	Loss float64 = 0.0
	Draw float64 = 0.5
	Win  float64 = 1.0
)

// Config holds the system tunables. Tau constrains how much the volatility
// may change per period; smaller values suit games decided by skill more
// than luck. The Initial* values seed ratings for unrated players.
type Config struct {
	Tau               float64
	InitialRating     float64
	InitialDeviation  float64
	InitialVolatility float64
}

// DefaultConfig returns the tunables recommended in the Glicko-2 paper.
func DefaultConfig() Config {
	return Config{
		Tau:               0.75,
		InitialRating:     1500,
		InitialDeviation:  350,
		InitialVolatility: 0.06,
	}
}

var defaultConfig = DefaultConfig()

// SetConfig replaces the process-wide configuration used by the package-level
// functions. Call it once at startup, before any computation; mutating the
// configuration while another goroutine is mid-computation is a data race.
func SetConfig(cfg Config) {
	defaultConfig = cfg
}

// CurrentConfig returns the process-wide configuration.
func CurrentConfig() Config {
	return defaultConfig
}
