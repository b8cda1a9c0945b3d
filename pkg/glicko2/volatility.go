package glicko2

import "math"

const (
	// Convergence tolerance of the volatility iteration (epsilon in the paper).
	convergenceTolerance = 1e-6

	// The paper gives no bound for either loop below; a pathological
	// tau/phi/sigma/v combination must fail instead of spinning forever.
	maxBracketSteps = 100
	maxIterations   = 1000
)

// newVolatility solves for the post-period volatility sigma' given the
// pre-period deviation phi, volatility sigma, estimated variance v and
// estimated improvement delta, all on the internal scale. It finds the zero
// of the volatility function from step 5 of the paper with the Illinois
// variant of regula falsi.
func (cfg Config) newVolatility(phi, sigma, v, delta float64) (float64, error) {
	a := math.Log(sigma * sigma)
	tau2 := cfg.Tau * cfg.Tau
	delta2 := delta * delta
	phi2v := phi*phi + v

	f := func(x float64) float64 {
		ex := math.Exp(x)
		return ex*(delta2-phi2v-ex)/(2*(phi2v+ex)*(phi2v+ex)) - (x-a)/tau2
	}

	// Initial bracket: A is ln(sigma^2), where f is non-positive in the
	// probing branch; B either the analytic zero of the first term or a
	// probe below A where f has the opposite sign.
	A := a
	var B float64
	if delta2 > phi2v {
		B = math.Log(delta2 - phi2v)
	} else {
		k := 1
		for f(a-float64(k)*cfg.Tau) < 0 {
			k++
			if k > maxBracketSteps {
				return 0, ErrNonConvergence
			}
		}
		B = a - float64(k)*cfg.Tau
	}

	fA, fB := f(A), f(B)
	for i := 0; math.Abs(B-A) > convergenceTolerance; i++ {
		if i > maxIterations {
			return 0, ErrNonConvergence
		}
		C := A + (A-B)*fA/(fB-fA)
		fC := f(C)
		if fC*fB < 0 {
			A, fA = B, fB
		} else {
			// Illinois modification: halve the retained endpoint value so
			// a stagnant bracket still converges.
			fA /= 2
		}
		B, fB = C, fC
	}

	return math.Exp(A / 2), nil
}
