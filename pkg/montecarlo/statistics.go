package montecarlo

import "math"

// Closed-form statistical inference for a binomial acyclicity
// proportion. The Wilson score interval is used instead of the naive
// normal approximation because it stays numerically stable near p = 0
// and p = 1, where the Wald interval collapses or escapes [0, 1].

// zTwoSided returns the two-sided standard normal quantile for a
// confidence level, e.g. 0.95 -> 1.96.
func zTwoSided(confidence float64) float64 {
	return math.Sqrt2 * math.Erfinv(confidence)
}

// normalCDF is the standard normal cumulative distribution function
func normalCDF(x float64) float64 {
	return 0.5 * (1 + math.Erf(x/math.Sqrt2))
}

// wilsonInterval computes the Wilson score confidence interval for a
// proportion p observed over n trials, clipped to [0, 1].
func wilsonInterval(p float64, n int, confidence float64) (lower, upper float64) {
	z := zTwoSided(confidence)
	nf := float64(n)
	denom := 1 + z*z/nf
	center := (p + z*z/(2*nf)) / denom
	halfwidth := z * math.Sqrt(p*(1-p)/nf+z*z/(4*nf*nf)) / denom
	return clamp01(center - halfwidth), clamp01(center + halfwidth)
}

// cohenH is Cohen's h effect size between two proportions
func cohenH(p1, p2 float64) float64 {
	return 2 * (math.Asin(math.Sqrt(p1)) - math.Asin(math.Sqrt(p2)))
}

// statisticalPower estimates the power of detecting the departure of p
// from the 0.5 null baseline over n trials at significance level alpha,
// via the standard non-central normal approximation.
func statisticalPower(p float64, n int, alpha float64) float64 {
	h := math.Abs(cohenH(p, 0.5))
	z := zTwoSided(1 - alpha)
	return clamp01(normalCDF(h*math.Sqrt(float64(n)) - z))
}

// bayesianPosterior updates a prior belief in structural soundness
// given the observed acyclicity likelihood. A zero likelihood yields
// exactly zero, never NaN.
func bayesianPosterior(likelihood, prior float64) float64 {
	if likelihood == 0 {
		return 0
	}
	denom := likelihood*prior + (1-likelihood)*(1-prior)
	if denom == 0 {
		return 0
	}
	return clamp01(likelihood * prior / denom)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
