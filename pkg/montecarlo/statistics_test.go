package montecarlo

import (
	"math"
	"testing"
)

func TestZTwoSided(t *testing.T) {
	cases := []struct {
		confidence float64
		want       float64
	}{
		{0.95, 1.959964},
		{0.99, 2.575829},
		{0.90, 1.644854},
	}
	for _, tc := range cases {
		if got := zTwoSided(tc.confidence); math.Abs(got-tc.want) > 1e-4 {
			t.Errorf("zTwoSided(%v) = %v, want %v", tc.confidence, got, tc.want)
		}
	}
}

func TestWilsonInterval_KnownValues(t *testing.T) {
	lower, upper := wilsonInterval(0.5, 100, 0.95)
	if math.Abs(lower-0.403831) > 1e-3 {
		t.Errorf("lower = %v, want ~0.4038", lower)
	}
	if math.Abs(upper-0.596169) > 1e-3 {
		t.Errorf("upper = %v, want ~0.5962", upper)
	}
}

func TestWilsonInterval_StableAtBoundaries(t *testing.T) {
	// At p = 1 the naive Wald interval collapses to a point; Wilson
	// keeps a sensible lower bound and stays within [0, 1].
	lower, upper := wilsonInterval(1.0, 100, 0.95)
	if upper > 1.0 || upper < 0.999 {
		t.Errorf("upper = %v, want 1.0", upper)
	}
	if lower < 0.95 || lower >= 1.0 {
		t.Errorf("lower = %v, want in [0.95, 1)", lower)
	}

	lower, upper = wilsonInterval(0.0, 100, 0.95)
	if lower != 0 {
		t.Errorf("lower = %v, want 0", lower)
	}
	if upper <= 0 || upper > 0.05 {
		t.Errorf("upper = %v, want small positive bound", upper)
	}
}

func TestWilsonInterval_BracketsProportion(t *testing.T) {
	for _, p := range []float64{0, 0.01, 0.25, 0.5, 0.75, 0.99, 1} {
		for _, n := range []int{1, 10, 100, 10000} {
			lower, upper := wilsonInterval(p, n, 0.95)
			if lower > p || upper < p {
				t.Errorf("interval [%v, %v] does not bracket p=%v at n=%d", lower, upper, p, n)
			}
			if lower < 0 || upper > 1 {
				t.Errorf("interval [%v, %v] escapes [0,1]", lower, upper)
			}
		}
	}
}

func TestCohenH(t *testing.T) {
	if h := cohenH(0.5, 0.5); h != 0 {
		t.Errorf("cohenH(0.5, 0.5) = %v, want 0", h)
	}
	// h(1, 0.5) = 2*(asin(1) - asin(sqrt(0.5))) = pi - pi/2 = pi/2
	if h := cohenH(1, 0.5); math.Abs(h-math.Pi/2) > 1e-9 {
		t.Errorf("cohenH(1, 0.5) = %v, want pi/2", h)
	}
}

func TestStatisticalPower(t *testing.T) {
	// No effect means power collapses to roughly the significance level
	if p := statisticalPower(0.5, 100, 0.05); p > 0.05 {
		t.Errorf("power with zero effect = %v, want <= alpha", p)
	}
	// A maximal effect over a large sample is detected almost surely
	if p := statisticalPower(1.0, 1000, 0.05); p < 0.999 {
		t.Errorf("power with maximal effect = %v, want ~1", p)
	}
	for _, obs := range []float64{0, 0.2, 0.5, 0.8, 1} {
		p := statisticalPower(obs, 50, 0.05)
		if p < 0 || p > 1 {
			t.Errorf("power out of range: %v", p)
		}
	}
}

func TestBayesianPosterior(t *testing.T) {
	// Zero likelihood is exactly zero, never NaN
	if post := bayesianPosterior(0, 0.5); post != 0 {
		t.Errorf("posterior with zero likelihood = %v, want exactly 0", post)
	}
	// Uninformative prior and likelihood stay at 0.5
	if post := bayesianPosterior(0.5, 0.5); math.Abs(post-0.5) > 1e-12 {
		t.Errorf("posterior(0.5, 0.5) = %v, want 0.5", post)
	}
	// With a flat 0.5 prior the posterior equals the likelihood
	if post := bayesianPosterior(0.8, 0.5); math.Abs(post-0.8) > 1e-12 {
		t.Errorf("posterior(0.8, 0.5) = %v, want 0.8", post)
	}
	if post := bayesianPosterior(1, 0); post != 0 {
		t.Errorf("posterior with zero prior = %v, want 0", post)
	}
}
