package seed

import "testing"

func TestSeed_Deterministic(t *testing.T) {
	a := Seed("plan-001", "robustness", "2026-08-30")
	b := Seed("plan-001", "robustness", "2026-08-30")
	if a != b {
		t.Errorf("same inputs produced different seeds: %d vs %d", a, b)
	}
}

func TestSeed_InputSensitivity(t *testing.T) {
	base := Seed("plan-001", "robustness", "2026-08-30")

	cases := []struct {
		name           string
		id, salt, date string
	}{
		{"identifier", "plan-002", "robustness", "2026-08-30"},
		{"salt", "plan-001", "sensitivity", "2026-08-30"},
		{"date", "plan-001", "robustness", "2026-08-31"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Seed(tc.id, tc.salt, tc.date); got == base {
				t.Errorf("changing %s did not change the seed", tc.name)
			}
		})
	}
}

func TestSeed_SeparatorPreventsAmbiguity(t *testing.T) {
	// "ab"+"c" and "a"+"bc" must not collide once separated
	if Seed("ab", "c", "d") == Seed("a", "bc", "d") {
		t.Error("concatenation ambiguity: distinct input splits collided")
	}
}

func TestSeed_NonNegative(t *testing.T) {
	inputs := []string{"", "plan", "a-rather-longer-identifier-string", "0"}
	for _, id := range inputs {
		if s := Seed(id, "salt", "2026-08-30"); s < 0 {
			t.Errorf("Seed(%q, ...) = %d, want non-negative", id, s)
		}
	}
}
