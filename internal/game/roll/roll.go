package roll

// chanceScale is the resolution used to convert a probability into an
// integer draw. One part per million keeps the conversion exact for the
// game's tuning constants (0.25, 0.5, 1/3).
const chanceScale = 1_000_000

// Chance reports whether an event with probability p occurred.
// p is clamped to [0, 1]: p <= 0 never succeeds, p >= 1 always succeeds.
//
// Precondition: src must be non-nil.
// Postcondition: Returns true with probability clamp(p, 0, 1).
func Chance(src Source, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return src.Intn(chanceScale) < int(p*chanceScale)
}

// Pick returns a random index in [0, n).
//
// Precondition: src must be non-nil; n > 0.
func Pick(src Source, n int) int {
	return src.Intn(n)
}
