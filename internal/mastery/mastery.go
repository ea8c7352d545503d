package mastery

import "math"

const (
	// DefaultDelta is the mastery increment for a correct verdict. An
	// incorrect verdict steps down by half of it, so recovery from a
	// wrong answer takes one correct answer, not two.
	DefaultDelta = 0.15

	// DefaultMasteredThreshold is the level at or above which a unit is
	// considered mastered and excluded from primary selection.
	DefaultMasteredThreshold = 0.9

	minLevel = 0.0
	maxLevel = 1.0
)

// Clamp bounds a mastery level to [0, 1].
func Clamp(level float64) float64 {
	if level < minLevel {
		return minLevel
	}
	if level > maxLevel {
		return maxLevel
	}
	return level
}

// Step returns the next mastery level after a verdict: +delta when
// correct, -delta/2 when incorrect, clamped to [0, 1].
func Step(level float64, correct bool, delta float64) float64 {
	if correct {
		return Clamp(level + delta)
	}
	return Clamp(level - delta/2)
}

// DifficultyFor maps a mastery level to a question difficulty on the
// 1..5 scale: round(1 + 4*level), clamped. Level 0 asks the easiest
// question, level 1 the hardest.
func DifficultyFor(level float64) int {
	d := int(math.Round(1 + 4*Clamp(level)))
	if d < 1 {
		return 1
	}
	if d > 5 {
		return 5
	}
	return d
}
