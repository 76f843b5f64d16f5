package engine

import "math"

const (
	// LevelCurveBase and LevelCurveExponent define XP_req(n) = floor(100 * n^2.1).
	// Changing either breaks compatibility with existing character documents.
	LevelCurveBase     = 100.0
	LevelCurveExponent = 2.1

	// maxLevel bounds the linear ascent in LevelFromXP.
	maxLevel = 100_000
)

// XPForLevel returns the minimum total XP required to be at the given level.
// Level 1 (and anything below) requires 0 XP.
func XPForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	return int(math.Floor(LevelCurveBase * math.Pow(float64(level), LevelCurveExponent)))
}

// LevelFromXP returns the highest level n >= 1 such that XPForLevel(n) <= totalXP.
func LevelFromXP(totalXP int) int {
	level := 1
	for level < maxLevel && XPForLevel(level+1) <= totalXP {
		level++
	}
	return level
}

// XPToNextLevel returns the XP still missing for the next level, never negative.
func XPToNextLevel(totalXP int) int {
	next := XPForLevel(LevelFromXP(totalXP) + 1)
	if next <= totalXP {
		return 0
	}
	return next - totalXP
}

// LevelProgress returns how far totalXP is through its current level, in [0, 1).
func LevelProgress(totalXP int) float64 {
	level := LevelFromXP(totalXP)
	floor := XPForLevel(level)
	span := XPForLevel(level+1) - floor
	if span <= 0 {
		return 0
	}
	return float64(totalXP-floor) / float64(span)
}
