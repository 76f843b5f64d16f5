package engine

import "testing"

func TestXPForLevelKnownValues(t *testing.T) {
	cases := map[int]int{
		0:  0,
		1:  0,
		2:  428,
		3:  1004,
		5:  2936,
		10: 12589,
	}
	for level, want := range cases {
		if got := XPForLevel(level); got != want {
			t.Fatalf("XPForLevel(%d)=%d, want %d", level, got, want)
		}
	}
}

func TestLevelCurveMonotonicAndInverse(t *testing.T) {
	prev := XPForLevel(1)
	for n := 2; n <= 60; n++ {
		cur := XPForLevel(n)
		if cur <= prev {
			t.Fatalf("XPForLevel(%d)=%d not above XPForLevel(%d)=%d", n, cur, n-1, prev)
		}
		if got := LevelFromXP(cur); got != n {
			t.Fatalf("LevelFromXP(%d)=%d, want %d", cur, got, n)
		}
		if got := LevelFromXP(cur - 1); got != n-1 {
			t.Fatalf("LevelFromXP(%d)=%d, want %d", cur-1, got, n-1)
		}
		prev = cur
	}
}

func TestLevelFromXPFloor(t *testing.T) {
	if got := LevelFromXP(0); got != 1 {
		t.Fatalf("LevelFromXP(0)=%d, want 1", got)
	}
	if got := LevelFromXP(-50); got != 1 {
		t.Fatalf("LevelFromXP(-50)=%d, want 1", got)
	}
	if got := LevelFromXP(427); got != 1 {
		t.Fatalf("LevelFromXP(427)=%d, want 1", got)
	}
}

func TestXPToNextLevel(t *testing.T) {
	if got := XPToNextLevel(0); got != 428 {
		t.Fatalf("XPToNextLevel(0)=%d, want 428", got)
	}
	if got := XPToNextLevel(428); got != 1004-428 {
		t.Fatalf("XPToNextLevel(428)=%d, want %d", got, 1004-428)
	}
	if got := XPToNextLevel(1003); got != 1 {
		t.Fatalf("XPToNextLevel(1003)=%d, want 1", got)
	}
}

func TestLevelProgressBounds(t *testing.T) {
	if got := LevelProgress(0); got != 0 {
		t.Fatalf("LevelProgress(0)=%v, want 0", got)
	}
	mid := LevelProgress(214)
	if mid <= 0.49 || mid >= 0.51 {
		t.Fatalf("LevelProgress(214)=%v, want ~0.5", mid)
	}
}
