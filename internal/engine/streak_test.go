package engine

import "testing"

func day(t *testing.T, s string) Day {
	t.Helper()
	d, err := ParseDay(s)
	if err != nil {
		t.Fatalf("bad test day %q: %v", s, err)
	}
	return d
}

func TestCurrentStreakContiguous(t *testing.T) {
	today := day(t, "2024-05-10")
	completed := []Day{today, today.AddDays(-1), today.AddDays(-2)}

	if got := CurrentStreak(completed, today); got != 3 {
		t.Errorf("streak = %d, want 3", got)
	}
}

func TestCurrentStreakGapStopsWalk(t *testing.T) {
	today := day(t, "2024-05-10")
	// today-3 missing; today-4 completed but disconnected.
	completed := []Day{today, today.AddDays(-1), today.AddDays(-2), today.AddDays(-4)}

	if got := CurrentStreak(completed, today); got != 3 {
		t.Errorf("streak = %d, want 3 (disconnected past day must not count)", got)
	}
}

func TestCurrentStreakAnchorsToToday(t *testing.T) {
	today := day(t, "2024-05-10")
	// A run ending yesterday is not a current streak.
	completed := []Day{today.AddDays(-1), today.AddDays(-2), today.AddDays(-3)}

	if got := CurrentStreak(completed, today); got != 0 {
		t.Errorf("streak = %d, want 0 when today is not completed", got)
	}
}

func TestCurrentStreakEmpty(t *testing.T) {
	today := day(t, "2024-05-10")
	if got := CurrentStreak(nil, today); got != 0 {
		t.Errorf("streak = %d, want 0 for no completions", got)
	}
}

func TestCurrentStreakSingleToday(t *testing.T) {
	today := day(t, "2024-05-10")
	if got := CurrentStreak([]Day{today}, today); got != 1 {
		t.Errorf("streak = %d, want 1", got)
	}
}

func TestCurrentStreakDuplicateDays(t *testing.T) {
	today := day(t, "2024-05-10")
	completed := []Day{today, today, today.AddDays(-1), today.AddDays(-1)}

	if got := CurrentStreak(completed, today); got != 2 {
		t.Errorf("streak = %d, want 2 (duplicates collapse)", got)
	}
}

func TestCurrentStreakIsPure(t *testing.T) {
	today := day(t, "2024-05-10")
	completed := []Day{today, today.AddDays(-1)}

	a := CurrentStreak(completed, today)
	b := CurrentStreak(completed, today)
	if a != b {
		t.Errorf("repeated calls disagree: %d vs %d", a, b)
	}
}

func TestCurrentStreakAcrossMonthBoundary(t *testing.T) {
	today := day(t, "2024-03-02")
	completed := []Day{
		day(t, "2024-03-02"),
		day(t, "2024-03-01"),
		day(t, "2024-02-29"),
		day(t, "2024-02-28"),
	}

	if got := CurrentStreak(completed, today); got != 4 {
		t.Errorf("streak = %d, want 4 across the leap-day boundary", got)
	}
}
