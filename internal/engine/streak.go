package engine

// CurrentStreak counts consecutive completed days ending at today, walking
// backward (today, today-1, ...) and stopping at the first gap. A completion
// on a past day that does not connect unbroken to today contributes nothing.
//
// This is the single streak implementation shared by the complete and
// uncomplete paths — the two must never drift apart.
func CurrentStreak(completed []Day, today Day) int {
	if len(completed) == 0 {
		return 0
	}

	// Dedupe: completions are keyed by calendar day, but be defensive about
	// the input set.
	have := make(map[string]bool, len(completed))
	for _, d := range completed {
		have[d.String()] = true
	}

	streak := 0
	for cursor := today; have[cursor.String()]; cursor = cursor.AddDays(-1) {
		streak++
	}
	return streak
}
