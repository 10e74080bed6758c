package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lazypower/lifeboard/internal/engine"
)

const habitsFile = "habits.json"

// Completion records one calendar day on which a habit was done. Completions
// are keyed by day: a habit is done or not done on a date, never done twice.
type Completion struct {
	Date        string    `json:"date"` // YYYY-MM-DD
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt"`
}

// Habit is a tracked daily practice with its completion history and streaks.
type Habit struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	Frequency     string       `json:"frequency"`
	Completions   []Completion `json:"completions"`
	Streak        int          `json:"streak"`
	LongestStreak int          `json:"longestStreak"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type habitsDoc struct {
	Habits []Habit `json:"habits"`
}

// ListHabits returns every habit.
func (s *Store) ListHabits() ([]Habit, error) {
	var doc habitsDoc
	if err := s.readDoc(habitsFile, &doc); err != nil {
		return nil, err
	}
	if doc.Habits == nil {
		doc.Habits = []Habit{}
	}
	return doc.Habits, nil
}

// GetHabit returns a habit by id, or nil if it does not exist.
func (s *Store) GetHabit(id string) (*Habit, error) {
	var doc habitsDoc
	if err := s.readDoc(habitsFile, &doc); err != nil {
		return nil, err
	}
	for i := range doc.Habits {
		if doc.Habits[i].ID == id {
			return &doc.Habits[i], nil
		}
	}
	return nil, nil
}

// AddHabit creates a habit with a fresh id and zeroed streaks.
func (s *Store) AddHabit(h Habit) (*Habit, error) {
	var doc habitsDoc
	if err := s.readDoc(habitsFile, &doc); err != nil {
		return nil, err
	}

	h.ID = uuid.NewString()
	h.Completions = []Completion{}
	h.Streak = 0
	h.LongestStreak = 0
	h.CreatedAt = s.now()

	doc.Habits = append(doc.Habits, h)
	if err := s.writeDoc(habitsFile, &doc); err != nil {
		return nil, err
	}
	return &h, nil
}

// UpdateHabit applies a JSON patch to a habit's metadata. Identity, the
// completion history, and the derived streak counters cannot be patched.
func (s *Store) UpdateHabit(id string, patch []byte) (*Habit, error) {
	var doc habitsDoc
	if err := s.readDoc(habitsFile, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Habits {
		if doc.Habits[i].ID != id {
			continue
		}
		prev := doc.Habits[i]
		if err := mergePatch(&doc.Habits[i], patch); err != nil {
			return nil, err
		}
		// Restore fields the patch must not touch.
		doc.Habits[i].ID = prev.ID
		doc.Habits[i].Completions = prev.Completions
		doc.Habits[i].Streak = prev.Streak
		doc.Habits[i].LongestStreak = prev.LongestStreak
		doc.Habits[i].CreatedAt = prev.CreatedAt
		if err := s.writeDoc(habitsFile, &doc); err != nil {
			return nil, err
		}
		return &doc.Habits[i], nil
	}
	return nil, nil
}

// CompleteHabit records a completion for the given day (defaulting to today)
// and recomputes the streak counters. Completing an already-completed day is
// a no-op. Returns nil when the habit does not exist.
func (s *Store) CompleteHabit(id, date string) (*Habit, error) {
	day, err := s.resolveDay(date)
	if err != nil {
		return nil, err
	}

	var doc habitsDoc
	if err := s.readDoc(habitsFile, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Habits {
		h := &doc.Habits[i]
		if h.ID != id {
			continue
		}

		for _, c := range h.Completions {
			if c.Date == day.String() && c.Completed {
				return h, nil
			}
		}

		h.Completions = append(h.Completions, Completion{
			Date:        day.String(),
			Completed:   true,
			CompletedAt: s.now(),
		})
		if err := s.recomputeStreak(h); err != nil {
			return nil, err
		}
		if err := s.writeDoc(habitsFile, &doc); err != nil {
			return nil, err
		}
		return h, nil
	}
	return nil, nil
}

// UncompleteHabit removes the completion for the given day if present and
// recomputes the current streak. The longest streak reflects the historical
// best and is never decreased here.
func (s *Store) UncompleteHabit(id, date string) (*Habit, error) {
	day, err := s.resolveDay(date)
	if err != nil {
		return nil, err
	}

	var doc habitsDoc
	if err := s.readDoc(habitsFile, &doc); err != nil {
		return nil, err
	}

	for i := range doc.Habits {
		h := &doc.Habits[i]
		if h.ID != id {
			continue
		}

		kept := h.Completions[:0]
		for _, c := range h.Completions {
			if c.Date != day.String() {
				kept = append(kept, c)
			}
		}
		h.Completions = kept
		if err := s.recomputeStreak(h); err != nil {
			return nil, err
		}
		if err := s.writeDoc(habitsFile, &doc); err != nil {
			return nil, err
		}
		return h, nil
	}
	return nil, nil
}

// DeleteHabit removes a habit permanently. Deleting a missing habit is fine.
func (s *Store) DeleteHabit(id string) error {
	var doc habitsDoc
	if err := s.readDoc(habitsFile, &doc); err != nil {
		return err
	}

	kept := doc.Habits[:0]
	for _, h := range doc.Habits {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	doc.Habits = kept
	return s.writeDoc(habitsFile, &doc)
}

// recomputeStreak re-derives the current streak from the completion set and
// today, then folds it into the longest streak. Both the complete and
// uncomplete paths go through here.
func (s *Store) recomputeStreak(h *Habit) error {
	days := make([]engine.Day, 0, len(h.Completions))
	for _, c := range h.Completions {
		if !c.Completed {
			continue
		}
		d, err := engine.ParseDay(c.Date)
		if err != nil {
			return fmt.Errorf("habit %s: %w", h.ID, err)
		}
		days = append(days, d)
	}

	h.Streak = engine.CurrentStreak(days, engine.DayOf(s.now()))
	if h.Streak > h.LongestStreak {
		h.LongestStreak = h.Streak
	}
	return nil
}

// resolveDay parses a YYYY-MM-DD string, defaulting an empty string to today
// in the server's local timezone. Malformed dates are errors — no coercion.
func (s *Store) resolveDay(date string) (engine.Day, error) {
	if date == "" {
		return engine.DayOf(s.now()), nil
	}
	return engine.ParseDay(date)
}
