// Package ledger owns the in-memory habit collection and applies all
// mutating operations on it. Every operation runs to completion and leaves
// the collection invariants intact: unique IDs, at most one history entry
// per day key, history bounded to the most recent days, streaks never
// negative. Mutators on a missing id are explicit no-ops reported through a
// found flag rather than an error.
package ledger

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/habitleaf/internal/constants"
	"github.com/julianstephens/habitleaf/internal/i18n"
	"github.com/julianstephens/habitleaf/internal/models"
)

// DayKeyFunc formats a timestamp into the day-granularity key used by habit
// history entries.
type DayKeyFunc func(time.Time) string

// DayKey returns the default day+abbreviated-month key format, e.g.
// "26 Kas" in Turkish. The key does not encode the year, so entries for a
// long-lived habit can collide across year boundaries.
func DayKey(lang string) DayKeyFunc {
	return func(t time.Time) string {
		return fmt.Sprintf("%02d %s", t.Day(), i18n.MonthAbbrev(lang, t.Month()))
	}
}

// DayKeyWithYear is a collision-free variant of DayKey, e.g. "26 Kas 2025".
func DayKeyWithYear(lang string) DayKeyFunc {
	return func(t time.Time) string {
		return fmt.Sprintf("%02d %s %d", t.Day(), i18n.MonthAbbrev(lang, t.Month()), t.Year())
	}
}

// Draft carries the user-editable attributes of a new habit. Name validation
// is a caller concern; the ledger accepts any draft.
type Draft struct {
	Name      string
	Icon      string
	Color     string
	Frequency models.Frequency
}

// Ledger is the authoritative habit collection. It is not safe for
// concurrent use; the application owns a single instance per run.
type Ledger struct {
	habits []models.Habit
	now    func() time.Time
	dayKey DayKeyFunc
}

type Option func(*Ledger)

// WithClock overrides the wall clock, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithDayKey overrides the history day-key format.
func WithDayKey(fn DayKeyFunc) Option {
	return func(l *Ledger) { l.dayKey = fn }
}

// WithHabits seeds the ledger with an existing collection, e.g. loaded from
// storage.
func WithHabits(habits []models.Habit) Option {
	return func(l *Ledger) { l.habits = habits }
}

func New(opts ...Option) *Ledger {
	l := &Ledger{
		now:    time.Now,
		dayKey: DayKey(constants.DefaultLanguage),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Add creates a habit from the draft and appends it to the collection. The
// id is a fresh UUID; counters start at zero and history empty.
func (l *Ledger) Add(d Draft) models.Habit {
	now := l.now()
	h := models.Habit{
		ID:          uuid.New().String(),
		Name:        d.Name,
		Icon:        d.Icon,
		Color:       d.Color,
		Frequency:   d.Frequency,
		Completed:   false,
		CreatedDate: fmt.Sprintf("%02d %s %d", now.Day(), i18n.MonthAbbrev(i18n.Default, now.Month()), now.Year()),
		History:     []models.HistoryEntry{},
	}
	l.habits = append(l.habits, h)
	return h
}

// Toggle flips the completion flag of the habit with the given id and
// updates its history and counters. The returned flag reports whether the
// habit was found; a miss leaves the collection untouched.
//
// History: today's entry is overwritten when present, otherwise a new entry
// is inserted at the front and the list truncated to the window. Counters:
// completing increments both TotalCompleted and Streak; un-completing
// decrements TotalCompleted unconditionally and Streak clamped at zero, so
// repeated toggling at streak zero is intentionally asymmetric and
// TotalCompleted can go negative.
func (l *Ledger) Toggle(id string) (models.Habit, bool) {
	for i := range l.habits {
		h := &l.habits[i]
		if h.ID != id {
			continue
		}

		h.Completed = !h.Completed

		today := l.dayKey(l.now())
		updated := false
		for j := range h.History {
			if h.History[j].Date == today {
				h.History[j].Completed = h.Completed
				updated = true
				break
			}
		}
		if !updated {
			h.History = append([]models.HistoryEntry{{Date: today, Completed: h.Completed}}, h.History...)
			if len(h.History) > constants.HistoryWindow {
				h.History = h.History[:constants.HistoryWindow]
			}
		}

		if h.Completed {
			h.TotalCompleted++
			h.Streak++
		} else {
			h.TotalCompleted--
			if h.Streak > 0 {
				h.Streak--
			}
		}

		return *h, true
	}
	return models.Habit{}, false
}

// Update replaces the stored habit with the same id wholesale. Returns false
// when no habit has that id.
func (l *Ledger) Update(habit models.Habit) bool {
	for i := range l.habits {
		if l.habits[i].ID == habit.ID {
			l.habits[i] = habit
			return true
		}
	}
	return false
}

// Delete removes the habit with the given id. Returns false when absent.
func (l *Ledger) Delete(id string) bool {
	for i := range l.habits {
		if l.habits[i].ID == id {
			l.habits = append(l.habits[:i], l.habits[i+1:]...)
			return true
		}
	}
	return false
}

// ResetDaily clears the completion flag of every daily habit and returns how
// many were touched. Streaks, totals, and history are left alone; weekly and
// monthly habits are skipped.
func (l *Ledger) ResetDaily() int {
	n := 0
	for i := range l.habits {
		if l.habits[i].Frequency == models.FrequencyDaily {
			l.habits[i].Completed = false
			n++
		}
	}
	return n
}

// Get returns the habit with the given id.
func (l *Ledger) Get(id string) (models.Habit, bool) {
	for _, h := range l.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// GetByName returns the first habit with the given name.
func (l *Ledger) GetByName(name string) (models.Habit, bool) {
	for _, h := range l.habits {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Habits returns a copy of the collection in insertion order. History slices
// are copied too, so callers cannot break the ledger's invariants.
func (l *Ledger) Habits() []models.Habit {
	out := make([]models.Habit, len(l.habits))
	for i, h := range l.habits {
		hist := make([]models.HistoryEntry, len(h.History))
		copy(hist, h.History)
		h.History = hist
		out[i] = h
	}
	return out
}

// Len returns the number of habits.
func (l *Ledger) Len() int {
	return len(l.habits)
}

// CompletedCount returns how many habits are currently completed.
func (l *Ledger) CompletedCount() int {
	n := 0
	for _, h := range l.habits {
		if h.Completed {
			n++
		}
	}
	return n
}

// ProgressPercentage returns the completed share as a percentage, 0 for an
// empty collection.
func (l *Ledger) ProgressPercentage() float64 {
	if len(l.habits) == 0 {
		return 0
	}
	return float64(l.CompletedCount()) / float64(len(l.habits)) * 100
}

// TopStreakHabit returns the habit with the highest streak. Ties go to the
// habit encountered first in collection order; ok is false when the
// collection is empty.
func (l *Ledger) TopStreakHabit() (models.Habit, bool) {
	if len(l.habits) == 0 {
		return models.Habit{}, false
	}
	top := l.habits[0]
	for _, h := range l.habits[1:] {
		if h.Streak > top.Streak {
			top = h
		}
	}
	return top, true
}
