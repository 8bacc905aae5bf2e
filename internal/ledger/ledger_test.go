package ledger

import (
	"testing"
	"time"

	"github.com/julianstephens/habitleaf/internal/models"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestToggle_CompletesAndUpdatesCounters(t *testing.T) {
	now := time.Date(2025, time.November, 26, 10, 0, 0, 0, time.UTC)
	l := New(
		WithClock(fixedClock(now)),
		WithHabits([]models.Habit{
			{ID: "1", Name: "Su İç", Frequency: models.FrequencyDaily, Completed: false, Streak: 3, TotalCompleted: 10, History: []models.HistoryEntry{}},
		}),
	)

	h, ok := l.Toggle("1")
	if !ok {
		t.Fatal("Toggle reported habit not found")
	}

	if !h.Completed {
		t.Error("Expected habit to be completed after toggle")
	}
	if h.Streak != 4 {
		t.Errorf("Expected streak 4, got %d", h.Streak)
	}
	if h.TotalCompleted != 11 {
		t.Errorf("Expected totalCompleted 11, got %d", h.TotalCompleted)
	}
	if len(h.History) != 1 {
		t.Fatalf("Expected 1 history entry, got %d", len(h.History))
	}
	if h.History[0].Date != "26 Kas" {
		t.Errorf("Expected today's key '26 Kas', got %q", h.History[0].Date)
	}
	if !h.History[0].Completed {
		t.Error("Expected today's history entry to be completed")
	}
}

func TestToggle_MissingIDIsNoOp(t *testing.T) {
	l := New(WithHabits([]models.Habit{
		{ID: "1", Name: "Read", Streak: 2, TotalCompleted: 5},
	}))

	_, ok := l.Toggle("nope")
	if ok {
		t.Error("Expected found=false for unknown id")
	}

	h, _ := l.Get("1")
	if h.Streak != 2 || h.TotalCompleted != 5 || h.Completed {
		t.Errorf("Expected untouched habit, got %+v", h)
	}
}

func TestToggle_DoubleToggleRestoresCounters(t *testing.T) {
	now := time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)
	l := New(
		WithClock(fixedClock(now)),
		WithHabits([]models.Habit{
			{ID: "1", Name: "Run", Streak: 5, TotalCompleted: 20, History: []models.HistoryEntry{}},
		}),
	)

	l.Toggle("1")
	h, _ := l.Toggle("1")

	if h.Completed {
		t.Error("Expected habit uncompleted after double toggle")
	}
	if h.Streak != 5 {
		t.Errorf("Expected streak restored to 5, got %d", h.Streak)
	}
	if h.TotalCompleted != 20 {
		t.Errorf("Expected totalCompleted restored to 20, got %d", h.TotalCompleted)
	}
	if len(h.History) != 1 {
		t.Fatalf("Expected single history entry after same-day re-toggle, got %d", len(h.History))
	}
	if h.History[0].Completed {
		t.Error("Expected today's entry uncompleted after double toggle")
	}
}

func TestToggle_ClampBreaksSymmetryAtZeroStreak(t *testing.T) {
	now := time.Date(2025, time.March, 3, 8, 0, 0, 0, time.UTC)
	l := New(
		WithClock(fixedClock(now)),
		WithHabits([]models.Habit{
			// Completed habit with streak already at zero: untoggling cannot
			// decrement the streak, but totalCompleted drops regardless.
			{ID: "1", Name: "Run", Completed: true, Streak: 0, TotalCompleted: 0, History: []models.HistoryEntry{}},
		}),
	)

	h, _ := l.Toggle("1") // un-complete
	if h.Streak != 0 {
		t.Errorf("Expected streak clamped at 0, got %d", h.Streak)
	}
	if h.TotalCompleted != -1 {
		t.Errorf("Expected totalCompleted -1 (unclamped), got %d", h.TotalCompleted)
	}

	h, _ = l.Toggle("1") // re-complete
	if h.Streak != 1 {
		t.Errorf("Expected streak 1 after re-complete, got %d", h.Streak)
	}
	if h.TotalCompleted != 0 {
		t.Errorf("Expected totalCompleted back to 0, got %d", h.TotalCompleted)
	}
}

func TestToggle_HistoryBoundedToSevenDistinctDays(t *testing.T) {
	current := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	l := New(
		WithClock(func() time.Time { return current }),
		WithHabits([]models.Habit{
			{ID: "1", Name: "Read", History: []models.HistoryEntry{}},
		}),
	)

	// One toggle per day across ten distinct days. Completion alternates,
	// which is irrelevant here; only the advancing day keys matter.
	for day := 0; day < 10; day++ {
		l.Toggle("1")
		h, _ := l.Get("1")
		if len(h.History) > 7 {
			t.Fatalf("History exceeded 7 entries on day %d: %d", day, len(h.History))
		}
		current = current.Add(24 * time.Hour)
	}

	h, _ := l.Get("1")
	if len(h.History) != 7 {
		t.Errorf("Expected exactly 7 history entries, got %d", len(h.History))
	}

	// Most recent first, all distinct.
	seen := make(map[string]bool)
	for _, e := range h.History {
		if seen[e.Date] {
			t.Errorf("Duplicate history key %q", e.Date)
		}
		seen[e.Date] = true
	}
	if h.History[0].Date != "10 Oca" {
		t.Errorf("Expected most recent entry first (10 Oca), got %q", h.History[0].Date)
	}
	if h.History[6].Date != "04 Oca" {
		t.Errorf("Expected oldest kept entry 04 Oca, got %q", h.History[6].Date)
	}
}

func TestDayKey_YearBoundaryCollision(t *testing.T) {
	key := DayKey("tr")
	a := key(time.Date(2024, time.November, 26, 0, 0, 0, 0, time.UTC))
	b := key(time.Date(2025, time.November, 26, 0, 0, 0, 0, time.UTC))
	if a != b {
		t.Errorf("Expected default day keys to collide across years, got %q vs %q", a, b)
	}

	keyed := DayKeyWithYear("tr")
	if keyed(time.Date(2024, time.November, 26, 0, 0, 0, 0, time.UTC)) == keyed(time.Date(2025, time.November, 26, 0, 0, 0, 0, time.UTC)) {
		t.Error("Expected year-qualified day keys to differ across years")
	}
}

func TestAdd_InitializesNewHabit(t *testing.T) {
	l := New()

	h := l.Add(Draft{Name: "Meditate", Icon: "🧘", Color: "#8B5CF6", Frequency: models.FrequencyDaily})

	if h.ID == "" {
		t.Error("Expected non-empty id")
	}
	if h.Completed || h.Streak != 0 || h.TotalCompleted != 0 {
		t.Errorf("Expected zeroed completion state, got %+v", h)
	}
	if len(h.History) != 0 {
		t.Errorf("Expected empty history, got %d entries", len(h.History))
	}
	if l.Len() != 1 {
		t.Errorf("Expected 1 habit in ledger, got %d", l.Len())
	}

	h2 := l.Add(Draft{Name: "Meditate again"})
	if h2.ID == h.ID {
		t.Error("Expected unique ids for separate adds")
	}
}

func TestUpdate_ReplacesWholesale(t *testing.T) {
	l := New(WithHabits([]models.Habit{
		{ID: "1", Name: "Old", Icon: "💧", Streak: 4},
	}))

	ok := l.Update(models.Habit{ID: "1", Name: "New", Icon: "🔥", Streak: 9})
	if !ok {
		t.Fatal("Update reported habit not found")
	}
	h, _ := l.Get("1")
	if h.Name != "New" || h.Icon != "🔥" || h.Streak != 9 {
		t.Errorf("Expected replaced habit, got %+v", h)
	}

	if l.Update(models.Habit{ID: "missing"}) {
		t.Error("Expected found=false for unknown id")
	}
}

func TestDelete_RemovesHabit(t *testing.T) {
	l := New(WithHabits([]models.Habit{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
	}))

	if !l.Delete("1") {
		t.Fatal("Delete reported habit not found")
	}
	if l.Len() != 1 {
		t.Errorf("Expected 1 habit left, got %d", l.Len())
	}
	if _, ok := l.Get("1"); ok {
		t.Error("Expected habit 1 gone")
	}
	if l.Delete("1") {
		t.Error("Expected found=false on repeat delete")
	}
}

func TestResetDaily_OnlyTouchesDailyCompletion(t *testing.T) {
	l := New(WithHabits([]models.Habit{
		{ID: "1", Frequency: models.FrequencyDaily, Completed: true, Streak: 3, TotalCompleted: 9, History: []models.HistoryEntry{{Date: "26 Kas", Completed: true}}},
		{ID: "2", Frequency: models.FrequencyWeekly, Completed: true, Streak: 2},
		{ID: "3", Frequency: models.FrequencyDaily, Completed: false},
	}))

	n := l.ResetDaily()
	if n != 2 {
		t.Errorf("Expected 2 daily habits touched, got %d", n)
	}

	h1, _ := l.Get("1")
	if h1.Completed {
		t.Error("Expected daily habit uncompleted after reset")
	}
	if h1.Streak != 3 || h1.TotalCompleted != 9 || len(h1.History) != 1 {
		t.Errorf("Expected streak/total/history untouched, got %+v", h1)
	}

	h2, _ := l.Get("2")
	if !h2.Completed {
		t.Error("Expected weekly habit untouched by daily reset")
	}
}

func TestDerivedViews(t *testing.T) {
	l := New()
	if l.ProgressPercentage() != 0 {
		t.Errorf("Expected 0%% progress for empty ledger, got %f", l.ProgressPercentage())
	}
	if _, ok := l.TopStreakHabit(); ok {
		t.Error("Expected no top-streak habit for empty ledger")
	}

	l = New(WithHabits([]models.Habit{
		{ID: "1", Name: "A", Completed: true, Streak: 7},
		{ID: "2", Name: "B", Completed: false, Streak: 12},
		{ID: "3", Name: "C", Completed: true, Streak: 12},
		{ID: "4", Name: "D", Completed: false, Streak: 3},
	}))

	if got := l.CompletedCount(); got != 2 {
		t.Errorf("Expected completedCount 2, got %d", got)
	}
	if got := l.ProgressPercentage(); got != 50 {
		t.Errorf("Expected 50%% progress, got %f", got)
	}
	top, ok := l.TopStreakHabit()
	if !ok {
		t.Fatal("Expected a top-streak habit")
	}
	// Tie between B and C breaks to the first in collection order.
	if top.ID != "2" {
		t.Errorf("Expected habit 2 as top streak (first-encountered tie-break), got %s", top.ID)
	}
}

func TestHabits_ReturnsIndependentCopy(t *testing.T) {
	l := New(WithHabits([]models.Habit{
		{ID: "1", Name: "A", History: []models.HistoryEntry{{Date: "26 Kas", Completed: true}}},
	}))

	out := l.Habits()
	out[0].Name = "tampered"
	out[0].History[0].Completed = false

	h, _ := l.Get("1")
	if h.Name != "A" {
		t.Error("Expected ledger habit name unaffected by caller mutation")
	}
	if !h.History[0].Completed {
		t.Error("Expected ledger history unaffected by caller mutation")
	}
}
