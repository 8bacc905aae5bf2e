package models

// Frequency controls how often a habit repeats. Only daily habits participate
// in the automatic daily rollover.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

// HistoryEntry records a single day's completion state for a habit.
type HistoryEntry struct {
	Date      string `json:"date"` // day key, e.g. "26 Kas"
	Completed bool   `json:"completed"`
}

// Habit represents a recurring practice to track
type Habit struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Icon           string         `json:"icon"`
	Color          string         `json:"color"`
	Frequency      Frequency      `json:"frequency"`
	Completed      bool           `json:"completed"`
	Streak         int            `json:"streak"`
	TotalCompleted int            `json:"total_completed"`
	CreatedDate    string         `json:"created_date"`
	History        []HistoryEntry `json:"history"`
}
