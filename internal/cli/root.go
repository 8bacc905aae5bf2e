package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/habitleaf/internal/billing"
	"github.com/julianstephens/habitleaf/internal/ledger"
	"github.com/julianstephens/habitleaf/internal/logger"
	"github.com/julianstephens/habitleaf/internal/models"
	"github.com/julianstephens/habitleaf/internal/pricing"
	"github.com/julianstephens/habitleaf/internal/storage"
)

type Context struct {
	Store storage.Provider
	Debug bool
}

// loadLedger loads the persisted habit collection into a fresh ledger using
// the configured language's day-key format.
func (ctx *Context) loadLedger() (*ledger.Ledger, models.Settings, error) {
	if err := ctx.Store.Load(); err != nil {
		return nil, models.Settings{}, err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return nil, models.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return nil, models.Settings{}, fmt.Errorf("failed to load habits: %w", err)
	}

	led := ledger.New(
		ledger.WithHabits(habits),
		ledger.WithDayKey(ledger.DayKey(settings.Language)),
	)
	return led, settings, nil
}

// saveLedger flushes the ledger's collection back to storage.
func (ctx *Context) saveLedger(led *ledger.Ledger) error {
	return ctx.Store.SaveHabits(led.Habits())
}

// resolver wires a pricing resolver over the store's KV surface and the
// configured billing backend.
func (ctx *Context) resolver(settings models.Settings) *pricing.Resolver {
	var lookup billing.PriceLookup
	if key := billing.ResolveAPIKey(); key != "" {
		lookup = billing.NewStripeClient(key)
	}
	return pricing.NewResolver(ctx.Store, lookup, logger.Get(), pricing.WithLanguage(settings.Language))
}

// findHabit resolves a habit by id, falling back to an exact name match.
func findHabit(led *ledger.Ledger, ref string) (models.Habit, bool) {
	if h, ok := led.Get(ref); ok {
		return h, true
	}
	return led.GetByName(ref)
}

func parseFrequency(s string) (models.Frequency, error) {
	switch strings.ToLower(s) {
	case "daily":
		return models.FrequencyDaily, nil
	case "weekly":
		return models.FrequencyWeekly, nil
	case "monthly":
		return models.FrequencyMonthly, nil
	default:
		return "", fmt.Errorf("invalid frequency: %s (expected daily|weekly|monthly)", s)
	}
}

// formatHistory renders a habit's rolling history as a compact dot row,
// most recent first.
func formatHistory(habit models.Habit) string {
	if len(habit.History) == 0 {
		return "no history"
	}
	marks := make([]string, 0, len(habit.History))
	for _, e := range habit.History {
		if e.Completed {
			marks = append(marks, "●")
		} else {
			marks = append(marks, "○")
		}
	}
	return strings.Join(marks, " ")
}
