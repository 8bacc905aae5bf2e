package cli

import "fmt"

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	led, _, err := ctx.loadLedger()
	if err != nil {
		return err
	}

	if led.Len() == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Printf("Habits:    %d\n", led.Len())
	fmt.Printf("Completed: %d (%.0f%%)\n", led.CompletedCount(), led.ProgressPercentage())

	if top, ok := led.TopStreakHabit(); ok {
		fmt.Printf("Top streak: %s %s (%d days)\n", top.Icon, top.Name, top.Streak)
	}

	return nil
}
