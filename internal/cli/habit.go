package cli

import (
	"fmt"

	"github.com/julianstephens/habitleaf/internal/ledger"
)

type AddCmd struct {
	Name      string `arg:"" help:"Habit name."`
	Icon      string `short:"i" help:"Display icon (emoji)." default:"🌱"`
	Color     string `short:"c" help:"Display color (hex)." default:"#10B981"`
	Frequency string `short:"f" help:"Frequency (daily|weekly|monthly)." default:"daily"`
}

func (c *AddCmd) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	_, err := parseFrequency(c.Frequency)
	return err
}

func (c *AddCmd) Run(ctx *Context) error {
	led, _, err := ctx.loadLedger()
	if err != nil {
		return err
	}

	if _, ok := led.GetByName(c.Name); ok {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	freq, err := parseFrequency(c.Frequency)
	if err != nil {
		return err
	}

	habit := led.Add(ledger.Draft{
		Name:      c.Name,
		Icon:      c.Icon,
		Color:     c.Color,
		Frequency: freq,
	})

	if err := ctx.saveLedger(led); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s %s (ID: %s)\n", habit.Icon, habit.Name, habit.ID)
	return nil
}

type ListCmd struct{}

func (c *ListCmd) Run(ctx *Context) error {
	led, _, err := ctx.loadLedger()
	if err != nil {
		return err
	}

	habits := led.Habits()
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	fmt.Println("Habits:")
	for _, h := range habits {
		mark := "○"
		if h.Completed {
			mark = "✓"
		}
		fmt.Printf("  %s %s %-20s streak %-3d total %-4d %s\n",
			mark, h.Icon, h.Name, h.Streak, h.TotalCompleted, formatHistory(h))
	}

	fmt.Printf("\n%d/%d completed (%.0f%%)\n", led.CompletedCount(), led.Len(), led.ProgressPercentage())
	return nil
}

type DoneCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
}

func (c *DoneCmd) Run(ctx *Context) error {
	led, _, err := ctx.loadLedger()
	if err != nil {
		return err
	}

	habit, ok := findHabit(led, c.Habit)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	toggled, _ := led.Toggle(habit.ID)
	if err := ctx.saveLedger(led); err != nil {
		return err
	}

	if toggled.Completed {
		fmt.Printf("Completed %q (streak %d)\n", toggled.Name, toggled.Streak)
	} else {
		fmt.Printf("Unmarked %q (streak %d)\n", toggled.Name, toggled.Streak)
	}
	return nil
}

type EditCmd struct {
	Habit     string `arg:"" help:"Habit ID or name."`
	Name      string `help:"New name."`
	Icon      string `help:"New icon."`
	Color     string `help:"New color."`
	Frequency string `help:"New frequency (daily|weekly|monthly)."`
}

func (c *EditCmd) Run(ctx *Context) error {
	led, _, err := ctx.loadLedger()
	if err != nil {
		return err
	}

	habit, ok := findHabit(led, c.Habit)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	if c.Name != "" {
		habit.Name = c.Name
	}
	if c.Icon != "" {
		habit.Icon = c.Icon
	}
	if c.Color != "" {
		habit.Color = c.Color
	}
	if c.Frequency != "" {
		freq, err := parseFrequency(c.Frequency)
		if err != nil {
			return err
		}
		habit.Frequency = freq
	}

	led.Update(habit)
	if err := ctx.saveLedger(led); err != nil {
		return err
	}

	fmt.Printf("Updated habit: %s\n", habit.Name)
	return nil
}

type DeleteCmd struct {
	Habit string `arg:"" help:"Habit ID or name."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	led, _, err := ctx.loadLedger()
	if err != nil {
		return err
	}

	habit, ok := findHabit(led, c.Habit)
	if !ok {
		return fmt.Errorf("habit %q not found", c.Habit)
	}

	led.Delete(habit.ID)
	if err := ctx.saveLedger(led); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}
