package cli

import "fmt"

// ResetCmd performs the daily rollover manually: every daily habit goes back
// to uncompleted while streaks, totals, and history stay put. The watch
// command runs the same rollover on a schedule.
type ResetCmd struct{}

func (c *ResetCmd) Run(ctx *Context) error {
	led, _, err := ctx.loadLedger()
	if err != nil {
		return err
	}

	n := led.ResetDaily()
	if err := ctx.saveLedger(led); err != nil {
		return err
	}

	fmt.Printf("Reset %d daily habit(s)\n", n)
	return nil
}
