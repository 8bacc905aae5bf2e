package cli

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/habitleaf/internal/constants"
	"github.com/julianstephens/habitleaf/internal/logger"
)

// WatchCmd runs the day-rollover trigger as a foreground daemon: at every
// scheduled tick the daily habits are reset.
type WatchCmd struct {
	Schedule string `help:"Cron schedule for the daily rollover." default:"${reset_schedule}"`
}

func (c *WatchCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	schedule := c.Schedule
	if schedule == "" {
		schedule = constants.DefaultResetSchedule
	}

	cr := cron.New()
	_, err := cr.AddFunc(schedule, func() {
		led, _, err := ctx.loadLedger()
		if err != nil {
			logger.Error("daily rollover failed to load habits", "error", err)
			return
		}
		n := led.ResetDaily()
		if err := ctx.saveLedger(led); err != nil {
			logger.Error("daily rollover failed to save habits", "error", err)
			return
		}
		logger.Info("daily rollover complete", "reset", n)
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}

	fmt.Printf("Watching for daily rollover (%s), press Ctrl+C to stop\n", schedule)
	cr.Run()
	return nil
}
