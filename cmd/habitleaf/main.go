package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/habitleaf/internal/cli"
	"github.com/julianstephens/habitleaf/internal/constants"
	apperrors "github.com/julianstephens/habitleaf/internal/errors"
	"github.com/julianstephens/habitleaf/internal/logger"
	"github.com/julianstephens/habitleaf/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. A .json suffix selects the JSON backend, a postgres:// URL selects PostgreSQL, anything else is SQLite. PostgreSQL URLs must not embed credentials." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init   cli.InitCmd   `cmd:"" help:"Initialize habitleaf storage."`
	Tui    cli.TuiCmd    `cmd:"" help:"Launch the interactive habit board." default:"1"`
	Add    cli.AddCmd    `cmd:"" help:"Add a new habit."`
	List   cli.ListCmd   `cmd:"" help:"List habits with today's status."`
	Done   cli.DoneCmd   `cmd:"" help:"Toggle a habit's completion for today."`
	Edit   cli.EditCmd   `cmd:"" help:"Edit an existing habit."`
	Delete cli.DeleteCmd `cmd:"" help:"Delete a habit."`
	Stats  cli.StatsCmd  `cmd:"" help:"Show progress and streak statistics."`
	Reset  cli.ResetCmd  `cmd:"" help:"Clear today's completion marks on daily habits."`
	Watch  cli.WatchCmd  `cmd:"" help:"Run the scheduled daily rollover in the foreground."`

	Premium  cli.PremiumCmd `cmd:"" help:"Premium plans and billing."`
	Settings cli.ConfigCmd  `cmd:"" name:"config" help:"Manage application settings."`
}

func main() {
	// Optional .env for HABITLEAF_STRIPE_KEY and friends.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("habitleaf"),
		kong.Description("Habit tracker with streaks and premium pricing"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"config_path":    constants.DefaultConfigPath,
			"reset_schedule": constants.DefaultResetSchedule,
		},
	)

	var store storage.Provider
	switch {
	case strings.HasPrefix(CLI.Config, "postgres://") || strings.HasPrefix(CLI.Config, "postgresql://"):
		if storage.HasEmbeddedCredentials(CLI.Config) {
			fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Use environment variables or a .pgpass file instead.")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(CLI.Config)
	case strings.HasSuffix(CLI.Config, ".json"):
		store = storage.NewJSONStore(CLI.Config)
	default:
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		apperrors.Fatal(err)
	}
}
