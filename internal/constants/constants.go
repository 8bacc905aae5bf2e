package constants

import "time"

const (
	AppName            = "habitleaf"
	DefaultKeyringUser = "stripe-api-key"
	DefaultConfigPath  = "~/.config/habitleaf/habitleaf.db"
	Version            = "v0.1.0"

	// DateFormat is the standard date format used for machine-readable dates (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// HistoryWindow is the number of distinct day entries kept per habit
	HistoryWindow = 7

	// Price cache constants
	PriceCacheKey          = "cached_prices"
	PriceCacheTimestampKey = "cached_prices_timestamp"
	PriceCacheTTL          = 24 * time.Hour

	// Settings defaults
	DefaultLanguage = "tr"
	DefaultPalette  = "default"

	// EnvStripeKey overrides the keyring-stored Stripe API key when set
	EnvStripeKey = "HABITLEAF_STRIPE_KEY"

	// DefaultResetSchedule is the cron expression for the daily rollover (midnight)
	DefaultResetSchedule = "0 0 * * *"
)
