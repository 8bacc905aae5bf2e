package storage

import "github.com/julianstephens/habitleaf/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits. The collection is loaded and flushed as a unit: the ledger
	// owns it in memory and persistence is a whole-slice snapshot.
	GetAllHabits() ([]models.Habit, error)
	SaveHabits([]models.Habit) error

	// Key-value store, used by the pricing cache. GetValue reports an
	// absent key through the bool, not an error.
	GetValue(key string) (string, bool, error)
	SetValue(key, value string) error
	DeleteValue(key string) error

	// Utils
	GetConfigPath() string
}
