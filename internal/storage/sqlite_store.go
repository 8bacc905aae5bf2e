package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/habitleaf/internal/constants"
	"github.com/julianstephens/habitleaf/internal/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	icon TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	frequency TEXT NOT NULL DEFAULT 'daily',
	completed INTEGER NOT NULL DEFAULT 0,
	streak INTEGER NOT NULL DEFAULT 0,
	total_completed INTEGER NOT NULL DEFAULT 0,
	created_date TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS habit_history (
	habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	day TEXT NOT NULL,
	completed INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (habit_id, position)
);

CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	language TEXT NOT NULL,
	theme_palette TEXT NOT NULL,
	premium INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	// Initialize default settings if not present
	if _, err := s.GetSettings(); err != nil {
		defaults := models.Settings{
			Language:     constants.DefaultLanguage,
			ThemePalette: constants.DefaultPalette,
		}
		if err := s.SaveSettings(defaults); err != nil {
			return fmt.Errorf("failed to save default settings: %w", err)
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'habitleaf init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow("SELECT language, theme_palette, premium FROM settings WHERE id = 1")

	var settings models.Settings
	var premium int
	if err := row.Scan(&settings.Language, &settings.ThemePalette, &premium); err != nil {
		return models.Settings{}, err
	}
	settings.Premium = premium != 0

	return settings, nil
}

func (s *SQLiteStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	premium := 0
	if settings.Premium {
		premium = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO settings (id, language, theme_palette, premium) VALUES (1, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET language = excluded.language,
			theme_palette = excluded.theme_palette, premium = excluded.premium`,
		settings.Language, settings.ThemePalette, premium)
	return err
}

func (s *SQLiteStore) GetAllHabits() ([]models.Habit, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query(`
		SELECT id, name, icon, color, frequency, completed, streak, total_completed, created_date
		FROM habits ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	habits := []models.Habit{}
	for rows.Next() {
		var h models.Habit
		var completed int
		err := rows.Scan(&h.ID, &h.Name, &h.Icon, &h.Color, &h.Frequency, &completed, &h.Streak, &h.TotalCompleted, &h.CreatedDate)
		if err != nil {
			return nil, err
		}
		h.Completed = completed != 0
		h.History = []models.HistoryEntry{}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range habits {
		history, err := s.getHistory(habits[i].ID)
		if err != nil {
			return nil, err
		}
		habits[i].History = history
	}

	return habits, nil
}

func (s *SQLiteStore) getHistory(habitID string) ([]models.HistoryEntry, error) {
	rows, err := s.db.Query(`
		SELECT day, completed FROM habit_history
		WHERE habit_id = ? ORDER BY position`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		var completed int
		if err := rows.Scan(&e.Date, &completed); err != nil {
			return nil, err
		}
		e.Completed = completed != 0
		history = append(history, e)
	}
	return history, rows.Err()
}

// SaveHabits replaces the persisted collection with the given snapshot.
func (s *SQLiteStore) SaveHabits(habits []models.Habit) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM habit_history"); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM habits"); err != nil {
		return err
	}

	for pos, h := range habits {
		completed := 0
		if h.Completed {
			completed = 1
		}
		_, err := tx.Exec(`
			INSERT INTO habits (id, name, icon, color, frequency, completed, streak, total_completed, created_date, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, h.Name, h.Icon, h.Color, string(h.Frequency), completed, h.Streak, h.TotalCompleted, h.CreatedDate, pos)
		if err != nil {
			return err
		}

		for entryPos, e := range h.History {
			entryCompleted := 0
			if e.Completed {
				entryCompleted = 1
			}
			_, err := tx.Exec(`
				INSERT INTO habit_history (habit_id, position, day, completed)
				VALUES (?, ?, ?, ?)`,
				h.ID, entryPos, e.Date, entryCompleted)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetValue(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) SetValue(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, key, value)
	return err
}

func (s *SQLiteStore) DeleteValue(key string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key)
	return err
}

// GetConfigPath returns the path to the underlying database file.
//
// Concurrency note: the store is not safe for concurrent use by multiple
// goroutines without external synchronization, and running multiple
// habitleaf processes against the same path is not supported.
func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
