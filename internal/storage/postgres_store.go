package storage

import (
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/lib/pq"

	"github.com/julianstephens/habitleaf/internal/constants"
	"github.com/julianstephens/habitleaf/internal/models"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS habits (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	icon TEXT NOT NULL DEFAULT '',
	color TEXT NOT NULL DEFAULT '',
	frequency TEXT NOT NULL DEFAULT 'daily',
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	streak INTEGER NOT NULL DEFAULT 0,
	total_completed INTEGER NOT NULL DEFAULT 0,
	created_date TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS habit_history (
	habit_id TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
	position INTEGER NOT NULL,
	day TEXT NOT NULL,
	completed BOOLEAN NOT NULL DEFAULT FALSE,
	PRIMARY KEY (habit_id, position)
);

CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	language TEXT NOT NULL,
	theme_palette TEXT NOT NULL,
	premium BOOLEAN NOT NULL DEFAULT FALSE
);

CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// PostgresStore persists the same shape as SQLiteStore in PostgreSQL, for
// users who point several machines at one shared database.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

// HasEmbeddedCredentials reports whether a URL-style connection string
// carries a password. Embedded credentials are rejected at startup; use the
// environment or a .pgpass file instead.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil {
		return false
	}
	if u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

func (s *PostgresStore) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *PostgresStore) Init() error {
	if err := s.open(); err != nil {
		return err
	}

	if _, err := s.db.Exec(postgresSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

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

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}
	if err := s.open(); err != nil {
		return err
	}

	// Verify the schema exists before serving queries.
	row := s.db.QueryRow("SELECT to_regclass('habits')")
	var reg sql.NullString
	if err := row.Scan(&reg); err != nil {
		return err
	}
	if !reg.Valid {
		return fmt.Errorf("storage not initialized, run 'habitleaf init' first")
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow("SELECT language, theme_palette, premium FROM settings WHERE id = 1")

	var settings models.Settings
	if err := row.Scan(&settings.Language, &settings.ThemePalette, &settings.Premium); err != nil {
		return models.Settings{}, err
	}
	return settings, nil
}

func (s *PostgresStore) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO settings (id, language, theme_palette, premium) VALUES (1, $1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET language = EXCLUDED.language,
			theme_palette = EXCLUDED.theme_palette, premium = EXCLUDED.premium`,
		settings.Language, settings.ThemePalette, settings.Premium)
	return err
}

func (s *PostgresStore) GetAllHabits() ([]models.Habit, error) {
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
		err := rows.Scan(&h.ID, &h.Name, &h.Icon, &h.Color, &h.Frequency, &h.Completed, &h.Streak, &h.TotalCompleted, &h.CreatedDate)
		if err != nil {
			return nil, err
		}
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

func (s *PostgresStore) getHistory(habitID string) ([]models.HistoryEntry, error) {
	rows, err := s.db.Query(`
		SELECT day, completed FROM habit_history
		WHERE habit_id = $1 ORDER BY position`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []models.HistoryEntry{}
	for rows.Next() {
		var e models.HistoryEntry
		if err := rows.Scan(&e.Date, &e.Completed); err != nil {
			return nil, err
		}
		history = append(history, e)
	}
	return history, rows.Err()
}

func (s *PostgresStore) SaveHabits(habits []models.Habit) error {
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
		_, err := tx.Exec(`
			INSERT INTO habits (id, name, icon, color, frequency, completed, streak, total_completed, created_date, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			h.ID, h.Name, h.Icon, h.Color, string(h.Frequency), h.Completed, h.Streak, h.TotalCompleted, h.CreatedDate, pos)
		if err != nil {
			return err
		}

		for entryPos, e := range h.History {
			_, err := tx.Exec(`
				INSERT INTO habit_history (habit_id, position, day, completed)
				VALUES ($1, $2, $3, $4)`,
				h.ID, entryPos, e.Date, e.Completed)
			if err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

func (s *PostgresStore) GetValue(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}

	row := s.db.QueryRow("SELECT value FROM kv WHERE key = $1", key)
	var value string
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (s *PostgresStore) SetValue(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, key, value)
	return err
}

func (s *PostgresStore) DeleteValue(key string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	_, err := s.db.Exec("DELETE FROM kv WHERE key = $1", key)
	return err
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
