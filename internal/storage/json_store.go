package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/habitleaf/internal/constants"
	"github.com/julianstephens/habitleaf/internal/models"
)

type jsonDocument struct {
	Version  int               `json:"version"`
	Settings models.Settings   `json:"settings"`
	Habits   []models.Habit    `json:"habits"`
	Values   map[string]string `json:"values"`
}

// JSONStore persists everything in a single pretty-printed JSON file. Used
// for debugging and for users who want a plain-text store.
type JSONStore struct {
	path string
	doc  *jsonDocument
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &jsonDocument{
		Version: 1,
		Settings: models.Settings{
			Language:     constants.DefaultLanguage,
			ThemePalette: constants.DefaultPalette,
		},
		Habits: []models.Habit{},
		Values: make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.doc != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'habitleaf init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &jsonDocument{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}

	// Ensure collections are initialized
	if s.doc.Habits == nil {
		s.doc.Habits = []models.Habit{}
	}
	if s.doc.Values == nil {
		s.doc.Values = make(map[string]string)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.doc == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) GetAllHabits() ([]models.Habit, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	habits := make([]models.Habit, len(s.doc.Habits))
	copy(habits, s.doc.Habits)
	return habits, nil
}

func (s *JSONStore) SaveHabits(habits []models.Habit) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}

	s.doc.Habits = make([]models.Habit, len(habits))
	copy(s.doc.Habits, habits)
	return s.save()
}

func (s *JSONStore) GetValue(key string) (string, bool, error) {
	if s.doc == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	value, ok := s.doc.Values[key]
	return value, ok, nil
}

func (s *JSONStore) SetValue(key, value string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.Values[key] = value
	return s.save()
}

func (s *JSONStore) DeleteValue(key string) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	delete(s.doc.Values, key)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
