package models

// Settings holds the scalar application state: interface language, theme
// palette, and whether the premium tier is active.
type Settings struct {
	Language     string `json:"language"` // tr | en | de
	ThemePalette string `json:"theme_palette"`
	Premium      bool   `json:"premium"`
}
