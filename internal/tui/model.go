package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/habitleaf/internal/ledger"
	"github.com/julianstephens/habitleaf/internal/models"
)

type sessionState int

const (
	stateList sessionState = iota
	stateAdd
	stateConfirmDelete
)

type habitForm struct {
	Name      string
	Icon      string
	Color     string
	Frequency string
}

// Model is the interactive habit board. Mutations go through the
// ledger and are persisted with the save callback after each change.
type Model struct {
	ledger   *ledger.Ledger
	settings models.Settings
	save     func() error

	state    sessionState
	cursor   int
	keys     KeyMap
	help     help.Model
	form     *huh.Form
	draft    *habitForm
	deleteID string
	status   string
	errMsg   string
	width    int
	height   int
	quitting bool
}

func NewModel(led *ledger.Ledger, settings models.Settings, save func() error) Model {
	return Model{
		ledger:   led,
		settings: settings,
		save:     save,
		state:    stateList,
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) newAddForm() *huh.Form {
	m.draft = &habitForm{
		Icon:      "🌱",
		Color:     "#10B981",
		Frequency: string(models.FrequencyDaily),
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&m.draft.Name).
				Validate(func(s string) error {
					if s == "" {
						return errEmptyName
					}
					return nil
				}),
			huh.NewInput().
				Title("Icon").
				Value(&m.draft.Icon),
			huh.NewInput().
				Title("Color").
				Value(&m.draft.Color),
			huh.NewSelect[string]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", string(models.FrequencyDaily)),
					huh.NewOption("Weekly", string(models.FrequencyWeekly)),
					huh.NewOption("Monthly", string(models.FrequencyMonthly)),
				).
				Value(&m.draft.Frequency),
		),
	)
}
