package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"linkreport/internal/adapters/tui/views"
	"linkreport/internal/ports"
)

// View identifies the currently active view
type View int

const (
	ViewPresets View = iota
	ViewForm
	ViewConfirmDelete
	ViewHelp
)

// App is the root model that routes between views
type App struct {
	current View

	presets *views.PresetListModel
	form    *views.FormModel
	confirm *views.ConfirmDeleteModel
	help    *views.HelpModel
}

// NewApp creates the root TUI model
func NewApp(store ports.PresetStore, vault ports.Vault, log *zap.SugaredLogger) *App {
	return &App{
		current: ViewPresets,
		presets: views.NewPresetListModel(store, vault, log),
		form:    views.NewFormModel(store),
		confirm: views.NewConfirmDeleteModel(store),
		help:    views.NewHelpModel(),
	}
}

// Init initializes the active view
func (a *App) Init() tea.Cmd {
	return a.presets.Init()
}

// Update routes messages to the active view and handles view switching
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Every view tracks the terminal size.
		a.presets.Update(msg)
		a.form.Update(msg)
		a.confirm.Update(msg)
		a.help.Update(msg)
		return a, nil

	case views.SwitchToListMsg:
		a.current = ViewPresets
		return a, a.presets.Reload()

	case views.SwitchToFormMsg:
		a.current = ViewForm
		a.form.SetPreset(msg.Preset, msg.IsNew)
		return a, a.form.Init()

	case views.SwitchToDeleteMsg:
		a.current = ViewConfirmDelete
		a.confirm.SetPreset(msg.Preset)
		return a, nil

	case views.SwitchToHelpMsg:
		a.current = ViewHelp
		return a, nil

	case views.PresetsChangedMsg:
		a.current = ViewPresets
		cmd := a.presets.Reload()
		a.presets.SetMessage(msg.Message, false)
		return a, cmd
	}

	var cmd tea.Cmd
	switch a.current {
	case ViewForm:
		_, cmd = a.form.Update(msg)
	case ViewConfirmDelete:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	default:
		_, cmd = a.presets.Update(msg)
	}
	return a, cmd
}

// View renders the active view
func (a *App) View() string {
	switch a.current {
	case ViewForm:
		return a.form.View()
	case ViewConfirmDelete:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.presets.View()
	}
}
