package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"linkreport/internal/adapters/tui/styles"
	"linkreport/internal/application/commands"
	"linkreport/internal/domain"
	"linkreport/internal/ports"
)

// ConfirmKeyMap defines key bindings for the delete confirmation
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var ConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "delete")),
	Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
}

// ConfirmDeleteModel asks for confirmation before deleting a preset
type ConfirmDeleteModel struct {
	ViewState
	store  ports.PresetStore
	preset domain.PresetConfig
}

// NewConfirmDeleteModel creates a new delete confirmation model
func NewConfirmDeleteModel(store ports.PresetStore) *ConfirmDeleteModel {
	return &ConfirmDeleteModel{store: store}
}

// SetPreset sets the preset to be deleted
func (m *ConfirmDeleteModel) SetPreset(preset domain.PresetConfig) {
	m.preset = preset
	m.ClearMessage()
}

// Init initializes the confirmation view
func (m *ConfirmDeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmDeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case FormErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, ConfirmKeys.Confirm):
			name := m.preset.Name
			return m, func() tea.Msg {
				result, err := commands.NewDeletePresetCommand(m.store, name).Execute(context.Background())
				if err != nil {
					return FormErrMsg{Err: err}
				}
				return PresetsChangedMsg{Message: result.Message}
			}

		case key.Matches(msg, ConfirmKeys.Cancel):
			return m, func() tea.Msg { return SwitchToListMsg{} }
		}
	}

	return m, nil
}

// View renders the confirmation prompt
func (m *ConfirmDeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete Preset"))
	b.WriteString("\n")
	b.WriteString("Delete preset ")
	b.WriteString(styles.PresetName.Render(m.preset.Name))
	b.WriteString("?\n")
	b.WriteString(styles.Subtitle.Render("The generated note at " + m.preset.OutputNotePath() + " is left in place."))
	b.WriteString("\n")

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderKeyHelp(ConfirmKeys.Confirm, ConfirmKeys.Cancel))

	return styles.App.Render(b.String())
}
