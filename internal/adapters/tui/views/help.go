package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"linkreport/internal/adapters/tui/styles"
)

// HelpModel shows the full key binding reference
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, func() tea.Msg { return SwitchToListMsg{} }
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Help"))
	b.WriteString("\n")

	sections := []struct {
		title string
		keys  []key.Binding
	}{
		{"Preset list", []key.Binding{
			PresetKeys.Up, PresetKeys.Down, PresetKeys.Run, PresetKeys.Add,
			PresetKeys.Edit, PresetKeys.Delete, PresetKeys.Copy,
			PresetKeys.Verbose, PresetKeys.Quit,
		}},
		{"Form", []key.Binding{
			FormKeys.Next, FormKeys.Prev, FormKeys.Toggle, FormKeys.Submit, FormKeys.Cancel,
		}},
	}

	for _, section := range sections {
		b.WriteString(styles.Subtitle.Render(section.title))
		b.WriteString("\n")
		for _, binding := range section.keys {
			b.WriteString("  ")
			b.WriteString(styles.HelpKey.Render(binding.Help().Key))
			b.WriteString("  ")
			b.WriteString(styles.HelpDesc.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.MutedText.Render("Press any key to return."))

	return styles.App.Render(b.String())
}
