package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"linkreport/internal/adapters/tui/styles"
	"linkreport/internal/application/commands"
	"linkreport/internal/domain"
	"linkreport/internal/ports"
)

// FormKeyMap defines key bindings for the preset form
type FormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
}

var FormKeys = FormKeyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
}

// Form field indices: the text inputs first, then the toggles.
const (
	fieldName = iota
	fieldOutput
	fieldExcludeFromFilename
	fieldExcludeFromGlob
	fieldExcludeToFilename
	fieldExcludeToGlob
	fieldIncludeEmbeds
	fieldNonexistentOnly
	fieldSortAlphabetical
	fieldLinkToFiles
	fieldCount
)

var textFieldLabels = []string{
	"Name",
	"Output path",
	"Exclude sources by filename (regex, comma-separated)",
	"Exclude sources by path (glob, comma-separated)",
	"Exclude targets by filename (regex, comma-separated)",
	"Exclude targets by path (glob, comma-separated)",
}

var toggleLabels = []string{
	"Include embeds",
	"Nonexistent targets only",
	"Sort alphabetically",
	"Wrap resolved targets in [[links]]",
}

// FormModel is the add/edit preset form
type FormModel struct {
	ViewState
	store ports.PresetStore

	isNew   bool
	inputs  []textinput.Model
	toggles [4]bool
	focused int
}

// NewFormModel creates a new preset form model
func NewFormModel(store ports.PresetStore) *FormModel {
	inputs := make([]textinput.Model, 6)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].CharLimit = 200
	}
	inputs[fieldName].Placeholder = "preset name"
	inputs[fieldOutput].Placeholder = "reports/links.md"
	return &FormModel{store: store, inputs: inputs}
}

// SetPreset loads a preset into the form
func (m *FormModel) SetPreset(preset domain.PresetConfig, isNew bool) {
	m.isNew = isNew
	m.ClearMessage()

	m.inputs[fieldName].SetValue(preset.Name)
	m.inputs[fieldOutput].SetValue(preset.OutputPath)
	m.inputs[fieldExcludeFromFilename].SetValue(strings.Join(preset.ExcludeFromFilename, ", "))
	m.inputs[fieldExcludeFromGlob].SetValue(strings.Join(preset.ExcludeFromGlob, ", "))
	m.inputs[fieldExcludeToFilename].SetValue(strings.Join(preset.ExcludeToFilename, ", "))
	m.inputs[fieldExcludeToGlob].SetValue(strings.Join(preset.ExcludeToGlob, ", "))
	m.toggles = [4]bool{preset.IncludeEmbeds, preset.NonexistentOnly, preset.SortAlphabetical, preset.LinkToFiles}

	m.focus(fieldName)
	// The name is the stable identifier; it cannot change on edit.
	if !isNew {
		m.focus(fieldOutput)
	}
}

// Init initializes the form
func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form
func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case FormErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, FormKeys.Cancel):
			return m, func() tea.Msg { return SwitchToListMsg{} }

		case key.Matches(msg, FormKeys.Next):
			m.focus((m.focused + 1) % fieldCount)
			return m, nil

		case key.Matches(msg, FormKeys.Prev):
			m.focus((m.focused + fieldCount - 1) % fieldCount)
			return m, nil

		case key.Matches(msg, FormKeys.Toggle) && m.focused >= fieldIncludeEmbeds:
			m.toggles[m.focused-fieldIncludeEmbeds] = !m.toggles[m.focused-fieldIncludeEmbeds]
			return m, nil

		case key.Matches(msg, FormKeys.Submit):
			return m, m.save()
		}
	}

	// Update focused input
	if m.focused < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *FormModel) focus(field int) {
	m.focused = field
	for i := range m.inputs {
		if i == field {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m *FormModel) save() tea.Cmd {
	preset := domain.PresetConfig{
		Name:                strings.TrimSpace(m.inputs[fieldName].Value()),
		OutputPath:          strings.TrimSpace(m.inputs[fieldOutput].Value()),
		ExcludeFromFilename: splitPatterns(m.inputs[fieldExcludeFromFilename].Value()),
		ExcludeFromGlob:     splitPatterns(m.inputs[fieldExcludeFromGlob].Value()),
		ExcludeToFilename:   splitPatterns(m.inputs[fieldExcludeToFilename].Value()),
		ExcludeToGlob:       splitPatterns(m.inputs[fieldExcludeToGlob].Value()),
		IncludeEmbeds:       m.toggles[0],
		NonexistentOnly:     m.toggles[1],
		SortAlphabetical:    m.toggles[2],
		LinkToFiles:         m.toggles[3],
	}
	isNew := m.isNew

	return func() tea.Msg {
		ctx := context.Background()

		if isNew {
			result, err := commands.NewAddPresetCommand(m.store, preset.Name).Execute(ctx)
			if err != nil {
				return FormErrMsg{Err: err}
			}
			if preset.OutputPath == "" {
				preset.OutputPath = result.Preset.OutputPath
			}
		}

		result, err := commands.NewEditPresetCommand(m.store, preset).Execute(ctx)
		if err != nil {
			return FormErrMsg{Err: err}
		}
		return PresetsChangedMsg{Message: result.Message}
	}
}

func splitPatterns(value string) []string {
	var patterns []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			patterns = append(patterns, part)
		}
	}
	return patterns
}

// View renders the form
func (m *FormModel) View() string {
	var b strings.Builder

	if m.isNew {
		b.WriteString(styles.Title.Render("Add Preset"))
	} else {
		b.WriteString(styles.Title.Render("Edit Preset"))
	}
	b.WriteString("\n")

	for i, input := range m.inputs {
		if !m.isNew && i == fieldName {
			b.WriteString(styles.InputLabel.Render(textFieldLabels[i] + ": "))
			b.WriteString(styles.MutedText.Render(input.Value()))
			b.WriteString("\n")
			continue
		}
		b.WriteString(styles.InputLabel.Render(textFieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	for i, label := range toggleLabels {
		marker := styles.ToggleOff.Render("[ ]")
		if m.toggles[i] {
			marker = styles.ToggleOn.Render("[x]")
		}
		line := marker + " " + label
		if m.focused == fieldIncludeEmbeds+i {
			line = styles.PresetSelected.Render(">") + " " + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.Message != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(m.Message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderKeyHelp(FormKeys.Submit, FormKeys.Next, FormKeys.Toggle, FormKeys.Cancel))

	return styles.App.Render(b.String())
}
