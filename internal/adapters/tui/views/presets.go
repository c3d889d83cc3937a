package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"linkreport/internal/adapters/tui/styles"
	"linkreport/internal/application/commands"
	"linkreport/internal/domain"
	"linkreport/internal/ports"
)

// PresetKeyMap defines key bindings for the preset list view
type PresetKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Run     key.Binding
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Copy    key.Binding
	Verbose key.Binding
	Help    key.Binding
	Quit    key.Binding
}

var PresetKeys = PresetKeyMap{
	Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Run:     key.NewBinding(key.WithKeys("enter", "r"), key.WithHelp("enter/r", "run report")),
	Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Copy:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy output path")),
	Verbose: key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "toggle verbose")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// PresetListModel is the model for the preset list view
type PresetListModel struct {
	ViewState
	store ports.PresetStore
	vault ports.Vault
	log   *zap.SugaredLogger

	presets []domain.PresetConfig
	cursor  int
	running bool
}

// NewPresetListModel creates a new preset list view model
func NewPresetListModel(store ports.PresetStore, vault ports.Vault, log *zap.SugaredLogger) *PresetListModel {
	return &PresetListModel{store: store, vault: vault, log: log}
}

// Init loads the presets
func (m *PresetListModel) Init() tea.Cmd {
	return m.Reload()
}

// Reload re-reads the preset list from the store
func (m *PresetListModel) Reload() tea.Cmd {
	presets, err := m.store.Load()
	if err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	m.presets = presets
	if m.cursor >= len(presets) {
		m.cursor = max(0, len(presets)-1)
	}
	return nil
}

// Selected returns the preset under the cursor
func (m *PresetListModel) Selected() (domain.PresetConfig, bool) {
	if m.cursor < 0 || m.cursor >= len(m.presets) {
		return domain.PresetConfig{}, false
	}
	return m.presets[m.cursor], true
}

// Update handles messages for the preset list view
func (m *PresetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case RunFinishedMsg:
		m.running = false
		if msg.Err != nil {
			m.SetMessage(msg.Err.Error(), true)
		} else {
			m.SetMessage(msg.Message, false)
		}
		return m, m.Reload()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, PresetKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, PresetKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, PresetKeys.Down):
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, PresetKeys.Run):
			return m, m.runSelected()

		case key.Matches(msg, PresetKeys.Add):
			return m, func() tea.Msg {
				return SwitchToFormMsg{Preset: domain.PresetConfig{LinkToFiles: true}, IsNew: true}
			}

		case key.Matches(msg, PresetKeys.Edit):
			if preset, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return SwitchToFormMsg{Preset: preset}
				}
			}
			return m, nil

		case key.Matches(msg, PresetKeys.Delete):
			if preset, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return SwitchToDeleteMsg{Preset: preset}
				}
			}
			return m, nil

		case key.Matches(msg, PresetKeys.Copy):
			if preset, ok := m.Selected(); ok {
				clipboard.WriteAll(preset.OutputNotePath())
				m.SetMessage("Copied "+preset.OutputNotePath(), false)
			}
			return m, nil

		case key.Matches(msg, PresetKeys.Verbose):
			verbose := !m.store.Verbose()
			if err := m.store.SetVerbose(verbose); err != nil {
				m.SetMessage(err.Error(), true)
				return m, nil
			}
			m.SetMessage(fmt.Sprintf("Verbose logging: %v", verbose), false)
			return m, nil

		case key.Matches(msg, PresetKeys.Help):
			return m, func() tea.Msg {
				return SwitchToHelpMsg{}
			}
		}
	}

	return m, nil
}

func (m *PresetListModel) runSelected() tea.Cmd {
	preset, ok := m.Selected()
	if !ok || m.running {
		return nil
	}
	m.running = true
	m.SetMessage("Generating "+preset.Name+"...", false)

	presets := m.presets
	return func() tea.Msg {
		cmd := commands.NewReportCommand(m.vault, presets, m.log, preset.Name)
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return RunFinishedMsg{Err: err}
		}
		return RunFinishedMsg{Message: result.Message}
	}
}

// View renders the preset list view
func (m *PresetListModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Link Report Presets"))
	b.WriteString("\n")

	if len(m.presets) == 0 {
		b.WriteString(styles.Subtitle.Render("No presets yet. Press 'a' to add one."))
		b.WriteString("\n")
	}

	for i, p := range m.presets {
		line := fmt.Sprintf("%s  %s%s",
			styles.PresetName.Render(p.Name),
			styles.PresetPath.Render(p.OutputNotePath()),
			styles.PresetFlags.Render(flagSummary(p)),
		)
		if i == m.cursor {
			line = styles.PresetSelected.Render("> ") + line
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.Message != "" {
		if m.MessageErr {
			b.WriteString(styles.ErrorMsg.Render(m.Message))
		} else {
			b.WriteString(styles.Success.Render(m.Message))
		}
		b.WriteString("\n")
	}

	b.WriteString(renderKeyHelp(
		PresetKeys.Run, PresetKeys.Add, PresetKeys.Edit, PresetKeys.Delete,
		PresetKeys.Verbose, PresetKeys.Help, PresetKeys.Quit,
	))

	return styles.App.Render(b.String())
}

func flagSummary(p domain.PresetConfig) string {
	var flags []string
	if p.IncludeEmbeds {
		flags = append(flags, "embeds")
	}
	if p.NonexistentOnly {
		flags = append(flags, "nonexistent-only")
	}
	if p.SortAlphabetical {
		flags = append(flags, "alphabetical")
	}
	if !p.LinkToFiles {
		flags = append(flags, "plain")
	}
	if len(flags) == 0 {
		return ""
	}
	return "  [" + strings.Join(flags, ", ") + "]"
}

func renderKeyHelp(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts,
			styles.HelpKey.Render(b.Help().Key)+" "+styles.HelpDesc.Render(b.Help().Desc))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}
