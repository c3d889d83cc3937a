package notify

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"linkreport/internal/ports"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// Terminal writes transient user notices to stderr.
type Terminal struct {
	out io.Writer
}

// Ensure Terminal implements Notifier
var _ ports.Notifier = (*Terminal)(nil)

// NewTerminal creates a stderr-backed notifier
func NewTerminal() *Terminal {
	return &Terminal{out: os.Stderr}
}

// Notify prints a success notice
func (t *Terminal) Notify(msg string) {
	fmt.Fprintln(t.out, successStyle.Render(msg))
}

// NotifyError prints a failure notice
func (t *Terminal) NotifyError(msg string) {
	fmt.Fprintln(t.out, errorStyle.Render(msg))
}
