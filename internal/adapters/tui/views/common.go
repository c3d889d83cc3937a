package views

import "linkreport/internal/domain"

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// View switching messages

// SwitchToListMsg returns to the preset list
type SwitchToListMsg struct{}

// SwitchToFormMsg opens the add/edit form
type SwitchToFormMsg struct {
	Preset domain.PresetConfig
	IsNew  bool
}

// SwitchToDeleteMsg opens the delete confirmation
type SwitchToDeleteMsg struct {
	Preset domain.PresetConfig
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// PresetsChangedMsg indicates the persisted preset list changed
type PresetsChangedMsg struct {
	Message string
}

// FormErrMsg indicates a validation or persistence error in the form
type FormErrMsg struct {
	Err error
}

// RunFinishedMsg reports the outcome of a report generation
type RunFinishedMsg struct {
	Message string
	Err     error
}
