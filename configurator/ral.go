package configurator

import (
	"strings"

	"luminaire-configurator/utils"
)

// RALPlaceholder is shown, muted, in the RAL field until it is first focused
const RALPlaceholder = "Enter RAL code"

// RALState is the state of the custom RAL finish field
type RALState int

const (
	// RALHidden: a catalog finish is selected, the field is not shown
	RALHidden RALState = iota
	// RALEditing: the RAL finish is selected and the field is empty
	RALEditing
	// RALEntered: the field holds typed text
	RALEntered
)

func (s RALState) String() string {
	switch s {
	case RALEditing:
		return "editing"
	case RALEntered:
		return "entered"
	default:
		return "hidden"
	}
}

// RALField tracks the free-form RAL code input
type RALField struct {
	State       RALState
	Text        string // Text as typed by the user
	Placeholder bool   // Field still shows RALPlaceholder
}

// Display returns the text the field shows
func (f RALField) Display() string {
	if f.Placeholder {
		return RALPlaceholder
	}
	return f.Text
}

// Active reports whether the RAL finish is selected
func (f RALField) Active() bool {
	return f.State != RALHidden
}

// open shows the field with its placeholder
func (f *RALField) open() {
	*f = RALField{State: RALEditing, Placeholder: true}
}

// focus clears the placeholder on first focus
func (f *RALField) focus() {
	if f.Placeholder {
		f.Placeholder = false
		f.Text = ""
	}
}

// edit records new field text and returns the finish value it stands for.
// Only the digits reach the order code; text without digits keeps the bare "RAL".
func (f *RALField) edit(text string) string {
	f.Placeholder = false
	f.Text = text

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		f.State = RALEditing
		return utils.RALPrefix
	}
	f.State = RALEntered
	return utils.RALPrefix + utils.DigitsOnly(trimmed)
}

// close hides the field, drops its text and restores the placeholder
func (f *RALField) close() {
	*f = RALField{State: RALHidden, Placeholder: true}
}
