package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/maxcolbe/studentsky-svet/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Leaver is implemented by screens that hold state which must be released
// when the router removes them from the stack.
type Leaver interface {
	Leave()
}

// ProfileChangedMsg tells the app that the username or the completed-tests
// count changed and the header should be refreshed.
type ProfileChangedMsg struct{}

// ProfileChanged is a command that emits ProfileChangedMsg.
func ProfileChanged() tea.Msg {
	return ProfileChangedMsg{}
}
