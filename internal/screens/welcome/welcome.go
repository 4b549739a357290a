package welcome

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maxcolbe/studentsky-svet/internal/router"
	"github.com/maxcolbe/studentsky-svet/internal/screen"
	"github.com/maxcolbe/studentsky-svet/internal/ui/components"
	"github.com/maxcolbe/studentsky-svet/internal/ui/layout"
	"github.com/maxcolbe/studentsky-svet/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	// revealAt is when the banner gives way to the name prompt.
	revealAt = 1000 * time.Millisecond
)

// maxNameLen caps the username input.
const maxNameLen = 32

// NameSetter stores the learner's name.
type NameSetter interface {
	SetUsername(ctx context.Context, name string)
}

type tickMsg time.Time

// WelcomeScreen greets a first-time learner and asks for their name before
// moving on to the home screen.
type WelcomeScreen struct {
	names        NameSetter
	homeFactory  func() screen.Screen
	input        components.TextInput
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that saves the entered name to names and then
// replaces itself with the screen produced by homeFactory.
func New(names NameSetter, homeFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		names:       names,
		homeFactory: homeFactory,
		input:       components.NewTextInput("meno", maxNameLen),
	}
}

func (w *WelcomeScreen) Title() string {
	return "Vitajte"
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Batch(w.input.Init(), tick())
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) revealed() bool {
	return w.elapsed >= revealAt
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.revealed() {
			return w, nil
		}
		w.elapsed += tickInterval
		return w, tick()

	case tea.KeyPressMsg:
		// The first key skips the intro.
		if !w.revealed() {
			w.elapsed = revealAt
			return w, nil
		}
		if msg.Code == tea.KeyEnter {
			return w, w.submit()
		}
	}

	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	return w, cmd
}

func (w *WelcomeScreen) submit() tea.Cmd {
	if w.transitioned {
		return nil
	}
	name := w.input.Value()
	if name == "" {
		w.input.Submit(false)
		return nil
	}
	w.transitioned = true
	w.names.SetUsername(context.Background(), name)

	home := w.homeFactory()
	return tea.Batch(
		func() tea.Msg { return router.ReplaceScreenMsg{Screen: home} },
		screen.ProfileChanged,
	)
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{components.RenderBanner(width)}

	if w.revealed() {
		prompt := lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("Zadajte svoje meno")
		sections = append(sections, "", prompt, "", w.input.View())
	} else {
		hint := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("stlačte ľubovoľný kláves")
		sections = append(sections, "", hint)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.TrimRight(content, "\n"))
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if !w.revealed() {
		return []layout.KeyHint{{Key: "any key", Description: "Pokračovať"}}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Potvrdiť"},
		{Key: "Ctrl+C", Description: "Koniec"},
	}
}
