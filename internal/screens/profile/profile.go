package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maxcolbe/studentsky-svet/internal/router"
	"github.com/maxcolbe/studentsky-svet/internal/screen"
	"github.com/maxcolbe/studentsky-svet/internal/ui/components"
	"github.com/maxcolbe/studentsky-svet/internal/ui/layout"
	"github.com/maxcolbe/studentsky-svet/internal/ui/theme"
)

// Store is the profile data the screen reads and edits.
type Store interface {
	ReadCompletedCount(ctx context.Context) int
	ResetCompletedCount(ctx context.Context)
	Username(ctx context.Context) (string, bool)
	SetUsername(ctx context.Context, name string)
}

type mode int

const (
	modeView mode = iota
	modeEditName
	modeConfirmReset
)

// maxNameLen caps the username input.
const maxNameLen = 32

// ProfileScreen shows the username and completed-tests count, and lets the
// learner rename themselves or reset progress.
type ProfileScreen struct {
	store     Store
	username  string
	completed int
	mode      mode
	menu      components.Menu
	input     components.TextInput
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen backed by store.
func New(store Store) *ProfileScreen {
	p := &ProfileScreen{store: store}
	p.menu = components.NewMenu([]components.MenuItem{
		{Label: "Change Username", Action: p.startEdit},
		{Label: "Reset Progress", Action: p.startReset},
	})
	p.refresh()
	return p
}

func (p *ProfileScreen) Init() tea.Cmd {
	return nil
}

func (p *ProfileScreen) Title() string {
	return "Profil"
}

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	switch p.mode {
	case modeEditName:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Uložiť"},
			{Key: "Esc", Description: "Zrušiť"},
		}
	case modeConfirmReset:
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Vybrať"},
		{Key: "Enter", Description: "Potvrdiť"},
		{Key: "Esc", Description: "Späť"},
	}
}

// Completed returns the count currently shown.
func (p *ProfileScreen) Completed() int {
	return p.completed
}

// Username returns the name currently shown.
func (p *ProfileScreen) Username() string {
	return p.username
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case screen.ProfileChangedMsg:
		p.refresh()
		return p, nil
	case tea.KeyMsg:
		switch p.mode {
		case modeEditName:
			return p.handleEditKey(msg)
		case modeConfirmReset:
			return p.handleConfirmKey(msg.String())
		}
		if msg.String() == "esc" {
			return p, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	if p.mode == modeEditName {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *ProfileScreen) handleEditKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "esc":
		p.mode = modeView
		return p, nil
	case "enter":
		name := p.input.Value()
		if name == "" {
			p.input.Submit(false)
			return p, nil
		}
		p.store.SetUsername(context.Background(), name)
		p.mode = modeView
		p.refresh()
		return p, screen.ProfileChanged
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *ProfileScreen) handleConfirmKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "y", "Y":
		p.store.ResetCompletedCount(context.Background())
		p.mode = modeView
		p.refresh()
		return p, screen.ProfileChanged
	case "n", "N", "esc":
		p.mode = modeView
	}
	return p, nil
}

func (p *ProfileScreen) startEdit() tea.Cmd {
	p.mode = modeEditName
	p.input = components.NewTextInput("Zadajte Vaše meno", maxNameLen)
	p.input.SetValue(p.username)
	return p.input.Init()
}

func (p *ProfileScreen) startReset() tea.Cmd {
	p.mode = modeConfirmReset
	return nil
}

func (p *ProfileScreen) refresh() {
	ctx := context.Background()
	p.username, _ = p.store.Username(ctx)
	p.completed = p.store.ReadCompletedCount(ctx)
}

func (p *ProfileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	name := p.username
	if name == "" {
		name = "(bez mena)"
	}

	var sections []string
	sections = append(sections,
		center.Render(lipgloss.NewStyle().Foreground(theme.Primary).Render("◉")),
		center.Render(theme.Body.Bold(true).Render(name)),
		"",
		center.Render(theme.Body.Bold(true).Render(fmt.Sprintf("Tests completed: %d", p.completed))),
		"",
	)

	switch p.mode {
	case modeEditName:
		sections = append(sections,
			center.Render(theme.Hint.Render("Zadajte Vaše meno")),
			center.Render(p.input.View()))
	case modeConfirmReset:
		sections = append(sections,
			center.Render(theme.Notice.Render("Are you sure? (y/n)")))
	default:
		sections = append(sections, components.Card(p.menu.View(), cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		strings.Join(sections, "\n"))
}
