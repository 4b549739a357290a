package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/maxcolbe/studentsky-svet/internal/content"
	qz "github.com/maxcolbe/studentsky-svet/internal/quiz"
	"github.com/maxcolbe/studentsky-svet/internal/router"
	"github.com/maxcolbe/studentsky-svet/internal/screen"
	"github.com/maxcolbe/studentsky-svet/internal/screens/about"
	"github.com/maxcolbe/studentsky-svet/internal/screens/profile"
	"github.com/maxcolbe/studentsky-svet/internal/screens/topics"
	"github.com/maxcolbe/studentsky-svet/internal/ui/components"
	"github.com/maxcolbe/studentsky-svet/internal/ui/layout"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	// subjectCount separates subject buttons from the app buttons below.
	subjectCount int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen with one button per subject followed by
// profile, about and exit.
func New(catalog *content.Catalog, profileStore profile.Store, recorder qz.CompletionRecorder) *HomeScreen {
	var items []components.MenuItem
	var labels []string

	for _, s := range catalog.Subjects() {
		subj := s
		labels = append(labels, subj.Name)
		items = append(items, components.MenuItem{
			Label: subj.Name,
			Action: func() tea.Cmd {
				return push(topics.New(catalog, subj, recorder))
			},
		})
	}
	subjectCount := len(items)

	labels = append(labels, "Profil", "O aplikácii", "Koniec")
	items = append(items,
		components.MenuItem{Label: "Profil", Action: func() tea.Cmd {
			return push(profile.New(profileStore))
		}},
		components.MenuItem{Label: "O aplikácii", Action: func() tea.Cmd {
			return push(about.New())
		}},
		components.MenuItem{Label: "Koniec", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{
		menu:         components.NewMenu(items),
		menuLabels:   labels,
		subjectCount: subjectCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "i":
			return h, push(about.New())
		case "p":
			return h, h.menu.Items[h.subjectCount].Action()
		case "q":
			return h, tea.Quit
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if compact {
		sections = append(sections, renderMenuCompact(h.menuLabels, h.menu.Selected, h.subjectCount, cw))
	} else {
		sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, h.subjectCount, cw))
	}

	content := strings.Join(sections, "\n\n")
	return renderFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Domov"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Vybrať"},
		{Key: "Enter", Description: "Otvoriť"},
		{Key: "P", Description: "Profil"},
		{Key: "I", Description: "O aplikácii"},
		{Key: "Q", Description: "Koniec"},
	}
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}
