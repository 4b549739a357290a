package topics

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maxcolbe/studentsky-svet/internal/content"
	qz "github.com/maxcolbe/studentsky-svet/internal/quiz"
	"github.com/maxcolbe/studentsky-svet/internal/router"
	"github.com/maxcolbe/studentsky-svet/internal/screen"
	"github.com/maxcolbe/studentsky-svet/internal/screens/testlist"
	"github.com/maxcolbe/studentsky-svet/internal/ui/components"
	"github.com/maxcolbe/studentsky-svet/internal/ui/layout"
	"github.com/maxcolbe/studentsky-svet/internal/ui/theme"
)

// TopicsScreen shows the topic cards of one subject.
type TopicsScreen struct {
	subject content.Subject
	menu    components.Menu
}

var _ screen.Screen = (*TopicsScreen)(nil)
var _ screen.KeyHintProvider = (*TopicsScreen)(nil)

// New creates the topic list for subject.
func New(catalog *content.Catalog, subject content.Subject, recorder qz.CompletionRecorder) *TopicsScreen {
	items := make([]components.MenuItem, 0, len(subject.Topics))
	for _, t := range subject.Topics {
		topic := t
		items = append(items, components.MenuItem{
			Label:    topic.Title,
			Subtitle: topic.Subtitle,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: testlist.New(catalog, subject.Name, topic, recorder),
					}
				}
			},
		})
	}
	return &TopicsScreen{
		subject: subject,
		menu:    components.NewMenu(items),
	}
}

func (s *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (s *TopicsScreen) Title() string {
	return s.subject.Name
}

func (s *TopicsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Vybrať"},
		{Key: "Enter", Description: "Otvoriť"},
		{Key: "Esc", Description: "Späť"},
	}
}

func (s *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TopicsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(theme.Title.Render(s.subject.Name))

	body := theme.Hint.Render("Žiadne témy.")
	if len(s.subject.Topics) > 0 {
		body = components.Card(s.menu.View(), cw)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		title+"\n\n"+body)
}
