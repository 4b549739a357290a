package testlist

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maxcolbe/studentsky-svet/internal/content"
	qz "github.com/maxcolbe/studentsky-svet/internal/quiz"
	"github.com/maxcolbe/studentsky-svet/internal/router"
	"github.com/maxcolbe/studentsky-svet/internal/screen"
	"github.com/maxcolbe/studentsky-svet/internal/screens/notice"
	quizscreen "github.com/maxcolbe/studentsky-svet/internal/screens/quiz"
	"github.com/maxcolbe/studentsky-svet/internal/screens/theory"
	"github.com/maxcolbe/studentsky-svet/internal/ui/components"
	"github.com/maxcolbe/studentsky-svet/internal/ui/layout"
	"github.com/maxcolbe/studentsky-svet/internal/ui/theme"
)

const noTheoryMessage = "Teória k tomuto testu nie je k dispozícii."

// TestListScreen lists the tests of one topic. Enter opens the theory,
// S starts the test directly.
type TestListScreen struct {
	catalog  *content.Catalog
	topic    content.Topic
	subject  string
	recorder qz.CompletionRecorder
	menu     components.Menu
}

var _ screen.Screen = (*TestListScreen)(nil)
var _ screen.KeyHintProvider = (*TestListScreen)(nil)

// New creates the list for topic within subject.
func New(catalog *content.Catalog, subject string, topic content.Topic, recorder qz.CompletionRecorder) *TestListScreen {
	s := &TestListScreen{
		catalog:  catalog,
		topic:    topic,
		subject:  subject,
		recorder: recorder,
	}

	items := make([]components.MenuItem, 0, len(topic.Tests))
	for _, name := range topic.Tests {
		key := content.Key{Subject: subject, Topic: topic.ID, Test: name}
		items = append(items, components.MenuItem{
			Label:    name,
			Subtitle: s.describe(key),
			Action:   func() tea.Cmd { return s.openTheory(key) },
		})
	}
	s.menu = components.NewMenu(items)
	return s
}

func (s *TestListScreen) Init() tea.Cmd {
	return nil
}

func (s *TestListScreen) Title() string {
	return s.topic.Title
}

func (s *TestListScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Vybrať"},
		{Key: "Enter", Description: "Teória"},
		{Key: "S", Description: "Test"},
		{Key: "Esc", Description: "Späť"},
	}
}

func (s *TestListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "s", "S":
			if key, ok := s.selectedKey(); ok {
				return s, s.startQuiz(key)
			}
			return s, nil
		case "t", "T":
			if key, ok := s.selectedKey(); ok {
				return s, s.openTheory(key)
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TestListScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
		Render(theme.Title.Render(s.topic.Title)))
	b.WriteString("\n")
	if s.topic.Subtitle != "" {
		b.WriteString(lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).
			Render(theme.Subtitle.Render(s.topic.Subtitle)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if len(s.topic.Tests) == 0 {
		b.WriteString(theme.Hint.Render("Žiadne testy."))
	} else {
		b.WriteString(components.Card(s.menu.View(), cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *TestListScreen) selectedKey() (content.Key, bool) {
	i := s.menu.Selected
	if i < 0 || i >= len(s.topic.Tests) {
		return content.Key{}, false
	}
	return content.Key{Subject: s.subject, Topic: s.topic.ID, Test: s.topic.Tests[i]}, true
}

// describe builds the dimmed line under a test name.
func (s *TestListScreen) describe(key content.Key) string {
	q, err := s.catalog.Quiz(key)
	if err != nil {
		return ""
	}
	desc := fmt.Sprintf("%d otázok", q.Len())
	if _, err := s.catalog.Theory(key); err == nil {
		desc += " · teória"
	}
	return desc
}

func (s *TestListScreen) openTheory(key content.Key) tea.Cmd {
	q, err := s.catalog.Quiz(key)
	if err != nil {
		return pushNotice(key.Test, err.Error())
	}
	text, err := s.catalog.Theory(key)
	if err != nil {
		return pushNotice(key.Test, noTheoryMessage)
	}
	rec := s.recorder
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: theory.New(q, text, rec)}
	}
}

func (s *TestListScreen) startQuiz(key content.Key) tea.Cmd {
	q, err := s.catalog.Quiz(key)
	if err != nil {
		return pushNotice(key.Test, err.Error())
	}
	rec := s.recorder
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quizscreen.New(q, rec)}
	}
}

func pushNotice(title, message string) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: notice.New(title, message)}
	}
}
