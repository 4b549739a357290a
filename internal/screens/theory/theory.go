package theory

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maxcolbe/studentsky-svet/internal/content"
	qz "github.com/maxcolbe/studentsky-svet/internal/quiz"
	"github.com/maxcolbe/studentsky-svet/internal/router"
	"github.com/maxcolbe/studentsky-svet/internal/screen"
	quizscreen "github.com/maxcolbe/studentsky-svet/internal/screens/quiz"
	"github.com/maxcolbe/studentsky-svet/internal/ui/components"
	"github.com/maxcolbe/studentsky-svet/internal/ui/layout"
	"github.com/maxcolbe/studentsky-svet/internal/ui/theme"
)

// TheoryScreen shows the study text for one test, with a shortcut to
// start the test itself.
type TheoryScreen struct {
	quiz     content.Quiz
	text     string
	recorder qz.CompletionRecorder
	vp       viewport.Model
}

var _ screen.Screen = (*TheoryScreen)(nil)
var _ screen.KeyHintProvider = (*TheoryScreen)(nil)

// New creates a TheoryScreen for q with the given text.
func New(q content.Quiz, text string, recorder qz.CompletionRecorder) *TheoryScreen {
	vp := viewport.New(viewport.WithWidth(60), viewport.WithHeight(10))
	vp.SoftWrap = true
	vp.Style = lipgloss.NewStyle().Foreground(theme.TextDim)
	vp.SetContent(text)
	return &TheoryScreen{
		quiz:     q,
		text:     text,
		recorder: recorder,
		vp:       vp,
	}
}

func (t *TheoryScreen) Init() tea.Cmd {
	return nil
}

func (t *TheoryScreen) Title() string {
	return "Teória · " + t.quiz.Key.Test
}

func (t *TheoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Posúvať"},
		{Key: "S", Description: "Spustiť Test"},
		{Key: "Esc", Description: "Späť"},
	}
}

func (t *TheoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return t, func() tea.Msg { return router.PopScreenMsg{} }
		case "s", "S", "enter":
			q, rec := t.quiz, t.recorder
			return t, func() tea.Msg {
				return router.PushScreenMsg{Screen: quizscreen.New(q, rec)}
			}
		}
	}

	var cmd tea.Cmd
	t.vp, cmd = t.vp.Update(msg)
	return t, cmd
}

// ScrollOffset returns how far the text has been scrolled.
func (t *TheoryScreen) ScrollOffset() int {
	return t.vp.YOffset()
}

func (t *TheoryScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	heading := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(theme.Title.Render(t.quiz.Key.Test) + "\n" +
			theme.Subtitle.Render(t.quiz.Key.Subject))

	// Leave room for the heading and the start hint.
	vpHeight := height - lipgloss.Height(heading) - 4
	if vpHeight < 3 {
		vpHeight = 3
	}
	t.vp.SetWidth(cw)
	t.vp.SetHeight(vpHeight)

	start := lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		components.NewButton("S  Spustiť Test", true, nil).View())

	body := lipgloss.JoinVertical(lipgloss.Left, heading, "", t.vp.View(), start)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, body)
}
