package about

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maxcolbe/studentsky-svet/internal/router"
	"github.com/maxcolbe/studentsky-svet/internal/screen"
	"github.com/maxcolbe/studentsky-svet/internal/ui/components"
	"github.com/maxcolbe/studentsky-svet/internal/ui/layout"
	"github.com/maxcolbe/studentsky-svet/internal/ui/theme"
)

// Link is one of the school's public pages.
type Link struct {
	Label string
	URL   string
}

// Links lists the school's pages shown on the about screen.
var Links = []Link{
	{Label: "Instagram", URL: "https://www.instagram.com/sos_it_bb/"},
	{Label: "Web", URL: "https://www.sos-it.sk/"},
	{Label: "Facebook", URL: "https://www.facebook.com/sositbb/"},
}

const blurb = "Svet je aplikácia na precvičovanie učiva z maturitných predmetov. " +
	"Vytvorili ju študenti Strednej odbornej školy informačných technológií " +
	"v Banskej Bystrici."

// AboutScreen describes the app and lists the school links.
type AboutScreen struct{}

var _ screen.Screen = (*AboutScreen)(nil)
var _ screen.KeyHintProvider = (*AboutScreen)(nil)

// New creates an AboutScreen.
func New() *AboutScreen {
	return &AboutScreen{}
}

func (a *AboutScreen) Init() tea.Cmd {
	return nil
}

func (a *AboutScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return a, nil
}

func (a *AboutScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.RenderBanner(cw))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw - 6).Foreground(theme.Text).Render(blurb))
	b.WriteString("\n\n")
	for _, l := range Links {
		b.WriteString(theme.Subtitle.Render(l.Label+": ") + theme.Link.Render(l.URL))
		b.WriteString("\n")
	}

	return components.Centered(components.Card(strings.TrimRight(b.String(), "\n"), cw), width, height)
}

func (a *AboutScreen) Title() string {
	return "O aplikácii"
}

func (a *AboutScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Späť"},
	}
}
