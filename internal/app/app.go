package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/maxcolbe/studentsky-svet/internal/content"
	"github.com/maxcolbe/studentsky-svet/internal/progress"
	"github.com/maxcolbe/studentsky-svet/internal/router"
	"github.com/maxcolbe/studentsky-svet/internal/screen"
	"github.com/maxcolbe/studentsky-svet/internal/screens/home"
	"github.com/maxcolbe/studentsky-svet/internal/screens/welcome"
	"github.com/maxcolbe/studentsky-svet/internal/ui/layout"
)

// Options holds dependencies injected into the app.
type Options struct {
	Catalog  *content.Catalog
	Progress *progress.Gateway
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress *progress.Gateway
	info     layout.HeaderInfo
	width    int
	height   int
}

// newAppModel creates the root model. A learner without a name starts on
// the welcome prompt, everyone else on the home screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Catalog, opts.Progress, opts.Progress)
	}

	var initial screen.Screen
	if name, ok := opts.Progress.Username(context.Background()); ok && name != "" {
		initial = homeFactory()
	} else {
		initial = welcome.New(opts.Progress, homeFactory)
	}

	m := AppModel{
		router:   router.New(initial),
		progress: opts.Progress,
	}
	m.refreshInfo()
	return m
}

func (m *AppModel) refreshInfo() {
	ctx := context.Background()
	name, _ := m.progress.Username(ctx)
	m.info = layout.HeaderInfo{
		Username:  name,
		Completed: m.progress.ReadCompletedCount(ctx),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case screen.ProfileChangedMsg:
		m.refreshInfo()
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes the header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.info, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Späť"},
			{Key: "Ctrl+C", Description: "Koniec"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Vybrať"},
		{Key: "Enter", Description: "Otvoriť"},
		{Key: "Ctrl+C", Description: "Koniec"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))

	// Increments land on the gateway's worker after the quiz screen has
	// moved on, so the header learns about them through the program.
	opts.Progress.OnChange(func(int) {
		p.Send(screen.ProfileChangedMsg{})
	})
	defer opts.Progress.OnChange(nil)

	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
