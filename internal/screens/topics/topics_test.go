package topics

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/maxcolbe/studentsky-svet/internal/content"
	"github.com/maxcolbe/studentsky-svet/internal/router"
	"github.com/maxcolbe/studentsky-svet/internal/screens/testlist"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func slovak(t *testing.T) (*content.Catalog, content.Subject) {
	t.Helper()
	c, err := content.LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded content: %v", err)
	}
	subj, err := c.Subject("Slovenský Jazyk")
	if err != nil {
		t.Fatalf("subject: %v", err)
	}
	return c, subj
}

func TestTopicsScreen_ShowsTopicCards(t *testing.T) {
	c, subj := slovak(t)
	s := New(c, subj, nil)

	view := s.View(100, 30)
	for _, want := range []string{"Literatura", "Gramatika", "Slovné Druhy • Pravopis"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
	if s.Title() != "Slovenský Jazyk" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestTopicsScreen_EnterOpensTests(t *testing.T) {
	c, subj := slovak(t)
	s := New(c, subj, nil)

	s.Update(specialKey(tea.KeyDown))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	tl, ok := push.Screen.(*testlist.TestListScreen)
	if !ok {
		t.Fatalf("pushed %T, want *testlist.TestListScreen", push.Screen)
	}
	if tl.Title() != "Gramatika" {
		t.Errorf("opened %q, want Gramatika", tl.Title())
	}
}

func TestTopicsScreen_EscPops(t *testing.T) {
	c, subj := slovak(t)
	s := New(c, subj, nil)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}
