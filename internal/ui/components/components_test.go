package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"

	"github.com/maxcolbe/studentsky-svet/internal/quiz"
)

func TestProgressBarFraction(t *testing.T) {
	tests := []struct {
		done, total int
		want        float64
	}{
		{0, 0, 0},
		{1, 4, 0.25},
		{4, 4, 1},
		{6, 4, 1},
		{-1, 4, 0},
	}
	for _, tt := range tests {
		p := NewProgressBar("", tt.done, tt.total, 30)
		assert.InDelta(t, tt.want, p.Fraction(), 1e-9, "%d/%d", tt.done, tt.total)
	}
	assert.Contains(t, NewProgressBar("Otázka", 2, 5, 40).View(), "2/5")
}

func TestAnswerLabel(t *testing.T) {
	assert.Equal(t, "A", AnswerLabel(0))
	assert.Equal(t, "D", AnswerLabel(3))
	assert.Equal(t, "10", AnswerLabel(9))
}

func TestAnswerListMarks(t *testing.T) {
	list := AnswerList{
		Question: "2 + 2 = ?",
		Answers:  []string{"3", "4", "5"},
		Marks:    []quiz.Mark{quiz.MarkWrong, quiz.MarkCorrect, quiz.MarkNone},
	}
	view := list.View()

	assert.Contains(t, view, "2 + 2 = ?")
	assert.Contains(t, view, "A)  3  ✗")
	assert.Contains(t, view, "B)  4  ✓")
	assert.NotContains(t, view, "▸", "no cursor after finish")
}

func TestAnswerListCursor(t *testing.T) {
	list := AnswerList{
		Question:   "q",
		Answers:    []string{"x", "y"},
		Marks:      []quiz.Mark{quiz.MarkNone, quiz.MarkSelected},
		Cursor:     1,
		ShowCursor: true,
	}
	view := list.View()
	assert.Contains(t, view, "▸ B)  y  ●")
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "a"},
		{Label: "off", Disabled: true},
		{Label: "b"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 3, m.Selected, "stays on last item")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected)
}

func TestMenuEnterRunsAction(t *testing.T) {
	called := false
	m := NewMenu([]MenuItem{{Label: "go", Action: func() tea.Cmd {
		called = true
		return nil
	}}})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.True(t, called)
}

func TestTextInputValueIsTrimmed(t *testing.T) {
	ti := NewTextInput("meno", 20)
	for _, r := range "  Eva " {
		ti, _ = ti.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	assert.Equal(t, "Eva", ti.Value())

	ti.Submit(false)
	assert.Contains(t, ti.View(), "✗")

	ti, _ = ti.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.NotContains(t, ti.View(), "✗", "typing clears the rejection mark")
}

func TestButtonRow(t *testing.T) {
	row := ButtonRow(
		NewButton("Esc  Zrušiť", false, nil),
		NewButton("F  Ukončiť", true, nil),
	)
	assert.True(t, strings.Contains(row, "▸ F  Ukončiť"))
	assert.Contains(t, row, "Esc  Zrušiť")
}
