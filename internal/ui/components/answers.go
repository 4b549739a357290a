package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/maxcolbe/studentsky-svet/internal/quiz"
	"github.com/maxcolbe/studentsky-svet/internal/ui/theme"
)

var answerLabels = []string{"A", "B", "C", "D", "E", "F", "G", "H"}

// AnswerLabel returns the letter shown before the i-th answer.
func AnswerLabel(i int) string {
	if i >= 0 && i < len(answerLabels) {
		return answerLabels[i]
	}
	return fmt.Sprintf("%d", i+1)
}

// AnswerList renders one question's answers with cursor and review marks.
type AnswerList struct {
	Question string
	Answers  []string
	Marks    []quiz.Mark
	Cursor   int
	// ShowCursor is false once the session is finished.
	ShowCursor bool
}

// View renders the question followed by its answers.
func (a AnswerList) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(a.Question))
	b.WriteString("\n\n")

	for i, opt := range a.Answers {
		prefix := "  "
		if a.ShowCursor && i == a.Cursor {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, AnswerLabel(i), opt)

		mark := quiz.MarkNone
		if i < len(a.Marks) {
			mark = a.Marks[i]
		}

		switch mark {
		case quiz.MarkCorrect:
			line = theme.Correct.Render(line + "  ✓")
		case quiz.MarkWrong:
			line = theme.Incorrect.Render(line + "  ✗")
		case quiz.MarkSelected:
			line = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(line + "  ●")
		default:
			if a.ShowCursor && i == a.Cursor {
				line = theme.Selected.Render(line)
			} else if a.ShowCursor {
				line = theme.Unselected.Render(line)
			} else {
				line = lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)
			}
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
