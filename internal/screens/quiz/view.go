package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/maxcolbe/studentsky-svet/internal/ui/components"
	"github.com/maxcolbe/studentsky-svet/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Incorrect.Render(s.errMsg))
	}
	if s.session.Total() == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Tento test neobsahuje žiadne otázky."))
	}

	cw := components.ContentWidth(width)
	var sections []string

	if s.result != nil {
		sections = append(sections, s.renderScore(cw))
	}

	sections = append(sections, s.renderInfoLine(cw))
	sections = append(sections, components.Card(s.renderQuestion(), cw))
	sections = append(sections, s.renderPageDots(cw))

	if s.notice != "" {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			theme.Notice.Render(s.notice)))
	}

	if s.result == nil {
		sections = append(sections, lipgloss.PlaceHorizontal(cw, lipgloss.Center,
			components.ButtonRow(
				components.NewButton("Esc  Zrušiť Test", false, nil),
				components.NewButton("F  Ukončiť Test", true, nil),
			)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// renderInfoLine shows the question number and answered progress.
func (s *QuizScreen) renderInfoLine(cw int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Otázka číslo %d", s.page+1))

	bar := components.NewProgressBar("", s.session.AnsweredCount(), s.session.Total(), cw/2).View()

	gap := cw - lipgloss.Width(left) - lipgloss.Width(bar)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + bar
}

func (s *QuizScreen) renderQuestion() string {
	q := s.session.Quiz().Questions[s.page]
	answers := make([]string, len(q.Answers))
	for i, a := range q.Answers {
		answers[i] = a.Label
	}
	return components.AnswerList{
		Question:   q.Text,
		Answers:    answers,
		Marks:      s.session.Marks(s.page),
		Cursor:     s.cursors[s.page],
		ShowCursor: !s.finished(),
	}.View()
}

// renderPageDots draws one dot per question; the current page is bright
// and answered pages are filled.
func (s *QuizScreen) renderPageDots(cw int) string {
	dots := make([]string, s.session.Total())
	for i := range dots {
		_, answered := s.session.Selection(i)
		switch {
		case i == s.page:
			dots[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("●")
		case answered:
			dots[i] = lipgloss.NewStyle().Foreground(theme.Primary).Render("●")
		default:
			dots[i] = lipgloss.NewStyle().Foreground(theme.TextDim).Render("○")
		}
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, strings.Join(dots, " "))
}

func (s *QuizScreen) renderScore(cw int) string {
	title := theme.Title.Render("Koniec Testu")
	score := theme.Body.Bold(true).Render("Vaše skóre: " + s.result.Score.String())
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw).
		Align(lipgloss.Center).
		Render(title + "\n" + score)
	return box
}
