package quiz

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/maxcolbe/studentsky-svet/internal/content"
	qz "github.com/maxcolbe/studentsky-svet/internal/quiz"
	"github.com/maxcolbe/studentsky-svet/internal/router"
	"github.com/maxcolbe/studentsky-svet/internal/screen"
	"github.com/maxcolbe/studentsky-svet/internal/ui/layout"
)

// QuizScreen runs one quiz session: one page per question, answers picked
// with the cursor, graded on finish.
type QuizScreen struct {
	session *qz.Session
	page    int
	cursors []int
	notice  string
	result  *qz.FinishResult
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.Leaver = (*QuizScreen)(nil)

// New starts a fresh session for q. recorder is told when the session
// finishes; it may be nil.
func New(q content.Quiz, recorder qz.CompletionRecorder) *QuizScreen {
	return &QuizScreen{
		session: qz.New(q, recorder),
		cursors: make([]int, q.Len()),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return s.session.Quiz().Key.Test
}

// Session exposes the underlying session.
func (s *QuizScreen) Session() *qz.Session {
	return s.session
}

// Page returns the index of the question being shown.
func (s *QuizScreen) Page() int {
	return s.page
}

// Leave abandons the session if the screen is removed while still active.
func (s *QuizScreen) Leave() {
	s.session.Abandon()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.finished() {
		return []layout.KeyHint{
			{Key: "←→/L", Description: "Otázky"},
			{Key: "Esc/H", Description: "Domov"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Otázky"},
		{Key: "↑↓", Description: "Odpoveď"},
		{Key: "Enter", Description: "Vybrať"},
		{Key: "F", Description: "Ukončiť Test"},
		{Key: "Esc", Description: "Zrušiť Test"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	if s.session.Total() == 0 {
		if kmsg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}
	if s.finished() {
		return s.handleReviewKey(kmsg.String())
	}
	return s.handleActiveKey(kmsg.String())
}

func (s *QuizScreen) handleActiveKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc":
		s.session.Abandon()
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "left", "h":
		s.turnPage(-1)
	case "right", "l":
		s.turnPage(1)
	case "up", "k":
		s.moveCursor(-1)
	case "down", "j":
		s.moveCursor(1)
	case "enter", "space", " ":
		s.choose(s.cursors[s.page])
	case "f", "F":
		s.finish()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			i := int(key[0] - '1')
			if i < s.answerCount() {
				s.cursors[s.page] = i
				s.choose(i)
			}
		}
	}
	return s, nil
}

func (s *QuizScreen) handleReviewKey(key string) (screen.Screen, tea.Cmd) {
	switch key {
	case "esc", "h", "enter":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "left":
		s.turnPage(-1)
	case "right", "l":
		s.turnPage(1)
	}
	return s, nil
}

func (s *QuizScreen) finished() bool {
	return s.session.State() == qz.StateFinished
}

func (s *QuizScreen) answerCount() int {
	return len(s.session.Quiz().Questions[s.page].Answers)
}

func (s *QuizScreen) turnPage(delta int) {
	next := s.page + delta
	if next < 0 || next >= s.session.Total() {
		return
	}
	s.page = next
	s.notice = ""
}

func (s *QuizScreen) moveCursor(delta int) {
	next := s.cursors[s.page] + delta
	if next < 0 || next >= s.answerCount() {
		return
	}
	s.cursors[s.page] = next
}

func (s *QuizScreen) choose(answer int) {
	if err := s.session.Select(s.page, answer); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.notice = ""
}

// finish asks the session to grade. When questions are missing the first
// unanswered one is brought into view.
func (s *QuizScreen) finish() {
	res := s.session.RequestFinish()
	if res.Outcome == qz.OutcomeIncomplete {
		s.notice = fmt.Sprintf("Not all questions answered (%d/%d)", res.Answered, res.Total)
		for i := 0; i < s.session.Total(); i++ {
			if _, ok := s.session.Selection(i); !ok {
				s.page = i
				break
			}
		}
		return
	}
	s.notice = ""
	s.result = &res
}
