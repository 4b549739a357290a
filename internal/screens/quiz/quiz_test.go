package quiz

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/maxcolbe/studentsky-svet/internal/content"
	qz "github.com/maxcolbe/studentsky-svet/internal/quiz"
	"github.com/maxcolbe/studentsky-svet/internal/router"
	"github.com/maxcolbe/studentsky-svet/internal/screen"
)

type countingRecorder struct {
	n int
}

func (c *countingRecorder) IncrementCompletedCount() { c.n++ }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testQuiz has three questions; the correct answer is always the first.
func testQuiz() content.Quiz {
	q := func(text string) content.Question {
		return content.Question{
			Text: text,
			Answers: []content.Answer{
				{Label: "správne", IsCorrect: true},
				{Label: "nesprávne"},
				{Label: "tiež nesprávne"},
			},
		}
	}
	return content.Quiz{
		Key:       content.Key{Subject: "Matematika", Topic: "Rímske čísla", Test: "Rímske čísla"},
		Questions: []content.Question{q("Koľko je X?"), q("Koľko je V?"), q("Koľko je L?")},
	}
}

func send(t *testing.T, s *QuizScreen, msgs ...tea.Msg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, m := range msgs {
		var scr screen.Screen
		scr, cmd = s.Update(m)
		if scr != s {
			t.Fatal("expected Update to return the same screen")
		}
	}
	return cmd
}

func TestQuizScreen_Title(t *testing.T) {
	s := New(testQuiz(), nil)
	if s.Title() != "Rímske čísla" {
		t.Errorf("Title = %q, want %q", s.Title(), "Rímske čísla")
	}
}

func TestQuizScreen_EnterSelectsCursorAnswer(t *testing.T) {
	s := New(testQuiz(), nil)

	send(t, s, specialKey(tea.KeyDown), specialKey(tea.KeyEnter))

	got, ok := s.Session().Selection(0)
	if !ok || got != 1 {
		t.Errorf("selection = (%d, %v), want (1, true)", got, ok)
	}
}

func TestQuizScreen_NumberKeySelects(t *testing.T) {
	s := New(testQuiz(), nil)

	send(t, s, keyPress('3'))

	got, ok := s.Session().Selection(0)
	if !ok || got != 2 {
		t.Errorf("selection = (%d, %v), want (2, true)", got, ok)
	}

	// Beyond the answer count: ignored.
	send(t, s, keyPress('9'))
	got, _ = s.Session().Selection(0)
	if got != 2 {
		t.Errorf("selection after '9' = %d, want 2", got)
	}
}

func TestQuizScreen_PagingStaysInBounds(t *testing.T) {
	s := New(testQuiz(), nil)

	send(t, s, specialKey(tea.KeyLeft))
	if s.Page() != 0 {
		t.Errorf("page = %d, want 0", s.Page())
	}

	send(t, s, specialKey(tea.KeyRight), specialKey(tea.KeyRight), specialKey(tea.KeyRight))
	if s.Page() != 2 {
		t.Errorf("page = %d, want 2", s.Page())
	}
}

func TestQuizScreen_ReselectLastWriteWins(t *testing.T) {
	s := New(testQuiz(), nil)

	send(t, s, keyPress('2'), keyPress('1'))

	got, _ := s.Session().Selection(0)
	if got != 0 {
		t.Errorf("selection = %d, want 0", got)
	}
}

func TestQuizScreen_FinishIncomplete(t *testing.T) {
	rec := &countingRecorder{}
	s := New(testQuiz(), rec)

	// Answer only the first question, then ask to finish from page 3.
	send(t, s, keyPress('1'), specialKey(tea.KeyRight), specialKey(tea.KeyRight), keyPress('f'))

	if s.Session().State() != qz.StateActive {
		t.Error("expected session to stay active")
	}
	if rec.n != 0 {
		t.Errorf("recorder calls = %d, want 0", rec.n)
	}
	if s.Page() != 1 {
		t.Errorf("page = %d, want first unanswered (1)", s.Page())
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Not all questions answered (1/3)") {
		t.Error("expected incomplete notice in view")
	}

	// Answering clears the notice and the session can continue.
	send(t, s, keyPress('1'))
	if strings.Contains(s.View(100, 30), "Not all questions answered") {
		t.Error("expected notice to clear after selecting")
	}
}

func TestQuizScreen_FinishComplete(t *testing.T) {
	rec := &countingRecorder{}
	s := New(testQuiz(), rec)

	// Correct, wrong, correct.
	send(t, s,
		keyPress('1'), specialKey(tea.KeyRight),
		keyPress('2'), specialKey(tea.KeyRight),
		keyPress('1'),
		keyPress('f'),
	)

	if s.Session().State() != qz.StateFinished {
		t.Fatal("expected session to be finished")
	}
	if rec.n != 1 {
		t.Errorf("recorder calls = %d, want 1", rec.n)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Vaše skóre: 2/3") {
		t.Error("expected score in view")
	}
	if !strings.Contains(view, "Koniec Testu") {
		t.Error("expected end-of-test banner in view")
	}
}

func TestQuizScreen_AfterFinishSelectionIsFrozen(t *testing.T) {
	rec := &countingRecorder{}
	s := New(testQuiz(), rec)
	send(t, s,
		keyPress('1'), specialKey(tea.KeyRight),
		keyPress('1'), specialKey(tea.KeyRight),
		keyPress('1'), keyPress('f'),
	)

	send(t, s, keyPress('2'), keyPress('f'))

	got, _ := s.Session().Selection(2)
	if got != 0 {
		t.Errorf("selection changed after finish: %d", got)
	}
	if rec.n != 1 {
		t.Errorf("recorder calls = %d, want 1", rec.n)
	}
	score, _ := s.Session().Score()
	if score.String() != "3/3" {
		t.Errorf("score = %s, want 3/3", score)
	}
}

func TestQuizScreen_ReviewMarks(t *testing.T) {
	s := New(testQuiz(), nil)
	send(t, s,
		keyPress('2'), specialKey(tea.KeyRight),
		keyPress('1'), specialKey(tea.KeyRight),
		keyPress('1'), keyPress('f'),
		specialKey(tea.KeyLeft), specialKey(tea.KeyLeft),
	)

	if s.Page() != 0 {
		t.Fatalf("page = %d, want 0 after paging back", s.Page())
	}
	marks := s.Session().Marks(0)
	want := []qz.Mark{qz.MarkCorrect, qz.MarkWrong, qz.MarkNone}
	for i := range want {
		if marks[i] != want[i] {
			t.Errorf("marks[%d] = %v, want %v", i, marks[i], want[i])
		}
	}
	if !strings.Contains(s.View(100, 30), "✗") {
		t.Error("expected wrong-answer marker in review view")
	}
}

func TestQuizScreen_EscAbandonsActiveSession(t *testing.T) {
	rec := &countingRecorder{}
	s := New(testQuiz(), rec)
	send(t, s, keyPress('1'))

	cmd := send(t, s, specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc while active")
	}
	if !s.Session().Abandoned() {
		t.Error("expected session to be abandoned")
	}
	if rec.n != 0 {
		t.Errorf("recorder calls = %d, want 0", rec.n)
	}
}

func TestQuizScreen_EscAfterFinishGoesHome(t *testing.T) {
	s := New(testQuiz(), nil)
	send(t, s,
		keyPress('1'), specialKey(tea.KeyRight),
		keyPress('1'), specialKey(tea.KeyRight),
		keyPress('1'), keyPress('f'),
	)

	for _, k := range []tea.KeyPressMsg{specialKey(tea.KeyEscape), keyPress('h')} {
		cmd := send(t, s, k)
		if cmd == nil {
			t.Fatalf("expected a command on %q", k.String())
		}
		if _, ok := cmd().(router.PopToRootMsg); !ok {
			t.Errorf("expected PopToRootMsg on %q after finish", k.String())
		}
	}
}

func TestQuizScreen_LeaveAbandons(t *testing.T) {
	s := New(testQuiz(), nil)
	s.Leave()

	if !s.Session().Abandoned() {
		t.Error("expected Leave() to abandon an active session")
	}
}

func TestQuizScreen_LeaveAfterFinishKeepsScore(t *testing.T) {
	s := New(testQuiz(), nil)
	send(t, s,
		keyPress('1'), specialKey(tea.KeyRight),
		keyPress('1'), specialKey(tea.KeyRight),
		keyPress('1'), keyPress('f'),
	)
	s.Leave()

	if s.Session().Abandoned() {
		t.Error("finished session must not be marked abandoned")
	}
	if _, ok := s.Session().Score(); !ok {
		t.Error("expected score to remain available")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s := New(testQuiz(), nil)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func TestQuizScreen_ReviewKeyHintsNameHomeKeys(t *testing.T) {
	s := New(testQuiz(), nil)
	send(t, s,
		keyPress('1'), specialKey(tea.KeyRight),
		keyPress('1'), specialKey(tea.KeyRight),
		keyPress('1'), keyPress('f'),
	)

	hints := map[string]string{}
	for _, h := range s.KeyHints() {
		hints[h.Key] = h.Description
	}
	if hints["Esc/H"] != "Domov" {
		t.Errorf("expected Esc/H to be hinted as Domov, got %v", hints)
	}
	if hints["←→/L"] != "Otázky" {
		t.Errorf("expected ←→/L to be hinted as Otázky, got %v", hints)
	}

	send(t, s, keyPress('l'))
	if s.Page() != 2 {
		t.Errorf("l on the last page should stay, page = %d", s.Page())
	}
	send(t, s, specialKey(tea.KeyLeft))
	if s.Page() != 1 {
		t.Errorf("left should page back in review, page = %d", s.Page())
	}
}

func TestQuizScreen_EmptyQuiz(t *testing.T) {
	s := New(content.Quiz{Key: content.Key{Test: "prázdny"}}, nil)

	send(t, s, keyPress('1'), specialKey(tea.KeyEnter), keyPress('f'))
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
	cmd := send(t, s, specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Error("expected Esc to leave an empty quiz")
	}
}
