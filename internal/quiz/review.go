package quiz

// Mark describes how one answer should be presented.
type Mark int

const (
	MarkNone     Mark = iota
	MarkSelected      // chosen, session still active
	MarkCorrect       // the correct answer, revealed after finish
	MarkWrong         // chosen but incorrect, revealed after finish
)

// Marks returns one Mark per answer of the given question. While active
// only the current selection is marked; once finished the correct answer and
// any wrong choice are revealed.
func (s *Session) Marks(questionIndex int) []Mark {
	if questionIndex < 0 || questionIndex >= s.quiz.Len() {
		return nil
	}
	answers := s.quiz.Questions[questionIndex].Answers
	marks := make([]Mark, len(answers))
	chosen, answered := s.ledger.Selection(questionIndex)

	if s.state != StateFinished {
		if answered {
			marks[chosen] = MarkSelected
		}
		return marks
	}

	for i, a := range answers {
		switch {
		case a.IsCorrect:
			marks[i] = MarkCorrect
		case answered && i == chosen:
			marks[i] = MarkWrong
		}
	}
	return marks
}
