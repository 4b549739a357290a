package quiz

import (
	"fmt"

	"github.com/maxcolbe/studentsky-svet/internal/content"
)

// Score is the result of a finished quiz.
type Score struct {
	Correct int
	Total   int
}

func (s Score) String() string {
	return fmt.Sprintf("%d/%d", s.Correct, s.Total)
}

// Ratio returns Correct/Total, or 0 for an empty quiz.
func (s Score) Ratio() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total)
}

// Grade counts the questions whose selected answer is marked correct.
// Unanswered questions never count. Content with zero or several correct
// answers is graded mechanically: whichever selected answer carries the
// correct flag counts.
func Grade(q content.Quiz, l *Ledger) Score {
	score := Score{Total: q.Len()}
	for i, question := range q.Questions {
		a, ok := l.Selection(i)
		if !ok || a >= len(question.Answers) {
			continue
		}
		if question.Answers[a].IsCorrect {
			score.Correct++
		}
	}
	return score
}
