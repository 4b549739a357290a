package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxcolbe/studentsky-svet/internal/content"
)

// twoAnswerQuiz builds n questions, each with the correct answer at index 0
// and a wrong answer at index 1.
func twoAnswerQuiz(n int) content.Quiz {
	q := content.Quiz{Key: content.Key{Subject: "Matematika", Topic: "roman", Test: "Základy"}}
	for i := 0; i < n; i++ {
		q.Questions = append(q.Questions, content.Question{
			Text: "question",
			Answers: []content.Answer{
				{Label: "right", IsCorrect: true},
				{Label: "wrong"},
			},
		})
	}
	return q
}

func ledgerFor(q content.Quiz) *Ledger {
	counts := make([]int, q.Len())
	for i, question := range q.Questions {
		counts[i] = len(question.Answers)
	}
	return NewLedger(counts)
}

func TestGrade_CountsCorrectSelections(t *testing.T) {
	// For every k, select the correct answer for the first k of 5 questions.
	const n = 5
	for k := 0; k <= n; k++ {
		q := twoAnswerQuiz(n)
		l := ledgerFor(q)
		for i := 0; i < n; i++ {
			answer := 1
			if i < k {
				answer = 0
			}
			require.NoError(t, l.Select(i, answer))
		}

		got := Grade(q, l)
		assert.Equal(t, Score{Correct: k, Total: n}, got, "k=%d", k)
	}
}

func TestGrade_LastSelectionCounts(t *testing.T) {
	q := twoAnswerQuiz(1)
	l := ledgerFor(q)

	require.NoError(t, l.Select(0, 0))
	require.NoError(t, l.Select(0, 1))
	assert.Equal(t, Score{Correct: 0, Total: 1}, Grade(q, l))

	require.NoError(t, l.Select(0, 0))
	assert.Equal(t, Score{Correct: 1, Total: 1}, Grade(q, l))
}

func TestGrade_IncompleteCountsOnlyAnswered(t *testing.T) {
	q := twoAnswerQuiz(3)
	l := ledgerFor(q)
	require.NoError(t, l.Select(2, 0))

	assert.Equal(t, Score{Correct: 1, Total: 3}, Grade(q, l))
}

func TestGrade_MalformedContent(t *testing.T) {
	q := content.Quiz{Questions: []content.Question{
		{Text: "no correct answer", Answers: []content.Answer{{Label: "a"}, {Label: "b"}}},
		{Text: "two correct answers", Answers: []content.Answer{{Label: "a", IsCorrect: true}, {Label: "b", IsCorrect: true}}},
	}}
	l := ledgerFor(q)
	require.NoError(t, l.Select(0, 0))
	require.NoError(t, l.Select(1, 1))

	assert.Equal(t, Score{Correct: 1, Total: 2}, Grade(q, l))
}

func TestScore_Format(t *testing.T) {
	s := Score{Correct: 3, Total: 4}
	assert.Equal(t, "3/4", s.String())
	assert.InDelta(t, 0.75, s.Ratio(), 1e-9)
	assert.Zero(t, Score{}.Ratio())
}
