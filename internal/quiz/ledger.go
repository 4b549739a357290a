package quiz

import (
	"errors"
	"fmt"
)

// Unanswered marks a ledger slot with no selection.
const Unanswered = -1

// ErrIndexOutOfRange is returned when a question or answer index does not
// exist in the quiz. It signals a caller bug, not a user action.
var ErrIndexOutOfRange = errors.New("index out of range")

// Ledger records one answer selection per question.
type Ledger struct {
	slots       []int
	answerCount []int
}

// NewLedger creates a ledger with every slot unanswered. answerCounts holds
// the number of answers for each question, in order.
func NewLedger(answerCounts []int) *Ledger {
	slots := make([]int, len(answerCounts))
	for i := range slots {
		slots[i] = Unanswered
	}
	counts := make([]int, len(answerCounts))
	copy(counts, answerCounts)
	return &Ledger{slots: slots, answerCount: counts}
}

// Select records answerIndex for questionIndex, replacing any earlier choice.
func (l *Ledger) Select(questionIndex, answerIndex int) error {
	if err := l.checkIndex(questionIndex, answerIndex); err != nil {
		return err
	}
	l.slots[questionIndex] = answerIndex
	return nil
}

// checkIndex reports whether both indices address an existing answer.
func (l *Ledger) checkIndex(questionIndex, answerIndex int) error {
	if questionIndex < 0 || questionIndex >= len(l.slots) {
		return fmt.Errorf("question %d of %d: %w", questionIndex, len(l.slots), ErrIndexOutOfRange)
	}
	if answerIndex < 0 || answerIndex >= l.answerCount[questionIndex] {
		return fmt.Errorf("answer %d of %d for question %d: %w",
			answerIndex, l.answerCount[questionIndex], questionIndex, ErrIndexOutOfRange)
	}
	return nil
}

// Selection returns the chosen answer for a question and whether one exists.
func (l *Ledger) Selection(questionIndex int) (int, bool) {
	if questionIndex < 0 || questionIndex >= len(l.slots) {
		return Unanswered, false
	}
	a := l.slots[questionIndex]
	return a, a != Unanswered
}

// Len returns the number of slots.
func (l *Ledger) Len() int {
	return len(l.slots)
}

// AnsweredCount returns how many slots hold a selection.
func (l *Ledger) AnsweredCount() int {
	n := 0
	for _, a := range l.slots {
		if a != Unanswered {
			n++
		}
	}
	return n
}

// IsComplete reports whether every question has a selection.
func (l *Ledger) IsComplete() bool {
	for _, a := range l.slots {
		if a == Unanswered {
			return false
		}
	}
	return true
}
