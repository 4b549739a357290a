package quiz

import (
	"github.com/google/uuid"

	"github.com/maxcolbe/studentsky-svet/internal/content"
)

// State is the lifecycle state of a session.
type State int

const (
	StateActive   State = iota // Accepting selections
	StateFinished              // Graded; terminal
)

func (s State) String() string {
	if s == StateFinished {
		return "finished"
	}
	return "active"
}

// CompletionRecorder is notified once for every session that finishes.
// Implementations must not block; the session does not wait for them.
type CompletionRecorder interface {
	IncrementCompletedCount()
}

// Outcome tells the caller how a finish request was resolved.
type Outcome int

const (
	OutcomeIncomplete Outcome = iota // Rejected: unanswered questions remain
	OutcomeFinished                  // Accepted: Score is valid
)

// FinishResult is returned by RequestFinish.
type FinishResult struct {
	Outcome  Outcome
	Score    Score // valid only for OutcomeFinished
	Answered int
	Total    int
}

// Session is one run through a single quiz. It is owned by one screen and
// is not safe for concurrent use.
type Session struct {
	id        string
	quiz      content.Quiz
	ledger    *Ledger
	state     State
	locked    bool
	abandoned bool
	score     Score
	recorder  CompletionRecorder
}

// New starts an active session for q. recorder may be nil.
func New(q content.Quiz, recorder CompletionRecorder) *Session {
	counts := make([]int, q.Len())
	for i, question := range q.Questions {
		counts[i] = len(question.Answers)
	}
	return &Session{
		id:       uuid.New().String(),
		quiz:     q,
		ledger:   NewLedger(counts),
		state:    StateActive,
		recorder: recorder,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Quiz returns the quiz being taken.
func (s *Session) Quiz() content.Quiz { return s.quiz }

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Locked reports whether selections are being ignored.
func (s *Session) Locked() bool { return s.locked }

// Abandoned reports whether Abandon was called.
func (s *Session) Abandoned() bool { return s.abandoned }

// AnsweredCount returns the number of answered questions.
func (s *Session) AnsweredCount() int { return s.ledger.AnsweredCount() }

// Total returns the number of questions.
func (s *Session) Total() int { return s.ledger.Len() }

// Selection returns the chosen answer for a question.
func (s *Session) Selection(questionIndex int) (int, bool) {
	return s.ledger.Selection(questionIndex)
}

// Select records a choice. It is silently ignored once the session is
// finished, locked or abandoned; out-of-range indices always error.
func (s *Session) Select(questionIndex, answerIndex int) error {
	if s.state != StateActive || s.locked || s.abandoned {
		return s.ledger.checkIndex(questionIndex, answerIndex)
	}
	return s.ledger.Select(questionIndex, answerIndex)
}

// RequestFinish grades the session if every question is answered.
// After the first successful call it returns the same Score without
// grading or recording again.
func (s *Session) RequestFinish() FinishResult {
	total := s.ledger.Len()

	if s.state == StateFinished {
		return FinishResult{Outcome: OutcomeFinished, Score: s.score, Answered: total, Total: total}
	}

	answered := s.ledger.AnsweredCount()
	if s.abandoned || !s.ledger.IsComplete() {
		return FinishResult{Outcome: OutcomeIncomplete, Answered: answered, Total: total}
	}

	s.locked = true
	s.state = StateFinished
	s.score = Grade(s.quiz, s.ledger)

	if s.recorder != nil {
		s.recorder.IncrementCompletedCount()
	}

	return FinishResult{Outcome: OutcomeFinished, Score: s.score, Answered: answered, Total: total}
}

// Score returns the final score once the session is finished.
func (s *Session) Score() (Score, bool) {
	if s.state != StateFinished {
		return Score{}, false
	}
	return s.score, true
}

// Abandon discards an active session without grading or recording it.
func (s *Session) Abandon() {
	if s.state == StateActive {
		s.abandoned = true
		s.locked = true
	}
}
