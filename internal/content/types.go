package content

import "fmt"

// Answer is one labeled option of a question.
type Answer struct {
	Label     string
	IsCorrect bool
}

// Question is a multiple-choice question with its ordered answers.
type Question struct {
	Text    string
	Answers []Answer
}

// CorrectIndex returns the index of the first correct answer, or -1 if the
// question has none.
func (q Question) CorrectIndex() int {
	for i, a := range q.Answers {
		if a.IsCorrect {
			return i
		}
	}
	return -1
}

// Key identifies a single test within the catalog.
type Key struct {
	Subject string
	Topic   string
	Test    string
}

func (k Key) String() string {
	return fmt.Sprintf("%s / %s / %s", k.Subject, k.Topic, k.Test)
}

// Quiz is the ordered question list for one test. It is never mutated after
// the catalog is loaded.
type Quiz struct {
	Key       Key
	Questions []Question
}

// Len returns the number of questions.
func (q Quiz) Len() int {
	return len(q.Questions)
}

// Topic groups tests under a subject.
type Topic struct {
	ID       string
	Title    string
	Subtitle string
	Tests    []string
}

// Subject is a top-level content area (e.g. Matematika).
type Subject struct {
	Name   string
	Topics []Topic
}
