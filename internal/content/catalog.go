package content

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a subject, topic or test does not exist.
var ErrNotFound = errors.New("content not found")

// Catalog is the read-only, fully loaded content store.
type Catalog struct {
	subjects []Subject
	quizzes  map[Key]Quiz
	theory   map[Key]string
}

// Subjects returns all subjects in file order.
func (c *Catalog) Subjects() []Subject {
	return c.subjects
}

// Subject returns the named subject.
func (c *Catalog) Subject(name string) (Subject, error) {
	for _, s := range c.subjects {
		if s.Name == name {
			return s, nil
		}
	}
	return Subject{}, fmt.Errorf("subject %q: %w", name, ErrNotFound)
}

// Topics returns the topics of a subject in file order.
func (c *Catalog) Topics(subject string) ([]Topic, error) {
	s, err := c.Subject(subject)
	if err != nil {
		return nil, err
	}
	return s.Topics, nil
}

// Topic returns a single topic of a subject.
func (c *Catalog) Topic(subject, topicID string) (Topic, error) {
	topics, err := c.Topics(subject)
	if err != nil {
		return Topic{}, err
	}
	for _, t := range topics {
		if t.ID == topicID {
			return t, nil
		}
	}
	return Topic{}, fmt.Errorf("topic %q in %q: %w", topicID, subject, ErrNotFound)
}

// Tests returns the test names of a topic in file order.
func (c *Catalog) Tests(subject, topicID string) ([]string, error) {
	t, err := c.Topic(subject, topicID)
	if err != nil {
		return nil, err
	}
	return t.Tests, nil
}

// Quiz returns the question list for key.
func (c *Catalog) Quiz(key Key) (Quiz, error) {
	q, ok := c.quizzes[key]
	if !ok {
		return Quiz{}, fmt.Errorf("quiz %s: %w", key, ErrNotFound)
	}
	return q, nil
}

// Theory returns the theory text for key, verbatim.
func (c *Catalog) Theory(key Key) (string, error) {
	t, ok := c.theory[key]
	if !ok {
		return "", fmt.Errorf("theory %s: %w", key, ErrNotFound)
	}
	return t, nil
}

// QuizCount returns the total number of tests across all subjects.
func (c *Catalog) QuizCount() int {
	return len(c.quizzes)
}
