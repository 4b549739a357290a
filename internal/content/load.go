package content

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

const (
	questionsFile = "questions.json"
	theoryFile    = "theory.json"
)

//go:embed data/*.json
var embedded embed.FS

// questionsDoc mirrors questions.json.
type questionsDoc struct {
	Subjects []struct {
		Name   string `json:"name"`
		Topics []struct {
			ID       string `json:"id"`
			Title    string `json:"title"`
			Subtitle string `json:"subtitle"`
			Tests    []struct {
				Name      string `json:"name"`
				Questions []struct {
					QuestionText string `json:"questionText"`
					Answers      []struct {
						Label string `json:"label"`
						Value int    `json:"value"`
					} `json:"answers"`
				} `json:"questions"`
			} `json:"tests"`
		} `json:"topics"`
	} `json:"subjects"`
}

// theoryDoc mirrors theory.json: subject -> topic -> test -> {"obsah": text}.
type theoryDoc map[string]map[string]map[string]struct {
	Obsah string `json:"obsah"`
}

// LoadEmbedded loads the content set compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("embedded content: %w", err)
	}
	return Load(sub)
}

// LoadDir loads questions.json and theory.json from dir.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Load reads, validates and indexes the content files in fsys.
// Malformed content is rejected here so that sessions can trust it.
func Load(fsys fs.FS) (*Catalog, error) {
	qRaw, err := fs.ReadFile(fsys, questionsFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", questionsFile, err)
	}
	if err := validateDocument(questionsFile, qRaw); err != nil {
		return nil, err
	}
	var qDoc questionsDoc
	if err := json.Unmarshal(qRaw, &qDoc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", questionsFile, err)
	}

	tDoc := theoryDoc{}
	tRaw, err := fs.ReadFile(fsys, theoryFile)
	switch {
	case err == nil:
		if err := validateDocument(theoryFile, tRaw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(tRaw, &tDoc); err != nil {
			return nil, fmt.Errorf("decode %s: %w", theoryFile, err)
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("read %s: %w", theoryFile, err)
	}

	c, problems := build(qDoc, tDoc)
	if err := validateCatalog(c, problems); err != nil {
		return nil, err
	}
	return c, nil
}

// build indexes the decoded documents. Duplicate names are reported as
// problems since the index would silently drop them.
func build(qDoc questionsDoc, tDoc theoryDoc) (*Catalog, []string) {
	c := &Catalog{
		quizzes: make(map[Key]Quiz),
		theory:  make(map[Key]string),
	}
	var problems []string
	seenSubjects := make(map[string]bool)

	for _, s := range qDoc.Subjects {
		if seenSubjects[s.Name] {
			problems = append(problems, fmt.Sprintf("duplicate subject %q", s.Name))
		}
		seenSubjects[s.Name] = true

		subject := Subject{Name: s.Name}
		seenTopics := make(map[string]bool)
		for _, t := range s.Topics {
			if seenTopics[t.ID] {
				problems = append(problems, fmt.Sprintf("duplicate topic %q in %q", t.ID, s.Name))
			}
			seenTopics[t.ID] = true

			topic := Topic{ID: t.ID, Title: t.Title, Subtitle: t.Subtitle}
			for _, test := range t.Tests {
				key := Key{Subject: s.Name, Topic: t.ID, Test: test.Name}
				if _, dup := c.quizzes[key]; dup {
					problems = append(problems, fmt.Sprintf("duplicate test %s", key))
				}
				topic.Tests = append(topic.Tests, test.Name)

				quiz := Quiz{Key: key}
				for _, q := range test.Questions {
					question := Question{Text: q.QuestionText}
					for _, a := range q.Answers {
						question.Answers = append(question.Answers, Answer{
							Label:     a.Label,
							IsCorrect: a.Value == 1,
						})
					}
					quiz.Questions = append(quiz.Questions, question)
				}
				c.quizzes[key] = quiz
			}
			subject.Topics = append(subject.Topics, topic)
		}
		c.subjects = append(c.subjects, subject)
	}

	for subject, topics := range tDoc {
		for topic, tests := range topics {
			for test, body := range tests {
				c.theory[Key{Subject: subject, Topic: topic, Test: test}] = body.Obsah
			}
		}
	}

	return c, problems
}
