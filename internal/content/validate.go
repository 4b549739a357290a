package content

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidContent wraps every content validation failure.
var ErrInvalidContent = errors.New("invalid content")

// validateCatalog performs the semantic checks the schema cannot express.
// Returns a combined error describing all problems found, or nil if valid.
func validateCatalog(c *Catalog, problems []string) error {
	errs := append([]string(nil), problems...)

	keys := make([]Key, 0, len(c.quizzes))
	for k := range c.quizzes {
		keys = append(keys, k)
	}
	sortKeys(keys)

	for _, k := range keys {
		q := c.quizzes[k]
		if len(q.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("test %s has no questions", k))
			continue
		}
		for i, question := range q.Questions {
			if len(question.Answers) < 2 {
				errs = append(errs, fmt.Sprintf("test %s question %d has %d answers, need at least 2", k, i+1, len(question.Answers)))
			}
			correct := 0
			for _, a := range question.Answers {
				if a.IsCorrect {
					correct++
				}
			}
			if correct != 1 {
				errs = append(errs, fmt.Sprintf("test %s question %d has %d correct answers, want exactly 1", k, i+1, correct))
			}
		}
	}

	theoryKeys := make([]Key, 0, len(c.theory))
	for k := range c.theory {
		theoryKeys = append(theoryKeys, k)
	}
	sortKeys(theoryKeys)
	for _, k := range theoryKeys {
		if _, ok := c.quizzes[k]; !ok {
			errs = append(errs, fmt.Sprintf("theory for unknown test %s", k))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(errs, "; "))
	}
	return nil
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})
}
