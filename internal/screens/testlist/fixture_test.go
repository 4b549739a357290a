package testlist

import (
	"testing/fstest"
)

// fstestCatalog is a one-test catalog without a theory file.
func fstestCatalog() fstest.MapFS {
	return fstest.MapFS{
		"questions.json": &fstest.MapFile{Data: []byte(`{
  "subjects": [{
    "name": "Matematika",
    "topics": [{
      "id": "M",
      "title": "Mocniny",
      "tests": [{
        "name": "Druhá mocnina",
        "questions": [{
          "questionText": "Koľko je 3²?",
          "answers": [{"label": "9", "value": 1}, {"label": "6", "value": 0}]
        }]
      }]
    }]
  }]
}`)},
	}
}
