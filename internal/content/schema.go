package content

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const questionsSchemaDef = `{
  "type": "object",
  "required": ["subjects"],
  "properties": {
    "subjects": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "topics"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "topics": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "title", "tests"],
              "properties": {
                "id": {"type": "string", "minLength": 1},
                "title": {"type": "string", "minLength": 1},
                "subtitle": {"type": "string"},
                "tests": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "required": ["name", "questions"],
                    "properties": {
                      "name": {"type": "string", "minLength": 1},
                      "questions": {
                        "type": "array",
                        "items": {
                          "type": "object",
                          "required": ["questionText", "answers"],
                          "properties": {
                            "questionText": {"type": "string", "minLength": 1},
                            "answers": {
                              "type": "array",
                              "items": {
                                "type": "object",
                                "required": ["label", "value"],
                                "properties": {
                                  "label": {"type": "string", "minLength": 1},
                                  "value": {"enum": [0, 1]}
                                }
                              }
                            }
                          }
                        }
                      }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

const theorySchemaDef = `{
  "type": "object",
  "additionalProperties": {
    "type": "object",
    "additionalProperties": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "required": ["obsah"],
        "properties": {
          "obsah": {"type": "string"}
        }
      }
    }
  }
}`

var (
	schemaOnce sync.Once
	schemas    map[string]*jsonschema.Schema
	schemaErr  error
)

// compiledSchema returns the compiled schema for the named data file.
func compiledSchema(name string) (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schemas = make(map[string]*jsonschema.Schema)
		defs := map[string]string{
			questionsFile: questionsSchemaDef,
			theoryFile:    theorySchemaDef,
		}
		c := jsonschema.NewCompiler()
		for file, def := range defs {
			var parsed any
			if err := json.Unmarshal([]byte(def), &parsed); err != nil {
				schemaErr = fmt.Errorf("parse schema %s: %w", file, err)
				return
			}
			if err := c.AddResource(schemaURL(file), parsed); err != nil {
				schemaErr = fmt.Errorf("add schema %s: %w", file, err)
				return
			}
		}
		for file := range defs {
			s, err := c.Compile(schemaURL(file))
			if err != nil {
				schemaErr = fmt.Errorf("compile schema %s: %w", file, err)
				return
			}
			schemas[file] = s
		}
	})
	if schemaErr != nil {
		return nil, schemaErr
	}
	s, ok := schemas[name]
	if !ok {
		return nil, fmt.Errorf("no schema for %s", name)
	}
	return s, nil
}

func schemaURL(file string) string {
	return "schema://content/" + file
}

// validateDocument checks raw JSON against the schema registered for file.
func validateDocument(file string, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("%w: %s: invalid JSON: %w", ErrInvalidContent, file, err)
	}
	s, err := compiledSchema(file)
	if err != nil {
		return err
	}
	if err := s.Validate(parsed); err != nil {
		return fmt.Errorf("%w: %s: schema validation failed: %w", ErrInvalidContent, file, err)
	}
	return nil
}
