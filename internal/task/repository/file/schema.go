package file

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema pins the persisted document to its exact shape: a list of
// records with precisely the three task fields. Unknown fields or wrong
// types are rejected rather than coerced.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["title", "deadline", "completed"],
    "additionalProperties": false,
    "properties": {
      "title": {"type": "string", "minLength": 1},
      "deadline": {
        "anyOf": [
          {"type": "string", "pattern": "^\\d{4}-\\d{2}-\\d{2}$"},
          {"type": "null"}
        ]
      },
      "completed": {"type": "boolean"}
    }
  }
}`

const schemaName = "tasks.schema.json"

func compileDocumentSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, strings.NewReader(documentSchema)); err != nil {
		return nil, fmt.Errorf("failed to register task document schema: %w", err)
	}
	schema, err := compiler.Compile(schemaName)
	if err != nil {
		return nil, fmt.Errorf("failed to compile task document schema: %w", err)
	}
	return schema, nil
}

// validateDocument checks raw document bytes against the schema. The
// returned error describes the first violation found.
func validateDocument(schema *jsonschema.Schema, data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("not well-formed JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			return fmt.Errorf("schema violation: %s", flattenCause(ve).Message)
		}
		return err
	}
	return nil
}

// flattenCause walks to the most specific cause of a validation error.
func flattenCause(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
