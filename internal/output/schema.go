package output

import (
	"fmt"
	"sync"

	"github.com/89332874/ycsb-runner/pkg/jsonschema"
)

// DocumentSchema is the JSON Schema of the exported runner document. The
// benchmark driver reads this shape.
const DocumentSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["source", "databases", "warnings"],
	"properties": {
		"source": { "type": "string" },
		"warnings": { "type": "array", "items": { "type": "string" } },
		"databases": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "name", "type", "label", "table", "trials", "min_mpl", "max_mpl", "inc_mpl", "output", "workload", "output_plots", "mpls"],
				"properties": {
					"id": { "type": "string", "minLength": 1 },
					"name": { "type": "string", "minLength": 1 },
					"type": { "type": "string", "minLength": 1, "pattern": "^[^A-Z]+$" },
					"label": { "type": "string" },
					"table": { "type": "string", "minLength": 1 },
					"trials": { "type": "integer" },
					"min_mpl": { "type": "integer" },
					"max_mpl": { "type": "integer" },
					"inc_mpl": { "type": "integer" },
					"output": { "type": "string" },
					"workload": { "type": "string" },
					"output_plots": { "type": "boolean" },
					"mpls": { "type": "array", "items": { "type": "integer" } }
				}
			}
		}
	}
}`

var (
	documentSchemaOnce sync.Once
	documentSchema     *jsonschema.Schema
	documentSchemaErr  error
)

// ValidateDocument checks an exported JSON document against DocumentSchema.
func ValidateDocument(jsonStr string) error {
	documentSchemaOnce.Do(func() {
		documentSchema, documentSchemaErr = jsonschema.Compile("runner-document.json", DocumentSchema)
	})
	if documentSchemaErr != nil {
		return documentSchemaErr
	}
	if err := documentSchema.Validate(jsonStr); err != nil {
		return fmt.Errorf("exported document does not match schema: %w", err)
	}
	return nil
}
