package search

import (
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/pkg/errors"
)

var (
	resultSchemaOnce sync.Once
	resultSchema     *jsonschema.Resolved
	resultSchemaErr  error
)

// searchResultSchema describes the body returned by GET /search.
// Unknown keys are allowed; the raw inspector shows them.
func searchResultSchema() *jsonschema.Schema {
	str := func() *jsonschema.Schema { return &jsonschema.Schema{Type: "string"} }
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"query", "response", "citations"},
		Properties: map[string]*jsonschema.Schema{
			"query":    str(),
			"response": str(),
			"citations": {
				Type: "array",
				Items: &jsonschema.Schema{
					Type:     "object",
					Required: []string{"source", "text"},
					Properties: map[string]*jsonschema.Schema{
						"source": str(),
						"text":   str(),
					},
				},
			},
		},
	}
}

func resolvedResultSchema() (*jsonschema.Resolved, error) {
	resultSchemaOnce.Do(func() {
		resultSchema, resultSchemaErr = searchResultSchema().Resolve(nil)
	})
	return resultSchema, resultSchemaErr
}

// validateResult checks a decoded JSON value against the search result contract
func validateResult(instance any) error {
	rs, err := resolvedResultSchema()
	if err != nil {
		return errors.Wrap(err, "resolve search result schema")
	}
	if err := rs.Validate(instance); err != nil {
		return &SchemaError{Err: err}
	}
	return nil
}
