package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schema documents for the three dataset files. Structural validation
// runs before decoding so that a malformed file is reported as a list of
// field-level problems instead of a single unmarshal error.
const (
	itemBankSchema = `{
	  "$schema": "http://json-schema.org/draft-07/schema#",
	  "type": "array",
	  "items": {
	    "type": "object",
	    "required": ["id", "domain"],
	    "properties": {
	      "id": {"type": "integer", "minimum": 1},
	      "domain": {"type": "string"},
	      "subDomain": {"type": "string"},
	      "type": {"type": "string", "enum": ["objective", "likert"]},
	      "text": {"type": "string"},
	      "options": {"type": "array", "items": {"type": "string"}},
	      "reverse": {"type": "boolean"},
	      "weight": {"type": "number"},
	      "maxScore": {"type": "number"},
	      "careerClusters": {"type": "array", "items": {"type": "string"}}
	    }
	  }
	}`

	clustersSchema = `{
	  "$schema": "http://json-schema.org/draft-07/schema#",
	  "type": "array",
	  "items": {
	    "type": "object",
	    "required": ["id", "name"],
	    "properties": {
	      "id": {"type": "string", "minLength": 1},
	      "name": {"type": "string", "minLength": 1},
	      "description": {"type": "string"},
	      "domainWeights": {
	        "type": "object",
	        "additionalProperties": {"type": "number"}
	      },
	      "domains": {"type": "array", "items": {"type": "string"}},
	      "riasecWeights": {
	        "type": "object",
	        "additionalProperties": {"type": "number"}
	      }
	    }
	  }
	}`

	styleMapSchema = `{
	  "$schema": "http://json-schema.org/draft-07/schema#",
	  "type": "object",
	  "properties": {
	    "visual": {"type": "array", "items": {"type": "integer"}},
	    "auditory": {"type": "array", "items": {"type": "integer"}},
	    "kinesthetic": {"type": "array", "items": {"type": "integer"}}
	  },
	  "additionalProperties": false
	}`
)

// validateDocument checks raw JSON bytes against a schema document and
// folds any violations into a single error.
func validateDocument(name, schemaDoc string, data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaDoc),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}
	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}
	sort.Strings(problems)
	return fmt.Errorf("%s failed schema validation:\n  - %s", name, strings.Join(problems, "\n  - "))
}
