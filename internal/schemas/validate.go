// Package schemas validates stored analysis blobs against the JSON Schema
// they were written under. History rows travel through the database as
// opaque JSON; validation on the way back out keeps a corrupt or
// hand-edited row from poisoning aggregate analytics.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed analysis_schema.json
var analysisSchemaJSON string

var (
	analysisSchema     *gojsonschema.Schema
	analysisSchemaErr  error
	analysisSchemaOnce sync.Once
)

// ValidationError reports which fields of a document failed validation.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at one field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateAnalysis checks a stored analysis blob against the analysis
// schema. It returns a *ValidationError describing the failing fields, or
// a plain error when the document is not valid JSON at all.
func ValidateAnalysis(document []byte) error {
	analysisSchemaOnce.Do(func() {
		analysisSchema, analysisSchemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(analysisSchemaJSON))
	})
	if analysisSchemaErr != nil {
		return fmt.Errorf("failed to compile analysis schema: %w", analysisSchemaErr)
	}

	result, err := analysisSchema.Validate(gojsonschema.NewBytesLoader(document))
	if err != nil {
		return fmt.Errorf("failed to validate analysis document: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		ve.Errors = append(ve.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return ve
}
