package document

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/awantoch/beemchart/constants"
)

//go:embed chart.schema.json
var schemaJSON []byte

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString(constants.ChartSchemaFile, string(schemaJSON))
	})
	return schema, schemaErr
}

// Validate checks the document against the embedded chart schema.
func Validate(doc *Document) error {
	s, err := compiledSchema()
	if err != nil {
		return err
	}
	src := doc.raw
	if src == nil {
		src = doc
	}
	tree, err := jsonTree(src)
	if err != nil {
		return err
	}
	if tree == nil {
		tree = map[string]any{}
	}
	if err := s.Validate(tree); err != nil {
		return fmt.Errorf("invalid chart document: %w", err)
	}
	return nil
}

// SchemaJSON returns the embedded schema source.
func SchemaJSON() []byte {
	return schemaJSON
}
