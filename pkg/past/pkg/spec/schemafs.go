// Package spec provides the embedded PAST JSON schema.
package spec

import (
	"embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaFile is the name of the schema inside SchemaFS.
const SchemaFile = "past-schema.json"

// SchemaFS contains the embedded PAST JSON schema.
//
//go:embed past-schema.json
var SchemaFS embed.FS

// Schema returns the raw schema document.
func Schema() ([]byte, error) {
	data, err := SchemaFS.ReadFile(SchemaFile)
	if err != nil {
		return nil, fmt.Errorf("read embedded schema: %w", err)
	}

	return data, nil
}

// Loader returns a gojsonschema loader for the embedded schema.
func Loader() (gojsonschema.JSONLoader, error) {
	data, err := Schema()
	if err != nil {
		return nil, err
	}

	return gojsonschema.NewBytesLoader(data), nil
}

// Validate checks an encoded source file against the embedded schema.
func Validate(document []byte) (*gojsonschema.Result, error) {
	schema, err := Loader()
	if err != nil {
		return nil, err
	}

	result, err := gojsonschema.Validate(schema, gojsonschema.NewBytesLoader(document))
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	return result, nil
}
