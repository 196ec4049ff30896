// Package main regenerates the kind enum of the embedded PAST schema from
// the node package.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

var (
	schemaPath string
	check      bool
)

func main() {
	flag.StringVar(&schemaPath, "o", "pkg/past/pkg/spec/past-schema.json", "Schema file to update")
	flag.BoolVar(&check, "check", false, "Fail instead of writing when the schema is stale")
	flag.Parse()

	current, err := os.ReadFile(schemaPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading schema: %v\n", err)
		os.Exit(1)
	}

	updated, err := regenerate(current)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error regenerating schema: %v\n", err)
		os.Exit(1)
	}

	if bytes.Equal(current, updated) {
		fmt.Println("Schema is up to date")

		return
	}

	if check {
		fmt.Fprintf(os.Stderr, "%s is stale, run go run ./tools/schemagen\n", schemaPath)
		os.Exit(1)
	}

	if err := os.WriteFile(schemaPath, updated, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing schema: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Updated %s with %d kinds\n", schemaPath, len(node.AllKinds()))
}

// regenerate replaces definitions.kind.enum and re-encodes the document
// with sorted keys.
func regenerate(data []byte) ([]byte, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}

	defs, ok := doc["definitions"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema has no definitions object")
	}

	kinds := node.AllKinds()
	enum := make([]any, 0, len(kinds))

	for _, kind := range kinds {
		enum = append(enum, string(kind))
	}

	defs["kind"] = map[string]any{"type": "string", "enum": enum}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode schema: %w", err)
	}

	return buf.Bytes(), nil
}
