package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/past/pkg/past/pkg/spec"
)

const complianceMax = 100

// ErrValidationFailed is returned when at least one document does not match
// the schema.
var ErrValidationFailed = errors.New("PAST validation failed")

type validateOptions struct {
	schemaPath string
	colorize   bool
	noColor    bool
}

func validateCmd() *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <file.json|file.json.lz4|->",
		Short: "Validate PAST JSON against the PAST schema",
		Long: `Validate PAST JSON documents against the embedded PAST schema. The input
may hold several documents, as written by "past parse" for many files.

Examples:
  past validate tree.json
  past parse src/lib.rs | past validate -
  past validate --schema custom-schema.json tree.json.lz4
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd.InOrStdin(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.schemaPath, "schema", "", "path to a PAST JSON schema (default: embedded)")
	cmd.Flags().BoolVar(&opts.colorize, "color", false, "force colored output")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(stdin io.Reader, stdout io.Writer, inputPath string, opts *validateOptions) error {
	if opts.noColor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	} else if opts.colorize {
		color.NoColor = false //nolint:reassign // intentional override of library global
	}

	schema, err := loadSchema(opts.schemaPath)
	if err != nil {
		return err
	}

	input, label, err := openInput(inputPath, stdin)
	if err != nil {
		return err
	}
	defer input.Close()

	dec := json.NewDecoder(input)
	dec.UseNumber()

	failed := 0

	for index := 0; ; index++ {
		var document any

		decodeErr := dec.Decode(&document)
		if errors.Is(decodeErr, io.EOF) {
			if index == 0 {
				return fmt.Errorf("%w: %s holds no JSON document", ErrValidationFailed, label)
			}

			break
		}

		if decodeErr != nil {
			return fmt.Errorf("invalid JSON in %s (document %d): %w", label, index+1, decodeErr)
		}

		result, validateErr := schema.Validate(gojsonschema.NewGoLoader(document))
		if validateErr != nil {
			return fmt.Errorf("schema validation error: %w", validateErr)
		}

		if !reportDocument(stdout, documentLabel(label, document, index), document, result) {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d document(s)", ErrValidationFailed, failed)
	}

	return nil
}

func loadSchema(schemaPath string) (*gojsonschema.Schema, error) {
	var loader gojsonschema.JSONLoader

	if schemaPath == "" {
		embedded, err := spec.Loader()
		if err != nil {
			return nil, err
		}

		loader = embedded
	} else {
		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("read schema file: %w", err)
		}

		loader = gojsonschema.NewBytesLoader(data)
	}

	schema, err := gojsonschema.NewSchema(loader)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return schema, nil
}

// documentLabel names a document by its path member when it has one.
func documentLabel(label string, document any, index int) string {
	if m, ok := document.(map[string]any); ok {
		if path, ok := m["path"].(string); ok && path != "" {
			return fmt.Sprintf("%s: %s", label, path)
		}
	}

	return fmt.Sprintf("%s #%d", label, index+1)
}

// reportDocument prints the verdict for one document and reports whether
// it is valid.
func reportDocument(w io.Writer, label string, document any, result *gojsonschema.Result) bool {
	if result.Valid() {
		color.New(color.FgGreen).Fprintf(w, "PAST is valid (%s)\n", label)

		return true
	}

	compliance := calculateCompliance(document, result.Errors())

	color.New(color.FgRed).Fprintf(w, "PAST validation failed (%s)\n", label)
	color.New(color.FgYellow).Fprintf(w, "  Compliance: %d%%\n", compliance)

	fmt.Fprintf(w, "\nErrors:\n")

	for _, verr := range result.Errors() {
		actual := getActualValue(document, verr.Field())

		if actual != "" {
			color.New(color.FgRed).Fprintf(w, "  - %s: %s (got %q)\n", verr.Field(), verr.Description(), actual)
		} else {
			color.New(color.FgRed).Fprintf(w, "  - %s: %s\n", verr.Field(), verr.Description())
		}
	}

	recommendations := recommend(result.Errors())
	if len(recommendations) > 0 {
		fmt.Fprintf(w, "\nRecommendations:\n")

		for _, rec := range recommendations {
			color.New(color.FgCyan).Fprintf(w, "  - %s\n", rec)
		}
	}

	return false
}

func recommend(validationErrors []gojsonschema.ResultError) []string {
	var out []string

	seen := make(map[string]bool)

	for _, verr := range validationErrors {
		rec := classifyRecommendation(verr.Field(), verr.Type(), verr.Description())
		if rec != "" && !seen[rec] {
			seen[rec] = true
			out = append(out, rec)
		}
	}

	return out
}

func classifyRecommendation(field, errType, description string) string {
	switch {
	case errType == "enum" && strings.HasSuffix(field, "kind"):
		return "Use a PAST node kind such as 'Function', 'Struct' or 'Problem'"
	case errType == "required" && strings.Contains(description, "envelope"):
		return "Every PAST node carries an 'envelope' with text, span and doc_comment"
	case errType == "required" && strings.Contains(description, "kind"):
		return "Every PAST node carries a 'kind' member"
	case strings.Contains(field, "span"):
		return "Spans hold non-negative start_offset and end_offset byte offsets"
	case errType == "invalid_type":
		return "Node members are null, scalars, nodes or arrays of nodes"
	}

	return ""
}

func calculateCompliance(document any, validationErrors []gojsonschema.ResultError) int {
	total := countNodes(document)
	if total == 0 {
		return 0
	}

	compliance := (total - len(validationErrors)) * complianceMax / total

	return min(max(compliance, 0), complianceMax)
}

// countNodes counts the maps carrying a "kind" member.
func countNodes(data any) int {
	count := 0

	switch typed := data.(type) {
	case map[string]any:
		if _, ok := typed["kind"]; ok {
			count++
		}

		for _, v := range typed {
			count += countNodes(v)
		}
	case []any:
		for _, item := range typed {
			count += countNodes(item)
		}
	}

	return count
}

func getActualValue(data any, fieldPath string) string {
	current := data

	for _, part := range strings.Split(fieldPath, ".") {
		switch typed := current.(type) {
		case map[string]any:
			val, found := typed[part]
			if !found {
				return ""
			}

			current = val
		case []any:
			idx, convErr := strconv.Atoi(part)
			if convErr != nil || idx < 0 || idx >= len(typed) {
				return ""
			}

			current = typed[idx]
		default:
			return ""
		}
	}

	switch typed := current.(type) {
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		return strconv.FormatBool(typed)
	default:
		return ""
	}
}
