package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Sumatoshi-tech/past/pkg/past"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

// Tool names.
const (
	ToolNameParseRustCode   = "parse_rust_code"
	ToolNameParseRustSource = "parse_rust_source"
	ToolNameProblems        = "past_problems"
)

// MaxCodeInputBytes is the maximum allowed size for inline code input (1 MB).
const MaxCodeInputBytes = 1 << 20

const inlinePath = "input.rs"

// Sentinel errors for tool input validation.
var (
	ErrEmptyCode    = errors.New("code parameter is required and must not be empty")
	ErrEmptyPath    = errors.New("path parameter is required and must not be empty")
	ErrCodeTooLarge = errors.New("code input exceeds maximum size")
	ErrAmbiguous    = errors.New("exactly one of path and code must be given")
)

// ParseRustCodeInput is the input schema for the parse_rust_code tool.
type ParseRustCodeInput struct {
	Path string `json:"path" jsonschema:"path of a Rust source file readable by the server"`
}

// ParseRustSourceInput is the input schema for the parse_rust_source tool.
type ParseRustSourceInput struct {
	Code string `json:"code"           jsonschema:"Rust source text"`
	Path string `json:"path,omitempty" jsonschema:"optional path label recorded in the result (default input.rs)"`
}

// ProblemsInput is the input schema for the past_problems tool.
type ProblemsInput struct {
	Code string `json:"code,omitempty" jsonschema:"Rust source text"`
	Path string `json:"path,omitempty" jsonschema:"path of a Rust source file"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// ProblemReport locates one unmodeled construct.
type ProblemReport struct {
	Text        string `json:"text"`
	StartOffset uint32 `json:"start_offset"`
	EndOffset   uint32 `json:"end_offset"`
}

// ProblemsOutput is the payload of the past_problems tool.
type ProblemsOutput struct {
	Path     string          `json:"path"`
	Problems []ProblemReport `json:"problems"`
}

type toolSet struct {
	parser *past.Parser
	logger *slog.Logger
}

func (ts *toolSet) handleParseRustCode(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input ParseRustCodeInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if input.Path == "" {
		return errorResult(ErrEmptyPath)
	}

	file := ts.parser.ParseRustCode(ctx, input.Path)
	if file == nil {
		return jsonResult(nil)
	}

	return jsonResult(file)
}

func (ts *toolSet) handleParseRustSource(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input ParseRustSourceInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if err := validateCodeInput(input.Code); err != nil {
		return errorResult(err)
	}

	path := input.Path
	if path == "" {
		path = inlinePath
	}

	file, err := ts.parser.Parse(ctx, path, []byte(input.Code))
	if err != nil {
		return errorResult(fmt.Errorf("parse code: %w", err))
	}

	return jsonResult(file)
}

func (ts *toolSet) handleProblems(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input ProblemsInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	file, err := ts.load(ctx, input.Path, input.Code)
	if err != nil {
		return errorResult(err)
	}

	out := ProblemsOutput{Path: file.Path, Problems: []ProblemReport{}}
	for _, p := range node.FileProblems(file) {
		out.Problems = append(out.Problems, ProblemReport{
			Text:        p.Text,
			StartOffset: p.Span.StartOffset,
			EndOffset:   p.Span.EndOffset,
		})
	}

	ts.logger.DebugContext(ctx, "problems listed", "path", out.Path, "count", len(out.Problems))

	return jsonResult(out)
}

func (ts *toolSet) load(ctx context.Context, path, code string) (*node.SourceFile, error) {
	switch {
	case (path == "") == (code == ""):
		return nil, ErrAmbiguous
	case code != "":
		if err := validateCodeInput(code); err != nil {
			return nil, err
		}

		file, err := ts.parser.Parse(ctx, inlinePath, []byte(code))
		if err != nil {
			return nil, fmt.Errorf("parse code: %w", err)
		}

		return file, nil
	default:
		file, err := ts.parser.ParseFile(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}

		return file, nil
	}
}

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: json.RawMessage(data)}, nil
}

func validateCodeInput(code string) error {
	if code == "" {
		return ErrEmptyCode
	}

	if len(code) > MaxCodeInputBytes {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrCodeTooLarge, len(code), MaxCodeInputBytes)
	}

	return nil
}
