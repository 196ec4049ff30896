// Package past parses Rust source into the Portable AST. It owns the
// tree-sitter parsers and hands each syntax tree to package mapping.
package past

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	sitter "github.com/alexaandru/go-tree-sitter-bare"
	"github.com/src-d/enry/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Sumatoshi-tech/past/pkg/observability"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/mapping"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

// sourceExcerptLen caps the source text attached to parse spans.
const sourceExcerptLen = 256

var (
	// ErrUnknownGrammar is returned by NewParser for an unregistered grammar.
	ErrUnknownGrammar = errors.New("unknown grammar")

	errPoolType   = errors.New("past: pool returned unexpected type")
	errNoRootNode = errors.New("past: parser produced no root node")
)

// Parser turns Rust source into PAST source files. It is safe for concurrent use.
type Parser struct {
	grammar     string
	lang        *sitter.Language
	pool        sync.Pool
	logger      *slog.Logger
	tracer      trace.Tracer
	metrics     *observability.MappingMetrics
	maxFileSize int64
}

// Option configures a Parser.
type Option func(*Parser)

// WithGrammar selects the tree-sitter grammar. See Grammars.
func WithGrammar(name string) Option {
	return func(p *Parser) { p.grammar = name }
}

// WithLogger sets the logger for read failures and unmodeled syntax.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithTracer wraps every parse in a span.
func WithTracer(tracer trace.Tracer) Option {
	return func(p *Parser) {
		if tracer != nil {
			p.tracer = tracer
		}
	}
}

// WithMetrics records per-file mapping metrics.
func WithMetrics(metrics *observability.MappingMetrics) Option {
	return func(p *Parser) { p.metrics = metrics }
}

// WithMaxFileSize limits ParseFile. Zero or less disables the limit.
func WithMaxFileSize(size int64) Option {
	return func(p *Parser) { p.maxFileSize = size }
}

// NewParser creates a parser for the configured grammar, Rust by default.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		grammar:     GrammarRust,
		logger:      slog.New(slog.DiscardHandler),
		tracer:      nooptrace.NewTracerProvider().Tracer(""),
		maxFileSize: DefaultMaxFileSize,
	}

	for _, opt := range opts {
		opt(p)
	}

	lang := GetLanguage(p.grammar)
	if lang == nil {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownGrammar, p.grammar, strings.Join(Grammars(), ", "))
	}

	p.lang = lang
	p.pool = sync.Pool{
		New: func() any {
			tsParser := sitter.NewParser()
			tsParser.SetLanguage(lang)

			return tsParser
		},
	}

	return p, nil
}

// Grammar returns the grammar name in use.
func (p *Parser) Grammar() string {
	return p.grammar
}

// Parse maps content, labelled with path, to a source file. The result never
// references parser memory.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*node.SourceFile, error) {
	ctx, span := p.tracer.Start(ctx, "past.Parse", trace.WithAttributes(
		attribute.String("past.path", path),
		attribute.String("past.grammar", p.grammar),
		attribute.Int("past.bytes", len(content)),
		attribute.String(observability.SourcePrefix+"excerpt", excerpt(content)),
	))
	defer span.End()

	start := time.Now()

	file, err := p.parse(ctx, path, content)
	stats := observability.FileStats{
		Grammar: p.grammar,
		Bytes:   len(content),
		Elapsed: time.Since(start),
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		stats.Outcome = observability.OutcomeFailed
		p.metrics.RecordFile(ctx, stats)

		return nil, err
	}

	roots := file.Nodes()
	stats.Outcome = observability.OutcomeMapped
	stats.Nodes = countNodes(roots)
	stats.Problems = len(node.Problems(roots...))
	p.metrics.RecordFile(ctx, stats)

	span.SetAttributes(
		attribute.Int("past.items", len(file.Items)),
		attribute.Int("past.problems", stats.Problems),
	)

	return file, nil
}

func (p *Parser) parse(ctx context.Context, path string, content []byte) (*node.SourceFile, error) {
	tsParser, ok := p.pool.Get().(*sitter.Parser)
	if !ok {
		return nil, errPoolType
	}

	defer p.pool.Put(tsParser)

	tree, err := tsParser.ParseString(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.IsNull() {
		return nil, errNoRootNode
	}

	return mapping.Assemble(root, content, path,
		mapping.WithLanguage(p.lang),
		mapping.WithParserPool(&p.pool),
		mapping.WithLogger(p.logger.With("path", path)),
	), nil
}

// ParseFile reads and maps the file at path.
func (p *Parser) ParseFile(ctx context.Context, path string) (*node.SourceFile, error) {
	content, err := ReadSource(path, p.maxFileSize)
	if err != nil {
		p.metrics.RecordFile(ctx, observability.FileStats{Grammar: p.grammar, Outcome: observability.OutcomeFailed})

		return nil, err
	}

	return p.Parse(ctx, path, content)
}

// ParseRustCode maps the file at path, or returns nil if it cannot be read
// or parsed. The cause is logged at warn level.
func (p *Parser) ParseRustCode(ctx context.Context, path string) *node.SourceFile {
	file, err := p.ParseFile(ctx, path)
	if err != nil {
		p.logger.WarnContext(ctx, "parse rust code", "path", path, "error", err)

		return nil
	}

	return file
}

var defaultParser = sync.OnceValues(func() (*Parser, error) { return NewParser() })

// ParseRustCode maps the Rust file at path with the default parser. It
// returns nil when the file cannot be read.
func ParseRustCode(path string) *node.SourceFile {
	p, err := defaultParser()
	if err != nil {
		return nil
	}

	return p.ParseRustCode(context.Background(), path)
}

// IsSupported reports whether path looks like a Rust source file.
func IsSupported(path string) bool {
	if !strings.EqualFold(filepath.Ext(path), ".rs") {
		return false
	}

	return slices.Contains(enry.GetLanguagesByExtension(path, nil, nil), "Rust")
}

func countNodes(roots []node.Node) int {
	total := 0
	for _, count := range node.CountKinds(roots...) {
		total += count
	}

	return total
}

func excerpt(content []byte) string {
	if len(content) > sourceExcerptLen {
		content = content[:sourceExcerptLen]
	}

	return string(content)
}
