// Package lsp provides a Language Server Protocol server for Rust files. It
// publishes a warning for every construct the PAST mapper does not model,
// and serves hovers and document symbols from the mapped tree.
package lsp

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/Sumatoshi-tech/past/pkg/past"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
	"github.com/Sumatoshi-tech/past/pkg/version"
)

const (
	serverName               = "past"
	diagnosticSource         = "past"
	methodPublishDiagnostics = "textDocument/publishDiagnostics"
)

// document is an open text buffer and its mapping.
type document struct {
	text  string
	lines *lineIndex
	file  *node.SourceFile
}

// DocumentStore is a thread-safe store of open documents keyed by URI.
type DocumentStore struct {
	documents map[string]*document
	mu        sync.RWMutex
}

// NewDocumentStore creates a new empty DocumentStore.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{documents: make(map[string]*document)}
}

func (ds *DocumentStore) set(uri string, doc *document) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.documents[uri] = doc
}

func (ds *DocumentStore) get(uri string) (*document, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	doc, ok := ds.documents[uri]

	return doc, ok
}

// Text returns the current content of an open document.
func (ds *DocumentStore) Text(uri string) (string, bool) {
	doc, ok := ds.get(uri)
	if !ok {
		return "", false
	}

	return doc.text, true
}

// Delete forgets a document.
func (ds *DocumentStore) Delete(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	delete(ds.documents, uri)
}

// Server implements the PAST language server.
type Server struct {
	store   *DocumentStore
	parser  *past.Parser
	logger  *slog.Logger
	handler protocol.Handler
}

// NewServer creates a language server that maps documents with parser.
func NewServer(parser *past.Parser, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	srv := &Server{store: NewDocumentStore(), parser: parser, logger: logger}

	srv.handler = protocol.Handler{
		Initialize:                 srv.initialize,
		Initialized:                srv.initialized,
		Shutdown:                   srv.shutdown,
		SetTrace:                   srv.setTrace,
		TextDocumentDidOpen:        srv.didOpen,
		TextDocumentDidChange:      srv.didChange,
		TextDocumentDidSave:        srv.didSave,
		TextDocumentDidClose:       srv.didClose,
		TextDocumentHover:          srv.hover,
		TextDocumentDocumentSymbol: srv.documentSymbol,
	}

	return srv
}

// Run serves the protocol on stdio until the client disconnects.
func (srv *Server) Run() error {
	lspServer := server.NewServer(&srv.handler, serverName, false)

	if err := lspServer.RunStdio(); err != nil {
		return fmt.Errorf("lsp server: %w", err)
	}

	return nil
}

func (srv *Server) initialize(_ *glsp.Context, _ *protocol.InitializeParams) (any, error) {
	capabilities := srv.handler.CreateServerCapabilities()

	// Whole-document sync keeps byte offsets and spans in step.
	full := protocol.TextDocumentSyncKindFull
	if opts, ok := capabilities.TextDocumentSync.(*protocol.TextDocumentSyncOptions); ok {
		opts.Change = &full
	} else {
		capabilities.TextDocumentSync = full
	}

	serverVersion := version.Version

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    serverName,
			Version: &serverVersion,
		},
	}, nil
}

func (srv *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (srv *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)

	return nil
}

func (srv *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)

	return nil
}

func (srv *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	srv.update(ctx, params.TextDocument.URI, params.TextDocument.Text)

	return nil
}

func (srv *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI

	text, ok := srv.store.Text(uri)
	if !ok {
		return nil
	}

	for _, change := range params.ContentChanges {
		text = applyChange(text, change)
	}

	srv.update(ctx, uri, text)

	return nil
}

func (srv *Server) didSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	uri := params.TextDocument.URI

	text, ok := srv.store.Text(uri)
	if params.Text != nil {
		text, ok = *params.Text, true
	}

	if ok {
		srv.update(ctx, uri, text)
	}

	return nil
}

func (srv *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	srv.store.Delete(uri)

	ctx.Notify(methodPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})

	return nil
}

// update maps the new text, stores it and publishes its diagnostics.
func (srv *Server) update(ctx *glsp.Context, uri, text string) {
	doc := &document{text: text, lines: newLineIndex(text)}

	file, err := srv.parser.Parse(context.Background(), uriPath(uri), []byte(text))
	if err != nil {
		srv.logger.Warn("parse document", "uri", uri, "error", err)
	} else {
		doc.file = file
	}

	srv.store.set(uri, doc)

	ctx.Notify(methodPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics(doc),
	})
}

// diagnostics reports one warning per Problem node.
func diagnostics(doc *document) []protocol.Diagnostic {
	out := []protocol.Diagnostic{}
	if doc.file == nil {
		return out
	}

	severity := protocol.DiagnosticSeverityWarning
	source := diagnosticSource

	for _, p := range node.FileProblems(doc.file) {
		out = append(out, protocol.Diagnostic{
			Range:    doc.lines.rangeOf(p.Span),
			Severity: &severity,
			Source:   &source,
			Message:  "unmodeled syntax: " + firstLine(p.Text),
		})
	}

	return out
}

func (srv *Server) hover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := srv.store.get(params.TextDocument.URI)
	if !ok || doc.file == nil {
		return nil, nil //nolint:nilnil // LSP expects a null hover.
	}

	offset := doc.lines.offset(params.Position)

	target := hoverTarget(node.FindAt(uint32(offset), doc.file.Nodes()...))
	if target == nil {
		return nil, nil //nolint:nilnil // LSP expects a null hover.
	}

	// The envelope span of a documented item starts at its doc comment.
	rng := doc.lines.rangeOf(target.Env().Span)

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: hoverText(target),
		},
		Range: &rng,
	}, nil
}

// hoverTarget picks the innermost node in chain that has a name or docs,
// falling back to the innermost node.
func hoverTarget(chain []node.Node) node.Node {
	for i := len(chain) - 1; i >= 0; i-- {
		if past.NameOf(chain[i]) != "" || chain[i].Env().DocComment != nil {
			return chain[i]
		}
	}

	if len(chain) == 0 {
		return nil
	}

	return chain[len(chain)-1]
}

func hoverText(n node.Node) string {
	var b strings.Builder

	b.WriteString("**")
	b.WriteString(string(n.Kind()))
	b.WriteString("**")

	if name := past.NameOf(n); name != "" {
		b.WriteString(" `")
		b.WriteString(name)
		b.WriteString("`")
	}

	if doc := n.Env().Doc(); doc != "" {
		b.WriteString("\n\n")
		b.WriteString(doc)
	}

	return b.String()
}

func (srv *Server) documentSymbol(_ *glsp.Context, params *protocol.DocumentSymbolParams) (any, error) {
	doc, ok := srv.store.get(params.TextDocument.URI)
	if !ok || doc.file == nil {
		return []protocol.DocumentSymbol{}, nil
	}

	return documentSymbols(doc.file, doc.lines), nil
}

// applyChange applies a full or ranged content change.
func applyChange(text string, change any) string {
	switch c := change.(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		return c.Text
	case protocol.TextDocumentContentChangeEvent:
		if c.Range == nil {
			return c.Text
		}

		li := newLineIndex(text)
		start, end := li.offset(c.Range.Start), li.offset(c.Range.End)

		if start > end {
			return text
		}

		return text[:start] + c.Text + text[end:]
	case map[string]any:
		if whole, ok := c["text"].(string); ok {
			return whole
		}
	}

	return text
}

// uriPath converts a file:// URI to the path recorded in the source file.
func uriPath(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil || parsed.Scheme != "file" {
		return uri
	}

	return parsed.Path
}

func firstLine(text string) string {
	line, _, cut := strings.Cut(text, "\n")
	if cut {
		return line + " ..."
	}

	return line
}
