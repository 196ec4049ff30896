package past

import (
	"slices"
	"sync"
	"unsafe"

	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/alexaandru/go-sitter-forest/rust"
	"github.com/alexaandru/go-sitter-forest/rust_with_rstml"
)

// Grammar names accepted by WithGrammar and the parser.grammar setting.
const (
	GrammarRust          = "rust"
	GrammarRustWithRSTML = "rust_with_rstml"
)

var grammarFuncs = map[string]func() unsafe.Pointer{
	GrammarRust:          rust.GetLanguage,
	GrammarRustWithRSTML: rust_with_rstml.GetLanguage,
}

var grammarCache sync.Map

// GetLanguage returns the tree-sitter language for a grammar name, or nil.
func GetLanguage(name string) *sitter.Language {
	if cached, ok := grammarCache.Load(name); ok {
		if lang, castOK := cached.(*sitter.Language); castOK {
			return lang
		}
	}

	fn, ok := grammarFuncs[name]
	if !ok {
		return nil
	}

	lang := sitter.NewLanguage(fn())
	grammarCache.Store(name, lang)

	return lang
}

// Grammars lists the supported grammar names in sorted order.
func Grammars() []string {
	names := make([]string, 0, len(grammarFuncs))
	for name := range grammarFuncs {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}
