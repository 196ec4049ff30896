package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/Sumatoshi-tech/past/pkg/gitlib"
	"github.com/Sumatoshi-tech/past/pkg/past"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

const stdinName = "stdin.rs"

// ErrNoSourceFiles is returned when --all finds nothing to map.
var ErrNoSourceFiles = errors.New("no Rust source files found")

// sourceSet names the files a command maps and knows how to map one of them.
type sourceSet struct {
	paths []string
	parse func(ctx context.Context, path string) (*node.SourceFile, error)
	close func()
}

// sourceOptions select where sources are read from.
type sourceOptions struct {
	all  bool
	repo string
	rev  string
}

// openSources resolves args to a set of Rust files on disk, or at a git
// revision when a revision is given.
func (a *app) openSources(args []string, opts sourceOptions) (*sourceSet, error) {
	if opts.rev != "" {
		return a.gitSources(args, opts)
	}

	paths := args

	if opts.all {
		roots := args
		if len(roots) == 0 {
			roots = []string{"."}
		}

		paths = nil

		for _, root := range roots {
			found, err := past.CollectRustFiles(root)
			if err != nil {
				return nil, fmt.Errorf("collect %s: %w", root, err)
			}

			paths = append(paths, found...)
		}

		if len(paths) == 0 {
			return nil, ErrNoSourceFiles
		}
	}

	return &sourceSet{paths: paths, parse: a.parser.ParseFile, close: func() {}}, nil
}

func (a *app) gitSources(args []string, opts sourceOptions) (*sourceSet, error) {
	repoPath := opts.repo
	if repoPath == "" {
		repoPath = "."
	}

	repo, err := gitlib.OpenRepository(repoPath)
	if err != nil {
		return nil, err
	}

	paths := args

	if opts.all {
		paths, err = repo.Files(opts.rev, past.IsSupported)
		if err != nil {
			repo.Free()

			return nil, err
		}

		if len(paths) == 0 {
			repo.Free()

			return nil, ErrNoSourceFiles
		}
	}

	var mu sync.Mutex

	parse := func(ctx context.Context, path string) (*node.SourceFile, error) {
		mu.Lock()
		id, content, readErr := repo.ReadBlob(opts.rev, path)
		mu.Unlock()

		if readErr != nil {
			return nil, readErr
		}

		return a.parseBlob(ctx, id, path, content)
	}

	return &sourceSet{paths: paths, parse: parse, close: repo.Free}, nil
}

// parseStdin maps Rust source read from r.
func (a *app) parseStdin(ctx context.Context, r io.Reader) (*node.SourceFile, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}

	return a.parser.Parse(ctx, stdinName, content)
}

// parseAll maps every path with up to workers goroutines and returns the
// results in input order. It stops at the first failure.
func (a *app) parseAll(ctx context.Context, set *sourceSet, workers int, progress io.Writer) ([]*node.SourceFile, error) {
	if workers <= 0 {
		workers = a.cfg.Parser.Workers
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*node.SourceFile, len(set.paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)

	var (
		done       atomic.Int64
		progressMu sync.Mutex
	)

	total := len(set.paths)

	for i, path := range set.paths {
		group.Go(func() error {
			file, err := set.parse(groupCtx, path)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}

			results[i] = file

			if progress != nil {
				progressMu.Lock()
				fmt.Fprintf(progress, "[%d/%d] %s\n", done.Add(1), total, path)
				progressMu.Unlock()
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
