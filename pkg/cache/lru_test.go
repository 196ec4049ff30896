package cache_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/past/pkg/cache"
	"github.com/Sumatoshi-tech/past/pkg/gitlib"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

func makeTestHash(b byte) gitlib.Hash {
	var h gitlib.Hash

	h[0] = b

	return h
}

func makeTestFile(path string, size uint32) *node.SourceFile {
	return &node.SourceFile{
		Root: node.Envelope{Text: strings.Repeat("x", int(size)), Span: node.Span{EndOffset: size}},
		Path: path,
	}
}

func TestFileCache_GetPut(t *testing.T) {
	t.Parallel()

	c := cache.New(1024)
	hash := makeTestHash(1)

	assert.Nil(t, c.Get(hash, "a.rs"))

	file := makeTestFile("a.rs", 11)
	c.Put(hash, file)

	got := c.Get(hash, "a.rs")
	require.NotNil(t, got)
	assert.NotSame(t, file, got)
	assert.Equal(t, file, got)
}

func TestFileCache_CopiesAreIndependent(t *testing.T) {
	t.Parallel()

	c := cache.New(1024)
	hash := makeTestHash(1)

	file := makeTestFile("a.rs", 11)
	file.Items = []node.Item{&node.Function{Name: &node.Name{Envelope: node.Envelope{Text: "f"}}}}
	c.Put(hash, file)

	file.Items[0].(*node.Function).Name.Text = "changed"

	first := c.Get(hash, "a.rs")
	second := c.Get(hash, "b.rs")
	require.NotNil(t, first)
	require.NotNil(t, second)

	firstFn, ok := first.Items[0].(*node.Function)
	require.True(t, ok)
	assert.Equal(t, "f", firstFn.Name.Text)

	firstFn.Name.Text = "g"

	secondFn, ok := second.Items[0].(*node.Function)
	require.True(t, ok)
	assert.NotSame(t, firstFn, secondFn)
	assert.Equal(t, "f", secondFn.Name.Text)
}

func TestFileCache_Relabel(t *testing.T) {
	t.Parallel()

	c := cache.New(1024)
	hash := makeTestHash(1)
	file := makeTestFile("old/a.rs", 11)

	c.Put(hash, file)

	got := c.Get(hash, "new/a.rs")
	require.NotNil(t, got)
	assert.Equal(t, "new/a.rs", got.Path)
	assert.Equal(t, file.Root, got.Root)
	assert.Equal(t, "old/a.rs", file.Path)
}

func TestFileCache_Eviction(t *testing.T) {
	t.Parallel()

	c := cache.New(100)

	c.Put(makeTestHash(1), makeTestFile("1.rs", 40))
	c.Put(makeTestHash(2), makeTestFile("2.rs", 40))
	c.Put(makeTestHash(3), makeTestFile("3.rs", 40))

	assert.Nil(t, c.Get(makeTestHash(1), "1.rs"))
	assert.NotNil(t, c.Get(makeTestHash(2), "2.rs"))
	assert.NotNil(t, c.Get(makeTestHash(3), "3.rs"))

	stats := c.Stats()
	assert.Equal(t, 2, stats.Entries)
	assert.Equal(t, int64(80), stats.CurrentSize)
}

func TestFileCache_RecentlyUsedSurvives(t *testing.T) {
	t.Parallel()

	c := cache.New(100)

	c.Put(makeTestHash(1), makeTestFile("1.rs", 40))
	c.Put(makeTestHash(2), makeTestFile("2.rs", 40))

	require.NotNil(t, c.Get(makeTestHash(1), "1.rs"))

	c.Put(makeTestHash(3), makeTestFile("3.rs", 40))

	assert.NotNil(t, c.Get(makeTestHash(1), "1.rs"))
	assert.Nil(t, c.Get(makeTestHash(2), "2.rs"))
}

func TestFileCache_Oversized(t *testing.T) {
	t.Parallel()

	c := cache.New(10)
	c.Put(makeTestHash(1), makeTestFile("big.rs", 11))
	c.Put(makeTestHash(2), nil)

	assert.Equal(t, 0, c.Stats().Entries)
}

func TestFileCache_DefaultSize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(cache.DefaultSize), cache.New(0).Stats().MaxSize)
}

func TestFileCache_Stats(t *testing.T) {
	t.Parallel()

	c := cache.New(1024)
	assert.InDelta(t, 0.0, c.Stats().HitRate(), 0.001)

	c.Put(makeTestHash(1), makeTestFile("a.rs", 4))
	c.Get(makeTestHash(1), "a.rs")
	c.Get(makeTestHash(1), "a.rs")
	c.Get(makeTestHash(2), "b.rs")

	stats := c.Stats()
	assert.Equal(t, int64(2), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.InDelta(t, 2.0/3.0, stats.HitRate(), 0.001)
}

func TestFileCache_Concurrent(t *testing.T) {
	t.Parallel()

	c := cache.New(1024)

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)

		go func(b byte) {
			defer wg.Done()

			hash := makeTestHash(b % 4)
			c.Put(hash, makeTestFile("f.rs", 16))
			c.Get(hash, "g.rs")
		}(byte(i))
	}

	wg.Wait()

	assert.LessOrEqual(t, c.Stats().Entries, 4)
}
