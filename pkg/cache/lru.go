// Package cache keeps mapped source files across revisions, keyed by git
// blob id, so an unchanged file is mapped once per run.
package cache

import (
	"sync"
	"sync/atomic"

	"github.com/Sumatoshi-tech/past/pkg/gitlib"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

// DefaultSize is the default source budget of a FileCache (64 MiB).
const DefaultSize = 64 * 1024 * 1024

const bytesPerKB = 1024.0

// FileCache is an LRU of mapped files. Its size is the total length of the
// cached source text. It is safe for concurrent use.
//
// A cache must only hold files mapped with one grammar.
type FileCache struct {
	mu          sync.Mutex
	entries     map[gitlib.Hash]*lruEntry
	head        *lruEntry // Most recently used.
	tail        *lruEntry // Least recently used.
	maxSize     int64
	currentSize int64

	hits   atomic.Int64
	misses atomic.Int64
}

type lruEntry struct {
	hash        gitlib.Hash
	file        *node.SourceFile
	size        int64
	accessCount int64
	prev        *lruEntry
	next        *lruEntry
}

// evictionCost is low for large, rarely used entries.
func (e *lruEntry) evictionCost() float64 {
	if e.size == 0 {
		return float64(e.accessCount)
	}

	sizeKB := float64(e.size) / bytesPerKB
	if sizeKB < 1 {
		sizeKB = 1
	}

	return float64(e.accessCount) / sizeKB
}

// New creates a cache holding up to maxSize bytes of source. A maxSize of
// zero or less selects DefaultSize.
func New(maxSize int64) *FileCache {
	if maxSize <= 0 {
		maxSize = DefaultSize
	}

	return &FileCache{
		entries: make(map[gitlib.Hash]*lruEntry),
		maxSize: maxSize,
	}
}

// Get returns a private copy of the file mapped from blob hash, relabelled
// with path, or nil.
func (c *FileCache) Get(hash gitlib.Hash, path string) *node.SourceFile {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[hash]
	if !ok {
		c.misses.Add(1)

		return nil
	}

	c.hits.Add(1)

	entry.accessCount++
	c.moveToFront(entry)

	file := entry.file.Clone()
	file.Path = path

	return file
}

// Put stores a copy of the file mapped from blob hash. Files larger than the
// whole cache are not stored.
func (c *FileCache) Put(hash gitlib.Hash, file *node.SourceFile) {
	if file == nil {
		return
	}

	size := int64(len(file.Root.Text))
	if size > c.maxSize {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[hash]; ok {
		entry.accessCount++
		c.moveToFront(entry)

		return
	}

	for c.currentSize+size > c.maxSize && c.tail != nil {
		c.evictLowestCost()
	}

	entry := &lruEntry{
		hash:        hash,
		file:        file.Clone(),
		size:        size,
		accessCount: 1,
	}

	c.entries[hash] = entry
	c.currentSize += size
	c.addToFront(entry)
}

// Stats returns cache statistics.
func (c *FileCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Entries:     len(c.entries),
		CurrentSize: c.currentSize,
		MaxSize:     c.maxSize,
	}
}

// Stats holds cache counters.
type Stats struct {
	Hits        int64
	Misses      int64
	Entries     int
	CurrentSize int64
	MaxSize     int64
}

// HitRate returns hits over lookups, 0 when nothing was looked up.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0.0
	}

	return float64(s.Hits) / float64(total)
}

func (c *FileCache) moveToFront(entry *lruEntry) {
	if entry == c.head {
		return
	}

	c.removeFromList(entry)
	c.addToFront(entry)
}

func (c *FileCache) addToFront(entry *lruEntry) {
	entry.prev = nil
	entry.next = c.head

	if c.head != nil {
		c.head.prev = entry
	}

	c.head = entry

	if c.tail == nil {
		c.tail = entry
	}
}

func (c *FileCache) removeFromList(entry *lruEntry) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}

	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
}

// evictionSampleSize bounds how many tail entries are compared per eviction.
const evictionSampleSize = 5

// evictLowestCost evicts the cheapest of the evictionSampleSize least
// recently used entries.
func (c *FileCache) evictLowestCost() {
	if c.tail == nil {
		return
	}

	victim := c.tail
	lowestCost := victim.evictionCost()

	entry := c.tail.prev
	for sampled := 1; entry != nil && sampled < evictionSampleSize; sampled++ {
		if cost := entry.evictionCost(); cost < lowestCost {
			lowestCost = cost
			victim = entry
		}

		entry = entry.prev
	}

	c.removeFromList(victim)
	delete(c.entries, victim.hash)
	c.currentSize -= victim.size
}
