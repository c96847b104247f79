// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

/*
Package filecache provides a thread-safe, fixed-capacity least-recently-used (LRU)
cache of file contents.

Entries are keyed by path, size and modification time, so a file that changes on
disk is read again on the next [Cache.ReadFile]. When created with compression
enabled via [New], contents are stored zstd-compressed whenever that reduces their
size and are transparently decompressed on read.
*/
package filecache

import (
	"container/list"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/klauspost/compress/zstd"
)

var ErrInvalidSize = errors.New("must provide a positive size")

// Cache is a fixed-capacity, least-recently-used cache of file contents that is
// safe for concurrent use. Instances must be constructed with [New]; the zero
// value is not ready for use.
type Cache struct {
	size            int                      // Maximum number of cached files
	evictList       *list.List               // Eviction order, most recent at the front
	items           map[string]*list.Element // Maps cache keys to their list elements
	lock            sync.RWMutex             // For thread-safe operations
	compressEnabled bool                     // Whether contents are stored compressed
	zstdEnc         *zstd.Encoder            // Reusable zstd encoder for block operations
	zstdDec         *zstd.Decoder            // Reusable zstd decoder for block operations
}

// entry holds the key and stored bytes of each linked-list element.
type entry struct {
	key        string
	data       []byte
	compressed bool
}

// New creates a cache holding at most size files.
//
// It returns an error if size is not a positive integer.
func New(size int, compress bool) (*Cache, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	c := &Cache{
		size:            size,
		evictList:       list.New(),
		items:           make(map[string]*list.Element),
		compressEnabled: compress,
	}

	if compress {
		// A nil writer/reader lets us use EncodeAll/DecodeAll without streams.
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}

		dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))
		if err != nil {
			return nil, err
		}

		c.zstdEnc = enc
		c.zstdDec = dec
	}

	return c, nil
}

// Key builds the cache key for a file from its path and stat information.
func Key(path string, fi os.FileInfo) string {
	return fmt.Sprintf("%s|%d|%d", path, fi.Size(), fi.ModTime().UnixNano())
}

// ReadFile returns the contents of path, served from the cache when the file
// has not changed since it was cached. The second result reports a cache hit.
func (c *Cache) ReadFile(path string) ([]byte, bool, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, false, err
	}

	key := Key(path, fi)

	if data, ok := c.Get(key); ok {
		return data, true, nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- dictionary paths come from rule options
	if err != nil {
		return nil, false, err
	}

	c.Add(key, data)

	return data, false, nil
}

// Add stores data under key, making it the most recently used entry.
//
// If the cache is at capacity, the least recently used entry is evicted.
// Add reports whether an eviction occurred.
func (c *Cache) Add(key string, data []byte) bool {
	stored, compressed := c.prepare(data)

	c.lock.Lock()
	defer c.lock.Unlock()

	if ent, ok := c.items[key]; ok {
		c.evictList.MoveToFront(ent)

		if e, ok := ent.Value.(*entry); ok {
			e.data = stored
			e.compressed = compressed
		}

		return false
	}

	c.items[key] = c.evictList.PushFront(&entry{
		key:        key,
		data:       stored,
		compressed: compressed,
	})

	evicted := c.evictList.Len() > c.size
	if evicted {
		c.removeOldest()
	}

	return evicted
}

// Get returns a copy of the contents stored under key and marks the entry as
// most recently used.
func (c *Cache) Get(key string) ([]byte, bool) {
	// Lock for write since we move the element to the front.
	c.lock.Lock()

	ent, ok := c.items[key]
	if !ok {
		c.lock.Unlock()
		return nil, false
	}

	c.evictList.MoveToFront(ent)

	e, ok := ent.Value.(*entry)
	if !ok {
		c.lock.Unlock()
		return nil, false
	}

	stored := e.data
	compressed := e.compressed

	c.lock.Unlock()

	return c.restore(stored, compressed)
}

// Len returns the current number of cached files.
func (c *Cache) Len() int {
	c.lock.RLock()
	defer c.lock.RUnlock()

	return c.evictList.Len()
}

// Size returns the capacity the cache was created with.
func (c *Cache) Size() int {
	return c.size
}

func (c *Cache) removeOldest() {
	ent := c.evictList.Back()
	if ent == nil {
		return
	}

	c.evictList.Remove(ent)

	if e, ok := ent.Value.(*entry); ok {
		delete(c.items, e.key)
	}
}

// prepare compresses data when enabled and effective. Uncompressed data is
// copied so callers cannot mutate cached contents.
//
// Safe to call without holding the lock; zstd encoders support concurrent EncodeAll.
func (c *Cache) prepare(data []byte) ([]byte, bool) {
	if c.compressEnabled && len(data) > 0 {
		if packed := c.zstdEnc.EncodeAll(data, nil); len(packed) < len(data) {
			return packed, true
		}
	}

	copied := make([]byte, len(data))
	copy(copied, data)

	return copied, false
}

// restore returns a private copy of stored contents. A failed decompression
// makes the entry unavailable.
func (c *Cache) restore(stored []byte, compressed bool) ([]byte, bool) {
	if !compressed {
		copied := make([]byte, len(stored))
		copy(copied, stored)

		return copied, true
	}

	decoded, err := c.zstdDec.DecodeAll(stored, nil)
	if err != nil {
		return nil, false
	}

	return decoded, true
}
