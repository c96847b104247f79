// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package filecache

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew checks the creation of a cache with both valid and invalid sizes.
func TestNew(t *testing.T) {
	t.Parallel()

	for _, compress := range []bool{false, true} {
		cache, err := New(3, compress)
		require.NoError(t, err)
		require.NotNil(t, cache)
		assert.Equal(t, 0, cache.Len())
		assert.Equal(t, 3, cache.Size())
	}

	cache, err := New(0, false)
	require.ErrorIs(t, err, ErrInvalidSize)
	assert.Nil(t, cache)
}

// TestAddAndGet verifies round trips and least-recently-used eviction.
func TestAddAndGet(t *testing.T) {
	t.Parallel()

	cache, err := New(2, false)
	require.NoError(t, err)

	assert.False(t, cache.Add("a", []byte("alpha")))
	assert.False(t, cache.Add("b", []byte("beta")))

	// Touch "a" so that "b" becomes the oldest entry.
	got, ok := cache.Get("a")
	require.True(t, ok)
	assert.Equal(t, []byte("alpha"), got)

	assert.True(t, cache.Add("c", []byte("gamma")))

	_, ok = cache.Get("b")
	assert.False(t, ok, "expected b to be evicted")

	_, ok = cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, cache.Len())
}

// TestGetReturnsCopy verifies callers cannot mutate cached contents.
func TestGetReturnsCopy(t *testing.T) {
	t.Parallel()

	cache, err := New(1, false)
	require.NoError(t, err)

	data := []byte("pizza")
	cache.Add("k", data)
	data[0] = 'P'

	got, ok := cache.Get("k")
	require.True(t, ok)
	assert.Equal(t, "pizza", string(got))

	got[0] = 'X'

	again, _ := cache.Get("k")
	assert.Equal(t, "pizza", string(again))
}

// TestCompression verifies compressible contents round trip through zstd.
func TestCompression(t *testing.T) {
	t.Parallel()

	cache, err := New(2, true)
	require.NoError(t, err)

	large := strings.Repeat(`{"pizza": "Pizza"}`, 200)
	cache.Add("large", []byte(large))
	cache.Add("empty", nil)

	got, ok := cache.Get("large")
	require.True(t, ok)
	assert.Equal(t, large, string(got))

	got, ok = cache.Get("empty")
	require.True(t, ok)
	assert.Empty(t, got)
}

// TestReadFile verifies that unchanged files are served from the cache and
// changed files are read again.
func TestReadFile(t *testing.T) {
	t.Parallel()

	cache, err := New(4, true)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "en.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"a": "A"}`), 0o600))

	data, hit, err := cache.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.JSONEq(t, `{"a": "A"}`, string(data))

	_, hit, err = cache.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, hit)

	require.NoError(t, os.WriteFile(path, []byte(`{"a": "A", "b": "B"}`), 0o600))
	later := time.Now().Add(time.Minute)
	require.NoError(t, os.Chtimes(path, later, later))

	data, hit, err = cache.ReadFile(path)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.JSONEq(t, `{"a": "A", "b": "B"}`, string(data))

	_, _, err = cache.ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

// TestConcurrentAccess exercises the cache from several goroutines.
func TestConcurrentAccess(t *testing.T) {
	t.Parallel()

	cache, err := New(16, true)
	require.NoError(t, err)

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func(worker int) {
			defer wg.Done()

			for j := range 100 {
				key := strconv.Itoa((worker + j) % 32)
				cache.Add(key, []byte(strings.Repeat(key, 64)))

				if got, ok := cache.Get(key); ok {
					assert.Equal(t, strings.Repeat(key, 64), string(got))
				}
			}
		}(i)
	}

	wg.Wait()

	assert.LessOrEqual(t, cache.Len(), 16)
}
