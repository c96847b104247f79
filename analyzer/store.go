// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package analyzer

import (
	"sync"

	"codeberg.org/pixivfe/i18nkeylint/config"
	"codeberg.org/pixivfe/i18nkeylint/dictionary"
	"codeberg.org/pixivfe/i18nkeylint/dictionary/filecache"
)

// The file cache is shared by every load in the process that enables it.
var (
	sharedCacheMu sync.Mutex
	sharedCache   *filecache.Cache
)

// LoadStore reads the dictionaries named by opts. Files are read again on
// every call; with opts.Cache set, unchanged files come from memory.
func LoadStore(opts *config.Options) (*dictionary.Store, error) {
	var cache *filecache.Cache

	if opts.Cache {
		var err error

		cache, err = fileCache(opts.CacheSize)
		if err != nil {
			return nil, err
		}
	}

	loader := dictionary.NewLoader(cache)

	if opts.NamespaceMode() {
		return loader.LoadNamespaceMapping(opts.NamespaceTranslationMappingFile)
	}

	return loader.LoadReferenceFiles(opts.ReferenceTranslationFiles, opts.DefaultNamespace)
}

// fileCache returns the shared cache, replacing it when the size changed.
func fileCache(size int) (*filecache.Cache, error) {
	sharedCacheMu.Lock()
	defer sharedCacheMu.Unlock()

	if sharedCache != nil && sharedCache.Size() == size {
		return sharedCache, nil
	}

	c, err := filecache.New(size, true)
	if err != nil {
		return nil, err
	}

	sharedCache = c

	return c, nil
}
