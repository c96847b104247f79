// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package dictionary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"

	"codeberg.org/pixivfe/i18nkeylint/dictionary/filecache"
)

var (
	// ErrNoFiles is returned when no reference dictionary file is given.
	ErrNoFiles = errors.New("no reference translation files given")

	// ErrInvalidMappingEntry is returned when a namespace mapping entry does
	// not name a file.
	ErrInvalidMappingEntry = errors.New("namespace mapping entry must be a file path")
)

// Loader reads dictionary files from disk.
//
// Every load reads the files again. Caching only happens when Cache is set,
// in which case unchanged files are served from memory.
type Loader struct {
	// Cache, if non-nil, serves unchanged file contents from memory.
	Cache *filecache.Cache

	logger zerolog.Logger
}

// NewLoader returns a Loader that logs through the global zerolog logger.
func NewLoader(cache *filecache.Cache) *Loader {
	return &Loader{
		Cache:  cache,
		logger: log.With().Str("sys", "dictionary").Logger(),
	}
}

// LoadReferenceFiles decodes every file in paths and merges them into a
// single namespace. Later files override the top-level keys of earlier ones.
func (l *Loader) LoadReferenceFiles(paths []string, namespace string) (*Store, error) {
	if len(paths) == 0 {
		return nil, ErrNoFiles
	}

	tree := make(Tree)

	for _, path := range paths {
		t, err := l.LoadFile(path)
		if err != nil {
			return nil, err
		}

		mergeTop(tree, t)
	}

	l.logger.Info().
		Str("namespace", namespace).
		Int("files", len(paths)).
		Int("keys", len(tree)).
		Msg("Loaded reference translations")

	return NewStore(map[string]Tree{namespace: tree}), nil
}

// LoadNamespaceMapping reads a flat namespace to file path mapping and loads
// each referenced file as its own namespace.
//
// Relative paths in the mapping are resolved against the working directory.
func (l *Loader) LoadNamespaceMapping(path string) (*Store, error) {
	mapping, err := l.LoadFile(path)
	if err != nil {
		return nil, err
	}

	namespaces := make(map[string]Tree, len(mapping))

	for namespace, v := range mapping {
		file, ok := v.(string)
		if !ok || file == "" {
			return nil, fmt.Errorf("%w: namespace %q in %s", ErrInvalidMappingEntry, namespace, path)
		}

		t, err := l.LoadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load namespace %q: %w", namespace, err)
		}

		namespaces[namespace] = t
	}

	l.logger.Info().
		Str("path", path).
		Int("namespaces", len(namespaces)).
		Msg("Loaded namespace translations")

	return NewStore(namespaces), nil
}

// LoadFile reads and decodes a single dictionary file.
func (l *Loader) LoadFile(path string) (Tree, error) {
	data, err := l.read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translation file %s: %w", path, err)
	}

	t, err := Decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse translation file %s: %w", path, err)
	}

	event := l.logger.Debug().
		Str("path", path).
		Str("format", string(FormatOf(path)))

	if tag, ok := localeOf(path); ok {
		event = event.Str("locale", tag.String())
	}

	event.Msg("Loaded translation file")

	return t, nil
}

func (l *Loader) read(path string) ([]byte, error) {
	if l.Cache == nil {
		return os.ReadFile(path) // #nosec G304 -- dictionary paths come from rule options
	}

	data, hit, err := l.Cache.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if hit {
		l.logger.Debug().Str("path", path).Msg("Translation file served from cache")
	}

	return data, nil
}

// localeOf reports the BCP 47 tag named by a dictionary file, such as
// "en.json" or "pt_BR.yaml". Hyphens and underscores are both accepted.
func localeOf(path string) (language.Tag, bool) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	t, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return language.Und, false
	}

	return t, true
}
