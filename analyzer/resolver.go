// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package analyzer

import (
	"strings"

	"codeberg.org/pixivfe/i18nkeylint/config"
	"codeberg.org/pixivfe/i18nkeylint/dictionary"
)

// NamespaceSeparator separates an explicit namespace from the key path.
const NamespaceSeparator = ":"

// Resolution describes how a key was resolved.
type Resolution struct {
	// Key is the key after the scope prefix was applied.
	Key string
	// Namespace is the namespace the path was looked up in. It is empty when
	// namespaces are ignored.
	Namespace string
	// Path is the dotted path looked up.
	Path string
	// Explicit reports whether Key named its namespace.
	Explicit bool
	// Skipped reports that the key was not looked up.
	Skipped bool
	// Result is the value found, or [dictionary.Absent] when skipped or missing.
	Result dictionary.Result
}

// Missing reports whether the key was looked up and not found.
func (r Resolution) Missing() bool {
	return !r.Skipped && !r.Result.IsPresent()
}

// Resolver resolves translation keys against a dictionary store.
type Resolver struct {
	store            *dictionary.Store
	defaultNamespace string
	namespaceMode    bool
	skipNamespaced   bool
	ignoreNamespaces bool
}

// NewResolver returns a Resolver for opts over store.
func NewResolver(opts *config.Options, store *dictionary.Store) *Resolver {
	return &Resolver{
		store:            store,
		defaultNamespace: opts.DefaultNamespace,
		namespaceMode:    opts.NamespaceMode(),
		skipNamespaced:   opts.SkipNamespacedKeys,
		ignoreNamespaces: opts.IgnoreNamespaces,
	}
}

// Resolve looks up key in the context of a call site.
func (r *Resolver) Resolve(key string, ctx Context) Resolution {
	res := Resolution{Key: JoinPrefix(ctx.Prefix, key)}

	ns, path, explicit := SplitNamespace(res.Key)
	res.Path = path
	res.Explicit = explicit

	switch {
	case explicit:
		res.Namespace = ns
	case ctx.Namespace != "":
		res.Namespace = ctx.Namespace
	default:
		res.Namespace = r.defaultNamespace
	}

	if explicit && r.skipNamespaced {
		res.Skipped = true

		return res
	}

	if r.ignoreNamespaces {
		res.Namespace = ""
		res.Result = r.store.LookupMerged(path)

		return res
	}

	res.Result = r.store.Lookup(res.Namespace, path)

	return res
}

// Message returns the diagnostic message for a missing resolution.
func (r *Resolver) Message(res Resolution) string {
	switch {
	case r.ignoreNamespaces:
		return missingKey(res.Path)
	case r.namespaceMode:
		return missingInNamespace(res.Path, res.Namespace)
	default:
		return missingKey(res.Key)
	}
}

// SplitNamespace splits key at the first [NamespaceSeparator]. An empty
// namespace before the separator counts as no namespace.
func SplitNamespace(key string) (namespace, path string, explicit bool) {
	ns, path, found := strings.Cut(key, NamespaceSeparator)
	if !found {
		return "", key, false
	}

	return ns, path, ns != ""
}

// JoinPrefix prepends a scope prefix to key.
func JoinPrefix(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + dictionary.PathSeparator + key
}
