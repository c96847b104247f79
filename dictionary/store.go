// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package dictionary

import "sort"

// Store holds the dictionary tree of every loaded namespace.
//
// Instances must be constructed with [NewStore] or a [Loader]; the zero value
// holds no namespaces. A Store is read-only after construction.
type Store struct {
	namespaces map[string]Tree
	names      []string
	merged     Tree
}

// NewStore builds a Store from namespace trees. The map is used as-is and not
// copied.
//
// The merged view used when namespaces are ignored is computed here by merging
// the top-level keys of every namespace in sorted name order. Keys that exist
// in several namespaces collide, and the namespace sorting last wins.
func NewStore(namespaces map[string]Tree) *Store {
	names := make([]string, 0, len(namespaces))
	for name := range namespaces {
		names = append(names, name)
	}

	sort.Strings(names)

	merged := make(Tree)
	for _, name := range names {
		mergeTop(merged, namespaces[name])
	}

	return &Store{
		namespaces: namespaces,
		names:      names,
		merged:     merged,
	}
}

// Namespaces returns the loaded namespace names, sorted. The returned slice
// is a copy.
func (s *Store) Namespaces() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)

	return out
}

// Tree returns the tree of namespace and whether it was loaded.
func (s *Store) Tree(namespace string) (Tree, bool) {
	t, ok := s.namespaces[namespace]

	return t, ok
}

// Merged returns the union of every namespace tree.
func (s *Store) Merged() Tree {
	return s.merged
}

// Lookup resolves path inside namespace. Unknown namespaces yield [Absent].
func (s *Store) Lookup(namespace, path string) Result {
	t, ok := s.namespaces[namespace]
	if !ok {
		return Absent
	}

	return t.Lookup(path)
}

// LookupMerged resolves path against the merged view of all namespaces.
func (s *Store) LookupMerged(path string) Result {
	return s.merged.Lookup(path)
}
