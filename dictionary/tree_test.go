// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleTree() Tree {
	return Tree{
		"pizza": "Pizza",
		"records": map[string]any{
			"contracts": "Contracts",
			"item_other": "items",
			"count_one":  "one record",
			"count_many": "many records",
		},
		"item_zero":  "no items",
		"item_other": "items",
		"list":       []any{"first", map[string]any{"label": "second"}},
		"nothing":    nil,
	}
}

func TestTreeLookup(t *testing.T) {
	t.Parallel()

	tree := sampleTree()

	tests := []struct {
		name    string
		path    string
		present bool
		want    any
	}{
		{name: "top-level leaf", path: "pizza", present: true, want: "Pizza"},
		{name: "nested leaf", path: "records.contracts", present: true, want: "Contracts"},
		{name: "missing top-level", path: "thisOneIsMissing"},
		{name: "missing intermediate", path: "orders.contracts"},
		{name: "descend through leaf", path: "pizza.size"},
		{name: "plural suffix first hit wins", path: "item", present: true, want: "no items"},
		{name: "plural suffix nested", path: "records.item", present: true, want: "items"},
		{name: "plural order prefers one over many", path: "records.count", present: true, want: "one record"},
		{name: "plural only at final segment", path: "item.x"},
		{name: "list index", path: "list.0", present: true, want: "first"},
		{name: "list nested", path: "list.1.label", present: true, want: "second"},
		{name: "list out of range", path: "list.2"},
		{name: "list non canonical index", path: "list.01"},
		{name: "explicit null is present", path: "nothing", present: true, want: nil},
		{name: "empty segment", path: "records."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tree.Lookup(tt.path).Value()
			assert.Equal(t, tt.present, ok)

			if tt.present {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestTreeLookupEmptyPathIsRoot(t *testing.T) {
	t.Parallel()

	tree := sampleTree()

	got, ok := tree.Lookup("").Value()
	assert.True(t, ok)
	assert.Equal(t, tree, got)
}

func TestTreeLookupContainerIsPresent(t *testing.T) {
	t.Parallel()

	r := sampleTree().Lookup("records")
	assert.True(t, r.IsPresent())
}

func TestTreeWalk(t *testing.T) {
	t.Parallel()

	tree := sampleTree()

	assert.True(t, tree.Walk(nil).IsPresent())
	assert.Equal(t, "Contracts", tree.Walk([]string{"records", "contracts"}).String())
	assert.False(t, tree.Walk([]string{"records", "contracts", "deeper"}).IsPresent())

	// Walk does not probe plural suffixes.
	assert.False(t, tree.Walk([]string{"item"}).IsPresent())
}

func TestTreeLeaves(t *testing.T) {
	t.Parallel()

	tree := Tree{
		"a": "A",
		"b": map[string]any{"c": "C", "d": map[string]any{"e": "E"}},
		"l": []any{"x"},
	}

	assert.Equal(t, []string{"a", "b.c", "b.d.e", "l.0"}, tree.Leaves())
}

func TestResultString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<absent>", Absent.String())
	assert.Equal(t, "Pizza", Present("Pizza").String())
	assert.Equal(t, "3", Present(3).String())
}

func TestStoreLookup(t *testing.T) {
	t.Parallel()

	store := NewStore(map[string]Tree{
		"errors":  {"notFound": "Not found", "shared": "from errors"},
		"default": {"title": "Title", "shared": "from default"},
	})

	assert.Equal(t, []string{"default", "errors"}, store.Namespaces())
	assert.True(t, store.Lookup("errors", "notFound").IsPresent())
	assert.False(t, store.Lookup("default", "notFound").IsPresent())
	assert.False(t, store.Lookup("unknown", "notFound").IsPresent())

	// The merged view holds every namespace; the last namespace in sorted
	// order wins on collisions.
	assert.True(t, store.LookupMerged("notFound").IsPresent())
	assert.True(t, store.LookupMerged("title").IsPresent())
	assert.Equal(t, "from errors", store.LookupMerged("shared").String())
	assert.Equal(t, []string{"notFound", "shared", "title"}, store.Merged().Leaves())

	_, ok := store.Tree("errors")
	assert.True(t, ok)
}
