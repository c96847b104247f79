// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package dictionary

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PathSeparator separates the segments of a dotted key path.
const PathSeparator = "."

// PluralSuffixes lists the count-category suffixes tried, in order, when the
// final segment of a path is missing. A suffix is joined to the segment with
// an underscore, so "item" is retried as "item_zero", "item_singular" and so on.
var PluralSuffixes = []string{"zero", "singular", "one", "two", "few", "many", "other"}

// Tree is a nested dictionary. Values are strings (or other scalars), nested
// trees, or lists.
type Tree map[string]any

// Result is the outcome of a lookup: either a present value or absent.
//
// The zero value is [Absent].
type Result struct {
	value   any
	present bool
}

// Absent is the result of a failed lookup.
var Absent = Result{}

// Present returns a result holding v. A present result may hold nil when the
// dictionary contains an explicit null.
func Present(v any) Result {
	return Result{value: v, present: true}
}

// IsPresent reports whether the lookup found a value.
func (r Result) IsPresent() bool {
	return r.present
}

// Value returns the found value and whether it was present.
func (r Result) Value() (any, bool) {
	return r.value, r.present
}

// String renders a leaf value. Containers are rendered with fmt.
func (r Result) String() string {
	if !r.present {
		return "<absent>"
	}

	if s, ok := r.value.(string); ok {
		return s
	}

	return fmt.Sprint(r.value)
}

// Walk descends through t following segments and returns the value found at
// the end of the walk. It returns [Absent] as soon as a segment is missing or
// the current value cannot be indexed. An empty segment list yields t itself.
func (t Tree) Walk(segments []string) Result {
	current := Present(t)

	for _, segment := range segments {
		current = child(current, segment)
		if !current.present {
			return Absent
		}
	}

	return current
}

// Lookup resolves a dotted path against t, applying the plural-suffix fallback
// to the final segment. An empty path resolves to t itself.
func (t Tree) Lookup(path string) Result {
	if path == "" {
		return Present(t)
	}

	segments := strings.Split(path, PathSeparator)
	last := segments[len(segments)-1]

	parent := t.Walk(segments[:len(segments)-1])
	if !parent.present {
		return Absent
	}

	if r := child(parent, last); r.present {
		return r
	}

	for _, suffix := range PluralSuffixes {
		if r := child(parent, last+"_"+suffix); r.present {
			return r
		}
	}

	return Absent
}

// Leaves returns every dotted path in t that ends at a non-container value,
// sorted.
func (t Tree) Leaves() []string {
	var out []string

	collectLeaves(t, "", &out)
	sort.Strings(out)

	return out
}

func collectLeaves(v any, prefix string, out *[]string) {
	join := func(k string) string {
		if prefix == "" {
			return k
		}

		return prefix + PathSeparator + k
	}

	switch node := v.(type) {
	case Tree:
		for k, sub := range node {
			collectLeaves(sub, join(k), out)
		}
	case map[string]any:
		collectLeaves(Tree(node), prefix, out)
	case []any:
		for i, sub := range node {
			collectLeaves(sub, join(strconv.Itoa(i)), out)
		}
	default:
		*out = append(*out, prefix)
	}
}

// child indexes parent by key. Mappings are indexed by key and lists by
// decimal position; anything else has no children.
func child(parent Result, key string) Result {
	if !parent.present {
		return Absent
	}

	switch node := parent.value.(type) {
	case Tree:
		if v, ok := node[key]; ok {
			return Present(v)
		}
	case map[string]any:
		if v, ok := node[key]; ok {
			return Present(v)
		}
	case []any:
		i, err := strconv.Atoi(key)
		if err == nil && i >= 0 && i < len(node) && strconv.Itoa(i) == key {
			return Present(node[i])
		}
	}

	return Absent
}

// mergeTop copies the top-level keys of src into dst, overriding existing keys.
func mergeTop(dst, src Tree) {
	for k, v := range src {
		dst[k] = v
	}
}
