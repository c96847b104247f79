// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package dictionary

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/leonelquinteros/gotext"
	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrNotMapping is returned when a dictionary or mapping file does not
	// hold a mapping at its top level.
	ErrNotMapping = errors.New("top-level value is not a mapping")

	// ErrConflictingKey is returned when a flat catalogue holds both a key
	// and a key nested below it, for example "a" and "a.b".
	ErrConflictingKey = errors.New("key conflicts with a nested key")
)

// Format names a dictionary encoding.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatPO   Format = "po"
)

// FormatOf picks the decoder for a file name by extension. JSON files use the
// YAML decoder.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML
	case ".po", ".pot":
		return FormatPO
	default:
		return FormatYAML
	}
}

// Decode parses data as a dictionary in the format implied by name.
func Decode(name string, data []byte) (Tree, error) {
	switch FormatOf(name) {
	case FormatTOML:
		return decodeTOML(data)
	case FormatPO:
		return decodePO(data)
	default:
		return decodeYAML(data)
	}
}

func decodeYAML(data []byte) (Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrNotMapping)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return asTree(normalize(doc))
}

func decodeTOML(data []byte) (Tree, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return asTree(normalize(doc))
}

// decodePO turns a gettext catalogue into a tree. Each msgid is treated as a
// dotted path. Plural entries also get "_one" and "_other" leaves so that
// both the bare key and the suffixed keys resolve.
func decodePO(data []byte) (Tree, error) {
	po := gotext.NewPo()
	po.Parse(data)

	out := make(Tree)

	for id, tr := range po.GetDomain().GetTranslations() {
		if id == "" || tr == nil {
			continue // header entry
		}

		value := tr.ID
		if s := tr.Trs[0]; s != "" {
			value = s
		}

		if err := setPath(out, id, value); err != nil {
			return nil, err
		}

		if tr.PluralID == "" {
			continue
		}

		plural := tr.PluralID
		if s := tr.Trs[1]; s != "" {
			plural = s
		}

		if err := setPath(out, id+"_one", value); err != nil {
			return nil, err
		}

		if err := setPath(out, id+"_other", plural); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// setPath stores value at the dotted path inside t, creating intermediate
// mappings.
func setPath(t Tree, path string, value any) error {
	segments := strings.Split(path, PathSeparator)
	node := map[string]any(t)

	for _, segment := range segments[:len(segments)-1] {
		next, ok := node[segment]
		if !ok {
			created := make(map[string]any)
			node[segment] = created
			node = created

			continue
		}

		m, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("%w: %q", ErrConflictingKey, path)
		}

		node = m
	}

	last := segments[len(segments)-1]
	if _, isMap := node[last].(map[string]any); isMap {
		return fmt.Errorf("%w: %q", ErrConflictingKey, path)
	}

	node[last] = value

	return nil
}

func asTree(v any) (Tree, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotMapping, v)
	}

	return Tree(m), nil
}

// normalize rewrites decoded documents so that every mapping is a
// map[string]any. Non-string keys, such as YAML integers, are formatted with
// fmt so they can still be addressed by a dotted path.
func normalize(v any) any {
	switch node := v.(type) {
	case map[string]any:
		for k, sub := range node {
			node[k] = normalize(sub)
		}

		return node
	case map[any]any:
		out := make(map[string]any, len(node))
		for k, sub := range node {
			out[fmt.Sprint(k)] = normalize(sub)
		}

		return out
	case yaml.MapSlice:
		out := make(map[string]any, len(node))
		for _, item := range node {
			out[fmt.Sprint(item.Key)] = normalize(item.Value)
		}

		return out
	case []any:
		for i, sub := range node {
			node[i] = normalize(sub)
		}

		return node
	case []map[string]any:
		out := make([]any, len(node))
		for i, sub := range node {
			out[i] = normalize(sub)
		}

		return out
	default:
		return v
	}
}
