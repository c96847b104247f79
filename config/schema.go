// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"
)

// ErrInvalidDocument is returned when a config file does not match [Schema].
var ErrInvalidDocument = errors.New("configuration does not match schema")

// Schema returns the JSON schema of a config file document.
//
// Unknown properties are rejected. When requireNamespaceMapping is true,
// namespaceTranslationMappingFile is required.
func Schema() *jsonschema.Schema {
	str := func(description string) *jsonschema.Schema {
		return &jsonschema.Schema{Type: "string", Description: description}
	}
	boolean := func(description string) *jsonschema.Schema {
		return &jsonschema.Schema{Type: "boolean", Description: description}
	}

	minCacheSize := 1.0

	return &jsonschema.Schema{
		Title: "i18nkeylint configuration",
		Type:  "object",
		Properties: map[string]*jsonschema.Schema{
			"functionName": str("Identifier of the translation function."),
			"hookName":     str("Name of the function declaring a localisation scope."),
			"referenceTranslationFiles": {
				Type:        "array",
				Description: "Dictionary files merged into the default namespace.",
				Items:       str("Dictionary file path."),
			},
			"referenceTranslationFile":        str("Single dictionary file path."),
			"namespaceTranslationMappingFile": str("File mapping namespace names to dictionary file paths."),
			"defaultNamespace":                str("Namespace assumed for keys without a namespace prefix."),
			"skipNamespacedKeys":              boolean("Skip keys with an explicit namespace."),
			"ignoreNamespaces":                boolean("Strip namespaces and search every namespace."),
			"allowNonLiteralKeys":             boolean("Do not report non-constant keys."),
			"requireNamespaceMapping":         boolean("Require namespaceTranslationMappingFile."),
			"cache":                           boolean("Cache dictionary file contents between loads."),
			"cacheSize": {
				Type:        "integer",
				Description: "Maximum number of cached dictionary files.",
				Minimum:     &minCacheSize,
			},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
		If: &jsonschema.Schema{
			Properties: map[string]*jsonschema.Schema{
				"requireNamespaceMapping": {Enum: []any{true}},
			},
			Required: []string{"requireNamespaceMapping"},
		},
		Then: &jsonschema.Schema{
			Required: []string{"namespaceTranslationMappingFile"},
		},
	}
}

// validateDocument checks a YAML (or JSON) config document against [Schema]
// and returns it as a generic object.
func validateDocument(data []byte) (map[string]any, error) {
	jsonData, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var doc any
	if err := json.Unmarshal(jsonData, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	resolved, err := Schema().Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema: %w", err)
	}

	if err := resolved.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	obj, _ := doc.(map[string]any)

	return obj, nil
}
