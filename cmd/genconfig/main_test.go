// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tidwall/gjson"
)

func TestGenerateEnvFile(t *testing.T) {
	t.Parallel()

	out := string(generateEnvFile())

	assert.True(t, strings.HasPrefix(out, envFileHeader))
	assert.Contains(t, out, "# I18NKEYLINT_FUNCTION_NAME=t\n")
	assert.Contains(t, out, "# I18NKEYLINT_REFERENCE_FILES=./lang/en.json\n")
	assert.Contains(t, out, "# I18NKEYLINT_NAMESPACE_MAPPING_FILE=\n")
	assert.Contains(t, out, "# I18NKEYLINT_CACHE_SIZE=64\n")
}

func TestGenerateYAMLFile(t *testing.T) {
	t.Parallel()

	out := string(generateYAMLFile())

	assert.Contains(t, out, "# functionName: t\n")
	assert.Contains(t, out, "# defaultNamespace: default\n")

	for line := range strings.SplitSeq(strings.TrimPrefix(out, yamlFileHeader), "\n") {
		if line == "" {
			continue
		}

		assert.Contains(t, line, "# ")
	}
}

func TestGenerateSchema(t *testing.T) {
	t.Parallel()

	out := string(generateSchema())

	assert.True(t, gjson.Valid(out))
	assert.Equal(t, "object", gjson.Get(out, "type").String())
	assert.Equal(t, "string", gjson.Get(out, "properties.functionName.type").String())
	assert.Equal(t, "namespaceTranslationMappingFile", gjson.Get(out, "then.required.0").String())
}
