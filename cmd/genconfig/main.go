// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command genconfig writes the example configuration files and the JSON
// schema of the configuration file into deploy/.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"

	"codeberg.org/pixivfe/i18nkeylint/config"
)

const (
	envOutputFile    = "deploy/.env.example"
	yamlOutputFile   = "deploy/i18nkeylint.yaml.example"
	schemaOutputFile = "deploy/i18nkeylint.schema.json"
	filePerm         = 0o644

	envFileHeader = `# i18nkeylint configuration (via environment variables)
#
# Copy this file to .env and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
	yamlFileHeader = `# i18nkeylint configuration (via configuration file)
#
# Copy this file to .i18nkeylint.yaml and customize the values below.
#
# This file was auto-generated using go run ./cmd/genconfig.

`
)

func main() {
	config.SetDefaultLogger()

	if err := os.MkdirAll(filepath.Dir(envOutputFile), 0o755); err != nil {
		log.Fatal().Err(err).Msg("Failed to create output directory")
	}

	write(envOutputFile, generateEnvFile())
	write(yamlOutputFile, generateYAMLFile())
	write(schemaOutputFile, generateSchema())
}

func write(path string, content []byte) {
	if err := os.WriteFile(path, content, filePerm); err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to write file")
	}

	log.Info().Str("path", path).Msg("Successfully generated file")
}

// generateEnvFile lists every environment variable with its default value,
// commented out.
func generateEnvFile() []byte {
	cfg := config.Default()

	var sb strings.Builder
	sb.WriteString(envFileHeader)

	fmt.Fprintf(&sb, "# %s=./.i18nkeylint.yaml\n", config.ConfigFileEnv)

	val := reflect.ValueOf(*cfg)
	typ := val.Type()

	for i := range typ.NumField() {
		field := typ.Field(i)
		value := val.Field(i)

		tag, ok := field.Tag.Lookup("env")
		if !ok {
			continue
		}

		envVarName := strings.Split(tag, ",")[0]

		switch {
		case value.Kind() == reflect.Slice:
			parts := make([]string, value.Len())
			for j := range value.Len() {
				parts[j] = fmt.Sprint(value.Index(j).Interface())
			}

			fmt.Fprintf(&sb, "# %s=%s\n", envVarName, strings.Join(parts, ","))
		case value.Kind() == reflect.String && value.Len() == 0:
			// Omit the value to prompt user input.
			fmt.Fprintf(&sb, "# %s=\n", envVarName)
		default:
			fmt.Fprintf(&sb, "# %s=%v\n", envVarName, value.Interface())
		}
	}

	return []byte(sb.String())
}

// generateYAMLFile marshals the defaults and comments out every line.
func generateYAMLFile() []byte {
	var yamlContent strings.Builder

	if err := yaml.NewEncoder(&yamlContent, yaml.Indent(2)).Encode(config.Default()); err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config to YAML")
	}

	var sb strings.Builder
	sb.WriteString(yamlFileHeader)

	for line := range strings.SplitSeq(yamlContent.String(), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		indentSize := len(line) - len(strings.TrimLeft(line, " "))
		fmt.Fprintf(&sb, "%s# %s\n", strings.Repeat(" ", indentSize), trimmed)
	}

	return []byte(sb.String())
}

func generateSchema() []byte {
	data, err := json.MarshalIndent(config.Schema(), "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to marshal config schema")
	}

	return append(data, '\n')
}
