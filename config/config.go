// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
)

// ConfigFileEnv names the environment variable holding the config file path.
const ConfigFileEnv = "I18NKEYLINT_CONFIGFILE"

// Default config file names, tried in order when no path is given.
var defaultConfigFiles = []string{"./.i18nkeylint.yaml", "./.i18nkeylint.yml"}

// Options holds the rule configuration.
type Options struct {
	// FunctionName is the identifier of the translation function.
	FunctionName string `env:"I18NKEYLINT_FUNCTION_NAME" json:"functionName" yaml:"functionName"`
	// HookName is the name of the function whose result declares a
	// localisation scope.
	HookName string `env:"I18NKEYLINT_HOOK_NAME" json:"hookName" yaml:"hookName"`

	ReferenceTranslationFiles []string `env:"I18NKEYLINT_REFERENCE_FILES" envSeparator:"," json:"referenceTranslationFiles" yaml:"referenceTranslationFiles"`
	// ReferenceTranslationFile is the single-file spelling accepted in config
	// files. It is folded into ReferenceTranslationFiles on load.
	ReferenceTranslationFile string `json:"-" yaml:"referenceTranslationFile,omitempty"`

	NamespaceTranslationMappingFile string `env:"I18NKEYLINT_NAMESPACE_MAPPING_FILE" json:"namespaceTranslationMappingFile" yaml:"namespaceTranslationMappingFile"`
	DefaultNamespace                string `env:"I18NKEYLINT_DEFAULT_NAMESPACE" json:"defaultNamespace" yaml:"defaultNamespace"`
	SkipNamespacedKeys              bool   `env:"I18NKEYLINT_SKIP_NAMESPACED_KEYS" json:"skipNamespacedKeys" yaml:"skipNamespacedKeys"`
	IgnoreNamespaces                bool   `env:"I18NKEYLINT_IGNORE_NAMESPACES" json:"ignoreNamespaces" yaml:"ignoreNamespaces"`
	AllowNonLiteralKeys             bool   `env:"I18NKEYLINT_ALLOW_NON_LITERAL_KEYS" json:"allowNonLiteralKeys" yaml:"allowNonLiteralKeys"`

	// RequireNamespaceMapping makes NamespaceTranslationMappingFile mandatory.
	RequireNamespaceMapping bool `env:"I18NKEYLINT_REQUIRE_NAMESPACE_MAPPING" json:"requireNamespaceMapping" yaml:"requireNamespaceMapping"`

	// Cache keeps dictionary file contents in memory between loads within one
	// process. Files that change on disk are still read again.
	Cache     bool `env:"I18NKEYLINT_CACHE" json:"cache" yaml:"cache"`
	CacheSize int  `env:"I18NKEYLINT_CACHE_SIZE" json:"cacheSize" yaml:"cacheSize"`
}

// Default returns Options populated with default values.
func Default() *Options {
	o := &Options{}
	o.SetDefaults()

	return o
}

// NamespaceMode reports whether dictionaries come from a namespace mapping
// file rather than from reference files.
func (o *Options) NamespaceMode() bool {
	return o.NamespaceTranslationMappingFile != ""
}

// Load builds Options from the available sources.
//
// Sources are applied in order, each overriding the previous one:
//  1. defaults
//  2. the YAML config file
//  3. variables from a .env file in the working directory (never overriding
//     variables already set)
//  4. environment variables
//
// The config file is configPath when non-empty, then the file named by
// [ConfigFileEnv], then .i18nkeylint.yaml or .i18nkeylint.yml in the working
// directory. Only an explicitly named file must exist.
//
// Load does not validate; callers apply command-line flags first and then
// call [Options.Validate].
func Load(configPath string) (*Options, error) {
	o := Default()

	path, explicit := resolveConfigPath(configPath)

	if err := o.readYAML(path, explicit); err != nil {
		return nil, fmt.Errorf("error loading YAML config: %w", err)
	}

	if err := useDotEnv(); err != nil {
		return nil, fmt.Errorf("error using .env file: %w", err)
	}

	if err := readEnv(o); err != nil {
		return nil, fmt.Errorf("error loading environment variables: %w", err)
	}

	return o, nil
}

// resolveConfigPath picks the config file and reports whether it was named
// explicitly.
func resolveConfigPath(configPath string) (string, bool) {
	if configPath != "" {
		return configPath, true
	}

	if envVar := os.Getenv(ConfigFileEnv); envVar != "" {
		return envVar, true
	}

	for _, candidate := range defaultConfigFiles {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, false
		}
	}

	log.Debug().Msg("No config file found, using defaults")

	return "", false
}
