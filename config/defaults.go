// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

const (
	// DefaultFunctionName is the conventional translation function identifier.
	DefaultFunctionName = "t"
	// DefaultHookName is the conventional localisation hook.
	DefaultHookName = "useTranslation"
	// DefaultReferenceFile is used when no dictionary file is configured.
	DefaultReferenceFile = "./lang/en.json"
	// DefaultNamespace is assumed for keys without a namespace prefix.
	DefaultNamespace = "default"

	defaultCacheSize = 64
)

// SetDefaults populates the configuration with default values.
func (o *Options) SetDefaults() {
	o.FunctionName = DefaultFunctionName
	o.HookName = DefaultHookName

	o.ReferenceTranslationFiles = []string{DefaultReferenceFile}
	o.ReferenceTranslationFile = ""
	o.NamespaceTranslationMappingFile = ""
	o.DefaultNamespace = DefaultNamespace

	o.SkipNamespacedKeys = false
	o.IgnoreNamespaces = false
	o.AllowNonLiteralKeys = false
	o.RequireNamespaceMapping = false

	o.Cache = false
	o.CacheSize = defaultCacheSize
}
