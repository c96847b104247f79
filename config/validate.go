// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/rs/zerolog/log"
)

// validation errors.
var (
	ErrInvalidFunctionName   = errors.New("functionName must be a Go identifier")
	ErrInvalidHookName       = errors.New("hookName must be a Go identifier")
	ErrEmptyDefaultNamespace = errors.New("defaultNamespace cannot be empty")
	ErrMissingMappingFile    = errors.New("namespaceTranslationMappingFile is required")
	ErrNoReferenceFiles      = errors.New("referenceTranslationFiles cannot be empty when no namespaceTranslationMappingFile is set")
	ErrInvalidCacheSize      = errors.New("cacheSize must be positive when cache is enabled")
)

// Validate checks the options after every source has been applied.
func (o *Options) Validate() error {
	if !token.IsIdentifier(o.FunctionName) {
		return fmt.Errorf("%w, got %q", ErrInvalidFunctionName, o.FunctionName)
	}

	if !token.IsIdentifier(o.HookName) {
		return fmt.Errorf("%w, got %q", ErrInvalidHookName, o.HookName)
	}

	if o.DefaultNamespace == "" {
		return ErrEmptyDefaultNamespace
	}

	if o.RequireNamespaceMapping && !o.NamespaceMode() {
		return ErrMissingMappingFile
	}

	if !o.NamespaceMode() && len(o.ReferenceTranslationFiles) == 0 {
		return ErrNoReferenceFiles
	}

	if o.Cache && o.CacheSize <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidCacheSize, o.CacheSize)
	}

	if o.SkipNamespacedKeys && o.IgnoreNamespaces {
		log.Warn().Msg("Both skipNamespacedKeys and ignoreNamespaces are set; namespaced keys are skipped")
	}

	return nil
}
