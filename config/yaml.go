// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

func (o *Options) readYAML(configFilePath string, mustExist bool) error {
	if configFilePath == "" {
		return nil
	}

	_, err := os.Stat(configFilePath)
	if os.IsNotExist(err) && !mustExist {
		log.Info().
			Str("path", configFilePath).
			Msg("No YAML configuration file found, skipping")

		return nil
	}

	yamlCfg, err := os.ReadFile(configFilePath) // #nosec G304 -- Only loading a config file
	if err != nil {
		return fmt.Errorf("failed to read configuration file %s: %w", configFilePath, err)
	}

	if err := o.decodeYAML(yamlCfg); err != nil {
		return fmt.Errorf("invalid configuration file %s: %w", configFilePath, err)
	}

	log.Info().
		Str("path", configFilePath).
		Msg("Successfully loaded configuration")

	return nil
}

// decodeYAML validates data against [Schema] and decodes it over o.
func (o *Options) decodeYAML(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	doc, err := validateDocument(data)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, o); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// The single-file spelling replaces the default list unless the list
	// spelling is present as well, in which case both are kept.
	if o.ReferenceTranslationFile != "" {
		if _, ok := doc["referenceTranslationFiles"]; !ok {
			o.ReferenceTranslationFiles = nil
		}

		o.ReferenceTranslationFiles = append([]string{o.ReferenceTranslationFile}, o.ReferenceTranslationFiles...)
		o.ReferenceTranslationFile = ""
	}

	return nil
}
