// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog/log"
)

// Print writes the effective configuration to w as YAML.
func (o *Options) Print(w io.Writer) {
	configYAML, err := yaml.Marshal(o)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal config to YAML for printing")

		return
	}

	log.Info().
		Msg("Rule configuration:")
	fmt.Fprintln(w, string(configYAML))
}
