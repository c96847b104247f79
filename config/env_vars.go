// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// dotEnvFile is the .env file read from the working directory.
var dotEnvFile = ".env"

// readEnv overrides fields of o with the environment variables named by their
// env tags. Unset variables leave the field unchanged.
func readEnv(o *Options) error {
	return env.Parse(o)
}

// useDotEnv loads variables from a .env file in the working directory.
// Variables already present in the environment are not overridden.
//
// A missing .env file is not an error.
func useDotEnv() error {
	err := godotenv.Load(dotEnvFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().
			Str("path", dotEnvFile).
			Msg("No .env file found, skipping")

		return nil
	}

	if err != nil {
		return err
	}

	log.Info().
		Str("path", dotEnvFile).
		Msg("Loaded configuration from .env file")

	return nil
}
