// Copyright 2023 - 2025, VnPower and the PixivFE contributors
// SPDX-License-Identifier: AGPL-3.0-only

// Command i18nkeyvet runs the i18nkeys analyzer standalone or as a vet tool:
//
//	i18nkeyvet -config=.i18nkeylint.yaml ./...
//	go vet -vettool=$(which i18nkeyvet) ./...
package main

import (
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/tools/go/analysis/singlechecker"

	"codeberg.org/pixivfe/i18nkeylint/analyzer"
	"codeberg.org/pixivfe/i18nkeylint/config"
)

func main() {
	config.SetDefaultLogger()

	level := zerolog.WarnLevel
	if s, ok := os.LookupEnv("I18NKEYLINT_LOG_LEVEL"); ok {
		if l, err := zerolog.ParseLevel(s); err == nil {
			level = l
		}
	}

	zerolog.SetGlobalLevel(level)

	singlechecker.Main(analyzer.Analyzer)
}
